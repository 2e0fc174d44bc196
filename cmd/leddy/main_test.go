package main

import (
	"errors"
	"io"
	"sync"

	"github.com/muesli/leddy"
	"github.com/muesli/leddy/logger"
)

var errWrite = errors.New("write failed")

func init() {
	logger.SetOutput(io.Discard)
}

// recorder is a device that keeps the reports written to it.
type recorder struct {
	mu      sync.Mutex
	reports []leddy.Report
	fail    bool
}

func (r *recorder) Write(b []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return 0, errWrite
	}
	var rep leddy.Report
	copy(rep[:], b)
	r.reports = append(r.reports, rep)
	return len(b), nil
}

func (r *recorder) Close() error {
	return nil
}

// opcodes returns the opcode of every command's first report.
func (r *recorder) opcodes() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ops []byte
	for i := range r.reports {
		if r.reports[i].Offset() == 0 {
			ops = append(ops, r.reports[i].Opcode())
		}
	}
	return ops
}

func (r *recorder) first() leddy.Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reports[0]
}

func newTestKeyboard() (*leddy.Keyboard, *recorder) {
	rec := &recorder{}
	return leddy.NewKeyboard(rec, true), rec
}
