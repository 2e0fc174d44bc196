package leddy

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/muesli/leddy/logger"
)

var errWrite = errors.New("write failed")

func init() {
	logger.SetOutput(io.Discard)
}

// recorder is a ReportWriter that keeps every report written to it.
type recorder struct {
	reports [][]byte
	// failAt makes the n-th write (1-based) fail; 0 never fails
	failAt int
	closed bool
}

func (r *recorder) Write(b []byte) (int, error) {
	if r.failAt > 0 && len(r.reports)+1 == r.failAt {
		return 0, errWrite
	}
	r.reports = append(r.reports, append([]byte(nil), b...))
	return len(b), nil
}

func (r *recorder) Close() error {
	r.closed = true
	return nil
}

// commands reassembles the logical commands carried by the recorded reports.
func (r *recorder) commands(t *testing.T) [][]byte {
	t.Helper()

	var cmds [][]byte
	var cur []byte
	for _, b := range r.reports {
		require.Len(t, b, ReportSize)
		var rep Report
		copy(rep[:], b)
		if rep.Offset() == 0 {
			if cur != nil {
				cmds = append(cmds, cur)
			}
			cur = nil
		}
		require.Equal(t, len(cur), rep.Offset())
		cur = append(cur, rep.Window()...)
	}
	if cur != nil {
		cmds = append(cmds, cur)
	}
	return cmds
}

func newTestKeyboard(mini bool) (*Keyboard, *recorder) {
	rec := &recorder{}
	k := NewKeyboard(rec, mini)
	k.log = logrus.NewEntry(logrus.New())
	k.log.Logger.SetOutput(io.Discard)
	return k, rec
}
