// Package software implements lighting effects computed on the host and
// streamed to the keyboard frame by frame.
package software

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/muesli/leddy"
)

// Keyboard is what a streaming effect needs from the device.
type Keyboard interface {
	Geometry() leddy.Geometry
	AllKeysRaw(raw []byte) error
}

// Params holds the key=value parameters of a software effect. Every getter
// consumes its key so that leftovers can be reported.
type Params map[string]string

// String removes and returns the named parameter, or def if it is unset.
func (p Params) String(name, def string) string {
	v, ok := p[name]
	if !ok {
		return def
	}
	delete(p, name)
	return v
}

// Int removes and parses the named parameter; ok is false if it is unset.
func (p Params) Int(name string) (v int, ok bool, err error) {
	s, ok := p[name]
	if !ok {
		return 0, false, nil
	}
	delete(p, name)

	v, err = strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("%w: invalid %s value %q", leddy.ErrInvalidParam, name, s)
	}
	return v, true, nil
}

// Check fails if any parameter was not consumed.
func (p Params) Check() error {
	if len(p) == 0 {
		return nil
	}

	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Errorf("%w: unrecognized parameter(s) %s", leddy.ErrInvalidParam, strings.Join(keys, ", "))
}

// done reports ctx's error without blocking, nil if it is still live.
func done(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
