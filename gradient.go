package leddy

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

const (
	// MaxGradientStops is the number of stops the firmware's gradient table holds.
	MaxGradientStops = 10
	// GradientTableSize is the serialized size of a gradient: one length
	// byte followed by MaxGradientStops slots of R, G, B, position.
	GradientTableSize = 1 + MaxGradientStops*4

	maxStopPosition = 100
)

// Stop is one anchor of a gradient; Position is on a 0-100 scale.
type Stop struct {
	Color    Color
	Position uint8
}

// Gradient is an ordered list of stops, ascending by position.
type Gradient struct {
	Stops []Stop
}

// ParseGradient parses a comma-separated list of RRGGBB[@position] stops.
// Missing positions are filled in: the first stop defaults to 0, the last to
// 100, and unlabeled stops in between are spread evenly between their
// labeled neighbours.
func ParseGradient(s string) (Gradient, error) {
	var (
		colors    []Color
		positions []*uint8
	)

	for _, tok := range strings.Split(s, ",") {
		cs, ps, hasPos := strings.Cut(tok, "@")

		var pos *uint8
		if hasPos {
			v, err := strconv.ParseUint(ps, 10, 8)
			if err != nil {
				return Gradient{}, fmt.Errorf("%w: position %q is not an integer", ErrInvalidGradient, ps)
			}
			if v > maxStopPosition {
				return Gradient{}, fmt.Errorf("%w: positions must not exceed %d", ErrInvalidGradient, maxStopPosition)
			}
			p := uint8(v)
			pos = &p
		}

		c, err := ParseColor(cs)
		if err != nil {
			return Gradient{}, err
		}
		colors = append(colors, c)
		positions = append(positions, pos)
	}

	if len(colors) > MaxGradientStops {
		return Gradient{}, fmt.Errorf("%w: gradients cannot have more than %d colors", ErrInvalidGradient, MaxGradientStops)
	}

	return interpolateStops(colors, positions)
}

// interpolateStops assigns a position to every stop that lacks one and sorts
// the result. colors and positions have the same length.
func interpolateStops(colors []Color, positions []*uint8) (Gradient, error) {
	n := len(colors)
	if n == 0 {
		return Gradient{}, fmt.Errorf("%w: gradients must have at least one color", ErrInvalidGradient)
	}
	if n > MaxGradientStops {
		return Gradient{}, fmt.Errorf("%w: gradients cannot have more than %d colors", ErrInvalidGradient, MaxGradientStops)
	}

	pos := make([]int, n)
	known := make([]bool, n)
	for i, p := range positions {
		if p != nil {
			if *p > maxStopPosition {
				return Gradient{}, fmt.Errorf("%w: positions must not exceed %d", ErrInvalidGradient, maxStopPosition)
			}
			pos[i], known[i] = int(*p), true
		}
	}
	if !known[0] {
		pos[0], known[0] = 0, true
	}
	if !known[n-1] {
		pos[n-1], known[n-1] = maxStopPosition, true
	}

	var base, diff, span, step int
	for i := 0; i < n; i++ {
		if known[i] {
			base, step = pos[i], 0
			continue
		}
		if step == 0 {
			// the last stop is always known, so this terminates
			j := i + 1
			for !known[j] {
				j++
			}
			diff = pos[j] - base
			span = j - i + 1
		}
		step++
		pos[i] = base + step*diff/span
	}

	g := Gradient{Stops: make([]Stop, n)}
	for i, c := range colors {
		g.Stops[i] = Stop{Color: c, Position: uint8(pos[i])}
	}
	slices.SortStableFunc(g.Stops, func(a, b Stop) bool {
		return a.Position < b.Position
	})
	return g, nil
}

// Validate checks the stop count and position bounds.
func (g Gradient) Validate() error {
	if len(g.Stops) == 0 || len(g.Stops) > MaxGradientStops {
		return fmt.Errorf("%w: %d stops, want 1 to %d", ErrInvalidGradient, len(g.Stops), MaxGradientStops)
	}
	for _, s := range g.Stops {
		if s.Position > maxStopPosition {
			return fmt.Errorf("%w: position %d exceeds %d", ErrInvalidGradient, s.Position, maxStopPosition)
		}
	}
	return nil
}

// Table returns the firmware gradient table. Unused trailing slots are zero.
func (g Gradient) Table() ([GradientTableSize]byte, error) {
	var t [GradientTableSize]byte
	if err := g.Validate(); err != nil {
		return t, err
	}

	t[0] = byte(len(g.Stops))
	for i, s := range g.Stops {
		t[i*4+1] = s.Color.R
		t[i*4+2] = s.Color.G
		t[i*4+3] = s.Color.B
		t[i*4+4] = s.Position
	}
	return t, nil
}

// String returns g in the form accepted by ParseGradient.
func (g Gradient) String() string {
	parts := make([]string, len(g.Stops))
	for i, s := range g.Stops {
		parts[i] = fmt.Sprintf("%s@%d", s.Color, s.Position)
	}
	return strings.Join(parts, ",")
}
