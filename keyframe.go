package leddy

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// KeyFrame holds one color per firmware LED index.
type KeyFrame []Color

// NewKeyFrame returns an all-black frame for n LEDs.
func NewKeyFrame(n int) KeyFrame {
	return make(KeyFrame, n)
}

// ReadKeyFrame reads one RRGGBB value per line, in LED index order. LEDs
// beyond the end of the input stay black.
func ReadKeyFrame(r io.Reader, n int) (KeyFrame, error) {
	kf := NewKeyFrame(n)

	sc := bufio.NewScanner(r)
	i := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if i >= n {
			return nil, fmt.Errorf("%w: more than %d colors", ErrInvalidKeyFrame, n)
		}

		c, err := ParseColor(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		kf[i] = c
		i++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	return kf, nil
}

// Raw returns the frame as consecutive R, G, B bytes.
func (kf KeyFrame) Raw() []byte {
	raw := make([]byte, len(kf)*3)
	for i, c := range kf {
		raw[i*3+0] = c.R
		raw[i*3+1] = c.G
		raw[i*3+2] = c.B
	}
	return raw
}

// Mean returns the per-channel mean of kf[from:to], truncated.
func (kf KeyFrame) Mean(from, to int) Color {
	if to <= from {
		return Black
	}

	var r, g, b int
	for _, c := range kf[from:to] {
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
	}
	n := to - from
	return Color{uint8(r / n), uint8(g / n), uint8(b / n)}
}
