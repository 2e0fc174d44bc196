package leddy

import (
	"math/rand"
)

// ColorMode identifies which variant a ColorParam holds. The values double
// as the firmware's mode byte, except PerKey which the firmware treats as a
// fixed color.
type ColorMode uint8

const (
	ModeFixed ColorMode = iota
	ModeRainbow
	ModeRandomized
	ModeGradient
	ModePerKey
)

func (m ColorMode) String() string {
	switch m {
	case ModeFixed:
		return "fixed"
	case ModeRainbow:
		return "rainbow"
	case ModeRandomized:
		return "randomized"
	case ModeGradient:
		return "gradient"
	case ModePerKey:
		return "per-key"
	}
	return "unknown"
}

// ColorParam is the color argument of an effect: a fixed color, one of the
// built-in palettes, an explicit gradient, or a full per-key map. Build one
// with the constructors below; the zero value is Fixed(Black).
type ColorParam struct {
	mode     ColorMode
	color    Color
	gradient Gradient
	keys     KeyFrame
}

func Fixed(c Color) ColorParam { return ColorParam{mode: ModeFixed, color: c} }
func Rainbow() ColorParam { return ColorParam{mode: ModeRainbow} }
func Randomized() ColorParam { return ColorParam{mode: ModeRandomized} }
func GradientParam(g Gradient) ColorParam { return ColorParam{mode: ModeGradient, gradient: g} }
func PerKey(kf KeyFrame) ColorParam { return ColorParam{mode: ModePerKey, keys: kf} }

var rainbowHues = [6]Color{Red, Yellow, Green, Cyan, Blue, Magenta}

var perKeyPositions = [MaxGradientStops]uint8{0, 11, 22, 33, 44, 56, 67, 78, 89, 100}

// Mode returns the variant held by cp.
func (cp ColorParam) Mode() ColorMode {
	return cp.mode
}

// KeyFrame returns the per-key map, or nil for other variants.
func (cp ColorParam) KeyFrame() KeyFrame {
	if cp.mode != ModePerKey {
		return nil
	}
	return cp.keys
}

// ModeByte is the firmware's encoding of the color mode.
func (cp ColorParam) ModeByte() byte {
	switch cp.mode {
	case ModeFixed, ModePerKey:
		return 0
	case ModeRainbow:
		return 1
	case ModeRandomized:
		return 2
	case ModeGradient:
		return 3
	}
	panic("leddy: unknown color mode")
}

// RGB returns a single color representing cp.
func (cp ColorParam) RGB() Color {
	switch cp.mode {
	case ModeFixed:
		return cp.color
	case ModeRainbow, ModeRandomized:
		return Black
	case ModeGradient:
		if len(cp.gradient.Stops) == 0 {
			return Black
		}
		return cp.gradient.Stops[0].Color
	case ModePerKey:
		return cp.keys.Mean(0, len(cp.keys))
	}
	panic("leddy: unknown color mode")
}

// Gradient resolves cp to a gradient of at most ten stops. Randomized
// params shuffle their hues on every call.
func (cp ColorParam) Gradient() Gradient {
	switch cp.mode {
	case ModeFixed:
		return Gradient{Stops: []Stop{{cp.color, 0}, {cp.color, 100}}}

	case ModeRainbow:
		return paletteGradient(rainbowHues)

	case ModeRandomized:
		hues := rainbowHues
		rand.Shuffle(len(hues), func(i, j int) {
			hues[i], hues[j] = hues[j], hues[i]
		})
		return paletteGradient(hues)

	case ModeGradient:
		stops := make([]Stop, len(cp.gradient.Stops))
		copy(stops, cp.gradient.Stops)
		return Gradient{Stops: stops}

	case ModePerKey:
		n := len(cp.keys)
		stops := make([]Stop, MaxGradientStops)
		from := 0
		for i := range stops {
			to := ((i+1)*n + MaxGradientStops/2) / MaxGradientStops
			if i == len(stops)-1 {
				to = n
			}
			stops[i] = Stop{cp.keys.Mean(from, to), perKeyPositions[i]}
			from = to
		}
		return Gradient{Stops: stops}
	}
	panic("leddy: unknown color mode")
}

func paletteGradient(hues [6]Color) Gradient {
	stops := make([]Stop, len(hues))
	for i, c := range hues {
		stops[i] = Stop{c, uint8(i * 20)}
	}
	return Gradient{Stops: stops}
}
