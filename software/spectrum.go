package software

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/muesli/leddy"
	"github.com/muesli/leddy/logger"
)

const (
	// SampleRate of the expected mono 16-bit PCM input.
	SampleRate = 44100
	// SpectrumSamples per block; 50 ms at SampleRate, giving 20 Hz bins.
	SpectrumSamples = 2205

	bands    = 18
	barRows  = 5
	maxBars  = 15
	maxScale = 0.003
)

// FFT bins per band, starting at bin 2 (40 Hz).
var bandWidths = [bands]int{
	// 40-80, 100-160, 180-240 Hz
	3, 4, 4,
	// 260-280, 300-320, 340-380, 400-440, 460-500
	2, 2, 3, 3, 3,
	// 520-580, 600-680, 700-780, 800-900, 920-1020
	4, 5, 5, 6, 6,
	// 1040-1180, 1200-1360, 1380-1580, 1600-1820, 1840-2060
	8, 9, 11, 12, 13,
}

// LEDs of the bar display, one row per keyboard row, bars growing left to
// right.
var barMap = [barRows + 1][18]uint8{
	{1, 0, 7, 13, 19, 25, 31, 37, 43, 49, 0xff, 55, 67, 73, 79, 90, 93, 98},
	{2, 8, 14, 20, 26, 32, 38, 44, 50, 56, 61, 62, 68, 80, 0xff, 89, 94, 99},
	{3, 9, 15, 21, 27, 33, 39, 45, 51, 57, 63, 69, 75, 0xff, 81, 88, 95, 96},
	{4, 0xff, 10, 16, 22, 28, 34, 40, 46, 52, 58, 64, 70, 76, 82, 0xff, 0xff, 0xff},
	{5, 11, 17, 23, 29, 35, 41, 47, 53, 59, 65, 66, 0xff, 77, 0xff, 0xff, 87, 0xff},
	{6, 12, 0xff, 18, 0xff, 0xff, 36, 0xff, 0xff, 0xff, 60, 72, 0xff, 78, 83, 84, 85, 86},
}

// Bass bands light the red channel of these keys.
var bassKeys = [3][]int{
	{leddy.LEDLAlt, leddy.LEDSpace, leddy.LEDRAlt},
	{leddy.LEDMeta, leddy.LEDFn, leddy.LEDMenu},
	{leddy.LEDLControl, leddy.LEDRControl},
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Spectrum turns blocks of audio samples into key frames: the lower rows
// show bar graphs of 15 mid and high bands, the bass bands light modifier
// keys, and the arrow and navigation clusters show the dominant tone.
type Spectrum struct {
	fft    *fourier.FFT
	in     []float64
	coeffs []complex128

	freqs [bands]float64
	// automatic gain
	scale float64
	// bar lengths of the previous block, for smoothing
	lastLengths [barRows]float64
}

// NewSpectrum returns a visualizer for blocks of SpectrumSamples samples.
func NewSpectrum() *Spectrum {
	return &Spectrum{
		fft:   fourier.NewFFT(SpectrumSamples),
		in:    make([]float64, SpectrumSamples),
		scale: 0.0015,
	}
}

// Process computes the key frame for one block of samples, writing it into
// keys (at least 106 LEDs).
func (s *Spectrum) Process(samples []int16, keys []byte) {
	for i := range s.in {
		var v int16
		if i < len(samples) {
			v = samples[i]
		}
		s.in[i] = float64(v) / 32768.0
	}
	s.coeffs = s.fft.Coefficients(s.coeffs, s.in)

	bin := 2
	for i, w := range bandWidths {
		m := 0.0
		for _, c := range s.coeffs[bin : bin+w] {
			m = math.Max(m, math.Abs(real(c)))
		}
		s.freqs[i] = m
		bin += w
	}

	s.adjustGain()

	// dominant band above the bass
	maxI, sum, peak := 0, 0.0, 0.0
	for i := 3; i < bands; i++ {
		sum += s.freqs[i]
		if s.freqs[i] > peak {
			maxI, peak = i, s.freqs[i]
		}
	}
	avg := sum * s.scale / 15.0
	peak *= s.scale

	hue := clamp(float64(maxI-3)/22.0, 0, 4.0/6.0)
	sat := ((16.0/15.0)*peak - avg) / math.Max(peak, 0.01)
	bg := hsv(hue, sat, ease.InQuad(peak))

	base := math.Max(math.Max(s.freqs[0], s.freqs[1]), s.freqs[2]) * s.scale
	dirBg := hsv(0, math.Max((base-avg)/math.Max(base, 0.01), 0), ease.InQuad(base))

	for i := range keys {
		keys[i] = 0
	}
	for i := leddy.LEDLeft; i <= leddy.LEDUp; i++ {
		setKey(keys, i, dirBg)
	}
	for i := leddy.LEDDelete; i < leddy.Compact.LEDCount; i++ {
		setKey(keys, i, bg)
	}

	for band, leds := range bassKeys {
		v := uint8(math.Min(ease.InQuad(s.freqs[band]*s.scale)*255.0, 255.0) + 0.5)
		for _, led := range leds {
			keys[led*3] = v
		}
	}

	for row := 0; row < barRows; row++ {
		s.drawBar(keys, row)
	}
}

// adjustGain scales the loudest band to at most 1, slowly raising the gain
// again when the input gets quieter.
func (s *Spectrum) adjustGain() {
	peak := 0.0
	for _, f := range s.freqs {
		peak = math.Max(peak, f)
	}

	scaled := peak * s.scale
	if scaled > 1.0 {
		s.scale /= scaled
	} else {
		s.scale = math.Min(0.995*s.scale+0.005*s.scale/scaled, maxScale)
	}
}

// drawBar draws one row; its color mixes three bands five apart, its length
// is the loudest of them.
func (s *Spectrum) drawBar(keys []byte, row int) {
	fi := barRows - 1 - row + 3
	r, g, b := s.freqs[fi], s.freqs[fi+5], s.freqs[fi+10]
	raw := math.Max(math.Max(r, g), b)

	length := raw
	if raw <= s.lastLengths[row] {
		length = (raw + s.lastLengths[row]) * 0.5
	}
	s.lastLengths[row] = length

	if raw <= 0 {
		return
	}
	c := leddy.Color{
		R: uint8(ease.InQuad(r/raw)*255.0 + 0.5),
		G: uint8(ease.InQuad(g/raw)*255.0 + 0.5),
		B: uint8(ease.InQuad(b/raw)*255.0 + 0.5),
	}

	bars := int(math.Min(length*s.scale*maxBars, maxBars) + 0.5)
	for _, led := range barMap[row][:bars] {
		if led != leddy.NoLED {
			setKey(keys, int(led), c)
		}
	}
}

func hsv(h, s, v float64) leddy.Color {
	return leddy.FromColorful(colorful.Hsv(h*360.0, clamp(s, 0, 1), clamp(v, 0, 1)))
}

func setKey(keys []byte, led int, c leddy.Color) {
	keys[led*3+0] = c.R
	keys[led*3+1] = c.G
	keys[led*3+2] = c.B
}

// SoundSpectrum visualizes the audio read from r until ctx is cancelled or
// reading fails. r delivers signed 16-bit little-endian mono samples at
// SampleRate.
func SoundSpectrum(ctx context.Context, kbd Keyboard, r io.Reader) error {
	g := kbd.Geometry()
	if g.LEDCount < leddy.Compact.LEDCount {
		return fmt.Errorf("%w: %s has too few LEDs for the spectrum", leddy.ErrInvalidParam, g.Name)
	}

	s := NewSpectrum()
	buf := make([]byte, SpectrumSamples*2)
	samples := make([]int16, SpectrumSamples)
	keys := make([]byte, g.FrameSize())

	log := logger.GetProjectLogger().WithField("effect", "sound-spectrum")
	log.Info("visualizing audio")

	for {
		if err := done(ctx); err != nil {
			log.Info("sound spectrum stopped")
			return err
		}

		if _, err := io.ReadFull(r, buf); err != nil {
			return fmt.Errorf("reading audio samples: %w", err)
		}
		for i := range samples {
			samples[i] = int16(binary.LittleEndian.Uint16(buf[i*2:]))
		}

		s.Process(samples, keys)
		if err := kbd.AllKeysRaw(keys); err != nil {
			return err
		}
	}
}
