package software

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muesli/leddy"
)

// tone returns one block of a cosine at the given FFT bin (20 Hz per bin).
func tone(bin int, amplitude float64) []int16 {
	s := make([]int16, SpectrumSamples)
	for i := range s {
		s[i] = int16(amplitude * 32767 * math.Cos(2*math.Pi*float64(bin*i)/SpectrumSamples))
	}
	return s
}

func key(keys []byte, led int) []byte {
	return keys[led*3 : led*3+3]
}

func TestSpectrumSilence(t *testing.T) {
	t.Parallel()

	s := NewSpectrum()
	keys := bytes.Repeat([]byte{0xaa}, leddy.Compact.FrameSize())
	s.Process(make([]int16, SpectrumSamples), keys)

	assert.Equal(t, make([]byte, len(keys)), keys)
	assert.Equal(t, maxScale, s.scale)
}

func TestSpectrumTone(t *testing.T) {
	t.Parallel()

	// 1000 Hz falls into band 12, the green channel of the top bar row
	s := NewSpectrum()
	keys := make([]byte, leddy.Compact.FrameSize())
	s.Process(tone(50, 0.5), keys)

	assert.Equal(t, []byte{0, 0xff, 0}, key(keys, leddy.LEDEscape))
	assert.Equal(t, []byte{0, 0, 0}, key(keys, leddy.LEDBacktick), "other rows stay dark")

	bg := key(keys, leddy.LEDDelete)
	assert.Greater(t, bg[1], bg[0])
	assert.Greater(t, bg[1], bg[2])

	// no bass
	assert.Equal(t, byte(0), key(keys, leddy.LEDSpace)[0])
}

func TestSpectrumBass(t *testing.T) {
	t.Parallel()

	s := NewSpectrum()
	keys := make([]byte, leddy.Compact.FrameSize())
	s.Process(tone(3, 0.5), keys)

	assert.NotZero(t, key(keys, leddy.LEDSpace)[0])
	assert.NotZero(t, key(keys, leddy.LEDLAlt)[0])
	assert.Zero(t, key(keys, leddy.LEDMeta)[0])
}

func TestSpectrumGainLimitsLoudInput(t *testing.T) {
	t.Parallel()

	s := NewSpectrum()
	keys := make([]byte, leddy.Compact.FrameSize())
	s.Process(tone(50, 1.0), keys)

	peak := 0.0
	for _, f := range s.freqs {
		peak = math.Max(peak, f)
	}
	assert.LessOrEqual(t, peak*s.scale, 1.0+1e-9)
}

func TestSpectrumBarSmoothing(t *testing.T) {
	t.Parallel()

	s := NewSpectrum()
	keys := make([]byte, leddy.Compact.FrameSize())
	s.Process(tone(50, 0.5), keys)
	loud := s.lastLengths[0]

	s.Process(make([]int16, SpectrumSamples), keys)
	assert.InDelta(t, loud/2, s.lastLengths[0], 1e-6)
}

func TestSoundSpectrumStream(t *testing.T) {
	t.Parallel()

	var in bytes.Buffer
	for i := 0; i < 3; i++ {
		require.NoError(t, binary.Write(&in, binary.LittleEndian, tone(50, 0.5)))
	}

	kbd := &fakeKeyboard{geometry: leddy.FullSize}
	err := SoundSpectrum(context.Background(), kbd, &in)
	assert.True(t, errors.Is(err, io.EOF))
	require.Len(t, kbd.frames, 3)
	assert.Len(t, kbd.frames[0], leddy.FullSize.FrameSize())
}

func TestSoundSpectrumCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	kbd := &fakeKeyboard{geometry: leddy.Compact}
	err := SoundSpectrum(ctx, kbd, bytes.NewReader(make([]byte, SpectrumSamples*2)))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, kbd.frames)
}
