package software

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muesli/leddy"
)

func TestImageFrameUniform(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 180, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 180; x++ {
			img.Set(x, y, color.RGBA{0x20, 0x40, 0x80, 0xff})
		}
	}

	keys := ImageFrame(leddy.Compact, img)
	require.Len(t, keys, leddy.Compact.FrameSize())
	assert.Equal(t, []byte{0x20, 0x40, 0x80}, key(keys, leddy.LEDEscape))
	assert.Equal(t, []byte{0x20, 0x40, 0x80}, key(keys, leddy.LEDRight))
	// not on the compact grid
	assert.Equal(t, []byte{0, 0, 0}, key(keys, leddy.LEDMuteMic))
}

func TestImageFrameHalves(t *testing.T) {
	t.Parallel()

	// left half red, right half blue
	img := image.NewRGBA(image.Rect(0, 0, 220, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 220; x++ {
			c := color.RGBA{0xff, 0, 0, 0xff}
			if x >= 110 {
				c = color.RGBA{0, 0, 0xff, 0xff}
			}
			img.Set(x, y, c)
		}
	}

	kbd := &fakeKeyboard{geometry: leddy.FullSize}
	require.NoError(t, ShowImage(kbd, img))
	require.Len(t, kbd.frames, 1)

	assert.Equal(t, []byte{0xff, 0, 0}, key(kbd.frames[0], leddy.LEDEscape))
	assert.Equal(t, []byte{0, 0, 0xff}, key(kbd.frames[0], leddy.LEDVolumeKnob))
}
