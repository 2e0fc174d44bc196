package leddy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	c, err := ParseColor("ff00ff")
	require.NoError(t, err)
	assert.Equal(t, Magenta, c)

	c, err = ParseColor("0A1b2C")
	require.NoError(t, err)
	assert.Equal(t, Color{0x0a, 0x1b, 0x2c}, c)
	assert.Equal(t, "0a1b2c", c.String())
}

func TestParseColorInvalid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "fff", "ff00ff0", "gg0000", "#ff000", " ff000"} {
		_, err := ParseColor(s)
		require.Error(t, err, s)
		assert.True(t, errors.Is(err, ErrInvalidColor), s)
	}
}

func TestColorfulRoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range []Color{Black, White, Red, Yellow, {1, 2, 3}, {0x80, 0x7f, 0x81}} {
		assert.Equal(t, c, FromColorful(c.Colorful()))
	}
}
