package software

import (
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muesli/leddy"
	"github.com/muesli/leddy/logger"
)

func init() {
	logger.SetOutput(io.Discard)
}

type fakeKeyboard struct {
	geometry leddy.Geometry
	err      error

	mu     sync.Mutex
	frames [][]byte
}

func (k *fakeKeyboard) Geometry() leddy.Geometry {
	return k.geometry
}

func (k *fakeKeyboard) AllKeysRaw(raw []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.err != nil {
		return k.err
	}
	k.frames = append(k.frames, append([]byte(nil), raw...))
	return nil
}

func (k *fakeKeyboard) count() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.frames)
}

func TestParams(t *testing.T) {
	t.Parallel()

	p := Params{"fps": "30", "display": ":1", "bogus": "1", "alsobogus": ""}
	assert.Equal(t, ":1", p.String("display", ":0"))
	assert.Equal(t, "area", p.String("scale-algorithm", "area"))

	v, ok, err := p.Int("fps")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 30, v)

	_, ok, err = p.Int("x")
	require.NoError(t, err)
	assert.False(t, ok)

	err = p.Check()
	require.Error(t, err)
	assert.True(t, errors.Is(err, leddy.ErrInvalidParam))
	assert.Contains(t, err.Error(), "alsobogus, bogus")
}

func TestParamsInvalidInt(t *testing.T) {
	t.Parallel()

	_, _, err := Params{"fps": "fast"}.Int("fps")
	assert.True(t, errors.Is(err, leddy.ErrInvalidParam))
}
