package leddy

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadKeyFrame(t *testing.T) {
	t.Parallel()

	kf, err := ReadKeyFrame(strings.NewReader("ff0000\n00FF00\r\n0000ff\n"), 5)
	require.NoError(t, err)
	assert.Equal(t, KeyFrame{Red, Green, Blue, Black, Black}, kf)
	assert.Equal(t, []byte{0xff, 0, 0, 0, 0xff, 0, 0, 0, 0xff, 0, 0, 0, 0, 0, 0}, kf.Raw())
}

func TestReadKeyFrameErrors(t *testing.T) {
	t.Parallel()

	_, err := ReadKeyFrame(strings.NewReader("ff0000\nnope\n"), 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidColor))
	assert.Contains(t, err.Error(), "line 2")

	_, err = ReadKeyFrame(strings.NewReader("ff0000\nff0000\nff0000\n"), 2)
	assert.True(t, errors.Is(err, ErrInvalidKeyFrame))
}

func TestKeyFrameMean(t *testing.T) {
	t.Parallel()

	kf := KeyFrame{{1, 1, 1}, {2, 2, 2}, {4, 4, 4}}
	assert.Equal(t, Color{2, 2, 2}, kf.Mean(0, 3))
	assert.Equal(t, Color{3, 3, 3}, kf.Mean(1, 3))
	assert.Equal(t, Black, kf.Mean(2, 2))
}
