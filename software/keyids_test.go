package software

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"

	"github.com/muesli/leddy"
)

func TestKeyIDFrames(t *testing.T) {
	t.Parallel()

	bands, cycle := KeyIDFrames(leddy.Compact)
	require.Len(t, bands, leddy.Compact.FrameSize())

	assert.Equal(t, []byte{0xff, 0, 0}, key(bands, 5))
	assert.Equal(t, []byte{0, 0xff, 0}, key(bands, 6))
	assert.Equal(t, []byte{0xff, 0, 0}, key(bands, 36))

	assert.Equal(t, []byte{0xff, 0, 0}, key(cycle, 0))
	assert.Equal(t, []byte{0xff, 0, 0xff}, key(cycle, 5))
	assert.Equal(t, []byte{0, 0xff, 0}, key(cycle, 7))
}

func TestKeyIDs(t *testing.T) {
	t.Parallel()

	clk := clocktesting.NewFakeClock(time.Now())
	kbd := &fakeKeyboard{geometry: leddy.Compact}

	errc := make(chan error, 1)
	go func() {
		errc <- KeyIDs(context.Background(), kbd, clk)
	}()

	for i := 0; i < 2*keyIDRepeats; i++ {
		for !clk.HasWaiters() {
			time.Sleep(time.Millisecond)
		}
		clk.Step(keyIDPeriod)
	}

	require.NoError(t, <-errc)
	require.Equal(t, 2*keyIDRepeats, kbd.count())

	bands, cycle := KeyIDFrames(leddy.Compact)
	assert.Equal(t, bands, kbd.frames[0])
	assert.Equal(t, cycle, kbd.frames[keyIDRepeats])
}

func TestKeyIDsCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	clk := clocktesting.NewFakeClock(time.Now())
	kbd := &fakeKeyboard{geometry: leddy.Compact}

	errc := make(chan error, 1)
	go func() {
		errc <- KeyIDs(ctx, kbd, clk)
	}()

	for !clk.HasWaiters() {
		time.Sleep(time.Millisecond)
	}
	cancel()

	assert.True(t, errors.Is(<-errc, context.Canceled))
	assert.Equal(t, 1, kbd.count())
}
