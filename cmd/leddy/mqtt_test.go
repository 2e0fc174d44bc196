package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muesli/leddy"
)

func TestServeMessages(t *testing.T) {
	t.Parallel()

	kbd, rec := newTestKeyboard()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs := make(chan string)
	errc := make(chan error, 1)
	go func() {
		errc <- serveMessages(ctx, kbd, msgs)
	}()

	msgs <- "bogus"
	msgs <- "key-ids"
	msgs <- "color=stdin"
	msgs <- "pulse/color=rgb:00ff00/speed=20"
	cancel()

	require.NoError(t, <-errc)
	assert.Equal(t, []byte{leddy.OpWritePermanent, leddy.OpCommit, leddy.OpSelectProfile}, rec.opcodes())
	assert.False(t, kbd.Temporary())

	first := rec.first()
	assert.Equal(t, []byte{leddy.OpWritePermanent, 1, 2, leddy.EffectPulse, 0, 0x00, 0xff, 0x00, 20}, first.Window()[:9])
}

func TestServeMessagesDeviceError(t *testing.T) {
	t.Parallel()

	kbd, rec := newTestKeyboard()
	rec.fail = true

	msgs := make(chan string, 1)
	msgs <- "fade"

	err := serveMessages(context.Background(), kbd, msgs)
	require.Error(t, err)
	assert.False(t, leddy.IsValidation(err))
}

func TestApplyMessageRejectsSoftwareEffects(t *testing.T) {
	t.Parallel()

	kbd, rec := newTestKeyboard()
	for _, msg := range []string{"screen-capture", "sound-spectrum", "key-ids"} {
		err := applyMessage(context.Background(), kbd, msg)
		assert.ErrorIs(t, err, leddy.ErrInvalidParam, msg)
	}
	assert.Empty(t, rec.opcodes())
}
