package software

import (
	"context"
	"time"

	"k8s.io/utils/clock"

	"github.com/muesli/leddy"
	"github.com/muesli/leddy/logger"
)

var keyIDColors = [6]leddy.Color{
	leddy.Red, leddy.Green, leddy.Blue, leddy.Yellow, leddy.Cyan, leddy.Magenta,
}

const (
	keyIDRepeats = 5
	keyIDPeriod  = time.Second
)

// KeyIDFrames returns the two test patterns: LEDs colored in bands of six
// consecutive indices, then each LED colored by its index modulo six.
func KeyIDFrames(g leddy.Geometry) (bands, cycle []byte) {
	bands = make([]byte, g.FrameSize())
	cycle = make([]byte, g.FrameSize())
	for led := 0; led < g.LEDCount; led++ {
		setKey(bands, led, keyIDColors[(led/6)%6])
		setKey(cycle, led, keyIDColors[led%6])
	}
	return bands, cycle
}

// KeyIDs shows each test pattern for five seconds, which helps to tell
// which LED index belongs to which key.
func KeyIDs(ctx context.Context, kbd Keyboard, clk clock.Clock) error {
	log := logger.GetProjectLogger().WithField("effect", "key-ids")
	bands, cycle := KeyIDFrames(kbd.Geometry())

	for _, frame := range [][]byte{bands, cycle} {
		for i := 0; i < keyIDRepeats; i++ {
			if err := kbd.AllKeysRaw(frame); err != nil {
				return err
			}

			select {
			case <-ctx.Done():
				log.Info("key id pattern stopped")
				return ctx.Err()
			case <-clk.After(keyIDPeriod):
			}
		}
	}
	return nil
}
