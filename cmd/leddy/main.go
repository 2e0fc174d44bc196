package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/muesli/coral"

	"github.com/muesli/leddy"
	"github.com/muesli/leddy/logger"
)

var (
	profile      uint8 = 1
	logLevel           = "info"
	openAttempts uint  = 3
	openDelay          = 500 * time.Millisecond

	RootCmd = &coral.Command{
		Use:   "leddy [effect/]{parameters...}",
		Short: "controls the per-key lighting of STREAK and miniSTREAK keyboards",
		Long: `leddy sets lighting effects on Mountain Everest STREAK keyboards.

Each argument selects one effect and its parameters, separated by slashes,
e.g. "wave/color=rgb:ff00ff/speed=75/direction=left". Without an effect name,
all-keys is used.

Effects:
  all-keys (default)  set all keys' colors (color=stdin reads RRGGBB lines)
  pulse               color, speed
  wave                color, speed, direction
  reactive            color, speed, keyup/keydown
  reactive-ripple     color, speed, keyup/keydown
  rain                color, speed, direction
  gradient            color
  fade                color, speed
  screen-capture      mirror the screen (ffmpeg-bin, fps, x, y, w, h, display,
                      scale-algorithm)
  sound-spectrum      visualize s16le mono 44.1 kHz audio read from stdin
  key-ids             show LED index test patterns

Parameters:
  color=rainbow|random[ized]|rgb:RRGGBB|gradient:RRGGBB[@pos],...|stdin
  speed=0..100        (default 50)
  direction=right|left|down|up
  keyup, keydown      trigger of the reactive effects (default keydown)`,
		Args:         coral.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *coral.Command, args []string) error {
			return logger.SetLevel(logLevel)
		},
		RunE: func(cmd *coral.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			invs := make([]invocation, 0, len(args))
			for _, arg := range args {
				inv, err := parseInvocation(arg)
				if err != nil {
					return err
				}
				invs = append(invs, inv)
			}

			kbd, err := openKeyboard()
			if err != nil {
				return err
			}
			defer kbd.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			for _, inv := range invs {
				if err := run(ctx, kbd, inv, os.Stdin); err != nil {
					return err
				}
			}
			return nil
		},
	}
)

func init() {
	if v := os.Getenv("LEDDY_LOG_LEVEL"); v != "" {
		logLevel = v
	}
	if v := os.Getenv("LEDDY_PROFILE"); v != "" {
		if p, err := strconv.ParseUint(v, 10, 8); err == nil {
			profile = uint8(p)
		}
	}

	RootCmd.PersistentFlags().Uint8VarP(&profile, "profile", "p", profile, "profile to use (1-4)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().UintVar(&openAttempts, "open-attempts", openAttempts, "how often to look for the keyboard before giving up")
}

// openKeyboard opens the keyboard and selects the configured profile.
func openKeyboard() (*leddy.Keyboard, error) {
	if profile < 1 || profile > 4 {
		return nil, fmt.Errorf("%w: %d", leddy.ErrInvalidProfile, profile)
	}

	kbd, err := leddy.Open(openAttempts, openDelay)
	if err != nil {
		return nil, err
	}
	if err := kbd.SetProfile(profile); err != nil {
		kbd.Close()
		return nil, err
	}
	return kbd, nil
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
