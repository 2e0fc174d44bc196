package main

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"k8s.io/utils/clock"

	"github.com/muesli/leddy"
	"github.com/muesli/leddy/logger"
	"github.com/muesli/leddy/software"
)

func runSoftware(ctx context.Context, kbd leddy.KeyboardInterface, inv invocation, stdin io.Reader) error {
	switch inv.effect {
	case "screen-capture":
		return screenCapture(ctx, kbd, inv.params)

	case "sound-spectrum":
		if err := inv.params.Check(); err != nil {
			return err
		}
		if stdin == nil {
			return fmt.Errorf("%w: sound-spectrum needs audio on stdin", leddy.ErrInvalidParam)
		}
		return software.SoundSpectrum(ctx, kbd, stdin)

	case "key-ids":
		if err := inv.params.Check(); err != nil {
			return err
		}
		return software.KeyIDs(ctx, kbd, clock.RealClock{})
	}
	return fmt.Errorf("%w: unrecognized effect %q", leddy.ErrInvalidParam, inv.effect)
}

// screenSize asks xrandr for the current screen size.
func screenSize() (int, int, error) {
	out, err := exec.Command("xrandr", "--query").Output()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to launch xrandr: %w", err)
	}
	return software.ParseXrandr(string(out))
}

func screenCapture(ctx context.Context, kbd leddy.KeyboardInterface, params software.Params) error {
	cfg, err := software.ParseCaptureConfig(params)
	if err != nil {
		return err
	}
	if runtime.GOOS != "windows" && cfg.W == 0 {
		if cfg.W, cfg.H, err = screenSize(); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ffmpeg := exec.CommandContext(ctx, cfg.FFmpeg, cfg.FFmpegArgs(kbd.Geometry().Width, runtime.GOOS)...)
	out, err := ffmpeg.StdoutPipe()
	if err != nil {
		return err
	}
	if err := ffmpeg.Start(); err != nil {
		return fmt.Errorf("failed to launch ffmpeg: %w", err)
	}
	logger.GetProjectLogger().WithField("args", ffmpeg.Args).Debug("started ffmpeg")

	err = software.ScreenCapture(ctx, kbd, out)
	cancel()
	_ = ffmpeg.Wait()
	return err
}
