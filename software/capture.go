package software

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/muesli/leddy"
	"github.com/muesli/leddy/logger"
)

// CaptureConfig configures the ffmpeg process that grabs the screen.
type CaptureConfig struct {
	FFmpeg string
	FPS    int
	// capture area; zero W/H means the whole screen
	X, Y, W, H int
	Display    string
	// ffmpeg scaler used to shrink the screen to the key grid
	ScaleAlgorithm string
}

// ParseCaptureConfig reads the screen-capture parameters. Unknown parameters
// are an error.
func ParseCaptureConfig(p Params) (CaptureConfig, error) {
	c := CaptureConfig{
		FFmpeg:         p.String("ffmpeg-bin", "ffmpeg"),
		FPS:            60,
		Display:        p.String("display", ":0"),
		ScaleAlgorithm: p.String("scale-algorithm", "area"),
	}

	for name, dst := range map[string]*int{"fps": &c.FPS, "x": &c.X, "y": &c.Y, "w": &c.W, "h": &c.H} {
		v, ok, err := p.Int(name)
		if err != nil {
			return c, err
		}
		if ok {
			*dst = v
		}
	}
	if c.FPS <= 0 {
		return c, fmt.Errorf("%w: fps must be positive", leddy.ErrInvalidParam)
	}
	if (c.W == 0) != (c.H == 0) {
		return c, fmt.Errorf("%w: specify either both of w and h, or neither", leddy.ErrInvalidParam)
	}

	return c, p.Check()
}

// FFmpegArgs returns the ffmpeg arguments that write raw BGRA frames of
// width x 6 pixels to stdout. goos selects the capture device; on X11 a
// screen size must be known, so W and H have to be set.
func (c CaptureConfig) FFmpegArgs(width int, goos string) []string {
	var args []string
	if c.W > 0 && c.H > 0 {
		args = append(args, "-video_size", fmt.Sprintf("%dx%d", c.W, c.H))
	}
	args = append(args, "-framerate", strconv.Itoa(c.FPS))

	if goos == "windows" {
		if c.X != 0 {
			args = append(args, "-offset_x", strconv.Itoa(c.X))
		}
		if c.Y != 0 {
			args = append(args, "-offset_y", strconv.Itoa(c.Y))
		}
		args = append(args, "-f", "gdigrab", "-i", "desktop")
	} else {
		args = append(args, "-f", "x11grab", "-i", fmt.Sprintf("%s+%d,%d", c.Display, c.X, c.Y))
	}

	return append(args,
		"-vf", fmt.Sprintf("scale=%dx%d:sws_flags=%s", width, leddy.GridHeight, c.ScaleAlgorithm),
		"-pix_fmt", "bgra",
		"-vcodec", "rawvideo",
		"-f", "rawvideo",
		"pipe:1",
	)
}

// ParseXrandr extracts the current screen size from `xrandr --query` output.
func ParseXrandr(out string) (w, h int, err error) {
	_, rest, ok := strings.Cut(out, ", current ")
	if !ok {
		return 0, 0, fmt.Errorf("no current screen size in xrandr output")
	}
	ws, rest, ok := strings.Cut(rest, " x ")
	if !ok {
		return 0, 0, fmt.Errorf("malformed xrandr screen size")
	}
	hs, _, _ := strings.Cut(rest, ",")

	if w, err = strconv.Atoi(strings.TrimSpace(ws)); err != nil {
		return 0, 0, fmt.Errorf("malformed xrandr width: %w", err)
	}
	if h, err = strconv.Atoi(strings.TrimSpace(hs)); err != nil {
		return 0, 0, fmt.Errorf("malformed xrandr height: %w", err)
	}
	return w, h, nil
}

// MapBGRA copies the pixels of a width x 6 BGRA frame into an all-keys RGB
// frame. Pixels over cells without a key are dropped.
func MapBGRA(g leddy.Geometry, screen, keys []byte) {
	for i, m := range g.Map {
		if m == leddy.NoLED {
			continue
		}
		base := int(m) * 3
		keys[base+0] = screen[i*4+2]
		keys[base+1] = screen[i*4+1]
		keys[base+2] = screen[i*4+0]
	}
}

// ScreenCapture mirrors the frames read from r onto the keyboard until ctx
// is cancelled or reading fails. r delivers raw BGRA frames at the size of
// the key grid, as produced by FFmpegArgs.
func ScreenCapture(ctx context.Context, kbd Keyboard, r io.Reader) error {
	g := kbd.Geometry()
	screen := make([]byte, g.Width*g.Height*4)
	keys := make([]byte, g.FrameSize())

	log := logger.GetProjectLogger().WithFields(logrus.Fields{
		"effect": "screen-capture",
		"grid":   fmt.Sprintf("%dx%d", g.Width, g.Height),
	})
	log.Info("mirroring screen")

	for frames := 0; ; frames++ {
		if err := done(ctx); err != nil {
			log.WithField("frames", frames).Info("screen capture stopped")
			return err
		}

		if _, err := io.ReadFull(r, screen); err != nil {
			return fmt.Errorf("reading screen frame: %w", err)
		}

		MapBGRA(g, screen, keys)
		if err := kbd.AllKeysRaw(keys); err != nil {
			return err
		}
	}
}
