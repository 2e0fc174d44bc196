package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/leddy"
	"github.com/muesli/leddy/software"
)

// invocation is one effect argument, parsed.
type invocation struct {
	effect  string
	color   string
	speed   uint8
	dir     leddy.Direction
	trigger leddy.Trigger

	// parameters of software effects, checked by the effect itself
	params software.Params
}

var firmwareEffects = map[string]bool{
	"all-keys":        true,
	"pulse":           true,
	"wave":            true,
	"reactive":        true,
	"reactive-ripple": true,
	"rain":            true,
	"gradient":        true,
	"fade":            true,
}

var softwareEffects = map[string]bool{
	"screen-capture": true,
	"sound-spectrum": true,
	"key-ids":        true,
}

func (inv invocation) software() bool {
	return softwareEffects[inv.effect]
}

// parseInvocation parses "[effect/]key=value/..." arguments. Everything
// after the name of a software effect is passed on to it.
func parseInvocation(arg string) (invocation, error) {
	inv := invocation{
		color:   "rainbow",
		speed:   50,
		dir:     leddy.DirectionRight,
		trigger: leddy.TriggerKeyDown,
	}

	for _, param := range strings.Split(arg, "/") {
		if param == "" {
			continue
		}
		key, val, hasVal := strings.Cut(param, "=")

		if inv.software() {
			inv.params[key] = val
			continue
		}

		switch key {
		case "color":
			if val == "" {
				return inv, fmt.Errorf("%w: color requires a value", leddy.ErrInvalidParam)
			}
			inv.color = val

		case "speed":
			v, err := strconv.ParseUint(val, 10, 8)
			if err != nil {
				return inv, fmt.Errorf("%w: invalid speed %q", leddy.ErrInvalidParam, val)
			}
			inv.speed = uint8(v)

		case "direction":
			d, err := leddy.ParseDirection(val)
			if err != nil {
				return inv, err
			}
			inv.dir = d

		case "keyup":
			inv.trigger = leddy.TriggerKeyUp

		case "keydown":
			inv.trigger = leddy.TriggerKeyDown

		default:
			if inv.effect != "" || hasVal {
				return inv, fmt.Errorf("%w: unrecognized parameter key %q", leddy.ErrInvalidParam, key)
			}
			if !firmwareEffects[key] && !softwareEffects[key] {
				return inv, fmt.Errorf("%w: unrecognized effect %q", leddy.ErrInvalidParam, key)
			}
			inv.effect = key
			if inv.software() {
				inv.params = software.Params{}
			}
		}
	}

	if inv.effect == "" {
		inv.effect = "all-keys"
	}
	return inv, nil
}

// parseColorParam resolves a color parameter; per-key colors are read from
// stdin for a keyboard of the given geometry.
func parseColorParam(s string, g leddy.Geometry, stdin io.Reader) (leddy.ColorParam, error) {
	switch {
	case s == "rainbow":
		return leddy.Rainbow(), nil

	case s == "random" || s == "randomized":
		return leddy.Randomized(), nil

	case strings.HasPrefix(s, "rgb:"):
		c, err := leddy.ParseColor(strings.TrimPrefix(s, "rgb:"))
		if err != nil {
			return leddy.ColorParam{}, err
		}
		return leddy.Fixed(c), nil

	case strings.HasPrefix(s, "gradient:"):
		gr, err := leddy.ParseGradient(strings.TrimPrefix(s, "gradient:"))
		if err != nil {
			return leddy.ColorParam{}, err
		}
		return leddy.GradientParam(gr), nil

	case s == "stdin":
		if stdin == nil {
			return leddy.ColorParam{}, fmt.Errorf("%w: color=stdin is not available here", leddy.ErrInvalidParam)
		}
		kf, err := leddy.ReadKeyFrame(stdin, g.LEDCount)
		if err != nil {
			return leddy.ColorParam{}, err
		}
		return leddy.PerKey(kf), nil
	}

	return leddy.ColorParam{}, fmt.Errorf("%w: unrecognized color parameter %q", leddy.ErrInvalidParam, s)
}

// run applies one effect. Software effects run until they end or ctx is
// cancelled, with the keyboard in temporary mode.
func run(ctx context.Context, kbd leddy.KeyboardInterface, inv invocation, stdin io.Reader) (err error) {
	if inv.software() {
		kbd.BeginSoftwareEffect()
		defer func() {
			if endErr := kbd.EndSoftwareEffect(); err == nil {
				err = endErr
			}
		}()
		return runSoftware(ctx, kbd, inv, stdin)
	}

	cp, err := parseColorParam(inv.color, kbd.Geometry(), stdin)
	if err != nil {
		return err
	}

	switch inv.effect {
	case "all-keys":
		return kbd.AllKeys(cp)
	case "pulse":
		return kbd.Pulse(cp, inv.speed)
	case "wave":
		return kbd.Wave(cp, inv.speed, inv.dir)
	case "reactive":
		return kbd.Reactive(cp, inv.speed, inv.trigger)
	case "reactive-ripple":
		return kbd.ReactiveRipple(cp, inv.speed, inv.trigger)
	case "rain":
		return kbd.Rain(cp, inv.speed, inv.dir)
	case "gradient":
		return kbd.Gradient(cp)
	case "fade":
		return kbd.Fade(cp, inv.speed)
	}
	return fmt.Errorf("%w: unrecognized effect %q", leddy.ErrInvalidParam, inv.effect)
}
