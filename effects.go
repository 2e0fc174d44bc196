package leddy

import (
	"fmt"
)

// Effect opcodes, the first payload byte after the color command prefix.
const (
	EffectPulse          = 0x06
	EffectWave           = 0x07
	EffectReactive       = 0x09
	EffectReactiveRipple = 0x0a
	EffectRain           = 0x0b
	EffectGradient       = 0x0c
	EffectFade           = 0x0d
)

// Direction is the travel direction of moving effects.
type Direction uint8

const (
	DirectionRight Direction = 1
	DirectionLeft  Direction = 2
	DirectionDown  Direction = 3
	DirectionUp    Direction = 4
)

// ParseDirection parses "right", "left", "down" or "up".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "right":
		return DirectionRight, nil
	case "left":
		return DirectionLeft, nil
	case "down":
		return DirectionDown, nil
	case "up":
		return DirectionUp, nil
	}
	return 0, fmt.Errorf("%w: unrecognized direction %q", ErrInvalidParam, s)
}

// Trigger selects the key event reactive effects respond to.
type Trigger uint8

const (
	TriggerKeyUp   Trigger = 0
	TriggerKeyDown Trigger = 1
)

func colorEffect(opcode byte, cp ColorParam, mode byte, args ...byte) []byte {
	rgb := cp.RGB()
	return append([]byte{opcode, mode, rgb.R, rgb.G, rgb.B}, args...)
}

// EncodePulse returns the payload of the pulse effect.
func EncodePulse(cp ColorParam, speed uint8) []byte {
	return colorEffect(EffectPulse, cp, cp.ModeByte(), speed)
}

// EncodeWave returns the payload of the wave effect.
func EncodeWave(cp ColorParam, speed uint8, dir Direction) []byte {
	return colorEffect(EffectWave, cp, cp.ModeByte(), speed, byte(dir))
}

// EncodeReactive returns the payload of the reactive effect.
func EncodeReactive(cp ColorParam, speed uint8, trigger Trigger) []byte {
	return colorEffect(EffectReactive, cp, cp.ModeByte(), speed, byte(trigger))
}

// EncodeReactiveRipple returns the payload of the reactive ripple effect.
func EncodeReactiveRipple(cp ColorParam, speed uint8, trigger Trigger) []byte {
	return colorEffect(EffectReactiveRipple, cp, cp.ModeByte(), speed, byte(trigger))
}

// EncodeRain returns the payload of the rain effect. The firmware has no
// rainbow rain, so rainbow is sent as randomized.
func EncodeRain(cp ColorParam, speed uint8, dir Direction) []byte {
	mode := cp.ModeByte()
	if cp.Mode() == ModeRainbow {
		mode = Randomized().ModeByte()
	}
	return colorEffect(EffectRain, cp, mode, speed, byte(dir))
}

// EncodeGradient returns the payload of the static gradient effect.
func EncodeGradient(cp ColorParam) ([]byte, error) {
	table, err := cp.Gradient().Table()
	if err != nil {
		return nil, err
	}

	req := make([]byte, 0, 1+GradientTableSize)
	req = append(req, EffectGradient)
	return append(req, table[:]...), nil
}

// EncodeFade returns the payload of the fade effect.
func EncodeFade(cp ColorParam, speed uint8) ([]byte, error) {
	table, err := cp.Gradient().Table()
	if err != nil {
		return nil, err
	}

	req := make([]byte, 0, 3+GradientTableSize)
	req = append(req, EffectFade, cp.ModeByte())
	req = append(req, table[:]...)
	return append(req, speed), nil
}

func (k *Keyboard) effect(payload []byte) error {
	return k.Send(k.prefix, payload)
}

// Pulse turns all LEDs on and off in a pulsing fashion.
func (k *Keyboard) Pulse(cp ColorParam, speed uint8) error {
	return k.effect(EncodePulse(cp, speed))
}

// Wave rolls a wave of light over the keyboard.
func (k *Keyboard) Wave(cp ColorParam, speed uint8, dir Direction) error {
	return k.effect(EncodeWave(cp, speed, dir))
}

// Reactive lights a key when it is pressed or released.
func (k *Keyboard) Reactive(cp ColorParam, speed uint8, trigger Trigger) error {
	return k.effect(EncodeReactive(cp, speed, trigger))
}

// ReactiveRipple sends a ripple from a key when it is pressed or released.
func (k *Keyboard) ReactiveRipple(cp ColorParam, speed uint8, trigger Trigger) error {
	return k.effect(EncodeReactiveRipple(cp, speed, trigger))
}

// Rain lights a few random LEDs per row or column, moving in dir.
func (k *Keyboard) Rain(cp ColorParam, speed uint8, dir Direction) error {
	return k.effect(EncodeRain(cp, speed, dir))
}

// Gradient shows a static left-to-right gradient.
func (k *Keyboard) Gradient(cp ColorParam) error {
	req, err := EncodeGradient(cp)
	if err != nil {
		return err
	}
	return k.effect(req)
}

// Fade fades all LEDs simultaneously through a gradient.
func (k *Keyboard) Fade(cp ColorParam, speed uint8) error {
	req, err := EncodeFade(cp, speed)
	if err != nil {
		return err
	}
	return k.effect(req)
}

// AllKeys sets every LED from a per-key parameter. Other parameters are
// shown as a static gradient.
func (k *Keyboard) AllKeys(cp ColorParam) error {
	kf := cp.KeyFrame()
	if kf == nil {
		return k.Gradient(cp)
	}
	if len(kf) != k.geometry.LEDCount {
		return fmt.Errorf("%w: %d colors, %s has %d LEDs",
			ErrInvalidKeyFrame, len(kf), k.geometry.Name, k.geometry.LEDCount)
	}
	return k.AllKeysRaw(kf.Raw())
}
