package leddy

// ReportWriter is the part of an open HID device the keyboard needs. A
// hid.Device satisfies it.
type ReportWriter interface {
	// Write sends one output report. The first byte is the report ID.
	Write(b []byte) (int, error)
	// Close releases the device handle.
	Close() error
}

// KeyboardInterface is a connected STREAK or miniSTREAK keyboard.
type KeyboardInterface interface {
	// Close closes the connection with the device.
	Close() error
	// Geometry returns the key layout of the connected variant.
	Geometry() Geometry

	// SetProfile selects the profile (1-4) that effects are written to.
	SetProfile(profile uint8) error
	// Profile returns the active profile.
	Profile() uint8
	// BeginSoftwareEffect switches to temporary, non-persisted color writes.
	BeginSoftwareEffect()
	// EndSoftwareEffect switches back to persisted writes and refreshes the
	// active profile.
	EndSoftwareEffect() error
	// Temporary reports whether color writes are currently temporary.
	Temporary() bool

	// Send delivers one logical command, split into output reports.
	Send(prefix, payload []byte) error

	// AllKeysRaw sets every LED from consecutive R, G, B bytes.
	AllKeysRaw(raw []byte) error
	// AllKeys sets every LED from a per-key parameter, or shows a static
	// gradient for any other parameter.
	AllKeys(cp ColorParam) error
	Pulse(cp ColorParam, speed uint8) error
	Wave(cp ColorParam, speed uint8, dir Direction) error
	Reactive(cp ColorParam, speed uint8, trigger Trigger) error
	ReactiveRipple(cp ColorParam, speed uint8, trigger Trigger) error
	Rain(cp ColorParam, speed uint8, dir Direction) error
	Gradient(cp ColorParam) error
	Fade(cp ColorParam, speed uint8) error
}
