package leddy

import (
	"errors"
	"fmt"
	"time"

	retry "github.com/avast/retry-go/v4"
	gerrors "github.com/gruntwork-io/go-commons/errors"
	"github.com/karalabe/hid"
	"github.com/sirupsen/logrus"

	"github.com/muesli/leddy/logger"
)

// USB identifiers of the supported keyboards.
const (
	VendorID        = 0x2f0e
	ProductFullSize = 0x0101
	ProductCompact  = 0x0102

	// LightingInterface is the USB interface that accepts lighting reports.
	LightingInterface = 1
)

// Command opcodes.
const (
	OpAllKeys        = 0x03
	OpSelectProfile  = 0x04
	OpWritePermanent = 0x05
	OpTemporary      = 0x0f
	OpCommit         = 0x13

	writeColors = 0x02
)

var _ KeyboardInterface = (*Keyboard)(nil)

// Keyboard is a connected STREAK or miniSTREAK keyboard.
type Keyboard struct {
	Path   string
	Serial string
	Mini   bool

	geometry Geometry
	device   ReportWriter
	log      *logrus.Entry

	profile uint8
	// prefix of every color command; either OpWritePermanent with the
	// active profile, or OpTemporary alone
	prefix []byte
}

// NewKeyboard wraps an already opened device. The keyboard starts on
// profile 1 in write-permanent mode.
func NewKeyboard(dev ReportWriter, mini bool) *Keyboard {
	k := &Keyboard{
		Mini:     mini,
		geometry: GeometryFor(mini),
		device:   dev,
		log:      logger.GetProjectLogger(),
		profile:  1,
	}
	k.prefix = k.permanentPrefix()
	return k
}

// Devices returns all connected keyboards exposing the lighting interface.
func Devices() ([]hid.DeviceInfo, error) {
	infos, err := hid.Enumerate(VendorID, 0)
	if err != nil {
		return nil, err
	}

	var devs []hid.DeviceInfo
	for _, info := range infos {
		if info.ProductID != ProductFullSize && info.ProductID != ProductCompact {
			continue
		}
		if info.Interface != LightingInterface {
			continue
		}
		devs = append(devs, info)
	}
	return devs, nil
}

// Open finds the first connected keyboard and opens it for output. Lookup is
// tried up to attempts times, as the keyboard may still be enumerating;
// failing to open a found device is not retried.
func Open(attempts uint, delay time.Duration) (*Keyboard, error) {
	if attempts == 0 {
		attempts = 1
	}

	var info hid.DeviceInfo
	err := retry.Do(
		func() error {
			devs, err := Devices()
			if err != nil {
				return err
			}
			if len(devs) == 0 {
				return ErrNoDevice
			}
			info = devs[0]
			return nil
		},
		retry.Attempts(attempts),
		retry.Delay(delay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, ErrNoDevice)
		}),
	)
	if err != nil {
		return nil, err
	}

	dev, err := info.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open HID device %s: %w\n"+
			"Check whether you have the required access rights.", info.Path, err)
	}

	k := NewKeyboard(dev, info.ProductID == ProductCompact)
	k.Path = info.Path
	k.Serial = info.Serial
	k.log.WithFields(logrus.Fields{
		"path":    info.Path,
		"product": fmt.Sprintf("%04x:%04x", info.VendorID, info.ProductID),
		"model":   k.geometry.Name,
	}).Info("opened keyboard")

	return k, nil
}

// Close the connection with the device.
func (k *Keyboard) Close() error {
	return k.device.Close()
}

// Geometry returns the key layout of the connected variant.
func (k *Keyboard) Geometry() Geometry {
	return k.geometry
}

// Profile returns the active profile.
func (k *Keyboard) Profile() uint8 {
	return k.profile
}

// Temporary reports whether color commands are sent without persisting them.
func (k *Keyboard) Temporary() bool {
	return k.prefix[0] == OpTemporary
}

func (k *Keyboard) permanentPrefix() []byte {
	return []byte{OpWritePermanent, k.profile, writeColors}
}

// SetProfile selects the profile that effects are written to and shows it.
func (k *Keyboard) SetProfile(profile uint8) error {
	if profile < 1 || profile > 4 {
		return fmt.Errorf("%w: %d", ErrInvalidProfile, profile)
	}

	k.profile = profile
	k.log.WithField("profile", profile).Debug("selecting profile")
	return k.EndSoftwareEffect()
}

// BeginSoftwareEffect makes color commands temporary, so that per-frame
// updates of a streaming effect are not persisted.
func (k *Keyboard) BeginSoftwareEffect() {
	k.prefix = []byte{OpTemporary}
}

// EndSoftwareEffect makes color commands persistent again and shows the
// active profile.
func (k *Keyboard) EndSoftwareEffect() error {
	k.prefix = k.permanentPrefix()
	return k.refreshProfile()
}

func (k *Keyboard) refreshProfile() error {
	return k.Send([]byte{OpSelectProfile}, []byte{k.profile})
}

// Send delivers prefix followed by payload as one logical command. A write
// failure aborts the command; reports already written stay applied. After a
// write-permanent command the changes are committed and the active profile
// is shown again.
func (k *Keyboard) Send(prefix, payload []byte) error {
	opcode, err := k.send(prefix, payload)
	if err != nil {
		return err
	}
	if opcode != OpWritePermanent {
		return nil
	}

	if _, err := k.send([]byte{OpCommit}, nil); err != nil {
		return err
	}
	_, err = k.send([]byte{OpSelectProfile}, []byte{k.profile})
	return err
}

// send writes the reports of one command and returns its opcode.
func (k *Keyboard) send(prefix, payload []byte) (byte, error) {
	reports, err := Packetize(prefix, payload)
	if err != nil {
		return 0, err
	}

	opcode := reports[0].Opcode()
	k.log.WithFields(logrus.Fields{
		"opcode":  fmt.Sprintf("0x%02x", opcode),
		"length":  reports[0].Total(),
		"reports": len(reports),
	}).Debug("sending command")

	for i := range reports {
		if err := k.cmdWrite(&reports[i]); err != nil {
			return opcode, err
		}
	}
	return opcode, nil
}

func (k *Keyboard) cmdWrite(r *Report) error {
	if _, err := k.device.Write(r[:]); err != nil {
		return gerrors.WithStackTrace(fmt.Errorf("writing report (opcode 0x%02x, offset %d): %w",
			r.Opcode(), r.Offset(), err))
	}
	return nil
}

// AllKeysRaw sets every LED from consecutive R, G, B bytes in LED index
// order.
func (k *Keyboard) AllKeysRaw(raw []byte) error {
	var prefix []byte
	if k.Temporary() {
		prefix = []byte{OpTemporary, OpAllKeys}
	} else {
		prefix = []byte{OpWritePermanent, k.profile, writeColors, OpAllKeys}
	}
	return k.Send(prefix, raw)
}
