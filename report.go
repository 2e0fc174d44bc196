package leddy

import "fmt"

const (
	// ReportSize is the size of one HID output report, report ID included.
	ReportSize = 65
	// ReportPayloadSize is the number of command bytes carried per report.
	ReportPayloadSize = 57

	reportHeaderSize = ReportSize - ReportPayloadSize
	maxCommandLength = 1<<24 - 1
)

// Report is one output report:
//
//	0     report ID (always 0)
//	1     opcode
//	2-4   total command length, little endian
//	5-7   offset of this window, little endian
//	8-64  command bytes, zero padded
type Report [ReportSize]byte

// Opcode returns the command opcode carried by r.
func (r *Report) Opcode() byte {
	return r[1]
}

// Total returns the length of the whole logical command.
func (r *Report) Total() int {
	return get24(r[2:5])
}

// Offset returns the position of this report's window in the command.
func (r *Report) Offset() int {
	return get24(r[5:8])
}

// Window returns the command bytes carried by r, without padding.
func (r *Report) Window() []byte {
	n := r.Total() - r.Offset()
	if n > ReportPayloadSize {
		n = ReportPayloadSize
	}
	if n < 0 {
		n = 0
	}
	return r[reportHeaderSize : reportHeaderSize+n]
}

// Packetize splits prefix followed by payload into output reports. The
// opcode is the first byte of prefix, or of payload if prefix is empty.
func Packetize(prefix, payload []byte) ([]Report, error) {
	total := len(prefix) + len(payload)
	if total == 0 {
		return nil, ErrEmptyCommand
	}
	if total > maxCommandLength {
		return nil, fmt.Errorf("%w: command length %d exceeds %d", ErrInvalidParam, total, maxCommandLength)
	}

	var opcode byte
	if len(prefix) > 0 {
		opcode = prefix[0]
	} else {
		opcode = payload[0]
	}

	reports := make([]Report, 0, (total+ReportPayloadSize-1)/ReportPayloadSize)
	for ofs := 0; ofs < total; ofs += ReportPayloadSize {
		var r Report
		r[0] = 0x00
		r[1] = opcode
		put24(r[2:5], total)
		put24(r[5:8], ofs)

		end := ofs + ReportPayloadSize
		if end > total {
			end = total
		}
		for i := ofs; i < end; i++ {
			if i < len(prefix) {
				r[i-ofs+reportHeaderSize] = prefix[i]
			} else {
				r[i-ofs+reportHeaderSize] = payload[i-len(prefix)]
			}
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func put24(b []byte, v int) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
}

func get24(b []byte) int {
	return int(b[0]) | int(b[1])<<8 | int(b[2])<<16
}
