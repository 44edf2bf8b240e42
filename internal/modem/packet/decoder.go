// decoder.go - bit-serial packet state machine

package packet

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// State names one stage of the frame scan.
type State int

const (
	SearchPreamble State = iota
	SearchSync
	ReadLength
	ReadPayload
	ReadCRC
)

func (s State) String() string {
	switch s {
	case SearchPreamble:
		return "SearchPreamble"
	case SearchSync:
		return "SearchSync"
	case ReadLength:
		return "ReadLength"
	case ReadPayload:
		return "ReadPayload"
	case ReadCRC:
		return "ReadCRC"
	default:
		return "Unknown"
	}
}

const (
	preambleByte = 0xAA
	syncByte     = 0x7E
	historyCap   = 256
)

// Event is an optional diagnostic record of one completed field (preamble,
// sync, length, each payload byte, or CRC). Purely additive: no operation
// in this package depends on it.
type Event struct {
	Label string
	Bits  string
	Error bool
}

// Decoder locates preamble/sync/length/payload/CRC in an incoming bit
// stream and emits decoded text or a CRC-error diagnostic. It never gets
// stuck: SearchPreamble keeps shifting until 0xAA reappears, and a lost
// sync simply restarts the whole scan from SearchPreamble after a failed
// CRC (the frame is still fully consumed - Read* states never resync).
type Decoder struct {
	state    State
	shift    byte
	bitCount int

	length  byte
	payload []byte
	crc     byte

	// RecordHistory enables the append-only Event log below.
	RecordHistory bool
	History       []Event

	bitsBuf string
}

// New returns a decoder ready at SearchPreamble.
func New() *Decoder {
	return &Decoder{state: SearchPreamble}
}

// State reports the decoder's current scan stage.
func (d *Decoder) State() State { return d.state }

// Reset returns the decoder to SearchPreamble with a clean shift register.
func (d *Decoder) Reset() {
	d.state = SearchPreamble
	d.shift = 0
	d.bitCount = 0
	d.payload = nil
	d.bitsBuf = ""
}

// PushBit feeds one bit (only the low bit of the value is used, so 2 counts
// as 0) into the shift register and advances the state machine. It returns the
// decoded text (or a "[CRC ERROR] ..." diagnostic) when a full frame has
// just completed, and ok=false otherwise.
func (d *Decoder) PushBit(bit int) (text string, ok bool) {
	b := byte(bit & 1)
	d.shift = (d.shift << 1) | b
	if d.RecordHistory {
		if b == 1 {
			d.bitsBuf += "1"
		} else {
			d.bitsBuf += "0"
		}
	}

	switch d.state {
	case SearchPreamble:
		if d.shift == preambleByte {
			d.recordEvent("PRE", false)
			d.bitCount = 0
			d.state = SearchSync
		}
	case SearchSync:
		if d.shift == syncByte {
			d.recordEvent("SYNC", false)
			d.bitCount = 0
			d.state = ReadLength
		}
	case ReadLength:
		d.bitCount++
		if d.bitCount == 8 {
			d.length = d.shift
			d.recordEvent("LEN", false)
			d.payload = make([]byte, 0, d.length)
			d.bitCount = 0
			if d.length == 0 {
				d.state = ReadCRC
			} else {
				d.state = ReadPayload
			}
		}
	case ReadPayload:
		d.bitCount++
		if d.bitCount == 8 {
			d.payload = append(d.payload, d.shift)
			d.recordEvent(payloadLabel(d.shift), false)
			d.bitCount = 0
			if len(d.payload) == int(d.length) {
				d.state = ReadCRC
			}
		}
	case ReadCRC:
		d.bitCount++
		if d.bitCount == 8 {
			d.crc = d.shift
			computed := checksum(d.payload)
			valid := d.crc == computed

			d.recordEvent("CRC", !valid)
			d.state = SearchPreamble
			d.bitCount = 0

			if valid {
				text = decodeLossy(d.payload)
			} else {
				text = fmt.Sprintf("[CRC ERROR] Expected %02X, Got %02X", computed, d.crc)
			}
			return text, true
		}
	}
	return "", false
}

func payloadLabel(b byte) string {
	return decodeLossy([]byte{b})
}

// decodeLossy decodes bytes as UTF-8, substituting the Unicode replacement
// character for any invalid sequence rather than failing outright.
func decodeLossy(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}

func checksum(payload []byte) byte {
	var sum int
	for _, b := range payload {
		sum += int(b)
	}
	return byte(sum % 256)
}

func (d *Decoder) recordEvent(label string, isError bool) {
	if !d.RecordHistory {
		return
	}
	d.History = append(d.History, Event{Label: label, Bits: d.bitsBuf, Error: isError})
	if len(d.History) > historyCap {
		d.History = d.History[len(d.History)-historyCap:]
	}
	d.bitsBuf = ""
}
