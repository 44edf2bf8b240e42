// demodulator.go - quadrature correlator and two-tone energy decision

package modem

import (
	"math"

	"github.com/fieldtrace/fdtd-core/internal/modem/packet"
)

const (
	squelchFloor = 1.0
	askThreshold = 800.0 // coupled to the host's on-air amplitude (50)
	bitsHistCap  = 64
)

// Demodulator correlates one symbol's worth of samples against two
// candidate tones and decides a bit per symbol, feeding the result to an
// embedded packet decoder.
type Demodulator struct {
	freq0, freq1     float64
	samplesPerSymbol int
	scheme           Scheme

	i0, q0, i1, q1 float64
	sampleCounter  int

	decoder    *packet.Decoder
	lastText   string
	bitHistory []byte
}

// NewDemodulator returns a demodulator with a fresh embedded packet decoder.
func NewDemodulator(freq0, freq1 float64, samplesPerSymbol int) *Demodulator {
	return &Demodulator{
		freq0:            freq0,
		freq1:            freq1,
		samplesPerSymbol: samplesPerSymbol,
		scheme:           FSK,
		decoder:          packet.New(),
	}
}

// SetScheme switches the decision rule between FSK and ASK.
func (d *Demodulator) SetScheme(s Scheme) { d.scheme = s }

// ProcessSample folds one field sample into the running correlators and,
// once a full symbol has accumulated, decides a bit (or squelches). It
// returns the decided bit and ok=true on a symbol boundary that is not
// squelched, ok=false otherwise.
func (d *Demodulator) ProcessSample(v, t float64) (bit int, ok bool) {
	omega0 := 2 * math.Pi * d.freq0
	omega1 := 2 * math.Pi * d.freq1

	d.i0 += v * math.Cos(omega0*t)
	d.q0 += v * math.Sin(omega0*t)
	d.i1 += v * math.Cos(omega1*t)
	d.q1 += v * math.Sin(omega1*t)
	d.sampleCounter++

	if d.sampleCounter < d.samplesPerSymbol {
		return 0, false
	}

	energy0 := d.i0*d.i0 + d.q0*d.q0
	energy1 := d.i1*d.i1 + d.q1*d.q1

	if energy0+energy1 < squelchFloor {
		d.resetAccumulators()
		return 0, false
	}

	if d.scheme == ASK {
		if energy1 > askThreshold {
			bit = 1
		}
	} else {
		if energy1 > energy0 {
			bit = 1
		}
	}

	d.pushBitHistory(bit)
	if text, complete := d.decoder.PushBit(bit); complete {
		d.lastText = text
	}

	d.resetAccumulators()
	return bit, true
}

func (d *Demodulator) resetAccumulators() {
	d.sampleCounter = 0
	d.i0, d.q0, d.i1, d.q1 = 0, 0, 0, 0
}

func (d *Demodulator) pushBitHistory(bit int) {
	c := byte('0')
	if bit == 1 {
		c = '1'
	}
	d.bitHistory = append(d.bitHistory, c)
	if len(d.bitHistory) > bitsHistCap {
		d.bitHistory = d.bitHistory[len(d.bitHistory)-bitsHistCap:]
	}
}

// Text returns the most recently decoded message (or CRC-error diagnostic).
func (d *Demodulator) Text() string { return d.lastText }

// BitHistory returns the rolling string of the last (up to 64) decoded
// bits, for diagnostics.
func (d *Demodulator) BitHistory() string { return string(d.bitHistory) }

// StatusLabel returns a human-readable packet decoder state name.
func (d *Demodulator) StatusLabel() string { return d.decoder.State().String() }

// EnableDecodeHistory turns on the packet decoder's per-field event log.
func (d *Demodulator) EnableDecodeHistory(enabled bool) { d.decoder.RecordHistory = enabled }

// DecodeHistory returns the packet decoder's diagnostic event log.
func (d *Demodulator) DecodeHistory() []packet.Event { return d.decoder.History }
