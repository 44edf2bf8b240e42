// simulator.go - the host-facing facade owning parameters, state, and the modem

package simulator

import (
	"github.com/fieldtrace/fdtd-core/internal/engine"
	"github.com/fieldtrace/fdtd-core/internal/gridstate"
	"github.com/fieldtrace/fdtd-core/internal/modem"
	"github.com/fieldtrace/fdtd-core/internal/modem/packet"
	"github.com/fieldtrace/fdtd-core/internal/obstacle"
	"github.com/fieldtrace/fdtd-core/internal/params"
	"github.com/fieldtrace/fdtd-core/internal/render"
)

const (
	onAirAmplitude          = 50.0
	defaultSamplesPerSymbol = 200
)

// Simulator is the single aggregate root: it owns Parameters, State, the
// Modulator, and the Demodulator, and exposes the operations a host drives
// the simulation with. No internal goroutines, no shared mutable state
// beyond what it owns.
type Simulator struct {
	params params.Parameters
	state  *gridstate.State

	modulator    *modem.Modulator
	demodulator  *modem.Demodulator
	transmitting bool

	masks  obstacle.MaskProvider
	colors render.ColorMapper
}

// Config mirrors the external host's configuration object.
type Config struct {
	Width, Height int
	Source        params.SourceDefinition
	Obstacles     []string
	DurationSteps int
}

// New validates cfg, allocates a fresh State sized Width*Height, rasterizes
// the material mask, and wires default Modulator/Demodulator instances. No
// state is allocated if validation fails.
func New(cfg Config) (*Simulator, error) {
	p := params.Parameters{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Source:        cfg.Source,
		Obstacles:     cfg.Obstacles,
		DurationSteps: cfg.DurationSteps,
	}
	if err := params.Validate(p); err != nil {
		return nil, err
	}

	s := &Simulator{
		params: p,
		masks:  obstacle.Rasterizer{},
		colors: render.DefaultMapper{},
	}

	s.state = gridstate.New(p.Width, p.Height)
	mask := s.masks.Rasterize(p.Width, p.Height, p.Obstacles)
	copy(s.state.Material, mask)

	f1 := p.Source.Frequency
	f0 := f1 / 2
	s.modulator = modem.New(f0, f1, defaultSamplesPerSymbol)
	s.demodulator = modem.NewDemodulator(f0, f1, defaultSamplesPerSymbol)

	return s, nil
}

// Step advances the simulation by one time unit. While transmitting, the
// modulator's next (frequency, amplitudeFactor) pair is pulled and turned
// into a forced ContinuousSine override; once the modulator is exhausted,
// the transmitting flag clears and the step reverts to a natural source.
func (s *Simulator) Step() {
	var forced *float64
	if s.transmitting {
		if freq, factor, ok := s.modulator.Next(); ok {
			amplitude := onAirAmplitude * factor
			sample := engine.Signal(float64(s.state.TimeStep), freq, amplitude, params.ContinuousSine)
			forced = &sample
		} else {
			s.transmitting = false
		}
	}
	engine.Step(s.state, s.params.Source, forced)
}

// Send loads text into the modulator and marks the facade as transmitting.
func (s *Simulator) Send(text string) {
	s.modulator.Load(text)
	s.transmitting = true
}

// SampleReceiver feeds one external sample into the demodulator at the
// current time step. The sampling location is chosen by the host and is
// not part of this facade.
func (s *Simulator) SampleReceiver(v float64) (bit int, ok bool) {
	return s.demodulator.ProcessSample(v, float64(s.state.TimeStep))
}

// SetScheme propagates the modulation scheme to both modem ends.
func (s *Simulator) SetScheme(isASK bool) {
	scheme := modem.FSK
	if isASK {
		scheme = modem.ASK
	}
	s.modulator.SetScheme(scheme)
	s.demodulator.SetScheme(scheme)
}

// CurrentStep returns the simulation's time index.
func (s *Simulator) CurrentStep() int { return s.state.TimeStep }

// FieldAt returns the Ez value at (x, y), or 0 if out of bounds.
func (s *Simulator) FieldAt(x, y int) float64 {
	if !s.state.InBounds(x, y) {
		return 0
	}
	return s.state.Ez[s.state.Index(x, y)]
}

// Frame returns the current RGBA frame buffer.
func (s *Simulator) Frame() []byte {
	return s.colors.Frame(s.state)
}

// DecodedText returns the demodulator's most recently decoded message (or
// CRC-error diagnostic).
func (s *Simulator) DecodedText() string { return s.demodulator.Text() }

// ReceivedBits returns the rolling string of the last decoded bits.
func (s *Simulator) ReceivedBits() string { return s.demodulator.BitHistory() }

// DecoderStatus returns a human-readable packet decoder state label.
func (s *Simulator) DecoderStatus() string { return s.demodulator.StatusLabel() }

// EnableDecodeHistory turns on the packet decoder's diagnostic event log.
func (s *Simulator) EnableDecodeHistory(enabled bool) { s.demodulator.EnableDecodeHistory(enabled) }

// DecodeHistory returns the packet decoder's diagnostic event log.
func (s *Simulator) DecodeHistory() []packet.Event { return s.demodulator.DecodeHistory() }

// Reset zeroes the field planes and time index. The material mask and
// modem configuration are construction-time properties and are untouched.
func (s *Simulator) Reset() {
	s.state.Reset()
	s.transmitting = false
}

// IsTransmitting reports whether a Send is still in flight.
func (s *Simulator) IsTransmitting() bool { return s.transmitting }
