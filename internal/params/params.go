// params.go - simulation parameters and validation

package params

import "fmt"

// SignalType selects the waveform synthesized at a source cell.
type SignalType int

const (
	ContinuousSine SignalType = iota
	ContinuousSquare
	PulseSine
	PulseSquare
)

func (s SignalType) String() string {
	switch s {
	case ContinuousSine:
		return "ContinuousSine"
	case ContinuousSquare:
		return "ContinuousSquare"
	case PulseSine:
		return "PulseSine"
	case PulseSquare:
		return "PulseSquare"
	default:
		return "Unknown"
	}
}

// ParseSignalType maps a configuration name to a SignalType.
func ParseSignalType(name string) (SignalType, error) {
	switch name {
	case "ContinuousSine":
		return ContinuousSine, nil
	case "ContinuousSquare":
		return ContinuousSquare, nil
	case "PulseSine":
		return PulseSine, nil
	case "PulseSquare":
		return PulseSquare, nil
	default:
		return 0, fmt.Errorf("params: unknown signal_type %q", name)
	}
}

// SourceDefinition places a radiating/injecting cell on the grid.
type SourceDefinition struct {
	X, Y       int
	Amplitude  float64
	Frequency  float64
	SignalType SignalType
}

// Parameters is the host-supplied, validated configuration for one simulation.
type Parameters struct {
	Width, Height int
	Source        SourceDefinition
	Obstacles     []string
	DurationSteps int
}

// ConfigError identifies a construction-time configuration failure. Per the
// error model, no state is allocated when one of these is returned.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "fdtd: invalid configuration: " + e.Reason
}

// Validate rejects illegal grids, out-of-range source coordinates,
// non-positive frequency, and non-positive durations.
func Validate(p Parameters) error {
	if p.Width < 1 {
		return &ConfigError{Reason: "width must be >= 1"}
	}
	if p.Height < 1 {
		return &ConfigError{Reason: "height must be >= 1"}
	}
	if p.Source.X < 0 || p.Source.X >= p.Width {
		return &ConfigError{Reason: fmt.Sprintf("source.x %d out of bounds [0,%d)", p.Source.X, p.Width)}
	}
	if p.Source.Y < 0 || p.Source.Y >= p.Height {
		return &ConfigError{Reason: fmt.Sprintf("source.y %d out of bounds [0,%d)", p.Source.Y, p.Height)}
	}
	if p.Source.Frequency <= 0 {
		return &ConfigError{Reason: "source.frequency must be > 0"}
	}
	if p.DurationSteps <= 0 {
		return &ConfigError{Reason: "duration_steps must be > 0"}
	}
	return nil
}
