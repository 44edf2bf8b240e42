// signal.go - source waveform synthesis

package engine

import (
	"math"

	"github.com/fieldtrace/fdtd-core/internal/params"
)

// Signal evaluates the source waveform at time t (in simulation steps),
// with omega = 2*pi*f. The formulas below are demonstration-grade and
// carry no physical units.
func Signal(t, f, a float64, kind params.SignalType) float64 {
	omega := 2 * math.Pi * f
	period := 1 / f
	switch kind {
	case params.ContinuousSine:
		return a * math.Sin(omega*t)
	case params.ContinuousSquare:
		return a * sign(math.Sin(omega*t))
	case params.PulseSine:
		if t >= 0 && t < period {
			return a * math.Sin(omega*t)
		}
		return 0
	case params.PulseSquare:
		switch {
		case t >= 0 && t < period/2:
			return a
		case t >= period/2 && t < period:
			return -a
		default:
			return 0
		}
	default:
		return 0
	}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
