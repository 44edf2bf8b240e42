// step.go - the fixed per-step ordering of the FDTD update

package engine

import (
	"github.com/fieldtrace/fdtd-core/internal/gridstate"
	"github.com/fieldtrace/fdtd-core/internal/params"
)

// Step advances the grid by exactly one time unit:
//  1. update Hx, 2. update Hy, 3. update Ez, 4. apply source (forced or
//     natural), 5. apply boundaries, 6. advance TimeStep.
//
// When forced is non-nil, its value is injected instead of invoking Signal
// - this is how the modulator overrides the source during transmission.
func Step(s *gridstate.State, source params.SourceDefinition, forced *float64) {
	w, h := s.Width, s.Height

	UpdateHx(w, h, s.Ez, s.Hx)
	UpdateHy(w, h, s.Ez, s.Hy)
	UpdateEz(w, h, s.Ez, s.Hx, s.Hy, s.Material)

	injectSource(s, source, forced)

	ApplyBoundaries(w, h, s.Ez, s.Hx, s.Hy)

	s.TimeStep++
}

// injectSource adds the instantaneous source value (soft source, additive)
// to Ez at the source cell, if it lies on the grid.
func injectSource(s *gridstate.State, source params.SourceDefinition, forced *float64) {
	if !s.InBounds(source.X, source.Y) {
		return
	}
	idx := s.Index(source.X, source.Y)

	var v float64
	if forced != nil {
		v = *forced
	} else {
		v = Signal(float64(s.TimeStep), source.Frequency, source.Amplitude, source.SignalType)
	}
	s.Ez[idx] += v
}
