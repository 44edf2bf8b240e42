// state.go - the field planes shared by the FDTD engine and the facade

package gridstate

// State holds the three TMz field planes, the static material mask, and the
// simulation clock. All planes are row-major, length Width*Height, indexed
// as y*Width + x. State is owned exclusively by the facade; only the engine
// and Reset mutate it.
type State struct {
	Width, Height int

	Ez Plane
	Hx Plane
	Hy Plane

	// Material is 0 for vacuum, >0 for a perfect electric conductor cell.
	// Static across steps once constructed.
	Material Plane

	TimeStep int
}

// Plane is one row-major scalar field over the grid.
type Plane []float64

// New allocates a zeroed state for a width x height grid.
func New(width, height int) *State {
	size := width * height
	return &State{
		Width:    width,
		Height:   height,
		Ez:       make(Plane, size),
		Hx:       make(Plane, size),
		Hy:       make(Plane, size),
		Material: make(Plane, size),
		TimeStep: 0,
	}
}

// Index converts grid coordinates to a row-major offset.
func (s *State) Index(x, y int) int {
	return y*s.Width + x
}

// InBounds reports whether (x, y) lies on the grid.
func (s *State) InBounds(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// Reset zeroes Ez, Hx, Hy and the time index. The material mask is left
// untouched: it is a construction-time property, not simulation state.
func (s *State) Reset() {
	for i := range s.Ez {
		s.Ez[i] = 0
		s.Hx[i] = 0
		s.Hy[i] = 0
	}
	s.TimeStep = 0
}
