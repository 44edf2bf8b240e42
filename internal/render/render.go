// render.go - maps field state to an RGBA frame buffer

package render

import "github.com/fieldtrace/fdtd-core/internal/gridstate"

// ColorMapper is the concrete default implementation of the "external"
// color look-up named in the simulation core's rendering contract.
type ColorMapper interface {
	Frame(s *gridstate.State) []byte
}

// DefaultMapper implements the fixed color rule: conductor cells
// are green; Ez>0 fades to red, Ez<0 fades to blue, Ez==0 is black.
type DefaultMapper struct{}

// Frame returns a W*H*4 RGBA buffer, row-major top-to-bottom/left-to-right.
func (DefaultMapper) Frame(s *gridstate.State) []byte {
	buf := make([]byte, s.Width*s.Height*4)
	for i := 0; i < s.Width*s.Height; i++ {
		r, g, b, a := cellColor(s.Material[i], s.Ez[i])
		o := i * 4
		buf[o] = r
		buf[o+1] = g
		buf[o+2] = b
		buf[o+3] = a
	}
	return buf
}

func cellColor(material, ez float64) (r, g, b, a byte) {
	if material > 0 {
		return 0, 255, 0, 255
	}

	m := ez
	if m < 0 {
		m = -m
	}
	if m > 1 {
		m = 1
	}
	level := byte(m * 255)

	switch {
	case ez > 0:
		return level, 0, 0, 255
	case ez < 0:
		return 0, 0, level, 255
	default:
		return 0, 0, 0, 255
	}
}
