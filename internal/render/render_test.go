package render

import (
	"testing"

	"github.com/fieldtrace/fdtd-core/internal/gridstate"
)

func TestFrameSize(t *testing.T) {
	s := gridstate.New(10, 10)
	buf := DefaultMapper{}.Frame(s)
	if len(buf) != 10*10*4 {
		t.Fatalf("frame size = %d, want %d", len(buf), 10*10*4)
	}
}

func TestFrameConductorIsGreen(t *testing.T) {
	s := gridstate.New(2, 2)
	s.Material[0] = 1
	buf := DefaultMapper{}.Frame(s)
	if buf[0] != 0 || buf[1] != 255 || buf[2] != 0 || buf[3] != 255 {
		t.Fatalf("conductor cell color = %v, want [0,255,0,255]", buf[:4])
	}
}

func TestFramePositiveEzIsRed(t *testing.T) {
	s := gridstate.New(1, 1)
	s.Ez[0] = 2 // clamps to 1 -> 255
	buf := DefaultMapper{}.Frame(s)
	if buf[0] != 255 || buf[1] != 0 || buf[2] != 0 || buf[3] != 255 {
		t.Fatalf("positive Ez color = %v, want [255,0,0,255]", buf[:4])
	}
}

func TestFrameNegativeEzIsBlue(t *testing.T) {
	s := gridstate.New(1, 1)
	s.Ez[0] = -0.5
	buf := DefaultMapper{}.Frame(s)
	// 0.5*255 = 127.5, truncated to 127 by the byte conversion.
	if buf[0] != 0 || buf[1] != 0 || buf[2] != 127 || buf[3] != 255 {
		t.Fatalf("negative Ez color = %v, want [0,0,127,255]", buf[:4])
	}
}

func TestFrameZeroEzIsBlack(t *testing.T) {
	s := gridstate.New(1, 1)
	buf := DefaultMapper{}.Frame(s)
	if buf[0] != 0 || buf[1] != 0 || buf[2] != 0 || buf[3] != 255 {
		t.Fatalf("zero Ez color = %v, want [0,0,0,255]", buf[:4])
	}
}
