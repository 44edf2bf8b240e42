package gridstate

import "testing"

func TestNewAllocatesEqualLengthPlanes(t *testing.T) {
	s := New(7, 5)
	size := 7 * 5
	if len(s.Ez) != size || len(s.Hx) != size || len(s.Hy) != size || len(s.Material) != size {
		t.Fatalf("plane length mismatch: want %d for all four planes", size)
	}
	if s.TimeStep != 0 {
		t.Fatalf("new state should start at TimeStep=0, got %d", s.TimeStep)
	}
}

func TestIndexIsRowMajor(t *testing.T) {
	s := New(10, 10)
	if got := s.Index(5, 5); got != 55 {
		t.Fatalf("Index(5,5) = %d, want 55", got)
	}
}

func TestResetZeroesFieldsButKeepsMaterial(t *testing.T) {
	s := New(4, 4)
	s.Ez[5] = 1
	s.Hx[5] = 2
	s.Hy[5] = 3
	s.Material[5] = 9
	s.TimeStep = 42

	s.Reset()

	if s.Ez[5] != 0 || s.Hx[5] != 0 || s.Hy[5] != 0 {
		t.Fatal("Reset did not zero field planes")
	}
	if s.Material[5] != 9 {
		t.Fatal("Reset must not touch the material mask")
	}
	if s.TimeStep != 0 {
		t.Fatalf("Reset did not zero TimeStep, got %d", s.TimeStep)
	}
}

func TestInBounds(t *testing.T) {
	s := New(3, 2)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true}, {2, 1, true}, {3, 0, false}, {0, 2, false}, {-1, 0, false},
	}
	for _, c := range cases {
		if got := s.InBounds(c.x, c.y); got != c.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}
