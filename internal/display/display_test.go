//go:build !headless

package display

import "testing"

func TestClampScale(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 1}, {-5, 1}, {1, 1}, {4, 4}, {8, 8}, {9, 8},
	}
	for _, c := range cases {
		if got := ClampScale(c.in); got != c.want {
			t.Fatalf("ClampScale(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestEbitenDisplaySetAndGetConfig(t *testing.T) {
	d := New(10, 10, 2)
	if err := d.SetConfig(Config{Width: 20, Height: 15, Scale: 100}); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	got := d.GetConfig()
	if got.Width != 20 || got.Height != 15 || got.Scale != 8 {
		t.Fatalf("GetConfig() = %+v, want {20 15 8}", got)
	}
}

func TestEbitenDisplaySetConfigRejectsZeroDims(t *testing.T) {
	d := New(10, 10, 1)
	if err := d.SetConfig(Config{Width: 0, Height: 10, Scale: 1}); err == nil {
		t.Fatal("expected an error for width=0")
	}
}

func TestEbitenDisplayUpdateFrameRejectsWrongSize(t *testing.T) {
	d := New(4, 4, 1)
	if err := d.UpdateFrame(make([]byte, 10)); err == nil {
		t.Fatal("expected an error for mismatched buffer length")
	}
	if err := d.UpdateFrame(make([]byte, 4*4*4)); err != nil {
		t.Fatalf("UpdateFrame with correct size: %v", err)
	}
}

func TestEbitenDisplayIsStartedBeforeStart(t *testing.T) {
	d := New(4, 4, 1)
	if d.IsStarted() {
		t.Fatal("a freshly constructed display should not report started")
	}
}

func TestEbitenDisplayFrameCountStartsAtZero(t *testing.T) {
	d := New(4, 4, 1)
	if d.GetFrameCount() != 0 {
		t.Fatalf("GetFrameCount() = %d, want 0", d.GetFrameCount())
	}
}
