package scenario

import (
	"strings"
	"testing"

	"github.com/fieldtrace/fdtd-core/internal/params"
)

const validScript = `
scene = {
  width = 200,
  height = 150,
  duration_steps = 4000,
  source = {
    x = 100, y = 75,
    amplitude = 1.0,
    frequency = 0.05,
    signal_type = "ContinuousSine",
  },
  obstacles = {
    "M 10 10 L 20 10 L 20 20 L 10 20 Z",
  },
}
`

func TestLoadValidScript(t *testing.T) {
	p, err := Load([]byte(validScript))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Width != 200 || p.Height != 150 || p.DurationSteps != 4000 {
		t.Fatalf("unexpected dims: %+v", p)
	}
	if p.Source.X != 100 || p.Source.Y != 75 || p.Source.SignalType != params.ContinuousSine {
		t.Fatalf("unexpected source: %+v", p.Source)
	}
	if len(p.Obstacles) != 1 || p.Obstacles[0] != "M 10 10 L 20 10 L 20 20 L 10 20 Z" {
		t.Fatalf("unexpected obstacles: %v", p.Obstacles)
	}
	if err := params.Validate(p); err != nil {
		t.Fatalf("resulting Parameters should validate: %v", err)
	}
}

func TestLoadWithoutObstaclesIsOptional(t *testing.T) {
	script := `
scene = {
  width = 10, height = 10, duration_steps = 10,
  source = { x = 5, y = 5, amplitude = 1, frequency = 1, signal_type = "PulseSquare" },
}
`
	p, err := Load([]byte(script))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Obstacles != nil {
		t.Fatalf("expected nil obstacles, got %v", p.Obstacles)
	}
}

func TestLoadRejectsSyntaxError(t *testing.T) {
	_, err := Load([]byte("this is not lua {{{"))
	if err == nil {
		t.Fatal("expected an error for invalid lua syntax")
	}
}

func TestLoadRejectsMissingSceneTable(t *testing.T) {
	_, err := Load([]byte("x = 1"))
	if err == nil || !strings.Contains(err.Error(), "scene") {
		t.Fatalf("expected a missing-scene error, got %v", err)
	}
}

func TestLoadRejectsMissingField(t *testing.T) {
	script := `scene = { width = 10, height = 10 }`
	_, err := Load([]byte(script))
	if err == nil || !strings.Contains(err.Error(), "duration_steps") {
		t.Fatalf("expected an error naming duration_steps, got %v", err)
	}
}

func TestLoadRejectsMissingSourceTable(t *testing.T) {
	script := `scene = { width = 10, height = 10, duration_steps = 10 }`
	_, err := Load([]byte(script))
	if err == nil || !strings.Contains(err.Error(), "scene.source") {
		t.Fatalf("expected an error naming scene.source, got %v", err)
	}
}

func TestLoadRejectsUnknownSignalType(t *testing.T) {
	script := `
scene = {
  width = 10, height = 10, duration_steps = 10,
  source = { x = 5, y = 5, amplitude = 1, frequency = 1, signal_type = "Sawtooth" },
}
`
	_, err := Load([]byte(script))
	if err == nil || !strings.Contains(err.Error(), "signal_type") {
		t.Fatalf("expected an error naming signal_type, got %v", err)
	}
}

func TestLoadRejectsNonStringObstacle(t *testing.T) {
	script := `
scene = {
  width = 10, height = 10, duration_steps = 10,
  source = { x = 5, y = 5, amplitude = 1, frequency = 1, signal_type = "ContinuousSine" },
  obstacles = { 42 },
}
`
	_, err := Load([]byte(script))
	if err == nil || !strings.Contains(err.Error(), "obstacles") {
		t.Fatalf("expected an error naming obstacles, got %v", err)
	}
}
