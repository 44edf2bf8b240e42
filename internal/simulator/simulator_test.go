package simulator

import (
	"testing"

	"github.com/fieldtrace/fdtd-core/internal/params"
)

func validConfig() Config {
	return Config{
		Width:  10,
		Height: 10,
		Source: params.SourceDefinition{
			X: 5, Y: 5, Amplitude: 1, Frequency: 1, SignalType: params.ContinuousSine,
		},
		DurationSteps: 100,
	}
}

func TestNewSucceedsWithValidConfig(t *testing.T) {
	sim, err := New(validConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if sim.CurrentStep() != 0 {
		t.Fatalf("CurrentStep() = %d, want 0", sim.CurrentStep())
	}
}

func TestNewFailsWithInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Width = 0
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for width=0")
	}
}

func TestStepAdvancesTime(t *testing.T) {
	sim, err := New(validConfig())
	if err != nil {
		t.Fatal(err)
	}
	sim.Step()
	if sim.CurrentStep() != 1 {
		t.Fatalf("CurrentStep() = %d, want 1", sim.CurrentStep())
	}
}

func TestFrameBufferSize(t *testing.T) {
	sim, err := New(validConfig())
	if err != nil {
		t.Fatal(err)
	}
	buf := sim.Frame()
	if len(buf) != 10*10*4 {
		t.Fatalf("frame size = %d, want %d", len(buf), 10*10*4)
	}
}

func TestFieldAtOutOfBoundsReturnsZero(t *testing.T) {
	sim, err := New(validConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got := sim.FieldAt(1000, 1000); got != 0 {
		t.Fatalf("FieldAt(out of bounds) = %v, want 0", got)
	}
}

func TestSendTransmitsThenClearsFlag(t *testing.T) {
	sim, err := New(validConfig())
	if err != nil {
		t.Fatal(err)
	}
	sim.Send("hi")
	if !sim.IsTransmitting() {
		t.Fatal("expected IsTransmitting() after Send")
	}

	// A full frame is 8*(3+len("hi")+1) = 8*6 = 48 bits at 200 samples/bit.
	for i := 0; i < 48*200+1; i++ {
		sim.Step()
	}
	if sim.IsTransmitting() {
		t.Fatal("expected IsTransmitting() to clear once the frame is fully sent")
	}
}

func TestResetZeroesStepAndClearsTransmitting(t *testing.T) {
	sim, err := New(validConfig())
	if err != nil {
		t.Fatal(err)
	}
	sim.Send("x")
	sim.Step()
	sim.Reset()

	if sim.CurrentStep() != 0 {
		t.Fatalf("CurrentStep() after Reset = %d, want 0", sim.CurrentStep())
	}
	if sim.IsTransmitting() {
		t.Fatal("Reset should clear the transmitting flag")
	}
}

func TestSetSchemeThenSendAndStepRuns(t *testing.T) {
	sim, err := New(validConfig())
	if err != nil {
		t.Fatal(err)
	}
	// Exercises the call path; scheme effects are covered at the modem
	// package level. Here we only assert it does not panic and a
	// subsequent send/step cycle still functions.
	sim.SetScheme(true)
	sim.Send("a")
	sim.Step()
}

func TestSampleReceiverForwardsToDemodulatorWithoutPanicking(t *testing.T) {
	sim, err := New(validConfig())
	if err != nil {
		t.Fatal(err)
	}
	sim.Send("Hi")
	for i := 0; i < 500; i++ {
		sim.Step()
		sim.SampleReceiver(sim.FieldAt(5, 5))
	}
	// The physical channel (soft source coupled through the FDTD mesh) is
	// not a clean tone, so a full decode is not asserted here - that
	// bit-exact round trip is covered directly at the modem package level
	// (see TestPacketRoundTripThroughModulatorAndDecoder). This test only
	// guards the wiring: driving Send/Step/SampleReceiver together must
	// not panic and the decoder must still report a valid status label.
	switch sim.DecoderStatus() {
	case "SearchPreamble", "SearchSync", "ReadLength", "ReadPayload", "ReadCRC":
	default:
		t.Fatalf("unexpected decoder status %q", sim.DecoderStatus())
	}
}
