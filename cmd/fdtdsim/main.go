// main.go - demo host binary: wires the field simulator to a window, an audio
// monitor, clipboard paste, and a raw-terminal text prompt.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fieldtrace/fdtd-core/internal/display"
	"github.com/fieldtrace/fdtd-core/internal/params"
	"github.com/fieldtrace/fdtd-core/internal/scenario"
	"github.com/fieldtrace/fdtd-core/internal/simulator"
	"github.com/fieldtrace/fdtd-core/internal/sonify"
)

const (
	sonifySampleRate = 44100
	framesPerSecond  = 60
	stepsPerFrame    = 4
	windowScale      = 4
)

// defaultScenario is used when no scenario file is given on the command
// line: a single FSK source radiating into an otherwise empty grid with a
// conductive obstacle square in a corner.
const defaultScenario = `
scene = {
  width = 160, height = 120,
  duration_steps = 100000,
  source = {
    x = 80, y = 60,
    amplitude = 1.0,
    frequency = 0.05,
    signal_type = "ContinuousSine",
  },
  obstacles = {
    "M 10 10 L 30 10 L 30 30 L 10 30 Z",
  },
}
`

func main() {
	src := []byte(defaultScenario)
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "fdtdsim: reading scenario %s: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		src = data
	}

	p, err := scenario.Load(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fdtdsim: loading scenario: %v\n", err)
		os.Exit(1)
	}

	sim, err := simulator.New(simulator.Config{
		Width:         p.Width,
		Height:        p.Height,
		Source:        p.Source,
		Obstacles:     p.Obstacles,
		DurationSteps: p.DurationSteps,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "fdtdsim: constructing simulator: %v\n", err)
		os.Exit(1)
	}

	view := display.New(p.Width, p.Height, windowScale)
	view.SetTransmitHandler(func(text string) {
		sim.Send(text)
	})
	if err := view.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "fdtdsim: starting display: %v\n", err)
		os.Exit(1)
	}
	defer view.Close()

	sink, err := sonify.NewSink(sonifySampleRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fdtdsim: opening audio sink: %v\n", err)
		os.Exit(1)
	}
	receiverX, receiverY := p.Source.X, clampReceiverY(p)
	sink.SetSource(func() float32 {
		return float32(sim.FieldAt(receiverX, receiverY))
	})
	if err := sink.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "fdtdsim: starting audio sink: %v\n", err)
		os.Exit(1)
	}
	defer sink.Close()

	input := NewTerminalInput(func(line string) {
		sim.Send(line)
	})
	input.Start()
	defer input.Stop()

	fmt.Println("fdtdsim: Ctrl+Shift+V pastes clipboard text to transmit; type a line and press Enter to transmit; Ctrl+C to quit.")

	ticker := time.NewTicker(time.Second / framesPerSecond)
	defer ticker.Stop()

	for range ticker.C {
		for i := 0; i < stepsPerFrame; i++ {
			sim.Step()
			sim.SampleReceiver(sim.FieldAt(receiverX, receiverY))
		}
		if err := view.UpdateFrame(sim.Frame()); err != nil {
			fmt.Fprintf(os.Stderr, "fdtdsim: updating frame: %v\n", err)
			return
		}
		if !view.IsStarted() {
			return
		}
	}
}

// clampReceiverY offsets the receiver probe a few cells below the source so
// it is sampling the radiating field rather than sitting directly on top of
// the transmitter.
func clampReceiverY(p params.Parameters) int {
	y := p.Source.Y + 10
	if y >= p.Height {
		y = p.Height - 1
	}
	return y
}
