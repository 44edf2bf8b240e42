//go:build !headless

// terminalinput.go - raw-terminal stdin reader that feeds transmit lines into the simulator

package main

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// TerminalInput reads raw stdin byte-by-byte, echoing printable input and
// assembling a line buffer, and calls onLine once Enter is pressed. Only
// instantiated by main() for interactive use - never under test.
type TerminalInput struct {
	onLine func(string)

	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once

	fd          int
	nonblockSet bool
	oldState    *term.State
}

func NewTerminalInput(onLine func(string)) *TerminalInput {
	return &TerminalInput{
		onLine: onLine,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start puts stdin into raw, non-blocking mode and begins reading in a
// background goroutine. Call Stop to restore stdin before the process exits.
func (h *TerminalInput) Start() {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminalinput: failed to set raw mode: %v\n", err)
		close(h.done)
		return
	}
	h.oldState = oldState

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		fmt.Fprintf(os.Stderr, "terminalinput: failed to set nonblocking stdin: %v\n", err)
		_ = term.Restore(h.fd, h.oldState)
		h.oldState = nil
		close(h.done)
		return
	}
	h.nonblockSet = true

	go h.readLoop()
}

func (h *TerminalInput) readLoop() {
	defer close(h.done)
	buf := make([]byte, 1)
	var line []byte

	for {
		select {
		case <-h.stopCh:
			return
		default:
		}

		n, err := syscall.Read(h.fd, buf)
		if n > 0 {
			b := buf[0]
			switch {
			case b == '\r' || b == '\n':
				fmt.Print("\r\n")
				if len(line) > 0 && h.onLine != nil {
					h.onLine(string(line))
				}
				line = line[:0]
			case b == 0x7F || b == 0x08: // DEL or BS
				if len(line) > 0 {
					line = line[:len(line)-1]
					fmt.Print("\b \b")
				}
			case b == 0x03: // Ctrl+C: raw mode delivers it as a byte, so restore the terminal and raise SIGINT
				_ = syscall.SetNonblock(h.fd, false)
				_ = term.Restore(h.fd, h.oldState)
				_ = syscall.Kill(syscall.Getpid(), syscall.SIGINT)
				return
			default:
				line = append(line, b)
				fmt.Printf("%c", b)
			}
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK || n == 0 {
			time.Sleep(5 * time.Millisecond)
		}
	}
}

// Stop terminates the reader goroutine and restores the terminal.
func (h *TerminalInput) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	<-h.done
	if h.nonblockSet {
		_ = syscall.SetNonblock(h.fd, false)
		h.nonblockSet = false
	}
	if h.oldState != nil {
		_ = term.Restore(h.fd, h.oldState)
		h.oldState = nil
	}
}
