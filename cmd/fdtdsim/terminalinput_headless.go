//go:build headless

// terminalinput_headless.go - no-op stand-in for the raw-terminal reader

package main

// TerminalInput is a no-op under headless builds; there is no interactive
// terminal to read from, but the call sites stay identical.
type TerminalInput struct{}

func NewTerminalInput(onLine func(string)) *TerminalInput { return &TerminalInput{} }

func (h *TerminalInput) Start() {}
func (h *TerminalInput) Stop()  {}
