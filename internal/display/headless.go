//go:build headless

// headless.go - no-op display backend for headless builds and tests

package display

import "sync/atomic"

// HeadlessDisplay discards frames but tracks counts, so callers built with
// the "headless" tag behave the same as the windowed backend minus pixels.
type HeadlessDisplay struct {
	started    bool
	cfg        Config
	frameCount uint64
	transmit   func(string)
}

// New returns an unstarted headless display. The scale argument is accepted
// for interface parity with the windowed backend but has no effect.
func New(w, h, scale int) *HeadlessDisplay {
	return &HeadlessDisplay{cfg: Config{Width: w, Height: h, Scale: ClampScale(scale)}}
}

func (h *HeadlessDisplay) Start() error {
	h.started = true
	return nil
}

func (h *HeadlessDisplay) Stop() error {
	h.started = false
	return nil
}

func (h *HeadlessDisplay) Close() error { return h.Stop() }

func (h *HeadlessDisplay) IsStarted() bool { return h.started }

func (h *HeadlessDisplay) SetConfig(cfg Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return &DisplayError{Operation: "SetConfig", Details: "width and height must be > 0"}
	}
	h.cfg = Config{Width: cfg.Width, Height: cfg.Height, Scale: ClampScale(cfg.Scale)}
	return nil
}

func (h *HeadlessDisplay) GetConfig() Config { return h.cfg }

func (h *HeadlessDisplay) UpdateFrame(buf []byte) error {
	if len(buf) != h.cfg.Width*h.cfg.Height*4 {
		return &DisplayError{Operation: "UpdateFrame", Details: "buffer size mismatch"}
	}
	atomic.AddUint64(&h.frameCount, 1)
	return nil
}

func (h *HeadlessDisplay) WaitForVSync() error { return nil }

func (h *HeadlessDisplay) GetFrameCount() uint64 { return atomic.LoadUint64(&h.frameCount) }

func (h *HeadlessDisplay) SetTransmitHandler(fn func(string)) { h.transmit = fn }
