//go:build !headless

// oto.go - oto v3 backed Sink implementation

package sonify

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

// OtoSink plays whatever SampleSource currently returns through the system's
// default audio device. The source is held behind an atomic.Pointer so the
// oto Read callback, which runs on its own goroutine, never takes a lock on
// the hot path.
type OtoSink struct {
	ctx    *oto.Context
	player *oto.Player

	source  atomic.Pointer[SampleSource]
	started bool
	mu      sync.Mutex
}

// NewOtoSink opens a mono float32 oto context at sampleRate and returns an
// unstarted sink.
func NewOtoSink(sampleRate int) (*OtoSink, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	}
	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, err
	}
	<-ready

	s := &OtoSink{ctx: ctx}
	s.player = ctx.NewPlayer(s)
	return s, nil
}

// Read implements io.Reader for oto.Player: it fills p with float32 samples
// drawn from the currently installed SampleSource, or silence if none.
func (s *OtoSink) Read(p []byte) (int, error) {
	src := s.source.Load()
	if src == nil {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}

	n := len(p) / 4
	buf := make([]float32, n)
	fn := *src
	for i := 0; i < n; i++ {
		buf[i] = clamp(fn())
	}
	for i, v := range buf {
		bits := math.Float32bits(v)
		o := i * 4
		p[o] = byte(bits)
		p[o+1] = byte(bits >> 8)
		p[o+2] = byte(bits >> 16)
		p[o+3] = byte(bits >> 24)
	}
	return len(p), nil
}

func (s *OtoSink) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		s.player.Play()
		s.started = true
	}
	return nil
}

func (s *OtoSink) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		s.player.Pause()
		s.started = false
	}
	return nil
}

func (s *OtoSink) Close() error {
	_ = s.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player.Close()
}

func (s *OtoSink) IsStarted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

func (s *OtoSink) SetSource(src SampleSource) {
	if src == nil {
		s.source.Store(nil)
		return
	}
	s.source.Store(&src)
}

// NewSink opens the platform audio device at sampleRate. It is the
// build-tag-swappable entry point hosts use instead of naming a backend
// type directly - see NewSink in headless.go for the other half.
func NewSink(sampleRate int) (Sink, error) {
	return NewOtoSink(sampleRate)
}
