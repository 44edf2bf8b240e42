//go:build !headless

// ebiten.go - windowed field display backed by ebiten, with clipboard-paste transmit

package display

import (
	"fmt"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
	xdraw "golang.org/x/image/draw"
)

const maxPasteBytes = 4096

// EbitenDisplay renders the field's RGBA frame into a resizable window,
// nearest-neighbor upscaled by Config.Scale, and turns Ctrl+Shift+V clipboard
// pastes into transmit requests for the host's modem.
type EbitenDisplay struct {
	running bool
	window  *ebiten.Image

	width, height int
	scale         int

	raw    []byte // last Width*Height*4 frame handed to UpdateFrame
	scaled *image.RGBA

	mu         sync.RWMutex
	frameCount uint64
	vsyncChan  chan struct{}

	transmitHandler func(string)
	clipboardOnce   sync.Once
	clipboardOK     bool
}

// New returns an unstarted windowed display sized for w x h field cells at
// the given integer scale.
func New(w, h, scale int) *EbitenDisplay {
	scale = ClampScale(scale)
	return &EbitenDisplay{
		width:     w,
		height:    h,
		scale:     scale,
		vsyncChan: make(chan struct{}, 1),
	}
}

func (d *EbitenDisplay) Start() error {
	if d.running {
		return nil
	}
	d.running = true
	ebiten.SetWindowSize(d.width*d.scale, d.height*d.scale)
	ebiten.SetWindowTitle("FDTD field / modem monitor")
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)

	go func() {
		_ = ebiten.RunGame(d)
	}()

	<-d.vsyncChan
	return nil
}

func (d *EbitenDisplay) Stop() error {
	d.running = false
	return nil
}

func (d *EbitenDisplay) Close() error { return d.Stop() }

func (d *EbitenDisplay) IsStarted() bool { return d.running }

func (d *EbitenDisplay) SetConfig(cfg Config) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return &DisplayError{Operation: "SetConfig", Details: "width and height must be > 0"}
	}
	d.width = cfg.Width
	d.height = cfg.Height
	d.scale = ClampScale(cfg.Scale)
	d.window = nil
	return nil
}

func (d *EbitenDisplay) GetConfig() Config {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Config{Width: d.width, Height: d.height, Scale: d.scale}
}

// UpdateFrame stores the raw field buffer; the scaled presentation copy is
// built lazily on the next Draw.
func (d *EbitenDisplay) UpdateFrame(buf []byte) error {
	if len(buf) != d.width*d.height*4 {
		return &DisplayError{Operation: "UpdateFrame", Details: fmt.Sprintf("buffer length %d, want %d", len(buf), d.width*d.height*4)}
	}
	d.mu.Lock()
	d.raw = append(d.raw[:0], buf...)
	d.mu.Unlock()
	return nil
}

func (d *EbitenDisplay) WaitForVSync() error {
	<-d.vsyncChan
	return nil
}

func (d *EbitenDisplay) GetFrameCount() uint64 { return d.frameCount }

func (d *EbitenDisplay) SetTransmitHandler(fn func(string)) {
	d.mu.Lock()
	d.transmitHandler = fn
	d.mu.Unlock()
}

// Draw implements ebiten.Game: it upscales the stored raw RGBA buffer with
// nearest-neighbor interpolation (rather than leaning on ebiten's own image
// scaling) and blits the result.
func (d *EbitenDisplay) Draw(screen *ebiten.Image) {
	d.mu.RLock()
	raw := d.raw
	w, h, scale := d.width, d.height, d.scale
	d.mu.RUnlock()

	if len(raw) != w*h*4 {
		return
	}

	src := &image.RGBA{Pix: raw, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	dstW, dstH := w*scale, h*scale
	if d.scaled == nil || d.scaled.Bounds().Dx() != dstW || d.scaled.Bounds().Dy() != dstH {
		d.scaled = image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	}
	xdraw.NearestNeighbor.Scale(d.scaled, d.scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	if d.window == nil {
		d.window = ebiten.NewImage(dstW, dstH)
	}
	d.window.WritePixels(d.scaled.Pix)
	screen.DrawImage(d.window, nil)

	d.frameCount++
	select {
	case d.vsyncChan <- struct{}{}:
	default:
	}

	d.handlePaste()
}

func (d *EbitenDisplay) Layout(_, _ int) (int, int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.width * d.scale, d.height * d.scale
}

func (d *EbitenDisplay) handlePaste() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	if !ctrl || !shift || !inpututil.IsKeyJustPressed(ebiten.KeyV) {
		return
	}

	d.clipboardOnce.Do(func() {
		d.clipboardOK = clipboard.Init() == nil
	})
	if !d.clipboardOK {
		return
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return
	}
	if len(data) > maxPasteBytes {
		data = data[:maxPasteBytes]
	}

	d.mu.RLock()
	handler := d.transmitHandler
	d.mu.RUnlock()
	if handler != nil {
		handler(string(data))
	}
}
