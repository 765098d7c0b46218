// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package desktop shows an easel canvas in a native window with gogpu.
//
// gogpu.App.Run owns its event loop and blocks until the application quits,
// while an easel window is driven one Pump at a time by the program. A
// Window therefore runs the App on a goroutine of its own: gogpu callbacks
// only record the input, and Pump replays it on the caller's goroutine.
// Frames go the other way through ggcanvas, which uploads them to the GPU
// on the render thread.
//
// Cocoa only accepts windows from the process main thread, which a
// goroutine cannot own, so New fails with ErrMainThread on macOS.
//
// Closing the window is reported through OnClose and otherwise ignored; the
// window goes away on Destroy.
package desktop

import (
	"errors"
	"image"
	"log/slog"
	"runtime"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/easel/platform"
)

var (
	// ErrMainThread is returned by New where native windows need the
	// process main thread.
	ErrMainThread = errors.New("desktop: native windows need the main thread on this platform")

	// ErrClosed is returned by Pump and Present once the event loop ended.
	ErrClosed = errors.New("desktop: window closed")
)

// goos is a variable so tests can exercise the macOS refusal.
var goos = runtime.GOOS

// Option configures a Window.
type Option func(*Window)

// WithLogger sets the logger for diagnostics. nil keeps the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(w *Window) {
		if l != nil {
			w.logger = l
		}
	}
}

// Window is a canvas shown in a gogpu window.
type Window struct {
	platform.Callbacks

	app    *gogpu.App
	title  string
	width  int
	height int
	logger *slog.Logger

	mu      sync.Mutex
	pending []func()
	frame   *gg.ImageBuf
	hooked  bool
	ready   chan struct{}
	done    chan struct{}
	runErr  error

	// render thread only
	canvas *ggcanvas.Canvas
}

func newWindow(title string, width, height int, opts []Option) *Window {
	w := &Window{
		title:  title,
		width:  width,
		height: height,
		logger: slog.New(slog.DiscardHandler),
		ready:  make(chan struct{}),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// New opens a fixed-size native window for a width x height canvas and
// returns once its event loop runs, or with the error that stopped it.
func New(title string, width, height int, opts ...Option) (*Window, error) {
	if goos == "darwin" {
		return nil, ErrMainThread
	}
	w := newWindow(title, width, height, opts)

	cfg := gogpu.DefaultConfig().
		WithTitle(title).
		WithSize(width, height).
		WithContinuousRender(false)
	cfg.Resizable = false
	w.app = gogpu.NewApp(cfg)
	w.forward(w.app.EventSource())
	w.app.OnUpdate(w.update)
	w.app.OnDraw(w.draw)
	w.app.OnClose(w.release)

	go w.run()

	select {
	case <-w.ready:
	case <-w.done:
		w.mu.Lock()
		err := w.runErr
		w.mu.Unlock()
		if err == nil {
			err = ErrClosed
		}
		return nil, err
	}
	w.logger.Debug("desktop: window created", "title", title, "width", width, "height", height)
	return w, nil
}

func (w *Window) run() {
	err := w.app.Run()
	w.mu.Lock()
	w.runErr = err
	w.mu.Unlock()
	close(w.done)
}

// forward records every gogpu input callback for the next Pump.
func (w *Window) forward(src gpucontext.EventSource) {
	src.OnKeyPress(func(k gpucontext.Key, mods gpucontext.Modifiers) {
		w.post(func() { w.EmitKeyPress(k, mods) })
	})
	src.OnKeyRelease(func(k gpucontext.Key, mods gpucontext.Modifiers) {
		w.post(func() { w.EmitKeyRelease(k, mods) })
	})
	src.OnTextInput(func(s string) {
		w.post(func() { w.EmitTextInput(s) })
	})
	src.OnMouseMove(func(x, y float64) {
		w.post(func() { w.EmitMouseMove(x, y) })
	})
	src.OnMousePress(func(b gpucontext.MouseButton, x, y float64) {
		w.post(func() { w.EmitMousePress(b, x, y) })
	})
	src.OnMouseRelease(func(b gpucontext.MouseButton, x, y float64) {
		w.post(func() { w.EmitMouseRelease(b, x, y) })
	})
	src.OnScroll(func(dx, dy float64) {
		w.post(func() { w.EmitScroll(dx, dy) })
	})
	src.OnResize(func(width, height int) {
		w.post(func() { w.EmitResize(width, height) })
	})
	src.OnFocus(func(focused bool) {
		w.post(func() { w.EmitFocus(focused) })
	})
}

func (w *Window) post(fn func()) {
	w.mu.Lock()
	w.pending = append(w.pending, fn)
	w.mu.Unlock()
}

// update runs on the event loop goroutine. The primary window only exists
// once Run started, so the close request is intercepted here.
func (w *Window) update(float64) {
	w.mu.Lock()
	hooked := w.hooked
	w.hooked = true
	w.mu.Unlock()
	if hooked {
		return
	}
	if pw := w.app.PrimaryWindow(); pw != nil {
		pw.SetOnClose(func() bool {
			w.post(w.EmitClose)
			return false
		})
	}
	close(w.ready)
}

// draw runs on the render thread.
func (w *Window) draw(dc *gogpu.Context) {
	w.mu.Lock()
	frame := w.frame
	w.mu.Unlock()
	if frame == nil {
		return
	}
	if w.canvas == nil {
		c, err := ggcanvas.New(w.app.GPUContextProvider(), w.width, w.height)
		if err != nil {
			w.logger.Warn("desktop: canvas not created", "error", err)
			return
		}
		w.canvas = c
	}
	if err := w.canvas.Draw(func(cc *gg.Context) { cc.DrawImage(frame, 0, 0) }); err != nil {
		w.logger.Warn("desktop: draw failed", "error", err)
		return
	}
	if err := w.canvas.Render(dc.RenderTarget()); err != nil {
		w.logger.Warn("desktop: present failed", "error", err)
	}
}

// release runs on the render thread before the GPU device goes away.
func (w *Window) release() {
	if w.canvas != nil {
		_ = w.canvas.Close()
		w.canvas = nil
	}
}

// Pump replays the input recorded since the previous Pump.
func (w *Window) Pump() error {
	w.mu.Lock()
	pending := w.pending
	w.pending = nil
	w.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
	select {
	case <-w.done:
		return w.closedErr()
	default:
		return nil
	}
}

// Present keeps frame for the render thread and asks for a redraw.
func (w *Window) Present(frame image.Image) error {
	select {
	case <-w.done:
		return w.closedErr()
	default:
	}
	buf := gg.ImageBufFromImage(frame)
	w.mu.Lock()
	w.frame = buf
	w.mu.Unlock()
	if w.app != nil {
		w.app.RequestRedraw()
	}
	return nil
}

// Destroy stops the event loop and waits for it to release the window.
func (w *Window) Destroy() error {
	select {
	case <-w.done:
	default:
		w.app.Quit()
		// Quit does not wake a loop blocked on native events.
		w.app.RequestRedraw()
		<-w.done
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.logger.Debug("desktop: window destroyed")
	return w.runErr
}

func (w *Window) closedErr() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.runErr != nil {
		return w.runErr
	}
	return ErrClosed
}
