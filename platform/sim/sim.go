// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sim provides a headless, scripted easel window.
//
// Input is scripted ahead of time and delivered on the next Pump, exactly
// like a real window delivers what the user did between two refreshes:
//
//	win := sim.New("test", 200, 100)
//	win.Click(gpucontext.MouseButtonLeft, 10, 20)
//	win.PressKey(gpucontext.KeyA, 0)
//	s, _ := easel.Open(200, 100, easel.WithPlatform(func(string, int, int) (easel.Platform, error) {
//		return win, nil
//	}))
package sim

import (
	"errors"
	"image"
	"slices"
	"sync"

	"github.com/gogpu/gpucontext"
	"golang.org/x/image/draw"

	"github.com/gogpu/easel/platform"
)

// ErrDestroyed is returned by Pump and Present after Destroy.
var ErrDestroyed = errors.New("sim: window destroyed")

// Window is an in-memory window. Scripting methods may be called from any
// goroutine; callbacks only run inside Pump.
type Window struct {
	platform.Callbacks

	mu        sync.Mutex
	title     string
	width     int
	height    int
	pending   []func()
	hooks     []func(pump int)
	pumps     int
	frames    int
	last      *image.RGBA
	destroyed bool

	// Errors returned by the next Pump, Present or Destroy, then cleared.
	PumpErr    error
	PresentErr error
	DestroyErr error
}

// New returns a window of the given canvas size.
func New(title string, width, height int) *Window {
	return &Window{title: title, width: width, height: height}
}

func (w *Window) script(fn func()) {
	w.mu.Lock()
	w.pending = append(w.pending, fn)
	w.mu.Unlock()
}

// OnPump registers fn to run at the start of every Pump with the 1-based
// pump count, before scripted input is delivered. fn may script more input
// for that same Pump.
func (w *Window) OnPump(fn func(pump int)) {
	w.mu.Lock()
	w.hooks = append(w.hooks, fn)
	w.mu.Unlock()
}

// PressKey scripts a key going down.
func (w *Window) PressKey(k gpucontext.Key, mods gpucontext.Modifiers) {
	w.script(func() { w.EmitKeyPress(k, mods) })
}

// ReleaseKey scripts a key going up.
func (w *Window) ReleaseKey(k gpucontext.Key, mods gpucontext.Modifiers) {
	w.script(func() { w.EmitKeyRelease(k, mods) })
}

// TypeKey scripts a press immediately followed by a release.
func (w *Window) TypeKey(k gpucontext.Key, mods gpucontext.Modifiers) {
	w.PressKey(k, mods)
	w.ReleaseKey(k, mods)
}

// TypeText scripts text input.
func (w *Window) TypeText(s string) {
	w.script(func() { w.EmitTextInput(s) })
}

// PressButton scripts a mouse button going down at (x, y).
func (w *Window) PressButton(b gpucontext.MouseButton, x, y float64) {
	w.script(func() { w.EmitMousePress(b, x, y) })
}

// ReleaseButton scripts a mouse button going up at (x, y).
func (w *Window) ReleaseButton(b gpucontext.MouseButton, x, y float64) {
	w.script(func() { w.EmitMouseRelease(b, x, y) })
}

// Click scripts a press and a release of b at (x, y).
func (w *Window) Click(b gpucontext.MouseButton, x, y float64) {
	w.PressButton(b, x, y)
	w.ReleaseButton(b, x, y)
}

// Move scripts the pointer moving to (x, y).
func (w *Window) Move(x, y float64) {
	w.script(func() { w.EmitMouseMove(x, y) })
}

// Scroll scripts a wheel rotation.
func (w *Window) Scroll(dx, dy float64) {
	w.script(func() { w.EmitScroll(dx, dy) })
}

// Resize scripts the window changing size. The canvas size is unchanged.
func (w *Window) Resize(width, height int) {
	w.script(func() { w.EmitResize(width, height) })
}

// Focus scripts the window gaining or losing focus.
func (w *Window) Focus(focused bool) {
	w.script(func() { w.EmitFocus(focused) })
}

// RequestClose scripts the user clicking the close button.
func (w *Window) RequestClose() {
	w.script(w.EmitClose)
}

// Pump delivers the scripted input.
func (w *Window) Pump() error {
	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		return ErrDestroyed
	}
	if err := w.PumpErr; err != nil {
		w.PumpErr = nil
		w.mu.Unlock()
		return err
	}
	w.pumps++
	n := w.pumps
	hooks := slices.Clone(w.hooks)
	w.mu.Unlock()

	for _, h := range hooks {
		h(n)
	}

	w.mu.Lock()
	pending := w.pending
	w.pending = nil
	w.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
	return nil
}

// Present keeps a copy of frame.
func (w *Window) Present(frame image.Image) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.destroyed {
		return ErrDestroyed
	}
	if err := w.PresentErr; err != nil {
		w.PresentErr = nil
		return err
	}
	b := frame.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, frame, b, draw.Src, nil)
	w.last = dst
	w.frames++
	return nil
}

// Destroy marks the window destroyed.
func (w *Window) Destroy() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.DestroyErr; err != nil {
		w.DestroyErr = nil
		return err
	}
	w.destroyed = true
	return nil
}

// Title returns the title the window was created with.
func (w *Window) Title() string { return w.title }

// Size returns the canvas size the window was created with.
func (w *Window) Size() (width, height int) { return w.width, w.height }

// LastFrame returns a copy of the last presented frame, or nil.
func (w *Window) LastFrame() *image.RGBA {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

// Frames returns how many frames were presented.
func (w *Window) Frames() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frames
}

// Pumps returns how many times Pump ran successfully.
func (w *Window) Pumps() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pumps
}

// Pending returns the number of scripted inputs not yet delivered.
func (w *Window) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

// Destroyed reports whether Destroy succeeded.
func (w *Window) Destroyed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.destroyed
}
