// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package platform holds what easel window implementations share: the
// callback registry behind gpucontext.EventSource.
package platform

import "github.com/gogpu/gpucontext"

// Callbacks stores the handlers registered through gpucontext.EventSource
// and OnClose. Embed it in a window and call the Emit methods from Pump.
//
// A nil handler is allowed; the matching Emit does nothing. Registering a
// handler replaces the previous one.
type Callbacks struct {
	keyPress     func(gpucontext.Key, gpucontext.Modifiers)
	keyRelease   func(gpucontext.Key, gpucontext.Modifiers)
	textInput    func(string)
	mouseMove    func(x, y float64)
	mousePress   func(gpucontext.MouseButton, float64, float64)
	mouseRelease func(gpucontext.MouseButton, float64, float64)
	scroll       func(dx, dy float64)
	resize       func(w, h int)
	focus        func(bool)
	close        func()
}

var _ gpucontext.EventSource = (*Callbacks)(nil)

func (c *Callbacks) OnKeyPress(fn func(gpucontext.Key, gpucontext.Modifiers)) { c.keyPress = fn }
func (c *Callbacks) OnKeyRelease(fn func(gpucontext.Key, gpucontext.Modifiers)) { c.keyRelease = fn }
func (c *Callbacks) OnTextInput(fn func(string)) { c.textInput = fn }
func (c *Callbacks) OnMouseMove(fn func(x, y float64)) { c.mouseMove = fn }
func (c *Callbacks) OnMousePress(fn func(gpucontext.MouseButton, float64, float64)) {
	c.mousePress = fn
}
func (c *Callbacks) OnMouseRelease(fn func(gpucontext.MouseButton, float64, float64)) {
	c.mouseRelease = fn
}
func (c *Callbacks) OnScroll(fn func(dx, dy float64)) { c.scroll = fn }
func (c *Callbacks) OnResize(fn func(w, h int)) { c.resize = fn }
func (c *Callbacks) OnFocus(fn func(bool)) { c.focus = fn }

// IME composition is never reported; text arrives through OnTextInput.
func (c *Callbacks) OnIMECompositionStart(func()) {}
func (c *Callbacks) OnIMECompositionUpdate(func(gpucontext.IMEState)) {}
func (c *Callbacks) OnIMECompositionEnd(func(string)) {}

// OnClose registers the handler for a user request to close the window.
func (c *Callbacks) OnClose(fn func()) { c.close = fn }

func (c *Callbacks) EmitKeyPress(k gpucontext.Key, mods gpucontext.Modifiers) {
	if c.keyPress != nil {
		c.keyPress(k, mods)
	}
}

func (c *Callbacks) EmitKeyRelease(k gpucontext.Key, mods gpucontext.Modifiers) {
	if c.keyRelease != nil {
		c.keyRelease(k, mods)
	}
}

func (c *Callbacks) EmitTextInput(s string) {
	if c.textInput != nil {
		c.textInput(s)
	}
}

func (c *Callbacks) EmitMouseMove(x, y float64) {
	if c.mouseMove != nil {
		c.mouseMove(x, y)
	}
}

func (c *Callbacks) EmitMousePress(b gpucontext.MouseButton, x, y float64) {
	if c.mousePress != nil {
		c.mousePress(b, x, y)
	}
}

func (c *Callbacks) EmitMouseRelease(b gpucontext.MouseButton, x, y float64) {
	if c.mouseRelease != nil {
		c.mouseRelease(b, x, y)
	}
}

func (c *Callbacks) EmitScroll(dx, dy float64) {
	if c.scroll != nil {
		c.scroll(dx, dy)
	}
}

func (c *Callbacks) EmitResize(w, h int) {
	if c.resize != nil {
		c.resize(w, h)
	}
}

func (c *Callbacks) EmitFocus(focused bool) {
	if c.focus != nil {
		c.focus(focused)
	}
}

func (c *Callbacks) EmitClose() {
	if c.close != nil {
		c.close()
	}
}
