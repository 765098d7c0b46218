// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package term shows an easel canvas in a terminal with tcell.
//
// Every character cell displays two canvas pixels stacked vertically with
// the upper half block glyph, so a truecolor terminal gives the best result.
// The top row is a title bar. The canvas is scaled to fit the rest of the
// screen and keeps its aspect ratio.
//
// Terminals report key presses but not releases. A Window therefore releases
// a key on its own once the key has not been pressed again for the key hold
// duration; autorepeat keeps a held key down.
//
// Ctrl+C and Ctrl+Q ask for the window to close.
package term

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/easel/platform"
)

// DefaultKeyHold covers the usual autorepeat delay of terminals.
const DefaultKeyHold = 500 * time.Millisecond

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

// WithKeyHold sets how long a key stays down after its last press.
func WithKeyHold(d time.Duration) Option {
	return func(w *Window) {
		if d > 0 {
			w.keyHold = d
		}
	}
}

type heldKey struct {
	mods  gpucontext.Modifiers
	until time.Time
}

// Window is a canvas shown on a tcell screen.
type Window struct {
	platform.Callbacks

	screen  tcell.Screen
	title   string
	width   int
	height  int
	layout  layout
	source  image.Image
	frame   *image.RGBA
	logger  *slog.Logger
	keyHold time.Duration
	now     func() time.Time

	held    map[gpucontext.Key]heldKey
	buttons tcell.ButtonMask
	mx, my  float64
	pointer bool
}

// New initializes screen and returns the window for a width x height
// canvas. The screen is finalized by Destroy, or before New returns an
// error.
func New(screen tcell.Screen, title string, width, height int, opts ...Option) (*Window, error) {
	w := &Window{
		screen:  screen,
		title:   title,
		width:   width,
		height:  height,
		logger:  slog.New(slog.DiscardHandler),
		keyHold: DefaultKeyHold,
		now:     time.Now,
		held:    make(map[gpucontext.Key]heldKey),
	}
	for _, opt := range opts {
		opt(w)
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()
	screen.SetTitle(title)
	screen.Clear()
	w.relayout()
	w.logger.Debug("term: window created",
		"title", title, "width", width, "height", height,
		"cols", w.layout.cols, "rows", w.layout.rows)
	return w, nil
}

// Pump drains the tcell event queue, then releases keys whose hold expired.
func (w *Window) Pump() error {
	for w.screen.HasPendingEvent() {
		ev := w.screen.PollEvent()
		if ev == nil {
			break
		}
		w.dispatch(ev)
	}
	w.expireKeys(w.now())
	return nil
}

func (w *Window) dispatch(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		w.key(ev)
	case *tcell.EventMouse:
		w.mouse(ev)
	case *tcell.EventResize:
		w.screen.Sync()
		w.relayout()
		w.frame = w.layout.fit(w.source)
		w.redraw()
		w.EmitResize(w.layout.cols, 2*w.layout.canvasRows())
	case *tcell.EventFocus:
		w.EmitFocus(ev.Focused)
	default:
		w.logger.Debug("term: event ignored", "type", fmt.Sprintf("%T", ev))
	}
}

// Present scales frame onto the screen.
func (w *Window) Present(frame image.Image) error {
	w.source = frame
	w.frame = w.layout.fit(frame)
	w.redraw()
	return nil
}

// Destroy restores the terminal.
func (w *Window) Destroy() error {
	w.screen.Fini()
	w.logger.Debug("term: window destroyed")
	return nil
}

func (w *Window) relayout() {
	cols, rows := w.screen.Size()
	w.layout = newLayout(cols, rows, w.width, w.height)
}
