// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gpucontext"
)

var specialKeys = map[tcell.Key]gpucontext.Key{
	tcell.KeyEnter:     gpucontext.KeyEnter,
	tcell.KeyTab:       gpucontext.KeyTab,
	tcell.KeyBackspace: gpucontext.KeyBackspace,
	tcell.KeyEsc:       gpucontext.KeyEscape,
	tcell.KeyInsert:    gpucontext.KeyInsert,
	tcell.KeyDelete:    gpucontext.KeyDelete,
	tcell.KeyHome:      gpucontext.KeyHome,
	tcell.KeyEnd:       gpucontext.KeyEnd,
	tcell.KeyPgUp:      gpucontext.KeyPageUp,
	tcell.KeyPgDn:      gpucontext.KeyPageDown,
	tcell.KeyUp:        gpucontext.KeyUp,
	tcell.KeyDown:      gpucontext.KeyDown,
	tcell.KeyLeft:      gpucontext.KeyLeft,
	tcell.KeyRight:     gpucontext.KeyRight,
	tcell.KeyPrint:     gpucontext.KeyPrintScreen,
	tcell.KeyPause:     gpucontext.KeyPause,
}

// runeKeys maps US layout characters to the key that types them and
// whether Shift is needed.
var runeKeys = map[rune]struct {
	key   gpucontext.Key
	shift bool
}{
	' ': {gpucontext.KeySpace, false},
	'-': {gpucontext.KeyMinus, false}, '_': {gpucontext.KeyMinus, true},
	'=': {gpucontext.KeyEqual, false}, '+': {gpucontext.KeyEqual, true},
	'[': {gpucontext.KeyLeftBracket, false}, '{': {gpucontext.KeyLeftBracket, true},
	']': {gpucontext.KeyRightBracket, false}, '}': {gpucontext.KeyRightBracket, true},
	'\\': {gpucontext.KeyBackslash, false}, '|': {gpucontext.KeyBackslash, true},
	';': {gpucontext.KeySemicolon, false}, ':': {gpucontext.KeySemicolon, true},
	'\'': {gpucontext.KeyApostrophe, false}, '"': {gpucontext.KeyApostrophe, true},
	'`': {gpucontext.KeyGrave, false}, '~': {gpucontext.KeyGrave, true},
	',': {gpucontext.KeyComma, false}, '<': {gpucontext.KeyComma, true},
	'.': {gpucontext.KeyPeriod, false}, '>': {gpucontext.KeyPeriod, true},
	'/': {gpucontext.KeySlash, false}, '?': {gpucontext.KeySlash, true},
	'!': {gpucontext.Key1, true}, '@': {gpucontext.Key2, true},
	'#': {gpucontext.Key3, true}, '$': {gpucontext.Key4, true},
	'%': {gpucontext.Key5, true}, '^': {gpucontext.Key6, true},
	'&': {gpucontext.Key7, true}, '*': {gpucontext.Key8, true},
	'(': {gpucontext.Key9, true}, ')': {gpucontext.Key0, true},
}

func modifiers(m tcell.ModMask) gpucontext.Modifiers {
	var mods gpucontext.Modifiers
	if m&tcell.ModShift != 0 {
		mods |= gpucontext.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= gpucontext.ModControl
	}
	if m&tcell.ModAlt != 0 {
		mods |= gpucontext.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= gpucontext.ModSuper
	}
	return mods
}

// translateKey returns the physical key and modifiers of ev, and the text
// it types. ok is false for keys with no gpucontext equivalent.
func translateKey(ev *tcell.EventKey) (k gpucontext.Key, mods gpucontext.Modifiers, text string, ok bool) {
	mods = modifiers(ev.Modifiers())
	tk := ev.Key()
	if gk, found := specialKeys[tk]; found {
		return gk, mods, "", true
	}
	switch {
	case tk == tcell.KeyBacktab:
		return gpucontext.KeyTab, mods | gpucontext.ModShift, "", true
	case tk >= tcell.KeyF1 && tk <= tcell.KeyF12:
		return gpucontext.KeyF1 + gpucontext.Key(tk-tcell.KeyF1), mods, "", true
	case tk >= tcell.KeyCtrlA && tk <= tcell.KeyCtrlZ:
		return gpucontext.KeyA + gpucontext.Key(tk-tcell.KeyCtrlA), mods | gpucontext.ModControl, "", true
	case tk >= 1 && tk <= 26:
		// raw control characters not claimed by specialKeys
		return gpucontext.KeyA + gpucontext.Key(tk-1), mods | gpucontext.ModControl, "", true
	case tk != tcell.KeyRune:
		return 0, 0, "", false
	}

	r := ev.Rune()
	if mods&gpucontext.ModControl == 0 {
		text = string(r)
	}
	switch {
	case r >= 'a' && r <= 'z':
		return gpucontext.KeyA + gpucontext.Key(r-'a'), mods, text, true
	case r >= 'A' && r <= 'Z':
		return gpucontext.KeyA + gpucontext.Key(r-'A'), mods | gpucontext.ModShift, text, true
	case r >= '0' && r <= '9':
		return gpucontext.Key0 + gpucontext.Key(r-'0'), mods, text, true
	}
	if rk, found := runeKeys[r]; found {
		if rk.shift {
			mods |= gpucontext.ModShift
		}
		return rk.key, mods, text, true
	}
	return gpucontext.KeyUnknown, mods, text, text != ""
}

// closeRequest reports whether k with mods is Ctrl+C or Ctrl+Q.
func closeRequest(k gpucontext.Key, mods gpucontext.Modifiers) bool {
	return mods&gpucontext.ModControl != 0 && (k == gpucontext.KeyC || k == gpucontext.KeyQ)
}

func (w *Window) key(ev *tcell.EventKey) {
	k, mods, text, ok := translateKey(ev)
	if !ok {
		w.logger.Debug("term: key ignored", "name", ev.Name())
		return
	}
	if closeRequest(k, mods) {
		w.EmitClose()
		return
	}
	if k != gpucontext.KeyUnknown {
		w.held[k] = heldKey{mods: mods, until: w.now().Add(w.keyHold)}
		w.EmitKeyPress(k, mods)
	}
	if text != "" {
		w.EmitTextInput(text)
	}
}

// expireKeys releases the keys not pressed again within the hold time.
func (w *Window) expireKeys(now time.Time) {
	for k, h := range w.held {
		if now.Before(h.until) {
			continue
		}
		delete(w.held, k)
		w.EmitKeyRelease(k, h.mods)
	}
}

var mouseButtons = [...]struct {
	mask   tcell.ButtonMask
	button gpucontext.MouseButton
}{
	{tcell.Button1, gpucontext.MouseButtonLeft},
	{tcell.Button2, gpucontext.MouseButtonRight},
	{tcell.Button3, gpucontext.MouseButtonMiddle},
	{tcell.Button4, gpucontext.MouseButton4},
	{tcell.Button5, gpucontext.MouseButton5},
}

func (w *Window) mouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x, y, inside := w.layout.toCanvas(col, row)
	if inside && (!w.pointer || x != w.mx || y != w.my) {
		w.mx, w.my, w.pointer = x, y, true
		w.EmitMouseMove(x, y)
	}

	mask := ev.Buttons()
	for _, b := range mouseButtons {
		was, is := w.buttons&b.mask != 0, mask&b.mask != 0
		switch {
		case is && !was && inside:
			w.buttons |= b.mask
			w.EmitMousePress(b.button, x, y)
		case was && !is:
			// outside the canvas the last position inside is reported
			w.buttons &^= b.mask
			w.EmitMouseRelease(b.button, w.mx, w.my)
		}
	}

	if !inside {
		return
	}
	switch {
	case mask&tcell.WheelUp != 0:
		w.EmitScroll(0, -1)
	case mask&tcell.WheelDown != 0:
		w.EmitScroll(0, 1)
	}
	switch {
	case mask&tcell.WheelLeft != 0:
		w.EmitScroll(-1, 0)
	case mask&tcell.WheelRight != 0:
		w.EmitScroll(1, 0)
	}
}
