package easel

import (
	"strconv"

	"github.com/gogpu/gpucontext"
)

// keyTracker is the set of key symbols currently held down.
type keyTracker struct {
	held map[string]struct{}
	// down remembers the symbol each physical key produced when pressed, so
	// the release removes that symbol even if Shift changed in between.
	down map[gpucontext.Key]string
}

func newKeyTracker() *keyTracker {
	return &keyTracker{
		held: make(map[string]struct{}),
		down: make(map[gpucontext.Key]string),
	}
}

// press records k as held and returns its symbol.
func (t *keyTracker) press(k gpucontext.Key, mods gpucontext.Modifiers) string {
	sym := KeySymbol(k, mods)
	if prev, ok := t.down[k]; ok && prev != sym {
		// pressed again with another Shift state: only the new symbol is down
		delete(t.held, prev)
	}
	t.down[k] = sym
	t.held[sym] = struct{}{}
	return sym
}

// release forgets k and returns the symbol it was pressed as.
func (t *keyTracker) release(k gpucontext.Key, mods gpucontext.Modifiers) string {
	sym, ok := t.down[k]
	if !ok {
		sym = KeySymbol(k, mods)
	}
	delete(t.down, k)
	delete(t.held, sym)
	return sym
}

func (t *keyTracker) pressed(sym string) bool {
	_, ok := t.held[sym]
	return ok
}

// KeySymbol names a key the way X11 keysyms do: letters and digits are
// themselves ("a", "A" with Shift), other keys use names such as "Return",
// "BackSpace", "Left", "space", "F1", "Shift_L". Shifted digits and
// punctuation follow a US layout ("exclam", "colon", ...).
func KeySymbol(k gpucontext.Key, mods gpucontext.Modifiers) string {
	shift := mods.HasShift()
	switch {
	case k >= gpucontext.KeyA && k <= gpucontext.KeyZ:
		r := rune('a' + (k - gpucontext.KeyA))
		if shift != (mods&gpucontext.ModCapsLock != 0) {
			r -= 'a' - 'A'
		}
		return string(r)
	case k >= gpucontext.Key0 && k <= gpucontext.Key9:
		if shift {
			return shiftedDigits[k-gpucontext.Key0]
		}
		return string(rune('0' + (k - gpucontext.Key0)))
	case k >= gpucontext.KeyF1 && k <= gpucontext.KeyF12:
		return "F" + strconv.Itoa(int(k-gpucontext.KeyF1)+1)
	case k >= gpucontext.KeyNumpad0 && k <= gpucontext.KeyNumpad9:
		return "KP_" + strconv.Itoa(int(k-gpucontext.KeyNumpad0))
	}
	if p, ok := punctuation[k]; ok {
		if shift {
			return p[1]
		}
		return p[0]
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "??"
}

var shiftedDigits = [10]string{
	"parenright", "exclam", "at", "numbersign", "dollar",
	"percent", "asciicircum", "ampersand", "asterisk", "parenleft",
}

// punctuation maps keys to their unshifted and shifted symbols.
var punctuation = map[gpucontext.Key][2]string{
	gpucontext.KeyMinus:        {"minus", "underscore"},
	gpucontext.KeyEqual:        {"equal", "plus"},
	gpucontext.KeyLeftBracket:  {"bracketleft", "braceleft"},
	gpucontext.KeyRightBracket: {"bracketright", "braceright"},
	gpucontext.KeyBackslash:    {"backslash", "bar"},
	gpucontext.KeySemicolon:    {"semicolon", "colon"},
	gpucontext.KeyApostrophe:   {"apostrophe", "quotedbl"},
	gpucontext.KeyGrave:        {"grave", "asciitilde"},
	gpucontext.KeyComma:        {"comma", "less"},
	gpucontext.KeyPeriod:       {"period", "greater"},
	gpucontext.KeySlash:        {"slash", "question"},
}

var keyNames = map[gpucontext.Key]string{
	gpucontext.KeyEscape:         "Escape",
	gpucontext.KeyTab:            "Tab",
	gpucontext.KeyBackspace:      "BackSpace",
	gpucontext.KeyEnter:          "Return",
	gpucontext.KeySpace:          "space",
	gpucontext.KeyInsert:         "Insert",
	gpucontext.KeyDelete:         "Delete",
	gpucontext.KeyHome:           "Home",
	gpucontext.KeyEnd:            "End",
	gpucontext.KeyPageUp:         "Prior",
	gpucontext.KeyPageDown:       "Next",
	gpucontext.KeyLeft:           "Left",
	gpucontext.KeyRight:          "Right",
	gpucontext.KeyUp:             "Up",
	gpucontext.KeyDown:           "Down",
	gpucontext.KeyLeftShift:      "Shift_L",
	gpucontext.KeyRightShift:     "Shift_R",
	gpucontext.KeyLeftControl:    "Control_L",
	gpucontext.KeyRightControl:   "Control_R",
	gpucontext.KeyLeftAlt:        "Alt_L",
	gpucontext.KeyRightAlt:       "Alt_R",
	gpucontext.KeyLeftSuper:      "Super_L",
	gpucontext.KeyRightSuper:     "Super_R",
	gpucontext.KeyNumpadDecimal:  "KP_Decimal",
	gpucontext.KeyNumpadDivide:   "KP_Divide",
	gpucontext.KeyNumpadMultiply: "KP_Multiply",
	gpucontext.KeyNumpadSubtract: "KP_Subtract",
	gpucontext.KeyNumpadAdd:      "KP_Add",
	gpucontext.KeyNumpadEnter:    "KP_Enter",
	gpucontext.KeyCapsLock:       "Caps_Lock",
	gpucontext.KeyScrollLock:     "Scroll_Lock",
	gpucontext.KeyNumLock:        "Num_Lock",
	gpucontext.KeyPrintScreen:    "Print",
	gpucontext.KeyPause:          "Pause",
}
