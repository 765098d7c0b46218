package easel

import (
	"fmt"
	"math"
	"runtime"
	"strings"
	"time"

	"github.com/gogpu/gpucontext"
)

// Native event sequences produced by the platform translation below.
const (
	seqButton       = "<Button-%d>"
	seqButtonUp     = "<ButtonRelease-%d>"
	seqDoubleButton = "<Double-Button-1>"
	seqMotion       = "<Motion>"
	seqWheel        = "<MouseWheel>"
	seqKeyPress     = "<KeyPress>"
	seqKeyRelease   = "<KeyRelease>"
	seqConfigure    = "<Configure>"
	seqFocusIn      = "<FocusIn>"
	seqFocusOut     = "<FocusOut>"
)

// Double-click detection thresholds.
const (
	doubleClickTime     = 500 * time.Millisecond
	doubleClickDistance = 4.0
)

// ListenerID identifies a binding returned by Listen.
type ListenerID uint64

func (id ListenerID) String() string { return fmt.Sprintf("listener-%d", uint64(id)) }

// goos is read once per binder so tests can exercise the darwin mapping.
var goos = runtime.GOOS

// nativeSequence maps a symbolic event name to the native sequence it is
// bound to. Names outside the table are taken as native sequences.
func nativeSequence(name, os string) string {
	switch name {
	case LeftClick:
		return "<Button-1>"
	case DoubleLeftClick:
		return seqDoubleButton
	case MiddleClick:
		if os == "darwin" {
			return "<Button-3>"
		}
		return "<Button-2>"
	case RightClick:
		if os == "darwin" {
			return "<Button-2>"
		}
		return "<Button-3>"
	case Move:
		return seqMotion
	case Wheel:
		return seqWheel
	case KeyPress:
		return seqKeyPress
	}
	return canonicalSequence(name)
}

// canonicalSequence folds native aliases onto one spelling.
func canonicalSequence(seq string) string {
	switch seq {
	case "<Key>":
		return seqKeyPress
	case "<Double-1>":
		return seqDoubleButton
	}
	if n, ok := strings.CutPrefix(seq, "<ButtonPress-"); ok {
		return "<Button-" + n
	}
	return seq
}

// nativeButton numbers mouse buttons the way the host platform does: the
// right button is 2 and the middle button 3 on darwin, the reverse elsewhere.
func nativeButton(b gpucontext.MouseButton, os string) int {
	switch b {
	case gpucontext.MouseButtonLeft:
		return 1
	case gpucontext.MouseButtonMiddle:
		if os == "darwin" {
			return 3
		}
		return 2
	case gpucontext.MouseButtonRight:
		if os == "darwin" {
			return 2
		}
		return 3
	}
	return int(b) + 1
}

type payloadKind uint8

const (
	payloadPointer payloadKind = iota
	payloadWheel
	payloadKey
	payloadResize
	payloadLifecycle
)

// nativeEvent is what the platform translation hands to bindings. Each
// binding turns it into an Event carrying its own symbolic name.
type nativeEvent struct {
	kind          payloadKind
	x, y          float64
	button        int
	symbol        string
	delta         float64
	width, height int
}

func (n nativeEvent) as(name string) Event {
	switch n.kind {
	case payloadPointer:
		return &PointerEvent{Name: name, X: n.x, Y: n.y, Button: n.button}
	case payloadWheel:
		return &WheelEvent{Name: name, X: n.x, Y: n.y, Delta: n.delta}
	case payloadKey:
		return &KeyEvent{Name: name, Symbol: n.symbol}
	case payloadResize:
		return &ResizeEvent{Name: name, Width: n.width, Height: n.height}
	}
	return &LifecycleEvent{Name: name}
}

type binding struct {
	id   ListenerID
	name string
	fn   func(Event)
}

// binder is the native binding table: for every native sequence, the
// bindings to run in registration order.
type binder struct {
	os    string
	last  ListenerID
	table map[string][]binding

	// pointer state
	px, py     float64
	clickAt    time.Time
	cx, cy     float64
	clickArmed bool
}

func newBinder() *binder {
	return &binder{os: goos, table: make(map[string][]binding)}
}

func (b *binder) bind(name string, fn func(Event)) (ListenerID, string) {
	seq := nativeSequence(name, b.os)
	b.last++
	b.table[seq] = append(b.table[seq], binding{id: b.last, name: name, fn: fn})
	return b.last, seq
}

func (b *binder) unbind(seq string, id ListenerID) bool {
	bs := b.table[seq]
	for i := range bs {
		if bs[i].id == id {
			b.table[seq] = append(bs[:i:i], bs[i+1:]...)
			if len(b.table[seq]) == 0 {
				delete(b.table, seq)
			}
			return true
		}
	}
	return false
}

func (b *binder) bound(seq string) bool {
	return len(b.table[seq]) > 0
}

// fire runs the bindings of seq. The slice is copied first so a callback
// may bind or unbind without disturbing the dispatch in progress.
func (b *binder) fire(seq string, n nativeEvent) {
	bs := b.table[seq]
	if len(bs) == 0 {
		return
	}
	for _, bd := range append([]binding(nil), bs...) {
		bd.fn(n.as(bd.name))
	}
}

// doubleClick reports whether a left press at (x, y) completes a double
// click. A completed pair disarms detection so a third press starts over.
func (b *binder) doubleClick(x, y float64, now time.Time) bool {
	if b.clickArmed && now.Sub(b.clickAt) <= doubleClickTime &&
		math.Abs(x-b.cx) <= doubleClickDistance && math.Abs(y-b.cy) <= doubleClickDistance {
		b.clickArmed = false
		return true
	}
	b.clickArmed = true
	b.clickAt, b.cx, b.cy = now, x, y
	return false
}

// attach registers the translation from platform callbacks to native
// sequences. Keyboard state is updated before any binding runs.
func (s *Session) attach(p Platform) {
	b := s.binder
	p.OnKeyPress(func(k gpucontext.Key, mods gpucontext.Modifiers) {
		sym := s.keys.press(k, mods)
		b.fire(seqKeyPress, nativeEvent{kind: payloadKey, symbol: sym})
	})
	p.OnKeyRelease(func(k gpucontext.Key, mods gpucontext.Modifiers) {
		sym := s.keys.release(k, mods)
		b.fire(seqKeyRelease, nativeEvent{kind: payloadKey, symbol: sym})
	})
	p.OnMousePress(func(btn gpucontext.MouseButton, x, y float64) {
		b.px, b.py = x, y
		n := nativeButton(btn, b.os)
		ev := nativeEvent{kind: payloadPointer, x: x, y: y, button: n}
		if n == 1 && b.doubleClick(x, y, s.now()) && b.bound(seqDoubleButton) {
			b.fire(seqDoubleButton, ev)
			return
		}
		b.fire(fmt.Sprintf(seqButton, n), ev)
	})
	p.OnMouseRelease(func(btn gpucontext.MouseButton, x, y float64) {
		b.px, b.py = x, y
		n := nativeButton(btn, b.os)
		b.fire(fmt.Sprintf(seqButtonUp, n), nativeEvent{kind: payloadPointer, x: x, y: y, button: n})
	})
	p.OnMouseMove(func(x, y float64) {
		b.px, b.py = x, y
		b.fire(seqMotion, nativeEvent{kind: payloadPointer, x: x, y: y})
	})
	p.OnScroll(func(_, dy float64) {
		b.fire(seqWheel, nativeEvent{kind: payloadWheel, x: b.px, y: b.py, delta: dy})
	})
	p.OnResize(func(w, h int) {
		b.fire(seqConfigure, nativeEvent{kind: payloadResize, width: w, height: h})
	})
	p.OnFocus(func(focused bool) {
		if focused {
			b.fire(seqFocusIn, nativeEvent{kind: payloadLifecycle})
		} else {
			b.fire(seqFocusOut, nativeEvent{kind: payloadLifecycle})
		}
	})
	p.OnClose(func() {
		s.queue.Push(&LifecycleEvent{Name: Quit})
	})
}
