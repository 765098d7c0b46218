package easel

import "math"

// Symbolic event names understood by Subscribe, Listen and WithEvents.
// Any other name is used as a raw native sequence such as "<KeyRelease>".
const (
	LeftClick       = "LeftClick"
	DoubleLeftClick = "DoubleLeftClick"
	MiddleClick     = "MiddleClick"
	RightClick      = "RightClick"
	Move            = "Move"
	Wheel           = "Wheel"
	KeyPress        = "Key"

	// Quit is queued when the platform asks for the window to close. It is
	// always subscribed.
	Quit = "Quit"
)

// KindNone is the kind of the empty event returned by NextEvent when the
// queue is empty.
const KindNone = ""

// Event is one queued or dispatched input or lifecycle record. The concrete
// type tells which attributes are present:
//
//	*PointerEvent   clicks, double clicks, motion, button release: X, Y
//	*WheelEvent     wheel rotation: X, Y
//	*KeyEvent       key press and release: Key
//	*ResizeEvent    window size change
//	*LifecycleEvent Quit, focus changes
//
// A nil Event is the empty event.
type Event interface {
	// Kind returns the symbolic name the event was subscribed under.
	Kind() string

	event()
}

// PointerEvent is a mouse button or motion event in canvas pixels.
type PointerEvent struct {
	Name   string
	X, Y   float64
	Button int // native button number, 0 for motion
}

// WheelEvent is a mouse wheel rotation at the last known pointer position.
// Delta is in wheel notches, signed as reported by the platform.
type WheelEvent struct {
	Name  string
	X, Y  float64
	Delta float64
}

// KeyEvent carries the key symbol of a press or release, e.g. "a", "A",
// "Return", "Left", "space".
type KeyEvent struct {
	Name   string
	Symbol string
}

// ResizeEvent reports the new size of the window.
type ResizeEvent struct {
	Name          string
	Width, Height int
}

// LifecycleEvent has no attributes besides its name.
type LifecycleEvent struct {
	Name string
}

func (e *PointerEvent) Kind() string   { return e.Name }
func (e *WheelEvent) Kind() string     { return e.Name }
func (e *KeyEvent) Kind() string       { return e.Name }
func (e *ResizeEvent) Kind() string    { return e.Name }
func (e *LifecycleEvent) Kind() string { return e.Name }

func (*PointerEvent) event()   {}
func (*WheelEvent) event()     {}
func (*KeyEvent) event()       {}
func (*ResizeEvent) event()    {}
func (*LifecycleEvent) event() {}

// Kind returns the symbolic name of ev, or KindNone for the empty event.
func Kind(ev Event) string {
	if ev == nil {
		return KindNone
	}
	return ev.Kind()
}

// X returns the horizontal pointer coordinate of ev in whole pixels.
func X(ev Event) (int, error) {
	x, _, err := position(ev, "x")
	return x, err
}

// Y returns the vertical pointer coordinate of ev in whole pixels.
func Y(ev Event) (int, error) {
	_, y, err := position(ev, "y")
	return y, err
}

// Key returns the key symbol of a key event.
func Key(ev Event) (string, error) {
	if k, ok := ev.(*KeyEvent); ok {
		return k.Symbol, nil
	}
	return "", &AttributeError{Kind: Kind(ev), Attr: "key"}
}

func position(ev Event, attr string) (x, y int, err error) {
	switch e := ev.(type) {
	case *PointerEvent:
		return pixel(e.X), pixel(e.Y), nil
	case *WheelEvent:
		return pixel(e.X), pixel(e.Y), nil
	}
	return 0, 0, &AttributeError{Kind: Kind(ev), Attr: attr}
}

func pixel(v float64) int { return int(math.Floor(v)) }
