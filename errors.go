package easel

import (
	"errors"
	"fmt"
)

// Window-state errors. Both ErrWindowOpen and ErrNoWindow wrap ErrWindow, so
// errors.Is(err, ErrWindow) matches either.
var (
	// ErrWindow is the category of window lifecycle misuse.
	ErrWindow = errors.New("easel: window state")

	// ErrWindowOpen is returned by Open while another Session is live.
	ErrWindowOpen = fmt.Errorf("%w: a window is already open", ErrWindow)

	// ErrNoWindow is returned by any Session method once the window is
	// closed, or when called on a nil Session.
	ErrNoWindow = fmt.Errorf("%w: no open window", ErrWindow)
)

// Event errors.
var (
	// ErrEventAttribute is returned when an accessor asks an event for an
	// attribute its kind does not carry, or is given the empty event.
	ErrEventAttribute = errors.New("easel: event attribute")

	// ErrEventListener is returned for listener callbacks that cannot receive
	// an event and for unknown listener ids.
	ErrEventListener = errors.New("easel: event listener")
)

// Configuration and drawing errors.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("easel: invalid dimensions")

	// ErrInvalidRefreshRate is returned when the refresh rate is not positive.
	ErrInvalidRefreshRate = errors.New("easel: invalid refresh rate")

	// ErrUnknownColor is returned for color strings that are neither a known
	// name nor a #rgb / #rrggbb value.
	ErrUnknownColor = errors.New("easel: unknown color")

	// ErrUnknownAnchor is returned for anchors other than the compass points
	// and "center".
	ErrUnknownAnchor = errors.New("easel: unknown anchor")

	// ErrUnknownItem is returned when an item id or tag matches nothing.
	ErrUnknownItem = errors.New("easel: unknown item")

	// ErrUnknownFont is returned when a font family cannot be loaded.
	ErrUnknownFont = errors.New("easel: unknown font")
)

// AttributeError reports an accessor applied to an event that lacks the
// requested attribute. Kind is KindNone for the empty event.
type AttributeError struct {
	Kind string
	Attr string
}

func (e *AttributeError) Error() string {
	if e.Kind == KindNone {
		return fmt.Sprintf("%v: no %s on an empty event", ErrEventAttribute, e.Attr)
	}
	return fmt.Sprintf("%v: no %s on a %s event", ErrEventAttribute, e.Attr, e.Kind)
}

func (e *AttributeError) Unwrap() error { return ErrEventAttribute }
