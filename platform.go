package easel

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/easel/platform/desktop"
	"github.com/gogpu/easel/platform/term"
)

// Platform is the window a Session draws into and receives input from.
//
// Input reaches the Session through the gpucontext.EventSource callbacks and
// OnClose. A Platform must invoke those callbacks only from inside Pump, on
// the goroutine that called Pump; this is what lets a Session promise that
// events and keyboard state change only during Refresh.
//
// Coordinates passed to mouse callbacks are canvas pixels.
type Platform interface {
	gpucontext.EventSource

	// OnClose registers the handler for a user request to close the window.
	OnClose(fn func())

	// Pump delivers every pending native event to the registered callbacks
	// and returns without waiting for new ones.
	Pump() error

	// Present shows frame, a width x height image of the canvas.
	Present(frame image.Image) error

	// Destroy closes the window and releases its resources.
	Destroy() error
}

// PlatformFactory creates the Platform for a new Session.
type PlatformFactory func(title string, width, height int) (Platform, error)

// DesktopPlatform opens the canvas in a native window drawn with gogpu.
func DesktopPlatform(title string, width, height int) (Platform, error) {
	return desktop.New(title, width, height, desktop.WithLogger(Logger()))
}

// TerminalPlatform opens the canvas in the controlling terminal.
func TerminalPlatform(title string, width, height int) (Platform, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return term.New(screen, title, width, height, term.WithLogger(Logger()))
}

// defaultPlatform prefers a native window and falls back to the terminal
// where none can be opened, e.g. without a display or on macOS.
func defaultPlatform(title string, width, height int) (Platform, error) {
	p, err := DesktopPlatform(title, width, height)
	if err == nil {
		return p, nil
	}
	Logger().Info("easel: no native window, using the terminal", "error", err)
	return TerminalPlatform(title, width, height)
}
