// Package easel provides a window, a canvas and mouse/keyboard input for
// small teaching programs.
//
// # Overview
//
// easel hides the event loop of the underlying window. A program opens one
// window, draws on it, and calls Refresh (or one of the Wait functions)
// regularly. Input is only processed during those calls: events are either
// queued for the program to pop with NextEvent, or handed to listeners
// registered with Listen.
//
// # Quick Start
//
//	import "github.com/gogpu/easel"
//
//	s, err := easel.Open(400, 300, easel.WithTitle("hello"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	s.Circle(200, 150, 50, easel.Fill("red"))
//	x, y, err := s.WaitLeftClick()
//	s.Text(float64(x), float64(y), "clicked", easel.Anchor("center"))
//	s.WaitClose()
//
// # Events
//
// An Event is one of *PointerEvent, *WheelEvent, *KeyEvent, *ResizeEvent or
// *LifecycleEvent. Kind, X, Y and Key read it without a type switch; the
// empty event returned by NextEvent when nothing is pending is nil and has
// kind KindNone.
//
// Names such as LeftClick or KeyPress are symbolic. Any other name given to
// Subscribe or Listen is a native sequence, e.g. "<KeyRelease>" or
// "<Button-3>".
//
// Mouse buttons follow the host numbering: on macOS the right button is
// <Button-2> and the middle button <Button-3>, elsewhere the reverse.
// RightClick and MiddleClick are mapped accordingly, so both names mean
// the same physical button on every platform. A native "<Button-2>" or
// "<Button-3>" is taken literally and differs between macOS and the rest.
//
// # Coordinate System
//
// Canvas pixels with the origin at the top-left corner, x to the right and y
// downward. Arc angles are degrees counterclockwise from east.
//
// # Platforms
//
// By default the canvas is shown in a native window drawn with gogpu
// (platform/desktop). Where no window can be opened, e.g. without a display
// or on macOS, it falls back to the controlling terminal with tcell, two
// pixel rows per character cell (platform/term). WithPlatform selects a
// Platform explicitly; platform/sim is a headless one for tests.
//
// # Rendering
//
// Drawing calls append to a retained display list rasterized with
// github.com/gogpu/gg. Items can be deleted and restacked by id or tag.
package easel

// Version is the current version of the library.
const Version = "0.1.0"
