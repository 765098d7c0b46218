// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package desktop

import (
	"errors"
	"image"
	"slices"
	"testing"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/easel/platform"
)

func TestNewRefusedOnDarwin(t *testing.T) {
	old := goos
	goos = "darwin"
	defer func() { goos = old }()

	if _, err := New("demo", 100, 100); !errors.Is(err, ErrMainThread) {
		t.Errorf("New() on darwin = %v, want ErrMainThread", err)
	}
}

func TestPumpReplaysRecordedInput(t *testing.T) {
	w := newWindow("demo", 100, 100, nil)
	src := &platform.Callbacks{}
	w.forward(src)

	var got []string
	w.OnKeyPress(func(gpucontext.Key, gpucontext.Modifiers) { got = append(got, "key") })
	w.OnMousePress(func(gpucontext.MouseButton, float64, float64) { got = append(got, "press") })
	w.OnScroll(func(float64, float64) { got = append(got, "scroll") })
	w.OnClose(func() { got = append(got, "close") })

	src.EmitKeyPress(gpucontext.KeyA, 0)
	src.EmitMousePress(gpucontext.MouseButtonLeft, 3, 4)
	src.EmitScroll(0, -1)
	w.post(w.EmitClose)
	if len(got) != 0 {
		t.Fatalf("callbacks ran before Pump: %v", got)
	}

	if err := w.Pump(); err != nil {
		t.Fatalf("Pump() = %v", err)
	}
	if want := []string{"key", "press", "scroll", "close"}; !slices.Equal(got, want) {
		t.Errorf("Pump delivered %v, want %v", got, want)
	}

	got = nil
	if err := w.Pump(); err != nil || len(got) != 0 {
		t.Errorf("second Pump() = %v and delivered %v, want nothing", err, got)
	}
}

func TestEndedLoop(t *testing.T) {
	w := newWindow("demo", 100, 100, nil)
	close(w.done)

	if err := w.Pump(); !errors.Is(err, ErrClosed) {
		t.Errorf("Pump() = %v, want ErrClosed", err)
	}
	if err := w.Present(image.NewRGBA(image.Rect(0, 0, 100, 100))); !errors.Is(err, ErrClosed) {
		t.Errorf("Present() = %v, want ErrClosed", err)
	}
	if err := w.Destroy(); err != nil {
		t.Errorf("Destroy() = %v", err)
	}
}

func TestEndedLoopReportsRunError(t *testing.T) {
	w := newWindow("demo", 100, 100, nil)
	boom := errors.New("no display")
	w.runErr = boom
	close(w.done)

	if err := w.Pump(); !errors.Is(err, boom) {
		t.Errorf("Pump() = %v, want %v", err, boom)
	}
	if err := w.Destroy(); !errors.Is(err, boom) {
		t.Errorf("Destroy() = %v, want %v", err, boom)
	}
}
