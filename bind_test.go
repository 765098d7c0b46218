package easel

import (
	"slices"
	"testing"
	"time"

	"github.com/gogpu/gpucontext"
)

func TestNativeSequence(t *testing.T) {
	tests := []struct {
		name, os, want string
	}{
		{LeftClick, "linux", "<Button-1>"},
		{LeftClick, "darwin", "<Button-1>"},
		{RightClick, "linux", "<Button-3>"},
		{RightClick, "windows", "<Button-3>"},
		{RightClick, "darwin", "<Button-2>"},
		{MiddleClick, "linux", "<Button-2>"},
		{MiddleClick, "darwin", "<Button-3>"},
		{DoubleLeftClick, "linux", "<Double-Button-1>"},
		{Move, "linux", "<Motion>"},
		{Wheel, "linux", "<MouseWheel>"},
		{KeyPress, "linux", "<KeyPress>"},
		{"<Key>", "linux", "<KeyPress>"},
		{"<ButtonPress-3>", "linux", "<Button-3>"},
		{"<Double-1>", "linux", "<Double-Button-1>"},
		{"<KeyRelease>", "linux", "<KeyRelease>"},
	}
	for _, tt := range tests {
		if got := nativeSequence(tt.name, tt.os); got != tt.want {
			t.Errorf("nativeSequence(%q, %q) = %q, want %q", tt.name, tt.os, got, tt.want)
		}
	}
}

func TestNativeButton(t *testing.T) {
	tests := []struct {
		b    gpucontext.MouseButton
		os   string
		want int
	}{
		{gpucontext.MouseButtonLeft, "linux", 1},
		{gpucontext.MouseButtonMiddle, "linux", 2},
		{gpucontext.MouseButtonRight, "linux", 3},
		{gpucontext.MouseButtonLeft, "darwin", 1},
		{gpucontext.MouseButtonRight, "darwin", 2},
		{gpucontext.MouseButtonMiddle, "darwin", 3},
		{gpucontext.MouseButton4, "linux", 4},
		{gpucontext.MouseButton5, "linux", 5},
	}
	for _, tt := range tests {
		if got := nativeButton(tt.b, tt.os); got != tt.want {
			t.Errorf("nativeButton(%v, %q) = %d, want %d", tt.b, tt.os, got, tt.want)
		}
	}
}

func TestRightClickOnEveryPlatform(t *testing.T) {
	for _, os := range []string{"linux", "darwin", "windows"} {
		t.Run(os, func(t *testing.T) {
			orig := goos
			goos = os
			t.Cleanup(func() { goos = orig })

			s, win := openTestSession(t, WithEvents(LeftClick, RightClick, MiddleClick))
			win.Click(gpucontext.MouseButtonRight, 4, 5)
			win.Click(gpucontext.MouseButtonMiddle, 6, 7)
			refresh(t, s)

			got := kinds(drain(t, s))
			if want := []string{RightClick, MiddleClick}; !slices.Equal(got, want) {
				t.Errorf("queued %v, want %v", got, want)
			}
			if err := s.Close(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestQueuedEventPayloads(t *testing.T) {
	s, win := openTestSession(t, WithEvents(LeftClick, KeyPress, Move, Wheel, "<Configure>", "<ButtonRelease-1>"))
	win.Move(12.5, 30)
	win.Scroll(0, -1)
	win.PressButton(gpucontext.MouseButtonLeft, 12.5, 30)
	win.ReleaseButton(gpucontext.MouseButtonLeft, 14, 31)
	win.PressKey(gpucontext.KeyB, gpucontext.ModShift)
	win.Resize(640, 480)
	refresh(t, s)

	evs := drain(t, s)
	got := kinds(evs)
	want := []string{Move, Wheel, LeftClick, "<ButtonRelease-1>", KeyPress, "<Configure>"}
	if !slices.Equal(got, want) {
		t.Fatalf("queued %v, want %v", got, want)
	}

	if w := evs[1].(*WheelEvent); w.X != 12.5 || w.Y != 30 || w.Delta != -1 {
		t.Errorf("wheel = %+v, want position of the last motion and delta -1", w)
	}
	if p := evs[2].(*PointerEvent); p.Button != 1 {
		t.Errorf("click button = %d, want 1", p.Button)
	}
	if x, _ := X(evs[3]); x != 14 {
		t.Errorf("release X = %d, want 14", x)
	}
	if k, _ := Key(evs[4]); k != "B" {
		t.Errorf("Key() = %q, want %q", k, "B")
	}
	if r := evs[5].(*ResizeEvent); r.Width != 640 || r.Height != 480 {
		t.Errorf("resize = %dx%d, want 640x480", r.Width, r.Height)
	}
}

func TestDoubleClickPrecedence(t *testing.T) {
	s, win := openTestSession(t, WithEvents(LeftClick, DoubleLeftClick))
	clk := installClock(s)

	win.Click(gpucontext.MouseButtonLeft, 50, 50)
	refresh(t, s)
	clk.advance(100 * time.Millisecond)
	win.Click(gpucontext.MouseButtonLeft, 52, 49)
	refresh(t, s)

	got := kinds(drain(t, s))
	if want := []string{LeftClick, DoubleLeftClick}; !slices.Equal(got, want) {
		t.Errorf("queued %v, want %v", got, want)
	}

	// a third click starts a new pair
	win.Click(gpucontext.MouseButtonLeft, 52, 49)
	refresh(t, s)
	if got := kinds(drain(t, s)); !slices.Equal(got, []string{LeftClick}) {
		t.Errorf("third click queued %v, want [LeftClick]", got)
	}
}

func TestDoubleClickThresholds(t *testing.T) {
	tests := []struct {
		name   string
		gap    time.Duration
		dx, dy float64
		double bool
	}{
		{"fast and close", 200 * time.Millisecond, 1, 1, true},
		{"at time limit", doubleClickTime, 0, 0, true},
		{"too slow", doubleClickTime + time.Millisecond, 0, 0, false},
		{"too far", 10 * time.Millisecond, doubleClickDistance + 1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBinder()
			t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
			if b.doubleClick(10, 10, t0) {
				t.Fatal("first click reported as double")
			}
			if got := b.doubleClick(10+tt.dx, 10+tt.dy, t0.Add(tt.gap)); got != tt.double {
				t.Errorf("doubleClick() = %v, want %v", got, tt.double)
			}
		})
	}
}

func TestSecondClickWithoutDoubleBinding(t *testing.T) {
	s, win := openTestSession(t, WithEvents(LeftClick))
	win.Click(gpucontext.MouseButtonLeft, 50, 50)
	win.Click(gpucontext.MouseButtonLeft, 50, 50)
	refresh(t, s)
	if got := kinds(drain(t, s)); !slices.Equal(got, []string{LeftClick, LeftClick}) {
		t.Errorf("queued %v, want two LeftClick", got)
	}
}

func TestFocusEvents(t *testing.T) {
	s, win := openTestSession(t, WithEvents("<FocusIn>", "<FocusOut>"))
	win.Focus(false)
	win.Focus(true)
	refresh(t, s)
	if got := kinds(drain(t, s)); !slices.Equal(got, []string{"<FocusOut>", "<FocusIn>"}) {
		t.Errorf("queued %v", got)
	}
}

func TestBinderUnbind(t *testing.T) {
	b := newBinder()
	var calls []string
	id1, seq := b.bind(LeftClick, func(Event) { calls = append(calls, "first") })
	b.bind(LeftClick, func(Event) { calls = append(calls, "second") })

	if !b.unbind(seq, id1) {
		t.Fatal("unbind() = false for a bound id")
	}
	if b.unbind(seq, id1) {
		t.Error("unbind() = true twice for the same id")
	}
	b.fire(seq, nativeEvent{kind: payloadPointer})
	if !slices.Equal(calls, []string{"second"}) {
		t.Errorf("calls = %v, want [second]", calls)
	}
}

func TestFireSnapshot(t *testing.T) {
	b := newBinder()
	var calls int
	var seq string
	_, seq = b.bind(Move, func(Event) {
		calls++
		// bound during dispatch: runs from the next event on
		b.bind(Move, func(Event) { calls += 10 })
	})
	b.fire(seq, nativeEvent{kind: payloadPointer})
	if calls != 1 {
		t.Errorf("calls = %d after first fire, want 1", calls)
	}
}
