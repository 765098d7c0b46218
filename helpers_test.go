package easel

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/gogpu/easel/platform/sim"
)

// fakeClock replaces the wall clock of a Session; sleeping advances it.
type fakeClock struct {
	t     time.Time
	slept []time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.t = c.t.Add(d)
}

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func installClock(s *Session) *fakeClock {
	c := &fakeClock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	s.now, s.sleep = c.now, c.sleep
	s.lastRefresh = c.t
	return c
}

func simPlatform(win **sim.Window) PlatformFactory {
	return func(title string, width, height int) (Platform, error) {
		*win = sim.New(title, width, height)
		return *win, nil
	}
}

// openTestSession opens a 200x100 session on a sim window with a fake
// clock. The session is closed at cleanup unless the test closed it.
func openTestSession(t *testing.T, opts ...Option) (*Session, *sim.Window) {
	t.Helper()
	var win *sim.Window
	opts = append([]Option{WithPlatform(simPlatform(&win))}, opts...)
	s, err := Open(200, 100, opts...)
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	installClock(s)
	t.Cleanup(func() {
		if err := s.Close(); err != nil && !errors.Is(err, ErrNoWindow) {
			t.Errorf("Close() at cleanup = %v", err)
		}
	})
	return s, win
}

func refresh(t *testing.T, s *Session) {
	t.Helper()
	if err := s.Refresh(); err != nil {
		t.Fatalf("Refresh() = %v", err)
	}
}

// drain pops every queued event.
func drain(t *testing.T, s *Session) []Event {
	t.Helper()
	var evs []Event
	for {
		ev, err := s.NextEvent()
		if err != nil {
			t.Fatalf("NextEvent() = %v", err)
		}
		if ev == nil {
			return evs
		}
		evs = append(evs, ev)
	}
}

func kinds(evs []Event) []string {
	out := make([]string, len(evs))
	for i, ev := range evs {
		out[i] = Kind(ev)
	}
	return out
}

// near reports whether two colors differ by at most tol per channel.
func near(got color.Color, want color.RGBA, tol uint8) bool {
	r, g, b, a := got.RGBA()
	diff := func(x uint32, y uint8) bool {
		v := int(x>>8) - int(y)
		return v <= int(tol) && v >= -int(tol)
	}
	return diff(r, want.R) && diff(g, want.G) && diff(b, want.B) && diff(a, want.A)
}
