package easel

import (
	"fmt"
	"sync"
	"time"
)

// live guards the one-window-per-process rule.
var live struct {
	sync.Mutex
	s *Session
}

// Session is the open window: its canvas, its event queue, its keyboard
// state and its bindings. At most one Session is live at a time.
//
// Platform events are only processed inside Refresh (directly, or through
// the Wait functions), so nothing in a Session changes between two calls
// the program makes.
//
// Session is NOT safe for concurrent use.
type Session struct {
	width, height int
	period        time.Duration
	platform      Platform
	canvas        *canvas
	lastRefresh   time.Time

	queue      eventQueue
	keys       *keyTracker
	binder     *binder
	listeners  map[ListenerID]string
	subscribed map[string]ListenerID
	closed     bool

	now   func() time.Time
	sleep func(time.Duration)
}

// Open creates the window and returns its Session. The window is shown
// before Open returns.
//
// Open fails with ErrWindowOpen while another Session is live.
func Open(width, height int, opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if o.refreshRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRefreshRate, o.refreshRate)
	}
	bg, err := parseColor(o.background)
	if err != nil {
		return nil, err
	}

	live.Lock()
	defer live.Unlock()
	if live.s != nil {
		return nil, ErrWindowOpen
	}

	p, err := o.platform(o.title, width, height)
	if err != nil {
		return nil, fmt.Errorf("easel: open window: %w", err)
	}

	s := &Session{
		width:      width,
		height:     height,
		period:     time.Second / time.Duration(o.refreshRate),
		platform:   p,
		canvas:     newCanvas(width, height, bg),
		keys:       newKeyTracker(),
		binder:     newBinder(),
		listeners:  make(map[ListenerID]string),
		subscribed: make(map[string]ListenerID),
		now:        time.Now,
		sleep:      time.Sleep,
	}
	s.attach(p)
	for _, name := range o.events {
		if name != Quit {
			s.subscribe(name)
		}
	}

	s.lastRefresh = s.now()
	if err := s.pump(); err != nil {
		s.canvas.close()
		_ = p.Destroy()
		return nil, err
	}
	live.s = s
	Logger().Debug("easel: window opened",
		"title", o.title, "width", width, "height", height, "rate", o.refreshRate)
	return s, nil
}

// Close destroys the window. Every later call on s fails with ErrNoWindow,
// and a new window may be opened.
func (s *Session) Close() error {
	if err := s.check(); err != nil {
		return err
	}
	live.Lock()
	if live.s == s {
		live.s = nil
	}
	live.Unlock()

	s.closed = true
	s.queue.Clear()
	s.canvas.close()
	if err := s.platform.Destroy(); err != nil {
		Logger().Warn("easel: destroy window", "err", err)
		return fmt.Errorf("easel: destroy window: %w", err)
	}
	Logger().Debug("easel: window closed")
	return nil
}

// Refresh processes every pending platform event, shows the canvas if it
// changed, then sleeps for what is left of the refresh period since the
// previous Refresh. When drawing takes longer than the period no sleep
// happens, so the refresh rate has an upper bound but no lower bound.
//
// Refresh is the only place where events are queued, listeners run and
// keyboard state changes.
func (s *Session) Refresh() error {
	if err := s.check(); err != nil {
		return err
	}
	t := s.now()
	if err := s.pump(); err != nil {
		return err
	}
	if s.closed {
		// a listener closed the window
		return nil
	}
	if d := s.period - t.Sub(s.lastRefresh); d > 0 {
		s.sleep(d)
	}
	s.lastRefresh = s.now()
	return nil
}

// pump runs the platform callbacks once and presents the canvas if needed.
func (s *Session) pump() error {
	if err := s.platform.Pump(); err != nil {
		return fmt.Errorf("easel: pump events: %w", err)
	}
	if s.closed || !s.canvas.dirty {
		return nil
	}
	frame, err := s.canvas.render()
	if err != nil {
		return err
	}
	if err := s.platform.Present(frame); err != nil {
		return fmt.Errorf("easel: present frame: %w", err)
	}
	return nil
}

// NextEvent removes and returns the oldest queued event, or nil when none is
// pending. It never blocks and never refreshes.
func (s *Session) NextEvent() (Event, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.queue.Pop(), nil
}

// Pending returns the number of queued events. It is 0 on a nil or closed
// Session; use PendingEvents to tell the two apart.
func (s *Session) Pending() int {
	n, _ := s.PendingEvents()
	return n
}

// PendingEvents is like Pending but fails with ErrNoWindow on a nil or
// closed Session.
func (s *Session) PendingEvents() (int, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	return s.queue.Len(), nil
}

// IsKeyPressed reports whether the key with the given symbol is held down.
// It is false on a nil or closed Session; use KeyState to tell a released
// key from a missing window.
func (s *Session) IsKeyPressed(symbol string) bool {
	down, _ := s.KeyState(symbol)
	return down
}

// KeyState is like IsKeyPressed but fails with ErrNoWindow on a nil or
// closed Session.
func (s *Session) KeyState(symbol string) (bool, error) {
	if err := s.check(); err != nil {
		return false, err
	}
	return s.keys.pressed(symbol), nil
}

// Size returns the canvas size in pixels.
func (s *Session) Size() (width, height int) {
	if s == nil {
		return 0, 0
	}
	return s.width, s.height
}

func (s *Session) check() error {
	if s == nil || s.closed {
		return ErrNoWindow
	}
	return nil
}
