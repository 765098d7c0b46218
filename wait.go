package easel

import "time"

// WaitEvent returns the oldest queued event, refreshing until one arrives.
func (s *Session) WaitEvent() (Event, error) {
	return s.waitFor(func(Event) bool { return true })
}

// WaitLeftClick refreshes until a LeftClick event is popped and returns its
// coordinates.
//
// Every other event popped while waiting is discarded, Quit included: a
// program that must also react to keys or to the close button should loop on
// WaitEvent and dispatch on Kind instead.
func (s *Session) WaitLeftClick() (x, y int, err error) {
	return s.waitClick(LeftClick)
}

// WaitRightClick is WaitLeftClick for RightClick events, with the same
// discarding of unrelated events.
func (s *Session) WaitRightClick() (x, y int, err error) {
	return s.waitClick(RightClick)
}

// WaitClose refreshes until the user asks to close the window, then closes
// it. Events popped meanwhile are discarded.
func (s *Session) WaitClose() error {
	if _, err := s.waitFor(func(ev Event) bool { return Kind(ev) == Quit }); err != nil {
		return err
	}
	return s.Close()
}

// Wait keeps the window alive for d, refreshing continuously. The queue is
// left untouched: events arriving during the wait are still pending after.
func (s *Session) Wait(d time.Duration) error {
	if err := s.check(); err != nil {
		return err
	}
	start := s.now()
	for s.now().Sub(start) < d {
		if err := s.Refresh(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) waitClick(name string) (x, y int, err error) {
	ev, err := s.waitFor(func(ev Event) bool { return Kind(ev) == name })
	if err != nil {
		return 0, 0, err
	}
	if x, err = X(ev); err != nil {
		return 0, 0, err
	}
	if y, err = Y(ev); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// waitFor pops events until match accepts one, refreshing whenever the
// queue is empty or the popped event is rejected. Rejected events are lost.
func (s *Session) waitFor(match func(Event) bool) (Event, error) {
	for {
		ev, err := s.NextEvent()
		if err != nil {
			return nil, err
		}
		if ev != nil && match(ev) {
			return ev, nil
		}
		if err := s.Refresh(); err != nil {
			return nil, err
		}
	}
}
