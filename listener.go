package easel

import (
	"fmt"
	"reflect"
	"slices"
)

var eventType = reflect.TypeFor[Event]()

// Listen calls fn whenever the event name fires, synchronously from inside
// Refresh and without going through the queue. name is a symbolic name such
// as LeftClick or a native sequence such as "<KeyRelease>".
//
// fn is a func whose first parameter receives the Event; args are passed as
// the remaining parameters:
//
//	s.Listen(easel.LeftClick, func(ev easel.Event) { ... })
//	s.Listen(easel.KeyPress, func(ev easel.Event, board *Board, step int) { ... }, board, 1)
//
// A func without parameters, or args that do not fit its signature, fail
// with ErrEventListener.
func (s *Session) Listen(name string, fn any, args ...any) (ListenerID, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	call, err := listenerCall(fn, args)
	if err != nil {
		return 0, err
	}
	id, seq := s.binder.bind(name, call)
	s.listeners[id] = seq
	Logger().Debug("easel: listener added", "event", name, "sequence", seq, "id", id)
	return id, nil
}

// Unlisten removes a listener added by Listen.
func (s *Session) Unlisten(id ListenerID) error {
	if err := s.check(); err != nil {
		return err
	}
	seq, ok := s.listeners[id]
	if !ok {
		return fmt.Errorf("%w: %v does not exist", ErrEventListener, id)
	}
	s.binder.unbind(seq, id)
	delete(s.listeners, id)
	Logger().Debug("easel: listener removed", "sequence", seq, "id", id)
	return nil
}

// Subscribe starts queueing events of the given name for NextEvent and the
// wait functions. Subscribing twice to the same name is a no-op, and so is
// subscribing to Quit, which is always queued.
func (s *Session) Subscribe(name string) error {
	if err := s.check(); err != nil {
		return err
	}
	if name == Quit {
		return nil
	}
	s.subscribe(name)
	return nil
}

func (s *Session) subscribe(name string) {
	if _, ok := s.subscribed[name]; ok {
		return
	}
	id, seq := s.binder.bind(name, s.queue.Push)
	s.subscribed[name] = id
	Logger().Debug("easel: subscribed", "event", name, "sequence", seq)
}

// Unsubscribe stops queueing events of the given name. Events already queued
// stay queued; listeners are not affected. Quit cannot be unsubscribed.
func (s *Session) Unsubscribe(name string) error {
	if err := s.check(); err != nil {
		return err
	}
	id, ok := s.subscribed[name]
	if !ok {
		return nil
	}
	s.binder.unbind(nativeSequence(name, s.binder.os), id)
	delete(s.subscribed, name)
	Logger().Debug("easel: unsubscribed", "event", name)
	return nil
}

// Subscribed returns the names currently queued, sorted, Quit included.
func (s *Session) Subscribed() []string {
	if s.check() != nil {
		return nil
	}
	names := []string{Quit}
	for name := range s.subscribed {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// listenerCall validates fn against args and returns the dispatch closure.
func listenerCall(fn any, args []any) (func(Event), error) {
	if f, ok := fn.(func(Event)); ok && len(args) == 0 {
		if f == nil {
			return nil, fmt.Errorf("%w: nil callback", ErrEventListener)
		}
		return f, nil
	}

	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("%w: callback must be a func, got %T", ErrEventListener, fn)
	}
	t := v.Type()
	if t.NumIn() == 0 {
		return nil, fmt.Errorf("%w: callback %v must take the event as its first parameter", ErrEventListener, t)
	}
	if !eventType.AssignableTo(t.In(0)) {
		return nil, fmt.Errorf("%w: first parameter of %v cannot receive an Event", ErrEventListener, t)
	}

	in := make([]reflect.Value, 1, 1+len(args))
	for i, a := range args {
		pt, err := paramType(t, i+1, len(args)+1)
		if err != nil {
			return nil, err
		}
		av := reflect.ValueOf(a)
		if !av.IsValid() {
			switch pt.Kind() {
			case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
				av = reflect.Zero(pt)
			default:
				return nil, fmt.Errorf("%w: argument %d is nil, parameter is %v", ErrEventListener, i+1, pt)
			}
		}
		if !av.Type().AssignableTo(pt) {
			return nil, fmt.Errorf("%w: argument %d is %v, parameter is %v", ErrEventListener, i+1, av.Type(), pt)
		}
		in = append(in, av)
	}
	if !t.IsVariadic() && t.NumIn() != 1+len(args) {
		return nil, fmt.Errorf("%w: %v takes %d arguments after the event, got %d",
			ErrEventListener, t, t.NumIn()-1, len(args))
	}
	if t.IsVariadic() && len(args) < t.NumIn()-2 {
		return nil, fmt.Errorf("%w: %v takes at least %d arguments after the event, got %d",
			ErrEventListener, t, t.NumIn()-2, len(args))
	}

	return func(ev Event) {
		in[0] = reflect.ValueOf(&ev).Elem()
		v.Call(in)
	}, nil
}

// paramType returns the type expected for argument i of a call with n
// arguments, unpacking the variadic tail.
func paramType(t reflect.Type, i, n int) (reflect.Type, error) {
	last := t.NumIn() - 1
	if t.IsVariadic() && i >= last {
		return t.In(last).Elem(), nil
	}
	if i > last {
		return nil, fmt.Errorf("%w: %v takes %d arguments after the event, got %d",
			ErrEventListener, t, last, n-1)
	}
	return t.In(i), nil
}
