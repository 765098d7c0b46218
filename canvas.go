package easel

import (
	"fmt"
	"image"
	"slices"

	"github.com/gogpu/gg"
)

// ItemID identifies one drawn item. IDs start at 1 and are never reused
// within a Session.
type ItemID int

func (id ItemID) String() string { return fmt.Sprintf("item-%d", int(id)) }

// AllItems is the tag every item carries.
const AllItems = "all"

type item struct {
	id    ItemID
	tag   string
	paint func(dc *gg.Context) error
}

func (it *item) matches(tag string) bool {
	return tag == AllItems || (tag != "" && it.tag == tag)
}

// canvas is the retained display list of a Session, painted back to front
// into a gg.Context whenever it changed since the last present.
type canvas struct {
	ctx    *gg.Context
	bg     gg.RGBA
	items  []*item
	last   ItemID
	images map[string]*gg.ImageBuf
	dirty  bool
	closed bool
}

func newCanvas(width, height int, bg gg.RGBA) *canvas {
	return &canvas{
		ctx:    gg.NewContext(width, height),
		bg:     bg,
		images: make(map[string]*gg.ImageBuf),
		dirty:  true, // first present shows the background
	}
}

func (c *canvas) add(tag string, paint func(*gg.Context) error) ItemID {
	c.last++
	c.items = append(c.items, &item{id: c.last, tag: tag, paint: paint})
	c.dirty = true
	return c.last
}

// remove deletes the items match accepts and returns how many went.
func (c *canvas) remove(match func(*item) bool) int {
	n := len(c.items)
	c.items = slices.DeleteFunc(c.items, match)
	if removed := n - len(c.items); removed > 0 {
		c.dirty = true
		return removed
	}
	return 0
}

// restack moves the matching items to the top (or the bottom) keeping
// their relative order.
func (c *canvas) restack(match func(*item) bool, top bool) int {
	var moved, rest []*item
	for _, it := range c.items {
		if match(it) {
			moved = append(moved, it)
		} else {
			rest = append(rest, it)
		}
	}
	if len(moved) == 0 {
		return 0
	}
	if top {
		c.items = append(rest, moved...)
	} else {
		c.items = append(moved, rest...)
	}
	c.dirty = true
	return len(moved)
}

func (c *canvas) clear() {
	c.items = nil
	clear(c.images)
	c.dirty = true
}

// render paints the display list and returns the frame.
func (c *canvas) render() (image.Image, error) {
	c.ctx.Identity()
	c.ctx.ClearPath()
	c.ctx.ClearWithColor(c.bg)
	for _, it := range c.items {
		c.ctx.Push()
		err := it.paint(c.ctx)
		c.ctx.Pop()
		if err != nil {
			return nil, fmt.Errorf("easel: paint item %d: %w", it.id, err)
		}
	}
	c.dirty = false
	return c.ctx.Image(), nil
}

func (c *canvas) close() {
	if c.closed {
		return
	}
	c.closed = true
	c.items = nil
	clear(c.images)
	_ = c.ctx.Close()
}

func byID(id ItemID) func(*item) bool {
	return func(it *item) bool { return it.id == id }
}

func byTag(tag string) func(*item) bool {
	return func(it *item) bool { return it.matches(tag) }
}

// Delete removes the item with the given id.
func (s *Session) Delete(id ItemID) error {
	if err := s.check(); err != nil {
		return err
	}
	if s.canvas.remove(byID(id)) == 0 {
		return fmt.Errorf("%w: %d", ErrUnknownItem, id)
	}
	return nil
}

// DeleteTag removes every item carrying tag. AllItems removes everything.
// A tag matching nothing is not an error.
func (s *Session) DeleteTag(tag string) error {
	if err := s.check(); err != nil {
		return err
	}
	s.canvas.remove(byTag(tag))
	return nil
}

// ClearAll removes every item and forgets loaded images.
func (s *Session) ClearAll() error {
	if err := s.check(); err != nil {
		return err
	}
	s.canvas.clear()
	return nil
}

// Raise moves the item with the given id above all others.
func (s *Session) Raise(id ItemID) error {
	return s.restack(byID(id), true, id)
}

// Lower moves the item with the given id below all others.
func (s *Session) Lower(id ItemID) error {
	return s.restack(byID(id), false, id)
}

// RaiseTag moves the items carrying tag above all others.
func (s *Session) RaiseTag(tag string) error {
	return s.restack(byTag(tag), true, tag)
}

// LowerTag moves the items carrying tag below all others.
func (s *Session) LowerTag(tag string) error {
	return s.restack(byTag(tag), false, tag)
}

func (s *Session) restack(match func(*item) bool, top bool, ref any) error {
	if err := s.check(); err != nil {
		return err
	}
	if s.canvas.restack(match, top) == 0 {
		return fmt.Errorf("%w: %v", ErrUnknownItem, ref)
	}
	return nil
}

// Items returns the ids of the drawn items from bottom to top.
func (s *Session) Items() []ItemID {
	if s.check() != nil {
		return nil
	}
	ids := make([]ItemID, len(s.canvas.items))
	for i, it := range s.canvas.items {
		ids[i] = it.id
	}
	return ids
}
