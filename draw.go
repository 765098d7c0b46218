package easel

import (
	"math"

	"github.com/gogpu/gg"
)

// Vertex is one corner of a Polygon.
type Vertex struct {
	X, Y float64
}

// draw validates the session and appends a painted item to the display list.
func (s *Session) draw(st style, paint func(dc *gg.Context) error) (ItemID, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	return s.canvas.add(st.tag, paint), nil
}

// shape draws a path filled and stroked with the outline options.
func (s *Session) shape(opts []DrawOption, build func(dc *gg.Context)) (ItemID, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	st := newStyle("", opts)
	o, err := st.outline()
	if err != nil {
		return 0, err
	}
	return s.draw(st, func(dc *gg.Context) error {
		build(dc)
		return o.apply(dc)
	})
}

// Line draws a segment from (ax, ay) to (bx, by). Fill is ignored.
func (s *Session) Line(ax, ay, bx, by float64, opts ...DrawOption) (ItemID, error) {
	return s.shape(append(opts[:len(opts):len(opts)], Fill("")), func(dc *gg.Context) {
		dc.MoveTo(ax, ay)
		dc.LineTo(bx, by)
	})
}

// Arrow draws a segment from (ax, ay) to (bx, by) ending in a filled
// triangular head at (bx, by). The head grows with Width.
func (s *Session) Arrow(ax, ay, bx, by float64, opts ...DrawOption) (ItemID, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	st := newStyle("", opts)
	o, err := st.outline()
	if err != nil {
		return 0, err
	}
	head := outline{stroke: o.stroke, fill: o.stroke, width: o.width}
	ux, uy := bx-ax, by-ay
	n := math.Hypot(ux, uy)
	return s.draw(st, func(dc *gg.Context) error {
		if n == 0 {
			return nil
		}
		dx, dy := ux/n, uy/n
		k := max(st.width, 1)
		length, half := 5*k, 2*k
		baseX, baseY := bx-dx*length, by-dy*length

		dc.MoveTo(ax, ay)
		dc.LineTo(baseX, baseY)
		if err := (outline{stroke: o.stroke, width: o.width}).apply(dc); err != nil {
			return err
		}
		dc.MoveTo(bx, by)
		dc.LineTo(baseX-half*dy, baseY+half*dx)
		dc.LineTo(baseX+half*dy, baseY-half*dx)
		dc.ClosePath()
		return head.apply(dc)
	})
}

// Polygon draws the closed polygon through points. Fewer than two points
// draw nothing.
func (s *Session) Polygon(points []Vertex, opts ...DrawOption) (ItemID, error) {
	pts := append([]Vertex(nil), points...)
	return s.shape(opts, func(dc *gg.Context) {
		if len(pts) < 2 {
			return
		}
		dc.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
	})
}

// Rectangle draws the rectangle with opposite corners (ax, ay) and (bx, by).
func (s *Session) Rectangle(ax, ay, bx, by float64, opts ...DrawOption) (ItemID, error) {
	x, y := min(ax, bx), min(ay, by)
	w, h := math.Abs(bx-ax), math.Abs(by-ay)
	return s.shape(opts, func(dc *gg.Context) {
		dc.DrawRectangle(x, y, w, h)
	})
}

// Circle draws the circle of center (x, y) and radius r.
func (s *Session) Circle(x, y, r float64, opts ...DrawOption) (ItemID, error) {
	return s.shape(opts, func(dc *gg.Context) {
		dc.DrawCircle(x, y, r)
	})
}

// Arc draws an arc of the circle of center (x, y) and radius r, starting at
// angle start and spanning extent, both in degrees counterclockwise from
// east. A negative extent turns clockwise. Fill is ignored.
func (s *Session) Arc(x, y, r, extent, start float64, opts ...DrawOption) (ItemID, error) {
	extent = max(-360, min(360, extent))
	// screen y grows downward, so counterclockwise angles are negated
	a1 := -(start + max(extent, 0)) * math.Pi / 180
	a2 := -(start + min(extent, 0)) * math.Pi / 180
	return s.shape(append(opts[:len(opts):len(opts)], Fill("")), func(dc *gg.Context) {
		if extent == 0 {
			return
		}
		dc.DrawArc(x, y, r, a1, a2)
	})
}

// Point draws a dot of radius Width at (x, y) in the Color.
func (s *Session) Point(x, y float64, opts ...DrawOption) (ItemID, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	st := newStyle("", opts)
	c, err := resolvePaint(st.color)
	if err != nil {
		return 0, err
	}
	dot := outline{stroke: c, fill: c, width: 1}
	r := st.width
	return s.draw(st, func(dc *gg.Context) error {
		dc.DrawCircle(x, y, r)
		return dot.apply(dc)
	})
}

// Image draws the picture stored in the file at path (PNG, JPEG, GIF, BMP
// or WebP) so that its Anchor point, "center" by default, lies at (x, y).
func (s *Session) Image(x, y float64, path string, opts ...DrawOption) (ItemID, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	st := newStyle("center", opts)
	fx, fy, err := anchorOffset(st.anchor)
	if err != nil {
		return 0, err
	}
	buf, err := s.canvas.loadImage(path)
	if err != nil {
		return 0, err
	}
	left := math.Round(x - fx*float64(buf.Width()))
	top := math.Round(y - fy*float64(buf.Height()))
	return s.draw(st, func(dc *gg.Context) error {
		dc.DrawImage(buf, left, top)
		return nil
	})
}

// Text draws str so that the Anchor point of its bounding box, "nw" by
// default, lies at (x, y). Lines are separated by "\n" and left aligned.
func (s *Session) Text(x, y float64, str string, opts ...DrawOption) (ItemID, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	st := newStyle("nw", opts)
	fx, fy, err := anchorOffset(st.anchor)
	if err != nil {
		return 0, err
	}
	c, err := resolvePaint(st.color)
	if err != nil {
		return 0, err
	}
	face, err := fontFace(st.font, st.size)
	if err != nil {
		return 0, err
	}
	b := layoutText(str, face)
	left := x - fx*b.width
	top := y - fy*b.height()
	return s.draw(st, func(dc *gg.Context) error {
		if !c.set {
			return nil
		}
		dc.SetFont(face)
		dc.SetColor(c.rgba)
		for i, line := range b.lines {
			dc.DrawString(line, left, top+b.ascent+float64(i)*b.lineHeight)
		}
		return nil
	})
}

// TextSize is TextSize that also fails with ErrNoWindow once s is closed.
func (s *Session) TextSize(str string, opts ...DrawOption) (width, height int, err error) {
	if err := s.check(); err != nil {
		return 0, 0, err
	}
	return TextSize(str, opts...)
}
