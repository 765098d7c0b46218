package easel

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// DrawOption configures one drawing call.
//
// Example:
//
//	s.Rectangle(10, 10, 90, 40, easel.Color("navy"), easel.Fill("#ffd700"), easel.Width(3))
type DrawOption func(*style)

type style struct {
	color  string
	fill   string
	width  float64
	tag    string
	anchor string
	font   string
	size   float64
}

func newStyle(anchor string, opts []DrawOption) style {
	st := style{
		color:  "black",
		width:  1,
		anchor: anchor,
		font:   "Helvetica",
		size:   24,
	}
	for _, opt := range opts {
		opt(&st)
	}
	return st
}

// Color sets the outline or text color. An empty string draws no outline.
func Color(c string) DrawOption { return func(st *style) { st.color = c } }

// Fill sets the fill color of closed shapes. The default, "", leaves them
// unfilled.
func Fill(c string) DrawOption { return func(st *style) { st.fill = c } }

// Width sets the outline width in pixels.
func Width(w float64) DrawOption { return func(st *style) { st.width = w } }

// Tag attaches a tag to the item for DeleteTag, RaiseTag and LowerTag.
func Tag(t string) DrawOption { return func(st *style) { st.tag = t } }

// Anchor sets which point of a text or image lies at the given coordinates:
// "nw", "n", "ne", "w", "center", "e", "sw", "s" or "se".
func Anchor(a string) DrawOption { return func(st *style) { st.anchor = a } }

// Font sets the font family of a text, e.g. "Helvetica", "Courier bold", or
// the path of a TrueType file.
func Font(family string) DrawOption { return func(st *style) { st.font = family } }

// FontSize sets the text size in pixels.
func FontSize(size float64) DrawOption { return func(st *style) { st.size = size } }

// paint is a resolved color; a zero paint draws nothing.
type paint struct {
	rgba gg.RGBA
	set  bool
}

func resolvePaint(c string) (paint, error) {
	if c == "" {
		return paint{}, nil
	}
	rgba, err := parseColor(c)
	if err != nil {
		return paint{}, err
	}
	return paint{rgba: rgba, set: true}, nil
}

// parseColor accepts W3C color names ("red", "darkslategray") and #rgb /
// #rrggbb hex values.
func parseColor(c string) (gg.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(c))
	if strings.HasPrefix(name, "#") {
		hc, err := colorful.Hex(name)
		if err != nil {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, c)
		}
		return gg.RGB(hc.R, hc.G, hc.B), nil
	}
	name = strings.ReplaceAll(name, " ", "")
	if tc, ok := tcell.ColorNames[name]; ok {
		r, g, b := tc.RGB()
		return gg.RGB(float64(r)/255, float64(g)/255, float64(b)/255), nil
	}
	return gg.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, c)
}

// anchorOffset returns the fraction of the width and height that lies left
// of and above the anchor point.
func anchorOffset(a string) (fx, fy float64, err error) {
	switch strings.ToLower(a) {
	case "nw":
		return 0, 0, nil
	case "n":
		return 0.5, 0, nil
	case "ne":
		return 1, 0, nil
	case "w":
		return 0, 0.5, nil
	case "center", "c", "":
		return 0.5, 0.5, nil
	case "e":
		return 1, 0.5, nil
	case "sw":
		return 0, 1, nil
	case "s":
		return 0.5, 1, nil
	case "se":
		return 1, 1, nil
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrUnknownAnchor, a)
}

// outline is a resolved style for shapes.
type outline struct {
	stroke paint
	fill   paint
	width  float64
}

func (st style) outline() (outline, error) {
	stroke, err := resolvePaint(st.color)
	if err != nil {
		return outline{}, err
	}
	fill, err := resolvePaint(st.fill)
	if err != nil {
		return outline{}, err
	}
	return outline{stroke: stroke, fill: fill, width: st.width}, nil
}

// apply fills then strokes the current path.
func (o outline) apply(dc *gg.Context) error {
	if o.fill.set {
		dc.SetColor(o.fill.rgba)
		if err := dc.FillPreserve(); err != nil {
			return err
		}
	}
	if o.stroke.set && o.width > 0 {
		dc.SetColor(o.stroke.rgba)
		dc.SetLineWidth(o.width)
		return dc.Stroke()
	}
	dc.ClearPath()
	return nil
}
