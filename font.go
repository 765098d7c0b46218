package easel

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/unicode/norm"
)

// monoFamilies are rendered with Go Mono, every other family with Go Regular.
var monoFamilies = map[string]bool{
	"courier":     true,
	"courier new": true,
	"consolas":    true,
	"monaco":      true,
	"mono":        true,
	"monospace":   true,
	"fixed":       true,
	"terminal":    true,
	"go mono":     true,
}

type fontKey struct {
	mono, bold, italic bool
}

var builtinFonts = map[fontKey][]byte{
	{}:                         goregular.TTF,
	{bold: true}:               gobold.TTF,
	{italic: true}:             goitalic.TTF,
	{bold: true, italic: true}: gobolditalic.TTF,
	{mono: true}:               gomono.TTF,
	{mono: true, bold: true}:   gomonobold.TTF,
	{mono: true, italic: true}: gomonoitalic.TTF,
	// no bold italic mono in gofont
	{mono: true, bold: true, italic: true}: gomonobold.TTF,
}

// fonts caches parsed font sources by family string. Sources are shared by
// every Session of the process and never closed.
var fonts struct {
	sync.Mutex
	sources map[string]*text.FontSource
}

// fontSource resolves a family such as "Helvetica", "Courier bold italic" or
// a .ttf/.otf path.
func fontSource(family string) (*text.FontSource, error) {
	fonts.Lock()
	defer fonts.Unlock()
	if src, ok := fonts.sources[family]; ok {
		return src, nil
	}

	var (
		src *text.FontSource
		err error
	)
	switch strings.ToLower(filepath.Ext(family)) {
	case ".ttf", ".otf", ".ttc":
		src, err = text.NewFontSourceFromFile(family)
	default:
		src, err = text.NewFontSource(builtinFonts[parseFamily(family)])
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownFont, family, err)
	}
	if fonts.sources == nil {
		fonts.sources = make(map[string]*text.FontSource)
	}
	fonts.sources[family] = src
	Logger().Debug("easel: font loaded", "family", family, "name", src.Name())
	return src, nil
}

func parseFamily(family string) fontKey {
	var k fontKey
	words := strings.Fields(strings.ToLower(family))
	name := words[:0:0]
	for _, w := range words {
		switch w {
		case "bold":
			k.bold = true
		case "italic", "oblique":
			k.italic = true
		case "roman", "normal":
		default:
			name = append(name, w)
		}
	}
	k.mono = monoFamilies[strings.Join(name, " ")]
	return k
}

func fontFace(family string, size float64) (text.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: font size %g", ErrInvalidDimensions, size)
	}
	src, err := fontSource(family)
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}

// textBlock is a laid out multi-line string.
type textBlock struct {
	lines      []string
	widths     []float64
	width      float64
	lineHeight float64
	ascent     float64
}

func (b textBlock) height() float64 {
	return b.lineHeight * float64(len(b.lines))
}

func layoutText(s string, face text.Face) textBlock {
	m := face.Metrics()
	b := textBlock{
		lines:      strings.Split(norm.NFC.String(s), "\n"),
		lineHeight: m.LineHeight(),
		ascent:     m.Ascent,
	}
	b.widths = make([]float64, len(b.lines))
	for i, line := range b.lines {
		w, _ := text.Measure(line, face)
		b.widths[i] = w
		b.width = max(b.width, w)
	}
	return b
}

// TextSize returns the size in pixels s takes when drawn with the Font and
// FontSize options among opts; other options are ignored. Each line of a
// multi-line string adds one line height.
//
// TextSize does not need an open window.
func TextSize(s string, opts ...DrawOption) (width, height int, err error) {
	st := newStyle("nw", opts)
	face, err := fontFace(st.font, st.size)
	if err != nil {
		return 0, 0, err
	}
	b := layoutText(s, face)
	return int(b.width + 0.5), int(b.height() + 0.5), nil
}
