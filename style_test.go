package easel

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"red", color.RGBA{255, 0, 0, 255}},
		{"Red", color.RGBA{255, 0, 0, 255}},
		{"dark slate gray", color.RGBA{47, 79, 79, 255}},
		{"darkslategray", color.RGBA{47, 79, 79, 255}},
		{"#00ff00", color.RGBA{0, 255, 0, 255}},
		{"#0F0", color.RGBA{0, 255, 0, 255}},
		{" navy ", color.RGBA{0, 0, 128, 255}},
	}
	for _, tt := range tests {
		got, err := parseColor(tt.in)
		if err != nil {
			t.Errorf("parseColor(%q) = %v", tt.in, err)
			continue
		}
		if !near(got, tt.want, 1) {
			t.Errorf("parseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#", "#12", "#gggggg", "blurple"} {
		if _, err := parseColor(bad); !errors.Is(err, ErrUnknownColor) {
			t.Errorf("parseColor(%q) error = %v, want ErrUnknownColor", bad, err)
		}
	}
}

func TestAnchorOffset(t *testing.T) {
	tests := []struct {
		anchor string
		fx, fy float64
	}{
		{"nw", 0, 0},
		{"n", 0.5, 0},
		{"NE", 1, 0},
		{"w", 0, 0.5},
		{"center", 0.5, 0.5},
		{"c", 0.5, 0.5},
		{"e", 1, 0.5},
		{"sw", 0, 1},
		{"s", 0.5, 1},
		{"se", 1, 1},
	}
	for _, tt := range tests {
		fx, fy, err := anchorOffset(tt.anchor)
		if err != nil || fx != tt.fx || fy != tt.fy {
			t.Errorf("anchorOffset(%q) = %v, %v, %v, want %v, %v", tt.anchor, fx, fy, err, tt.fx, tt.fy)
		}
	}
	if _, _, err := anchorOffset("north"); !errors.Is(err, ErrUnknownAnchor) {
		t.Errorf("anchorOffset(north) error = %v", err)
	}
}

func TestNewStyleDefaults(t *testing.T) {
	st := newStyle("nw", nil)
	want := style{color: "black", width: 1, anchor: "nw", font: "Helvetica", size: 24}
	if st != want {
		t.Errorf("newStyle() = %+v, want %+v", st, want)
	}
	st = newStyle("nw", []DrawOption{Color("red"), Fill("blue"), Width(3), Tag("t"), Anchor("se"), Font("Courier"), FontSize(12)})
	want = style{color: "red", fill: "blue", width: 3, tag: "t", anchor: "se", font: "Courier", size: 12}
	if st != want {
		t.Errorf("newStyle() = %+v, want %+v", st, want)
	}
}

func TestParseFamily(t *testing.T) {
	tests := []struct {
		family string
		want   fontKey
	}{
		{"Helvetica", fontKey{}},
		{"Arial bold", fontKey{bold: true}},
		{"Times italic", fontKey{italic: true}},
		{"Courier", fontKey{mono: true}},
		{"courier new bold italic", fontKey{mono: true, bold: true, italic: true}},
		{"Monospace oblique", fontKey{mono: true, italic: true}},
		{"Helvetica normal roman", fontKey{}},
		{"", fontKey{}},
	}
	for _, tt := range tests {
		if got := parseFamily(tt.family); got != tt.want {
			t.Errorf("parseFamily(%q) = %+v, want %+v", tt.family, got, tt.want)
		}
	}
}

func TestFontSourceCache(t *testing.T) {
	a, err := fontSource("Courier bold")
	if err != nil {
		t.Fatal(err)
	}
	b, err := fontSource("Courier bold")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("fontSource() parsed the same family twice")
	}
	if _, err := fontSource("missing.otf"); !errors.Is(err, ErrUnknownFont) {
		t.Errorf("fontSource(missing.otf) error = %v, want ErrUnknownFont", err)
	}
}

func TestMonoFontIsMonospaced(t *testing.T) {
	narrow, _, err := TextSize("iiii", Font("Courier"))
	if err != nil {
		t.Fatal(err)
	}
	wide, _, err := TextSize("MMMM", Font("Courier"))
	if err != nil {
		t.Fatal(err)
	}
	if narrow != wide {
		t.Errorf("Courier widths differ: %d vs %d", narrow, wide)
	}
	narrow, _, _ = TextSize("iiii")
	wide, _, _ = TextSize("MMMM")
	if narrow >= wide {
		t.Errorf("Helvetica widths not proportional: %d vs %d", narrow, wide)
	}
}
