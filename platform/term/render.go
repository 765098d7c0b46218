// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/draw"
)

// upperHalf shows the foreground in the top half of a cell and the
// background in the bottom half.
const upperHalf = '▀'

// layout maps canvas pixels to screen cells. Below the title bar every cell
// holds two display pixels, one above the other.
type layout struct {
	cols, rows    int
	width, height int
	factor        float64 // display pixels per canvas pixel
	dw, dh        int     // displayed canvas size in display pixels
}

func newLayout(cols, rows, width, height int) layout {
	l := layout{cols: cols, rows: rows, width: width, height: height}
	avail := 2 * l.canvasRows()
	if cols <= 0 || avail <= 0 || width <= 0 || height <= 0 {
		return l
	}
	l.factor = min(float64(cols)/float64(width), float64(avail)/float64(height))
	l.dw = max(1, int(float64(width)*l.factor))
	l.dh = max(1, int(float64(height)*l.factor))
	return l
}

func (l layout) canvasRows() int { return max(l.rows-1, 0) }

// toCanvas returns the canvas position under the center of the upper half
// of a cell, or false outside the displayed canvas.
func (l layout) toCanvas(col, row int) (x, y float64, ok bool) {
	if l.factor == 0 || row < 1 || col < 0 || col >= l.dw {
		return 0, 0, false
	}
	py := 2 * (row - 1)
	if py >= l.dh {
		return 0, 0, false
	}
	return (float64(col) + 0.5) / l.factor, (float64(py) + 0.5) / l.factor, true
}

// fit resizes frame to the displayed size.
func (l layout) fit(frame image.Image) *image.RGBA {
	if l.dw == 0 || l.dh == 0 || frame == nil {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, l.dw, l.dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), frame, frame.Bounds(), draw.Src, nil)
	return dst
}

var titleStyle = tcell.StyleDefault.Reverse(true)

func (w *Window) redraw() {
	l := w.layout
	w.drawTitle(l.cols)
	for row := range l.canvasRows() {
		for col := range l.cols {
			w.drawCell(col, row)
		}
	}
	w.screen.Show()
}

func (w *Window) drawTitle(cols int) {
	col := 0
	for _, r := range runewidth.Truncate(w.title, cols, "…") {
		w.screen.SetContent(col, 0, r, nil, titleStyle)
		col += runewidth.RuneWidth(r)
	}
	for ; col < cols; col++ {
		w.screen.SetContent(col, 0, ' ', nil, titleStyle)
	}
}

func (w *Window) drawCell(col, row int) {
	y := 2 * row
	f := w.frame
	if f == nil || col >= f.Rect.Dx() || y >= f.Rect.Dy() {
		w.screen.SetContent(col, row+1, ' ', nil, tcell.StyleDefault)
		return
	}
	st := tcell.StyleDefault.Foreground(cellColor(f, col, y))
	if y+1 < f.Rect.Dy() {
		st = st.Background(cellColor(f, col, y+1))
	}
	w.screen.SetContent(col, row+1, upperHalf, nil, st)
}

func cellColor(f *image.RGBA, x, y int) tcell.Color {
	c := f.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
