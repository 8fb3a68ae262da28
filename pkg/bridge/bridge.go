// Package bridge rasterizes draw.Primitive lists into a terminal cell
// grid. It is the demo hosts' stand-in for a pixel backend: widgets
// keep emitting pixel-space primitives and the bridge maps them onto
// character cells colored with lipgloss.
package bridge

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/draw"
	"github.com/justyntemme/audioui/pkg/style"
)

// Cell size in pixels. Terminal cells are roughly twice as tall as
// wide, so a square widget stays square on screen.
const (
	CellWidth  float32 = 4.0
	CellHeight float32 = 8.0
)

type cell struct {
	ch    rune
	color style.Color
	set   bool
}

// Canvas is a fixed-size cell grid accepting pixel-space primitives.
type Canvas struct {
	cols, rows int
	cells      []cell
	noColor    bool
}

// NewCanvas builds a canvas covering the given pixel area.
func NewCanvas(pixelWidth, pixelHeight float32) *Canvas {
	cols := int(math.Ceil(float64(pixelWidth / CellWidth)))
	rows := int(math.Ceil(float64(pixelHeight / CellHeight)))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Canvas{
		cols:  cols,
		rows:  rows,
		cells: make([]cell, cols*rows),
	}
}

// NoColor disables lipgloss coloring for dumb terminals.
func (c *Canvas) NoColor() *Canvas {
	c.noColor = true
	return c
}

// Size returns the grid dimensions in cells.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Clear empties the grid.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

// Paint rasterizes one primitive list in order.
func (c *Canvas) Paint(primitives []draw.Primitive) {
	for _, p := range primitives {
		switch p := p.(type) {
		case draw.Quad:
			c.paintQuad(p)
		case draw.ArcStroke:
			c.paintArc(p)
		case draw.Line:
			c.paintLine(p)
		case draw.Text:
			c.paintText(p)
		case draw.ImageQuad:
			c.paintImage(p)
		}
	}
}

func (c *Canvas) plot(col, row int, ch rune, color style.Color) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	if color.IsTransparent() {
		return
	}
	c.cells[row*c.cols+col] = cell{ch: ch, color: color, set: true}
}

func (c *Canvas) plotPixel(x, y float32, ch rune, color style.Color) {
	c.plot(int(x/CellWidth), int(y/CellHeight), ch, color)
}

func (c *Canvas) paintQuad(q draw.Quad) {
	x0 := int(q.Bounds.X / CellWidth)
	y0 := int(q.Bounds.Y / CellHeight)
	x1 := int((q.Bounds.X + q.Bounds.Width - 0.5) / CellWidth)
	y1 := int((q.Bounds.Y + q.Bounds.Height - 0.5) / CellHeight)
	for row := y0; row <= y1; row++ {
		for col := x0; col <= x1; col++ {
			edge := row == y0 || row == y1 || col == x0 || col == x1
			if edge && q.BorderWidth > 0 && !q.BorderColor.IsTransparent() {
				c.plot(col, row, '█', q.BorderColor)
				continue
			}
			c.plot(col, row, '█', q.Background)
		}
	}
}

func (c *Canvas) paintLine(l draw.Line) {
	dx := l.To.X - l.From.X
	dy := l.To.Y - l.From.Y
	steps := int(math.Max(math.Abs(float64(dx/CellWidth)), math.Abs(float64(dy/CellHeight)))) + 1
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		c.plotPixel(l.From.X+dx*t, l.From.Y+dy*t, lineRune(dx, dy), l.Color)
	}
}

// lineRune picks a glyph matching the dominant line direction.
func lineRune(dx, dy float32) rune {
	adx := math.Abs(float64(dx)) / float64(CellWidth)
	ady := math.Abs(float64(dy)) / float64(CellHeight)
	switch {
	case adx > 2*ady:
		return '─'
	case ady > 2*adx:
		return '│'
	case (dx < 0) != (dy < 0):
		return '/'
	default:
		return '\\'
	}
}

func (c *Canvas) paintArc(a draw.ArcStroke) {
	// Sample at roughly one step per covered cell.
	steps := int(float64(a.Radius)*math.Abs(float64(a.Sweep))/float64(CellWidth)) + 2
	for i := 0; i <= steps; i++ {
		angle := a.StartAngle + a.Sweep*float32(i)/float32(steps)
		x := a.Center.X + a.Radius*float32(math.Cos(float64(angle)))
		y := a.Center.Y + a.Radius*float32(math.Sin(float64(angle)))
		c.plotPixel(x, y, '•', a.Color)
	}
}

func (c *Canvas) paintText(t draw.Text) {
	col := int(t.Anchor.X / CellWidth)
	row := int(t.Anchor.Y / CellHeight)
	switch t.HAlign {
	case draw.HCenter:
		col -= len(t.Content) / 2
	case draw.HRight:
		col -= len(t.Content)
	}
	for i, ch := range t.Content {
		c.plot(col+i, row, ch, t.Color)
	}
}

func (c *Canvas) paintImage(q draw.ImageQuad) {
	// No texture decoding in a terminal; show the footprint.
	c.paintQuad(draw.Quad{Bounds: q.Bounds, Background: style.Gray(0.5)})
}

// Render flattens the grid into styled terminal lines.
func (c *Canvas) Render() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			if !cl.set {
				b.WriteByte(' ')
				continue
			}
			if c.noColor {
				b.WriteRune(cl.ch)
				continue
			}
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(cl.color.Hex())).
				Render(string(cl.ch)))
		}
	}
	return b.String()
}

// CellBounds converts a grid placement to the pixel rectangle widgets
// draw into.
func CellBounds(col, row, cols, rows int) core.Rectangle {
	return core.Rectangle{
		X:      float32(col) * CellWidth,
		Y:      float32(row) * CellHeight,
		Width:  float32(cols) * CellWidth,
		Height: float32(rows) * CellHeight,
	}
}
