package surface

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"image/color"
	"math"
	"strings"
)

// Block is the character drawn for painted cells.
const Block = "█"

// Cells is a drawing area mapped onto a grid of terminal cells. It has a
// logical size, independent of the number of cells, so that the same drawing
// code can target it and a Raster alike. Each stroke blends its colour, with
// the colour's opacity, once into every cell it touches.
type Cells struct {
	width, height float64
	columns, rows int

	background colorful.Color
	cells      []colorful.Color
	painted    []bool

	stroke  colorful.Color
	opacity float64
	path    [][2]float64
	touched map[int]struct{}
}

// NewCells returns a grid of columns x rows cells covering a logical area of
// width x height.
func NewCells(width, height float64, columns, rows int, background color.Color) *Cells {
	if columns < 1 {
		columns = 1
	}
	if rows < 1 {
		rows = 1
	}
	bg, _ := colorful.MakeColor(background)
	cells := &Cells{
		width:      width,
		height:     height,
		columns:    columns,
		rows:       rows,
		background: bg,
		cells:      make([]colorful.Color, columns*rows),
		painted:    make([]bool, columns*rows),
		opacity:    1,
		touched:    make(map[int]struct{})}
	cells.Clear()
	return cells
}

// Size returns the logical size.
func (cells *Cells) Size() (float64, float64) {
	return cells.width, cells.height
}

// Grid returns the number of columns and rows.
func (cells *Cells) Grid() (columns, rows int) {
	return cells.columns, cells.rows
}

// Clear resets all cells to the background and discards the current path.
func (cells *Cells) Clear() {
	for index := range cells.cells {
		cells.cells[index] = cells.background
		cells.painted[index] = false
	}
	cells.path = cells.path[:0]
}

// SetStrokeColor sets the colour and opacity of subsequent strokes.
func (cells *Cells) SetStrokeColor(c color.Color) {
	_, _, _, alpha := c.RGBA()
	cells.opacity = float64(alpha) / 0xffff
	if stroke, ok := colorful.MakeColor(c); ok {
		cells.stroke = stroke
	}
}

// MoveTo starts a new subpath.
func (cells *Cells) MoveTo(x, y float64) {
	cells.path = append(cells.path[:0], [2]float64{x, y})
}

// LineTo adds a point to the current subpath.
func (cells *Cells) LineTo(x, y float64) {
	cells.path = append(cells.path, [2]float64{x, y})
}

// Stroke paints the cells touched by the current path.
func (cells *Cells) Stroke() {
	if cells.opacity > 0 {
		for index := 1; index < len(cells.path); index++ {
			cells.touch(cells.path[index-1], cells.path[index])
		}
		for cell := range cells.touched {
			cells.cells[cell] = cells.cells[cell].BlendRgb(cells.stroke, cells.opacity).Clamped()
			cells.painted[cell] = true
		}
	}
	for cell := range cells.touched {
		delete(cells.touched, cell)
	}
	cells.path = cells.path[:0]
}

// touch collects the cells covered by a line segment.
func (cells *Cells) touch(from, to [2]float64) {
	cellWidth := cells.width / float64(cells.columns)
	cellHeight := cells.height / float64(cells.rows)

	dx, dy := to[0]-from[0], to[1]-from[1]
	steps := int(math.Ceil(math.Max(math.Abs(dx)/cellWidth, math.Abs(dy)/cellHeight) * 2))
	if steps < 1 {
		// Zero length segments paint nothing.
		if dx == 0 && dy == 0 {
			return
		}
		steps = 1
	}

	for step := 0; step <= steps; step++ {
		t := float64(step) / float64(steps)
		x, y := from[0]+dx*t, from[1]+dy*t
		column := int(math.Floor(x / cellWidth))
		row := int(math.Floor(y / cellHeight))
		if y == cells.height {
			// The bottom edge belongs to the last row.
			row = cells.rows - 1
		}
		if column < 0 || column >= cells.columns || row < 0 || row >= cells.rows {
			continue
		}
		cells.touched[row*cells.columns+column] = struct{}{}
	}
}

// At returns the colour of a cell and whether any stroke painted it.
func (cells *Cells) At(column, row int) (colorful.Color, bool) {
	index := row*cells.columns + column
	return cells.cells[index], cells.painted[index]
}

// String renders the grid, one line per row. Painted cells are drawn as
// blocks in their colour, others as spaces.
func (cells *Cells) String() string {
	var builder strings.Builder
	for row := 0; row < cells.rows; row++ {
		if row > 0 {
			builder.WriteByte('\n')
		}
		for column := 0; column < cells.columns; column++ {
			c, painted := cells.At(column, row)
			if !painted {
				builder.WriteByte(' ')
				continue
			}
			builder.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(Block))
		}
	}
	return builder.String()
}
