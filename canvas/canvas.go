package canvas

import (
	"math"
	"strings"

	"github.com/npillmayer/arithm"
)

// dot bits within a braille cell, indexed by [y%4][x%2]
var pixelMap = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBase rune = 0x2800

// rowPad is the initial width of a newly created row, in cells.
const rowPad = 10

// DefaultLimit is the default maximum extent of a canvas, in cells.
const DefaultLimit = 4096

// Canvas is a growable grid of braille cells. The zero value is not usable;
// create canvases with New.
type Canvas struct {
	cells [][]rune // dot bits per cell, without the braille base
	limit int      // maximum number of rows and columns
}

// Option configures a canvas.
type Option func(*Canvas)

// WithLimit sets the maximum number of rows and columns a canvas may grow
// to. Points beyond are dropped.
func WithLimit(cells int) Option {
	return func(c *Canvas) {
		if cells > 0 {
			c.limit = cells
		}
	}
}

// New creates an empty canvas.
func New(opts ...Option) *Canvas {
	c := &Canvas{limit: DefaultLimit}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Set switches on the dot at (x, y).
func (c *Canvas) Set(x, y float64) {
	if row, col, bit, ok := c.locate(x, y); ok {
		c.cells[row][col] |= bit
	}
}

// SetPair switches on the dot at point p.
func (c *Canvas) SetPair(p arithm.Pair) {
	c.Set(p.X(), p.Y())
}

// Unset switches off the dot at (x, y).
func (c *Canvas) Unset(x, y float64) {
	if row, col, bit, ok := c.locate(x, y); ok {
		c.cells[row][col] &^= bit
	}
}

// Toggle inverts the dot at (x, y).
func (c *Canvas) Toggle(x, y float64) {
	if row, col, bit, ok := c.locate(x, y); ok {
		c.cells[row][col] ^= bit
	}
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y float64) bool {
	rx, ry, ok := c.dot(x, y)
	if !ok {
		return false
	}
	row, col := ry/4, rx/2
	if row >= len(c.cells) || col >= len(c.cells[row]) {
		return false
	}
	return c.cells[row][col]&pixelMap[ry%4][rx%2] != 0
}

// Clear removes all dots and shrinks the canvas to nothing.
func (c *Canvas) Clear() {
	c.cells = nil
}

// Rows returns the current number of character rows.
func (c *Canvas) Rows() int {
	return len(c.cells)
}

// Frame renders the canvas to text, one line per row of cells. Rows may be
// of different length.
func (c *Canvas) Frame() string {
	var b strings.Builder
	for i, row := range c.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			b.WriteRune(brailleBase + cell)
		}
	}
	return b.String()
}

// dot rounds a coordinate pair to dot positions. Negative coordinates clamp
// to 0; non-finite ones and those beyond the limit are rejected.
func (c *Canvas) dot(x, y float64) (int, int, bool) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return 0, 0, false
	}
	rx, ry := math.Max(0, math.Round(x)), math.Max(0, math.Round(y))
	if rx >= float64(2*c.limit) || ry >= float64(4*c.limit) {
		return 0, 0, false
	}
	return int(rx), int(ry), true
}

// locate finds the cell and dot bit for (x, y), growing the canvas as
// needed.
func (c *Canvas) locate(x, y float64) (row, col int, bit rune, ok bool) {
	rx, ry, ok := c.dot(x, y)
	if !ok {
		tracer().Debugf("point (%g,%g) is off canvas", x, y)
		return 0, 0, 0, false
	}
	row, col = ry/4, rx/2
	c.grow(row, col)
	return row, col, pixelMap[ry%4][rx%2], true
}

func (c *Canvas) grow(row, col int) {
	for len(c.cells) <= row {
		c.cells = append(c.cells, make([]rune, rowPad))
	}
	if n := len(c.cells[row]); n <= col {
		c.cells[row] = append(c.cells[row], make([]rune, col-n+1)...)
	}
}
