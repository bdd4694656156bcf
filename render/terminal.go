package render

import (
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/driftgraph/core"
	"github.com/katalvlaran/driftgraph/frame"
)

// CellAspect is how much taller a terminal cell is than it is wide.
const CellAspect = 2.0

// Levels is the number of opacity buckets used for terminal styling.
const Levels = 4

// Cell is one character of a rasterised scene. Level 0 means empty.
type Cell struct {
	Rune  rune
	Level int
}

// Grid is a rasterised scene, row-major.
type Grid struct {
	Cols, Rows int
	Cells      []Cell
}

// At returns the cell at column x, row y.
func (g Grid) At(x, y int) Cell { return g.Cells[y*g.Cols+x] }

// String renders the grid as plain text, one line per row.
func (g Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			c := g.At(x, y)
			if c.Level == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteRune(c.Rune)
		}
		if y < g.Rows-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func (g Grid) set(x, y int, r rune, level int) {
	if x < 0 || y < 0 || x >= g.Cols || y >= g.Rows || level == 0 {
		return
	}
	g.Cells[y*g.Cols+x] = Cell{Rune: r, Level: level}
}

// level buckets opacity into 0..Levels; 0 only for fully transparent.
func level(o float64) int {
	if o <= 0 {
		return 0
	}
	l := int(math.Ceil(o * Levels))
	if l > Levels {
		l = Levels
	}

	return l
}

// glyph picks a node character by radius class.
func glyph(r float64) rune {
	switch {
	case r < 0.004:
		return '·'
	case r < 0.009:
		return '•'
	default:
		return '●'
	}
}

// Rasterize draws scene into a cols×rows grid.
//
// Steps:
//  1. Map viewport coordinates onto cell centres.
//  2. Draw every line with Bresenham using '·'.
//  3. Draw circles on top, glyph by radius class.
//
// Complexity: O(cols·rows + lines·max(cols,rows) + circles).
func Rasterize(scene Scene, cols, rows int) Grid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	g := Grid{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	vp := scene.Viewport
	if cols == 0 || rows == 0 || vp.Width <= 0 || vp.Height <= 0 {
		return g
	}

	// 1. Projection.
	px := func(x float64) int { return int(math.Floor(x / vp.Width * float64(cols))) }
	py := func(y float64) int { return int(math.Floor(y / vp.Height * float64(rows))) }

	// 2. Lines.
	for _, l := range scene.Lines {
		bresenham(px(l.X1), py(l.Y1), px(l.X2), py(l.Y2), func(x, y int) {
			g.set(x, y, '·', level(l.Opacity))
		})
	}

	// 3. Nodes.
	for _, c := range scene.Circles {
		g.set(px(c.CX), py(c.CY), glyph(c.R), level(c.Opacity))
	}

	return g
}

func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Terminal keeps the latest frame as a styled string for a TUI view.
// It is both a frame.Renderer and a frame.DimensionProvider.
type Terminal struct {
	mu         sync.Mutex
	cols, rows int
	styles     [Levels + 1]lipgloss.Style
	grid       Grid
	view       string
}

var (
	_ frame.Renderer          = (*Terminal)(nil)
	_ frame.DimensionProvider = (*Terminal)(nil)
)

// NewTerminal returns a renderer for a cols×rows area.
func NewTerminal(cols, rows int) *Terminal {
	t := &Terminal{cols: cols, rows: rows}
	shades := [Levels + 1]string{"", "60", "62", "104", "147"}
	for i := 1; i <= Levels; i++ {
		t.styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(shades[i]))
	}
	t.styles[Levels] = t.styles[Levels].Bold(true)

	return t
}

// Resize changes the drawing area; the next Render uses it.
func (t *Terminal) Resize(cols, rows int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cols, t.rows = cols, rows
}

// Size reports the area in square units: rows are scaled by CellAspect.
func (t *Terminal) Size() (core.Size, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.Size{Width: float64(t.cols), Height: float64(t.rows) * CellAspect}, nil
}

// Render rasterises f and stores the styled view.
func (t *Terminal) Render(f frame.Frame) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.grid = Rasterize(BuildScene(f.Viewport, f.Nodes, f.Edges), t.cols, t.rows)
	t.view = t.style(t.grid)

	return nil
}

// View returns the latest styled frame.
func (t *Terminal) View() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.view
}

// Grid returns the latest unstyled raster.
func (t *Terminal) Grid() Grid {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.grid
}

// style groups runs of equal level so each run is one lipgloss render.
func (t *Terminal) style(g Grid) string {
	var b strings.Builder
	var run strings.Builder
	for y := 0; y < g.Rows; y++ {
		cur := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur <= 0 {
				b.WriteString(run.String())
			} else {
				b.WriteString(t.styles[cur].Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < g.Cols; x++ {
			c := g.At(x, y)
			if c.Level != cur {
				flush()
				cur = c.Level
			}
			if c.Level == 0 {
				run.WriteByte(' ')
			} else {
				run.WriteRune(c.Rune)
			}
		}
		flush()
		if y < g.Rows-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
