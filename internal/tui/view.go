package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"deskwm/internal/geometry"
	"deskwm/internal/registry"
)

var (
	focusedBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	normalBorder  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	snapStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// canvas is a mutable cell grid windows get painted onto bottom to top.
type canvas struct {
	width, height int
	cells         [][]string
}

func newCanvas(width, height int) *canvas {
	cells := make([][]string, height)
	for y := range cells {
		row := make([]string, width)
		for x := range row {
			row[x] = " "
		}
		cells[y] = row
	}
	return &canvas{width: width, height: height, cells: cells}
}

func (c *canvas) set(x, y int, s string) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = s
}

func (c *canvas) text(x, y int, s string, style lipgloss.Style) {
	for i, r := range s {
		c.set(x+i, y, style.Render(string(r)))
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Join(row, ""))
	}
	return b.String()
}

func (m model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "loading..."
	}

	c := newCanvas(m.width, m.height)

	if zone := m.desktop.DragPreviewZone(); zone != geometry.ZoneNone {
		if bounds, ok := geometry.SnapZoneBounds(zone, m.desktop.Viewport()); ok {
			m.paintZonePreview(c, bounds)
		}
	}

	for _, w := range m.desktop.Registry().Stacking() {
		m.paintWindow(c, w)
	}

	c.text(0, m.height-1, m.statusLine(), statusStyle)
	return c.String()
}

func (m model) paintWindow(c *canvas, w registry.Window) {
	style := normalBorder
	if w.Focused {
		style = focusedBorder
	}
	f := w.Frame

	for y := f.Y; y < f.Bottom(); y++ {
		for x := f.X; x < f.Right(); x++ {
			c.set(x, y, " ")
		}
	}
	for x := f.X; x < f.Right(); x++ {
		c.set(x, f.Y, style.Render("─"))
		c.set(x, f.Bottom()-1, style.Render("─"))
	}
	for y := f.Y; y < f.Bottom(); y++ {
		c.set(f.X, y, style.Render("│"))
		c.set(f.Right()-1, y, style.Render("│"))
	}
	c.set(f.X, f.Y, style.Render("┌"))
	c.set(f.Right()-1, f.Y, style.Render("┐"))
	c.set(f.X, f.Bottom()-1, style.Render("└"))
	c.set(f.Right()-1, f.Bottom()-1, style.Render("┘"))

	title := w.Title
	if w.Maximized {
		title += " [max]"
	}
	c.text(f.X+2, f.Y, truncateTitle(title, f.Width-4), titleStyle)
}

// truncateTitle cuts a title to at most width cells, by runes so a
// multi-byte character is never split mid-sequence.
func truncateTitle(title string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(title)
	if len(runes) <= width {
		return title
	}
	return string(runes[:width])
}

func (m model) paintZonePreview(c *canvas, bounds geometry.Rect) {
	for y := bounds.Y; y < bounds.Bottom(); y++ {
		for x := bounds.X; x < bounds.Right(); x++ {
			c.set(x, y, snapStyle.Render("░"))
		}
	}
}

func (m model) statusLine() string {
	focused := "none"
	if w, ok := m.desktop.Registry().Focused(); ok {
		focused = w.Title
	}
	return fmt.Sprintf(" %d windows · focused: %s · n new · x close · m min · f max · tab cycle · b back · q quit",
		len(m.desktop.Registry().List()), focused)
}
