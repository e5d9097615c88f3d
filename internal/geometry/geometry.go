// Package geometry implements the pure placement math for the desktop:
// viewport clamping, snap-zone detection, and cascade placement for new
// windows. Nothing in this package holds state; every function computes
// from explicit inputs so controllers can call it mid-gesture without
// coordination.
package geometry

// Default host-surface parameters. Callers normally read these through the
// config layer; they live here so the engine is usable standalone.
const (
	DefaultSnapThreshold = 20
	DefaultChromeHeight  = 80
	DefaultMinWidth      = 300
	DefaultMinHeight     = 200

	// DragOvershootLeft is how far a dragged window may extend past the
	// left viewport edge. The top edge permits no overshoot so the title
	// bar stays grabbable.
	DragOvershootLeft = 50

	CascadeMargin   = 20
	CascadeStep     = 30
	CascadeAttempts = 10
)

// Rect is a window or zone rectangle in host-surface pixel units.
type Rect struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Size is a width/height pair.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects reports whether two rectangles overlap, using the strict
// separating-axis test: they overlap unless one is entirely to the left,
// right, above, or below the other.
func (r Rect) Intersects(o Rect) bool {
	if r.Right() <= o.X || o.Right() <= r.X {
		return false
	}
	if r.Bottom() <= o.Y || o.Bottom() <= r.Y {
		return false
	}
	return true
}

// Viewport describes the host surface. ChromeHeight is reserved space at
// the bottom (the taskbar strip) excluded from all placement math.
type Viewport struct {
	Width        int
	Height       int
	ChromeHeight int
}

// Usable returns the viewport rectangle minus reserved chrome.
func (v Viewport) Usable() Rect {
	h := v.Height - v.ChromeHeight
	if h < 0 {
		h = 0
	}
	return Rect{X: 0, Y: 0, Width: v.Width, Height: h}
}

// ClampToViewport constrains a candidate window rectangle so the window can
// never be dragged entirely off-screen and never shrinks below min. The left
// edge may overshoot by up to DragOvershootLeft; the top edge may not
// overshoot at all.
func ClampToViewport(r Rect, v Viewport, min Size) Rect {
	u := v.Usable()

	if min.Width <= 0 {
		min.Width = DefaultMinWidth
	}
	if min.Height <= 0 {
		min.Height = DefaultMinHeight
	}

	if r.Width > u.Width {
		r.Width = u.Width
	}
	if r.Width < min.Width {
		r.Width = min.Width
	}
	if r.Height > u.Height {
		r.Height = u.Height
	}
	if r.Height < min.Height {
		r.Height = min.Height
	}

	if r.X > u.Right()-r.Width {
		r.X = u.Right() - r.Width
	}
	if r.X < u.X-DragOvershootLeft {
		r.X = u.X - DragOvershootLeft
	}
	if r.Y > u.Bottom()-r.Height {
		r.Y = u.Bottom() - r.Height
	}
	if r.Y < u.Y {
		r.Y = u.Y
	}

	return r
}

// FindBestPosition picks a position for a newly created window: a diagonal
// cascade from the top-left corner, skipping slots where another window is
// already anchored, falling back to dead center when every slot is taken or
// the window no longer fits. A slot counts as occupied when an existing
// window's origin sits within half a cascade step of it; full-rectangle
// overlap between cascaded windows is expected and allowed.
func FindBestPosition(size Size, existing []Rect, v Viewport) Rect {
	return FindBestPositionCascade(size, existing, v, Cascade{})
}

// Cascade parameterizes cascade placement. Zero fields take the package
// defaults.
type Cascade struct {
	Margin   int
	Step     int
	Attempts int
}

// FindBestPositionCascade is FindBestPosition with explicit cascade
// parameters, for configs that tune the placement.
func FindBestPositionCascade(size Size, existing []Rect, v Viewport, c Cascade) Rect {
	if c.Margin <= 0 {
		c.Margin = CascadeMargin
	}
	if c.Step <= 0 {
		c.Step = CascadeStep
	}
	if c.Attempts <= 0 {
		c.Attempts = CascadeAttempts
	}
	u := v.Usable()

	for i := 0; i < c.Attempts; i++ {
		x := u.X + c.Margin + i*c.Step
		y := u.Y + c.Margin + i*c.Step
		if x+size.Width > u.Right() || y+size.Height > u.Bottom() {
			break
		}

		occupied := false
		for _, e := range existing {
			if abs(e.X-x) < c.Step/2 && abs(e.Y-y) < c.Step/2 {
				occupied = true
				break
			}
		}
		if !occupied {
			return Rect{X: x, Y: y, Width: size.Width, Height: size.Height}
		}
	}

	return Rect{
		X:      u.X + (u.Width-size.Width)/2,
		Y:      u.Y + (u.Height-size.Height)/2,
		Width:  size.Width,
		Height: size.Height,
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
