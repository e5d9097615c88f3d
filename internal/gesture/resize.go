package gesture

import (
	"fmt"
	"log"

	"deskwm/internal/geometry"
	"deskwm/internal/registry"
)

// ResizeController converts a pointer-capture sequence on one of the eight
// directional handles into window size and position updates. Leading-edge
// handles (N, W and their corners) keep the opposite edge fixed; snap zones
// never apply to resize.
type ResizeController struct {
	reg      *registry.Registry
	settings Settings

	phase    Phase
	windowID string
	handle   Handle
	start    Point
	origin   geometry.Rect
}

// NewResize creates an idle resize controller bound to a registry.
func NewResize(reg *registry.Registry, settings Settings) *ResizeController {
	return &ResizeController{reg: reg, settings: settings}
}

// Active reports whether a resize is in progress.
func (c *ResizeController) Active() bool { return c.phase == PhaseResizing }

// WindowID returns the id of the window being resized, or "" when idle.
func (c *ResizeController) WindowID() string {
	if c.phase != PhaseResizing {
		return ""
	}
	return c.windowID
}

// Handle returns the active handle, or HandleNone when idle.
func (c *ResizeController) Handle() Handle {
	if c.phase != PhaseResizing {
		return HandleNone
	}
	return c.handle
}

// Begin starts a resize from the given handle. Focus and raise side
// effects match drag.
func (c *ResizeController) Begin(id string, h Handle, x, y int) error {
	if c.phase != PhaseIdle {
		return ErrGestureActive
	}
	if h == HandleNone {
		return fmt.Errorf("%w: no handle", ErrNotAllowed)
	}

	w, err := c.reg.Get(id)
	if err != nil {
		return err
	}
	if !w.Resizable {
		return fmt.Errorf("%w: %s", ErrNotAllowed, id)
	}

	if err := c.reg.BringToFront(id); err != nil {
		return err
	}

	c.phase = PhaseResizing
	c.windowID = id
	c.handle = h
	c.start = Point{X: x, Y: y}
	c.origin = w.Frame
	return nil
}

// Move applies a pointer move through the handle's directional transform,
// then clamps size to the window's constraints and position to the
// viewport. When min-size clamping bites while shrinking from a leading
// edge, the position is corrected so the trailing edge stays put instead of
// the window teleporting.
func (c *ResizeController) Move(x, y int) {
	if c.phase != PhaseResizing {
		return
	}

	w, err := c.reg.Get(c.windowID)
	if err != nil {
		c.reset()
		return
	}

	next := c.transform(x-c.start.X, y-c.start.Y, w)

	if _, err := c.reg.Update(c.windowID, registry.Patch{
		X: &next.X, Y: &next.Y, Width: &next.Width, Height: &next.Height,
	}); err != nil {
		c.reset()
	}
}

func (c *ResizeController) transform(dx, dy int, w registry.Window) geometry.Rect {
	next := c.origin

	if c.handle.expandsEast() {
		next.Width = c.origin.Width + dx
	}
	if c.handle.expandsWest() {
		next.Width = c.origin.Width - dx
		next.X = c.origin.X + dx
	}
	if c.handle.expandsSouth() {
		next.Height = c.origin.Height + dy
	}
	if c.handle.expandsNorth() {
		next.Height = c.origin.Height - dy
		next.Y = c.origin.Y + dy
	}

	u := c.settings.Viewport().Usable()

	maxW := w.MaxSize.Width
	if maxW <= 0 || maxW > u.Width {
		maxW = u.Width
	}
	maxH := w.MaxSize.Height
	if maxH <= 0 || maxH > u.Height {
		maxH = u.Height
	}

	if next.Width < w.MinSize.Width {
		if c.handle.expandsWest() {
			next.X = c.origin.X + (c.origin.Width - w.MinSize.Width)
		}
		next.Width = w.MinSize.Width
	}
	if next.Width > maxW {
		if c.handle.expandsWest() {
			next.X = c.origin.X + (c.origin.Width - maxW)
		}
		next.Width = maxW
	}
	if next.Height < w.MinSize.Height {
		if c.handle.expandsNorth() {
			next.Y = c.origin.Y + (c.origin.Height - w.MinSize.Height)
		}
		next.Height = w.MinSize.Height
	}
	if next.Height > maxH {
		if c.handle.expandsNorth() {
			next.Y = c.origin.Y + (c.origin.Height - maxH)
		}
		next.Height = maxH
	}

	// Resize permits no viewport overshoot, unlike drag.
	if next.X < u.X {
		next.X = u.X
	}
	if next.X > u.Right()-next.Width {
		next.X = u.Right() - next.Width
	}
	if next.Y < u.Y {
		next.Y = u.Y
	}
	if next.Y > u.Bottom()-next.Height {
		next.Y = u.Bottom() - next.Height
	}

	return next
}

// End finishes the resize at the release position. No snap applies.
func (c *ResizeController) End(x, y int) {
	if c.phase != PhaseResizing {
		return
	}
	c.Move(x, y)
	c.reset()
}

// Cancel aborts the resize and restores the pre-gesture geometry in one
// atomic update. Calling it with no active resize is a no-op.
func (c *ResizeController) Cancel() {
	if c.phase != PhaseResizing {
		return
	}

	id := c.windowID
	origin := c.origin
	c.reset()

	if _, err := c.reg.Update(id, registry.Patch{
		X: &origin.X, Y: &origin.Y, Width: &origin.Width, Height: &origin.Height,
	}); err != nil {
		log.Printf("resize: cancel restore skipped: %v", err)
	}
}

// Interrupt ends the resize in place, keeping the last committed geometry.
func (c *ResizeController) Interrupt() {
	c.reset()
}

func (c *ResizeController) reset() {
	c.phase = PhaseIdle
	c.windowID = ""
	c.handle = HandleNone
	c.start = Point{}
	c.origin = geometry.Rect{}
}
