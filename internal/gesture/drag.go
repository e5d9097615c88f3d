package gesture

import (
	"fmt"
	"log"

	"deskwm/internal/geometry"
	"deskwm/internal/registry"
)

// DragController converts one pointer-capture sequence on a title bar into
// window position updates. Starting a drag brings the window to the front;
// snap zones are previewed during the drag and committed only on a
// deliberate release.
type DragController struct {
	reg      *registry.Registry
	settings Settings

	phase    Phase
	windowID string
	start    Point
	origin   geometry.Rect

	// wasMaximized remembers the flag Begin cleared, so Cancel can put the
	// window back exactly as it was.
	wasMaximized bool
}

// NewDrag creates an idle drag controller bound to a registry.
func NewDrag(reg *registry.Registry, settings Settings) *DragController {
	return &DragController{reg: reg, settings: settings}
}

// Active reports whether a drag is in progress.
func (c *DragController) Active() bool { return c.phase == PhaseDragging }

// WindowID returns the id of the window being dragged, or "" when idle.
func (c *DragController) WindowID() string {
	if c.phase != PhaseDragging {
		return ""
	}
	return c.windowID
}

// Begin starts a drag at the given pointer position. The target window is
// focused and raised as a side effect, matching desktop conventions.
func (c *DragController) Begin(id string, x, y int) error {
	if c.phase != PhaseIdle {
		return ErrGestureActive
	}

	w, err := c.reg.Get(id)
	if err != nil {
		return err
	}
	if !w.Draggable {
		return fmt.Errorf("%w: %s", ErrNotAllowed, id)
	}

	if err := c.reg.BringToFront(id); err != nil {
		return err
	}
	if w.Maximized {
		// Dragging a maximized window returns it to normal stacking; the
		// frame itself is left where the gesture moves it.
		maximized := false
		if _, err := c.reg.Update(id, registry.Patch{Maximized: &maximized}); err != nil {
			return err
		}
	}

	c.phase = PhaseDragging
	c.windowID = id
	c.start = Point{X: x, Y: y}
	c.origin = w.Frame
	c.wasMaximized = w.Maximized
	return nil
}

// Move applies a pointer move: candidate position is the gesture-start
// frame shifted by the pointer delta, clamped to the viewport. A window
// that vanished mid-gesture ends the drag silently.
func (c *DragController) Move(x, y int) {
	if c.phase != PhaseDragging {
		return
	}

	w, err := c.reg.Get(c.windowID)
	if err != nil {
		c.reset()
		return
	}

	candidate := c.origin
	candidate.X += x - c.start.X
	candidate.Y += y - c.start.Y
	clamped := geometry.ClampToViewport(candidate, c.settings.Viewport(), w.MinSize)

	if _, err := c.reg.Update(c.windowID, registry.Patch{X: &clamped.X, Y: &clamped.Y}); err != nil {
		c.reset()
	}
}

// PreviewZone returns the snap zone the window would land in if released
// now, for rendering a visual guide. The position is never forced to the
// zone before release.
func (c *DragController) PreviewZone() geometry.SnapZone {
	if c.phase != PhaseDragging {
		return geometry.ZoneNone
	}
	w, err := c.reg.Get(c.windowID)
	if err != nil {
		return geometry.ZoneNone
	}
	return geometry.FindSnapZone(w.Frame, c.settings.Viewport(), c.settings.SnapThreshold())
}

// End finishes the drag at the release position. If the final position
// sits inside a snap zone the zone bounds are committed instead of the raw
// dragged bounds.
func (c *DragController) End(x, y int) {
	if c.phase != PhaseDragging {
		return
	}

	c.Move(x, y)
	if c.phase != PhaseDragging {
		// Move detected a vanished window and already ended the gesture.
		return
	}

	id := c.windowID
	c.reset()

	w, err := c.reg.Get(id)
	if err != nil {
		return
	}

	v := c.settings.Viewport()
	zone := geometry.FindSnapZone(w.Frame, v, c.settings.SnapThreshold())
	bounds, ok := geometry.SnapZoneBounds(zone, v)
	if !ok {
		return
	}

	log.Printf("drag: snapping %s to %s", id, zone)
	if _, err := c.reg.Update(id, registry.Patch{
		X: &bounds.X, Y: &bounds.Y, Width: &bounds.Width, Height: &bounds.Height,
	}); err != nil {
		log.Printf("drag: snap commit failed: %v", err)
	}
}

// Cancel aborts the drag and restores the pre-gesture position. Calling it
// with no active drag is a no-op.
func (c *DragController) Cancel() {
	if c.phase != PhaseDragging {
		return
	}

	id := c.windowID
	origin := c.origin
	maximized := c.wasMaximized
	c.reset()

	if _, err := c.reg.Update(id, registry.Patch{
		X: &origin.X, Y: &origin.Y, Maximized: &maximized,
	}); err != nil {
		log.Printf("drag: cancel restore skipped: %v", err)
	}
}

// Interrupt ends the drag in place: no snap, no restore. Pointer-cancel
// and capture loss route here, leaving the window at its last committed
// position.
func (c *DragController) Interrupt() {
	c.reset()
}

func (c *DragController) reset() {
	c.phase = PhaseIdle
	c.windowID = ""
	c.start = Point{}
	c.origin = geometry.Rect{}
	c.wasMaximized = false
}
