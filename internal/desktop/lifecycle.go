package desktop

import (
	"fmt"

	"deskwm/internal/geometry"
	"deskwm/internal/registry"
)

// CreateWindow opens a new window. A spec without an explicit position is
// cascade-placed; the new window comes up focused and on top.
func (d *Desktop) CreateWindow(spec registry.Spec) (registry.Window, error) {
	w, err := d.reg.Create(spec)
	if err != nil {
		return registry.Window{}, err
	}
	d.log.Info("window created", "window", w.ID, "title", w.Title,
		"x", w.Frame.X, "y", w.Frame.Y, "w", w.Frame.Width, "h", w.Frame.Height)
	return w, nil
}

// CloseWindow removes a window. An active gesture on that window is
// interrupted first so the controllers never reference a dead id.
func (d *Desktop) CloseWindow(id string) error {
	d.mu.Lock()
	if d.drag.WindowID() == id {
		d.drag.Interrupt()
		d.hasPending = false
	}
	if d.resize.WindowID() == id {
		d.resize.Interrupt()
		d.hasPending = false
	}
	d.mu.Unlock()

	if err := d.reg.Remove(id); err != nil {
		return err
	}
	d.log.Info("window closed", "window", id)
	return nil
}

// CloseFocused closes the currently focused window, if any.
func (d *Desktop) CloseFocused() error {
	w, ok := d.reg.Focused()
	if !ok {
		return nil
	}
	return d.CloseWindow(w.ID)
}

// MinimizeWindow hides a window from the stacking order. Focus moves to
// the next-highest visible window.
func (d *Desktop) MinimizeWindow(id string) error {
	minimized := true
	if _, err := d.reg.Update(id, registry.Patch{Minimized: &minimized}); err != nil {
		return err
	}
	d.log.Info("window minimized", "window", id)
	return nil
}

// MinimizeFocused minimizes the currently focused window, if any.
func (d *Desktop) MinimizeFocused() error {
	w, ok := d.reg.Focused()
	if !ok {
		return nil
	}
	return d.MinimizeWindow(w.ID)
}

// RestoreWindow unminimizes a window and brings it to the front.
func (d *Desktop) RestoreWindow(id string) error {
	return d.reg.BringToFront(id)
}

// ToggleMaximize switches a window between maximized (filling the usable
// viewport) and its remembered normal frame.
func (d *Desktop) ToggleMaximize(id string) error {
	w, err := d.reg.Get(id)
	if err != nil {
		return err
	}
	if !w.Resizable {
		return fmt.Errorf("window %s is not resizable", id)
	}

	if w.Maximized {
		normal := w.NormalFrame
		if normal.Width <= 0 || normal.Height <= 0 {
			normal = w.Frame
		}
		maximized := false
		_, err = d.reg.Update(id, registry.Patch{
			X: &normal.X, Y: &normal.Y,
			Width: &normal.Width, Height: &normal.Height,
			Maximized: &maximized,
		})
		if err != nil {
			return err
		}
		d.log.Info("window restored", "window", id)
		return nil
	}

	u := d.Viewport().Usable()
	normal := w.Frame
	maximized := true
	_, err = d.reg.Update(id, registry.Patch{
		X: &u.X, Y: &u.Y,
		Width: &u.Width, Height: &u.Height,
		Maximized:   &maximized,
		NormalFrame: &normal,
	})
	if err != nil {
		return err
	}
	if err := d.reg.BringToFront(id); err != nil {
		return err
	}
	d.log.Info("window maximized", "window", id)
	return nil
}

// ToggleMaximizeFocused toggles maximize on the focused window, if any.
func (d *Desktop) ToggleMaximizeFocused() error {
	w, ok := d.reg.Focused()
	if !ok {
		return nil
	}
	return d.ToggleMaximize(w.ID)
}

// FocusWindow raises and focuses a window, restoring it if minimized.
func (d *Desktop) FocusWindow(id string) error {
	return d.reg.BringToFront(id)
}

// CycleFocus moves focus through the visible stack; forward walks up from
// the focused window, backward walks down. Wraps around at either end.
func (d *Desktop) CycleFocus(forward bool) error {
	current := ""
	if w, ok := d.reg.Focused(); ok {
		current = w.ID
	}

	var next string
	var ok bool
	if forward {
		next, ok = d.reg.CycleNext(current)
	} else {
		next, ok = d.reg.CyclePrevious(current)
	}
	if !ok {
		return nil
	}
	return d.reg.BringToFront(next)
}

// SendFocusedToBack drops the focused window to the bottom of the stack.
func (d *Desktop) SendFocusedToBack() error {
	w, ok := d.reg.Focused()
	if !ok {
		return nil
	}
	if err := d.reg.SendToBack(w.ID); err != nil {
		return err
	}
	d.log.Info("window sent to back", "window", w.ID)
	return nil
}

// SnapWindow places a window directly into a named snap zone, the same
// geometry a drag release into that zone would commit.
func (d *Desktop) SnapWindow(id string, zone geometry.SnapZone) error {
	if _, err := d.reg.Get(id); err != nil {
		return err
	}

	bounds, ok := geometry.SnapZoneBounds(zone, d.Viewport())
	if !ok {
		return fmt.Errorf("no bounds for snap zone %s", zone)
	}
	if _, err := d.reg.Update(id, registry.Patch{
		X: &bounds.X, Y: &bounds.Y, Width: &bounds.Width, Height: &bounds.Height,
	}); err != nil {
		return err
	}
	d.log.Info("window snapped", "window", id, "zone", zone.String())
	return nil
}
