// Package desktop is the top-level coordinator of a desktop session. It
// routes pointer and keyboard input to the drag/resize controllers, owns
// the one-active-gesture-at-a-time invariant, coalesces pointer moves to
// one registry mutation per frame, and exposes the window lifecycle.
package desktop

import (
	"log/slog"
	"sync"

	"deskwm/internal/config"
	"deskwm/internal/geometry"
	"deskwm/internal/gesture"
	"deskwm/internal/registry"
)

// Desktop coordinates one session: a registry of windows plus the two
// gesture controllers. All input enters through this type.
type Desktop struct {
	// mu guards the gesture controllers and the pending pointer sample.
	// cfgMu guards cfg separately: the controllers call back into the
	// Settings methods mid-gesture while mu is held.
	mu    sync.Mutex
	cfgMu sync.RWMutex
	cfg   *config.Config
	log   *slog.Logger

	reg    *registry.Registry
	drag   *gesture.DragController
	resize *gesture.ResizeController

	// pending holds the latest uncommitted pointer-move sample; Frame
	// applies it so moves coalesce to one mutation per animation frame.
	pending    gesture.Point
	hasPending bool
}

// New creates a desktop session from the given config.
func New(cfg *config.Config, logger *slog.Logger) *Desktop {
	if logger == nil {
		logger = slog.Default()
	}
	reg := registry.New(cfg.Viewport(), registry.Defaults{
		WindowSize: cfg.DefaultWindowSize(),
		MinSize:    cfg.MinWindowSize(),
		Cascade: geometry.Cascade{
			Margin:   cfg.Cascade.Margin,
			Step:     cfg.Cascade.Step,
			Attempts: cfg.Cascade.Attempts,
		},
	})

	d := &Desktop{cfg: cfg, log: logger, reg: reg}
	d.drag = gesture.NewDrag(reg, d)
	d.resize = gesture.NewResize(reg, d)
	return d
}

// Registry exposes the session's window store for renderers and the
// persistence collaborator.
func (d *Desktop) Registry() *registry.Registry { return d.reg }

// Viewport implements gesture.Settings from the live config.
func (d *Desktop) Viewport() geometry.Viewport {
	d.cfgMu.RLock()
	defer d.cfgMu.RUnlock()
	return d.cfg.Viewport()
}

// SnapThreshold implements gesture.Settings from the live config.
func (d *Desktop) SnapThreshold() int {
	d.cfgMu.RLock()
	defer d.cfgMu.RUnlock()
	return d.cfg.SnapThreshold
}

// SetConfig swaps in a reloaded config. An active gesture keeps running
// and picks up the new clamping parameters on its next move.
func (d *Desktop) SetConfig(cfg *config.Config) {
	d.cfgMu.Lock()
	d.cfg = cfg
	d.cfgMu.Unlock()
	d.reg.SetViewport(cfg.Viewport())
	d.log.Info("config reloaded",
		"viewport", cfg.ViewportWidth, "height", cfg.ViewportHeight,
		"snap_threshold", cfg.SnapThreshold)
}

// GestureActive reports whether a drag or resize is in progress.
func (d *Desktop) GestureActive() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gestureActiveLocked()
}

func (d *Desktop) gestureActiveLocked() bool {
	return d.drag.Active() || d.resize.Active()
}

// PointerDown routes a primary-button press. While a gesture is active any
// further press is ignored; the first gesture wins until its terminal
// event. Presses on a title bar start a drag, on a border band a resize,
// anywhere else in a window they focus it.
func (d *Desktop) PointerDown(x, y int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.gestureActiveLocked() {
		return
	}

	w, ok := d.windowAt(x, y)
	if !ok {
		return
	}

	if h := d.handleAt(w, x, y); h != gesture.HandleNone && w.Resizable {
		if err := d.resize.Begin(w.ID, h, x, y); err != nil {
			d.log.Debug("resize rejected", "window", w.ID, "err", err)
			return
		}
		d.log.Debug("resize started", "window", w.ID, "handle", h.String())
		return
	}

	if d.inTitleBar(w, y) && w.Draggable {
		if err := d.drag.Begin(w.ID, x, y); err != nil {
			d.log.Debug("drag rejected", "window", w.ID, "err", err)
			return
		}
		d.log.Debug("drag started", "window", w.ID)
		return
	}

	if err := d.reg.BringToFront(w.ID); err != nil {
		d.log.Debug("focus failed", "window", w.ID, "err", err)
	}
}

// PointerMove records a pointer sample for the active gesture. Samples
// overwrite each other; Frame commits at most one per animation frame, in
// arrival order.
func (d *Desktop) PointerMove(x, y int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.gestureActiveLocked() {
		return
	}
	d.pending = gesture.Point{X: x, Y: y}
	d.hasPending = true
}

// Frame applies the pending pointer sample, if any. The host calls this
// once per animation frame.
func (d *Desktop) Frame() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.hasPending {
		return
	}
	p := d.pending
	d.hasPending = false

	switch {
	case d.drag.Active():
		d.drag.Move(p.X, p.Y)
	case d.resize.Active():
		d.resize.Move(p.X, p.Y)
	}
}

// PointerUp ends the active gesture at the release position. The final
// position is applied directly so the last pre-release move is never
// dropped, and drag may commit a snap zone here.
func (d *Desktop) PointerUp(x, y int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.hasPending = false
	switch {
	case d.drag.Active():
		d.drag.End(x, y)
	case d.resize.Active():
		d.resize.End(x, y)
	}
}

// PointerCancel handles device loss or capture revocation: the gesture
// ends in place with no snap and no restore.
func (d *Desktop) PointerCancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.hasPending = false
	d.drag.Interrupt()
	d.resize.Interrupt()
}

// CancelGesture handles Escape: pre-gesture geometry is restored
// atomically. A no-op when nothing is active.
func (d *Desktop) CancelGesture() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.hasPending = false
	d.drag.Cancel()
	d.resize.Cancel()
}

// DragPreviewZone returns the snap zone the active drag would commit on
// release, for rendering a guide overlay.
func (d *Desktop) DragPreviewZone() geometry.SnapZone {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.drag.PreviewZone()
}

// windowAt returns the topmost non-minimized window containing the point.
func (d *Desktop) windowAt(x, y int) (registry.Window, bool) {
	var top registry.Window
	found := false
	for _, w := range d.reg.Stacking() {
		if w.Frame.Contains(x, y) {
			top = w
			found = true
		}
	}
	return top, found
}

// WindowAt returns the topmost non-minimized window containing the point.
func (d *Desktop) WindowAt(x, y int) (registry.Window, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.windowAt(x, y)
}

// handleAt maps a point inside a window to one of the eight resize
// handles, or HandleNone when the point is outside the border band.
func (d *Desktop) handleAt(w registry.Window, x, y int) gesture.Handle {
	d.cfgMu.RLock()
	band := d.cfg.HandleSize
	d.cfgMu.RUnlock()
	f := w.Frame

	west := x < f.X+band
	east := x >= f.Right()-band
	north := y < f.Y+band
	south := y >= f.Bottom()-band

	switch {
	case north && west:
		return gesture.HandleNW
	case north && east:
		return gesture.HandleNE
	case south && west:
		return gesture.HandleSW
	case south && east:
		return gesture.HandleSE
	case north:
		return gesture.HandleN
	case south:
		return gesture.HandleS
	case west:
		return gesture.HandleW
	case east:
		return gesture.HandleE
	default:
		return gesture.HandleNone
	}
}

// inTitleBar reports whether the y coordinate falls in the window's drag
// handle strip.
func (d *Desktop) inTitleBar(w registry.Window, y int) bool {
	d.cfgMu.RLock()
	bar := d.cfg.TitleBarHeight
	d.cfgMu.RUnlock()
	return y >= w.Frame.Y && y < w.Frame.Y+bar
}
