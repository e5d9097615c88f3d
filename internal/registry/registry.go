// Package registry owns the canonical window records of a desktop session.
// Controllers and the coordinator read snapshots and write back through the
// mutation methods; nothing outside this package holds a live reference to
// a stored window. The registry also maintains the z-order counter and the
// single-focus invariant.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"deskwm/internal/geometry"
)

// ErrWindowNotFound is returned when an operation references a window id
// that is not (or no longer) in the registry.
var ErrWindowNotFound = errors.New("window not found")

// Window is a snapshot of one window record. Values returned by the
// registry are copies; mutate through Update.
type Window struct {
	ID    string        `json:"id"`
	Title string        `json:"title"`
	Frame geometry.Rect `json:"frame"`

	// NormalFrame holds the pre-maximize geometry so maximize can toggle
	// back without guessing.
	NormalFrame geometry.Rect `json:"normal_frame,omitempty"`

	Z         int  `json:"z"`
	Focused   bool `json:"focused"`
	Minimized bool `json:"minimized"`
	Maximized bool `json:"maximized"`
	Resizable bool `json:"resizable"`
	Draggable bool `json:"draggable"`

	MinSize geometry.Size `json:"min_size"`
	MaxSize geometry.Size `json:"max_size,omitempty"`

	// Content is an opaque reference resolved by the renderer (an app id
	// or asset key). The core never interprets it.
	Content string `json:"content,omitempty"`
}

// Spec describes a window to create. Zero sizes fall back to the registry
// defaults; AutoPlace ignores X/Y and cascades instead.
type Spec struct {
	Title     string
	X, Y      int
	Width     int
	Height    int
	AutoPlace bool
	MinSize   geometry.Size
	MaxSize   geometry.Size
	NoResize  bool
	NoDrag    bool
	Content   string
}

// Defaults are the session-wide fallbacks applied to Create specs.
type Defaults struct {
	WindowSize geometry.Size
	MinSize    geometry.Size
	Cascade    geometry.Cascade
}

// Registry is the authoritative window collection for one desktop session.
// It is constructed per session and passed by reference, never a package
// singleton, so tests can run independent instances side by side.
type Registry struct {
	mu       sync.RWMutex
	viewport geometry.Viewport
	defaults Defaults

	windows map[string]*Window
	order   []string // creation order, for List
	nextID  int
	nextZ   int

	subs    map[int]func()
	nextSub int
}

// New creates an empty registry for the given viewport.
func New(viewport geometry.Viewport, defaults Defaults) *Registry {
	if defaults.WindowSize.Width <= 0 {
		defaults.WindowSize.Width = 600
	}
	if defaults.WindowSize.Height <= 0 {
		defaults.WindowSize.Height = 400
	}
	if defaults.MinSize.Width <= 0 {
		defaults.MinSize.Width = geometry.DefaultMinWidth
	}
	if defaults.MinSize.Height <= 0 {
		defaults.MinSize.Height = geometry.DefaultMinHeight
	}
	return &Registry{
		viewport: viewport,
		defaults: defaults,
		windows:  make(map[string]*Window),
		nextZ:    1,
		subs:     make(map[int]func()),
	}
}

// SetViewport updates the host-surface dimensions used for placement.
func (r *Registry) SetViewport(v geometry.Viewport) {
	r.mu.Lock()
	r.viewport = v
	r.mu.Unlock()
}

// Viewport returns the current host-surface dimensions.
func (r *Registry) Viewport() geometry.Viewport {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.viewport
}

// List returns copies of all live windows in creation order.
func (r *Registry) List() []Window {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Window, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.windows[id])
	}
	return out
}

// Get returns a copy of the window with the given id.
func (r *Registry) Get(id string) (Window, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.windows[id]
	if !ok {
		return Window{}, fmt.Errorf("%w: %s", ErrWindowNotFound, id)
	}
	return *w, nil
}

// Create adds a new window with a fresh id and the next z-order value. New
// windows are placed by cascade unless the spec pins a position, and become
// focused (they are on top by construction).
func (r *Registry) Create(spec Spec) (Window, error) {
	r.mu.Lock()

	size := geometry.Size{Width: spec.Width, Height: spec.Height}
	if size.Width <= 0 {
		size.Width = r.defaults.WindowSize.Width
	}
	if size.Height <= 0 {
		size.Height = r.defaults.WindowSize.Height
	}

	minSize := spec.MinSize
	if minSize.Width <= 0 {
		minSize.Width = r.defaults.MinSize.Width
	}
	if minSize.Height <= 0 {
		minSize.Height = r.defaults.MinSize.Height
	}

	var frame geometry.Rect
	if spec.AutoPlace {
		existing := make([]geometry.Rect, 0, len(r.order))
		for _, id := range r.order {
			existing = append(existing, r.windows[id].Frame)
		}
		frame = geometry.FindBestPositionCascade(size, existing, r.viewport, r.defaults.Cascade)
	} else {
		frame = geometry.Rect{X: spec.X, Y: spec.Y, Width: size.Width, Height: size.Height}
	}
	frame = clampSize(frame, minSize, spec.MaxSize, r.viewport)

	r.nextID++
	w := &Window{
		ID:        fmt.Sprintf("win-%d", r.nextID),
		Title:     spec.Title,
		Frame:     frame,
		Z:         r.takeZLocked(),
		Resizable: !spec.NoResize,
		Draggable: !spec.NoDrag,
		MinSize:   minSize,
		MaxSize:   spec.MaxSize,
		Content:   spec.Content,
	}
	r.windows[w.ID] = w
	r.order = append(r.order, w.ID)
	r.syncFocusLocked()

	out := *w
	r.mu.Unlock()
	r.notify()
	return out, nil
}

// Patch is a partial window mutation. Nil fields are left untouched; size
// fields are re-clamped against the window's constraints before commit.
type Patch struct {
	Title     *string
	X, Y      *int
	Width     *int
	Height    *int
	Minimized *bool
	Maximized *bool
	Content   *string

	// NormalFrame is recorded by the maximize toggle.
	NormalFrame *geometry.Rect
}

// Update merges a partial change into a window. Geometry that would violate
// the window's min/max constraints is clamped, never rejected.
func (r *Registry) Update(id string, p Patch) (Window, error) {
	r.mu.Lock()

	w, ok := r.windows[id]
	if !ok {
		r.mu.Unlock()
		return Window{}, fmt.Errorf("%w: %s", ErrWindowNotFound, id)
	}

	if p.Title != nil {
		w.Title = *p.Title
	}
	if p.X != nil {
		w.Frame.X = *p.X
	}
	if p.Y != nil {
		w.Frame.Y = *p.Y
	}
	if p.Width != nil {
		w.Frame.Width = *p.Width
	}
	if p.Height != nil {
		w.Frame.Height = *p.Height
	}
	if p.Minimized != nil {
		w.Minimized = *p.Minimized
	}
	if p.Maximized != nil {
		w.Maximized = *p.Maximized
	}
	if p.Content != nil {
		w.Content = *p.Content
	}
	if p.NormalFrame != nil {
		w.NormalFrame = *p.NormalFrame
	}

	w.Frame = clampSize(w.Frame, w.MinSize, w.MaxSize, r.viewport)
	r.syncFocusLocked()

	out := *w
	r.mu.Unlock()
	r.notify()
	return out, nil
}

// Remove deletes a window. If it was focused, focus transfers to the
// highest remaining non-minimized window, or to none.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()

	if _, ok := r.windows[id]; !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrWindowNotFound, id)
	}
	delete(r.windows, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.syncFocusLocked()

	r.mu.Unlock()
	r.notify()
	return nil
}

// ReplaceAll swaps the entire window set, used by layout restore. The
// focus flag is recomputed from the restored z-orders rather than trusted
// from the input.
func (r *Registry) ReplaceAll(windows []Window) {
	r.mu.Lock()

	r.windows = make(map[string]*Window, len(windows))
	r.order = r.order[:0]
	maxNumericID := 0
	for i := range windows {
		w := windows[i]
		if w.MinSize.Width <= 0 {
			w.MinSize.Width = r.defaults.MinSize.Width
		}
		if w.MinSize.Height <= 0 {
			w.MinSize.Height = r.defaults.MinSize.Height
		}
		// Snapshots are external input; re-validate like any other mutation.
		w.Frame = clampSize(w.Frame, w.MinSize, w.MaxSize, r.viewport)
		r.windows[w.ID] = &w
		r.order = append(r.order, w.ID)
		var n int
		if _, err := fmt.Sscanf(w.ID, "win-%d", &n); err == nil && n > maxNumericID {
			maxNumericID = n
		}
	}
	if maxNumericID > r.nextID {
		r.nextID = maxNumericID
	}
	r.syncFocusLocked()

	r.mu.Unlock()
	r.notify()
}

// Subscribe registers a change callback and returns its unsubscribe func.
// Callbacks fire after every committed mutation, outside the registry lock.
func (r *Registry) Subscribe(fn func()) func() {
	r.mu.Lock()
	r.nextSub++
	id := r.nextSub
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

func (r *Registry) notify() {
	r.mu.RLock()
	fns := make([]func(), 0, len(r.subs))
	for _, fn := range r.subs {
		fns = append(fns, fn)
	}
	r.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}

// clampSize enforces min/max size against the window constraints, falling
// back to the usable viewport as the max when unset.
func clampSize(frame geometry.Rect, min, max geometry.Size, v geometry.Viewport) geometry.Rect {
	u := v.Usable()

	maxW := max.Width
	if maxW <= 0 || maxW > u.Width {
		maxW = u.Width
	}
	maxH := max.Height
	if maxH <= 0 || maxH > u.Height {
		maxH = u.Height
	}

	if frame.Width > maxW {
		frame.Width = maxW
	}
	if frame.Width < min.Width {
		frame.Width = min.Width
	}
	if frame.Height > maxH {
		frame.Height = maxH
	}
	if frame.Height < min.Height {
		frame.Height = min.Height
	}
	return frame
}
