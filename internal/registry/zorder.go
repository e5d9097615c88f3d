package registry

import (
	"fmt"
	"sort"
)

// takeZLocked consumes the next z-order counter value. The counter is
// monotonic for the session and never reused, even after windows close.
func (r *Registry) takeZLocked() int {
	z := r.nextZ
	r.nextZ++
	return z
}

// NextZ consumes and returns the next z-order value.
func (r *Registry) NextZ() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.takeZLocked()
}

// ZCounter returns the current counter value without consuming it, for
// layout snapshots.
func (r *Registry) ZCounter() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nextZ
}

// RestoreCounter raises the z counter to at least v, used by layout
// restore. The counter never moves backwards.
func (r *Registry) RestoreCounter(v int) {
	r.mu.Lock()
	if v > r.nextZ {
		r.nextZ = v
	}
	r.mu.Unlock()
}

// BringToFront raises a window above every other and focuses it. A
// minimized window is restored first; focus never lands on a window the
// user cannot see.
func (r *Registry) BringToFront(id string) error {
	r.mu.Lock()

	w, ok := r.windows[id]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrWindowNotFound, id)
	}
	w.Minimized = false
	w.Z = r.takeZLocked()
	r.syncFocusLocked()

	r.mu.Unlock()
	r.notify()
	return nil
}

// SendToBack drops a window below the rest of the stack without renumbering
// anyone else: one less than the current minimum among other live windows,
// floored at 1. Repeating this without an intervening raise can transiently
// duplicate a z value; ordering stays deterministic because ties break by
// window id.
func (r *Registry) SendToBack(id string) error {
	r.mu.Lock()

	w, ok := r.windows[id]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrWindowNotFound, id)
	}

	minZ := 0
	for oid, o := range r.windows {
		if oid == id {
			continue
		}
		if minZ == 0 || o.Z < minZ {
			minZ = o.Z
		}
	}
	if minZ > 0 {
		w.Z = minZ - 1
		if w.Z < 1 {
			w.Z = 1
		}
	}
	r.syncFocusLocked()

	r.mu.Unlock()
	r.notify()
	return nil
}

// Focused returns the live window with the highest z among non-minimized
// windows, or false when every window is minimized or none exist.
func (r *Registry) Focused() (Window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	top := r.topLocked()
	if top == nil {
		return Window{}, false
	}
	return *top, true
}

// Stacking returns copies of all non-minimized windows sorted bottom to
// top, the order a renderer paints them in.
func (r *Registry) Stacking() []Window {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Window, 0, len(r.windows))
	for _, id := range r.order {
		w := r.windows[id]
		if w.Minimized {
			continue
		}
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Z != out[j].Z {
			return out[i].Z < out[j].Z
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// CycleNext returns the id of the window after current in z order among
// non-minimized windows, wrapping around. Returns false when there is
// nothing to cycle to.
func (r *Registry) CycleNext(currentID string) (string, bool) {
	return r.cycle(currentID, 1)
}

// CyclePrevious is CycleNext walking the stack the other way.
func (r *Registry) CyclePrevious(currentID string) (string, bool) {
	return r.cycle(currentID, -1)
}

func (r *Registry) cycle(currentID string, step int) (string, bool) {
	stack := r.Stacking()
	if len(stack) == 0 {
		return "", false
	}
	if len(stack) == 1 {
		return stack[0].ID, stack[0].ID != currentID
	}

	idx := -1
	for i, w := range stack {
		if w.ID == currentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		// Current window vanished or is minimized; start from the top.
		return stack[len(stack)-1].ID, true
	}
	next := (idx + step + len(stack)) % len(stack)
	return stack[next].ID, true
}

// topLocked computes the focus target: highest z among non-minimized
// windows, ties broken by id so transient duplicates stay deterministic.
func (r *Registry) topLocked() *Window {
	var top *Window
	for _, id := range r.order {
		w := r.windows[id]
		if w.Minimized {
			continue
		}
		if top == nil || w.Z > top.Z || (w.Z == top.Z && w.ID > top.ID) {
			top = w
		}
	}
	return top
}

// syncFocusLocked derives the focused flag from the stacking order: the
// top non-minimized window is focused, everything else is not.
func (r *Registry) syncFocusLocked() {
	top := r.topLocked()
	for _, w := range r.windows {
		w.Focused = top != nil && w.ID == top.ID
	}
}
