// Package gesture implements the two pointer-capture state machines of the
// desktop: dragging a window by its title bar and resizing it by an edge or
// corner handle. Each controller runs Idle → active → Idle per gesture; the
// transient gesture state lives only inside the controller and is destroyed
// on release, cancel, or interrupt.
package gesture

import (
	"errors"

	"deskwm/internal/geometry"
)

// ErrGestureActive is returned when a gesture begins while another is
// already running on the same controller.
var ErrGestureActive = errors.New("gesture already active")

// ErrNotAllowed is returned when the target window forbids the gesture
// (draggable/resizable flag cleared).
var ErrNotAllowed = errors.New("gesture not allowed on window")

// Phase is the state of a controller.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseResizing
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Point is a pointer position in host-surface pixels.
type Point struct {
	X int
	Y int
}

// Handle names the eight directional resize handles.
type Handle int

const (
	HandleNone Handle = iota
	HandleN
	HandleS
	HandleE
	HandleW
	HandleNE
	HandleNW
	HandleSE
	HandleSW
)

// String returns the compass name of the handle.
func (h Handle) String() string {
	switch h {
	case HandleN:
		return "n"
	case HandleS:
		return "s"
	case HandleE:
		return "e"
	case HandleW:
		return "w"
	case HandleNE:
		return "ne"
	case HandleNW:
		return "nw"
	case HandleSE:
		return "se"
	case HandleSW:
		return "sw"
	default:
		return "none"
	}
}

// expandsWest reports whether the handle moves the left (leading) edge.
func (h Handle) expandsWest() bool {
	return h == HandleW || h == HandleNW || h == HandleSW
}

// expandsEast reports whether the handle moves the right (trailing) edge.
func (h Handle) expandsEast() bool {
	return h == HandleE || h == HandleNE || h == HandleSE
}

// expandsNorth reports whether the handle moves the top (leading) edge.
func (h Handle) expandsNorth() bool {
	return h == HandleN || h == HandleNE || h == HandleNW
}

// expandsSouth reports whether the handle moves the bottom (trailing) edge.
func (h Handle) expandsSouth() bool {
	return h == HandleS || h == HandleSE || h == HandleSW
}

// Settings supplies the live host-surface parameters the controllers clamp
// and snap against. The coordinator implements it so config hot-reload
// reaches mid-session gestures.
type Settings interface {
	Viewport() geometry.Viewport
	SnapThreshold() int
}
