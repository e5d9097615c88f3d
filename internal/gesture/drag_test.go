package gesture

import (
	"errors"
	"testing"

	"deskwm/internal/geometry"
	"deskwm/internal/registry"
)

type testSettings struct {
	viewport  geometry.Viewport
	threshold int
}

func (s testSettings) Viewport() geometry.Viewport { return s.viewport }
func (s testSettings) SnapThreshold() int          { return s.threshold }

func dragFixture(t *testing.T) (*registry.Registry, *DragController, registry.Window) {
	t.Helper()

	reg := registry.New(
		geometry.Viewport{Width: 1920, Height: 1080, ChromeHeight: 80},
		registry.Defaults{
			WindowSize: geometry.Size{Width: 600, Height: 400},
			MinSize:    geometry.Size{Width: 300, Height: 200},
		},
	)
	w, err := reg.Create(registry.Spec{
		Title: "subject",
		X:     200, Y: 200, Width: 400, Height: 300,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	settings := testSettings{viewport: reg.Viewport(), threshold: 20}
	return reg, NewDrag(reg, settings), w
}

func TestDragMovesWindow(t *testing.T) {
	reg, drag, w := dragFixture(t)

	if err := drag.Begin(w.ID, 250, 210); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	drag.Move(350, 310)

	got, _ := reg.Get(w.ID)
	if got.Frame.X != 300 || got.Frame.Y != 300 {
		t.Errorf("frame at (%d,%d), want (300,300)", got.Frame.X, got.Frame.Y)
	}
	if got.Frame.Width != 400 || got.Frame.Height != 300 {
		t.Error("drag must not change size")
	}
}

func TestDragBeginRaisesWindow(t *testing.T) {
	reg, drag, w := dragFixture(t)
	other, _ := reg.Create(registry.Spec{Title: "other", AutoPlace: true})

	if err := drag.Begin(w.ID, 250, 210); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	got, _ := reg.Get(w.ID)
	gotOther, _ := reg.Get(other.ID)
	if got.Z <= gotOther.Z {
		t.Error("drag target should be raised above other windows")
	}
	if !got.Focused {
		t.Error("drag target should be focused")
	}
}

func TestDragSecondGestureRejected(t *testing.T) {
	reg, drag, w := dragFixture(t)
	other, _ := reg.Create(registry.Spec{Title: "other", AutoPlace: true})

	if err := drag.Begin(w.ID, 250, 210); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := drag.Begin(other.ID, 30, 30); !errors.Is(err, ErrGestureActive) {
		t.Errorf("second Begin err = %v, want ErrGestureActive", err)
	}
}

func TestDragNotAllowedOnPinnedWindow(t *testing.T) {
	reg, drag, _ := dragFixture(t)
	pinned, _ := reg.Create(registry.Spec{Title: "pinned", AutoPlace: true, NoDrag: true})

	if err := drag.Begin(pinned.ID, 30, 30); !errors.Is(err, ErrNotAllowed) {
		t.Errorf("Begin on pinned window err = %v, want ErrNotAllowed", err)
	}
}

func TestDragCancelRestoresOrigin(t *testing.T) {
	reg, drag, w := dragFixture(t)

	drag.Begin(w.ID, 250, 210)
	drag.Move(800, 600)
	drag.Cancel()

	got, _ := reg.Get(w.ID)
	if got.Frame.X != 200 || got.Frame.Y != 200 {
		t.Errorf("after cancel frame at (%d,%d), want original (200,200)",
			got.Frame.X, got.Frame.Y)
	}
	if drag.Active() {
		t.Error("controller should be idle after cancel")
	}

	// Cancel with nothing active is a no-op.
	drag.Cancel()
	got, _ = reg.Get(w.ID)
	if got.Frame.X != 200 || got.Frame.Y != 200 {
		t.Error("idle cancel must not touch the window")
	}
}

func TestDragEndCommitsSnapZone(t *testing.T) {
	reg, drag, w := dragFixture(t)

	drag.Begin(w.ID, 250, 210)
	// Push the right window edge onto the right viewport edge.
	drag.End(250+1330, 210)

	got, _ := reg.Get(w.ID)
	want := geometry.Rect{X: 960, Y: 0, Width: 960, Height: 1000}
	if got.Frame != want {
		t.Errorf("after snap release frame = %v, want right half %v", got.Frame, want)
	}
	if drag.Active() {
		t.Error("controller should be idle after end")
	}
}

func TestDragEndWithoutZoneKeepsPosition(t *testing.T) {
	reg, drag, w := dragFixture(t)

	drag.Begin(w.ID, 250, 210)
	drag.End(350, 310)

	got, _ := reg.Get(w.ID)
	if got.Frame.X != 300 || got.Frame.Y != 300 {
		t.Errorf("frame = (%d,%d), want released position (300,300)",
			got.Frame.X, got.Frame.Y)
	}
	if got.Frame.Width != 400 || got.Frame.Height != 300 {
		t.Error("release outside any zone must not resize")
	}
}

func TestDragInterruptNeverSnaps(t *testing.T) {
	reg, drag, w := dragFixture(t)

	drag.Begin(w.ID, 250, 210)
	// Park the window deep in snap territory, then lose the pointer.
	drag.Move(250 + 1330, 210)
	drag.Interrupt()

	got, _ := reg.Get(w.ID)
	if got.Frame.Width != 400 || got.Frame.Height != 300 {
		t.Errorf("interrupt resized window to %v", got.Frame)
	}
	if got.Frame.X != 1520 {
		t.Errorf("interrupt moved window to x=%d, want last position 1520", got.Frame.X)
	}
	if drag.Active() {
		t.Error("controller should be idle after interrupt")
	}
}

func TestDragPreviewZone(t *testing.T) {
	_, drag, w := dragFixture(t)

	if zone := drag.PreviewZone(); zone != geometry.ZoneNone {
		t.Errorf("idle preview = %v, want ZoneNone", zone)
	}

	drag.Begin(w.ID, 250, 210)
	drag.Move(250, 210)
	if zone := drag.PreviewZone(); zone != geometry.ZoneNone {
		t.Errorf("center preview = %v, want ZoneNone", zone)
	}

	drag.Move(60, 210) // window x becomes 10, inside left threshold
	if zone := drag.PreviewZone(); zone != geometry.ZoneLeft {
		t.Errorf("preview = %v, want ZoneLeft", zone)
	}
}

func TestDragOvershootClamping(t *testing.T) {
	reg, drag, w := dragFixture(t)

	drag.Begin(w.ID, 250, 210)
	drag.Move(-2000, -2000)
	drag.Interrupt()

	got, _ := reg.Get(w.ID)
	if got.Frame.X != -50 {
		t.Errorf("x = %d, want left overshoot floor -50", got.Frame.X)
	}
	if got.Frame.Y != 0 {
		t.Errorf("y = %d, want top floor 0", got.Frame.Y)
	}
}

func TestDragVanishedWindowEndsGesture(t *testing.T) {
	reg, drag, w := dragFixture(t)

	drag.Begin(w.ID, 250, 210)
	reg.Remove(w.ID)
	drag.Move(300, 300)

	if drag.Active() {
		t.Error("drag should end when the window vanishes")
	}
}

func TestDragUnmaximizesWindow(t *testing.T) {
	reg, drag, w := dragFixture(t)

	maximized := true
	reg.Update(w.ID, registry.Patch{Maximized: &maximized})

	if err := drag.Begin(w.ID, 250, 210); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	got, _ := reg.Get(w.ID)
	if got.Maximized {
		t.Error("dragging should clear the maximized flag")
	}
}

func TestDragCancelRestoresMaximizedFlag(t *testing.T) {
	reg, drag, w := dragFixture(t)

	maximized := true
	reg.Update(w.ID, registry.Patch{Maximized: &maximized})

	drag.Begin(w.ID, 250, 210)
	drag.Move(500, 400)
	drag.Cancel()

	got, _ := reg.Get(w.ID)
	if !got.Maximized {
		t.Error("cancel should restore the maximized flag Begin cleared")
	}
	if got.Frame.X != 200 || got.Frame.Y != 200 {
		t.Errorf("frame at (%d,%d), want restored (200,200)", got.Frame.X, got.Frame.Y)
	}

	// An unmaximized window round-trips the flag unchanged.
	drag.Begin(w.ID, 250, 210)
	got, _ = reg.Get(w.ID)
	if got.Maximized {
		t.Fatal("drag start should clear the flag again")
	}
	drag.Cancel()
	got, _ = reg.Get(w.ID)
	if !got.Maximized {
		t.Error("second cancel should restore the flag too")
	}
}
