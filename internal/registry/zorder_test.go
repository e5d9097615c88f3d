package registry

import "testing"

func TestBringToFrontRaisesAndRestores(t *testing.T) {
	r := testRegistry()

	a, _ := r.Create(Spec{Title: "a", AutoPlace: true})
	b, _ := r.Create(Spec{Title: "b", AutoPlace: true})

	if err := r.BringToFront(a.ID); err != nil {
		t.Fatalf("BringToFront: %v", err)
	}

	gotA, _ := r.Get(a.ID)
	gotB, _ := r.Get(b.ID)
	if gotA.Z <= gotB.Z {
		t.Errorf("raised window z=%d not above %d", gotA.Z, gotB.Z)
	}
	if !gotA.Focused || gotB.Focused {
		t.Error("raised window should hold focus")
	}

	// Raising a minimized window restores it.
	minimized := true
	r.Update(a.ID, Patch{Minimized: &minimized})
	if err := r.BringToFront(a.ID); err != nil {
		t.Fatalf("BringToFront: %v", err)
	}
	gotA, _ = r.Get(a.ID)
	if gotA.Minimized {
		t.Error("BringToFront should unminimize")
	}
}

func TestZNeverReused(t *testing.T) {
	r := testRegistry()

	a, _ := r.Create(Spec{Title: "a", AutoPlace: true})
	b, _ := r.Create(Spec{Title: "b", AutoPlace: true})
	maxZ := b.Z

	r.Remove(b.ID)
	r.BringToFront(a.ID)

	gotA, _ := r.Get(a.ID)
	if gotA.Z <= maxZ {
		t.Errorf("z=%d reused a retired value (max was %d)", gotA.Z, maxZ)
	}
}

func TestSendToBack(t *testing.T) {
	r := testRegistry()

	a, _ := r.Create(Spec{Title: "a", AutoPlace: true}) // z=1
	b, _ := r.Create(Spec{Title: "b", AutoPlace: true}) // z=2
	c, _ := r.Create(Spec{Title: "c", AutoPlace: true}) // z=3
	r.BringToFront(a.ID)                                // z=4

	if err := r.SendToBack(a.ID); err != nil {
		t.Fatalf("SendToBack: %v", err)
	}

	stack := r.Stacking()
	if stack[0].ID != a.ID {
		t.Errorf("bottom of stack = %s, want %s", stack[0].ID, a.ID)
	}
	gotA, _ := r.Get(a.ID)
	if gotA.Z != 1 {
		t.Errorf("z = %d, want 1 (one below previous minimum)", gotA.Z)
	}

	// Others keep their z values.
	gotB, _ := r.Get(b.ID)
	gotC, _ := r.Get(c.ID)
	if gotB.Z != b.Z || gotC.Z != c.Z {
		t.Error("SendToBack renumbered other windows")
	}

	// Focus moves to the new top.
	focused, _ := r.Focused()
	if focused.ID != c.ID {
		t.Errorf("focused = %s, want %s", focused.ID, c.ID)
	}
}

func TestSendToBackFloorsAtOne(t *testing.T) {
	r := testRegistry()

	a, _ := r.Create(Spec{Title: "a", AutoPlace: true}) // z=1
	b, _ := r.Create(Spec{Title: "b", AutoPlace: true}) // z=2

	r.SendToBack(b.ID)
	gotB, _ := r.Get(b.ID)
	if gotB.Z < 1 {
		t.Errorf("z=%d fell below floor", gotB.Z)
	}

	// Repeated sends stay deterministic: ties break by id.
	r.SendToBack(a.ID)
	stack := r.Stacking()
	if len(stack) != 2 {
		t.Fatalf("stack size = %d", len(stack))
	}
	if stack[0].ID >= stack[1].ID && stack[0].Z == stack[1].Z {
		t.Error("tied z should order by id")
	}
}

func TestStackingOrder(t *testing.T) {
	r := testRegistry()

	a, _ := r.Create(Spec{Title: "a", AutoPlace: true})
	b, _ := r.Create(Spec{Title: "b", AutoPlace: true})
	c, _ := r.Create(Spec{Title: "c", AutoPlace: true})

	r.BringToFront(a.ID)
	minimized := true
	r.Update(b.ID, Patch{Minimized: &minimized})

	stack := r.Stacking()
	if len(stack) != 2 {
		t.Fatalf("stack = %d windows, want 2 (minimized excluded)", len(stack))
	}
	if stack[0].ID != c.ID || stack[1].ID != a.ID {
		t.Errorf("stack order = %s,%s, want %s,%s", stack[0].ID, stack[1].ID, c.ID, a.ID)
	}
}

func TestCycleWrapsAround(t *testing.T) {
	r := testRegistry()

	a, _ := r.Create(Spec{Title: "a", AutoPlace: true})
	b, _ := r.Create(Spec{Title: "b", AutoPlace: true})
	c, _ := r.Create(Spec{Title: "c", AutoPlace: true})

	// Stack bottom to top: a, b, c.
	next, ok := r.CycleNext(c.ID)
	if !ok || next != a.ID {
		t.Errorf("CycleNext from top = %s, want wrap to %s", next, a.ID)
	}

	prev, ok := r.CyclePrevious(a.ID)
	if !ok || prev != c.ID {
		t.Errorf("CyclePrevious from bottom = %s, want wrap to %s", prev, c.ID)
	}

	next, ok = r.CycleNext(b.ID)
	if !ok || next != c.ID {
		t.Errorf("CycleNext(%s) = %s, want %s", b.ID, next, c.ID)
	}
}

func TestCycleEdgeCases(t *testing.T) {
	r := testRegistry()

	if _, ok := r.CycleNext(""); ok {
		t.Error("empty registry should not cycle")
	}

	a, _ := r.Create(Spec{Title: "a", AutoPlace: true})
	if next, ok := r.CycleNext(a.ID); ok {
		t.Errorf("single window cycled to %s", next)
	}

	b, _ := r.Create(Spec{Title: "b", AutoPlace: true})
	// Vanished current window starts from the top.
	next, ok := r.CycleNext("win-99")
	if !ok || next != b.ID {
		t.Errorf("cycle with vanished current = %s, want top %s", next, b.ID)
	}
}
