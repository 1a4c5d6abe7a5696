package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionAdvance) {
		t.Error("new frame should have no actions")
	}
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionAdvance)
	if !f.Has(ActionAdvance) {
		t.Error("Has(ActionAdvance) should be true after Set")
	}
	if f.Has(ActionPause) {
		t.Error("Has(ActionPause) should be false")
	}

	f.Clear()
	if f.Has(ActionAdvance) || !f.Empty() {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate the map")
	}
}

func TestInputFramePointer(t *testing.T) {
	f := NewInputFrame()
	f.AddPointer(PointerPress, 10, 20)
	f.AddPointer(PointerMove, 12, 22)
	f.AddPointer(PointerRelease, 5, 30)

	if len(f.Pointer) != 3 {
		t.Fatalf("expected 3 pointer events, got %d", len(f.Pointer))
	}
	if f.Pointer[0].Kind != PointerPress || f.Pointer[2].Kind != PointerRelease {
		t.Error("pointer events should keep arrival order")
	}
	if f.Pointer[2].X != 5 || f.Pointer[2].Y != 30 {
		t.Errorf("release position = (%v, %v), expected (5, 30)", f.Pointer[2].X, f.Pointer[2].Y)
	}
	if f.Empty() {
		t.Error("frame with pointer events should not be empty")
	}

	f.Clear()
	if len(f.Pointer) != 0 {
		t.Errorf("Clear should drop pointer events, got %d", len(f.Pointer))
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionAdvance, "Advance"},
		{ActionPause, "Pause"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}

	if PointerRelease.String() != "release" {
		t.Errorf("PointerRelease.String() = %q, expected \"release\"", PointerRelease.String())
	}
}
