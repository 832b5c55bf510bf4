package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionPrimary) {
		t.Error("New frame should be empty")
	}

	f.Set(ActionPrimary)
	f.Set(ActionLeft)
	if !f.Has(ActionPrimary) || !f.Has(ActionLeft) {
		t.Error("Set actions should be present")
	}
	if f.Has(ActionRight) {
		t.Error("Unset actions should be absent")
	}

	f.Clear()
	if f.Has(ActionPrimary) || f.Has(ActionLeft) {
		t.Error("Clear should empty the frame")
	}
}

func TestInputFrameZeroValueSafe(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("Zero-value frame should report nothing")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on a zero-value frame should work")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)

	c := f.Clone()
	f.Clear()
	if !c.Has(ActionPause) {
		t.Error("Clone should be independent of the original")
	}
}

func TestDigitActions(t *testing.T) {
	for d := 0; d <= 9; d++ {
		a := DigitAction(d)
		if a.Digit() != d {
			t.Errorf("Digit round trip failed for %d: %v -> %d", d, a, a.Digit())
		}
	}
	if DigitAction(-1) != ActionNone || DigitAction(10) != ActionNone {
		t.Error("Out-of-range digits should map to ActionNone")
	}
	if ActionPrimary.Digit() != -1 {
		t.Error("Non-digit actions should report -1")
	}
}

func TestFirstDigit(t *testing.T) {
	f := NewInputFrame()
	if f.FirstDigit() != -1 {
		t.Error("Empty frame should have no digit")
	}
	f.Set(ActionDigit7)
	f.Set(ActionDigit3)
	if f.FirstDigit() != 3 {
		t.Errorf("FirstDigit should return the lowest digit, got %d", f.FirstDigit())
	}
}

func TestActionStringsUnique(t *testing.T) {
	all := []Action{
		ActionNone, ActionUp, ActionDown, ActionLeft, ActionRight,
		ActionPrimary, ActionSecondary, ActionPause, ActionReset, ActionQuit,
		ActionConfirm, ActionNextSection, ActionPrevSection,
		ActionIncreaseStep, ActionDecreaseStep, ActionCopyToAll,
		ActionZeroRamp, ActionZeroAllRamps, ActionToggleBump,
		ActionDigit0, ActionDigit5, ActionDigit9,
	}
	seen := make(map[string]Action)
	for _, a := range all {
		s := a.String()
		if s == "Unknown" {
			t.Errorf("Action %d should have a name", a)
		}
		if prev, dup := seen[s]; dup {
			t.Errorf("Actions %d and %d share the name %q", prev, a, s)
		}
		seen[s] = a
	}
}
