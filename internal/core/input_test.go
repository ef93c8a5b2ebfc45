package core

import "testing"

func TestInputFrameKeepsMoveOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionPause)
	f.Set(ActionLeft)

	if len(f.Moves) != 2 || f.Moves[0] != ActionUp || f.Moves[1] != ActionLeft {
		t.Errorf("Moves = %v, expected [Up Left]", f.Moves)
	}
	if !f.Has(ActionPause) || !f.Has(ActionLeft) {
		t.Error("pause and left should be recorded")
	}
	if f.Has(ActionRestart) || f.Has(ActionDown) {
		t.Error("unset actions should not be reported")
	}

	f.Clear()
	if len(f.Moves) != 0 || f.Has(ActionPause) {
		t.Error("Clear should drop every action")
	}
}
