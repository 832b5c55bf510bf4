package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dsemenov/retrocade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestEveryActionHasAKey(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runeKey('w'), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runeKey('s'), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{runeKey('a'), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey('d'), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionPrimary},
		{runeKey('x'), core.ActionSecondary},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{runeKey('p'), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{runeKey('r'), core.ActionReset},
		{runeKey(']'), core.ActionNextSection},
		{runeKey('['), core.ActionPrevSection},
		{runeKey('+'), core.ActionIncreaseStep},
		{runeKey('='), core.ActionIncreaseStep},
		{runeKey('-'), core.ActionDecreaseStep},
		{runeKey('_'), core.ActionDecreaseStep},
		{runeKey('c'), core.ActionCopyToAll},
		{runeKey('z'), core.ActionZeroRamp},
		{runeKey('Z'), core.ActionZeroAllRamps},
		{runeKey('b'), core.ActionToggleBump},
	}

	for _, c := range cases {
		got, isQuit := km.MapKey(c.msg)
		if got != c.want {
			t.Errorf("MapKey(%q) = %v, want %v", c.msg.String(), got, c.want)
		}
		if isQuit {
			t.Errorf("MapKey(%q) should not be a quit request", c.msg.String())
		}
	}
}

func TestDigitKeys(t *testing.T) {
	km := NewKeyMapper()
	for d := 0; d <= 9; d++ {
		msg := runeKey(rune('0' + d))
		got, _ := km.MapKey(msg)
		if got != core.DigitAction(d) {
			t.Errorf("MapKey(%q) = %v, want digit %d", msg.String(), got, d)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	km := NewKeyMapper()
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		action, isQuit := km.MapKey(msg)
		if !isQuit || action != core.ActionQuit {
			t.Errorf("MapKey(%q) should be a quit request, got %v", msg.String(), action)
		}
	}
}

func TestUnknownKeyMapsToNone(t *testing.T) {
	km := NewKeyMapper()
	action, isQuit := km.MapKey(runeKey('~'))
	if action != core.ActionNone || isQuit {
		t.Errorf("Unbound key should map to ActionNone, got %v", action)
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('w'), &frame) {
		t.Error("Movement key should not be a quit request")
	}
	if !frame.Has(core.ActionUp) {
		t.Error("Mapped action should land in the frame")
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("Quit key should be reported")
	}
}

func TestMenuActions(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('~'), MenuActionNone},
	}

	for _, c := range cases {
		if got := km.MapKeyToMenuAction(c.msg); got != c.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", c.msg.String(), got, c.want)
		}
	}
}
