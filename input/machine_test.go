package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestProcessDigits(t *testing.T) {
	m := NewMachine()

	for _, r := range "0123456789." {
		in := m.Process(key(tcell.KeyRune, r))
		if in == nil {
			t.Fatalf("Expected intent for %q, got nil", r)
		}
		if in.Type != IntentDigit {
			t.Errorf("Expected IntentDigit for %q, got %v", r, in.Type)
		}
		if in.Char != byte(r) {
			t.Errorf("Expected char %q, got %q", byte(r), in.Char)
		}
	}
}

func TestProcessCommitAndBackspace(t *testing.T) {
	m := NewMachine()

	if in := m.Process(key(tcell.KeyEnter, 0)); in == nil || in.Type != IntentCommit {
		t.Errorf("Expected IntentCommit for Enter, got %v", in)
	}

	for _, k := range []tcell.Key{tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete} {
		if in := m.Process(key(k, 0)); in == nil || in.Type != IntentBackspace {
			t.Errorf("Expected IntentBackspace for key %v, got %v", k, in)
		}
	}
}

func TestProcessQuitKeys(t *testing.T) {
	m := NewMachine()

	for _, k := range []tcell.Key{tcell.KeyCtrlC, tcell.KeyEscape} {
		if in := m.Process(key(k, 0)); in == nil || in.Type != IntentQuit {
			t.Errorf("Expected IntentQuit for key %v, got %v", k, in)
		}
	}

	if in := m.Process(tcell.NewEventInterrupt(nil)); in == nil || in.Type != IntentQuit {
		t.Errorf("Expected IntentQuit for interrupt event, got %v", in)
	}
}

func TestProcessIgnoresOtherKeys(t *testing.T) {
	m := NewMachine()

	ignored := []*tcell.EventKey{
		key(tcell.KeyRune, 'a'),
		key(tcell.KeyRune, '+'),
		key(tcell.KeyRune, ' '),
		key(tcell.KeyUp, 0),
		key(tcell.KeyLeft, 0),
		key(tcell.KeyTab, 0),
	}
	for _, ev := range ignored {
		if in := m.Process(ev); in != nil {
			t.Errorf("Expected nil intent for key %v rune %q, got %v", ev.Key(), ev.Rune(), in.Type)
		}
	}
}

func TestProcessResize(t *testing.T) {
	m := NewMachine()

	ev := tcell.NewEventResize(80, 24)
	if in := m.Process(ev); in == nil || in.Type != IntentResize {
		t.Errorf("Expected IntentResize, got %v", in)
	}
}
