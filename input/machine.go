package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine is the input state machine
// Parses tcell.Event into semantic Intent
type Machine struct{}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{}
}

// Process parses a terminal event and returns an Intent
// Returns nil for events the entry pad ignores
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventInterrupt:
		return &Intent{Type: IntentQuit}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return &Intent{Type: IntentQuit}
	case tcell.KeyEnter:
		return &Intent{Type: IntentCommit}
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return &Intent{Type: IntentBackspace}
	case tcell.KeyRune:
		r := ev.Rune()
		if (r >= '0' && r <= '9') || r == '.' {
			return &Intent{Type: IntentDigit, Char: byte(r)}
		}
	}
	return nil
}
