package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Ctrl+C, ESC, terminal interrupt
	IntentResize // Terminal resize event

	// Entry intents
	IntentDigit     // 0-9 or '.' appended to the active entry
	IntentCommit    // Enter - push the active entry onto the stack
	IntentBackspace // Backspace/Delete - retract one character
)

// Intent is a parsed input action
type Intent struct {
	Type IntentType
	Char byte // entry character for IntentDigit
}
