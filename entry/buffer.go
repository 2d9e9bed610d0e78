package entry

import (
	"errors"
	"strconv"

	"github.com/lixenwraith/rpnpad/constants"
)

// ErrEntryTooLong is returned when a character is appended to a buffer
// whose cursor already sits at capacity
var ErrEntryTooLong = errors.New("entry too long")

// Buffer holds the in-progress text for one stack slot.
// Cells past the cursor are garbage and are never rendered or parsed.
type Buffer struct {
	text      [constants.MaxEntryLength]byte
	cursor    int
	committed bool
	value     float64
}

// Append writes ch at the cursor and advances it.
// Returns ErrEntryTooLong without touching the buffer when the cursor
// is already at capacity.
func (b *Buffer) Append(ch byte) error {
	if b.cursor >= len(b.text) {
		return ErrEntryTooLong
	}
	b.text[b.cursor] = ch
	b.cursor++
	return nil
}

// Backspace retracts the cursor by one and clears the vacated cell.
// Returns false (no-op) when the cursor is at zero.
func (b *Buffer) Backspace() bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor--
	b.text[b.cursor] = 0
	return true
}

// Commit finalizes the entry: marks the buffer committed and parses
// the entered text into its numeric value. Malformed or empty text
// parses to the 0.0 sentinel rather than failing; entry always
// proceeds.
func (b *Buffer) Commit() {
	b.committed = true
	v, err := strconv.ParseFloat(b.Text(), 64)
	if err != nil {
		v = 0.0
	}
	b.value = v
}

// Reset returns the buffer to its initial empty state
func (b *Buffer) Reset() {
	*b = Buffer{}
}

// Text returns the entered characters, cursor-bounded
func (b *Buffer) Text() string {
	return string(b.text[:b.cursor])
}

// Cursor returns the number of characters entered so far
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Committed reports whether the entry has been finalized
func (b *Buffer) Committed() bool {
	return b.committed
}

// Value returns the parsed numeric value; valid only after Commit
func (b *Buffer) Value() float64 {
	return b.value
}
