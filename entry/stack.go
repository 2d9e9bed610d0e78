package entry

import (
	"errors"

	"github.com/lixenwraith/rpnpad/constants"
)

// ErrOutOfCapacity is returned when the stack has no free slot left
var ErrOutOfCapacity = errors.New("stack out of capacity")

// Stack is a fixed arena of entry buffers, one per display slot.
// Slots below active are committed, the slot at active is the one
// being typed into, slots above it are untouched zero values.
//
// Backspace never removes a committed slot; editing is confined to
// the active entry. Dropping committed values is a known limitation
// carried over from the original program, not an oversight.
type Stack struct {
	slots  [constants.StackCapacity]Buffer
	active int
}

// NewStack creates an empty stack with slot 0 active
func NewStack() *Stack {
	return &Stack{}
}

// Current returns the buffer receiving keystrokes.
// Returns ErrOutOfCapacity when every slot has been committed.
func (s *Stack) Current() (*Buffer, error) {
	if s.active >= len(s.slots) {
		return nil, ErrOutOfCapacity
	}
	return &s.slots[s.active], nil
}

// PushCommit commits the active entry and advances to the next slot.
// When the stack is already full it returns ErrOutOfCapacity and
// mutates nothing; the last permissible commit is the one that fills
// the final slot.
func (s *Stack) PushCommit() error {
	if s.active >= len(s.slots) {
		return ErrOutOfCapacity
	}
	s.slots[s.active].Commit()
	s.active++
	return nil
}

// Depth returns the index of the active slot, which equals the number
// of committed entries
func (s *Stack) Depth() int {
	return s.active
}

// Full reports whether every slot has been committed
func (s *Stack) Full() bool {
	return s.active >= len(s.slots)
}

// Capacity returns the number of slots
func (s *Stack) Capacity() int {
	return len(s.slots)
}

// Slot returns the buffer at index i for inspection.
// Returns nil when i is out of range.
func (s *Stack) Slot(i int) *Buffer {
	if i < 0 || i >= len(s.slots) {
		return nil
	}
	return &s.slots[i]
}
