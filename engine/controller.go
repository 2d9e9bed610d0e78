package engine

import (
	"errors"

	"github.com/lixenwraith/rpnpad/entry"
	"github.com/lixenwraith/rpnpad/input"
)

// Status strip notices for rejected input
const (
	noticeStackFull    = "stack full"
	noticeEntryTooLong = "entry too long"
)

// Apply runs one intent through the controller transition table,
// mutating the stack and issuing draw calls. Returns false when the
// pad should quit. Rejections are non-fatal: the notice goes to the
// status strip, an error tone plays, and input keeps flowing.
func (c *Context) Apply(in *input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return false

	case input.IntentResize:
		c.Screen.Sync()
		c.RedrawAll()

	case input.IntentDigit:
		c.applyDigit(in.Char)

	case input.IntentCommit:
		c.applyCommit()

	case input.IntentBackspace:
		c.applyBackspace()
	}
	return true
}

func (c *Context) applyDigit(ch byte) {
	buf, err := c.Stack.Current()
	if err != nil {
		// StateFull: no slot to type into
		c.reject(noticeStackFull)
		return
	}
	if err := buf.Append(ch); err != nil {
		if errors.Is(err, entry.ErrEntryTooLong) {
			c.reject(noticeEntryTooLong)
		}
		return
	}
	level := c.Stack.Depth()
	c.Renderer.DrawEntryChar(level, buf.Cursor()-1, ch)
	c.Renderer.ShowEntryCursor(level, buf.Cursor())
}

func (c *Context) applyCommit() {
	buf, err := c.Stack.Current()
	if err != nil {
		c.reject(noticeStackFull)
		return
	}
	text := buf.Text()
	if err := c.Stack.PushCommit(); err != nil {
		c.reject(noticeStackFull)
		return
	}
	c.StatusMessage = text
	c.Renderer.DrawStatus(text)
	if c.Audio != nil {
		c.Audio.CommitTone()
	}
	if c.Stack.Full() {
		c.State = StateFull
	}
	c.Renderer.ShowEntryCursor(c.Stack.Depth(), 0)
}

func (c *Context) applyBackspace() {
	buf, err := c.Stack.Current()
	if err != nil {
		// Editing below the full mark would reopen a committed slot;
		// backspace stops once the stack is full
		return
	}
	if !buf.Backspace() {
		return
	}
	level := c.Stack.Depth()
	c.Renderer.EraseEntryChar(level, buf.Cursor())
	c.Renderer.ShowEntryCursor(level, buf.Cursor())
}

// reject surfaces a non-fatal rejection on the status strip
func (c *Context) reject(notice string) {
	c.StatusMessage = notice
	c.Renderer.DrawStatus(notice)
	if c.Audio != nil {
		c.Audio.ErrorTone()
	}
}

// RedrawAll repaints the frame and every entered character from
// state, used at startup and after a resize
func (c *Context) RedrawAll() {
	c.Renderer.DrawFrame()
	c.Renderer.DrawStatus(c.StatusMessage)
	for level := 0; level <= c.Stack.Depth() && level < c.Stack.Capacity(); level++ {
		buf := c.Stack.Slot(level)
		text := buf.Text()
		for col := 0; col < len(text); col++ {
			c.Renderer.DrawEntryChar(level, col, text[col])
		}
	}
	active := c.Stack.Depth()
	col := 0
	if buf, err := c.Stack.Current(); err == nil {
		col = buf.Cursor()
	}
	c.Renderer.ShowEntryCursor(active, col)
}
