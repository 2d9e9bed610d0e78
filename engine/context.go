package engine

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rpnpad/audio"
	"github.com/lixenwraith/rpnpad/entry"
	"github.com/lixenwraith/rpnpad/input"
	"github.com/lixenwraith/rpnpad/render"
)

// PadState is the controller state
type PadState uint8

const (
	// StateEditing is the sole operating state: keystrokes edit the
	// active entry
	StateEditing PadState = iota

	// StateFull is reached when every stack slot has been committed;
	// digit and enter input is rejected from then on
	StateFull
)

// Context owns all entry pad state: the screen, the stack arena, and
// the drawing and audio surfaces. There is exactly one, owned by the
// main loop; no package-level mutable state exists.
type Context struct {
	Screen   tcell.Screen
	Stack    *entry.Stack
	Renderer *render.Renderer
	Audio    *audio.Player

	State         PadState
	StatusMessage string

	machine      *input.Machine
	shutdownOnce sync.Once
}

// NewContext creates the pad context around an initialized screen
func NewContext(screen tcell.Screen, player *audio.Player) *Context {
	return &Context{
		Screen:   screen,
		Stack:    entry.NewStack(),
		Renderer: render.NewRenderer(screen),
		Audio:    player,
		State:    StateEditing,
		machine:  input.NewMachine(),
	}
}

// Shutdown releases the terminal and audio resources. Idempotent: it
// is reached both from the normal quit path and from the interrupt
// signal handler, and must restore the terminal exactly once.
func (c *Context) Shutdown() {
	c.shutdownOnce.Do(func() {
		if c.Audio != nil {
			c.Audio.Close()
		}
		c.Screen.Fini()
	})
}
