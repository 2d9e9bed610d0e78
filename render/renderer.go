package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rpnpad/constants"
)

// Box drawing characters for the stack panel border
var boxChars = [6]rune{'┌', '─', '┐', '│', '└', '┘'}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Renderer handles all terminal drawing for the entry pad.
// It translates stack and entry state into screen cells and holds no
// calculator logic; nothing else touches the screen.
type Renderer struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewRenderer creates a renderer for the given screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// DrawFrame draws the static chrome: the status strip with its entry
// indicator and the boxed stack panel. Called once at startup and
// again on resize.
func (r *Renderer) DrawFrame() {
	r.screen.Clear()
	r.DrawStatus("")
	r.drawPanelBorder()
}

// drawPanelBorder boxes the stack panel region
func (r *Renderer) drawPanelBorder() {
	x0 := constants.StackPanelX
	y0 := constants.StackPanelY
	w := constants.StackPanelWidth
	h := constants.StackPanelHeight

	// Corners
	r.screen.SetContent(x0, y0, boxChars[boxTL], nil, r.style)
	r.screen.SetContent(x0+w-1, y0, boxChars[boxTR], nil, r.style)
	r.screen.SetContent(x0, y0+h-1, boxChars[boxBL], nil, r.style)
	r.screen.SetContent(x0+w-1, y0+h-1, boxChars[boxBR], nil, r.style)

	// Horizontal edges
	for x := 1; x < w-1; x++ {
		r.screen.SetContent(x0+x, y0, boxChars[boxH], nil, r.style)
		r.screen.SetContent(x0+x, y0+h-1, boxChars[boxH], nil, r.style)
	}

	// Vertical edges
	for y := 1; y < h-1; y++ {
		r.screen.SetContent(x0, y0+y, boxChars[boxV], nil, r.style)
		r.screen.SetContent(x0+w-1, y0+y, boxChars[boxV], nil, r.style)
	}
}

// DrawStatus overwrites the status strip with text, keeping the entry
// indicator brackets on its left edge
func (r *Renderer) DrawStatus(text string) {
	for x := 0; x < constants.StatusWidth; x++ {
		r.screen.SetContent(x, constants.StatusRow, ' ', nil, r.style)
	}
	for i, ch := range "[ ]" {
		r.screen.SetContent(i, constants.StatusRow, ch, nil, r.style)
	}
	for i, ch := range text {
		x := constants.StatusTextCol + i
		if x >= constants.StatusWidth {
			break
		}
		r.screen.SetContent(x, constants.StatusRow, ch, nil, r.style)
	}
}

// entryCell maps a stack level and entry offset to screen coordinates.
// Level 0 sits on the lowest interior row and the stack grows upward,
// like the display of a desk RPN calculator. Returns ok=false for
// positions outside the panel interior so the border is never drawn
// over.
func entryCell(level, col int) (x, y int, ok bool) {
	if level < 0 || level >= constants.StackCapacity {
		return 0, 0, false
	}
	if col < 0 || col >= constants.MaxEntryLength {
		return 0, 0, false
	}
	x = constants.StackPanelX + 1 + col
	y = constants.StackPanelY + (constants.StackPanelHeight - 2) - level
	return x, y, true
}

// DrawEntryChar draws one entered character into the stack panel
func (r *Renderer) DrawEntryChar(level, col int, ch byte) {
	if x, y, ok := entryCell(level, col); ok {
		r.screen.SetContent(x, y, rune(ch), nil, r.style)
	}
}

// EraseEntryChar blanks one cell of the stack panel
func (r *Renderer) EraseEntryChar(level, col int) {
	if x, y, ok := entryCell(level, col); ok {
		r.screen.SetContent(x, y, ' ', nil, r.style)
	}
}

// ShowEntryCursor parks the hardware cursor where the next character
// of the active entry will land
func (r *Renderer) ShowEntryCursor(level, col int) {
	if col >= constants.MaxEntryLength {
		// Entry at capacity: cursor rests on the last text cell
		col = constants.MaxEntryLength - 1
	}
	if x, y, ok := entryCell(level, col); ok {
		r.screen.ShowCursor(x, y)
		return
	}
	// Stack full: no active entry cell, rest on the status strip
	r.screen.ShowCursor(1, constants.StatusRow)
}

// Show flushes pending drawing to the terminal
func (r *Renderer) Show() {
	r.screen.Show()
}
