package constants

// Entry and stack limits
const (
	// MaxEntryLength is the character budget for one in-progress entry
	MaxEntryLength = 20

	// StackCapacity is the number of stack slots the panel can show
	StackCapacity = 10
)

// Panel Layout Constants
//
// The layout mirrors a desk calculator: a one-line status strip on
// top, a boxed stack panel below it. The panel interior is one column
// of border, MaxEntryLength text cells, one column of border; one
// interior row per stack slot plus the border rows.
const (
	// StatusWidth is the width of the status strip on row 0
	StatusWidth = 50

	// StatusRow is the screen row of the status strip
	StatusRow = 0

	// StackPanelX, StackPanelY are the screen origin of the boxed panel
	StackPanelX = 0
	StackPanelY = 1

	// StackPanelWidth and StackPanelHeight are the outer panel size,
	// borders included
	StackPanelWidth  = MaxEntryLength + 2
	StackPanelHeight = StackCapacity + 2

	// StatusTextCol is where status messages start, past the entry
	// indicator brackets
	StatusTextCol = 4
)
