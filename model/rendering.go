package model

import "github.com/gdamore/tcell/v2"

const (
	gridPosBlock = '█'
	gridPosEmpty = ' '

	// cellColumns is the number of terminal columns used per cell so cells look square
	cellColumns = 2
)

// TerminalRenderer draws a universe onto a tcell screen below a status header
type TerminalRenderer struct {
	screen tcell.Screen
	top    int
	alive  tcell.Style
	dead   tcell.Style
	text   tcell.Style
}

// NewTerminalRenderer draws cells starting at screen row top; rows above it hold status text
func NewTerminalRenderer(screen tcell.Screen, top int) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		top:    top,
		alive:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
		dead:   tcell.StyleDefault,
		text:   tcell.StyleDefault.Bold(true),
	}
}

// Display renders the universe's current generation
func (r *TerminalRenderer) Display(u *Universe) {
	cells := u.Cells()
	w := u.Width()
	for i, c := range cells {
		row, col := i/w, i%w
		glyph, style := gridPosEmpty, r.dead
		if c.IsAlive() {
			glyph, style = gridPosBlock, r.alive
		}
		x, y := col*cellColumns, r.top+row
		for dx := 0; dx < cellColumns; dx++ {
			r.screen.SetContent(x+dx, y, glyph, nil, style)
		}
	}
}

// Status writes the header lines above the grid, truncating to the header height
func (r *TerminalRenderer) Status(lines ...string) {
	for y := 0; y < r.top && y < len(lines); y++ {
		x := 0
		for _, ch := range lines[y] {
			r.screen.SetContent(x, y, ch, nil, r.text)
			x++
		}
	}
}

// CellAt translates a screen position into a cell coordinate, clamping to the
// last row and column. ok is false when the position is above or left of the grid.
func (r *TerminalRenderer) CellAt(u *Universe, x, y int) (row, col int, ok bool) {
	if x < 0 || y < r.top {
		return 0, 0, false
	}
	row = min(y-r.top, u.Height()-1)
	col = min(x/cellColumns, u.Width()-1)
	return row, col, true
}

// Clear blanks the screen
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
}

// Show flushes pending drawing to the terminal
func (r *TerminalRenderer) Show() {
	r.screen.Show()
}

// Sync redraws the whole terminal, used after a resize
func (r *TerminalRenderer) Sync() {
	r.screen.Sync()
}
