// Package viewport keeps the scroll offset and cursor of a listing shown in a
// window of fixed height.
//
// The cursor is screen-relative: Row counts from the top of the window, so the
// listing index under the cursor is Offset()+Cursor().Row. A second, stored
// position remembers the column the user last chose horizontally. Vertical
// moves clamp the cursor to narrower rows and restore the stored column when
// a wide enough row comes back.
package viewport

// Lines is the part of a listing the viewport needs
type Lines interface {
	Len() int
	Width(i int) int
}

// Position is a screen-relative cell
type Position struct {
	Col int
	Row int
}

type Viewport struct {
	lines  Lines
	height int
	offset int
	cursor Position
	stored Position
}

// New places the cursor on index start of lines inside a window of height rows
func New(lines Lines, height, start int) *Viewport {
	v := &Viewport{height: max(height, 1)}
	v.Reset(lines, start)
	return v
}

// Reset swaps in a new listing and puts the cursor at column 0 of index start
func (v *Viewport) Reset(lines Lines, start int) {
	v.lines = lines
	v.offset = 0
	v.cursor = Position{}
	v.stored = Position{}

	start = min(max(start, 0), lines.Len()-1)
	if start >= v.height {
		v.offset = start - v.height + 1
	}
	v.setRow(start - v.offset)
}

func (v *Viewport) Offset() int      { return v.offset }
func (v *Viewport) Cursor() Position { return v.cursor }
func (v *Viewport) Stored() Position { return v.stored }
func (v *Viewport) Height() int      { return v.height }

// Index is the listing index under the cursor
func (v *Viewport) Index() int {
	return v.offset + v.cursor.Row
}

func (v *Viewport) maxCol(i int) int {
	return max(v.lines.Width(i)-1, 0)
}

func (v *Viewport) setRow(row int) {
	v.cursor.Row = row
	v.stored.Row = row
	v.reconcileCol()
}

// reconcileCol fits the cursor column to the row under it, restoring the
// stored column when the row is wide enough.
func (v *Viewport) reconcileCol() {
	maxCol := v.maxCol(v.Index())
	if v.cursor.Col > maxCol {
		v.cursor.Col = maxCol
	} else if want := min(v.stored.Col, maxCol); v.cursor.Col < want {
		v.cursor.Col = want
	}
}

func (v *Viewport) MoveLeft() {
	if v.cursor.Col <= 0 {
		return
	}
	v.cursor.Col--
	v.stored.Col = v.cursor.Col
}

func (v *Viewport) MoveRight() {
	if v.cursor.Col+1 >= v.lines.Width(v.Index()) {
		return
	}
	v.cursor.Col++
	v.stored.Col = v.cursor.Col
}

// MoveDown steps one row down, scrolling when the cursor sits on the last visible row
func (v *Viewport) MoveDown() {
	if v.Index() >= v.lines.Len()-1 {
		return
	}
	if v.cursor.Row >= v.height-1 {
		v.offset++
		v.setRow(v.cursor.Row)
		return
	}
	v.setRow(v.cursor.Row + 1)
}

// MoveUp steps one row up, scrolling when the cursor sits on the first visible row
func (v *Viewport) MoveUp() {
	if v.Index() == 0 {
		return
	}
	if v.cursor.Row == 0 {
		v.offset--
		v.setRow(0)
		return
	}
	v.setRow(v.cursor.Row - 1)
}

func (v *Viewport) MoveToFirstLine() {
	v.offset = 0
	v.setRow(0)
}

func (v *Viewport) MoveToLastLine() {
	n := v.lines.Len()
	if n <= v.height {
		v.offset = 0
		v.setRow(n - 1)
		return
	}
	v.offset = n - v.height
	v.setRow(v.height - 1)
}

// MoveToTop moves to the first visible row without scrolling
func (v *Viewport) MoveToTop() {
	v.setRow(0)
}

// MoveToMiddle moves to the middle of the window, or the last row if the listing ends first
func (v *Viewport) MoveToMiddle() {
	v.moveWithinWindow(v.height / 2)
}

// MoveToBottom moves to the last visible row, or the last row if the listing ends first
func (v *Viewport) MoveToBottom() {
	v.moveWithinWindow(v.height - 1)
}

func (v *Viewport) moveWithinWindow(row int) {
	i := min(v.offset+row, v.lines.Len()-1)
	v.setRow(i - v.offset)
}

// JumpTo puts the cursor on index i, scrolling only if i is off screen.
// An off-screen target ends up in the middle of the window where possible.
func (v *Viewport) JumpTo(i int) {
	n := v.lines.Len()
	if i < 0 || i >= n {
		return
	}
	if i < v.offset || i >= v.offset+v.height {
		v.offset = min(max(i-v.height/2, 0), max(n-v.height, 0))
	}
	v.setRow(i - v.offset)
}

// Resize fits the viewport to a new window height. A shrinking window pulls
// the cursor row up to the new last row; a growing window scrolls back so no
// blank space is left below the listing, keeping the same row under the cursor.
func (v *Viewport) Resize(height int) {
	v.height = max(height, 1)

	index := v.Index()
	if maxOffset := max(v.lines.Len()-v.height, 0); v.offset > maxOffset {
		v.offset = maxOffset
		v.cursor.Row = index - v.offset
	}
	v.setRow(min(v.cursor.Row, v.height-1))
}
