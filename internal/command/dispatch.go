package command

// Mover is anything that can carry out cursor motions
type Mover interface {
	MoveLeft()
	MoveDown()
	MoveUp()
	MoveRight()
	MoveToFirstLine()
	MoveToLastLine()
	MoveToTop()
	MoveToMiddle()
	MoveToBottom()
}

// Repeat calls move n times
func Repeat(n int, move func()) {
	for i := 0; i < n; i++ {
		move()
	}
}

// Dispatch applies a motion command to m. It returns false for commands that
// are not motions, leaving them to the caller.
func Dispatch(m Mover, c Command) bool {
	var move func()
	switch c.Op {
	case OpLeft:
		move = m.MoveLeft
	case OpDown:
		move = m.MoveDown
	case OpUp:
		move = m.MoveUp
	case OpRight:
		move = m.MoveRight
	case OpFirstLine:
		move = m.MoveToFirstLine
	case OpLastLine:
		move = m.MoveToLastLine
	case OpTop:
		move = m.MoveToTop
	case OpMiddle:
		move = m.MoveToMiddle
	case OpBottom:
		move = m.MoveToBottom
	default:
		return false
	}

	if c.Op.Repeatable() {
		Repeat(c.Count, move)
	} else {
		move()
	}
	return true
}
