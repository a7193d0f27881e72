package command

import (
	"strconv"
)

// Op is a completed command
type Op int

const (
	OpNone Op = iota
	OpLeft
	OpDown
	OpUp
	OpRight
	OpFirstLine
	OpLastLine
	OpTop
	OpMiddle
	OpBottom
	OpSearch
	OpNextMatch
	OpPrevMatch
	OpYank
	OpActivate
	OpAccept
	OpAbort
)

// Repeatable reports whether a count applies to the op
func (o Op) Repeatable() bool {
	switch o {
	case OpLeft, OpDown, OpUp, OpRight, OpNextMatch, OpPrevMatch:
		return true
	}
	return false
}

// Prefix is the first key of a two-key command
type Prefix int

const (
	PrefixNone Prefix = iota
	PrefixG
	PrefixY
)

func (p Prefix) String() string {
	switch p {
	case PrefixG:
		return "g"
	case PrefixY:
		return "y"
	default:
		return ""
	}
}

// Command is what the parser hands back once a key sequence completes.
// Count is at least 1 for repeatable ops and always 1 otherwise.
type Command struct {
	Op    Op
	Count int
}

var singleKeys = map[string]Op{
	"h":      OpLeft,
	"j":      OpDown,
	"k":      OpUp,
	"l":      OpRight,
	"G":      OpLastLine,
	"H":      OpTop,
	"M":      OpMiddle,
	"L":      OpBottom,
	"n":      OpNextMatch,
	"N":      OpPrevMatch,
	"/":      OpSearch,
	"enter":  OpActivate,
	" ":      OpAccept,
	"esc":    OpAbort,
	"ctrl+c": OpAbort,
}

var prefixKeys = map[string]Prefix{
	"g": PrefixG,
	"y": PrefixY,
}

// prefixed maps an armed prefix to the op its repeated key completes
var prefixed = map[Prefix]Op{
	PrefixG: OpFirstLine,
	PrefixY: OpYank,
}

// maxCount caps a typed count so a held digit key cannot overflow it
const maxCount = 99999

// Parser accumulates a repeat count and a pending prefix across key presses
type Parser struct {
	count  int
	prefix Prefix
}

// Pending reports whether a count or prefix is waiting for more keys
func (p *Parser) Pending() bool {
	return p.count > 0 || p.prefix != PrefixNone
}

func (p *Parser) Reset() {
	p.count = 0
	p.prefix = PrefixNone
}

// Feed consumes one key. It returns a command and true once the key completes one.
func (p *Parser) Feed(key string) (Command, bool) {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		digit := int(key[0] - '0')
		if digit == 0 && p.count == 0 {
			return Command{}, false
		}
		p.count = min(p.count*10+digit, maxCount)
		return Command{}, false
	}

	if pre, ok := prefixKeys[key]; ok {
		if p.prefix == pre {
			return p.complete(prefixed[pre]), true
		}
		if p.prefix != PrefixNone {
			p.Reset()
		}
		p.prefix = pre
		return Command{}, false
	}

	if op, ok := singleKeys[key]; ok {
		return p.complete(op), true
	}

	// An unknown key abandons a half-typed two-key command
	if p.prefix != PrefixNone {
		p.Reset()
	}
	return Command{}, false
}

func (p *Parser) complete(op Op) Command {
	cmd := Command{Op: op, Count: 1}
	if op.Repeatable() && p.count > 0 {
		cmd.Count = p.count
	}
	p.Reset()
	return cmd
}

// String echoes the pending count and prefix
func (p *Parser) String() string {
	var s string
	if p.count > 0 {
		s = strconv.Itoa(p.count)
	}
	return s + p.prefix.String()
}
