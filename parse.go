package funcparse

import (
	"strings"
	"unicode"

	"github.com/emirpasic/gods/sets/treeset"
)

// Grammar, over whitespace-stripped input:
//
//	expr     := operand (operator operand)*
//	operand  := '(' expr ')' | funcname '(' expr ')' | varname | number
//	operator := '+' | '-' | '*' | '/' | '^'
//	funcname := sin cos tan sinh cosh tanh exp log abs pos ang re im
//	varname  := 'i' | 'c' | 'z' (digit{1,10})?   leading zero forbidden
//	number   := '-'? digit+ ('.' digit+)?

// Precision is an advisory capability flag. A parse starts at Extended and
// drops to Single the moment any function outside pos, ang, re, im appears;
// those four are safe under any numeric representation. Nothing in this
// package enforces it.
type Precision int

const (
	Single Precision = iota
	Double
	Extended
)

// precisionNames is indexed by Precision.
var precisionNames = [...]string{"Single", "Double", "Extended"}

func (p Precision) String() string {
	if int(p) < len(precisionNames) {
		return precisionNames[p]
	}
	return "Precision(?)"
}

// Parser parses formulas and retains the result of the latest Parse call.
// A Parser is not safe for concurrent use.
type Parser struct {
	input string
	root  Node
	used  *treeset.Set
	prec  Precision
}

// NewParser returns an empty parser at the Extended precision capability.
func NewParser() *Parser {
	return &Parser{
		used: treeset.NewWithIntComparator(),
		prec: Extended,
	}
}

// ParseString parses one formula with a fresh parser.
func ParseString(src string) (*Parser, error) {
	p := NewParser()
	if err := p.Parse(src); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse strips all whitespace from src, discards any previous result, and
// parses the remainder as one expression. All operators fold left to right
// in three precedence passes, so exponentiation is left-associative:
// "2^3^2" is "(2^3)^2", not the usual right-associative reading. On error
// the parser is left cleared.
func (p *Parser) Parse(src string) error {
	p.Clear()
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, src)
	root, err := p.parsePart(clean, 0, len(clean))
	if err != nil {
		// Scanning registers variables and downgrades precision as it
		// goes; a failed parse must not leave that behind.
		p.Clear()
		return err
	}
	p.input = clean
	p.root = root
	return nil
}

// Clear discards the parsed tree and resets the session state.
func (p *Parser) Clear() {
	p.input = ""
	p.root = nil
	p.used.Clear()
	p.prec = Extended
}

// Tree returns the root of the parsed formula, or nil before a successful
// Parse.
func (p *Parser) Tree() Node {
	return p.root
}

// Input returns the whitespace-stripped text of the latest successful Parse.
func (p *Parser) Input() string {
	return p.input
}

// Vars returns the distinct variable indices referenced by the parsed
// formula, in ascending order.
func (p *Parser) Vars() []int {
	vals := p.used.Values()
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = v.(int)
	}
	return out
}

// Precision returns the capability the parsed formula supports.
func (p *Parser) Precision() Precision {
	return p.prec
}

// funcName resolves a function name and downgrades the precision capability
// for the precision-sensitive ones.
func (p *Parser) funcName(name string, off int) (FuncName, error) {
	for i, s := range funcNames {
		if s != name {
			continue
		}
		fn := FuncName(i)
		if p.prec != Single {
			switch fn {
			case FuncPos, FuncAng, FuncRe, FuncIm:
			default:
				p.prec = Single
			}
		}
		return fn, nil
	}
	return 0, &ParseError{Kind: UnknownSymbol, Off: off}
}

// token is one element of the flattened operand/operator sequence. op is
// non-nil only while the operator still awaits its operands; once reduced it
// becomes an ordinary operand, so a parenthesized group that collapsed to an
// *Operator node is never mistaken for an unconsumed operator.
type token struct {
	n  Node
	op *Operator
}

// parsePart parses the span src[offset:offset+length] into one node. It
// first flattens the span into an alternating operand/operator sequence,
// then compacts that sequence in place with one left-to-right pass per
// precedence tier, highest tier first.
func (p *Parser) parsePart(src string, offset, length int) (Node, error) {
	if length == 0 {
		return nil, &ParseError{Kind: NoInput}
	}
	end := offset + length
	var tokens []token
	operand := true
	for i := offset; i < end; operand = !operand {
		if operand {
			n, next, err := p.scanOperand(src, i, end)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{n: n})
			i = next
		} else {
			op, next, err := scanOperator(src, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{n: op, op: op})
			i = next
		}
	}
	if operand {
		return nil, &ParseError{Kind: DanglingOperator, Off: end - 1}
	}

	count := len(tokens)
	for prec := 2; prec >= 0; prec-- {
		store, read := 0, 0
		for read < count {
			op := tokens[read].op
			if op == nil || op.Prec != prec {
				if store != read {
					tokens[store] = tokens[read]
				}
				read++
				store++
				continue
			}
			if read+1 >= count || store == 0 || tokens[store-1].op != nil || tokens[read+1].op != nil {
				return nil, &ParseError{Kind: EmptyFunction}
			}
			op.Left = tokens[store-1].n
			op.Right = tokens[read+1].n
			tokens[store-1] = token{n: op}
			read += 2
		}
		count = store
	}
	if count != 1 {
		return nil, &ParseError{Kind: UnknownError}
	}
	return tokens[0].n, nil
}
