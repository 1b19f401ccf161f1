package funcparse

import (
	"strconv"
	"strings"
)

// Node is one element of a parsed formula tree. The concrete types are
// *Variable, *Constant, *Function, and *Operator; every non-leaf node owns
// its children outright, so a successful parse yields a strict tree.
//
// String renders the canonical prefix form: variables as "c", "z", or "zN",
// constants as Go complex literals, functions as "name(arg)", and operators
// as "opname(left,right)" using the internal names add, sub, mul, div, pow.
type Node interface {
	String() string
	print(b *strings.Builder)
	node()
}

// Variable references a mutable slot by index. Index -1 is the parameter c,
// 0 is the iteration variable z, and 1..N are the auxiliaries z1..zN.
type Variable struct {
	Index int
}

// Constant holds a value fixed at parse time: a number literal or the
// imaginary unit i.
type Constant struct {
	Value complex128
}

// Function applies one of the thirteen named functions to its argument.
type Function struct {
	Name FuncName
	Arg  Node
}

// Operator combines two operands. Prec is the precedence tier: 0 for add and
// sub, 1 for mul and div, 2 for pow.
type Operator struct {
	Name        OpName
	Prec        int
	Left, Right Node
}

func (*Variable) node() {}
func (*Constant) node() {}
func (*Function) node() {}
func (*Operator) node() {}

// FuncName enumerates the function set. The order is positional: dispatch
// tables are indexed by it.
type FuncName int

const (
	FuncSin FuncName = iota
	FuncCos
	FuncTan
	FuncSinh
	FuncCosh
	FuncTanh
	FuncExp
	FuncLog
	FuncAbs
	FuncPos
	FuncAng
	FuncRe
	FuncIm
)

// funcNames is indexed by FuncName.
var funcNames = [...]string{
	"sin", "cos", "tan", "sinh", "cosh", "tanh", "exp", "log", "abs", "pos", "ang", "re", "im",
}

func (n FuncName) String() string {
	if int(n) < len(funcNames) {
		return funcNames[n]
	}
	return "FuncName(" + strconv.Itoa(int(n)) + ")"
}

// OpName enumerates the binary operators, positionally.
type OpName int

const (
	OpAdd OpName = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

// opNames is indexed by OpName.
var opNames = [...]string{"add", "sub", "mul", "div", "pow"}

func (n OpName) String() string {
	if int(n) < len(opNames) {
		return opNames[n]
	}
	return "OpName(" + strconv.Itoa(int(n)) + ")"
}

func (n *Variable) String() string { return nodeString(n) }
func (n *Constant) String() string { return nodeString(n) }
func (n *Function) String() string { return nodeString(n) }
func (n *Operator) String() string { return nodeString(n) }

func nodeString(n Node) string {
	var b strings.Builder
	n.print(&b)
	return b.String()
}

func (n *Variable) print(b *strings.Builder) {
	if n.Index < 0 {
		b.WriteByte('c')
		return
	}
	b.WriteByte('z')
	if n.Index > 0 {
		b.WriteString(strconv.Itoa(n.Index))
	}
}

func (n *Constant) print(b *strings.Builder) {
	b.WriteString(strconv.FormatComplex(n.Value, 'g', -1, 128))
}

func (n *Function) print(b *strings.Builder) {
	b.WriteString(n.Name.String())
	b.WriteByte('(')
	if n.Arg != nil {
		n.Arg.print(b)
	}
	b.WriteByte(')')
}

func (n *Operator) print(b *strings.Builder) {
	b.WriteString(n.Name.String())
	b.WriteByte('(')
	if n.Left != nil {
		n.Left.print(b)
	}
	b.WriteByte(',')
	if n.Right != nil {
		n.Right.print(b)
	}
	b.WriteByte(')')
}
