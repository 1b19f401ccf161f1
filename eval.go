package funcparse

// Evaluator binds a parsed formula to mutable variable slots under a number
// system T. Construction walks the AST once, compiling it into a tree of
// closures in which every Variable node captures a pointer to its slot;
// Eval walks only that compiled tree, so slot writes between calls are seen
// by the next call and nothing is cached across calls.
//
// An Evaluator is not safe for concurrent use; sharing one across goroutines
// requires external synchronization.
type Evaluator[T Number[T]] struct {
	root func() T
	vars map[int]*T
}

// NewEvaluator compiles the parser's current tree. Each variable index the
// parse referenced gets one slot initialized to T's zero value. Parsing again
// does not affect an existing Evaluator; construct a new one to pick up a
// new formula.
func NewEvaluator[T Number[T]](p *Parser) (*Evaluator[T], error) {
	if p.Tree() == nil {
		return nil, &ParseError{Kind: NoInput}
	}
	var zero T
	zero = zero.FromComplex(0)
	ev := &Evaluator[T]{vars: make(map[int]*T)}
	for _, index := range p.Vars() {
		v := zero
		ev.vars[index] = &v
	}
	root, err := ev.compile(p.Tree())
	if err != nil {
		return nil, err
	}
	ev.root = root
	return ev, nil
}

// Eval computes the formula's value for the current slot contents. Cost is
// proportional to the tree size.
func (ev *Evaluator[T]) Eval() T {
	return ev.root()
}

// Set writes a variable slot. The index must be one the parsed formula
// referenced.
func (ev *Evaluator[T]) Set(index int, v T) error {
	slot := ev.vars[index]
	if slot == nil {
		return &ParseError{Kind: InvalidVariableIndex}
	}
	*slot = v
	return nil
}

// Value reads a variable slot. The second result is false if the formula
// never referenced the index.
func (ev *Evaluator[T]) Value(index int) (T, bool) {
	slot := ev.vars[index]
	if slot == nil {
		var zero T
		return zero.FromComplex(0), false
	}
	return *slot, true
}

// Vars returns the slot indices in ascending order.
func (ev *Evaluator[T]) Vars() []int {
	out := make([]int, 0, len(ev.vars))
	for index := range ev.vars {
		out = append(out, index)
	}
	sortInts(out)
	return out
}

// sortInts sorts a small int slice without pulling in package sort.
func sortInts(v []int) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j] < v[j-1]; j-- {
			v[j], v[j-1] = v[j-1], v[j]
		}
	}
}

func (ev *Evaluator[T]) compile(n Node) (func() T, error) {
	switch n := n.(type) {
	case *Constant:
		var zero T
		v := zero.FromComplex(n.Value)
		return func() T { return v }, nil
	case *Variable:
		slot := ev.vars[n.Index]
		if slot == nil {
			return nil, &ParseError{Kind: InvalidVariableIndex}
		}
		return func() T { return *slot }, nil
	case *Function:
		arg, err := ev.compile(n.Arg)
		if err != nil {
			return nil, err
		}
		// Indexed by FuncName; the order matches funcNames.
		funcs := [...]func(T) T{
			func(x T) T { return x.Sin() },
			func(x T) T { return x.Cos() },
			func(x T) T { return x.Tan() },
			func(x T) T { return x.Sinh() },
			func(x T) T { return x.Cosh() },
			func(x T) T { return x.Tanh() },
			func(x T) T { return x.Exp() },
			func(x T) T { return x.Log() },
			func(x T) T { return x.Abs() },
			func(x T) T { return x.Pos() },
			func(x T) T { return x.Ang() },
			func(x T) T { return x.Re() },
			func(x T) T { return x.Im() },
		}
		if int(n.Name) >= len(funcs) {
			return nil, &ParseError{Kind: UnknownSymbol}
		}
		f := funcs[n.Name]
		return func() T { return f(arg()) }, nil
	case *Operator:
		left, err := ev.compile(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := ev.compile(n.Right)
		if err != nil {
			return nil, err
		}
		// Indexed by OpName; the order matches opNames.
		ops := [...]func(T, T) T{
			func(a, b T) T { return a.Add(b) },
			func(a, b T) T { return a.Sub(b) },
			func(a, b T) T { return a.Mul(b) },
			func(a, b T) T { return a.Div(b) },
			func(a, b T) T { return a.Pow(b) },
		}
		if int(n.Name) >= len(ops) {
			return nil, &ParseError{Kind: UnknownSymbol}
		}
		op := ops[n.Name]
		return func() T { return op(left(), right()) }, nil
	default:
		return nil, &ParseError{Kind: UnknownError}
	}
}
