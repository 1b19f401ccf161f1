package funcparse

// The scanners work on single bytes of the whitespace-stripped input. The
// grammar is pure ASCII; any byte outside it is an unknown symbol.

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isNamePart(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}

func isNumberPart(ch byte) bool {
	return isDigit(ch) || ch == '.' || ch == '-'
}

// nameLength returns the length of the maximal run of name characters at the
// start of s.
func nameLength(s string) int {
	for i := 0; i < len(s); i++ {
		if !isNamePart(s[i]) {
			return i
		}
	}
	return len(s)
}

// scanNumber consumes a signed decimal literal at pos and returns its value
// and the offset just past it. At least one digit must appear.
func scanNumber(src string, pos, end int) (float64, int, error) {
	first := pos
	digit := false
	num := 0.0
	if pos < end && src[pos] == '-' {
		pos++
	}
	for pos < end && isDigit(src[pos]) {
		num = num*10 + float64(src[pos]-'0')
		digit = true
		pos++
	}
	if pos < end && src[pos] == '.' {
		pos++
		scale := 1.0
		for pos < end && isDigit(src[pos]) {
			scale /= 10
			num += float64(src[pos]-'0') * scale
			digit = true
			pos++
		}
	}
	if !digit {
		return 0, first, &ParseError{Kind: UnexpectedSymbol, Off: first}
	}
	if src[first] == '-' {
		num = -num
	}
	return num, pos, nil
}

// matchBraces returns the length of the balanced span enclosed by the opening
// parenthesis at open, counting depth up to its matching close. Running out
// of input is an unbalanced-braces error at the opening parenthesis.
func matchBraces(src string, open, end int) (int, error) {
	depth := 1
	for j := open + 1; j < end; j++ {
		switch src[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j - open - 1, nil
			}
		}
	}
	return 0, &ParseError{Kind: OpenBraces, Off: open}
}

// scanOperator consumes exactly one byte and maps it to an operator node
// carrying its precedence tier.
func scanOperator(src string, pos int) (*Operator, int, error) {
	switch src[pos] {
	case '+':
		return &Operator{Name: OpAdd, Prec: 0}, pos + 1, nil
	case '-':
		return &Operator{Name: OpSub, Prec: 0}, pos + 1, nil
	case '*':
		return &Operator{Name: OpMul, Prec: 1}, pos + 1, nil
	case '/':
		return &Operator{Name: OpDiv, Prec: 1}, pos + 1, nil
	case '^':
		return &Operator{Name: OpPow, Prec: 2}, pos + 1, nil
	default:
		return nil, pos, &ParseError{Kind: OperatorExpected, Off: pos}
	}
}

// scanOperand recognizes one operand at pos: a parenthesized group, a
// function call, a name, or a number literal. Groups recurse into the
// reducer; a function's argument is the one operand that follows its name,
// which by the grammar is always a parenthesized group.
func (p *Parser) scanOperand(src string, pos, end int) (Node, int, error) {
	switch {
	case src[pos] == '(':
		inner, err := matchBraces(src, pos, end)
		if err != nil {
			return nil, pos, err
		}
		n, err := p.parsePart(src, pos+1, inner)
		if err != nil {
			return nil, pos, err
		}
		return n, pos + inner + 2, nil
	case isLetter(src[pos]):
		length := nameLength(src[pos:end])
		name := src[pos : pos+length]
		next := pos + length
		if next < end && src[next] == '(' {
			fn, err := p.funcName(name, next)
			if err != nil {
				return nil, pos, err
			}
			arg, next, err := p.scanOperand(src, next, end)
			if err != nil {
				return nil, pos, err
			}
			return &Function{Name: fn, Arg: arg}, next, nil
		}
		return p.varOrUnit(name, pos, next)
	case isNumberPart(src[pos]):
		v, next, err := scanNumber(src, pos, end)
		if err != nil {
			return nil, pos, err
		}
		return &Constant{Value: complex(v, 0)}, next, nil
	default:
		return nil, pos, &ParseError{Kind: UnknownSymbol, Off: pos}
	}
}

// varOrUnit resolves a bare name: the imaginary unit i, the parameter c, or
// an iteration variable z with an optional index suffix of up to ten digits
// and no leading zero.
func (p *Parser) varOrUnit(name string, pos, next int) (Node, int, error) {
	switch {
	case name == "i":
		return &Constant{Value: complex(0, 1)}, next, nil
	case name == "c":
		p.used.Add(-1)
		return &Variable{Index: -1}, next, nil
	case name[0] == 'z':
		suffix := name[1:]
		if len(suffix) > 10 || len(suffix) > 0 && suffix[0] == '0' {
			return nil, pos, &ParseError{Kind: UnexpectedSymbol, Off: pos}
		}
		index := int64(0)
		for i := 0; i < len(suffix); i++ {
			if !isDigit(suffix[i]) {
				return nil, pos, &ParseError{Kind: UnexpectedSymbol, Off: pos}
			}
			index = index*10 + int64(suffix[i]-'0')
		}
		// Ten digits can exceed int on 32-bit platforms.
		if index != int64(int(index)) {
			return nil, pos, &ParseError{Kind: UnexpectedSymbol, Off: pos}
		}
		p.used.Add(int(index))
		return &Variable{Index: int(index)}, next, nil
	default:
		return nil, pos, &ParseError{Kind: UnknownSymbol, Off: pos}
	}
}
