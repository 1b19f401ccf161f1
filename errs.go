package funcparse

import "strconv"

// ErrorKind identifies the reason a parse or evaluator construction failed.
type ErrorKind int

const (
	// NoInput reports an empty input or empty parenthesized group.
	NoInput ErrorKind = iota
	// UnexpectedSymbol reports a malformed number literal or variable name.
	UnexpectedSymbol
	// UnknownSymbol reports an unrecognized character, name, or function.
	UnknownSymbol
	// OpenBraces reports an opening parenthesis with no matching close.
	OpenBraces
	// OperatorExpected reports two adjacent operands with no operator.
	OperatorExpected
	// EmptyFunction reports an operator missing its left or right operand
	// during reduction.
	EmptyFunction
	// DanglingOperator reports a trailing operator with no right operand.
	DanglingOperator
	// InvalidVariableIndex reports an evaluator variable index with no slot.
	InvalidVariableIndex
	// UnknownError reports an internal consistency violation.
	UnknownError
)

// errorNames is indexed by ErrorKind.
var errorNames = [...]string{
	"No input",
	"Unexpected symbol",
	"Unknown symbol",
	"Open braces",
	"Operator expected",
	"Empty function",
	"Dangling operator",
	"Invalid variable index",
	"Unknown error",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorNames) {
		return errorNames[k]
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// ParseError is the error reported for every malformed input. Off is the
// zero-based byte offset into the whitespace-stripped input; it is
// meaningless for the NoInput, EmptyFunction, and UnknownError kinds.
type ParseError struct {
	Kind ErrorKind
	Off  int
}

func (err *ParseError) Error() string {
	switch err.Kind {
	case NoInput, EmptyFunction, UnknownError:
		return err.Kind.String()
	default:
		return err.Kind.String() + " at position " + strconv.Itoa(err.Off+1)
	}
}

// Pos returns the zero-based byte offset of the error in the cleaned input.
func (err *ParseError) Pos() int {
	return err.Off
}
