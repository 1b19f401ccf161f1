package funcparse

import "testing"

func TestScanNumber(t *testing.T) {
	cases := []struct {
		name string
		src  string
		v    float64
		next int
	}{
		{"int", "42", 42, 2},
		{"neg", "-3", -3, 2},
		{"frac", "1.25", 1.25, 4},
		{"neg-frac", "-0.5", -0.5, 4},
		{"bare-frac", ".5", 0.5, 2},
		{"neg-bare-frac", "-.5", -0.5, 3},
		{"trailing-dot", "12.", 12, 3},
		{"stops-at-op", "3+z", 3, 1},
		{"zero", "0", 0, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, next, err := scanNumber(c.src, 0, len(c.src))
			if err != nil {
				t.Fatalf("failed to scan %q: %v", c.src, err)
			}
			if v != c.v || next != c.next {
				t.Errorf("scanned %q to %v ending at %d, want %v at %d", c.src, v, next, c.v, c.next)
			}
		})
	}
}

func TestScanNumberErrors(t *testing.T) {
	for _, src := range []string{"-", ".", "-.", "z"} {
		t.Run(src, func(t *testing.T) {
			_, _, err := scanNumber(src, 0, len(src))
			pe, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("scanning %q gave %#v, not *ParseError", src, err)
			}
			if pe.Kind != UnexpectedSymbol || pe.Off != 0 {
				t.Errorf("scanning %q gave %v at %d", src, pe.Kind, pe.Off)
			}
		})
	}
}

func TestMatchBraces(t *testing.T) {
	cases := []struct {
		src   string
		open  int
		inner int
	}{
		{"(z)", 0, 1},
		{"()", 0, 0},
		{"(z*(c+1))", 0, 7},
		{"((z))", 0, 3},
		{"((z))", 1, 1},
		{"sin(z+1)*c", 3, 3},
	}
	for _, c := range cases {
		inner, err := matchBraces(c.src, c.open, len(c.src))
		if err != nil {
			t.Errorf("failed to match %q from %d: %v", c.src, c.open, err)
			continue
		}
		if inner != c.inner {
			t.Errorf("matched %q from %d to %d characters, want %d", c.src, c.open, inner, c.inner)
		}
	}
}

func TestMatchBracesUnbalanced(t *testing.T) {
	for _, c := range []struct {
		src  string
		open int
	}{
		{"(", 0},
		{"(z", 0},
		{"((z)", 0},
		{"z*(c", 2},
	} {
		_, err := matchBraces(c.src, c.open, len(c.src))
		pe, ok := err.(*ParseError)
		if !ok {
			t.Fatalf("matching %q gave %#v, not *ParseError", c.src, err)
		}
		if pe.Kind != OpenBraces || pe.Off != c.open {
			t.Errorf("matching %q gave %v at %d, want %v at %d", c.src, pe.Kind, pe.Off, OpenBraces, c.open)
		}
	}
}

func TestScanOperator(t *testing.T) {
	cases := []struct {
		src  string
		name OpName
		prec int
	}{
		{"+", OpAdd, 0},
		{"-", OpSub, 0},
		{"*", OpMul, 1},
		{"/", OpDiv, 1},
		{"^", OpPow, 2},
	}
	for _, c := range cases {
		op, next, err := scanOperator(c.src, 0)
		if err != nil {
			t.Errorf("failed to scan %q: %v", c.src, err)
			continue
		}
		if op.Name != c.name || op.Prec != c.prec || next != 1 {
			t.Errorf("scanned %q to %v tier %d ending at %d, want %v tier %d at 1", c.src, op.Name, op.Prec, next, c.name, c.prec)
		}
	}
	_, _, err := scanOperator("z", 0)
	if pe, ok := err.(*ParseError); !ok || pe.Kind != OperatorExpected {
		t.Errorf("scanning a non-operator gave %v", err)
	}
}

func TestNameLength(t *testing.T) {
	cases := []struct {
		src string
		n   int
	}{
		{"sin(z)", 3},
		{"z10*c", 3},
		{"abc_1+2", 5},
		{"+z", 0},
		{"z", 1},
	}
	for _, c := range cases {
		if got := nameLength(c.src); got != c.n {
			t.Errorf("nameLength(%q) = %d, want %d", c.src, got, c.n)
		}
	}
}
