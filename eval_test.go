package funcparse_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/Praggmars/funcparse"
)

func mustParse(t testing.TB, src string) *funcparse.Parser {
	t.Helper()
	p, err := funcparse.ParseString(src)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", src, err)
	}
	return p
}

func TestEvalComplex128(t *testing.T) {
	cases := []struct {
		name string
		src  string
		vars map[int]complex128
		want complex128
	}{
		{"iteration", "z*z+c", map[int]complex128{0: 0.5, -1: 0}, 0.25},
		{"precedence", "1+2*3", nil, 7},
		{"pow-left", "2^3^2", nil, 64},
		{"unit", "i*i", nil, -1},
		{"abs", "abs(z)", map[int]complex128{0: 3 + 4i}, 5},
		{"re", "re(z)", map[int]complex128{0: -2 + 3i}, 2},
		{"im", "im(z)", map[int]complex128{0: 3 - 4i}, 4},
		{"pos", "pos(z)", map[int]complex128{0: -1 - 2i}, 1 + 2i},
		{"ang", "ang(z)", map[int]complex128{0: 1i}, complex(math.Pi/2, 0)},
		{"exp-log", "exp(log(z))", map[int]complex128{0: 2.5}, 2.5},
		{"grouped", "(z+1)*(z-1)", map[int]complex128{0: 3}, 8},
		{"aux", "z1*z2+z", map[int]complex128{0: 1, 1: 2, 2: 3}, 7},
		{"div", "z/c", map[int]complex128{0: 1, -1: 2}, 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := mustParse(t, c.src)
			ev, err := funcparse.NewEvaluator[funcparse.Complex128](p)
			if err != nil {
				t.Fatalf("failed to compile %q: %v", c.src, err)
			}
			for index, v := range c.vars {
				if err := ev.Set(index, funcparse.Complex128(v)); err != nil {
					t.Fatalf("failed to set z%d: %v", index, err)
				}
			}
			got := complex128(ev.Eval())
			if cmplx.Abs(got-c.want) > 1e-12 {
				t.Errorf("%q evaluated to %v, want %v", c.src, got, c.want)
			}
		})
	}
}

func TestEvalFloat64(t *testing.T) {
	cases := []struct {
		name string
		src  string
		z    float64
		want float64
	}{
		{"pow-left", "z^3^2", 2, 64},
		{"real-re", "re(z)", -3, -3},
		{"real-im", "im(z)", -3, 0},
		{"real-ang", "ang(z)", -3, 0},
		{"real-pos", "pos(z)", -3, 3},
		{"trig", "sin(z)^2+cos(z)^2", 0.7, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := mustParse(t, c.src)
			ev, err := funcparse.NewEvaluator[funcparse.Float64](p)
			if err != nil {
				t.Fatalf("failed to compile %q: %v", c.src, err)
			}
			if err := ev.Set(0, funcparse.Float64(c.z)); err != nil {
				t.Fatal(err)
			}
			got := float64(ev.Eval())
			if math.Abs(got-c.want) > 1e-12 {
				t.Errorf("%q with z=%v evaluated to %v, want %v", c.src, c.z, got, c.want)
			}
		})
	}
}

func TestEvalBigReal(t *testing.T) {
	p := mustParse(t, "z^c+1")
	ev, err := funcparse.NewEvaluator[funcparse.BigReal](p)
	if err != nil {
		t.Fatal(err)
	}
	ev.Set(0, funcparse.NewBigReal(2))
	ev.Set(-1, funcparse.NewBigReal(10))
	if got, _ := ev.Eval().Float().Float64(); math.Abs(got-1025) > 1e-9 {
		t.Errorf("2^10+1 evaluated to %v", got)
	}

	neg := mustParse(t, "z^c")
	np, err := funcparse.NewEvaluator[funcparse.BigReal](neg)
	if err != nil {
		t.Fatal(err)
	}
	np.Set(0, funcparse.NewBigReal(-2))
	np.Set(-1, funcparse.NewBigReal(10))
	if got := np.Eval().Float(); got.Cmp(funcparse.NewBigReal(1024).Float()) != 0 {
		t.Errorf("(-2)^10 evaluated to %v, want exactly 1024", got)
	}

	p = mustParse(t, "log(z)")
	lg, err := funcparse.NewEvaluator[funcparse.BigReal](p)
	if err != nil {
		t.Fatal(err)
	}
	lg.Set(0, funcparse.NewBigReal(-1))
	if v := lg.Eval().Float(); !v.IsInf() || !v.Signbit() {
		t.Errorf("log of a negative value evaluated to %v, want -Inf", v)
	}
}

func TestEvalBigRealZeroValueSlots(t *testing.T) {
	p := mustParse(t, "z+1")
	ev, err := funcparse.NewEvaluator[funcparse.BigReal](p)
	if err != nil {
		t.Fatal(err)
	}
	if got := ev.Eval().Float(); got.Cmp(funcparse.NewBigReal(1).Float()) != 0 {
		t.Errorf("unset slot did not evaluate as zero: got %v", got)
	}
}

func TestEvalDec(t *testing.T) {
	cases := []struct {
		name string
		src  string
		z    string
		want string
	}{
		{"exact-mul", "z*3", "1.1", "3.3"},
		{"exact-pow", "z^8", "2", "256"},
		{"neg-pow", "z^-2", "4", "0.0625"},
		{"div-zero", "1/z", "0", "0"},
		{"abs", "abs(z)", "-1.5", "1.5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := mustParse(t, c.src)
			ev, err := funcparse.NewEvaluator[funcparse.Dec](p)
			if err != nil {
				t.Fatalf("failed to compile %q: %v", c.src, err)
			}
			z, err := funcparse.DecFromString(c.z)
			if err != nil {
				t.Fatal(err)
			}
			if err := ev.Set(0, z); err != nil {
				t.Fatal(err)
			}
			if got := ev.Eval().String(); got != c.want {
				t.Errorf("%q with z=%s evaluated to %s, want %s", c.src, c.z, got, c.want)
			}
		})
	}
}

func TestEvalRebind(t *testing.T) {
	p := mustParse(t, "z*z")
	ev, err := funcparse.NewEvaluator[funcparse.Complex128](p)
	if err != nil {
		t.Fatal(err)
	}
	for _, z := range []complex128{2, 3, -0.5, 1i} {
		if err := ev.Set(0, funcparse.Complex128(z)); err != nil {
			t.Fatal(err)
		}
		if got := complex128(ev.Eval()); got != z*z {
			t.Errorf("z*z with z=%v evaluated to %v, want %v", z, got, z*z)
		}
	}
}

func TestEvalIterated(t *testing.T) {
	// One Mandelbrot step repeated: c=-1 makes z cycle 0, -1, 0, -1, ...
	p := mustParse(t, "z*z+c")
	ev, err := funcparse.NewEvaluator[funcparse.Complex128](p)
	if err != nil {
		t.Fatal(err)
	}
	ev.Set(-1, funcparse.Complex128(-1))
	for i := 0; i < 8; i++ {
		v := ev.Eval()
		if err := ev.Set(0, v); err != nil {
			t.Fatal(err)
		}
		want := funcparse.Complex128(0)
		if i%2 == 0 {
			want = -1
		}
		if v != want {
			t.Fatalf("iteration %d produced %v, want %v", i, complex128(v), complex128(want))
		}
	}
}

func TestEvaluatorVars(t *testing.T) {
	p := mustParse(t, "z2+c*z")
	ev, err := funcparse.NewEvaluator[funcparse.Float64](p)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{-1, 0, 2}
	got := ev.Vars()
	if len(got) != len(want) {
		t.Fatalf("wrong slots %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("wrong slots %v, want %v", got, want)
		}
	}
	if _, ok := ev.Value(2); !ok {
		t.Error("referenced slot 2 reported missing")
	}
	if _, ok := ev.Value(1); ok {
		t.Error("unreferenced slot 1 reported present")
	}
}

func TestEvaluatorSetUnknown(t *testing.T) {
	p := mustParse(t, "z*z")
	ev, err := funcparse.NewEvaluator[funcparse.Complex128](p)
	if err != nil {
		t.Fatal(err)
	}
	err = ev.Set(5, 1)
	pe, ok := err.(*funcparse.ParseError)
	if !ok {
		t.Fatalf("setting an unknown slot gave %#v, not *ParseError", err)
	}
	if pe.Kind != funcparse.InvalidVariableIndex {
		t.Errorf("setting an unknown slot gave kind %v", pe.Kind)
	}
}

func TestNewEvaluatorUnparsed(t *testing.T) {
	_, err := funcparse.NewEvaluator[funcparse.Complex128](funcparse.NewParser())
	pe, ok := err.(*funcparse.ParseError)
	if !ok {
		t.Fatalf("compiling an empty parser gave %#v, not *ParseError", err)
	}
	if pe.Kind != funcparse.NoInput {
		t.Errorf("compiling an empty parser gave kind %v", pe.Kind)
	}
}

func BenchmarkEval(b *testing.B) {
	p := mustParse(b, "z*z+c")
	ev, err := funcparse.NewEvaluator[funcparse.Complex128](p)
	if err != nil {
		b.Fatal(err)
	}
	ev.Set(-1, funcparse.Complex128(0.25+0.1i))
	ev.Set(0, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ev.Set(0, ev.Eval())
	}
}

func BenchmarkCompile(b *testing.B) {
	p := mustParse(b, "sin(z)*exp(c)+z1/(z-c)^2")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := funcparse.NewEvaluator[funcparse.Complex128](p); err != nil {
			b.Fatal(err)
		}
	}
}
