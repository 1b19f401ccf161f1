// Command funcparse parses formulas over complex numbers, prints their
// prefix trees, and evaluates them, either one-shot or in an interactive
// loop. It is a thin driver over the funcparse package, chiefly for poking
// at formulas destined for fractal renderers.
//
// Configuration defaults come from an optional JSON file (-config) and the
// FUNCPARSE_* environment, with flags taking precedence.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"

	"github.com/Praggmars/funcparse"
)

var defaults = map[string]interface{}{
	"formula":     "z*z+c",
	"eval.type":   "complex128",
	"iter.count":  0,
	"repl.prompt": "fn> ",
}

func main() {
	log.SetFlags(0)
	var (
		cfgname, typ string
		givens       []string
		echo, trace  bool
		interactive  bool
		iter         int
	)
	flag.StringVar(&cfgname, "config", "", "JSON config file")
	flag.StringVar(&typ, "type", "", "number system: complex128, complex64, float64, float32, big, decimal")
	flag.Func("given", "name=value variable assignment (any number of times)", func(s string) error {
		if !strings.Contains(s, "=") {
			return fmt.Errorf("variable assignments must be \"name=value\", not %q", s)
		}
		givens = append(givens, s)
		return nil
	})
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.IntVar(&iter, "iter", 0, "iterate z through the formula this many times")
	flag.BoolVar(&trace, "trace", false, "print every iteration step")
	flag.BoolVar(&interactive, "i", false, "interactive mode")
	flag.Parse()

	k := koanf.New(".")
	k.Load(confmap.Provider(defaults, "."), nil)
	if cfgname != "" {
		if err := k.Load(file.Provider(cfgname), json.Parser()); err != nil {
			log.Fatalf("loading %s: %v", cfgname, err)
		}
	}
	k.Load(env.Provider("FUNCPARSE_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "FUNCPARSE_")), "_", ".")
	}), nil)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "type":
			k.Load(confmap.Provider(map[string]interface{}{"eval.type": typ}, "."), nil)
		case "iter":
			k.Load(confmap.Provider(map[string]interface{}{"iter.count": iter}, "."), nil)
		}
	})

	if interactive {
		repl(k)
		return
	}

	srcs := flag.Args()
	if len(srcs) == 0 {
		srcs = []string{k.String("formula")}
	}
	for _, src := range srcs {
		p, err := funcparse.ParseString(src)
		if err != nil {
			log.Fatalf("%s: %v", src, err)
		}
		if echo {
			fmt.Println(p.Tree())
		}
		r, err := newRunner(k.String("eval.type"), p)
		if err != nil {
			log.Fatal(err)
		}
		for _, g := range givens {
			d := strings.SplitN(g, "=", 2)
			if err := r.Assign(strings.TrimSpace(d[0]), strings.TrimSpace(d[1])); err != nil {
				log.Fatalf("setting %s: %v", d[0], err)
			}
		}
		if n := k.Int("iter.count"); n > 0 {
			if err := r.Iterate(n, trace, os.Stdout); err != nil {
				log.Fatal(err)
			}
			continue
		}
		fmt.Println(r.Eval())
	}
}

// runner erases the evaluator's type parameter so the driver can pick the
// number system at run time.
type runner interface {
	Assign(name, value string) error
	Eval() string
	Iterate(n int, trace bool, w io.Writer) error
	Slots() [][2]string
}

func newRunner(typ string, p *funcparse.Parser) (runner, error) {
	switch typ {
	case "complex128":
		return (&session[funcparse.Complex128]{parse: parseComplex[funcparse.Complex128]}).init(p)
	case "complex64":
		return (&session[funcparse.Complex64]{parse: parseComplex[funcparse.Complex64]}).init(p)
	case "float64":
		return (&session[funcparse.Float64]{parse: parseFloat[funcparse.Float64]}).init(p)
	case "float32":
		return (&session[funcparse.Float32]{parse: parseFloat[funcparse.Float32]}).init(p)
	case "big":
		return (&session[funcparse.BigReal]{parse: parseBig}).init(p)
	case "decimal":
		return (&session[funcparse.Dec]{parse: parseDec}).init(p)
	default:
		return nil, fmt.Errorf("unknown number system %q", typ)
	}
}

type session[T funcparse.Number[T]] struct {
	ev    *funcparse.Evaluator[T]
	parse func(string) (T, error)
}

func (s *session[T]) init(p *funcparse.Parser) (*session[T], error) {
	ev, err := funcparse.NewEvaluator[T](p)
	if err != nil {
		return nil, err
	}
	s.ev = ev
	return s, nil
}

func (s *session[T]) Assign(name, value string) error {
	index, ok := varIndex(name)
	if !ok {
		return fmt.Errorf("no such variable %q", name)
	}
	v, err := s.parse(value)
	if err != nil {
		return err
	}
	return s.ev.Set(index, v)
}

func (s *session[T]) Eval() string {
	return fmt.Sprint(s.ev.Eval())
}

func (s *session[T]) Iterate(n int, trace bool, w io.Writer) error {
	if _, ok := s.ev.Value(0); !ok {
		return fmt.Errorf("formula does not reference z")
	}
	for i := 0; i < n; i++ {
		v := s.ev.Eval()
		s.ev.Set(0, v)
		if trace {
			fmt.Fprintf(w, "%4d: %v\n", i+1, v)
		}
	}
	v, _ := s.ev.Value(0)
	fmt.Fprintf(w, "%v\n", v)
	return nil
}

func (s *session[T]) Slots() [][2]string {
	var out [][2]string
	for _, index := range s.ev.Vars() {
		v, _ := s.ev.Value(index)
		out = append(out, [2]string{varName(index), fmt.Sprint(v)})
	}
	return out
}

func varIndex(name string) (int, bool) {
	switch {
	case name == "c":
		return -1, true
	case name == "z":
		return 0, true
	case strings.HasPrefix(name, "z"):
		n, err := strconv.Atoi(name[1:])
		if err != nil || n < 1 {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func varName(index int) string {
	switch {
	case index < 0:
		return "c"
	case index == 0:
		return "z"
	default:
		return "z" + strconv.Itoa(index)
	}
}

func parseComplex[T ~complex128 | ~complex64](s string) (T, error) {
	v, err := strconv.ParseComplex(s, 128)
	return T(v), err
}

func parseFloat[T ~float64 | ~float32](s string) (T, error) {
	v, err := strconv.ParseFloat(s, 64)
	return T(v), err
}

func parseBig(s string) (funcparse.BigReal, error) {
	f, _, err := big.ParseFloat(s, 10, 128, big.ToNearestEven)
	if err != nil {
		return funcparse.BigReal{}, err
	}
	return funcparse.BigFromFloat(f), nil
}

func parseDec(s string) (funcparse.Dec, error) {
	return funcparse.DecFromString(s)
}

var replCompleter = readline.NewPrefixCompleter(
	readline.PcItem("help"),
	readline.PcItem("bye"),
	readline.PcItem("set"),
	readline.PcItem("vars"),
	readline.PcItem("tree"),
	readline.PcItem("eval"),
	readline.PcItem("iter"),
	readline.PcItem("prec"),
	readline.PcItem("type",
		readline.PcItem("complex128"),
		readline.PcItem("complex64"),
		readline.PcItem("float64"),
		readline.PcItem("float32"),
		readline.PcItem("big"),
		readline.PcItem("decimal"),
	),
)

func repl(k *koanf.Koanf) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            text.FgGreen.Sprint(k.String("repl.prompt")),
		HistoryFile:       os.TempDir() + "/funcparse-repl-history.tmp",
		AutoComplete:      replCompleter,
		InterruptPrompt:   "^C",
		EOFPrompt:         "bye",
		HistorySearchFold: true,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()

	typ := k.String("eval.type")
	parser := funcparse.NewParser()
	var run runner
	out := rl.Stdout()
	fmt.Fprintf(out, "funcparse interactive mode, number system %s; enter a formula or \"help\"\n", typ)
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return
			}
			continue
		} else if err == io.EOF {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words := strings.Fields(line)
		switch words[0] {
		case "help":
			printHelp(out)
		case "bye":
			return
		case "set":
			if run == nil {
				fmt.Fprintln(out, "no formula yet")
				continue
			}
			if len(words) != 3 {
				fmt.Fprintln(out, "usage: set <var> <value>")
				continue
			}
			if err := run.Assign(words[1], words[2]); err != nil {
				fmt.Fprintln(out, err)
			}
		case "vars":
			if run == nil {
				fmt.Fprintln(out, "no formula yet")
				continue
			}
			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.AppendHeader(table.Row{"Variable", "Value"})
			for _, s := range run.Slots() {
				t.AppendRow(table.Row{s[0], s[1]})
			}
			t.Render()
		case "tree":
			if parser.Tree() == nil {
				fmt.Fprintln(out, "no formula yet")
				continue
			}
			fmt.Fprintln(out, parser.Tree())
		case "eval":
			if run == nil {
				fmt.Fprintln(out, "no formula yet")
				continue
			}
			fmt.Fprintln(out, run.Eval())
		case "iter":
			if run == nil {
				fmt.Fprintln(out, "no formula yet")
				continue
			}
			n := 1
			if len(words) > 1 {
				if n, err = strconv.Atoi(words[1]); err != nil {
					fmt.Fprintln(out, "usage: iter [count]")
					continue
				}
			}
			if err := run.Iterate(n, n <= 32, out); err != nil {
				fmt.Fprintln(out, err)
			}
		case "prec":
			fmt.Fprintln(out, parser.Precision())
		case "type":
			if len(words) != 2 {
				fmt.Fprintln(out, "usage: type <system>")
				continue
			}
			switch words[1] {
			case "complex128", "complex64", "float64", "float32", "big", "decimal":
			default:
				fmt.Fprintf(out, "unknown number system %q\n", words[1])
				continue
			}
			typ = words[1]
			if parser.Tree() != nil {
				r, err := newRunner(typ, parser)
				if err != nil {
					fmt.Fprintln(out, err)
					continue
				}
				run = r
			}
			fmt.Fprintf(out, "number system %s\n", typ)
		default:
			if err := parser.Parse(line); err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			r, err := newRunner(typ, parser)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			run = r
			fmt.Fprintln(out, parser.Tree())
		}
	}
}

func printHelp(w io.Writer) {
	io.WriteString(w, "Enter a formula (e.g. z*z+c) to make it current. Commands:\n\n")
	io.WriteString(w, "  set <var> <value> : write a variable slot (c, z, z1, ...)\n")
	io.WriteString(w, "  vars              : list variable slots\n")
	io.WriteString(w, "  tree              : print the parsed prefix form\n")
	io.WriteString(w, "  eval              : evaluate with the current slots\n")
	io.WriteString(w, "  iter [n]          : assign z through the formula n times\n")
	io.WriteString(w, "  prec              : print the precision capability\n")
	io.WriteString(w, "  type <system>     : switch the number system\n")
	io.WriteString(w, "  bye               : quit\n")
}
