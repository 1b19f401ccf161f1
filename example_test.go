package funcparse_test

import (
	"fmt"
	"log"

	"github.com/Praggmars/funcparse"
)

func Example() {
	p, err := funcparse.ParseString("z*z+c")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(p.Tree())
	ev, err := funcparse.NewEvaluator[funcparse.Complex128](p)
	if err != nil {
		log.Fatal(err)
	}
	ev.Set(0, 0.5)
	fmt.Println(ev.Eval())
	// Output:
	// add(mul(z,z),c)
	// (0.25+0i)
}

func ExampleEvaluator_Set() {
	p, err := funcparse.ParseString("z*z+c")
	if err != nil {
		log.Fatal(err)
	}
	ev, err := funcparse.NewEvaluator[funcparse.Complex128](p)
	if err != nil {
		log.Fatal(err)
	}
	// Iterate the formula from z=0 by feeding each result back into z.
	ev.Set(-1, -1)
	for i := 0; i < 4; i++ {
		v := ev.Eval()
		ev.Set(0, v)
		fmt.Println(v)
	}
	// Output:
	// (-1+0i)
	// (0+0i)
	// (-1+0i)
	// (0+0i)
}

func ExampleParser_Vars() {
	p, err := funcparse.ParseString("z1*sin(z)+c")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(p.Vars())
	fmt.Println(p.Precision())
	// Output:
	// [-1 0 1]
	// Single
}
