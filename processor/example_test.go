package processor_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/MasterOfBinary/itemchain/processor"
)

func ExampleComposite() {
	c, err := processor.NewComposite(
		&processor.Transform{Func: func(v interface{}) (interface{}, error) {
			return v.(int) * 2, nil
		}},
		&processor.Transform{Func: func(v interface{}) (interface{}, error) {
			return fmt.Sprintf("val:%d", v), nil
		}},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	out, _ := c.Process(context.Background(), 5)
	fmt.Println(out)
	// Output: val:10
}

func ExampleComposite_shortCircuit() {
	c, _ := processor.NewComposite(
		&processor.Filter{Predicate: func(v interface{}) bool {
			return !strings.HasPrefix(v.(string), "#")
		}},
		&processor.Transform{Func: func(v interface{}) (interface{}, error) {
			return strings.ToUpper(v.(string)), nil
		}},
	)

	for _, line := range []string{"hello", "# comment", "world"} {
		out, _ := c.Process(context.Background(), line)
		fmt.Println(out)
	}
	// Output:
	// HELLO
	// <nil>
	// WORLD
}

func ExampleComposite_Validate() {
	c := &processor.Composite{}
	fmt.Println(c.Validate())
	// Output: configuration error: Processors: at least one processor is required
}

func ExampleThen() {
	double := processor.Step[int, int](func(_ context.Context, n int) (int, bool, error) {
		return n * 2, true, nil
	})
	label := processor.Step[int, string](func(_ context.Context, n int) (string, bool, error) {
		return fmt.Sprintf("val:%d", n), true, nil
	})

	p := processor.Erase(processor.Then(double, label))
	out, _ := p.Process(context.Background(), 5)
	fmt.Println(out)
	// Output: val:10
}
