package step

import (
	"context"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/MasterOfBinary/itemchain/processor"
)

// ExprStep evaluates an expr-lang expression with the item bound to the
// variable "item". The result of the expression becomes the new item; a nil
// result drops it.
type ExprStep struct {
	name       string
	expression string
	program    *vm.Program
}

// NewExprFactory returns a Factory for "expr" steps. The "expression" option
// is required.
func NewExprFactory() Factory {
	return func(name string, config map[string]interface{}) (processor.Processor, error) {
		expression, err := stringOption("expr", name, config, "expression")
		if err != nil {
			return nil, err
		}

		program, err := expr.Compile(expression, expr.Env(itemEnv(nil)))
		if err != nil {
			return nil, fmt.Errorf("expr step '%s': invalid expression %q: %w", name, expression, err)
		}

		return &ExprStep{name: name, expression: expression, program: program}, nil
	}
}

// Process implements processor.Processor.
func (s *ExprStep) Process(_ context.Context, item interface{}) (interface{}, error) {
	out, err := expr.Run(s.program, itemEnv(item))
	if err != nil {
		return nil, fmt.Errorf("expr step '%s': %w", s.name, err)
	}
	return out, nil
}

// FilterStep keeps items for which an expr-lang condition is true and drops
// the rest. Invert reverses the condition.
type FilterStep struct {
	name      string
	condition string
	invert    bool
	program   *vm.Program
}

// NewFilterFactory returns a Factory for "filter" steps. The "condition"
// option is required; "invert" is optional.
func NewFilterFactory() Factory {
	return func(name string, config map[string]interface{}) (processor.Processor, error) {
		condition, err := stringOption("filter", name, config, "condition")
		if err != nil {
			return nil, err
		}
		invert, _ := config["invert"].(bool)

		program, err := expr.Compile(condition, expr.Env(itemEnv(nil)), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("filter step '%s': invalid condition %q: %w", name, condition, err)
		}

		return &FilterStep{name: name, condition: condition, invert: invert, program: program}, nil
	}
}

// Process implements processor.Processor.
func (s *FilterStep) Process(_ context.Context, item interface{}) (interface{}, error) {
	out, err := expr.Run(s.program, itemEnv(item))
	if err != nil {
		return nil, fmt.Errorf("filter step '%s': %w", s.name, err)
	}

	keep, ok := out.(bool)
	if !ok {
		return nil, fmt.Errorf("filter step '%s': condition returned %T, not bool", s.name, out)
	}
	if s.invert {
		keep = !keep
	}

	if !keep {
		return nil, nil
	}
	return item, nil
}

func itemEnv(item interface{}) map[string]interface{} {
	return map[string]interface{}{"item": item}
}
