package step

import (
	"context"
	"fmt"

	"github.com/dop251/goja"

	"github.com/MasterOfBinary/itemchain/processor"
)

// JSStep runs a JavaScript function body with the item bound to the
// variable "item". The returned value becomes the new item; returning
// nothing, undefined or null drops it.
//
// Each call uses a fresh goja runtime, since runtimes are not safe for
// concurrent use. The compiled program is shared.
type JSStep struct {
	name    string
	program *goja.Program
}

// NewJSFactory returns a Factory for "js" steps. The "code" option is
// required, e.g.
//
//	code: |
//	  if (item.age < 18) return null;
//	  return { name: item.name.toUpperCase() };
func NewJSFactory() Factory {
	return func(name string, config map[string]interface{}) (processor.Processor, error) {
		code, err := stringOption("js", name, config, "code")
		if err != nil {
			return nil, err
		}

		// Wrap the code in an anonymous function so it can use return.
		wrapped := "(function() {\n" + code + "\n})()"
		program, err := goja.Compile(name, wrapped, true)
		if err != nil {
			return nil, fmt.Errorf("js step '%s': failed to compile code: %w", name, err)
		}

		return &JSStep{name: name, program: program}, nil
	}
}

// Process implements processor.Processor. Cancelling ctx interrupts a
// running script.
func (s *JSStep) Process(ctx context.Context, item interface{}) (interface{}, error) {
	runtime := goja.New()
	if err := runtime.Set("item", item); err != nil {
		return nil, fmt.Errorf("js step '%s': failed to set item: %w", s.name, err)
	}

	stop := context.AfterFunc(ctx, func() {
		runtime.Interrupt(ctx.Err())
	})
	defer stop()

	result, err := runtime.RunProgram(s.program)
	if err != nil {
		return nil, fmt.Errorf("js step '%s': %w", s.name, err)
	}

	if goja.IsUndefined(result) || goja.IsNull(result) {
		return nil, nil
	}
	return result.Export(), nil
}
