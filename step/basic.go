package step

import (
	"context"

	"github.com/MasterOfBinary/itemchain/processor"
)

func newPassthrough(string, map[string]interface{}) (processor.Processor, error) {
	return processor.Func(func(_ context.Context, item interface{}) (interface{}, error) {
		return item, nil
	}), nil
}

func newDrop(string, map[string]interface{}) (processor.Processor, error) {
	return processor.NewNil(), nil
}
