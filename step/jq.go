package step

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"

	"github.com/MasterOfBinary/itemchain/processor"
)

// JQStep applies a jq query to the item using gojq. The item is converted
// to plain JSON values first, so structs and typed maps are accepted.
//
// A query that yields nothing drops the item, one result replaces it, and
// several results replace it with a []interface{} of all of them.
type JQStep struct {
	name       string
	expression string
	code       *gojq.Code
}

// NewJQFactory returns a Factory for "jq" steps. The "expression" option is
// required.
func NewJQFactory() Factory {
	return func(name string, config map[string]interface{}) (processor.Processor, error) {
		expression, err := stringOption("jq", name, config, "expression")
		if err != nil {
			return nil, err
		}

		// Parse and compile at construction time so syntax errors are
		// caught while the chain is built.
		query, err := gojq.Parse(expression)
		if err != nil {
			return nil, fmt.Errorf("jq step '%s': invalid expression %q: %w", name, expression, err)
		}

		code, err := gojq.Compile(query)
		if err != nil {
			return nil, fmt.Errorf("jq step '%s': failed to compile expression %q: %w", name, expression, err)
		}

		return &JQStep{name: name, expression: expression, code: code}, nil
	}
}

// Process implements processor.Processor.
func (s *JQStep) Process(ctx context.Context, item interface{}) (interface{}, error) {
	input, err := normalizeJSON(item)
	if err != nil {
		return nil, fmt.Errorf("jq step '%s': failed to normalize input: %w", s.name, err)
	}

	iter := s.code.RunWithContext(ctx, input)
	var results []interface{}
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return nil, fmt.Errorf("jq step '%s': %w", s.name, err)
		}
		results = append(results, v)
	}

	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}

// normalizeJSON converts v to the types gojq understands by round-tripping
// it through encoding/json. Numbers are decoded as json.Number, which gojq
// turns into int or *big.Int, so large integer IDs keep every digit.
func normalizeJSON(v interface{}) (interface{}, error) {
	switch v.(type) {
	case nil, bool, string, float64, int:
		return v, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var out interface{}
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
