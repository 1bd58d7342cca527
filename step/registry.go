// Package step provides a registry of step types that can be named in a
// chain definition, along with the built-in types:
//
//   - expr: evaluates an expr-lang expression against the item
//   - filter: drops items for which an expr-lang condition is false
//   - jq: applies a jq query to the item
//   - js: runs a JavaScript function body with the item bound to "item"
//   - passthrough: returns the item unchanged
//   - drop: drops every item
//
// Expressions and scripts are compiled when the step is created, so syntax
// errors surface while the chain is being built.
package step

import (
	"fmt"
	"sort"
	"sync"

	"github.com/MasterOfBinary/itemchain/processor"
)

// Factory creates a processor from a step's configuration. name is the
// step's display name and is meant for error messages.
type Factory func(name string, config map[string]interface{}) (processor.Processor, error)

// Registry maps step types to factories. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// Default is the registry used when none is given. It contains the
// built-in step types.
var Default = NewRegistry()

// NewRegistry creates a registry preloaded with the built-in step types.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	r.Register("expr", NewExprFactory())
	r.Register("filter", NewFilterFactory())
	r.Register("jq", NewJQFactory())
	r.Register("js", NewJSFactory())
	r.Register("passthrough", newPassthrough)
	r.Register("drop", newDrop)
	return r
}

// NewEmptyRegistry creates a registry with no step types.
func NewEmptyRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds or replaces the factory for a step type.
func (r *Registry) Register(stepType string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[stepType] = factory
}

// Lookup returns the factory for a step type.
func (r *Registry) Lookup(stepType string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[stepType]
	if !exists {
		return nil, fmt.Errorf("unknown step type: %s", stepType)
	}
	return factory, nil
}

// Create looks up stepType and calls its factory.
func (r *Registry) Create(stepType, name string, config map[string]interface{}) (processor.Processor, error) {
	factory, err := r.Lookup(stepType)
	if err != nil {
		return nil, err
	}
	return factory(name, config)
}

// Types returns the registered step types in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// stringOption returns a required string option.
func stringOption(stepType, name string, config map[string]interface{}, key string) (string, error) {
	v, _ := config[key].(string)
	if v == "" {
		return "", fmt.Errorf("%s step '%s': '%s' is required", stepType, name, key)
	}
	return v, nil
}
