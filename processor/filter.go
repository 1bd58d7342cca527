package processor

import "context"

// FilterFunc is a function that decides whether an item should continue
// down the chain. Return true to keep the item, false to drop it.
type FilterFunc func(item interface{}) bool

// Filter is a processor that drops items based on a predicate function.
// A dropped item produces an empty result, which ends a Composite chain
// for that item. It is not an error.
type Filter struct {
	// Predicate is a function that returns true for items that should be kept
	// and false for items that should be dropped.
	// If nil, no filtering occurs (all items pass through).
	Predicate FilterFunc

	// InvertMatch inverts the predicate logic: if true, items matching the predicate
	// will be dropped instead of kept.
	// Default is false (keep matching items).
	InvertMatch bool
}

// Process implements the Processor interface by filtering the item according to the predicate.
func (p *Filter) Process(_ context.Context, item interface{}) (interface{}, error) {
	if p.Predicate == nil {
		return item, nil
	}

	keep := p.Predicate(item)
	if p.InvertMatch {
		keep = !keep
	}

	if !keep {
		return nil, nil
	}
	return item, nil
}
