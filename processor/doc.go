// Package processor contains single-item processors and the Composite that
// chains them. A Processor receives one item and returns the transformed
// item, nil when the item produced no result, or an error.
//
// Composite threads an item through its processors in order. The first
// empty result ends the chain for that item:
//
//	c, err := processor.NewComposite(
//		&processor.Transform{Func: func(v interface{}) (interface{}, error) {
//			return v.(int) * 2, nil
//		}},
//		&processor.Transform{Func: func(v interface{}) (interface{}, error) {
//			return fmt.Sprintf("val:%d", v), nil
//		}},
//	)
//	if err != nil {
//		// no processors configured
//	}
//	out, _ := c.Process(ctx, 5)
//	fmt.Println(out)
//
// Output:
//
//	val:10
//
// Other processors in this package can be used as chain steps:
//
// - Transform: For transforming item values
// - Filter: For dropping items based on custom predicates
// - Error: For simulating failures
// - Nil: For dropping every item
// - Channel: For copying items to an output channel
// - Collect: For recording items as they pass
//
// LoggingProcessor and StatsProcessor wrap any Processor with logging and
// statistics. Step, Then and Erase build chains whose types are checked at
// compile time.
package processor
