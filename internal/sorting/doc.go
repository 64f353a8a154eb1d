// Package sorting implements the instrumented sorting engine.
//
// Every algorithm reports each comparison, swap and write, plus every
// visible mutation of the sequence, through a [Sink]. The same code path
// therefore serves both silent measurement and live visualization:
//
//   - [Counter]: tallies operations, no I/O, no delay
//   - a visualizing sink (see package viz): redraws a frame per mutation
//
// Algorithms are selected through the closed [Algorithm] enum and run with
// [Run], which checks preconditions before touching the data.
//
// # Example
//
//	c := sorting.NewCounter()
//	if err := sorting.Run(sorting.Quick, data, c); err != nil {
//		return err
//	}
//	fmt.Println(c.Comparisons)
//
// # Thread Safety
//
// A run is a single synchronous call. Sinks and the data slice must not be
// shared with another goroutine while it executes.
package sorting
