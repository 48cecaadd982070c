package split_test

import (
	"fmt"

	"github.com/katalvlaran/rollcv/split"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSplitter_Split
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Partition 1000 ordered samples into 10 rolling folds with a 60% training
//	window, a 10% test horizon, and 5 samples of leakage gap.
//
// Geometry:
//   - window  = 600, horizon = 100
//   - maxStart = 1000−600−5−100 = 295, step = 295/9 = 32
//
// Use case:
//
//	Walk-forward evaluation of a forecasting model where each fold trains on
//	the recent past and scores on the near future.
//
// Complexity: O(k) time for k folds.
func ExampleSplitter_Split() {
	opts := split.Options{
		NSplits: 10,
		Window:  split.Frac(0.6),
		Horizon: split.Frac(0.1),
		Gap:     5,
	}

	s, err := split.New(opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	folds, err := s.Split(1000)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	first, last := folds[0], folds[len(folds)-1]
	fmt.Printf("folds=%d\n", len(folds))
	fmt.Printf("first: train=%s test=%s\n", first.Train, first.Test)
	fmt.Printf("last:  train=%s test=%s\n", last.Train, last.Test)
	// Output:
	// folds=10
	// first: train=[0, 600) test=[605, 705)
	// last:  train=[288, 888) test=[893, 993)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSplitter_String
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Log the splitter configuration before running an evaluation pipeline.
//	Sizes render as configured, so fractional geometry stays readable even
//	before the sequence length is known.
func ExampleSplitter_String() {
	s, err := split.New(split.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(s)
	fmt.Println("folds:", s.NSplits())
	// Output:
	// Splitter(n_splits=5, window=0.6, horizon=0.1, gap=0)
	// folds: 5
}
