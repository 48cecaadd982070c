package preview_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/rollcv/preview"
	"github.com/katalvlaran/rollcv/split"
)

// //////////////////////////////////////////////////////////////////////////////
// ExamplePreview
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Summarize 2 rolling folds over 10 samples: a 4-sample window, a
//	2-sample horizon, and a 1-sample leakage gap.
//
// Geometry:
//   - maxStart = 10−4−1−2 = 3, step = 3/1 = 3
//
// Use case:
//
//	Sanity-check fold placement on the console before wiring a splitter
//	into an evaluation loop.
func ExamplePreview() {
	s, err := split.New(split.Options{
		NSplits: 2,
		Window:  split.Abs(4),
		Horizon: split.Abs(2),
		Gap:     1,
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	if err = preview.Preview(os.Stdout, s, 10, preview.DefaultOptions()); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// Splitter(n_splits=2, window=4, horizon=2, gap=1): 2 folds
	//
	// Fold 1:
	//   Train: 0 -> 3  (len=4)
	//   Test : 5 -> 6  (len=2)
	//
	// Fold 2:
	//   Train: 3 -> 6  (len=4)
	//   Test : 8 -> 9  (len=2)
}

// //////////////////////////////////////////////////////////////////////////////
// ExamplePreview_insufficientData
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The documented infeasible case: 10 samples cannot host 10 folds of
//	window 6 + gap 5 + horizon 1. Preview converts the failure into a
//	diagnostic with a remediation hint instead of returning an error.
func ExamplePreview_insufficientData() {
	s, err := split.New(split.Options{
		NSplits: 10,
		Window:  split.Frac(0.6),
		Horizon: split.Frac(0.1),
		Gap:     5,
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	if err = preview.Preview(os.Stdout, s, 10, preview.DefaultOptions()); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// rolling split error: split: not enough data for the requested folds: need at least 21 samples for 10 folds, got 10
	// Hint: reduce n_splits, window_size, or horizon.
}
