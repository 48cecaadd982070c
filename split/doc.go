// Package split produces deterministic, non-shuffled train/test index
// partitions over an ordered sequence, for sequential (time-series) model
// evaluation where future data must never leak into a training window.
//
// 🚀 What is a rolling split?
//
//	A fixed-size training window and a fixed-size test horizon slide
//	forward together across the sequence.  Each fold advances the window
//	start by a constant stride, optionally leaving a leakage gap between
//	the end of training and the start of testing:
//
//	    fold 1:  [====train====]  gap  [--test--]
//	    fold 2:      [====train====]  gap  [--test--]
//	    fold 3:          [====train====]  gap  [--test--]
//
//	It is the standard evaluation scheme for:
//	  • Walk-forward backtesting of trading strategies
//	  • Forecast-model selection on sensor / telemetry streams
//	  • Any supervised setup where index order encodes time
//
// ✨ Key features:
//   - window & horizon as absolute counts or fractions of N (Size variant)
//   - optional gap between train end and test start (leakage control)
//   - constant stride derived once: same config + N ⇒ same folds, always
//   - re-entrant: every Split call returns a fresh, independent []Fold
//   - eager config validation with sentinel errors; data-dependent checks
//     deferred to split time
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rollcv/split"
//
//	opts := split.DefaultOptions() // 5 folds, window 60%, horizon 10%
//	opts.NSplits = 10
//	opts.Gap = 5
//
//	s, err := split.New(opts)
//	if err != nil {
//	  // ErrInvalidConfig: bad fold geometry parameters
//	}
//	folds, err := s.Split(1000)
//	if err != nil {
//	  // ErrInvalidGeometry or ErrInsufficientData
//	}
//	for _, f := range folds {
//	  train, test := f.Train.Indices(), f.Test.Indices()
//	  _ = train
//	  _ = test
//	}
//
// Performance:
//
//   - Time:   O(k) for k folds (index arithmetic only)
//   - Memory: O(k); Indices() allocates O(len) on demand
//
// See examples in example_test.go and the console renderer in
// package preview.
package split
