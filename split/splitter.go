// Package split - the rolling-window splitter itself.
//
// A Splitter is immutable once constructed: configuration is validated
// eagerly by New, and every Split call recomputes fold geometry from
// scratch against the supplied sequence length. There is no shared mutable
// state between calls, so a single Splitter may be reused freely by a
// renderer and an evaluation loop at the same time.
package split

import "fmt"

// Splitter partitions an ordered sequence of length n into NSplits rolling
// (train, test) folds. Construct with New; the zero value is not usable.
type Splitter struct {
	opts Options
}

// compile-time conformance to the cross-validation capability set.
var _ Interface = (*Splitter)(nil)

// New validates opts eagerly and returns an immutable Splitter.
//
// Contracts:
//   - opts.NSplits >= 2.
//   - Fractional Window/Horizon in (0, 1]; absolute sizes non-negative.
//   - opts.Gap >= 0.
//
// Errors: ErrInvalidConfig on any static violation. Data-dependent
// feasibility is deferred to Split, since fractional sizes need N.
//
// Complexity: O(1).
func New(opts Options) (*Splitter, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	return &Splitter{opts: opts}, nil
}

// Split partitions a sequence of length n into exactly NSplits folds.
//
// Algorithm:
//  1. Resolve Window/Horizon to absolute counts (fractions truncate).
//  2. Reject empty resolved sizes (ErrInvalidGeometry).
//  3. Reject n below window+gap+horizon+(NSplits-1) (ErrInsufficientData).
//  4. step = (n - window - gap - horizon) / (NSplits - 1), floor division.
//  5. Fold i: train = [i*step, i*step+window), test starts gap samples
//     after train end and spans horizon samples.
//
// Each call returns a freshly allocated slice; the same config and n always
// produce identical folds. Trailing samples past the last horizon may stay
// unused when the start span does not divide evenly - accepted slack.
//
// Complexity: O(NSplits) time and space.
func (s *Splitter) Split(n int) ([]Fold, error) {
	g, err := resolveGeometry(s.opts, n)
	if err != nil {
		return nil, err
	}

	folds := make([]Fold, 0, s.opts.NSplits)

	var (
		i         int // fold index
		start     int // train-start index of fold i
		testStart int // test-start index of fold i
	)
	for i = 0; i < s.opts.NSplits; i++ {
		start = i * g.step
		testStart = start + g.window + s.opts.Gap
		folds = append(folds, Fold{
			Train: Range{Start: start, End: start + g.window},
			Test:  Range{Start: testStart, End: testStart + g.horizon},
		})
	}

	return folds, nil
}

// NSplits returns the configured fold count. It never depends on data, so
// pipelines may allocate per-fold resources before seeing any sequence.
func (s *Splitter) NSplits() int {
	return s.opts.NSplits
}

// String summarizes the configuration for diagnostics and logging.
// Sizes render as configured (fraction or count), not as resolved.
func (s *Splitter) String() string {
	return fmt.Sprintf("Splitter(n_splits=%d, window=%s, horizon=%s, gap=%d)",
		s.opts.NSplits, s.opts.Window, s.opts.Horizon, s.opts.Gap)
}
