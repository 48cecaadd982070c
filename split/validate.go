// Package split - validation helpers for splitter construction and fold
// generation.
//
// Validation happens in two stages:
//  1. Static checks at construction (Options only, no data in sight).
//  2. Data-dependent checks at split time, once the sequence length is known
//     and fractional sizes can be resolved.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go,
//     wrapped with %w so errors.Is keeps working while messages stay readable.
package split

import "fmt"

// validateOptions performs the static (data-independent) stage. It rejects
// fold counts below 2, fractional sizes outside (0,1], and negative sizes
// or gaps. Zero absolute sizes pass here and surface as ErrInvalidGeometry
// at split time, mirroring the deferred feasibility contract.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.NSplits < 2 {
		return fmt.Errorf("%w: NSplits must be at least 2, got %d", ErrInvalidConfig, opts.NSplits)
	}
	if err := validateSize(opts.Window, "Window"); err != nil {
		return err
	}
	if err := validateSize(opts.Horizon, "Horizon"); err != nil {
		return err
	}
	if opts.Gap < 0 {
		return fmt.Errorf("%w: Gap must be non-negative, got %d", ErrInvalidConfig, opts.Gap)
	}

	return nil
}

// validateSize checks one Size field: fractions must lie in (0,1],
// absolute counts must be non-negative.
//
// Complexity: O(1).
func validateSize(s Size, field string) error {
	if s.IsFraction() {
		if s.frac <= 0 || s.frac > 1 {
			return fmt.Errorf("%w: fractional %s must be in (0, 1], got %g", ErrInvalidConfig, field, s.frac)
		}

		return nil
	}
	if s.abs < 0 {
		return fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalidConfig, field, s.abs)
	}

	return nil
}

// geometry holds the fold geometry resolved against a concrete sequence
// length: absolute window/horizon counts and the constant stride.
type geometry struct {
	window  int // resolved training window length
	horizon int // resolved test window length
	step    int // stride between consecutive train starts
}

// resolveGeometry performs the data-dependent stage. It resolves fractional
// sizes against n, rejects empty windows, verifies that n can host all folds
// (window + gap + horizon plus one sample of stride per extra fold), and
// derives the constant step by floor division over the feasible start span.
//
// The floor division may leave trailing samples past the last horizon
// unused; that slack is intentional, not a defect.
//
// Complexity: O(1).
func resolveGeometry(opts Options, n int) (geometry, error) {
	var g geometry
	g.window = opts.Window.Resolve(n)
	g.horizon = opts.Horizon.Resolve(n)

	if g.window <= 0 || g.horizon <= 0 {
		return geometry{}, fmt.Errorf("%w: window=%d, horizon=%d for n=%d",
			ErrInvalidGeometry, g.window, g.horizon, n)
	}

	// Minimum footprint: one fold's span plus a one-sample stride between
	// the first and last fold starts.
	totalRequired := g.window + opts.Gap + g.horizon + (opts.NSplits - 1)
	if n < totalRequired {
		return geometry{}, fmt.Errorf("%w: need at least %d samples for %d folds, got %d",
			ErrInsufficientData, totalRequired, opts.NSplits, n)
	}

	// Last feasible train-start index; NSplits >= 2 keeps the divisor >= 1.
	maxStart := n - g.window - opts.Gap - g.horizon
	g.step = maxStart / (opts.NSplits - 1)

	return g, nil
}
