// Package split defines options, sizes, and sentinel errors for the
// rolling-window splitter of github.com/katalvlaran/rollcv.
package split

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for splitter operations.
var (
	// ErrInvalidConfig indicates configuration parameters violate static
	// constraints (NSplits < 2, fraction outside (0,1], negative size or gap).
	// Raised at construction time; never caught internally.
	ErrInvalidConfig = errors.New("split: invalid splitter configuration")

	// ErrInvalidGeometry indicates a resolved window or horizon size is
	// non-positive after fraction conversion. Data-dependent; raised at
	// split time.
	ErrInvalidGeometry = errors.New("split: resolved window or horizon is empty")

	// ErrInsufficientData indicates the sequence is too short to fit the
	// requested fold geometry. Data-dependent; raised at split time.
	ErrInsufficientData = errors.New("split: not enough data for the requested folds")
)

// sizeKind discriminates the Size variant.
type sizeKind int

const (
	// absolute Size carries an exact sample count.
	absolute sizeKind = iota
	// fractional Size carries a fraction of the sequence length.
	fractional
)

// Size is a window or horizon extent: either an absolute sample count or a
// fraction of the sequence length in (0, 1]. Fractions are resolved to
// counts exactly once, at split time, when N becomes known.
type Size struct {
	kind sizeKind
	abs  int
	frac float64
}

// Abs returns a Size holding an absolute sample count.
func Abs(n int) Size {
	return Size{kind: absolute, abs: n}
}

// Frac returns a Size holding a fraction of the sequence length.
func Frac(f float64) Size {
	return Size{kind: fractional, frac: f}
}

// ParseSize parses a Size from its textual form: an integer is an absolute
// sample count, a decimal number is a fraction of the sequence length.
// Range constraints are enforced later, by New.
func ParseSize(text string) (Size, error) {
	if v, err := strconv.Atoi(text); err == nil {
		return Abs(v), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Size{}, fmt.Errorf("%w: cannot parse size %q", ErrInvalidConfig, text)
	}

	return Frac(f), nil
}

// IsFraction reports whether the Size is fractional.
func (s Size) IsFraction() bool {
	return s.kind == fractional
}

// Resolve converts the Size to an absolute sample count for a sequence of
// length n. Fractions truncate toward zero: Frac(0.6).Resolve(1000) == 600,
// Frac(0.999).Resolve(10) == 9.
func (s Size) Resolve(n int) int {
	if s.kind == fractional {
		return int(s.frac * float64(n))
	}

	return s.abs
}

// String renders the Size as configured, not as resolved: "600" for
// absolute counts, "0.6" for fractions.
func (s Size) String() string {
	if s.kind == fractional {
		return strconv.FormatFloat(s.frac, 'g', -1, 64)
	}

	return strconv.Itoa(s.abs)
}

// Options configures a Splitter.
//
// Fields:
//   - NSplits — number of folds to produce; must be ≥ 2.
//   - Window  — training window size, absolute or fractional.
//   - Horizon — test window size, absolute or fractional.
//   - Gap     — samples skipped between train end and test start; ≥ 0.
type Options struct {
	NSplits int
	Window  Size
	Horizon Size
	Gap     int
}

// DefaultOptions returns the canonical configuration:
// 5 folds, window = 60% of N, horizon = 10% of N, no gap.
func DefaultOptions() Options {
	return Options{
		NSplits: 5,
		Window:  Frac(0.6),
		Horizon: Frac(0.1),
		Gap:     0,
	}
}

// Range is a half-open index interval [Start, End) over a sequence.
type Range struct {
	Start, End int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// First returns the first index of the range.
func (r Range) First() int {
	return r.Start
}

// Last returns the final index of the range (End-1).
func (r Range) Last() int {
	return r.End - 1
}

// Indices materializes the range as an explicit index slice, for pipelines
// that gather rows by position. Allocates O(Len) per call.
func (r Range) Indices() []int {
	out := make([]int, 0, r.Len())

	var i int // current index
	for i = r.Start; i < r.End; i++ {
		out = append(out, i)
	}

	return out
}

// String renders the range as "[start, end)".
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Fold is one (train, test) pair produced by the splitter. Train and Test
// never overlap in valid geometry; Test.Start == Train.End + gap.
type Fold struct {
	Train Range
	Test  Range
}

// Interface is the capability set expected by model-evaluation pipelines:
// fold generation, fold count, and a textual configuration summary.
// Splitter satisfies it; custom cross-validators may too.
type Interface interface {
	// Split partitions a sequence of length n into folds.
	Split(n int) ([]Fold, error)
	// NSplits returns the configured fold count, independent of data.
	NSplits() int
	// String summarizes the configuration for diagnostics.
	String() string
}
