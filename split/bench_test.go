package split_test

import (
	"testing"

	"github.com/katalvlaran/rollcv/split"
)

// benchmarkSplit runs Split with k folds over a sequence of length n.
// It constructs the splitter outside the loop and fails on unexpected errors.
func benchmarkSplit(b *testing.B, k, n int) {
	opts := split.DefaultOptions()
	opts.NSplits = k

	s, err := split.New(opts)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = s.Split(n); err != nil {
			b.Fatalf("Split failed: %v", err)
		}
	}
}

// BenchmarkSplit_Small benchmarks 5 folds over 1k samples.
func BenchmarkSplit_Small(b *testing.B) {
	benchmarkSplit(b, 5, 1_000)
}

// BenchmarkSplit_ManyFolds benchmarks 100 folds over 100k samples.
func BenchmarkSplit_ManyFolds(b *testing.B) {
	benchmarkSplit(b, 100, 100_000)
}

// BenchmarkRange_Indices benchmarks index materialization of a 600-wide range.
func BenchmarkRange_Indices(b *testing.B) {
	r := split.Range{Start: 0, End: 600}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Indices()
	}
}
