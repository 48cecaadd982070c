// Package preview renders console previews of rolling train/test splits
// produced by package split.
//
// 🚀 What does it draw?
//
//	Two independent views of the same fold arithmetic:
//
//	  • StyleText — a per-fold summary with first/last indices and lengths.
//	  • StyleBar  — one width-scaled ASCII bar per fold, training cells
//	    filled with one symbol and test cells with another:
//
//	      Fold  1: ================                    --
//	      Fold  2:     ================                    --
//
// ✨ Key features:
//   - Render returns the full text or an error - a pure result boundary
//   - Preview converts data-dependent errors (too little data, empty
//     geometry) into a printed explanation with a remediation hint;
//     configuration mistakes still fail hard
//   - width auto-detection from the terminal (80-column fallback)
//   - optional color via lipgloss; NO_COLOR is honored
//
// ⚙️ Usage:
//
//	import (
//	  "os"
//
//	  "github.com/katalvlaran/rollcv/preview"
//	  "github.com/katalvlaran/rollcv/split"
//	)
//
//	s, _ := split.New(split.DefaultOptions())
//
//	opts := preview.DefaultOptions()
//	opts.Style = preview.StyleBar
//	_ = preview.Preview(os.Stdout, s, 1000, opts)
//
// Rendering never changes the underlying index arithmetic: both styles
// consume the same []Fold that an evaluation pipeline would.
package preview
