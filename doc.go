// Package rollcv is a deterministic rolling-window cross-validation toolkit
// for ordered (time-series) data — fold generation with leakage control,
// plus a console preview of the resulting train/test geometry.
//
// 🚀 What is rollcv?
//
//	A small, focused library that partitions an ordered sequence of length N
//	into k rolling folds for walk-forward model evaluation:
//		• Fixed-size training window and test horizon (counts or fractions of N)
//		• Optional leakage gap between train end and test start
//		• Constant stride between folds, derived once — fully deterministic
//		• Text and scaled ASCII-bar previews that share the fold arithmetic
//
// ✨ Why choose rollcv?
//
//   - No future leakage – test indices always follow the training window
//   - Re-entrant – every Split call returns a fresh, independent fold list
//   - Eager validation – bad geometry fails before any data is seen
//   - Console-friendly – preview folds before wiring an evaluation loop
//
// Everything is organized under three packages and a CLI:
//
//	split/     — fold geometry: Size variant, Splitter, sentinel errors
//	preview/   — text & bar renderers over the splitter output
//	config/    — TOML file configuration for the CLI
//	cmd/rollcv — console preview tool
//
// Quick ASCII example:
//
//	Fold  1: ================          --
//	Fold  2:     ================          --
//	Fold  3:         ================          --
//
// Each bar is one fold: '=' cells train, '-' cells test, blank cells unused.
//
//	go get github.com/katalvlaran/rollcv/split
package rollcv
