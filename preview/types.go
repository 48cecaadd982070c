// Package preview defines options, styles, and sentinel errors for the
// rolling-split console renderer.
package preview

import (
	"errors"
	"fmt"
)

// Sentinel errors for renderer configuration. All of them are programmer
// errors: Preview never converts them into diagnostic output.
var (
	// ErrUnknownStyle indicates a Style value outside the known set.
	ErrUnknownStyle = errors.New("preview: unknown style")
	// ErrBadFillChar indicates a train/test symbol that is not a single
	// terminal cell wide.
	ErrBadFillChar = errors.New("preview: fill characters must be one cell wide")
	// ErrNilSplitter indicates a nil splitter was passed to Render/Preview.
	ErrNilSplitter = errors.New("preview: splitter must be non-nil")
)

// Style selects the preview rendering strategy.
type Style int

const (
	// StyleText prints a per-fold summary: 1-based index, train first/last
	// indices and length, test first/last indices and length.
	StyleText Style = iota
	// StyleBar prints one width-scaled ASCII bar per fold.
	StyleBar
)

// styleNames maps Style values to their wire/CLI names.
var styleNames = map[Style]string{
	StyleText: "default",
	StyleBar:  "bar",
}

// String returns the CLI name of the style, or "unknown" for bad values.
func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}

	return "unknown"
}

// ParseStyle resolves a CLI/config style name ("default" or "bar").
func ParseStyle(name string) (Style, error) {
	for style, n := range styleNames {
		if n == name {
			return style, nil
		}
	}

	return 0, fmt.Errorf("%w: %q (use \"default\" or \"bar\")", ErrUnknownStyle, name)
}

// Options configures a preview rendering.
//
// Fields:
//   - Width     — bar width in cells; values ≤ 0 resolve from the terminal
//     with an 80-column fallback. Ignored by StyleText.
//   - Style     — StyleText or StyleBar.
//   - TrainChar — symbol for training cells in bar view; one cell wide.
//   - TestChar  — symbol for test cells in bar view; one cell wide.
//   - Color     — colorize bar segments (suppressed by NO_COLOR).
type Options struct {
	Width     int
	Style     Style
	TrainChar rune
	TestChar  rune
	Color     bool
}

// DefaultOptions returns the canonical preview configuration:
// width 80, text style, '=' for train cells, '-' for test cells, no color.
func DefaultOptions() Options {
	return Options{
		Width:     80,
		Style:     StyleText,
		TrainChar: '=',
		TestChar:  '-',
		Color:     false,
	}
}
