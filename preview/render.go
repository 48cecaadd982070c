// Package preview - the rendering pipeline.
//
// Render is the programmatic contract: it validates renderer options,
// generates the full fold sequence, and returns the rendered text or an
// error. Preview is the human-facing boundary on top of it: data-dependent
// split failures become diagnostic output instead of errors, because a
// preview exists to tell the user why their geometry does not fit.
package preview

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/katalvlaran/rollcv/split"
)

// cell classes for the bar grid.
const (
	cellBlank byte = iota
	cellTrain
	cellTest
)

const fallbackWidth = 80

// Segment colors, colorblind-safe pairing: blue for training, amber for test.
var (
	trainColor = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#3B82F6"}
	testColor  = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

	trainStyle = lipgloss.NewStyle().Foreground(trainColor)
	testStyle  = lipgloss.NewStyle().Foreground(testColor)
)

// Render produces the preview text for a sequence of length n.
//
// Contracts:
//   - s must be non-nil; opts.Style must be a known style; fill characters
//     must be one cell wide (ErrNilSplitter/ErrUnknownStyle/ErrBadFillChar).
//   - Split-time errors (ErrInvalidGeometry, ErrInsufficientData) propagate
//     unchanged; the caller decides between printing and raising.
//
// Complexity: O(k·width) for k folds in bar style, O(k) in text style.
func Render(s split.Interface, n int, opts Options) (string, error) {
	if s == nil {
		return "", ErrNilSplitter
	}
	if err := validateRenderOptions(opts); err != nil {
		return "", err
	}

	folds, err := s.Split(n)
	if err != nil {
		return "", err
	}

	switch opts.Style {
	case StyleText:
		return renderText(s, folds), nil
	case StyleBar:
		return renderBar(s, folds, n, opts), nil
	default:
		// validateRenderOptions already rejected this; keep the branch total.
		return "", fmt.Errorf("%w: %d", ErrUnknownStyle, opts.Style)
	}
}

// Preview renders to w, converting data-dependent split errors into a
// printed explanation plus a remediation hint. Configuration errors
// (unknown style, bad fill chars, nil splitter) still propagate: those are
// programmer mistakes, not geometry diagnostics.
func Preview(w io.Writer, s split.Interface, n int, opts Options) error {
	out, err := Render(s, n, opts)
	if err != nil {
		if errors.Is(err, split.ErrInsufficientData) || errors.Is(err, split.ErrInvalidGeometry) {
			fmt.Fprintf(w, "\nrolling split error: %v\n", err)
			fmt.Fprintln(w, "Hint: reduce n_splits, window_size, or horizon.")

			return nil
		}

		return err
	}

	_, err = io.WriteString(w, out)

	return err
}

// validateRenderOptions rejects unknown styles and fill characters that are
// not exactly one terminal cell wide (wide runes would shear the bar grid).
func validateRenderOptions(opts Options) error {
	if _, ok := styleNames[opts.Style]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownStyle, opts.Style)
	}
	if opts.Style == StyleBar {
		if runewidth.RuneWidth(opts.TrainChar) != 1 {
			return fmt.Errorf("%w: train char %q", ErrBadFillChar, opts.TrainChar)
		}
		if runewidth.RuneWidth(opts.TestChar) != 1 {
			return fmt.Errorf("%w: test char %q", ErrBadFillChar, opts.TestChar)
		}
	}

	return nil
}

// renderText writes the per-fold summary: 1-based index, inclusive
// first/last indices, and lengths.
func renderText(s split.Interface, folds []split.Fold) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d folds\n\n", s, len(folds))

	for i, f := range folds {
		fmt.Fprintf(&b, "Fold %d:\n", i+1)
		fmt.Fprintf(&b, "  Train: %d -> %d  (len=%d)\n", f.Train.First(), f.Train.Last(), f.Train.Len())
		fmt.Fprintf(&b, "  Test : %d -> %d  (len=%d)\n", f.Test.First(), f.Test.Last(), f.Test.Len())
		b.WriteByte('\n')
	}

	return b.String()
}

// renderBar writes one scaled bar per fold. Sample positions map onto the
// cell grid by floor(sample·width/n); end cells clamp to width−1. Train
// cells are painted first, test cells second - test painting always runs,
// last writer wins on scaling collisions.
func renderBar(s split.Interface, folds []split.Fold, n int, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = autoWidth()
	}

	useColor := opts.Color && os.Getenv("NO_COLOR") == ""
	idxWidth := len(strconv.Itoa(len(folds)))
	if idxWidth < 2 {
		idxWidth = 2
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: width=%d\n\n", s, width)

	cells := make([]byte, width)
	for i, f := range folds {
		for c := range cells {
			cells[c] = cellBlank
		}
		paintRange(cells, f.Train, n, cellTrain)
		paintRange(cells, f.Test, n, cellTest)

		fmt.Fprintf(&b, "Fold %*d: %s\n", idxWidth, i+1, barLine(cells, opts, useColor))
	}

	return b.String()
}

// paintRange fills the cells covered by r on the [0,width) grid.
func paintRange(cells []byte, r split.Range, n int, class byte) {
	width := len(cells)
	start := r.First() * width / n
	end := r.Last() * width / n
	if end > width-1 {
		end = width - 1
	}

	var c int // current cell
	for c = start; c <= end && c < width; c++ {
		cells[c] = class
	}
}

// barLine stringifies a cell grid, grouping consecutive cells of the same
// class so color codes wrap whole segments rather than single runes.
func barLine(cells []byte, opts Options, useColor bool) string {
	var b strings.Builder

	var (
		i, j int  // segment bounds
		cls  byte // class of the current segment
	)
	for i = 0; i < len(cells); i = j {
		cls = cells[i]
		for j = i; j < len(cells) && cells[j] == cls; j++ {
		}

		seg := segmentText(cls, j-i, opts)
		if useColor && cls != cellBlank {
			seg = segmentStyle(cls).Render(seg)
		}
		b.WriteString(seg)
	}

	return b.String()
}

// segmentText repeats the class symbol across a segment of length n.
func segmentText(class byte, n int, opts Options) string {
	switch class {
	case cellTrain:
		return strings.Repeat(string(opts.TrainChar), n)
	case cellTest:
		return strings.Repeat(string(opts.TestChar), n)
	default:
		return strings.Repeat(" ", n)
	}
}

// segmentStyle maps a non-blank cell class to its lipgloss style.
func segmentStyle(class byte) lipgloss.Style {
	if class == cellTest {
		return testStyle
	}

	return trainStyle
}

// autoWidth resolves the bar width from the terminal, falling back to 80
// columns when stdout is not a terminal.
func autoWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}

	return width
}
