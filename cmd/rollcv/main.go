// Package main provides the CLI entrypoint for rollcv: a console preview of
// deterministic rolling train/test splits.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rollcv/config"
	"github.com/katalvlaran/rollcv/preview"
	"github.com/katalvlaran/rollcv/split"
)

const (
	defaultSamples = 1000
	defaultSplits  = 5
	defaultWindow  = "0.6"
	defaultHorizon = "0.1"
	defaultGap     = 0
	defaultStyle   = "default"
	defaultWidth   = 80
	defaultTrain   = "="
	defaultTest    = "-"
)

var (
	flagSamples int
	flagSplits  int
	flagWindow  string
	flagHorizon string
	flagGap     int
	flagStyle   string
	flagWidth   int
	flagTrain   string
	flagTest    string
	flagColor   bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rollcv",
		Short:         "Preview rolling train/test splits for time-series evaluation",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPreviewCmd,
	}

	rootCmd.Flags().IntVar(&flagSamples, "samples", defaultSamples, "sequence length N")
	rootCmd.Flags().IntVar(&flagSplits, "splits", defaultSplits, "number of folds (>= 2)")
	rootCmd.Flags().StringVar(&flagWindow, "window", defaultWindow, "training window: sample count or fraction of N")
	rootCmd.Flags().StringVar(&flagHorizon, "horizon", defaultHorizon, "test horizon: sample count or fraction of N")
	rootCmd.Flags().IntVar(&flagGap, "gap", defaultGap, "samples skipped between train end and test start")
	rootCmd.Flags().StringVar(&flagStyle, "style", defaultStyle, "preview style: default or bar")
	rootCmd.Flags().IntVar(&flagWidth, "width", defaultWidth, "bar width in cells (<= 0: fit terminal)")
	rootCmd.Flags().StringVar(&flagTrain, "train-char", defaultTrain, "bar symbol for training cells")
	rootCmd.Flags().StringVar(&flagTest, "test-char", defaultTest, "bar symbol for test cells")
	rootCmd.Flags().BoolVar(&flagColor, "color", false, "colorize bar segments")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runPreviewCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "splits", &flagSplits, fileCfg.Split.NSplits)
	applyStringConfig(cmd, "window", &flagWindow, fileCfg.Split.Window)
	applyStringConfig(cmd, "horizon", &flagHorizon, fileCfg.Split.Horizon)
	applyIntConfig(cmd, "gap", &flagGap, fileCfg.Split.Gap)
	applyIntConfig(cmd, "width", &flagWidth, fileCfg.Preview.Width)
	applyStringConfig(cmd, "style", &flagStyle, fileCfg.Preview.Style)
	applyStringConfig(cmd, "train-char", &flagTrain, fileCfg.Preview.TrainChar)
	applyStringConfig(cmd, "test-char", &flagTest, fileCfg.Preview.TestChar)
	applyBoolConfig(cmd, "color", &flagColor, fileCfg.Preview.Color)

	if flagSamples <= 0 {
		return fmt.Errorf("--samples must be > 0")
	}

	window, err := split.ParseSize(flagWindow)
	if err != nil {
		return fmt.Errorf("invalid --window: %w", err)
	}
	horizon, err := split.ParseSize(flagHorizon)
	if err != nil {
		return fmt.Errorf("invalid --horizon: %w", err)
	}

	s, err := split.New(split.Options{
		NSplits: flagSplits,
		Window:  window,
		Horizon: horizon,
		Gap:     flagGap,
	})
	if err != nil {
		return err
	}

	style, err := preview.ParseStyle(flagStyle)
	if err != nil {
		return err
	}
	trainChar, err := singleRune("train-char", flagTrain)
	if err != nil {
		return err
	}
	testChar, err := singleRune("test-char", flagTest)
	if err != nil {
		return err
	}

	opts := preview.Options{
		Width:     flagWidth,
		Style:     style,
		TrainChar: trainChar,
		TestChar:  testChar,
		Color:     flagColor,
	}

	return preview.Preview(cmd.OutOrStdout(), s, flagSamples, opts)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}

	return nil
}

// singleRune extracts the one rune a char flag must carry.
func singleRune(name, value string) (rune, error) {
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("--%s must be exactly one character, got %q", name, value)
	}
	r, _ := utf8.DecodeRuneInString(value)

	return r, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# rollcv configuration
# Uncomment a value to enable it. CLI flags override config values.

[split]
# n-splits = %d          # Number of folds (>= 2)
# window = %q          # Training window: sample count or fraction of N
# horizon = %q         # Test horizon: sample count or fraction of N
# gap = %d               # Samples skipped between train end and test start

[preview]
# style = %q       # "default" (text summary) or "bar" (ascii visual)
# width = %d            # Bar width in cells (<= 0: fit terminal)
# train-char = %q       # Bar symbol for training cells
# test-char = %q        # Bar symbol for test cells
# color = false         # Colorize bar segments
`,
		defaultSplits,
		defaultWindow,
		defaultHorizon,
		defaultGap,
		defaultStyle,
		defaultWidth,
		defaultTrain,
		defaultTest,
	)
}
