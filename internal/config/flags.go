package config

// This file builds the cobra root command and its flags.
// Flags are grouped into output, detection, sorting, listing and display.
// Negated flags (e.g. --no-missing) are applied after parsing so Config
// defaults hold unless set.

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/backmassage/lsseq/internal/sequence"
)

// UsageError marks a bad command line. The caller exits with status 2.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// RunFunc receives the final configuration once flags, environment and
// validation have been applied.
type RunFunc func(ctx context.Context, cfg *Config) error

// NewCommand returns the lsseq root command bound to cfg.
func NewCommand(cfg *Config, version string, run RunFunc) *cobra.Command {
	var negated negatedFlags

	cmd := &cobra.Command{
		Use:   "lsseq [flags] [file|dir ...]",
		Short: "List directory contents with image sequences condensed to one line",
		Long: `lsseq lists files like ls, but collapses numbered image sequences
(name.0001.exr, name.0002.exr, ...) into a single entry and reports missing
and zero-length frames. Output can be written in nuke, rv, shake or glob
syntax for pasting into other tools.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Paths = args
			applyNegatedFlags(cfg, &negated)

			env, err := LoadEnv(cfg.EnvFile)
			if err != nil {
				return &UsageError{err}
			}
			env.Apply(cfg, cmd.Flags().Changed)

			if err := cfg.Validate(); err != nil {
				return &UsageError{err}
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.SetVersionTemplate("lsseq v{{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{err}
	})

	fs := cmd.Flags()
	fs.SortFlags = false
	defineOutputFlags(fs, cfg, &negated)
	defineDetectionFlags(fs, &negated)
	defineSortFlags(fs, cfg)
	defineListingFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	return cmd
}

// negatedFlags holds boolean flags that are applied after parsing.
type negatedFlags struct {
	loose      bool
	noMissing  bool
	noZero     bool
	forceColor bool
	noColor    bool
}

// defineOutputFlags registers -f/--format, the error-frame annotations,
// --extremes and the path prefix options.
func defineOutputFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.VarP(&formatValue{&cfg.Format}, "format", "f",
		"Output format: "+strings.Join(sequence.DialectNames(), " | "))
	fs.BoolVar(&n.noMissing, "no-missing", false, "Do not list missing frames")
	fs.BoolVar(&n.noZero, "no-zero", false, "Do not list zero-length frames")
	fs.BoolVarP(&cfg.CombineErrorFrames, "combine", "c", false, "List missing and zero-length frames as one set")
	fs.BoolVarP(&cfg.Extremes, "extremes", "e", false, "Print only the first and last frame of each sequence")
	fs.BoolVarP(&cfg.PrependPath, "prepend-path", "p", false, "Prefix names with the directory as given")
	fs.BoolVarP(&cfg.PrependPathAbs, "prepend-path-abs", "P", false, "Prefix names with the absolute directory")
}

// defineDetectionFlags registers -l/--loose.
func defineDetectionFlags(fs *pflag.FlagSet, n *negatedFlags) {
	fs.BoolVarP(&n.loose, "loose", "l", false, "Also accept _ as the separator before the frame number")
}

// defineSortFlags registers -t/--time, --time-compare and -r/--reverse.
func defineSortFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.SortByMTime, "time", "t", false, "Sort by modification time, newest first")
	fs.Var(&timeCompareValue{&cfg.TimeCompare}, "time-compare", "Frame time used for a sequence: oldest | median | newest")
	fs.BoolVarP(&cfg.Reverse, "reverse", "r", false, "Reverse the sort order")
}

// defineListingFlags registers recursion and entry filters.
func defineListingFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.Recursive, "recursive", "R", false, "List subdirectories recursively")
	fs.BoolVarP(&cfg.All, "all", "a", false, "Include entries starting with .")
	fs.BoolVarP(&cfg.OnlySequences, "only-sequences", "s", false, "Hide files and directories that are not sequences or movies")
	fs.BoolVarP(&cfg.OnlyImages, "only-images", "i", false, "List image sequences only")
	fs.BoolVarP(&cfg.OnlyMovies, "only-movies", "o", false, "List movies only")
	fs.StringArrayVarP(&cfg.Ignore, "ignore", "I", nil, "Skip names matching a glob pattern (repeatable)")
}

// defineDisplayFlags registers --color, --no-color, -v/--verbose, --log and --env-file.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored diagnostics")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored diagnostics")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log debug details and a summary to stderr")
	fs.StringVar(&cfg.LogFile, "log", "", "Append diagnostics to file")
	fs.StringVar(&cfg.EnvFile, "env-file", "", "Read LSSEQ_* settings from this dotenv file")
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	cfg.StrictSeparator = !n.loose
	if n.noMissing {
		cfg.ShowMissing = false
	}
	if n.noZero {
		cfg.ShowZero = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// pflag.Value adapters so enum fields can be set with fs.Var.

type formatValue struct{ p *string }

func (f *formatValue) String() string { return *f.p }
func (f *formatValue) Type() string   { return "format" }
func (f *formatValue) Set(s string) error {
	s = strings.ToLower(s)
	if _, ok := sequence.LookupDialect(s); !ok {
		return fmt.Errorf("invalid format %q (use %s)", s, strings.Join(sequence.DialectNames(), ", "))
	}
	*f.p = s
	return nil
}

type timeCompareValue struct{ p *sequence.TimeCompare }

func (t *timeCompareValue) String() string { return string(*t.p) }
func (t *timeCompareValue) Type() string   { return "compare" }
func (t *timeCompareValue) Set(s string) error {
	switch tc := sequence.TimeCompare(strings.ToLower(s)); tc {
	case sequence.TimeOldest, sequence.TimeMedian, sequence.TimeNewest:
		*t.p = tc
	default:
		return fmt.Errorf("invalid time compare %q (use 'oldest', 'median' or 'newest')", s)
	}
	return nil
}
