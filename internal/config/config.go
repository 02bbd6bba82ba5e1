// Package config holds runtime configuration: defaults, environment and
// CLI flag loading, and validation. The resulting [Config] is built once at
// startup and passed by pointer to the packages that need it; nothing here
// is global state.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/backmassage/lsseq/internal/sequence"
)

// --- Defaults ---

// DefaultImageExtensions is used unless LSSEQ_IMAGE_EXTENSION replaces it.
const DefaultImageExtensions = "ari:cin:dpx:exr:gif:hdr:iff:jpeg:jpg:pic:png:psd:rat:rgb:rgba:sgi:tga:tif:tiff:tx:tex:bmp"

// DefaultMovieExtensions is used unless LSSEQ_MOV_EXTENSION replaces it.
const DefaultMovieExtensions = "avi:m4v:mkv:mov:mp4:mpeg:mpg:mxf:webm"

// DefaultFormat is the output dialect when neither --format nor
// LSSEQ_FORMAT is given.
const DefaultFormat = "native"

// ColorMode controls styling of diagnostics on stderr.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Style when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force styling on.
	ColorNever  ColorMode = "never"  // Plain text only.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by the environment ([LoadEnv]) and finally by CLI flags.
type Config struct {
	// Paths to list (positional args). Empty means the current directory.
	Paths []string

	// Sequence detection.
	ImageExtensions sequence.Extensions
	MovieExtensions sequence.Extensions
	StrictSeparator bool // Default: true. Cleared by --loose or LSSEQ_LOOSE_SEPARATOR.

	// Output.
	Format             string // Dialect name; see sequence.DialectNames.
	ShowMissing        bool   // Default: true. Cleared by --no-missing.
	ShowZero           bool   // Default: true. Cleared by --no-zero.
	CombineErrorFrames bool
	Extremes           bool
	PrependPath        bool // Prefix names with the directory as given.
	PrependPathAbs     bool // Prefix names with the absolute directory.

	// Sorting.
	SortByMTime bool
	TimeCompare sequence.TimeCompare // Default: newest.
	Reverse     bool

	// Listing.
	Recursive     bool
	All           bool     // Include dotfiles.
	OnlySequences bool     // Hide non-sequence files and directories.
	OnlyImages    bool     // Image sequences only.
	OnlyMovies    bool     // Movies only.
	Ignore        []string // Glob patterns of names to skip.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	EnvFile   string    // Dotenv file read before the environment.
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before the environment and CLI flags are applied.
func DefaultConfig() Config {
	return Config{
		ImageExtensions: sequence.ParseExtensions(DefaultImageExtensions),
		MovieExtensions: sequence.ParseExtensions(DefaultMovieExtensions),
		StrictSeparator: true,
		Format:          DefaultFormat,
		ShowMissing:     true,
		ShowZero:        true,
		TimeCompare:     sequence.TimeNewest,
		ColorMode:       ColorAuto,
	}
}

// Validate checks enum fields and mutually exclusive options.
func (c *Config) Validate() error {
	if _, ok := sequence.LookupDialect(c.Format); !ok {
		return fmt.Errorf("invalid format %q (use %s)", c.Format, strings.Join(sequence.DialectNames(), ", "))
	}

	switch c.TimeCompare {
	case sequence.TimeOldest, sequence.TimeMedian, sequence.TimeNewest:
		// valid
	default:
		return errors.New("invalid time compare (use 'oldest', 'median' or 'newest')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if len(c.ImageExtensions) == 0 {
		return errors.New("image extension list is empty")
	}
	if c.OnlyImages && c.OnlyMovies {
		return errors.New("--only-images and --only-movies are mutually exclusive")
	}
	if c.PrependPath && c.PrependPathAbs {
		return errors.New("--prepend-path and --prepend-path-abs are mutually exclusive")
	}
	if _, err := c.IgnorePatterns(); err != nil {
		return err
	}
	return nil
}

// IgnorePatterns compiles the --ignore globs.
func (c *Config) IgnorePatterns() ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(c.Ignore))
	for _, p := range c.Ignore {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		out = append(out, g)
	}
	return out, nil
}

// ClassifyOptions returns the classifier settings derived from c.
func (c *Config) ClassifyOptions() sequence.Options {
	return sequence.Options{
		Images: c.ImageExtensions,
		Movies: c.MovieExtensions,
		Loose:  !c.StrictSeparator,
	}
}

// RenderOptions returns the renderer settings derived from c.
func (c *Config) RenderOptions() sequence.RenderOptions {
	return sequence.RenderOptions{
		ShowMissing: c.ShowMissing,
		ShowZero:    c.ShowZero,
		Combine:     c.CombineErrorFrames,
		Extremes:    c.Extremes,
	}
}

// Dialect returns the configured output dialect. Call after Validate.
func (c *Config) Dialect() sequence.Dialect {
	d, ok := sequence.LookupDialect(c.Format)
	if !ok {
		return sequence.Native
	}
	return d
}
