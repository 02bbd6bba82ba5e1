package sequence

import "strings"

// BrokenLink is the ModTime sentinel for a frame whose path does not resolve.
const BrokenLink float64 = -1

// Kind is the result class of [Classify].
type Kind int

const (
	KindOther Kind = iota // Plain file or directory; handled by the lister.
	KindImage             // Member of an image sequence.
	KindMovie             // Single movie file; never aggregated.
)

// Key identifies a sequence: the filename with the frame token removed,
// keeping the separator before it and the extension ("shot.render..exr").
type Key string

// Split returns the part before the frame number (ending in its separator)
// and the part after it (the extension with its leading dot).
func (k Key) Split() (root, ext string) {
	s := string(k)
	i := strings.LastIndexByte(s, '.')
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

// Frame is one observed file of a sequence.
type Frame struct {
	Number  int
	Size    int64
	ModTime float64 // Seconds since the epoch; BrokenLink for broken symlinks.

	width int // Observed token width, used to settle duplicate frame numbers.
}

// Broken reports whether the frame is a dangling symlink.
func (f Frame) Broken() bool { return f.ModTime == BrokenLink }

// Zero reports whether the frame is an anomaly: broken or empty.
func (f Frame) Zero() bool { return f.Broken() || f.Size == 0 }

// Entry is an aggregated sequence. Frames are sorted by number once
// [Aggregator.Entries] has returned it.
type Entry struct {
	Key        Key
	Padding    int
	Frames     []Frame
	Duplicates int // Tokens that parsed to an already-seen frame number.
}

// Min returns the lowest frame number. Entries always hold at least one frame.
func (e *Entry) Min() int { return e.Frames[0].Number }

// Max returns the highest frame number.
func (e *Entry) Max() int { return e.Frames[len(e.Frames)-1].Number }

// Movie is a movie file listed on its own line.
type Movie struct {
	Name    string
	ModTime float64
}

// Extensions is an ordered set of extensions without leading dots.
type Extensions []string

// ParseExtensions splits a colon-delimited list ("exr:jpg:tif"), dropping
// empty items and duplicates while keeping the first-seen order.
func ParseExtensions(list string) Extensions {
	var out Extensions
	for _, e := range strings.Split(list, ":") {
		e = strings.TrimSpace(e)
		if e == "" || out.Contains(e) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Contains reports whether ext is a member. Matching is case-sensitive.
func (x Extensions) Contains(ext string) bool {
	for _, e := range x {
		if e == ext {
			return true
		}
	}
	return false
}

// String joins the set back into its colon-delimited form.
func (x Extensions) String() string { return strings.Join(x, ":") }

// Options carries the process-wide classification settings.
type Options struct {
	Images Extensions
	Movies Extensions
	// Loose allows '_' as the separator before the frame number, tried
	// before the strict '.' rule.
	Loose bool
}
