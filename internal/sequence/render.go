package sequence

import "strings"

// WarnFunc receives diagnostics raised while rendering.
type WarnFunc func(format string, args ...any)

// RenderOptions selects what a [Renderer] reports besides the frame range.
type RenderOptions struct {
	ShowMissing bool // Append "m:[...]" for gaps in the range.
	ShowZero    bool // Append "z:[...]" for empty files and broken links.
	Combine     bool // Merge both lists into one "[...]".
	// Extremes prints only the first and last frame as concrete names, in
	// the native dialect, without missing/zero reporting.
	Extremes bool
}

// Report holds the anomalies found in one sequence.
type Report struct {
	Missing []Span // Gaps between present frames, ascending.
	Zero    []int  // Empty or broken frames, ascending.
	Broken  int    // How many of Zero are broken links.
}

// MissingCount is the number of frame numbers with no file.
func (r Report) MissingCount() int {
	n := 0
	for _, s := range r.Missing {
		n += s.Len()
	}
	return n
}

// Renderer formats aggregated sequences in one dialect.
type Renderer struct {
	dialect Dialect
	opts    RenderOptions
	warn    WarnFunc
}

// NewRenderer returns a renderer for d. warn may be nil.
func NewRenderer(d Dialect, opts RenderOptions, warn WarnFunc) *Renderer {
	if opts.Extremes {
		d = Native
	}
	if warn == nil {
		warn = func(string, ...any) {}
	}
	return &Renderer{dialect: d, opts: opts, warn: warn}
}

// Dialect returns the dialect in effect, which is [Native] in extremes mode.
func (r *Renderer) Dialect() Dialect { return r.dialect }

// Render returns the output lines for e, each name prefixed with prefix.
// Broken links found in e are reported through the renderer's WarnFunc.
func (r *Renderer) Render(e *Entry, prefix string) ([]string, Report) {
	if r.opts.Extremes {
		lines := []string{prefix + FrameName(e.Key, e.Padding, e.Min())}
		// A single frame is its own first and last; print it once.
		if e.Max() != e.Min() {
			lines = append(lines, prefix+FrameName(e.Key, e.Padding, e.Max()))
		}
		return lines, Report{}
	}

	rep := r.Scan(e, prefix)
	root, ext := e.Key.Split()
	line := r.dialect.Format(prefix+root, ext, e.Min(), e.Max(), e.Padding)
	if r.dialect == Native {
		line += r.annotate(rep, e.Padding)
	}
	return []string{line}, rep
}

// Scan walks the sorted frames of e, collecting the gaps between them
// (missing) and files that are empty or broken (zero). Its cost depends on
// the number of files, not on the width of the range.
func (r *Renderer) Scan(e *Entry, prefix string) Report {
	var rep Report
	for i, f := range e.Frames {
		if i > 0 {
			if prev := e.Frames[i-1].Number; f.Number > prev+1 {
				rep.Missing = append(rep.Missing, Span{prev + 1, f.Number - 1})
			}
		}
		if f.Broken() {
			rep.Broken++
			r.warn("%s is a broken symbolic link", prefix+FrameName(e.Key, e.Padding, f.Number))
		}
		if f.Zero() {
			rep.Zero = append(rep.Zero, f.Number)
		}
	}
	return rep
}

// RenderMovie returns the line for a movie file.
func (r *Renderer) RenderMovie(m Movie, prefix string) string {
	return prefix + m.Name
}

// annotate builds the native " m:[..],z:[..]" or combined " [..]" suffix.
func (r *Renderer) annotate(rep Report, padding int) string {
	var missing, zero []Span
	if r.opts.ShowMissing {
		missing = rep.Missing
	}
	if r.opts.ShowZero {
		zero = Spans(rep.Zero)
	}

	if r.opts.Combine {
		all := mergeSpans(missing, zero)
		if len(all) == 0 {
			return ""
		}
		return " [" + CondenseSpans(all, padding) + "]"
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "m:["+CondenseSpans(missing, padding)+"]")
	}
	if len(zero) > 0 {
		parts = append(parts, "z:["+CondenseSpans(zero, padding)+"]")
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, ",")
}

// mergeSpans merges two ascending, disjoint span lists, joining spans that
// touch so the result condenses like the union of their frames.
func mergeSpans(a, b []Span) []Span {
	out := make([]Span, 0, len(a)+len(b))
	push := func(s Span) {
		if k := len(out); k > 0 && out[k-1].Last+1 >= s.First {
			if s.Last > out[k-1].Last {
				out[k-1].Last = s.Last
			}
			return
		}
		out = append(out, s)
	}
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		if j >= len(b) || (i < len(a) && a[i].First < b[j].First) {
			push(a[i])
			i++
		} else {
			push(b[j])
			j++
		}
	}
	return out
}
