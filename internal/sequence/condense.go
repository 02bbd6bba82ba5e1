package sequence

import (
	"fmt"
	"strings"
)

// PadFrame formats n zero-padded to padding digits. A negative number keeps
// its '-' in front; the sign is not counted in the width.
func PadFrame(n, padding int) string {
	if n < 0 {
		return fmt.Sprintf("-%0*d", padding, -n)
	}
	return fmt.Sprintf("%0*d", padding, n)
}

// FrameName rebuilds the filename of frame n of the sequence key.
func FrameName(key Key, padding, n int) string {
	root, ext := key.Split()
	return root + PadFrame(n, padding) + ext
}

// Span is an inclusive run of consecutive frame numbers.
type Span struct {
	First, Last int
}

// Len is the number of frames in the span.
func (s Span) Len() int { return s.Last - s.First + 1 }

// Spans groups ascending frame numbers into maximal runs.
func Spans(frames []int) []Span {
	var out []Span
	for _, n := range frames {
		if k := len(out); k > 0 && out[k-1].Last+1 == n {
			out[k-1].Last = n
			continue
		}
		out = append(out, Span{n, n})
	}
	return out
}

// Condense renders ascending frame numbers as a comma-separated list,
// collapsing runs of consecutive numbers into "first-last":
// [1 2 3 5 7 8] → "1-3,5,7-8".
func Condense(frames []int, padding int) string {
	return CondenseSpans(Spans(frames), padding)
}

// CondenseSpans renders ascending, non-adjacent spans the way Condense does.
func CondenseSpans(spans []Span, padding int) string {
	var b strings.Builder
	for i, s := range spans {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(PadFrame(s.First, padding))
		if s.Last > s.First {
			b.WriteByte('-')
			b.WriteString(PadFrame(s.Last, padding))
		}
	}
	return b.String()
}
