package sequence

import (
	"sort"
	"strconv"
)

// Aggregator groups classified frames of one directory into entries keyed
// by [Key]. It is not safe for concurrent use; one Aggregator serves one
// directory pass.
type Aggregator struct {
	entries map[Key]*Entry
	index   map[Key]map[int]int // frame number → position in Entry.Frames
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		entries: make(map[Key]*Entry),
		index:   make(map[Key]map[int]int),
	}
}

// Len returns the number of distinct sequences seen so far.
func (a *Aggregator) Len() int { return len(a.entries) }

// Add records one frame of key. token is the frame token exactly as it
// appeared in the filename; its length is the observed padding width.
//
// Padding is the minimum effective width over every token added for key.
// When two tokens parse to the same frame number ("a.01.exr" and
// "a.001.exr"), a single record is kept: the one from the wider token. Add
// reports whether the frame number was already present.
func (a *Aggregator) Add(key Key, token string, size int64, modTime float64) (duplicate bool) {
	n, _ := strconv.Atoi(token)
	width := effectiveWidth(n, len(token))
	f := Frame{Number: n, Size: size, ModTime: modTime, width: len(token)}

	e, ok := a.entries[key]
	if !ok {
		a.entries[key] = &Entry{Key: key, Padding: width, Frames: []Frame{f}}
		a.index[key] = map[int]int{n: 0}
		return false
	}

	if width < e.Padding {
		e.Padding = width
	}

	idx := a.index[key]
	if i, seen := idx[n]; seen {
		e.Duplicates++
		if f.width > e.Frames[i].width {
			e.Frames[i] = f
		}
		return true
	}
	idx[n] = len(e.Frames)
	e.Frames = append(e.Frames, f)
	return false
}

// Entries returns the aggregated sequences ordered by key, each with its
// frames sorted by number. The aggregator must not be used after Entries.
func (a *Aggregator) Entries() []*Entry {
	out := make([]*Entry, 0, len(a.entries))
	for _, e := range a.entries {
		sort.SliceStable(e.Frames, func(i, j int) bool {
			return e.Frames[i].Number < e.Frames[j].Number
		})
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	a.entries, a.index = nil, nil
	return out
}

// effectiveWidth is the padding a token of the given width implies for
// frame n. Single-digit negative frames ("-1".."-9") are written with two
// characters but imply no padding beyond one digit.
func effectiveWidth(n, width int) int {
	if n > -10 && n < 0 && width == 2 {
		return 1
	}
	return width
}
