package sequence

import "sort"

// TimeCompare picks which frame time represents a whole sequence when
// sorting by modification time.
type TimeCompare string

const (
	TimeOldest TimeCompare = "oldest"
	TimeMedian TimeCompare = "median"
	TimeNewest TimeCompare = "newest" // Default.
)

// Item is one sortable listing line: exactly one of Entry or Movie is set.
type Item struct {
	Entry *Entry
	Movie *Movie
}

// Name is the sort key for name ordering: the sequence key or movie name.
func (it Item) Name() string {
	if it.Entry != nil {
		return string(it.Entry.Key)
	}
	return it.Movie.Name
}

// Time is the representative modification time of the item, or BrokenLink
// when no frame resolves.
func (it Item) Time(tc TimeCompare) float64 {
	if it.Movie != nil {
		return it.Movie.ModTime
	}
	times := make([]float64, 0, len(it.Entry.Frames))
	for _, f := range it.Entry.Frames {
		if !f.Broken() {
			times = append(times, f.ModTime)
		}
	}
	if len(times) == 0 {
		return BrokenLink
	}
	sort.Float64s(times)
	switch tc {
	case TimeOldest:
		return times[0]
	case TimeMedian:
		return times[len(times)/2]
	default:
		return times[len(times)-1]
	}
}

// Order sorts items in place.
//
// By name the order is ascending, descending with reverse. By time the
// default is newest first and reverse gives oldest first; equal times fall
// back to ascending name order.
func Order(items []Item, byTime bool, tc TimeCompare, reverse bool) {
	if !byTime {
		sort.SliceStable(items, func(i, j int) bool {
			if reverse {
				return items[i].Name() > items[j].Name()
			}
			return items[i].Name() < items[j].Name()
		})
		return
	}

	type timed struct {
		item Item
		t    float64
	}
	ts := make([]timed, len(items))
	for i, it := range items {
		ts[i] = timed{it, it.Time(tc)}
	}
	sort.SliceStable(ts, func(i, j int) bool {
		if ts[i].t != ts[j].t {
			if reverse {
				return ts[i].t < ts[j].t
			}
			return ts[i].t > ts[j].t
		}
		// Ties stay in ascending name order even with reverse.
		return ts[i].item.Name() < ts[j].item.Name()
	})
	for i := range ts {
		items[i] = ts[i].item
	}
}
