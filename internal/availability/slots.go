package availability

import "sort"

// Overlaps reports whether a and b share any instant. Back-to-back intervals do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// HasConflict reports whether candidate overlaps any existing interval and
// returns the ones it collides with.
func HasConflict(candidate Interval, existing []Interval) (bool, []Interval) {
	var clashes []Interval
	for _, iv := range existing {
		if Overlaps(candidate, iv) {
			clashes = append(clashes, iv)
		}
	}
	return len(clashes) > 0, clashes
}

// AvailableSlots returns the gaps between existing intervals inside w, in
// ascending order. Input may be unsorted and overlapping and is not modified.
func AvailableSlots(existing []Interval, w Window) []Interval {
	clipped := make([]Interval, 0, len(existing))
	for _, iv := range existing {
		if iv.End <= w.Start || iv.Start >= w.End || iv.Start >= iv.End {
			continue
		}
		clipped = append(clipped, Interval{Start: maxTime(iv.Start, w.Start), End: minTime(iv.End, w.End)})
	}
	sort.SliceStable(clipped, func(i, j int) bool {
		if clipped[i].Start == clipped[j].Start {
			return clipped[i].End < clipped[j].End
		}
		return clipped[i].Start < clipped[j].Start
	})

	var slots []Interval
	cursor := w.Start
	for _, iv := range clipped {
		if iv.Start > cursor {
			slots = append(slots, Interval{Start: cursor, End: iv.Start})
		}
		cursor = maxTime(cursor, iv.End)
	}
	if cursor < w.End {
		slots = append(slots, Interval{Start: cursor, End: w.End})
	}
	return slots
}

// FitSlots keeps the slots at least minutes long.
func FitSlots(slots []Interval, minutes int) []Interval {
	var out []Interval
	for _, s := range slots {
		if s.Minutes() >= minutes {
			out = append(out, s)
		}
	}
	return out
}

func maxTime(a, b string) string {
	if a > b {
		return a
	}
	return b
}

func minTime(a, b string) string {
	if a < b {
		return a
	}
	return b
}
