package model

import (
	"sort"

	"udonevent/internal/timefmt"
)

// SortByStart orders events ascending by their parsed start instant. The sort
// is stable and an event whose start is empty or unparsable compares equal to
// everything, so such events keep their original relative position.
func SortByStart(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, aok := timefmt.ParseStamp(events[i].Start)
		b, bok := timefmt.ParseStamp(events[j].Start)
		if !aok || !bok {
			return false
		}
		return a.Before(b)
	})
}
