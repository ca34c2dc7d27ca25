package main

import "time"

// ComputeGaps walks one attendee's meetings for a single day, sorted by
// declared start, and emits the free intervals inside the working-day
// window. The high-water mark is a max rather than a running cursor, so
// nested and overlapping meetings cannot reopen time already covered.
// A fully booked day yields no gaps; a day with no meetings yields one
// gap spanning the whole window.
func ComputeGaps(meetings []*Meeting, dayStart, dayEnd time.Time) []Gap {
	var gaps []Gap
	mark := dayStart
	for _, m := range meetings {
		if m.OurStart.After(mark) {
			gaps = append(gaps, Gap{Start: mark, End: m.OurStart})
		}
		if m.OurEnd.After(mark) {
			mark = m.OurEnd
		}
	}
	if mark.Before(dayEnd) {
		gaps = append(gaps, Gap{Start: mark, End: dayEnd})
	}
	return gaps
}
