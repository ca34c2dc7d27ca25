package main

import (
	"sort"
	"time"
)

// ClashPair is one unordered pair of an attendee's meetings that overlap
// (or nearly overlap). A holds the earlier-starting meeting.
type ClashPair struct {
	A *Meeting
	B *Meeting
}

// pairKey identifies an unordered pair by its tags sorted ascending, so
// a pair found in both scan directions is stored once.
type pairKey struct {
	lo, hi int
}

func keyFor(a, b *Meeting) pairKey {
	if a.Tag > b.Tag {
		a, b = b, a
	}
	if a.Tag == b.Tag {
		panic("clash pair with identical tags")
	}
	return pairKey{lo: a.Tag, hi: b.Tag}
}

type pairSet map[pairKey]ClashPair

func (s pairSet) add(m, o *Meeting) {
	if o.OurStart.Before(m.OurStart) {
		m, o = o, m
	}
	s[keyFor(m, o)] = ClashPair{A: m, B: o}
}

// sorted returns the pairs ordered by tag key for stable reporting.
func (s pairSet) sorted() []ClashPair {
	keys := make([]pairKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].lo != keys[j].lo {
			return keys[i].lo < keys[j].lo
		}
		return keys[i].hi < keys[j].hi
	})
	out := make([]ClashPair, 0, len(keys))
	for _, k := range keys {
		out = append(out, s[k])
	}
	return out
}

// DetectClashes runs the all-pairs scan over one attendee's meetings and
// returns their hard and near clashes. Pairs on different days never
// clash, and two issues pointing at the same published booking with an
// identical declared window (the cross-repo duplicate-filing case) are
// skipped rather than reported against each other.
func DetectClashes(meetings []*Meeting, buffer time.Duration) (hard, near []ClashPair) {
	hardSet := make(pairSet)
	nearSet := make(pairSet)

	for _, m := range meetings {
		for _, o := range meetings {
			if m == o || m.OurDay != o.OurDay {
				continue
			}
			if sameBooking(m, o) {
				continue
			}
			switch classifyClash(m, o, buffer) {
			case clashHard:
				hardSet.add(m, o)
			case clashNear:
				nearSet.add(m, o)
			}
		}
	}

	return hardSet.sorted(), nearSet.sorted()
}

func sameBooking(m, o *Meeting) bool {
	return m.CalendarURL == o.CalendarURL &&
		m.OurStart.Equal(o.OurStart) &&
		m.OurEnd.Equal(o.OurEnd)
}

type clashLevel int

const (
	clashNone clashLevel = iota
	clashNear
	clashHard
)

// classifyClash grades one pair. The earlier-starting meeting takes the
// m role before the boundary checks run. The lower bound of the start
// check is inclusive while the end check is strict on the lower bound,
// which is what keeps back-to-back meetings with a shared boundary out
// of the clash list.
func classifyClash(m, o *Meeting, buffer time.Duration) clashLevel {
	if o.OurStart.Before(m.OurStart) {
		m, o = o, m
	}
	if windowsTouch(m.OurStart, m.OurEnd, o.OurStart, o.OurEnd) {
		return clashHard
	}
	if windowsTouch(m.OurStart, m.OurEnd, o.OurStart.Add(-buffer), o.OurEnd.Add(buffer)) {
		return clashNear
	}
	return clashNone
}

func windowsTouch(mStart, mEnd, oStart, oEnd time.Time) bool {
	if !mStart.Before(oStart) && !mStart.After(oEnd) {
		return true
	}
	return mEnd.After(oStart) && !mEnd.After(oEnd)
}
