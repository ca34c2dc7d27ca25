package main

import (
	"fmt"
	"time"
)

// MatchGrade records how well an issue's declared time window agrees with
// the published schedule entry it points at.
type MatchGrade string

const (
	MatchExact   MatchGrade = "exact"   // declared window identical to the published one
	MatchPartial MatchGrade = "partial" // declared window contained in the published one
	MatchMoved   MatchGrade = "moved"   // schedule no longer matches what was declared
)

const (
	KindSession  = "session"
	KindBreakout = "breakout"
)

// Issue is one intent record from the tracker: somebody declaring they
// want to attend a meeting.
type Issue struct {
	Repo      string // source collection, e.g. "acme/meetings"
	Number    int
	Title     string
	URL       string
	Body      string
	Assignees []IssueUser
}

type IssueUser struct {
	Login string
	Name  string // display name; falls back to login when the API has none
}

// IntentRecord is the structured part of an issue body. Fields stay at
// their zero value when the corresponding line is missing or malformed;
// the meeting builder downgrades such records to partials.
type IntentRecord struct {
	CalendarURL string
	Day         string
	Start       time.Time
	End         time.Time
	ExtraPeople []string
	Notes       string
}

// ScheduleEntry is one published timetable slot, keyed by its event URL.
type ScheduleEntry struct {
	Title     string
	Day       string
	StartTime string // "HH:MM"
	EndTime   string
	Room      string
	Kind      string
}

type ScheduleSet map[string]ScheduleEntry

// Meeting joins an intent record with its schedule entry. The same type
// carries partially-populated records for diagnostic display; Valid
// reports whether every required field made it in.
type Meeting struct {
	Tag  int
	Kind string

	// Published side.
	Title string
	Day   string
	Start time.Time
	End   time.Time

	// Declared side.
	OurTitle string
	OurDay   string
	OurStart time.Time
	OurEnd   time.Time

	Match       MatchGrade
	Room        string
	Attendees   []string
	CalendarURL string
	IssueURL    string
	Repo        string
	Alternates  []string
	Notes       string
}

// Valid reports whether the meeting carries every field the reconciler
// needs. Attendees may legitimately be empty (those meetings surface in
// the unassigned list), so emptiness does not invalidate a record.
func (m *Meeting) Valid() bool {
	return m.Tag > 0 &&
		m.Kind != "" &&
		m.Title != "" && m.OurTitle != "" &&
		m.Day != "" && m.OurDay != "" &&
		!m.Start.IsZero() && !m.End.IsZero() &&
		!m.OurStart.IsZero() && !m.OurEnd.IsZero() &&
		m.Match != "" &&
		m.Room != "" &&
		m.CalendarURL != "" &&
		m.IssueURL != ""
}

// Gap is one free interval for an attendee within the working day.
type Gap struct {
	Start time.Time
	End   time.Time
}

// tagSeq hands out meeting tags. Created once per run and threaded
// through the intake pass; every intake consumes a tag, valid or not,
// so tags are stable identifiers rather than a dense index.
type tagSeq struct {
	last int
}

func (s *tagSeq) Next() int {
	s.last++
	return s.last
}

var weekdayOrder = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

var weekdayOffsets = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
}

// Week anchors the five weekday names to concrete dates. All times in a
// run are wall-clock within this one week.
type Week struct {
	Monday time.Time
}

// Anchor returns the midnight date for a weekday name, or false when the
// name is not one of monday..friday.
func (w Week) Anchor(day string) (time.Time, bool) {
	off, ok := weekdayOffsets[day]
	if !ok {
		return time.Time{}, false
	}
	return w.Monday.AddDate(0, 0, off), true
}

// At combines a weekday name and an "HH:MM" clock into an absolute local
// time. Returns the zero time when either part does not parse.
func (w Week) At(day, clock string) time.Time {
	anchor, ok := w.Anchor(day)
	if !ok {
		return time.Time{}
	}
	hour, min, err := parseClock(clock)
	if err != nil {
		return time.Time{}
	}
	return time.Date(anchor.Year(), anchor.Month(), anchor.Day(), hour, min, 0, 0, anchor.Location())
}

func parseClock(s string) (int, int, error) {
	var hour, min int
	_, err := fmt.Sscanf(s, "%d:%d", &hour, &min)
	if err != nil {
		return 0, 0, err
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, 0, fmt.Errorf("time out of range: %02d:%02d", hour, min)
	}
	return hour, min, nil
}
