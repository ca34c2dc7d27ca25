package main

import (
	"testing"
	"time"
)

// testWeek anchors the fixture week used across the test files.
var testWeek = Week{Monday: time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC)}

// at resolves a weekday+clock inside the fixture week.
func at(t *testing.T, day, clock string) time.Time {
	t.Helper()
	ts := testWeek.At(day, clock)
	if ts.IsZero() {
		t.Fatalf("fixture time %s %s did not resolve", day, clock)
	}
	return ts
}

func TestWeekAnchor(t *testing.T) {
	tests := []struct {
		day  string
		want string
		ok   bool
	}{
		{"monday", "2026-09-21", true},
		{"wednesday", "2026-09-23", true},
		{"friday", "2026-09-25", true},
		{"saturday", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := testWeek.Anchor(tt.day)
		if ok != tt.ok {
			t.Fatalf("Anchor(%q) ok = %v, want %v", tt.day, ok, tt.ok)
		}
		if ok && got.Format("2006-01-02") != tt.want {
			t.Errorf("Anchor(%q) = %s, want %s", tt.day, got.Format("2006-01-02"), tt.want)
		}
	}
}

func TestWeekAt(t *testing.T) {
	got := testWeek.At("tuesday", "10:30")
	want := time.Date(2026, 9, 22, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("At(tuesday, 10:30) = %v, want %v", got, want)
	}

	for _, bad := range []struct{ day, clock string }{
		{"sunday", "10:30"},
		{"tuesday", "25:00"},
		{"tuesday", "nope"},
		{"tuesday", ""},
	} {
		if got := testWeek.At(bad.day, bad.clock); !got.IsZero() {
			t.Errorf("At(%q, %q) = %v, want zero", bad.day, bad.clock, got)
		}
	}
}

func TestParseClock(t *testing.T) {
	hour, min, err := parseClock("09:05")
	if err != nil || hour != 9 || min != 5 {
		t.Fatalf("parseClock(09:05) = %d, %d, %v", hour, min, err)
	}
	for _, bad := range []string{"24:00", "12:60", "noon", ""} {
		if _, _, err := parseClock(bad); err == nil {
			t.Errorf("parseClock(%q) should fail", bad)
		}
	}
}

func TestTagSeqMonotonic(t *testing.T) {
	seq := &tagSeq{}
	prev := 0
	for i := 0; i < 5; i++ {
		tag := seq.Next()
		if tag <= prev {
			t.Fatalf("tag %d not strictly increasing after %d", tag, prev)
		}
		prev = tag
	}
}

func TestMeetingValidRequiresEveryField(t *testing.T) {
	base := func() Meeting {
		return Meeting{
			Tag:         1,
			Kind:        KindSession,
			Title:       "Platform sync",
			Day:         "tuesday",
			Start:       at(t, "tuesday", "10:00"),
			End:         at(t, "tuesday", "11:00"),
			OurTitle:    "Attend platform sync",
			OurDay:      "tuesday",
			OurStart:    at(t, "tuesday", "10:00"),
			OurEnd:      at(t, "tuesday", "11:00"),
			Match:       MatchExact,
			Room:        "R2",
			Attendees:   []string{"Alex Reed"},
			CalendarURL: "https://sched.example.com/events/42",
			IssueURL:    "https://github.com/acme/meetings/issues/7",
		}
	}

	if m := base(); !m.Valid() {
		t.Fatalf("fully populated meeting should be valid")
	}

	mutations := map[string]func(*Meeting){
		"tag":       func(m *Meeting) { m.Tag = 0 },
		"kind":      func(m *Meeting) { m.Kind = "" },
		"title":     func(m *Meeting) { m.Title = "" },
		"our title": func(m *Meeting) { m.OurTitle = "" },
		"day":       func(m *Meeting) { m.Day = "" },
		"our day":   func(m *Meeting) { m.OurDay = "" },
		"start":     func(m *Meeting) { m.Start = time.Time{} },
		"end":       func(m *Meeting) { m.End = time.Time{} },
		"our start": func(m *Meeting) { m.OurStart = time.Time{} },
		"our end":   func(m *Meeting) { m.OurEnd = time.Time{} },
		"match":     func(m *Meeting) { m.Match = "" },
		"room":      func(m *Meeting) { m.Room = "" },
		"event url": func(m *Meeting) { m.CalendarURL = "" },
		"issue url": func(m *Meeting) { m.IssueURL = "" },
	}
	for name, mutate := range mutations {
		m := base()
		mutate(&m)
		if m.Valid() {
			t.Errorf("meeting missing %s should be invalid", name)
		}
	}

	// Empty attendees is the unassigned case, still a valid meeting.
	m := base()
	m.Attendees = nil
	if !m.Valid() {
		t.Errorf("meeting with no attendees should stay valid")
	}
}
