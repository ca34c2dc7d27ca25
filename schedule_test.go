package main

import (
	"strings"
	"testing"
)

const scheduleHTML = `
<html><body>
<div class="timetable">
  <div class="event" data-day="Tuesday" data-start="10:00" data-end="11:00" data-room="R2">
    <a href="/events/42">Platform sync</a>
  </div>
  <div class="event breakout" data-day="tuesday" data-start="12:00" data-end="13:00" data-room="R4">
    <a href="https://sched.example.com/events/44">Observability breakout</a>
  </div>
  <div class="event" data-day="wednesday" data-start="09:00" data-end="10:00">
    <a href="/events/45">Roadmap</a>
  </div>
  <div class="event" data-day="friday">
    <span>No link here, skipped</span>
  </div>
</div>
</body></html>`

func TestParseScheduleHTML(t *testing.T) {
	set, err := ParseScheduleHTML(strings.NewReader(scheduleHTML), "https://sched.example.com/timetable")
	if err != nil {
		t.Fatalf("ParseScheduleHTML failed: %v", err)
	}
	if len(set) != 3 {
		t.Fatalf("entries = %d, want 3", len(set))
	}

	e, ok := set["https://sched.example.com/events/42"]
	if !ok {
		t.Fatalf("relative href should resolve against the page URL: %v", set)
	}
	if e.Title != "Platform sync" || e.Day != "tuesday" || e.StartTime != "10:00" || e.EndTime != "11:00" || e.Room != "R2" || e.Kind != KindSession {
		t.Errorf("entry 42 = %+v", e)
	}

	if e := set["https://sched.example.com/events/44"]; e.Kind != KindBreakout {
		t.Errorf("breakout class should set kind, got %+v", e)
	}

	// Missing room still parses; the affected meeting becomes a partial later.
	if e := set["https://sched.example.com/events/45"]; e.Room != "" || e.Title != "Roadmap" {
		t.Errorf("entry 45 = %+v", e)
	}
}

const scheduleICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//sched//timetable//EN
BEGIN:VEVENT
UID:42@sched.example.com
URL:https://sched.example.com/events/42
SUMMARY:Platform sync
LOCATION:R2
DTSTART:20260922T100000
DTEND:20260922T110000
END:VEVENT
BEGIN:VEVENT
UID:44@sched.example.com
URL:https://sched.example.com/events/44
SUMMARY:Observability breakout
LOCATION:R4
CATEGORIES:infra,breakout
DTSTART:20260922T120000
DTEND:20260922T130000
END:VEVENT
BEGIN:VEVENT
UID:no-url@sched.example.com
SUMMARY:Unaddressable event
DTSTART:20260923T090000
DTEND:20260923T100000
END:VEVENT
END:VCALENDAR
`

func TestParseScheduleICS(t *testing.T) {
	// Contentlines are CRLF-delimited on the wire.
	feed := strings.ReplaceAll(scheduleICS, "\n", "\r\n")
	set, err := ParseScheduleICS(strings.NewReader(feed))
	if err != nil {
		t.Fatalf("ParseScheduleICS failed: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("entries = %d, want 2 (URL-less event skipped)", len(set))
	}

	e := set["https://sched.example.com/events/42"]
	if e.Title != "Platform sync" || e.Room != "R2" || e.Kind != KindSession {
		t.Errorf("entry 42 = %+v", e)
	}
	if e.Day != "tuesday" || e.StartTime != "10:00" || e.EndTime != "11:00" {
		t.Errorf("entry 42 day/times = %q %q %q", e.Day, e.StartTime, e.EndTime)
	}

	if e := set["https://sched.example.com/events/44"]; e.Kind != KindBreakout {
		t.Errorf("breakout category should set kind, got %+v", e)
	}
}
