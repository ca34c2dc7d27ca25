package main

import "time"

// BuildMeeting joins one issue, its parsed intent, and the schedule entry
// its URL resolved to (nil on a lookup miss). A tag is consumed
// unconditionally so that tags stay stable across valid and partial
// records alike.
func BuildMeeting(seq *tagSeq, issue Issue, intent IntentRecord, entry *ScheduleEntry, week Week) *Meeting {
	m := &Meeting{
		Tag:         seq.Next(),
		OurTitle:    issue.Title,
		OurDay:      intent.Day,
		OurStart:    intent.Start,
		OurEnd:      intent.End,
		CalendarURL: intent.CalendarURL,
		IssueURL:    issue.URL,
		Repo:        issue.Repo,
		Notes:       intent.Notes,
		Attendees:   resolveAttendees(issue.Assignees, intent.ExtraPeople),
	}

	if entry != nil {
		m.Kind = entry.Kind
		m.Title = entry.Title
		m.Day = entry.Day
		m.Room = entry.Room
		m.Start = week.At(entry.Day, entry.StartTime)
		m.End = week.At(entry.Day, entry.EndTime)
	}

	if !m.Start.IsZero() && !m.End.IsZero() && !m.OurStart.IsZero() && !m.OurEnd.IsZero() {
		m.Match = classifyTimeMatch(m.Start, m.End, m.OurStart, m.OurEnd)
	}

	return m
}

// resolveAttendees unions tracker assignees with the extra-people line,
// preserving first-seen order and dropping duplicates. The extra-people
// line exists to work around the tracker's assignee-count limit.
func resolveAttendees(assignees []IssueUser, extra []string) []string {
	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}
	for _, u := range assignees {
		if u.Name != "" {
			add(u.Name)
		} else {
			add(u.Login)
		}
	}
	for _, name := range extra {
		add(name)
	}
	return names
}

// classifyTimeMatch grades the declared window against the published
// one: identical windows are exact, a declared window fully contained in
// the published one means attending only part of the meeting, and
// anything else means the schedule has moved since the issue was filed.
func classifyTimeMatch(pubStart, pubEnd, ourStart, ourEnd time.Time) MatchGrade {
	s := pubStart.Compare(ourStart)
	e := pubEnd.Compare(ourEnd)
	switch {
	case s == 0 && e == 0:
		return MatchExact
	case s <= 0 && e >= 0:
		return MatchPartial
	default:
		return MatchMoved
	}
}
