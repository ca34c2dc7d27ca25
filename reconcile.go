package main

import (
	"sort"
	"time"
)

// Analysis is everything one reconciliation pass derives. All of it is
// rebuilt from scratch on every run; nothing here survives between runs.
type Analysis struct {
	Meetings []*Meeting // valid, chronological by declared start
	Partials []*Meeting // missing required fields, kept for review
	Moved    []*Meeting // valid but the schedule no longer matches

	HardClashes map[string][]ClashPair      // attendee -> overlapping pairs
	NearClashes map[string][]ClashPair      // attendee -> pairs inside the buffer
	Gaps        map[string]map[string][]Gap // attendee -> day -> free intervals

	Duplicates []DuplicateGroup
	Unassigned []*Meeting
}

// Analyze runs the full pipeline over already-materialized inputs: build
// meetings from issues, partition them, then derive clashes, gaps,
// stand-in suggestions, and duplicate filings. Pure and synchronous; a
// malformed issue costs its own record and nothing else.
func Analyze(issues []Issue, schedule ScheduleSet, week Week, dayStart, dayEnd string, buffer time.Duration, pool []string) Analysis {
	a := Analysis{
		HardClashes: make(map[string][]ClashPair),
		NearClashes: make(map[string][]ClashPair),
		Gaps:        make(map[string]map[string][]Gap),
	}

	seq := &tagSeq{}
	for _, issue := range issues {
		intent := ParseIntent(issue.Body, week)
		var entry *ScheduleEntry
		if e, ok := schedule[intent.CalendarURL]; ok {
			entry = &e
		}
		m := BuildMeeting(seq, issue, intent, entry, week)
		if m.Valid() {
			a.Meetings = append(a.Meetings, m)
		} else {
			a.Partials = append(a.Partials, m)
		}
	}

	sort.Slice(a.Meetings, func(i, j int) bool {
		if !a.Meetings[i].OurStart.Equal(a.Meetings[j].OurStart) {
			return a.Meetings[i].OurStart.Before(a.Meetings[j].OurStart)
		}
		return a.Meetings[i].Tag < a.Meetings[j].Tag
	})

	var onSchedule []*Meeting
	for _, m := range a.Meetings {
		if m.Match == MatchMoved {
			a.Moved = append(a.Moved, m)
		} else {
			onSchedule = append(onSchedule, m)
		}
		if len(m.Attendees) == 0 {
			a.Unassigned = append(a.Unassigned, m)
		}
	}

	byPerson := make(map[string][]*Meeting)
	for _, m := range onSchedule {
		for _, name := range m.Attendees {
			byPerson[name] = append(byPerson[name], m)
		}
	}

	for name, ms := range byPerson {
		hard, near := DetectClashes(ms, buffer)
		if len(hard) > 0 {
			a.HardClashes[name] = hard
		}
		if len(near) > 0 {
			a.NearClashes[name] = near
		}

		byDay := make(map[string][]*Meeting)
		for _, m := range ms {
			byDay[m.OurDay] = append(byDay[m.OurDay], m)
		}
		// Every weekday gets gaps, so a day with no meetings shows up as
		// one full-day gap and the person stays eligible as a stand-in.
		a.Gaps[name] = make(map[string][]Gap)
		for day := range weekdayOffsets {
			dayMeetings := byDay[day]
			sort.Slice(dayMeetings, func(i, j int) bool {
				return dayMeetings[i].OurStart.Before(dayMeetings[j].OurStart)
			})
			a.Gaps[name][day] = ComputeGaps(dayMeetings, week.At(day, dayStart), week.At(day, dayEnd))
		}
	}

	// Stand-in suggestions need every attendee's gaps, so they run last.
	suggested := make(map[int]bool)
	for _, pairs := range [2]map[string][]ClashPair{a.HardClashes, a.NearClashes} {
		for _, ps := range pairs {
			for _, p := range ps {
				for _, m := range [2]*Meeting{p.A, p.B} {
					if suggested[m.Tag] {
						continue
					}
					suggested[m.Tag] = true
					m.Alternates = FindAlternates(m, a.Gaps, pool)
				}
			}
		}
	}

	a.Duplicates = FindDuplicates(a.Meetings)

	return a
}
