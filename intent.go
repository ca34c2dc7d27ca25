package main

import (
	"regexp"
	"strings"
)

// Issue body contract, line by line:
//
//	0: event URL on the published schedule
//	1: weekday name (lower-cased)
//	2: declared time range, "HH:MM - HH:MM" (hyphen or en-dash)
//	3: extra attendees, space-separated (empty when there are none)
//	4: blank separator
//	5+: free-text notes
//
// Trailing sections may be missing entirely. Unrecognized days and
// malformed ranges leave the fields at their zero value rather than
// failing the record here.
var timeRangeRe = regexp.MustCompile(`^\s*(\d{1,2}:\d{2})\s*[-–]\s*(\d{1,2}:\d{2})\s*$`)

func ParseIntent(body string, week Week) IntentRecord {
	var rec IntentRecord
	lines := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")

	if len(lines) > 0 {
		rec.CalendarURL = strings.TrimSpace(lines[0])
	}
	if len(lines) > 1 {
		day := strings.ToLower(strings.TrimSpace(lines[1]))
		if _, ok := weekdayOffsets[day]; ok {
			rec.Day = day
		}
	}
	if len(lines) > 2 && rec.Day != "" {
		if m := timeRangeRe.FindStringSubmatch(lines[2]); m != nil {
			rec.Start = week.At(rec.Day, m[1])
			rec.End = week.At(rec.Day, m[2])
		}
	}

	notesFrom := len(lines)
	if len(lines) > 3 {
		people := strings.TrimSpace(lines[3])
		if people != "" {
			for _, tok := range strings.Fields(people) {
				if name := strings.Trim(tok, "@,"); name != "" {
					rec.ExtraPeople = append(rec.ExtraPeople, name)
				}
			}
			// Line 4 is the blank separator before notes.
			notesFrom = 5
		} else {
			notesFrom = 4
		}
	}
	if notesFrom < len(lines) {
		rec.Notes = strings.TrimSpace(strings.Join(lines[notesFrom:], "\n"))
	}

	return rec
}
