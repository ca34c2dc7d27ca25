package main

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// dayItem is one entry in a person's day timeline: either a meeting or a
// free interval. The timeline is sorted by start and discriminated with
// a type switch when rendered.
type dayItem interface {
	itemStart() time.Time
}

func (m *Meeting) itemStart() time.Time { return m.OurStart }
func (g Gap) itemStart() time.Time      { return g.Start }

type reportSection struct {
	Title string
	Lines []string
}

// BuildReport assembles the rendered sections once; the console and HTML
// renderers both consume the same structure.
func BuildReport(a Analysis) []reportSection {
	var sections []reportSection
	add := func(title string, lines []string) {
		if len(lines) == 0 {
			lines = []string{"(none)"}
		}
		sections = append(sections, reportSection{Title: title, Lines: lines})
	}

	var meetings []string
	for _, m := range a.Meetings {
		meetings = append(meetings, meetingLine(m))
	}
	add("Meetings", meetings)

	add("Personal agendas", agendaLines(a))

	add("Clashes", clashLines(a.HardClashes, true))
	add("Mind the gap", clashLines(a.NearClashes, true))

	var moved []string
	for _, m := range a.Moved {
		moved = append(moved, fmt.Sprintf("%s — published %s %s-%s, declared %s %s-%s (%s)",
			m.OurTitle,
			m.Day, clock(m.Start), clock(m.End),
			m.OurDay, clock(m.OurStart), clock(m.OurEnd),
			m.IssueURL))
	}
	add("Schedule moved", moved)

	var dups []string
	for _, g := range a.Duplicates {
		var titles []string
		for _, m := range g.Meetings {
			titles = append(titles, fmt.Sprintf("#%d %s", m.Tag, m.OurTitle))
		}
		dups = append(dups, fmt.Sprintf("%s: %s -> %s", g.Repo, g.CalendarURL, strings.Join(titles, "; ")))
	}
	add("Duplicate filings", dups)

	var unassigned []string
	for _, m := range a.Unassigned {
		unassigned = append(unassigned, fmt.Sprintf("%s (%s)", m.OurTitle, m.IssueURL))
	}
	add("Unassigned", unassigned)

	var partials []string
	for _, m := range a.Partials {
		partials = append(partials, fmt.Sprintf("%s (%s): missing %s",
			m.OurTitle, m.IssueURL, strings.Join(missingFields(m), ", ")))
	}
	add("Incomplete records", partials)

	return sections
}

func meetingLine(m *Meeting) string {
	line := fmt.Sprintf("%s %s-%s  %-8s %s [%s]",
		m.OurDay, clock(m.OurStart), clock(m.OurEnd), m.Room, m.OurTitle, m.Kind)
	if len(m.Attendees) > 0 {
		line += " — " + strings.Join(m.Attendees, ", ")
	}
	return line
}

func agendaLines(a Analysis) []string {
	people := make([]string, 0, len(a.Gaps))
	for name := range a.Gaps {
		people = append(people, name)
	}
	sort.Strings(people)

	byPersonDay := make(map[string]map[string][]*Meeting)
	for _, m := range a.Meetings {
		if m.Match == MatchMoved {
			continue
		}
		for _, name := range m.Attendees {
			if byPersonDay[name] == nil {
				byPersonDay[name] = make(map[string][]*Meeting)
			}
			byPersonDay[name][m.OurDay] = append(byPersonDay[name][m.OurDay], m)
		}
	}

	var lines []string
	for _, name := range people {
		lines = append(lines, name+":")
		for _, day := range weekdayOrder {
			items := make([]dayItem, 0)
			for _, m := range byPersonDay[name][day] {
				items = append(items, m)
			}
			for _, g := range a.Gaps[name][day] {
				items = append(items, g)
			}
			if len(items) == 0 {
				continue
			}
			sort.Slice(items, func(i, j int) bool { return items[i].itemStart().Before(items[j].itemStart()) })

			lines = append(lines, "  "+day+":")
			for _, it := range items {
				switch v := it.(type) {
				case *Meeting:
					lines = append(lines, fmt.Sprintf("    %s-%s  %s (%s)", clock(v.OurStart), clock(v.OurEnd), v.OurTitle, v.Room))
				case Gap:
					lines = append(lines, fmt.Sprintf("    %s-%s  free", clock(v.Start), clock(v.End)))
				}
			}
		}
	}
	return lines
}

func clashLines(clashes map[string][]ClashPair, withAlternates bool) []string {
	people := make([]string, 0, len(clashes))
	for name := range clashes {
		people = append(people, name)
	}
	sort.Strings(people)

	var lines []string
	for _, name := range people {
		for _, p := range clashes[name] {
			lines = append(lines, fmt.Sprintf("%s: %s (%s %s-%s) vs %s (%s %s-%s)",
				name,
				p.A.OurTitle, p.A.OurDay, clock(p.A.OurStart), clock(p.A.OurEnd),
				p.B.OurTitle, p.B.OurDay, clock(p.B.OurStart), clock(p.B.OurEnd)))
			if !withAlternates {
				continue
			}
			for _, m := range [2]*Meeting{p.A, p.B} {
				if len(m.Alternates) > 0 {
					lines = append(lines, fmt.Sprintf("  could cover %s: %s", m.OurTitle, strings.Join(m.Alternates, ", ")))
				}
			}
		}
	}
	return lines
}

func missingFields(m *Meeting) []string {
	var missing []string
	check := func(ok bool, name string) {
		if !ok {
			missing = append(missing, name)
		}
	}
	check(m.CalendarURL != "", "event URL")
	check(m.Kind != "" && m.Title != "" && m.Room != "", "schedule entry")
	check(m.OurDay != "", "day")
	check(!m.OurStart.IsZero() && !m.OurEnd.IsZero(), "time range")
	check(m.Match != "", "time match")
	if len(missing) == 0 {
		missing = append(missing, "nothing obvious")
	}
	return missing
}

func clock(t time.Time) string {
	if t.IsZero() {
		return "??:??"
	}
	return t.Format("15:04")
}

func renderConsoleReport(sections []reportSection, teamName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s meeting week ===\n", teamName)
	for _, s := range sections {
		b.WriteString("\n" + s.Title + "\n")
		b.WriteString(strings.Repeat("-", len(s.Title)) + "\n")
		for _, line := range s.Lines {
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

func renderHTMLReport(sections []reportSection, teamName string) string {
	var b strings.Builder
	b.WriteString(`<html><body style="font-family: Calibri, Arial, sans-serif; font-size: 11pt; color: #1f1f1f; line-height: 1.35;">`)
	b.WriteString(`<div style="font-weight: 700; font-size: 14pt; margin: 12px 0;">` + html.EscapeString(teamName) + ` meeting week</div>`)
	for _, s := range sections {
		b.WriteString(`<div style="font-weight: 700; margin: 12px 0 6px 0;">` + html.EscapeString(s.Title) + `</div>`)
		for _, line := range s.Lines {
			indent := len(line) - len(strings.TrimLeft(line, " "))
			b.WriteString(fmt.Sprintf(`<div style="margin: 2px 0 2px %dpx; white-space: pre;">`, indent*8))
			b.WriteString(html.EscapeString(strings.TrimLeft(line, " ")))
			b.WriteString(`</div>`)
		}
	}
	b.WriteString(`</body></html>`)
	return b.String()
}

func WriteReportFile(content, outputDir, teamName string, now time.Time) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%s_%s.html", sanitizeFilename(teamName), now.Format("20060102_150405"))
	path := filepath.Join(outputDir, filename)
	return path, os.WriteFile(path, []byte(content), 0644)
}

func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_", " ", "_")
	return replacer.Replace(s)
}
