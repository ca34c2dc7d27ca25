package main

import "sort"

// DuplicateGroup is a set of issues in one source collection all
// pointing at the same published booking — almost always duplicate
// filings or deliberately-split sub-agenda items.
type DuplicateGroup struct {
	Repo        string
	CalendarURL string
	Meetings    []*Meeting
}

// FindDuplicates groups meetings by source collection and event URL and
// keeps the groups with more than one member. The same URL appearing
// across different collections is the expected cross-team-attendance
// case and is not flagged.
func FindDuplicates(meetings []*Meeting) []DuplicateGroup {
	byRepoURL := make(map[string]map[string][]*Meeting)
	for _, m := range meetings {
		if m.Repo == "" || m.CalendarURL == "" {
			continue
		}
		if byRepoURL[m.Repo] == nil {
			byRepoURL[m.Repo] = make(map[string][]*Meeting)
		}
		byRepoURL[m.Repo][m.CalendarURL] = append(byRepoURL[m.Repo][m.CalendarURL], m)
	}

	var groups []DuplicateGroup
	for repo, byURL := range byRepoURL {
		for url, ms := range byURL {
			if len(ms) < 2 {
				continue
			}
			sort.Slice(ms, func(i, j int) bool { return ms[i].Tag < ms[j].Tag })
			groups = append(groups, DuplicateGroup{Repo: repo, CalendarURL: url, Meetings: ms})
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Repo != groups[j].Repo {
			return groups[i].Repo < groups[j].Repo
		}
		return groups[i].CalendarURL < groups[j].CalendarURL
	})
	return groups
}
