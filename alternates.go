package main

import "sort"

// FindAlternates returns the attendees whose free time fully covers the
// meeting's declared window and who are not already on it. A non-nil
// pool restricts which candidates are considered. Names come back
// sorted so reports are reproducible run to run. Call this only after
// every attendee's gaps are computed; it reasons over all of them.
func FindAlternates(m *Meeting, gapsByPerson map[string]map[string][]Gap, pool []string) []string {
	var out []string
	for name, days := range gapsByPerson {
		if containsName(m.Attendees, name) {
			continue
		}
		if pool != nil && !containsName(pool, name) {
			continue
		}
		for _, g := range days[m.OurDay] {
			if !g.Start.After(m.OurStart) && !g.End.Before(m.OurEnd) {
				out = append(out, name)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
