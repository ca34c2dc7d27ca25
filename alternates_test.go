package main

import (
	"strings"
	"testing"
)

func TestFindAlternatesContainment(t *testing.T) {
	gaps := map[string]map[string][]Gap{
		"Casey Flores": {
			"monday": {{Start: at(t, "monday", "09:00"), End: at(t, "monday", "12:00")}},
		},
	}

	tests := []struct {
		name   string
		start  string
		end    string
		wantIn bool
	}{
		{"fully contained", "10:00", "11:00", true},
		{"exact gap bounds", "09:00", "12:00", true},
		{"starts before the gap", "08:30", "09:30", false},
		{"ends after the gap", "11:00", "13:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mk(t, 1, "monday", tt.start, tt.end, "u1")
			m.Attendees = []string{"Alex Reed"}
			got := FindAlternates(m, gaps, nil)
			if found := containsName(got, "Casey Flores"); found != tt.wantIn {
				t.Fatalf("alternates = %v, want Casey Flores in list: %v", got, tt.wantIn)
			}
		})
	}
}

func TestFindAlternatesSkipsExistingAttendees(t *testing.T) {
	gaps := map[string]map[string][]Gap{
		"Alex Reed": {"monday": {{Start: at(t, "monday", "09:00"), End: at(t, "monday", "18:00")}}},
	}
	m := mk(t, 1, "monday", "10:00", "11:00", "u1")
	m.Attendees = []string{"Alex Reed"}
	if got := FindAlternates(m, gaps, nil); len(got) != 0 {
		t.Fatalf("attendee should not be suggested as their own stand-in: %v", got)
	}
}

func TestFindAlternatesPool(t *testing.T) {
	free := []Gap{{Start: at(t, "monday", "09:00"), End: at(t, "monday", "18:00")}}
	gaps := map[string]map[string][]Gap{
		"Casey Flores": {"monday": free},
		"Dana Wu":      {"monday": free},
	}
	m := mk(t, 1, "monday", "10:00", "11:00", "u1")

	got := FindAlternates(m, gaps, []string{"Dana Wu"})
	if strings.Join(got, "|") != "Dana Wu" {
		t.Fatalf("pool should restrict candidates, got %v", got)
	}

	// A nil pool considers everyone, sorted.
	got = FindAlternates(m, gaps, nil)
	if strings.Join(got, "|") != "Casey Flores|Dana Wu" {
		t.Fatalf("nil pool should consider everyone in sorted order, got %v", got)
	}
}

func TestFindAlternatesWrongDay(t *testing.T) {
	gaps := map[string]map[string][]Gap{
		"Casey Flores": {"tuesday": {{Start: at(t, "tuesday", "09:00"), End: at(t, "tuesday", "18:00")}}},
	}
	m := mk(t, 1, "monday", "10:00", "11:00", "u1")
	if got := FindAlternates(m, gaps, nil); len(got) != 0 {
		t.Fatalf("free time on another day should not qualify: %v", got)
	}
}
