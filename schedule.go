package main

import (
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	ics "github.com/arran4/golang-ical"
)

// ParseScheduleHTML scrapes the published timetable page. Each slot is a
// div.event carrying data-day/data-start/data-end/data-room attributes
// and an anchor with the event's title and URL; breakout slots carry the
// "breakout" class. The entry is keyed by the anchor's href resolved
// against pageURL, since that is the URL people paste into issues.
// Missing attributes yield empty fields and the affected meetings
// downgrade to partials later, so a half-broken page still parses.
func ParseScheduleHTML(r io.Reader, pageURL string) (ScheduleSet, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing schedule page: %w", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parsing schedule page URL: %w", err)
	}

	set := make(ScheduleSet)
	doc.Find("div.event").Each(func(_ int, s *goquery.Selection) {
		link := s.Find("a").First()
		href := link.AttrOr("href", "")
		if href == "" {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}

		kind := KindSession
		if s.HasClass("breakout") {
			kind = KindBreakout
		}

		set[base.ResolveReference(ref).String()] = ScheduleEntry{
			Title:     strings.TrimSpace(link.Text()),
			Day:       strings.ToLower(strings.TrimSpace(s.AttrOr("data-day", ""))),
			StartTime: strings.TrimSpace(s.AttrOr("data-start", "")),
			EndTime:   strings.TrimSpace(s.AttrOr("data-end", "")),
			Room:      strings.TrimSpace(s.AttrOr("data-room", "")),
			Kind:      kind,
		}
	})

	log.Printf("schedule html parsed entries=%d", len(set))
	return set, nil
}

// ParseScheduleICS reads the same timetable from an ICS feed. Each
// VEVENT needs a URL property to be addressable from issues; events
// without one are skipped. A "breakout" category marks breakout slots.
func ParseScheduleICS(r io.Reader) (ScheduleSet, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parsing schedule feed: %w", err)
	}

	set := make(ScheduleSet)
	skipped := 0
	for _, ve := range cal.Events() {
		urlProp := ve.GetProperty(ics.ComponentPropertyUrl)
		if urlProp == nil || urlProp.Value == "" {
			skipped++
			continue
		}

		entry := ScheduleEntry{Kind: KindSession}
		if p := ve.GetProperty(ics.ComponentPropertySummary); p != nil {
			entry.Title = p.Value
		}
		if p := ve.GetProperty(ics.ComponentPropertyLocation); p != nil {
			entry.Room = p.Value
		}
		if p := ve.GetProperty("CATEGORIES"); p != nil {
			for _, cat := range strings.Split(p.Value, ",") {
				if strings.EqualFold(strings.TrimSpace(cat), KindBreakout) {
					entry.Kind = KindBreakout
				}
			}
		}

		if start, err := ve.GetStartAt(); err == nil {
			entry.Day = strings.ToLower(start.Weekday().String())
			entry.StartTime = start.Format("15:04")
		}
		if end, err := ve.GetEndAt(); err == nil {
			entry.EndTime = end.Format("15:04")
		}

		set[urlProp.Value] = entry
	}

	if skipped > 0 {
		log.Printf("schedule ics skipped events without URL count=%d", skipped)
	}
	log.Printf("schedule ics parsed entries=%d", len(set))
	return set, nil
}

// FetchSchedule downloads and parses the authoritative schedule. The ICS
// feed wins when both sources are configured.
func FetchSchedule(cfg Config) (ScheduleSet, error) {
	if cfg.ScheduleICSURL != "" {
		resp, err := externalHTTPClient.Get(cfg.ScheduleICSURL)
		if err != nil {
			return nil, fmt.Errorf("fetching schedule feed: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != 200 {
			return nil, fmt.Errorf("schedule feed returned %d", resp.StatusCode)
		}
		return ParseScheduleICS(resp.Body)
	}

	resp, err := externalHTTPClient.Get(cfg.ScheduleURL)
	if err != nil {
		return nil, fmt.Errorf("fetching schedule page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("schedule page returned %d", resp.StatusCode)
	}
	return ParseScheduleHTML(resp.Body, cfg.ScheduleURL)
}
