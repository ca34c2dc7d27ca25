package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/slack-go/slack"
)

func main() {
	offline := flag.Bool("offline", false, "reconcile from the cache without fetching")
	watch := flag.Bool("watch", false, "keep running on the watch_schedule cron expression")
	flag.Parse()

	cfg := LoadConfig()

	db, err := InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to init database: %v", err)
	}
	defer db.Close()

	var api *slack.Client
	if cfg.SlackBotToken != "" && cfg.ReportChannelID != "" {
		api = slack.New(cfg.SlackBotToken)
	}

	if *watch {
		StartWatch(cfg, db, api)
		return
	}

	if err := RunOnce(cfg, db, api, *offline); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
}

// RunOnce is one complete pass: materialize the inputs (network or
// cache), run the pure reconciliation core, and deliver the report.
func RunOnce(cfg Config, db *sql.DB, api *slack.Client, offline bool) error {
	issues, schedule, err := loadInputs(cfg, db, offline)
	if err != nil {
		return err
	}
	log.Printf("inputs ready issues=%d schedule_entries=%d offline=%t", len(issues), len(schedule), offline)

	week, err := cfg.Week()
	if err != nil {
		return err
	}

	a := Analyze(issues, schedule, week, cfg.WorkdayStart, cfg.WorkdayEnd, cfg.ClashBuffer(), cfg.AlternatePool)
	log.Printf("analysis done meetings=%d partials=%d moved=%d duplicates=%d",
		len(a.Meetings), len(a.Partials), len(a.Moved), len(a.Duplicates))

	sections := BuildReport(a)
	console := renderConsoleReport(sections, cfg.TeamName)
	fmt.Print(console)

	path, err := WriteReportFile(renderHTMLReport(sections, cfg.TeamName), cfg.ReportOutputDir, cfg.TeamName, time.Now())
	if err != nil {
		return fmt.Errorf("writing report file: %w", err)
	}
	log.Printf("report written path=%s", path)

	if api != nil {
		if err := PostReport(api, cfg.ReportChannelID, console); err != nil {
			log.Printf("slack post failed: %v", err)
		}
	}

	return nil
}

func loadInputs(cfg Config, db *sql.DB, offline bool) ([]Issue, ScheduleSet, error) {
	if offline {
		issues, err := LoadIssues(db)
		if err != nil {
			return nil, nil, fmt.Errorf("loading cached issues: %w", err)
		}
		schedule, err := LoadSchedule(db)
		if err != nil {
			return nil, nil, fmt.Errorf("loading cached schedule: %w", err)
		}
		return issues, schedule, nil
	}

	issues, err := FetchIssues(cfg)
	if err != nil {
		return nil, nil, err
	}
	schedule, err := FetchSchedule(cfg)
	if err != nil {
		return nil, nil, err
	}

	// Cache refresh is best effort; a failed write never fails the run.
	if err := ReplaceIssues(db, issues); err != nil {
		log.Printf("caching issues failed: %v", err)
	}
	if err := ReplaceSchedule(db, schedule); err != nil {
		log.Printf("caching schedule failed: %v", err)
	}

	return issues, schedule, nil
}
