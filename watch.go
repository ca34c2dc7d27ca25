package main

import (
	"database/sql"
	"log"

	"github.com/robfig/cron/v3"
	"github.com/slack-go/slack"
)

// StartWatch re-runs the full fetch+reconcile+report pass on the
// configured cron schedule. Blocks forever.
func StartWatch(cfg Config, db *sql.DB, api *slack.Client) {
	c := cron.New()
	_, err := c.AddFunc(cfg.WatchSchedule, func() {
		if err := RunOnce(cfg, db, api, false); err != nil {
			log.Printf("watch run failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("invalid watch_schedule '%s': %v", cfg.WatchSchedule, err)
	}
	log.Printf("watch mode schedule=%s", cfg.WatchSchedule)
	c.Start()
	select {}
}
