package main

import (
	"database/sql"
	"encoding/json"

	_ "github.com/mattn/go-sqlite3"
)

// The cache holds the last successfully fetched issues and schedule so
// offline runs (and runs during tracker outages) can still reconcile.
// Both tables are replaced wholesale on every successful fetch; there is
// no incremental state.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS issues (
		repo       TEXT NOT NULL,
		number     INTEGER NOT NULL,
		title      TEXT NOT NULL,
		url        TEXT NOT NULL,
		body       TEXT NOT NULL,
		assignees  TEXT NOT NULL DEFAULT '[]',
		fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (repo, number)
	);

	CREATE TABLE IF NOT EXISTS schedule_entries (
		url        TEXT PRIMARY KEY,
		title      TEXT NOT NULL DEFAULT '',
		day        TEXT NOT NULL DEFAULT '',
		start_time TEXT NOT NULL DEFAULT '',
		end_time   TEXT NOT NULL DEFAULT '',
		room       TEXT NOT NULL DEFAULT '',
		kind       TEXT NOT NULL DEFAULT '',
		fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err = db.Exec(schema)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func ReplaceIssues(db *sql.DB, issues []Issue) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM issues`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO issues (repo, number, title, url, body, assignees)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, issue := range issues {
		assignees, err := json.Marshal(issue.Assignees)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(issue.Repo, issue.Number, issue.Title, issue.URL, issue.Body, string(assignees)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func LoadIssues(db *sql.DB) ([]Issue, error) {
	rows, err := db.Query(
		`SELECT repo, number, title, url, body, assignees
		 FROM issues ORDER BY repo, number`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issues []Issue
	for rows.Next() {
		var issue Issue
		var assignees string
		if err := rows.Scan(&issue.Repo, &issue.Number, &issue.Title, &issue.URL, &issue.Body, &assignees); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(assignees), &issue.Assignees); err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	return issues, rows.Err()
}

func ReplaceSchedule(db *sql.DB, set ScheduleSet) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM schedule_entries`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO schedule_entries (url, title, day, start_time, end_time, room, kind)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for url, e := range set {
		if _, err := stmt.Exec(url, e.Title, e.Day, e.StartTime, e.EndTime, e.Room, e.Kind); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func LoadSchedule(db *sql.DB) (ScheduleSet, error) {
	rows, err := db.Query(
		`SELECT url, title, day, start_time, end_time, room, kind FROM schedule_entries`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := make(ScheduleSet)
	for rows.Next() {
		var url string
		var e ScheduleEntry
		if err := rows.Scan(&url, &e.Title, &e.Day, &e.StartTime, &e.EndTime, &e.Room, &e.Kind); err != nil {
			return nil, err
		}
		set[url] = e
	}
	return set, rows.Err()
}
