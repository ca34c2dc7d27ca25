package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	GitHubToken  string   `yaml:"github_token"`
	GitHubRepos  []string `yaml:"github_repos"`
	MeetingLabel string   `yaml:"meeting_label"`

	ScheduleURL    string `yaml:"schedule_url"`
	ScheduleICSURL string `yaml:"schedule_ics_url"`

	WeekMonday         string `yaml:"week_monday"` // "2006-01-02", the Monday of the meeting week
	WorkdayStart       string `yaml:"workday_start"`
	WorkdayEnd         string `yaml:"workday_end"`
	ClashBufferMinutes int    `yaml:"clash_buffer_minutes"`

	AlternatePool []string `yaml:"alternate_pool"`

	DBPath          string `yaml:"db_path"`
	ReportOutputDir string `yaml:"report_output_dir"`
	TeamName        string `yaml:"team_name"`

	SlackBotToken   string `yaml:"slack_bot_token"`
	ReportChannelID string `yaml:"report_channel_id"`

	WatchSchedule string `yaml:"watch_schedule"`
}

func LoadConfig() Config {
	var cfg Config

	// Load from config.yaml if it exists
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.GitHubToken, "GITHUB_TOKEN")
	envOverride(&cfg.MeetingLabel, "MEETING_LABEL")
	envOverride(&cfg.ScheduleURL, "SCHEDULE_URL")
	envOverride(&cfg.ScheduleICSURL, "SCHEDULE_ICS_URL")
	envOverride(&cfg.WeekMonday, "WEEK_MONDAY")
	envOverride(&cfg.WorkdayStart, "WORKDAY_START")
	envOverride(&cfg.WorkdayEnd, "WORKDAY_END")
	envOverrideInt(&cfg.ClashBufferMinutes, "CLASH_BUFFER_MINUTES")
	envOverride(&cfg.DBPath, "DB_PATH")
	envOverride(&cfg.ReportOutputDir, "REPORT_OUTPUT_DIR")
	envOverride(&cfg.TeamName, "TEAM_NAME")
	envOverride(&cfg.SlackBotToken, "SLACK_BOT_TOKEN")
	envOverride(&cfg.ReportChannelID, "REPORT_CHANNEL_ID")
	envOverride(&cfg.WatchSchedule, "WATCH_SCHEDULE")
	envOverrideList(&cfg.GitHubRepos, "GITHUB_REPOS")
	envOverrideList(&cfg.AlternatePool, "ALTERNATE_POOL")

	// Defaults
	if cfg.MeetingLabel == "" {
		cfg.MeetingLabel = "meeting"
	}
	if cfg.WorkdayStart == "" {
		cfg.WorkdayStart = "09:00"
	}
	if cfg.WorkdayEnd == "" {
		cfg.WorkdayEnd = "18:00"
	}
	if cfg.ClashBufferMinutes == 0 {
		cfg.ClashBufferMinutes = 10
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "./agendabot.db"
	}
	if cfg.ReportOutputDir == "" {
		cfg.ReportOutputDir = "./reports"
	}
	if cfg.TeamName == "" {
		cfg.TeamName = "My Team"
	}
	if cfg.WatchSchedule == "" {
		cfg.WatchSchedule = "@every 30m"
	}

	// Validate required fields
	if len(cfg.GitHubRepos) == 0 {
		log.Fatalf("Required config 'github_repos' is not set (via config.yaml or env var)")
	}
	if cfg.ScheduleURL == "" && cfg.ScheduleICSURL == "" {
		log.Fatalf("One of 'schedule_url' or 'schedule_ics_url' must be set")
	}
	if cfg.WeekMonday == "" {
		log.Fatalf("Required config 'week_monday' is not set (via config.yaml or env var)")
	}
	if _, err := cfg.Week(); err != nil {
		log.Fatalf("invalid week_monday '%s': %v", cfg.WeekMonday, err)
	}
	if _, _, err := parseClock(cfg.WorkdayStart); err != nil {
		log.Fatalf("invalid workday_start '%s': %v", cfg.WorkdayStart, err)
	}
	if _, _, err := parseClock(cfg.WorkdayEnd); err != nil {
		log.Fatalf("invalid workday_end '%s': %v", cfg.WorkdayEnd, err)
	}
	if cfg.ClashBufferMinutes < 0 {
		log.Fatalf("invalid clash_buffer_minutes '%d': must be >= 0", cfg.ClashBufferMinutes)
	}

	return cfg
}

// Week parses the configured Monday anchor. The week is the run's single
// fixed frame of reference; nothing converts across timezones.
func (c Config) Week() (Week, error) {
	monday, err := time.ParseInLocation("2006-01-02", c.WeekMonday, time.Local)
	if err != nil {
		return Week{}, err
	}
	return Week{Monday: monday}, nil
}

func (c Config) ClashBuffer() time.Duration {
	return time.Duration(c.ClashBufferMinutes) * time.Minute
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}

func envOverrideList(field *[]string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = nil
		for _, item := range strings.Split(val, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				*field = append(*field, item)
			}
		}
	}
}
