package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
)

type githubIssueItem struct {
	Number      int             `json:"number"`
	Title       string          `json:"title"`
	HTMLURL     string          `json:"html_url"`
	Body        string          `json:"body"`
	Assignees   []githubUser    `json:"assignees"`
	PullRequest json.RawMessage `json:"pull_request"`
}

type githubUser struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}

// FetchIssues lists the open meeting issues of every configured repo.
// Each repo is one source collection; the duplicate detector relies on
// that boundary.
func FetchIssues(cfg Config) ([]Issue, error) {
	var all []Issue
	for _, repo := range cfg.GitHubRepos {
		issues, err := fetchRepoIssues(cfg.GitHubToken, repo, cfg.MeetingLabel)
		if err != nil {
			return nil, fmt.Errorf("fetching issues from %s: %w", repo, err)
		}
		log.Printf("issue fetch repo=%s count=%d", repo, len(issues))
		all = append(all, issues...)
	}
	return all, nil
}

func fetchRepoIssues(token, repo, label string) ([]Issue, error) {
	var out []Issue
	page := 1

	for {
		apiURL := fmt.Sprintf("https://api.github.com/repos/%s/issues?state=open&labels=%s&per_page=100&page=%d",
			repo, url.QueryEscape(label), page)

		req, err := http.NewRequest("GET", apiURL, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		req.Header.Set("Accept", "application/vnd.github+json")

		resp, err := externalHTTPClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("executing request: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading response: %w", err)
		}

		if resp.StatusCode != 200 {
			return nil, fmt.Errorf("GitHub API returned %d: %s", resp.StatusCode, string(body))
		}

		var items []githubIssueItem
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, fmt.Errorf("parsing response: %w", err)
		}

		for _, item := range items {
			// The issues endpoint also returns pull requests.
			if item.PullRequest != nil {
				continue
			}
			out = append(out, convertGitHubIssue(repo, item))
		}

		if len(items) < 100 {
			break
		}
		page++
	}

	return out, nil
}

func convertGitHubIssue(repo string, item githubIssueItem) Issue {
	var assignees []IssueUser
	for _, u := range item.Assignees {
		name := u.Name
		if name == "" {
			name = u.Login
		}
		assignees = append(assignees, IssueUser{Login: u.Login, Name: name})
	}
	return Issue{
		Repo:      repo,
		Number:    item.Number,
		Title:     item.Title,
		URL:       item.HTMLURL,
		Body:      item.Body,
		Assignees: assignees,
	}
}
