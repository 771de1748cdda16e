// Package domain holds DTOs for activity http and service contracts
package domain

import "time"

// Profile is the public face of a developer account
type Profile struct {
	Login       string    `json:"login"`
	Name        string    `json:"name,omitempty"`
	Company     string    `json:"company,omitempty"`
	Location    string    `json:"location,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
	URL         string    `json:"url"`
}

// Repository is one public repository row
type Repository struct {
	Name     string    `json:"name"`
	FullName string    `json:"full_name"`
	Language string    `json:"language,omitempty"`
	Stars    int       `json:"stars"`
	Forks    int       `json:"forks"`
	IsFork   bool      `json:"is_fork"`
	PushedAt time.Time `json:"pushed_at"`
	URL      string    `json:"url"`
}

// Commit is a normalized commit, message reduced to its first line
type Commit struct {
	Repo        string    `json:"repo"`
	Message     string    `json:"message"`
	Additions   int       `json:"additions"`
	Deletions   int       `json:"deletions"`
	CommittedAt time.Time `json:"committed_at"`
	URL         string    `json:"url"`
}

// ContributionStats is the streak accounting for one developer
type ContributionStats struct {
	TotalCommits      int     `json:"total_commits"`
	ActiveDays        int     `json:"active_days"`
	AvgCommitsPerWeek float64 `json:"avg_commits_per_week"`
	LongestStreak     int     `json:"longest_streak"`
	CurrentStreak     int     `json:"current_streak"`
}

// CalendarDay is one day of the timeline, zero counts included
type CalendarDay struct {
	Date        string `json:"date"`
	CommitCount int    `json:"commit_count"`
}

// LanguageShare is one language row of the byte-share breakdown
type LanguageShare struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	ColorTag   string  `json:"color_tag"`
}

// QuotaStatus reports the last observed provider quota window
type QuotaStatus struct {
	Limit       int       `json:"limit"`
	Remaining   int       `json:"remaining"`
	ResetAt     time.Time `json:"reset_at"`
	ResetInSecs int64     `json:"reset_in_secs"`
	Low         bool      `json:"low"`
}

// Inputs

// LoginInput identifies a developer account
type LoginInput struct {
	Login string `json:"login" query:"login" validate:"required,min=1,max=39"`
}

// CommitsInput bounds the recent-commits merge
type CommitsInput struct {
	Login string `json:"login" query:"login" validate:"required,min=1,max=39"`
	Limit int    `json:"limit" query:"limit" default:"20" validate:"min=1,max=200"`
}

// TimelineInput bounds the calendar window
type TimelineInput struct {
	Login      string `json:"login" query:"login" validate:"required,min=1,max=39"`
	WindowDays int    `json:"window" query:"window" default:"30" validate:"min=1,max=366"`
}
