// Package service contains the developer-activity workflows
package service

import (
	"context"
	"sort"
	"time"

	"golang.org/x/text/unicode/norm"

	"devpulse/internal/adapters/github"
	"devpulse/internal/core/activity"
	"devpulse/internal/core/langshare"
	"devpulse/internal/platform/logger"
	"devpulse/internal/platform/net/http/bind"
	"devpulse/internal/platform/retry"
	pstrings "devpulse/internal/platform/strings"
	"devpulse/internal/services/activity/domain"
)

// Provider is the slice of the github adapter the service consumes
type Provider interface {
	UserByLogin(ctx context.Context, login string) (github.User, error)
	ReposByUser(ctx context.Context, login string) ([]github.Repo, error)
	RepoCommits(ctx context.Context, owner, repo, login string, since time.Time) ([]github.Commit, error)
	RepoLanguages(ctx context.Context, owner, repo string) (map[string]int64, error)
	RateLimit(ctx context.Context) (github.Snapshot, error)
	Quota() github.QuotaStore
}

// Service defines the activity service contract
type Service interface {
	domain.ServicePort
}

// Options bounds the per-operation provider load
type Options struct {
	// MaxRepos caps how many repositories the merge operations touch,
	// newest pushed first. Zero means the default of 10
	MaxRepos int
	// Lookback bounds how far back commits are fetched. Zero means a year
	Lookback time.Duration
	// Retry is applied around every provider call
	Retry retry.Options
}

// Svc implements the activity service
type Svc struct {
	prov  Provider
	opts  Options
	log   *logger.Logger
	today func() time.Time
}

// New constructs the activity service
func New(prov Provider, opts Options) *Svc {
	if opts.MaxRepos <= 0 {
		opts.MaxRepos = 10
	}
	if opts.Lookback <= 0 {
		opts.Lookback = 365 * 24 * time.Hour
	}
	return &Svc{
		prov:  prov,
		opts:  opts,
		log:   logger.Named("activity"),
		today: func() time.Time { return time.Now().UTC() },
	}
}

// Profile fetches one developer profile
func (s *Svc) Profile(ctx context.Context, in domain.LoginInput) (domain.Profile, error) {
	if err := bind.Struct(in); err != nil {
		return domain.Profile{}, err
	}
	u, err := retry.Do(ctx, s.opts.Retry, func(ctx context.Context) (github.User, error) {
		return s.prov.UserByLogin(ctx, in.Login)
	})
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{
		Login:       u.Login,
		Name:        u.Name,
		Company:     u.Company,
		Location:    u.Location,
		Bio:         u.Bio,
		AvatarURL:   u.AvatarURL,
		Followers:   u.Followers,
		Following:   u.Following,
		PublicRepos: u.PublicRepos,
		CreatedAt:   u.CreatedAt,
		URL:         u.HTMLURL,
	}, nil
}

// Repositories lists the developer's public repositories, newest pushed first
func (s *Svc) Repositories(ctx context.Context, in domain.LoginInput) ([]domain.Repository, error) {
	if err := bind.Struct(in); err != nil {
		return nil, err
	}
	repos, err := s.repos(ctx, in.Login)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Repository, 0, len(repos))
	for _, r := range repos {
		out = append(out, domain.Repository{
			Name:     r.Name,
			FullName: r.FullName,
			Language: r.Language,
			Stars:    r.Stargazers,
			Forks:    r.ForksCount,
			IsFork:   r.Fork,
			PushedAt: r.PushedAt,
			URL:      r.HTMLURL,
		})
	}
	return out, nil
}

// RecentCommits merges commits across the newest repositories, sorted
// newest first and capped at the requested limit
func (s *Svc) RecentCommits(ctx context.Context, in domain.CommitsInput) ([]domain.Commit, error) {
	if err := bind.Struct(in); err != nil {
		return nil, err
	}
	commits, err := s.mergedCommits(ctx, in.Login)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(commits, func(i, j int) bool {
		return commits[i].CommittedAt.After(commits[j].CommittedAt)
	})
	if len(commits) > in.Limit {
		commits = commits[:in.Limit]
	}
	return commits, nil
}

// LanguageStats merges language byte counts across repositories in repo
// list order and normalizes them into percentage shares
func (s *Svc) LanguageStats(ctx context.Context, in domain.LoginInput) ([]domain.LanguageShare, error) {
	if err := bind.Struct(in); err != nil {
		return nil, err
	}
	repos, err := s.repos(ctx, in.Login)
	if err != nil {
		return nil, err
	}

	acc := langshare.NewAccumulator()
	for _, r := range s.boundRepos(repos) {
		counts, err := retry.Do(ctx, s.opts.Retry, func(ctx context.Context) (map[string]int64, error) {
			return s.prov.RepoLanguages(ctx, r.Owner.Login, r.Name)
		})
		if err != nil {
			return nil, err
		}
		acc.Add(counts)
	}

	shares := acc.Shares()
	out := make([]domain.LanguageShare, 0, len(shares))
	for _, sh := range shares {
		out = append(out, domain.LanguageShare{
			Name:       sh.Name,
			Percentage: sh.Percentage,
			ColorTag:   sh.ColorTag,
		})
	}
	return out, nil
}

// ContributionStats derives streak accounting from the merged commits
func (s *Svc) ContributionStats(ctx context.Context, in domain.LoginInput) (domain.ContributionStats, error) {
	if err := bind.Struct(in); err != nil {
		return domain.ContributionStats{}, err
	}
	commits, err := s.mergedCommits(ctx, in.Login)
	if err != nil {
		return domain.ContributionStats{}, err
	}
	instants := make([]time.Time, 0, len(commits))
	for _, c := range commits {
		instants = append(instants, c.CommittedAt)
	}
	stats := activity.Compute(instants, s.today())
	return domain.ContributionStats{
		TotalCommits:      stats.TotalCommits,
		ActiveDays:        stats.ActiveDays,
		AvgCommitsPerWeek: stats.AvgPerWeek,
		LongestStreak:     stats.LongestStreak,
		CurrentStreak:     stats.CurrentStreak,
	}, nil
}

// ActivityTimeline buckets the merged commits into a dense daily calendar
func (s *Svc) ActivityTimeline(ctx context.Context, in domain.TimelineInput) ([]domain.CalendarDay, error) {
	if err := bind.Struct(in); err != nil {
		return nil, err
	}
	commits, err := s.mergedCommits(ctx, in.Login)
	if err != nil {
		return nil, err
	}
	instants := make([]time.Time, 0, len(commits))
	for _, c := range commits {
		instants = append(instants, c.CommittedAt)
	}

	cal := activity.Calendar(instants, in.WindowDays, s.today())
	out := make([]domain.CalendarDay, 0, len(cal))
	for _, d := range cal {
		out = append(out, domain.CalendarDay{
			Date:        d.Date.Format("2006-01-02"),
			CommitCount: d.Count,
		})
	}
	return out, nil
}

// Quota reports the last observed quota window, probing the provider
// when nothing has been recorded yet
func (s *Svc) Quota(ctx context.Context) (domain.QuotaStatus, error) {
	store := s.prov.Quota()
	snap, ok := store.Read()
	if !ok {
		probed, err := retry.Do(ctx, s.opts.Retry, func(ctx context.Context) (github.Snapshot, error) {
			return s.prov.RateLimit(ctx)
		})
		if err != nil {
			return domain.QuotaStatus{}, err
		}
		snap = probed
	}
	return domain.QuotaStatus{
		Limit:       snap.Limit,
		Remaining:   snap.Remaining,
		ResetAt:     snap.ResetAt,
		ResetInSecs: int64(snap.ResetIn(s.today()) / time.Second),
		Low:         store.IsLow(),
	}, nil
}

// repos fetches the repo list once per operation
func (s *Svc) repos(ctx context.Context, login string) ([]github.Repo, error) {
	return retry.Do(ctx, s.opts.Retry, func(ctx context.Context) ([]github.Repo, error) {
		return s.prov.ReposByUser(ctx, login)
	})
}

// boundRepos drops forks and applies the MaxRepos cap
func (s *Svc) boundRepos(repos []github.Repo) []github.Repo {
	out := make([]github.Repo, 0, s.opts.MaxRepos)
	for _, r := range repos {
		if r.Fork {
			continue
		}
		out = append(out, r)
		if len(out) == s.opts.MaxRepos {
			break
		}
	}
	return out
}

// mergedCommits walks the bounded repo list sequentially and merges the
// developer's commits, normalizing each message to its NFC first line
func (s *Svc) mergedCommits(ctx context.Context, login string) ([]domain.Commit, error) {
	repos, err := s.repos(ctx, login)
	if err != nil {
		return nil, err
	}
	since := s.today().Add(-s.opts.Lookback)

	var out []domain.Commit
	for _, r := range s.boundRepos(repos) {
		commits, err := retry.Do(ctx, s.opts.Retry, func(ctx context.Context) ([]github.Commit, error) {
			return s.prov.RepoCommits(ctx, r.Owner.Login, r.Name, login, since)
		})
		if err != nil {
			return nil, err
		}
		for _, c := range commits {
			nc := domain.Commit{
				Repo:        r.FullName,
				Message:     norm.NFC.String(pstrings.FirstLine(c.Commit.Message)),
				CommittedAt: c.Commit.Author.Date,
				URL:         c.HTMLURL,
			}
			if c.Stats != nil {
				nc.Additions = c.Stats.Additions
				nc.Deletions = c.Stats.Deletions
			}
			out = append(out, nc)
		}
	}
	s.log.Debug().Str("login", login).Int("commits", len(out)).Msg("merged commits")
	return out, nil
}
