package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Profile(ctx context.Context, in LoginInput) (Profile, error)
	Repositories(ctx context.Context, in LoginInput) ([]Repository, error)
	RecentCommits(ctx context.Context, in CommitsInput) ([]Commit, error)
	LanguageStats(ctx context.Context, in LoginInput) ([]LanguageShare, error)
	ContributionStats(ctx context.Context, in LoginInput) (ContributionStats, error)
	ActivityTimeline(ctx context.Context, in TimelineInput) ([]CalendarDay, error)
	Quota(ctx context.Context) (QuotaStatus, error)
}
