package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"devpulse/internal/adapters/github"
	"devpulse/internal/modkit"
	"devpulse/internal/platform/config"
	perr "devpulse/internal/platform/errors"
	"devpulse/internal/platform/logger"
	"devpulse/internal/services/activity/domain"
	activitymod "devpulse/internal/services/activity/module"
	activitysvc "devpulse/internal/services/activity/service"
)

func main() {
	_ = godotenv.Load()

	user := flag.String("user", "", "github login to report on")
	window := flag.Int("window", 30, "timeline window in days")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "usage: devpulse-report -user <login> [-window days]")
		os.Exit(2)
	}

	root := config.New()
	ghCfg := root.Prefix("GITHUB_")
	l := logger.Get()

	gh := github.NewClient(github.Options{
		BaseURL:   ghCfg.MayString("BASE_URL", ""),
		TokensCSV: ghCfg.MayString("TOKENS", ""),
	}, nil)

	svc := activitysvc.New(gh, activitymod.FromConfig(modkit.Deps{Cfg: root, GitHub: gh}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := report(ctx, svc, *user, *window); err != nil {
		l.Error().Err(err).Msg("report failed")
		fmt.Fprintf(os.Stderr, "error (%s): %v\n", kindOf(err), err)
		os.Exit(1)
	}
}

func report(ctx context.Context, svc activitysvc.Service, user string, window int) error {
	profile, err := svc.Profile(ctx, domain.LoginInput{Login: user})
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s)\n", profile.Login, profile.Name)
	if profile.Bio != "" {
		fmt.Printf("  %s\n", profile.Bio)
	}
	fmt.Printf("  repos %d, followers %d, following %d\n\n",
		profile.PublicRepos, profile.Followers, profile.Following)

	stats, err := svc.ContributionStats(ctx, domain.LoginInput{Login: user})
	if err != nil {
		return err
	}
	fmt.Printf("contributions\n")
	fmt.Printf("  commits %d across %d active days\n", stats.TotalCommits, stats.ActiveDays)
	fmt.Printf("  %.1f commits/week, longest streak %d, current streak %d\n\n",
		stats.AvgCommitsPerWeek, stats.LongestStreak, stats.CurrentStreak)

	cal, err := svc.ActivityTimeline(ctx, domain.TimelineInput{Login: user, WindowDays: window})
	if err != nil {
		return err
	}
	active := 0
	for _, d := range cal {
		if d.CommitCount > 0 {
			active++
		}
	}
	fmt.Printf("timeline (last %d days)\n  %d of %d days active\n\n", window, active, len(cal))

	shares, err := svc.LanguageStats(ctx, domain.LoginInput{Login: user})
	if err != nil {
		return err
	}
	fmt.Printf("languages\n")
	for _, s := range shares {
		fmt.Printf("  %-14s %6.2f%% %s\n", s.Name, s.Percentage, bar(s.Percentage))
	}

	quota, err := svc.Quota(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("\nquota %d/%d, resets in %ds\n", quota.Remaining, quota.Limit, quota.ResetInSecs)
	return nil
}

// bar renders a percentage as a coarse 40-column bar
func bar(pct float64) string {
	n := int(pct / 2.5)
	if n < 1 && pct > 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func kindOf(err error) string {
	switch perr.CodeOf(err) {
	case perr.ErrorCodeValidation:
		return "validation"
	case perr.ErrorCodeAuth:
		return "auth"
	case perr.ErrorCodeQuotaExceeded:
		return "quota"
	case perr.ErrorCodeNetwork:
		return "network"
	default:
		return "unknown"
	}
}
