// Package http provides http transport for activity
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"devpulse/internal/modkit/httpkit"
	"devpulse/internal/platform/net/http/bind"
	"devpulse/internal/services/activity/domain"
	svc "devpulse/internal/services/activity/service"
)

// Register mounts activity endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/{login}/profile", h.profile)
	httpkit.Get(r, "/{login}/repos", h.repos)
	httpkit.Get(r, "/{login}/commits", h.commits)
	httpkit.Get(r, "/{login}/languages", h.languages)
	httpkit.Get(r, "/{login}/stats", h.stats)
	httpkit.Get(r, "/{login}/timeline", h.timeline)
}

// RegisterQuota mounts the quota probe endpoint
func RegisterQuota(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/quota", h.quota)
}

type handlers struct{ svc svc.Service }

type commitsQuery struct {
	Limit int `json:"limit" query:"limit" default:"20" validate:"min=1,max=200"`
}

type timelineQuery struct {
	Window int `json:"window" query:"window" default:"30" validate:"min=1,max=366"`
}

func login(r *stdhttp.Request) string { return chi.URLParam(r, "login") }

func (h *handlers) profile(r *stdhttp.Request) (any, error) {
	return h.svc.Profile(r.Context(), domain.LoginInput{Login: login(r)})
}

func (h *handlers) repos(r *stdhttp.Request) (any, error) {
	return h.svc.Repositories(r.Context(), domain.LoginInput{Login: login(r)})
}

func (h *handlers) commits(r *stdhttp.Request) (any, error) {
	q, err := bind.ParseQuery[commitsQuery](r)
	if err != nil {
		return nil, err
	}
	return h.svc.RecentCommits(r.Context(), domain.CommitsInput{
		Login: login(r),
		Limit: q.Limit,
	})
}

func (h *handlers) languages(r *stdhttp.Request) (any, error) {
	return h.svc.LanguageStats(r.Context(), domain.LoginInput{Login: login(r)})
}

func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	return h.svc.ContributionStats(r.Context(), domain.LoginInput{Login: login(r)})
}

func (h *handlers) timeline(r *stdhttp.Request) (any, error) {
	q, err := bind.ParseQuery[timelineQuery](r)
	if err != nil {
		return nil, err
	}
	return h.svc.ActivityTimeline(r.Context(), domain.TimelineInput{
		Login:      login(r),
		WindowDays: q.Window,
	})
}

func (h *handlers) quota(r *stdhttp.Request) (any, error) {
	return h.svc.Quota(r.Context())
}
