package github

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// UserByLogin fetches a user profile
func (c *Client) UserByLogin(ctx context.Context, login string) (User, error) {
	var out User
	err := c.get(ctx, "/users/"+url.PathEscape(login), &out)
	return out, err
}

// ReposByUser fetches all public repositories for a user, most recently
// pushed first, paginated up to the client's item ceiling
func (c *Client) ReposByUser(ctx context.Context, login string) ([]Repo, error) {
	return collectPages[Repo](ctx, c,
		pagedPath("/users/%s/repos?sort=pushed", url.PathEscape(login)))
}

// RepoCommits fetches commits authored by login on a repository since the
// given instant, paginated up to the client's item ceiling
func (c *Client) RepoCommits(ctx context.Context, owner, repo, login string, since time.Time) ([]Commit, error) {
	base := fmt.Sprintf("/repos/%s/%s/commits?author=%s",
		url.PathEscape(owner), url.PathEscape(repo), url.QueryEscape(login))
	if !since.IsZero() {
		base += "&since=" + url.QueryEscape(since.UTC().Format(time.RFC3339))
	}
	return collectPages[Commit](ctx, c, pagedPath("%s", base))
}

// RepoLanguages fetches the language byte breakdown for a repo
func (c *Client) RepoLanguages(ctx context.Context, owner, repo string) (map[string]int64, error) {
	var out map[string]int64
	err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/languages",
		url.PathEscape(owner), url.PathEscape(repo)), &out)
	return out, err
}

// RateLimit fetches the core resource window from GET /rate_limit.
// The endpoint itself does not count against the quota
func (c *Client) RateLimit(ctx context.Context) (Snapshot, error) {
	var out struct {
		Resources struct {
			Core struct {
				Limit     int   `json:"limit"`
				Remaining int   `json:"remaining"`
				Reset     int64 `json:"reset"`
			} `json:"core"`
		} `json:"resources"`
	}
	if err := c.get(ctx, "/rate_limit", &out); err != nil {
		return Snapshot{}, err
	}
	core := out.Resources.Core
	c.quota.Update(core.Limit, core.Remaining, core.Reset)
	return Snapshot{
		Limit:     core.Limit,
		Remaining: core.Remaining,
		ResetAt:   time.Unix(core.Reset, 0).UTC(),
	}, nil
}
