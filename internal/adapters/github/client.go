// Package github provides a resilient GitHub REST v3 client: one request
// chokepoint that classifies every failure and feeds the quota tracker
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	perr "devpulse/internal/platform/errors"
	"devpulse/internal/platform/logger"
)

const (
	baseURLDefault  = "https://api.github.com"
	defaultUA       = "devpulse"
	defaultTimeout  = 10 * time.Second
	defaultPageSize = 100

	// hard ceiling on items collected per paginated call, guarantees
	// termination even if the provider's page-size contract changes
	defaultMaxItems = 1000

	// accept header pinned to the stable v3 media type, never a preview
	acceptStable = "application/vnd.github.v3+json"
)

// Doer abstracts *http.Client for tests
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Comma separated tokens passed in from CLI or config.
	// Empty means tokenless which is very low quota so not recommended
	TokensCSV string

	// Pagination contract
	PageSize int
	MaxItems int
}

// Client is a minimal GitHub REST client with token rotation and
// typed error classification. It never retries; callers wrap it
// with the retry driver at their own discretion
type Client struct {
	http   Doer
	opts   Options
	tokens []string
	cur    atomic.Int32
	quota  QuotaStore
	log    logger.Logger
	now    func() time.Time
}

// NewClient creates a new Client with sane defaults.
// quota may be nil, in which case an isolated in-memory store is used
func NewClient(o Options, quota QuotaStore) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.PageSize <= 0 || o.PageSize > 100 {
		o.PageSize = defaultPageSize
	}
	if o.MaxItems <= 0 {
		o.MaxItems = defaultMaxItems
	}
	var toks []string
	if s := strings.TrimSpace(o.TokensCSV); s != "" {
		for _, t := range strings.Split(s, ",") {
			t = strings.TrimSpace(t)
			if t != "" {
				toks = append(toks, t)
			}
		}
	}
	if quota == nil {
		quota = NewQuotaStore()
	}
	return &Client{
		http:   &http.Client{Timeout: o.Timeout},
		opts:   o,
		tokens: toks,
		quota:  quota,
		log:    *logger.Named("github"),
		now:    time.Now,
	}
}

// Quota returns the quota store this client feeds
func (c *Client) Quota() QuotaStore { return c.quota }

// getToken returns the next token in a round robin rotation
func (c *Client) getToken() string {
	if len(c.tokens) == 0 {
		return ""
	}
	n := int(c.cur.Add(1))
	return c.tokens[n%len(c.tokens)]
}

// get issues a GET against path and decodes the 2xx body into out.
//
// Classification order is load-bearing: quota exhaustion must be separated
// from a generic 403 before the insufficient-scope branch, and auth failures
// are never retryable no matter the status heuristics
func (c *Client) get(ctx context.Context, path string, out any) error {
	url := c.opts.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeNetwork, "github new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", acceptStable)
	if tok := c.getToken(); tok != "" {
		req.Header.Set("Authorization", "token "+tok)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)

	if err != nil {
		// DNS, refused connection, timeout: all plausibly transient
		return perr.NetworkWrap(err, true, "github do failed")
	}
	defer func() {
		if cerr := drainAndClose(resp.Body); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()

	rate, ok := parseRateHeaders(resp.Header)
	if ok && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		// successful responses overwrite the snapshot, absence of headers is not an error
		c.quota.Update(rate.limit, rate.remaining, rate.reset.Unix())
	}

	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Int("rate_remaining", rate.remaining).
		Msg("github http response")

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return perr.Authf("github rejected credentials")
	case resp.StatusCode == http.StatusForbidden && ok && rate.remaining == 0:
		return perr.QuotaExceeded(rate.limit, rate.remaining, rate.reset, c.now())
	case resp.StatusCode == http.StatusForbidden:
		return perr.Authf("github token lacks required scope")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return perr.Networkf(resp.StatusCode >= 500,
			"github unexpected status %d body %s", resp.StatusCode, string(tail))
	}

	if out == nil {
		return nil
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return perr.NetworkWrap(err, false, "github read body failed")
	}
	if err := json.Unmarshal(body, out); err != nil {
		return perr.NetworkWrap(err, false, "github decode failed")
	}
	return nil
}

// collectPages repeats a page fetch while the prior page was full-sized,
// accumulating results up to the client's MaxItems ceiling
func collectPages[T any](ctx context.Context, c *Client, path func(page, perPage int) string) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		var batch []T
		if err := c.get(ctx, path(page, c.opts.PageSize), &batch); err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < c.opts.PageSize {
			return all, nil
		}
		if len(all) >= c.opts.MaxItems {
			c.log.Warn().Int("items", len(all)).Msg("github pagination hit safety ceiling")
			return all[:c.opts.MaxItems], nil
		}
	}
}

func pagedPath(format string, args ...any) func(page, perPage int) string {
	base := fmt.Sprintf(format, args...)
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return func(page, perPage int) string {
		return fmt.Sprintf("%s%sper_page=%d&page=%d", base, sep, perPage, page)
	}
}
