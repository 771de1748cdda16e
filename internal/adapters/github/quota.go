package github

import (
	"sync/atomic"
	"time"
)

// Snapshot is the last observed rate limit state
type Snapshot struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// ResetIn reports the wait until the window resets, floored at zero.
// Computed against now at read time, never stored stale
func (s Snapshot) ResetIn(now time.Time) time.Duration {
	d := s.ResetAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// QuotaStore tracks the last observed quota snapshot.
// Injectable so tests can substitute an isolated instance per case
type QuotaStore interface {
	// Update overwrites the snapshot unconditionally, last writer wins
	Update(limit, remaining int, resetEpoch int64)
	// Read returns the snapshot, false before the first update
	Read() (Snapshot, bool)
	// IsLow reports remaining below 10% of the limit
	IsLow() bool
}

// memQuota is the in-memory store. No lock: concurrent writers race and the
// last completed response wins, which is fine for advisory telemetry
type memQuota struct {
	snap atomic.Pointer[Snapshot]
}

// NewQuotaStore returns an empty in-memory quota store
func NewQuotaStore() QuotaStore { return &memQuota{} }

func (m *memQuota) Update(limit, remaining int, resetEpoch int64) {
	m.snap.Store(&Snapshot{
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   time.Unix(resetEpoch, 0).UTC(),
	})
}

func (m *memQuota) Read() (Snapshot, bool) {
	p := m.snap.Load()
	if p == nil {
		return Snapshot{}, false
	}
	return *p, true
}

func (m *memQuota) IsLow() bool {
	p := m.snap.Load()
	if p == nil || p.Limit == 0 {
		return false
	}
	return float64(p.Remaining) < 0.10*float64(p.Limit)
}
