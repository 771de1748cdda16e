package github

import (
	"sync"
	"testing"
	"time"
)

func TestQuotaStoreEmptyRead(t *testing.T) {
	q := NewQuotaStore()
	if _, ok := q.Read(); ok {
		t.Fatalf("fresh store must read false")
	}
	if q.IsLow() {
		t.Fatalf("fresh store is not low")
	}
}

func TestQuotaStoreLastWriterWins(t *testing.T) {
	q := NewQuotaStore()
	q.Update(5000, 4000, 1700000000)
	q.Update(5000, 3999, 1700000100)

	snap, ok := q.Read()
	if !ok {
		t.Fatalf("read false after update")
	}
	if snap.Remaining != 3999 {
		t.Fatalf("remaining = %d, want latest write", snap.Remaining)
	}
	if !snap.ResetAt.Equal(time.Unix(1700000100, 0).UTC()) {
		t.Fatalf("resetAt = %v", snap.ResetAt)
	}
}

func TestQuotaStoreIsLowBoundary(t *testing.T) {
	cases := []struct {
		limit, remaining int
		want             bool
	}{
		{5000, 500, false}, // exactly 10% is not low
		{5000, 499, true},
		{5000, 0, true},
		{60, 6, false},
		{60, 5, true},
		{0, 0, false}, // degenerate limit never reports low
	}
	for _, tc := range cases {
		q := NewQuotaStore()
		q.Update(tc.limit, tc.remaining, 1700000000)
		if got := q.IsLow(); got != tc.want {
			t.Fatalf("IsLow(%d/%d) = %v, want %v", tc.remaining, tc.limit, got, tc.want)
		}
	}
}

func TestSnapshotResetInFloorsAtZero(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s := Snapshot{ResetAt: now.Add(90 * time.Second)}
	if got := s.ResetIn(now); got != 90*time.Second {
		t.Fatalf("ResetIn = %v", got)
	}
	past := Snapshot{ResetAt: now.Add(-time.Minute)}
	if got := past.ResetIn(now); got != 0 {
		t.Fatalf("ResetIn for past reset = %v, want 0", got)
	}
}

func TestQuotaStoreConcurrentUpdates(t *testing.T) {
	q := NewQuotaStore()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Update(5000, i, 1700000000)
		}()
	}
	wg.Wait()

	snap, ok := q.Read()
	if !ok {
		t.Fatalf("read false after concurrent updates")
	}
	if snap.Remaining < 0 || snap.Remaining >= 32 {
		t.Fatalf("remaining = %d, must be one of the written values", snap.Remaining)
	}
}
