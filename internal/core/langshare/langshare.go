// Package langshare turns per-language byte counts into display-ready
// percentage shares. Rounded percentages are reconciled so they always
// sum to exactly 100.00 for a non-empty input
package langshare

import (
	"math"
	"sort"
)

// Share is one language row of the final breakdown
type Share struct {
	Name       string  `json:"name"`
	Bytes      int64   `json:"bytes"`
	Percentage float64 `json:"percentage"`
	ColorTag   string  `json:"color_tag"`
}

// Accumulator merges byte counts across sources while remembering the
// order each language was first seen, which breaks byte-count ties
type Accumulator struct {
	bytes map[string]int64
	order []string
}

// NewAccumulator returns an empty accumulator
func NewAccumulator() *Accumulator {
	return &Accumulator{bytes: make(map[string]int64)}
}

// Add merges one byte-count mapping in deterministic key order
func (a *Accumulator) Add(counts map[string]int64) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if counts[k] < 0 {
			continue
		}
		if _, seen := a.bytes[k]; !seen {
			a.order = append(a.order, k)
		}
		a.bytes[k] += counts[k]
	}
}

// Shares computes the reconciled percentage breakdown of everything
// accumulated so far
func (a *Accumulator) Shares() []Share {
	entries := make([]Share, 0, len(a.order))
	for _, name := range a.order {
		entries = append(entries, Share{Name: name, Bytes: a.bytes[name]})
	}
	return Compute(entries)
}

// Compute derives percentage shares from byte counts listed in
// first-seen order. Zero total bytes yields an empty slice.
//
// Each raw percentage is rounded to 2 decimals; any drift from 100 after
// rounding is added wholly to the largest entry so the correction stays
// deterministic and the dominant bar stays visually stable
func Compute(entries []Share) []Share {
	var total int64
	for _, e := range entries {
		total += e.Bytes
	}
	if total == 0 {
		return nil
	}

	out := make([]Share, len(entries))
	copy(out, entries)

	// descending by raw bytes pre-rounding so rounding can never flip order,
	// ties keep first-seen order
	sort.SliceStable(out, func(i, j int) bool { return out[i].Bytes > out[j].Bytes })

	var sum float64
	for i := range out {
		out[i].Percentage = round2(float64(out[i].Bytes) / float64(total) * 100)
		out[i].ColorTag = colorOf(out[i].Name)
		sum += out[i].Percentage
	}
	if dev := 100 - sum; math.Abs(dev) > 1e-9 {
		out[0].Percentage = round2(out[0].Percentage + dev)
	}
	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
