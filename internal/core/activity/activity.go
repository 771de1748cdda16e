// Package activity derives streak and calendar analytics from commit
// timestamps. Day boundaries are UTC, the single source of truth for
// "same day"; "today" is always an explicit parameter so the functions
// stay pure and clock-free
package activity

import (
	"sort"
	"time"
)

// DayKey identifies one UTC calendar day
type DayKey struct {
	Year  int
	Month time.Month
	Day   int
}

// KeyOf buckets an instant into its UTC calendar day
func KeyOf(t time.Time) DayKey {
	y, m, d := t.UTC().Date()
	return DayKey{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of the day
func (k DayKey) Time() time.Time {
	return time.Date(k.Year, k.Month, k.Day, 0, 0, 0, 0, time.UTC)
}

// Prev returns the preceding calendar day
func (k DayKey) Prev() DayKey { return KeyOf(k.Time().AddDate(0, 0, -1)) }

// Before reports calendar ordering
func (k DayKey) Before(o DayKey) bool { return k.Time().Before(o.Time()) }

// ActiveDays buckets commit instants into the distinct set of UTC days
// with at least one commit
func ActiveDays(instants []time.Time) map[DayKey]struct{} {
	days := make(map[DayKey]struct{}, len(instants))
	for _, t := range instants {
		days[KeyOf(t)] = struct{}{}
	}
	return days
}

// LongestStreak finds the longest run of consecutive active days.
// Zero or one active day yields the active-day count itself
func LongestStreak(days map[DayKey]struct{}) int {
	if len(days) == 0 {
		return 0
	}
	keys := sortedKeys(days)

	best, run := 1, 1
	for i := 1; i < len(keys); i++ {
		// a gap of exactly one calendar day extends the run, anything else resets it
		if keys[i-1].Time().AddDate(0, 0, 1).Equal(keys[i].Time()) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}

// CurrentStreak walks backward from today counting consecutive active
// days. A quiet today means the streak is already broken: zero
func CurrentStreak(days map[DayKey]struct{}, today time.Time) int {
	k := KeyOf(today)
	n := 0
	for {
		if _, ok := days[k]; !ok {
			return n
		}
		n++
		k = k.Prev()
	}
}

// AvgPerWeek divides total commits by the ceil-week span between the
// first and last active day, clamped to at least one week so a burst
// on a single day does not blow up the average
func AvgPerWeek(total int, days map[DayKey]struct{}) float64 {
	if total == 0 || len(days) == 0 {
		return 0
	}
	keys := sortedKeys(days)
	span := keys[len(keys)-1].Time().Sub(keys[0].Time())
	weeks := int(span.Hours()/24+6) / 7
	if weeks < 1 {
		weeks = 1
	}
	return float64(total) / float64(weeks)
}

// Stats is the full streak accounting for one commit set
type Stats struct {
	TotalCommits  int
	ActiveDays    int
	AvgPerWeek    float64
	LongestStreak int
	CurrentStreak int
}

// Compute derives Stats from commit instants against an explicit today
func Compute(instants []time.Time, today time.Time) Stats {
	days := ActiveDays(instants)
	return Stats{
		TotalCommits:  len(instants),
		ActiveDays:    len(days),
		AvgPerWeek:    AvgPerWeek(len(instants), days),
		LongestStreak: LongestStreak(days),
		CurrentStreak: CurrentStreak(days, today),
	}
}

// CalendarDay is one day of the activity calendar, zero counts included
type CalendarDay struct {
	Date  time.Time
	Count int
}

// Calendar buckets commits into a dense ascending day sequence spanning
// [today-windowDays, today] inclusive. Output length is always
// windowDays+1 no matter how sparse the input is
func Calendar(instants []time.Time, windowDays int, today time.Time) []CalendarDay {
	if windowDays < 0 {
		windowDays = 0
	}
	end := KeyOf(today)
	start := KeyOf(end.Time().AddDate(0, 0, -windowDays))

	counts := make(map[DayKey]int, len(instants))
	for _, t := range instants {
		k := KeyOf(t)
		if k.Before(start) || end.Before(k) {
			continue
		}
		counts[k]++
	}

	out := make([]CalendarDay, 0, windowDays+1)
	for k := start; ; k = KeyOf(k.Time().AddDate(0, 0, 1)) {
		out = append(out, CalendarDay{Date: k.Time(), Count: counts[k]})
		if k == end {
			return out
		}
	}
}

func sortedKeys(days map[DayKey]struct{}) []DayKey {
	keys := make([]DayKey, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	return keys
}
