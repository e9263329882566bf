package birthday

import (
	"time"

	"bbd/internal/models"
)

// validRecurrence filters out structurally broken entries. Post-validation
// data never contains these, but stats can run over freshly migrated data
// before re-validation completes, so broken entries are skipped instead of
// crashing the aggregation.
func validRecurrence(e models.Entry) bool {
	return e.Month >= 1 && e.Month <= 12 && e.Day >= 1 && e.Day <= 31
}

// ComputeStats aggregates roster-wide counts relative to ref.
func ComputeStats(r *models.Roster, ref time.Time) *models.Stats {
	stats := &models.Stats{PerMonth: make(map[int]int)}
	if r == nil {
		return stats
	}
	stats.Total = len(r.Entries)

	thisMonth := int(ref.Month())
	nextMonth := thisMonth%12 + 1

	for _, e := range r.Entries {
		if !validRecurrence(e) {
			continue
		}
		if e.Month == thisMonth {
			stats.ThisMonth++
		}
		if e.Month == nextMonth {
			stats.NextMonth++
		}
		if DaysUntil(e.Month, e.Day, ref) <= 30 {
			stats.Within30Days++
		}
		stats.PerMonth[e.Month]++
	}

	// Mode: first month reaching the max count. The tie-break is arbitrary
	// but deterministic.
	maxCount := 0
	for m := 1; m <= 12; m++ {
		if stats.PerMonth[m] > maxCount {
			maxCount = stats.PerMonth[m]
			stats.ModeMonth = m
		}
	}
	return stats
}
