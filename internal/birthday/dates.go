package birthday

import (
	"sort"
	"strconv"
	"time"

	"bbd/internal/models"
)

// IsLeapYear reports whether year is a leap year in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Normalize strips the time-of-day component, keeping the location.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// occurrenceIn builds the concrete occurrence of (month, day) in year.
// A Feb 29 entry falls back to Feb 28 when year is not a leap year, so the
// person still gets exactly one occurrence per year.
func occurrenceIn(year, month, day int, loc *time.Location) time.Time {
	if month == 2 && day == 29 && !IsLeapYear(year) {
		day = 28
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
}

// DaysUntil returns the number of calendar days from `from` to the next
// occurrence of the annual (month, day) recurrence. Zero means today.
func DaysUntil(month, day int, from time.Time) int {
	from = Normalize(from)
	candidate := occurrenceIn(from.Year(), month, day, from.Location())
	if candidate.Before(from) {
		candidate = occurrenceIn(from.Year()+1, month, day, from.Location())
	}
	// Both timestamps are midnight in the same location; rounding absorbs
	// DST shifts inside the interval.
	return int(candidate.Sub(from).Round(24*time.Hour) / (24 * time.Hour))
}

// DisplayDate renders the stored recurrence as a human "Month Day" string.
func DisplayDate(month, day int) string {
	return time.Month(month).String() + " " + strconv.Itoa(day)
}

func annotate(e models.Entry, from time.Time) models.UpcomingEntry {
	return models.UpcomingEntry{
		Entry:       e,
		DaysUntil:   DaysUntil(e.Month, e.Day, from),
		DisplayDate: DisplayDate(e.Month, e.Day),
	}
}

// TodaysEntries returns the entries whose occurrence falls on date's calendar
// day, with the Feb 29 fallback applied on non-leap years.
func TodaysEntries(r *models.Roster, date time.Time) []models.UpcomingEntry {
	var out []models.UpcomingEntry
	if r == nil {
		return out
	}
	for _, e := range r.Entries {
		if DaysUntil(e.Month, e.Day, date) == 0 {
			out = append(out, annotate(e, date))
		}
	}
	sortUpcoming(out)
	return out
}

// Upcoming returns the entries occurring within horizonDays of `from`, sorted
// by distance, ties broken by name.
func Upcoming(r *models.Roster, horizonDays int, from time.Time) []models.UpcomingEntry {
	var out []models.UpcomingEntry
	if r == nil {
		return out
	}
	for _, e := range r.Entries {
		ue := annotate(e, from)
		if ue.DaysUntil <= horizonDays {
			out = append(out, ue)
		}
	}
	sortUpcoming(out)
	return out
}

func sortUpcoming(entries []models.UpcomingEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].DaysUntil != entries[j].DaysUntil {
			return entries[i].DaysUntil < entries[j].DaysUntil
		}
		return entries[i].Name < entries[j].Name
	})
}
