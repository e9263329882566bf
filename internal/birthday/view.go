package birthday

import (
	"time"

	"bbd/internal/models"
)

// Group caps before the overflow summary line kicks in.
const (
	CompactGroupCap  = 10
	ExpandedGroupCap = 20
)

// Fixed document headers.
const (
	headerUpcoming    = "Upcoming birthdays"
	headerEmpty       = "No birthdays tracked yet"
	headerNone        = "No upcoming birthdays"
	headerUnavailable = "Birthday data is currently unavailable"
)

// AssembleOptions controls the rendered layout. RosterSize distinguishes an
// empty roster from a roster with no matches inside the horizon.
type AssembleOptions struct {
	Expanded   bool
	RosterSize int
	Now        time.Time
}

// Assemble turns a sorted upcoming list into a display document. It never
// fails: input it cannot render meaningfully degrades to one of the fixed
// empty documents.
func Assemble(entries []models.UpcomingEntry, opts AssembleOptions) *models.ViewDocument {
	if opts.RosterSize == 0 {
		return fixedDocument(models.KindEmpty, headerEmpty, opts.Now)
	}

	var today []string
	var future []models.UpcomingEntry
	for _, e := range entries {
		if e.DaysUntil == 0 {
			today = append(today, e.Name)
		} else {
			future = append(future, e)
		}
	}

	if len(today) == 0 && len(future) == 0 {
		return fixedDocument(models.KindNoneUpcoming, headerNone, opts.Now)
	}

	groups := groupByOccurrence(future)

	limit := CompactGroupCap
	if opts.Expanded {
		limit = ExpandedGroupCap
	}
	more := 0
	if len(groups) > limit {
		for _, g := range groups[limit:] {
			more += len(g.Names)
		}
		groups = groups[:limit]
	}

	return &models.ViewDocument{
		Kind:        models.KindList,
		Header:      headerUpcoming,
		Today:       today,
		Groups:      groups,
		MoreCount:   more,
		GeneratedAt: opts.Now,
	}
}

// groupByOccurrence merges entries sharing the same occurrence date into one
// line. Input order is preserved, so groups stay sorted by distance and the
// names inside a group stay sorted by name.
func groupByOccurrence(entries []models.UpcomingEntry) []models.ViewGroup {
	type key struct {
		days int
		date string
	}
	index := make(map[key]int)
	var groups []models.ViewGroup
	for _, e := range entries {
		k := key{e.DaysUntil, e.DisplayDate}
		if i, ok := index[k]; ok {
			groups[i].Names = append(groups[i].Names, e.Name)
			continue
		}
		index[k] = len(groups)
		groups = append(groups, models.ViewGroup{
			DaysUntil:   e.DaysUntil,
			DisplayDate: e.DisplayDate,
			Marker:      markerFor(e.DaysUntil),
			Names:       []string{e.Name},
		})
	}
	return groups
}

// markerFor picks the urgency tier used for the line's icon.
func markerFor(daysUntil int) string {
	switch {
	case daysUntil == 0:
		return models.MarkerToday
	case daysUntil == 1:
		return models.MarkerTomorrow
	case daysUntil <= 7:
		return models.MarkerWeek
	default:
		return models.MarkerLater
	}
}

func fixedDocument(kind, header string, now time.Time) *models.ViewDocument {
	return &models.ViewDocument{Kind: kind, Header: header, GeneratedAt: now}
}

// UnavailableDocument is the generic end-user response when the read path
// fails. Internal errors never leak into it.
func UnavailableDocument(now time.Time) *models.ViewDocument {
	return fixedDocument(models.KindUnavailable, headerUnavailable, now)
}
