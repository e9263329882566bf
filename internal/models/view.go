package models

import "time"

// ViewDocument kinds.
const (
	KindList         = "list"
	KindToday        = "today"
	KindEmpty        = "empty"
	KindNoneUpcoming = "none_upcoming"
	KindUnavailable  = "unavailable"
)

// Display markers, one per urgency tier.
const (
	MarkerToday    = "today"
	MarkerTomorrow = "tomorrow"
	MarkerWeek     = "week"
	MarkerLater    = "later"
)

// ViewGroup is one rendered line: everyone sharing the same occurrence date.
type ViewGroup struct {
	DaysUntil   int      `json:"daysUntil"`
	DisplayDate string   `json:"displayDate"`
	Marker      string   `json:"marker"`
	Names       []string `json:"names"`
}

// ViewDocument is the assembled display document handed back to the chat
// client and kept warm in the cache.
type ViewDocument struct {
	Kind        string      `json:"kind"`
	Header      string      `json:"header"`
	Today       []string    `json:"today,omitempty"`
	Groups      []ViewGroup `json:"groups,omitempty"`
	MoreCount   int         `json:"moreCount,omitempty"`
	GeneratedAt time.Time   `json:"generatedAt"`
}
