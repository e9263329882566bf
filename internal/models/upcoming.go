package models

// UpcomingEntry annotates an Entry with its distance to the next occurrence.
// Derived on every view generation, never persisted on its own.
type UpcomingEntry struct {
	Entry
	DaysUntil   int    `json:"daysUntil"`
	DisplayDate string `json:"displayDate"`
}

// Stats aggregates roster-wide counts relative to a reference date.
type Stats struct {
	Total        int         `json:"total"`
	ThisMonth    int         `json:"thisMonth"`
	NextMonth    int         `json:"nextMonth"`
	Within30Days int         `json:"within30Days"`
	PerMonth     map[int]int `json:"perMonth"`
	ModeMonth    int         `json:"modeMonth"`
}
