package models

// Entry is one person's recurring annual date. No birth year is stored.
type Entry struct {
	Name       string `json:"name"`
	Month      int    `json:"month"`
	Day        int    `json:"day"`
	ExternalID string `json:"externalId,omitempty"`
}

// Roster is the full collection of tracked entries. It is always replaced
// wholesale, never patched.
type Roster struct {
	Entries []Entry `json:"entries"`
}

// MaxEntries bounds the roster size, enforced at the write boundary only so
// that read-time migration of over-sized legacy data does not fail.
const MaxEntries = 1000
