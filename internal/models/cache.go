package models

import "time"

// CacheEntry is the single cached rendered view for one installation.
// Expiry is decided by comparing ExpiresAt at read time, never by a sweep.
type CacheEntry struct {
	Payload   *ViewDocument `json:"payload"`
	CreatedAt time.Time     `json:"createdAt"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

// Expired reports whether the entry must be treated as absent at time now.
func (c *CacheEntry) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
