// Package cache owns the single cached rendered view per installation.
//
// The coordinator is an explicit handle injected wherever a request or task
// needs it; there is deliberately no process-wide singleton. Expiry is lazy:
// ExpiresAt is compared at read time on every path, no background sweep runs.
package cache

import (
	"time"

	json "github.com/goccy/go-json"

	"bbd/internal/models"
	"bbd/internal/providers"
)

type CoordinatorInterface interface {
	Get(installationID string) *models.ViewDocument
	Set(installationID string, doc *models.ViewDocument, ttl time.Duration)
	Invalidate(installationID string)
}

// Coordinator layers the in-process hot cache over the durable KV slot.
// Both layers hold the same serialized CacheEntry envelope, so the expiry
// check applies identically to hot hits and durable hits.
type Coordinator struct {
	storage providers.StorageProviderInterface
	hot     providers.CacheProviderInterface
	logger  providers.Logger
	now     func() time.Time
}

func NewCacheCoordinator(storage providers.StorageProviderInterface, hot providers.CacheProviderInterface, logger providers.Logger) CoordinatorInterface {
	return &Coordinator{
		storage: storage,
		hot:     hot,
		logger:  logger,
		now:     time.Now,
	}
}

// Get returns the cached payload, or nil when the slot is empty or the entry
// expired. Storage failures degrade to a miss; a miss is never an error.
func (c *Coordinator) Get(installationID string) *models.ViewDocument {
	key := providers.CacheKey(installationID)

	if raw, ok := c.hot.Get(key); ok {
		if doc := c.decodeLive(key, raw); doc != nil {
			return doc
		}
		c.hot.Del(key)
	}

	raw, ok, err := c.storage.Get(key)
	if err != nil {
		c.logger.Warnf(providers.TypeApp, "Cache read for %s failed, treating as miss: %s", installationID, err)
		return nil
	}
	if !ok {
		return nil
	}
	doc := c.decodeLive(key, raw)
	if doc == nil {
		// Expired or unreadable: drop the slot so the next read is a clean miss.
		if err := c.storage.Delete(key); err != nil {
			c.logger.Warnf(providers.TypeApp, "Failed to drop stale cache for %s: %s", installationID, err)
		}
		return nil
	}
	c.hot.Set(key, raw)
	return doc
}

// decodeLive returns the payload only when the envelope parses and has not
// passed its ExpiresAt.
func (c *Coordinator) decodeLive(key string, raw []byte) *models.ViewDocument {
	var entry models.CacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		c.logger.Warnf(providers.TypeApp, "Corrupt cache envelope at %s: %s", key, err)
		return nil
	}
	if entry.Payload == nil || entry.Expired(c.now()) {
		return nil
	}
	return entry.Payload
}

// Set stores a freshly rendered view. Called only after a successful render;
// a failed write degrades to skip-caching, never blocks the caller.
func (c *Coordinator) Set(installationID string, doc *models.ViewDocument, ttl time.Duration) {
	key := providers.CacheKey(installationID)
	created := c.now()
	entry := models.CacheEntry{
		Payload:   doc,
		CreatedAt: created,
		ExpiresAt: created.Add(ttl),
	}
	raw, err := json.Marshal(&entry)
	if err != nil {
		c.logger.Warnf(providers.TypeApp, "Cannot serialize cache entry for %s: %s", installationID, err)
		return
	}
	if err := c.storage.Put(key, raw, ttl); err != nil {
		c.logger.Warnf(providers.TypeApp, "Cache write for %s failed, skipping: %s", installationID, err)
		return
	}
	c.hot.Set(key, raw)
}

// Invalidate clears both layers synchronously. Runs unconditionally as part
// of every roster write, so no stale read survives a write.
func (c *Coordinator) Invalidate(installationID string) {
	key := providers.CacheKey(installationID)
	c.hot.Del(key)
	if err := c.storage.Delete(key); err != nil {
		c.logger.Warnf(providers.TypeApp, "Cache invalidation for %s failed: %s", installationID, err)
	}
}
