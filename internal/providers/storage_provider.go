package providers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"bbd/internal/structures"
)

// Logical storage keys. Everything shared between requests lives behind these.
const InstallationsKey = "installations"

func RosterKey(installationID string) string {
	return "roster:" + installationID
}

func CacheKey(installationID string) string {
	return "view:" + installationID
}

// StorageProviderInterface is the key-value contract every shared piece of
// state goes through. Writes are atomic at key granularity; a reader never
// observes a torn value.
type StorageProviderInterface interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
}

// storedValue wraps a value with its optional expiry hint.
type storedValue struct {
	Value     []byte     `json:"value"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// FileStorageProvider keeps one zstd-compressed envelope per key on disk.
// TTL is enforced lazily on read, mirroring the cache's lazy-expiry contract.
type FileStorageProvider struct {
	mu         sync.RWMutex
	dir        string
	compressor CompressorInterface
	logger     Logger
	now        func() time.Time
}

func NewStorageProvider(conf *structures.Config, compressor CompressorInterface, logger Logger) (StorageProviderInterface, error) {
	if err := os.MkdirAll(conf.Storage.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create storage dir %s: %w", conf.Storage.Dir, err)
	}
	return &FileStorageProvider{
		dir:        conf.Storage.Dir,
		compressor: compressor,
		logger:     logger,
		now:        time.Now,
	}, nil
}

func (fs *FileStorageProvider) path(key string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, key)
	return filepath.Join(fs.dir, sanitized+".kv")
}

func (fs *FileStorageProvider) Get(key string) ([]byte, bool, error) {
	fs.mu.RLock()
	data, err := os.ReadFile(fs.path(key))
	fs.mu.RUnlock()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	raw, err := fs.compressor.Decompress(data)
	if err != nil {
		return nil, false, fmt.Errorf("key %s: decompress: %w", key, err)
	}
	var sv storedValue
	if err := json.Unmarshal(raw, &sv); err != nil {
		return nil, false, fmt.Errorf("key %s: decode: %w", key, err)
	}

	if sv.ExpiresAt != nil && fs.now().After(*sv.ExpiresAt) {
		if err := fs.Delete(key); err != nil {
			fs.logger.Warnf(TypeApp, "Failed to drop expired key %s: %s", key, err)
		}
		return nil, false, nil
	}
	return sv.Value, true, nil
}

func (fs *FileStorageProvider) Put(key string, value []byte, ttl time.Duration) error {
	sv := storedValue{Value: value}
	if ttl > 0 {
		expires := fs.now().Add(ttl)
		sv.ExpiresAt = &expires
	}
	raw, err := json.Marshal(sv)
	if err != nil {
		return err
	}
	data, err := fs.compressor.Compress(raw)
	if err != nil {
		return err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	target := fs.path(key)
	tmp := target + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmp)
		return err
	}
	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmp)
		return err
	}
	if err = file.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, target)
}

func (fs *FileStorageProvider) Delete(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	err := os.Remove(fs.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
