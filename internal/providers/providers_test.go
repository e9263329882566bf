package providers

import (
	"sync"
	"time"

	"bbd/internal/structures"
)

// mockLogger is local to this package; testutil depends on providers, so the
// shared mocks cannot be used here.
type mockLogger struct {
	mu     sync.Mutex
	warns  int
	infos  int
	debugs int
	errors int
}

func (m *mockLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {
	m.mu.Lock()
	m.errors++
	m.mu.Unlock()
}

func (m *mockLogger) Warnf(_ TypeEnum, _ string, _ ...interface{}) {
	m.mu.Lock()
	m.warns++
	m.mu.Unlock()
}

func (m *mockLogger) Infof(_ TypeEnum, _ string, _ ...interface{}) {
	m.mu.Lock()
	m.infos++
	m.mu.Unlock()
}

func (m *mockLogger) Debugf(_ TypeEnum, _ string, _ ...interface{}) {
	m.mu.Lock()
	m.debugs++
	m.mu.Unlock()
}

func (m *mockLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Close()                                        {}

type mockMetrics struct {
	mu        sync.Mutex
	requests  map[string]int
	durations int
	hits      int
	misses    int
}

func newMockMetrics() *mockMetrics {
	return &mockMetrics{requests: make(map[string]int)}
}

func (m *mockMetrics) IncRequestsTotal(endpoint string, status int) {
	m.mu.Lock()
	m.requests[endpoint]++
	m.mu.Unlock()
}

func (m *mockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {
	m.mu.Lock()
	m.durations++
	m.mu.Unlock()
}

func (m *mockMetrics) IncCacheHits() {
	m.mu.Lock()
	m.hits++
	m.mu.Unlock()
}

func (m *mockMetrics) IncCacheMisses() {
	m.mu.Lock()
	m.misses++
	m.mu.Unlock()
}

func (m *mockMetrics) ObserveRenderDuration(_ time.Duration) {}
func (m *mockMetrics) SetRosterEntries(_ string, _ int)      {}
func (m *mockMetrics) IncTaskFailure(_ string)               {}

func validTestConfig(dir string) *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{Host: "127.0.0.1", Port: 8080},
		Logger:    structures.LoggerConfig{Level: "info", Mode: 0o644, Dir: dir},
		Storage:   structures.StorageConfig{Dir: dir},
		Birthday:  structures.BirthdayConfig{HorizonDays: 30},
		Schedule: structures.ScheduleConfig{
			WarmInterval:    5 * time.Minute,
			RefreshInterval: time.Hour,
			Retry: structures.RetryConfig{
				InitialDelay: time.Second,
				MaxDelay:     30 * time.Second,
				MaxTries:     5,
				Timeout:      2 * time.Minute,
			},
		},
		Cache:   structures.CacheConfig{Enabled: true, Size: 1, TTL: 6 * time.Minute},
		Metrics: structures.MetricsConfig{Enabled: false},
	}
}
