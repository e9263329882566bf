package testutil

import (
	"sync"
	"time"

	"bbd/internal/models"
	"bbd/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// CountLevel returns how many entries were recorded at the given level.
func (m *MockLogger) CountLevel(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MemoryStorage implements providers.StorageProviderInterface in memory,
// with optional fault injection and a controllable clock for TTL checks.
type MemoryStorage struct {
	mu      sync.Mutex
	data    map[string][]byte
	expiry  map[string]time.Time
	Now     func() time.Time
	FailGet error
	FailPut error
	FailDel error
	Puts    int
	Deletes int
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		data:   make(map[string][]byte),
		expiry: make(map[string]time.Time),
		Now:    time.Now,
	}
}

func (ms *MemoryStorage) Get(key string) ([]byte, bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.FailGet != nil {
		return nil, false, ms.FailGet
	}
	val, ok := ms.data[key]
	if !ok {
		return nil, false, nil
	}
	if exp, has := ms.expiry[key]; has && ms.Now().After(exp) {
		delete(ms.data, key)
		delete(ms.expiry, key)
		return nil, false, nil
	}
	return val, true, nil
}

func (ms *MemoryStorage) Put(key string, value []byte, ttl time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.FailPut != nil {
		return ms.FailPut
	}
	ms.Puts++
	cp := make([]byte, len(value))
	copy(cp, value)
	ms.data[key] = cp
	if ttl > 0 {
		ms.expiry[key] = ms.Now().Add(ttl)
	} else {
		delete(ms.expiry, key)
	}
	return nil
}

func (ms *MemoryStorage) Delete(key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.FailDel != nil {
		return ms.FailDel
	}
	ms.Deletes++
	delete(ms.data, key)
	delete(ms.expiry, key)
	return nil
}

// Has reports whether the key currently holds a value, ignoring TTL.
func (ms *MemoryStorage) Has(key string) bool {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	_, ok := ms.data[key]
	return ok
}

// MockCache implements providers.CacheProviderInterface with a plain map.
type MockCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{data: make(map[string][]byte)}
}

func (mc *MockCache) Get(key string) ([]byte, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	val, ok := mc.data[key]
	return val, ok
}

func (mc *MockCache) Set(key string, value []byte) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.data[key] = value
}

func (mc *MockCache) Del(key string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	delete(mc.data, key)
}

// MockCoordinator implements cache.CoordinatorInterface and records calls.
type MockCoordinator struct {
	mu          sync.Mutex
	Cached      map[string]*models.ViewDocument
	Invalidated []string
	SetCalls    int
}

func NewMockCoordinator() *MockCoordinator {
	return &MockCoordinator{Cached: make(map[string]*models.ViewDocument)}
}

func (mc *MockCoordinator) Get(installationID string) *models.ViewDocument {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.Cached[installationID]
}

func (mc *MockCoordinator) Set(installationID string, doc *models.ViewDocument, _ time.Duration) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.SetCalls++
	mc.Cached[installationID] = doc
}

func (mc *MockCoordinator) Invalidate(installationID string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.Invalidated = append(mc.Invalidated, installationID)
	delete(mc.Cached, installationID)
}

// MockViewService implements services.ViewServiceInterface.
type MockViewService struct {
	mu        sync.Mutex
	WarmCalls []string
	WarmErr   error
	RenderDoc *models.ViewDocument
	RenderErr error
	TodayList []models.UpcomingEntry
	StatsDoc  *models.Stats
}

func (mv *MockViewService) Render(installationID string, expanded bool) (*models.ViewDocument, error) {
	if mv.RenderErr != nil {
		return nil, mv.RenderErr
	}
	return mv.RenderDoc, nil
}

func (mv *MockViewService) Today(installationID string) ([]models.UpcomingEntry, error) {
	if mv.RenderErr != nil {
		return nil, mv.RenderErr
	}
	return mv.TodayList, nil
}

func (mv *MockViewService) Stats(installationID string) (*models.Stats, error) {
	if mv.RenderErr != nil {
		return nil, mv.RenderErr
	}
	return mv.StatsDoc, nil
}

func (mv *MockViewService) Warm(installationID string) error {
	mv.mu.Lock()
	defer mv.mu.Unlock()
	mv.WarmCalls = append(mv.WarmCalls, installationID)
	return mv.WarmErr
}

// WarmCount returns the number of Warm calls made so far.
func (mv *MockViewService) WarmCount() int {
	mv.mu.Lock()
	defer mv.mu.Unlock()
	return len(mv.WarmCalls)
}

// MockInstallationStore implements services.InstallationStoreInterface.
type MockInstallationStore struct {
	Installs []models.Installation
	ListErr  error
}

func (mi *MockInstallationStore) List() ([]models.Installation, error) {
	if mi.ListErr != nil {
		return nil, mi.ListErr
	}
	return mi.Installs, nil
}

func (mi *MockInstallationStore) Get(id string) (*models.Installation, bool, error) {
	for _, inst := range mi.Installs {
		if inst.ID == id {
			return &inst, true, nil
		}
	}
	return nil, false, nil
}

func (mi *MockInstallationStore) Put(inst models.Installation) error {
	mi.Installs = append(mi.Installs, inst)
	return nil
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu           sync.Mutex
	CacheHits    int
	CacheMisses  int
	TaskFailures map[string]int
	Renders      int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{TaskFailures: make(map[string]int)}
}

func (mm *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (mm *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (mm *MockMetrics) IncCacheHits() {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.CacheHits++
}

func (mm *MockMetrics) IncCacheMisses() {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.CacheMisses++
}

func (mm *MockMetrics) ObserveRenderDuration(_ time.Duration) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.Renders++
}

func (mm *MockMetrics) SetRosterEntries(_ string, _ int) {}

func (mm *MockMetrics) IncTaskFailure(task string) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.TaskFailures[task]++
}

// MockRosterService implements roster.ServiceInterface.
type MockRosterService struct {
	Roster     *models.Roster
	LoadErr    error
	ReplaceErr error
	Replaced   [][]byte
	LoadCalls  int
}

func (mr *MockRosterService) Load(installationID string) (*models.Roster, error) {
	mr.LoadCalls++
	if mr.LoadErr != nil {
		return nil, mr.LoadErr
	}
	if mr.Roster == nil {
		return &models.Roster{Entries: []models.Entry{}}, nil
	}
	return mr.Roster, nil
}

func (mr *MockRosterService) Replace(installationID string, raw []byte) (*models.Roster, error) {
	if mr.ReplaceErr != nil {
		return nil, mr.ReplaceErr
	}
	mr.Replaced = append(mr.Replaced, raw)
	if mr.Roster == nil {
		return &models.Roster{Entries: []models.Entry{}}, nil
	}
	return mr.Roster, nil
}
