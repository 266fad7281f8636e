package testutil

import (
	"context"
	"npd/internal/providers"
	"npd/internal/scraper/interfaces"
	"npd/internal/structures"
	"sync"
	"time"
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

// CountByLevel returns how many entries were recorded at the given level.
func (m *MockLogger) CountByLevel(level string) int {
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

// MockCache implements providers.CacheProviderInterface over a plain map.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Data[key]
	return v, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu             sync.Mutex
	Requests       int
	CacheHits      int
	CacheMisses    int
	Scrapes        map[string]int // "station/outcome" → count
	LookupFailures map[string]int // provider → count
	Persists       int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Scrapes:        make(map[string]int),
		LookupFailures: make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) IncScrapes(station string, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Scrapes[station+"/"+outcome]++
}
func (m *MockMetrics) ObserveScrapeDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncLookupFailures(provider string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LookupFailures[provider]++
}
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Persists++
}

// MockCompressor passes data through unchanged.
type MockCompressor struct{}

func (m *MockCompressor) Compress(val []byte) ([]byte, error)   { return val, nil }
func (m *MockCompressor) Decompress(val []byte) ([]byte, error) { return val, nil }
func (m *MockCompressor) Close()                                {}

// MockPageReader returns canned results keyed by station id.
type MockPageReader struct {
	Results map[string]*interfaces.PageResult
	Errs    map[string]error
	Calls   int
}

func (m *MockPageReader) Read(_ context.Context, station structures.Station) (*interfaces.PageResult, error) {
	m.Calls++
	if err, ok := m.Errs[station.ID]; ok {
		return nil, err
	}
	if res, ok := m.Results[station.ID]; ok {
		return res, nil
	}
	return &interfaces.PageResult{}, nil
}

// MockResolver returns a canned resolution and records queries.
type MockResolver struct {
	Result  interfaces.Resolution
	Queries []string
}

func (m *MockResolver) Resolve(_ context.Context, query string) interfaces.Resolution {
	m.Queries = append(m.Queries, query)
	return m.Result
}
