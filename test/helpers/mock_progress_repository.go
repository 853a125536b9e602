package helpers

import (
	"context"
	"sync"
	"time"

	"github.com/andrescamacho/outpost-go/internal/domain/progress"
)

// MockProgressRepository is a test double for ProgressRepository
type MockProgressRepository struct {
	mu      sync.RWMutex
	built   bool
	builtAt time.Time
	// Err is returned by every write when set
	Err     error
}

// NewMockProgressRepository creates an empty progress repository
func NewMockProgressRepository() *MockProgressRepository {
	return &MockProgressRepository{}
}

func (m *MockProgressRepository) RocketBuilt(ctx context.Context) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.built, nil
}

func (m *MockProgressRepository) MarkRocketBuilt(ctx context.Context, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if !m.built {
		m.builtAt = at
	}
	m.built = true
	return nil
}

func (m *MockProgressRepository) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.built = false
	m.builtAt = time.Time{}
	return nil
}

// BuiltAt returns the stored build time
func (m *MockProgressRepository) BuiltAt() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.builtAt
}

// MockCraftLogRepository is a test double for CraftLogRepository
type MockCraftLogRepository struct {
	mu      sync.RWMutex
	records []progress.CraftRecord
	// Err is returned by Record when set
	Err     error
}

// NewMockCraftLogRepository creates an empty craft log
func NewMockCraftLogRepository() *MockCraftLogRepository {
	return &MockCraftLogRepository{}
}

func (m *MockCraftLogRepository) Record(ctx context.Context, record progress.CraftRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.records = append(m.records, record)
	return nil
}

func (m *MockCraftLogRepository) ListBySession(ctx context.Context, sessionID string) ([]progress.CraftRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []progress.CraftRecord
	for _, r := range m.records {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockCraftLogRepository) CountByRecipe(ctx context.Context) (map[string]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[string]int64)
	for _, r := range m.records {
		counts[r.Recipe]++
	}
	return counts, nil
}

// RecordingLogger is a SimLogger that keeps every entry
type RecordingLogger struct {
	mu      sync.Mutex
	Entries []LogEntry
}

// LogEntry is one recorded log call
type LogEntry struct {
	Level    string
	Message  string
	Metadata map[string]interface{}
}

func (l *RecordingLogger) Log(level, message string, metadata map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, LogEntry{Level: level, Message: message, Metadata: metadata})
}

// Messages returns the logged messages at level
func (l *RecordingLogger) Messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []string
	for _, e := range l.Entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}
