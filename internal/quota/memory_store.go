package quota

import (
	"context"
	"sync"
	"time"

	"codeberg.org/tubespark/server/internal/plans"
)

// implements Store in process memory. Only suitable for a single process
// (tests, local development).
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*memoryRecord
}

type memoryRecord struct {
	cycleStart time.Time
	consumed   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*memoryRecord),
	}
}

func memoryKey(userID string, kind plans.ResourceKind) string {
	return userID + "|" + string(kind)
}

// overwrites the counter for a user and kind, stamped with cycleStart
func (s *MemoryStore) Set(userID string, kind plans.ResourceKind, cycleStart time.Time, consumed int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[memoryKey(userID, kind)] = &memoryRecord{
		cycleStart: cycleStart,
		consumed:   consumed,
	}
}

func (s *MemoryStore) Used(_ context.Context, userID string, kind plans.ResourceKind, cycle Cycle) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.records[memoryKey(userID, kind)]
	if !exists || record.cycleStart.Before(cycle.Start) {
		return 0, nil
	}

	return record.consumed, nil
}

func (s *MemoryStore) IncrementWithCeiling(_ context.Context, userID string, kind plans.ResourceKind, cycle Cycle, amount, ceiling int) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := memoryKey(userID, kind)
	record, exists := s.records[key]

	if !exists {
		record = &memoryRecord{cycleStart: cycle.Start}
		s.records[key] = record
	}

	// expired cycle: start over
	if record.cycleStart.Before(cycle.Start) {
		record.cycleStart = cycle.Start
		record.consumed = 0
	}

	if ceiling >= 0 && record.consumed+amount > ceiling {
		return record.consumed, false, nil
	}

	record.consumed += amount

	return record.consumed, true, nil
}
