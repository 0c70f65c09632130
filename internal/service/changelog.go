package service

import (
	"sync"

	"outing-board-backend/internal/clock"
	"outing-board-backend/internal/logger"
	"outing-board-backend/internal/models"

	"github.com/google/uuid"
)

// TimestampLayout renders change log timestamps as HH:MM
const TimestampLayout = "15:04"

// ChangeLogService keeps the append-only activity log, newest first
type ChangeLogService struct {
	mu      sync.RWMutex
	entries []models.ChangeLogEntry
	clock   clock.Clock
}

// NewChangeLogService creates a new change log
func NewChangeLogService(clk clock.Clock) *ChangeLogService {
	if clk == nil {
		clk = clock.Real()
	}
	return &ChangeLogService{clock: clk}
}

// Record prepends a new entry and returns it
func (s *ChangeLogService) Record(action models.ChangeAction, description string) models.ChangeLogEntry {
	entry := models.ChangeLogEntry{
		ID:          uuid.New().String(),
		Timestamp:   s.clock.Now().Format(TimestampLayout),
		Action:      action,
		Description: description,
	}

	s.mu.Lock()
	s.entries = append([]models.ChangeLogEntry{entry}, s.entries...)
	s.mu.Unlock()

	logger.New().WithFields(map[string]interface{}{
		"action":   string(action),
		"entry_id": entry.ID,
	}).Info(description)

	return entry
}

// Entries returns a snapshot of the log, newest first
func (s *ChangeLogService) Entries() []models.ChangeLogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ChangeLogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
