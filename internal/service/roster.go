package service

import (
	"context"
	"fmt"
	"sync"

	apperrors "outing-board-backend/internal/errors"
	"outing-board-backend/internal/logger"
	"outing-board-backend/internal/models"

	"github.com/google/uuid"
)

// RosterService owns the ordered list of outing records. Log entries are recorded
// while mu is held so the change log follows mutation order.
type RosterService struct {
	mu        sync.Mutex
	outings   []models.OutingRecord
	changeLog ChangeLogServiceInterface
}

// NewRosterService creates a roster holding the given records. Records without an
// identifier are assigned a fresh one.
func NewRosterService(changeLog ChangeLogServiceInterface, initial []models.OutingRecord) *RosterService {
	outings := make([]models.OutingRecord, 0, len(initial))
	for _, o := range initial {
		if o.ID == "" {
			o.ID = uuid.New().String()
		}
		outings = append(outings, o)
	}
	return &RosterService{outings: outings, changeLog: changeLog}
}

// List returns a snapshot of the roster in insertion order
func (s *RosterService) List() []models.OutingRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.OutingRecord, len(s.outings))
	copy(out, s.outings)
	return out
}

// Get returns one record by id
func (s *RosterService) Get(id string) (*models.OutingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, apperrors.ErrOutingNotFound
	}
	record := s.outings[idx]
	return &record, nil
}

// Create appends a placeholder record and logs it
func (s *RosterService) Create() models.OutingRecord {
	record := models.NewOutingRecord(uuid.New().String())

	s.mu.Lock()
	defer s.mu.Unlock()

	s.outings = append(s.outings, record)
	s.changeLog.Record(models.ActionCreate, "Se agregó una nueva tarjeta de salida")
	return record
}

// Update replaces a single field. An unknown id is ignored.
func (s *RosterService) Update(id string, field models.OutingField, value string) error {
	if !field.Valid() {
		return apperrors.ErrUnknownField
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	s.outings[idx].Set(field, value)
	return nil
}

// CommitIfChanged records an update entry when an edit session ends with a different value
func (s *RosterService) CommitIfChanged(id string, field models.OutingField, newValue, previousValue string) (bool, error) {
	label, ok := field.Label()
	if !ok {
		return false, apperrors.ErrUnknownField
	}
	if newValue == previousValue {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	record := s.outings[idx]
	s.changeLog.Record(models.ActionUpdate,
		fmt.Sprintf("Se editó \"%s\" en la salida de %s %s", label, record.Day, record.Time))
	return true, nil
}

// Delete removes a record after the confirmer agrees. Declining changes nothing.
func (s *RosterService) Delete(ctx context.Context, id string, confirmer Confirmer) (bool, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return false, nil
	}
	s.mu.Unlock()

	if confirmer == nil {
		return false, nil
	}

	confirmed, err := confirmer.Confirm(ctx, DeletePrompt)
	if err != nil {
		return false, fmt.Errorf("delete confirmation failed: %w", err)
	}
	if !confirmed {
		logger.WithContext(ctx).WithField("outing_id", id).Debug("Delete declined")
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// the record may have been removed while waiting for confirmation
	idx = s.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	meetingPlace := s.outings[idx].MeetingPlace
	s.outings = append(s.outings[:idx], s.outings[idx+1:]...)
	s.changeLog.Record(models.ActionDelete, "Se eliminó la salida de: "+meetingPlace)
	return true, nil
}

func (s *RosterService) indexOf(id string) int {
	for i := range s.outings {
		if s.outings[i].ID == id {
			return i
		}
	}
	return -1
}
