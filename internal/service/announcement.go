package service

import (
	"strings"
	"sync"
	"time"

	"outing-board-backend/internal/clock"
	apperrors "outing-board-backend/internal/errors"
	"outing-board-backend/internal/logger"
	"outing-board-backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// PublishAnnouncementRequest represents the request to show a quick announcement
type PublishAnnouncementRequest struct {
	Message  string `json:"message" validate:"required" example:"Hoy salimos 10 minutos más tarde"`
	Duration int    `json:"duration" validate:"min=5,max=60" example:"15"`
}

type durationCheck struct {
	Duration int `validate:"min=5,max=60"`
}

// AnnouncementService owns the broadcast banner and its auto-hide timer.
// Every reschedule stops the pending timer and bumps the generation, so a callback
// that already fired for an older schedule does nothing.
type AnnouncementService struct {
	mu         sync.Mutex
	state      models.AnnouncementState
	clock      clock.Clock
	timer      clock.Timer
	generation uint64
	changeLog  ChangeLogServiceInterface
	validator  *validator.Validate
}

// NewAnnouncementService creates an inactive announcement with the given default duration
func NewAnnouncementService(changeLog ChangeLogServiceInterface, validator *validator.Validate, clk clock.Clock, defaultDuration int) *AnnouncementService {
	if clk == nil {
		clk = clock.Real()
	}
	if defaultDuration < models.MinAnnouncementDuration || defaultDuration > models.MaxAnnouncementDuration {
		defaultDuration = models.DefaultAnnouncementDuration
	}
	return &AnnouncementService{
		state:     models.AnnouncementState{Duration: defaultDuration},
		clock:     clk,
		changeLog: changeLog,
		validator: validator,
	}
}

// Get returns the current announcement
func (s *AnnouncementService) Get() models.AnnouncementState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Publish activates the announcement and starts a fresh auto-hide timer
func (s *AnnouncementService) Publish(req *PublishAnnouncementRequest) (models.AnnouncementState, error) {
	if strings.TrimSpace(req.Message) == "" {
		return models.AnnouncementState{}, apperrors.ErrEmptyAnnouncement
	}
	if err := s.validator.Struct(req); err != nil {
		return models.AnnouncementState{}, apperrors.ErrInvalidDuration
	}

	s.mu.Lock()
	s.state = models.AnnouncementState{
		Message:  req.Message,
		IsActive: true,
		Duration: req.Duration,
	}
	s.scheduleLocked()
	state := s.state
	s.mu.Unlock()

	s.changeLog.Record(models.ActionAnnouncement, "Se activó un nuevo aviso rápido")
	return state, nil
}

// SetDuration changes the display duration. An active announcement restarts its timer.
func (s *AnnouncementService) SetDuration(seconds int) (models.AnnouncementState, error) {
	if err := s.validator.Struct(&durationCheck{Duration: seconds}); err != nil {
		return models.AnnouncementState{}, apperrors.ErrInvalidDuration
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Duration = seconds
	if s.state.IsActive {
		s.scheduleLocked()
	}
	return s.state, nil
}

// Hide deactivates the announcement immediately
func (s *AnnouncementService) Hide() models.AnnouncementState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
	s.state.IsActive = false
	return s.state
}

// Stop cancels any pending timer. Used on shutdown.
func (s *AnnouncementService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

func (s *AnnouncementService) scheduleLocked() {
	s.cancelLocked()
	generation := s.generation
	s.timer = s.clock.AfterFunc(time.Duration(s.state.Duration)*time.Second, func() {
		s.expire(generation)
	})
}

func (s *AnnouncementService) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
}

func (s *AnnouncementService) expire(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return
	}
	s.timer = nil
	s.state.IsActive = false
	logger.New().WithField("duration", s.state.Duration).Debug("Announcement expired")
}
