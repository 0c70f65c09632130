package service

import (
	"context"
	"fmt"
	"time"

	"outing-board-backend/internal/auth"
	"outing-board-backend/internal/clock"
	"outing-board-backend/internal/models"
	"outing-board-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// BoardOptions configures a Board
type BoardOptions struct {
	Store                repository.KeyValueRepositoryInterface
	Generator            TextGenerator
	Clock                clock.Clock
	Validator            *validator.Validate
	Credentials          auth.Credentials
	EditorTokenTTL       time.Duration
	SuggestionTimeout    time.Duration
	AnnouncementDuration int
	SeedRoster           bool
}

// Board is the single application-state container shared by every request
type Board struct {
	ChangeLog    *ChangeLogService
	Roster       *RosterService
	Theme        *ThemeService
	Announcement *AnnouncementService
	Session      *SessionService
	Suggestions  *SuggestionService
	Panel        *SuggestionPanelService
}

// NewBoard wires the board components together
func NewBoard(ctx context.Context, opts BoardOptions) (*Board, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("key-value store is required")
	}
	if err := opts.Credentials.Validate(); err != nil {
		return nil, err
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Validator == nil {
		opts.Validator = validator.New()
	}

	tokens, err := auth.NewTokenService(opts.EditorTokenTTL, opts.Clock.Now)
	if err != nil {
		return nil, err
	}

	var seed []models.OutingRecord
	if opts.SeedRoster {
		seed = models.SeedOutings()
	}

	changeLog := NewChangeLogService(opts.Clock)
	suggestions := NewSuggestionService(opts.Generator, opts.SuggestionTimeout)

	return &Board{
		ChangeLog:    changeLog,
		Roster:       NewRosterService(changeLog, seed),
		Theme:        NewThemeService(changeLog, opts.Validator),
		Announcement: NewAnnouncementService(changeLog, opts.Validator, opts.Clock, opts.AnnouncementDuration),
		Session:      NewSessionService(ctx, opts.Store, opts.Credentials, tokens, changeLog),
		Suggestions:  suggestions,
		Panel:        NewSuggestionPanelService(suggestions),
	}, nil
}

// Save records a manual save and locks the editor
func (b *Board) Save() models.ChangeLogEntry {
	entry := b.ChangeLog.Record(models.ActionSettings, "Guardado manual completado")
	b.Session.LockEditor()
	return entry
}

// Close stops pending timers
func (b *Board) Close() {
	b.Announcement.Stop()
}
