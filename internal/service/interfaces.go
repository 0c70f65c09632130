package service

import (
	"context"

	"outing-board-backend/internal/auth"
	"outing-board-backend/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ChangeLogServiceInterface defines the interface for the change log
type ChangeLogServiceInterface interface {
	Record(action models.ChangeAction, description string) models.ChangeLogEntry
	Entries() []models.ChangeLogEntry
}

// RosterServiceInterface defines the interface for the outing roster
type RosterServiceInterface interface {
	List() []models.OutingRecord
	Get(id string) (*models.OutingRecord, error)
	Create() models.OutingRecord
	Update(id string, field models.OutingField, value string) error
	CommitIfChanged(id string, field models.OutingField, newValue, previousValue string) (bool, error)
	Delete(ctx context.Context, id string, confirmer Confirmer) (bool, error)
}

// ThemeServiceInterface defines the interface for the board appearance
type ThemeServiceInterface interface {
	Get() models.ThemeConfig
	Update(req *UpdateThemeRequest) (models.ThemeConfig, error)
	RotateImage(direction RotateDirection) (models.ThemeConfig, error)
}

// AnnouncementServiceInterface defines the interface for the quick announcement
type AnnouncementServiceInterface interface {
	Get() models.AnnouncementState
	Publish(req *PublishAnnouncementRequest) (models.AnnouncementState, error)
	SetDuration(seconds int) (models.AnnouncementState, error)
	Hide() models.AnnouncementState
	Stop()
}

// SessionServiceInterface defines the interface for the board and edit gates
type SessionServiceInterface interface {
	State() models.SessionState
	ViewerGranted() bool
	LoginBoard(ctx context.Context, req *LoginRequest) (models.SessionState, error)
	UnlockEditor(ctx context.Context, req *LoginRequest) (*EditorTokenResponse, error)
	LockEditor()
	ValidateEditorToken(token string) (*auth.EditorClaims, error)
}

// SuggestionServiceInterface defines the interface for the suggestion gateway
type SuggestionServiceInterface interface {
	FetchSuggestions(ctx context.Context, category models.SuggestionCategory) []models.SuggestionItem
	GeneratorConfigured() bool
}

// SuggestionPanelServiceInterface defines the interface for the suggestion panel
type SuggestionPanelServiceInterface interface {
	Panel() models.SuggestionPanel
	Open(ctx context.Context) models.SuggestionPanel
	SwitchTab(ctx context.Context, category models.SuggestionCategory) (models.SuggestionPanel, error)
}

// BoardServiceInterface defines board-wide operations
type BoardServiceInterface interface {
	Save() models.ChangeLogEntry
}

// TextGenerator is the outbound port to the hosted text-generation service
type TextGenerator interface {
	Generate(ctx context.Context, req *GenerationRequest) (string, error)
	Name() string
}

// Confirmer is the interactive yes/no gate consulted before destructive operations
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}
