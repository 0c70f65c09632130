package service

import (
	"context"
	"sync"
	"time"

	"outing-board-backend/internal/auth"
	apperrors "outing-board-backend/internal/errors"
	"outing-board-backend/internal/logger"
	"outing-board-backend/internal/models"
	"outing-board-backend/internal/repository"
)

// LoginRequest represents a credential pair submitted to either gate
type LoginRequest struct {
	Username string `json:"username" example:"congre"`
	Password string `json:"password" example:"congre"`
}

// EditorTokenResponse is returned when the edit gate opens
type EditorTokenResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType" example:"Bearer"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionService guards the board with the viewer gate and the edit gate.
// The viewer flag is persisted through the key-value store; edit privilege lives only
// in signed tokens of the running process.
type SessionService struct {
	mu             sync.RWMutex
	store          repository.KeyValueRepositoryInterface
	credentials    auth.Credentials
	tokens         *auth.TokenService
	changeLog      ChangeLogServiceInterface
	viewerGranted  bool
	viewerError    bool
	editorUnlocked bool
	editorError    bool
}

// NewSessionService creates the session gates and restores the persisted viewer flag
func NewSessionService(ctx context.Context, store repository.KeyValueRepositoryInterface, credentials auth.Credentials, tokens *auth.TokenService, changeLog ChangeLogServiceInterface) *SessionService {
	s := &SessionService{
		store:       store,
		credentials: credentials,
		tokens:      tokens,
		changeLog:   changeLog,
	}

	value, found, err := store.Get(ctx, models.ViewerAccessKey)
	switch {
	case err != nil:
		logger.WithContext(ctx).WithField("error", err.Error()).Warn("Failed to read persisted board access, starting locked")
	case found && value == "true":
		s.viewerGranted = true
	}

	return s
}

// State returns both gate states
func (s *SessionService) State() models.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.SessionState{
		ViewerGranted:  s.viewerGranted,
		ViewerError:    s.viewerError,
		EditorUnlocked: s.editorUnlocked,
		EditorError:    s.editorError,
	}
}

// ViewerGranted reports whether the board gate is open
func (s *SessionService) ViewerGranted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewerGranted
}

// LoginBoard opens the board gate for every viewer and persists the flag
func (s *SessionService) LoginBoard(ctx context.Context, req *LoginRequest) (models.SessionState, error) {
	log := logger.WithContext(ctx)

	if !s.credentials.MatchBoard(req.Username, req.Password) {
		s.mu.Lock()
		s.viewerError = true
		s.mu.Unlock()
		log.Warn("Board login rejected")
		return s.State(), apperrors.ErrInvalidCredentials
	}

	s.mu.Lock()
	s.viewerGranted = true
	s.viewerError = false
	s.mu.Unlock()

	if err := s.store.Set(ctx, models.ViewerAccessKey, "true"); err != nil {
		log.WithField("error", err.Error()).Error("Failed to persist board access")
	}

	log.Info("Board access granted")
	return s.State(), nil
}

// UnlockEditor checks the editor pair exactly and issues an editor token
func (s *SessionService) UnlockEditor(ctx context.Context, req *LoginRequest) (*EditorTokenResponse, error) {
	if !s.credentials.MatchEditor(req.Username, req.Password) {
		s.mu.Lock()
		s.editorError = true
		s.mu.Unlock()
		logger.WithContext(ctx).Warn("Editor login rejected")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(req.Username)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.editorUnlocked = true
	s.editorError = false
	s.mu.Unlock()

	s.changeLog.Record(models.ActionSettings, "Administrador inició sesión")
	return &EditorTokenResponse{Token: token, TokenType: "Bearer", ExpiresAt: expiresAt}, nil
}

// LockEditor revokes every outstanding editor token
func (s *SessionService) LockEditor() {
	s.tokens.Revoke()

	s.mu.Lock()
	s.editorUnlocked = false
	s.mu.Unlock()
}

// ValidateEditorToken checks an editor token against the current epoch
func (s *SessionService) ValidateEditorToken(token string) (*auth.EditorClaims, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, apperrors.ErrInvalidEditorToken
	}
	return claims, nil
}
