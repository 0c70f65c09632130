package service

import (
	"sync"

	apperrors "outing-board-backend/internal/errors"
	"outing-board-backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// RotateDirection selects the neighbouring preset header image
type RotateDirection string

const (
	RotateNext RotateDirection = "next"
	RotatePrev RotateDirection = "prev"
)

// UpdateThemeRequest represents a partial theme update. Omitted fields keep their value.
type UpdateThemeRequest struct {
	PrimaryColor    *string `json:"primaryColor,omitempty" validate:"omitempty,hexcolor" example:"#22c55e"`
	HeaderTextColor *string `json:"headerTextColor,omitempty" validate:"omitempty,hexcolor" example:"#14532d"`
	HeaderImageURL  *string `json:"headerImageUrl,omitempty" validate:"omitempty,url"`
}

// ThemeService holds the board appearance
type ThemeService struct {
	mu        sync.RWMutex
	theme     models.ThemeConfig
	changeLog ChangeLogServiceInterface
	validator *validator.Validate
}

// NewThemeService creates a theme service starting from the default theme
func NewThemeService(changeLog ChangeLogServiceInterface, validator *validator.Validate) *ThemeService {
	return &ThemeService{
		theme:     models.DefaultTheme(),
		changeLog: changeLog,
		validator: validator,
	}
}

// Get returns the current theme
func (s *ThemeService) Get() models.ThemeConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Update applies the given fields and logs a settings entry
func (s *ThemeService) Update(req *UpdateThemeRequest) (models.ThemeConfig, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.ThemeConfig{}, apperrors.NewValidationError("theme", err.Error())
	}

	s.mu.Lock()
	if req.PrimaryColor != nil {
		s.theme.PrimaryColor = *req.PrimaryColor
	}
	if req.HeaderTextColor != nil {
		s.theme.HeaderTextColor = *req.HeaderTextColor
	}
	if req.HeaderImageURL != nil {
		s.theme.HeaderImageURL = *req.HeaderImageURL
	}
	theme := s.theme
	s.mu.Unlock()

	s.changeLog.Record(models.ActionSettings, "Se actualizó la apariencia de la app")
	return theme, nil
}

// RotateImage moves to the next or previous preset image. A header image outside the
// presets restarts the cycle at the first preset.
func (s *ThemeService) RotateImage(direction RotateDirection) (models.ThemeConfig, error) {
	var step int
	switch direction {
	case RotateNext:
		step = 1
	case RotatePrev:
		step = -1
	default:
		return models.ThemeConfig{}, apperrors.ErrInvalidRotation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	presets := models.PresetHeaderImages
	current := -1
	for i, url := range presets {
		if url == s.theme.HeaderImageURL {
			current = i
			break
		}
	}

	next := 0
	if current >= 0 {
		next = (current + step + len(presets)) % len(presets)
	}
	s.theme.HeaderImageURL = presets[next]
	return s.theme, nil
}
