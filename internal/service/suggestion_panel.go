package service

import (
	"context"
	"sync"

	apperrors "outing-board-backend/internal/errors"
	"outing-board-backend/internal/logger"
	"outing-board-backend/internal/models"
)

// SuggestionPanelService tracks the active suggestion tab and its items.
// Each load carries a generation number; a response that arrives after a newer load
// started is discarded.
type SuggestionPanelService struct {
	mu         sync.Mutex
	gateway    SuggestionServiceInterface
	activeTab  models.SuggestionCategory
	loading    bool
	items      []models.SuggestionItem
	generation uint64
}

// NewSuggestionPanelService creates a panel showing the scripture tab
func NewSuggestionPanelService(gateway SuggestionServiceInterface) *SuggestionPanelService {
	return &SuggestionPanelService{
		gateway:   gateway,
		activeTab: models.CategoryScripture,
		items:     []models.SuggestionItem{},
	}
}

// Panel returns a snapshot of the panel
func (s *SuggestionPanelService) Panel() models.SuggestionPanel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Open loads the active tab
func (s *SuggestionPanelService) Open(ctx context.Context) models.SuggestionPanel {
	s.mu.Lock()
	tab := s.activeTab
	s.mu.Unlock()

	return s.load(ctx, tab)
}

// SwitchTab activates another category and loads it. Selecting the active tab does nothing.
func (s *SuggestionPanelService) SwitchTab(ctx context.Context, category models.SuggestionCategory) (models.SuggestionPanel, error) {
	if _, ok := models.CategoryFor(category); !ok {
		return models.SuggestionPanel{}, apperrors.ErrUnknownCategory
	}

	s.mu.Lock()
	if category == s.activeTab {
		panel := s.snapshotLocked()
		s.mu.Unlock()
		return panel, nil
	}
	s.activeTab = category
	s.mu.Unlock()

	return s.load(ctx, category), nil
}

func (s *SuggestionPanelService) load(ctx context.Context, category models.SuggestionCategory) models.SuggestionPanel {
	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.loading = true
	s.items = []models.SuggestionItem{}
	s.mu.Unlock()

	items := s.gateway.FetchSuggestions(ctx, category)

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		logger.WithContext(ctx).WithField("category", string(category)).Debug("Discarding superseded suggestions")
		return s.snapshotLocked()
	}
	s.items = items
	s.loading = false
	return s.snapshotLocked()
}

func (s *SuggestionPanelService) snapshotLocked() models.SuggestionPanel {
	items := make([]models.SuggestionItem, len(s.items))
	copy(items, s.items)
	return models.SuggestionPanel{
		ActiveTab: s.activeTab,
		Loading:   s.loading,
		Items:     items,
	}
}
