package testutils

import (
	"outing-board-backend/internal/models"

	"github.com/google/uuid"
)

// OutingFactory provides methods to create test OutingRecord data
type OutingFactory struct{}

// NewOutingFactory creates a new OutingFactory
func NewOutingFactory() *OutingFactory {
	return &OutingFactory{}
}

// Create creates a test OutingRecord with default values
func (f *OutingFactory) Create() models.OutingRecord {
	return models.OutingRecord{
		ID:           uuid.New().String(),
		Day:          "Sábado",
		Time:         "9:30am",
		Group:        "Grupo 1",
		MeetingPlace: "Salón del Reino",
		Address:      "Av. 147 Calle 140",
		Territories:  "Territorios: 75 - 80",
		Conductor:    "Conductor: Test",
		MapsLink:     "https://maps.google.com",
	}
}

// WithSchedule sets a custom day and time
func (f *OutingFactory) WithSchedule(day, time string) models.OutingRecord {
	o := f.Create()
	o.Day = day
	o.Time = time
	return o
}

// WithMeetingPlace sets a custom meeting place
func (f *OutingFactory) WithMeetingPlace(place string) models.OutingRecord {
	o := f.Create()
	o.MeetingPlace = place
	return o
}

// SuggestionFactory provides methods to create test SuggestionItem data
type SuggestionFactory struct{}

// NewSuggestionFactory creates a new SuggestionFactory
func NewSuggestionFactory() *SuggestionFactory {
	return &SuggestionFactory{}
}

// Create creates a test SuggestionItem with default values
func (f *SuggestionFactory) Create() models.SuggestionItem {
	return models.SuggestionItem{
		ID:        uuid.New().String(),
		Category:  models.CategoryScripture,
		Text:      "Jehová es mi pastor. Nada me faltará.",
		Reference: "Salmo 23:1",
	}
}

// WithCategory sets a custom category
func (f *SuggestionFactory) WithCategory(category models.SuggestionCategory) models.SuggestionItem {
	s := f.Create()
	s.Category = category
	if category != models.CategoryScripture {
		s.Reference = ""
	}
	return s
}
