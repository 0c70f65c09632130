package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	apperrors "outing-board-backend/internal/errors"
	"outing-board-backend/internal/logger"
	"outing-board-backend/internal/models"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

// SuggestionSystemInstruction is sent with every suggestion request
const SuggestionSystemInstruction = "Eres un asistente para testigos de Jehová. Tu fuente de información es EXCLUSIVAMENTE jw.org y wol.jw.org. Para textos bíblicos, usas ÚNICAMENTE la 'Traducción del Nuevo Mundo de las Santas Escrituras' (TNM) en español. El tono es animador, breve y teocrático."

// GenerationRequest is one structured request to the text generator
type GenerationRequest struct {
	Prompt            string
	SystemInstruction string
	ResponseMIMEType  string
	ResponseSchema    *genai.Schema
}

// SuggestionResponseSchema describes the JSON array the generator must return
func SuggestionResponseSchema() *genai.Schema {
	nullable := true
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"category": {
					Type: genai.TypeString,
					Enum: models.CategoryNames(),
				},
				"text": {
					Type:        genai.TypeString,
					Description: "El contenido principal (el texto bíblico, la presentación o el consejo)",
				},
				"reference": {
					Type:        genai.TypeString,
					Description: "La referencia bíblica si aplica (ej. Juan 3:16), o null",
					Nullable:    &nullable,
				},
			},
			Required: []string{"text"},
		},
	}
}

type generatedSuggestion struct {
	Category  string  `json:"category"`
	Text      string  `json:"text"`
	Reference *string `json:"reference"`
}

// SuggestionService fetches guidance text for a category. It never fails: every
// error path degrades to a single fallback item.
type SuggestionService struct {
	generator TextGenerator
	timeout   time.Duration
}

// NewSuggestionService creates a suggestion gateway. A nil generator always yields the fallback.
func NewSuggestionService(generator TextGenerator, timeout time.Duration) *SuggestionService {
	return &SuggestionService{generator: generator, timeout: timeout}
}

// GeneratorConfigured reports whether a text generator is wired
func (s *SuggestionService) GeneratorConfigured() bool {
	return s.generator != nil
}

// FetchSuggestions issues one request for the category and returns its items in order
func (s *SuggestionService) FetchSuggestions(ctx context.Context, category models.SuggestionCategory) []models.SuggestionItem {
	log := logger.WithContext(ctx).WithField("category", string(category))

	cfg, ok := models.CategoryFor(category)
	if !ok {
		// unknown categories use the scripture prompt
		cfg, _ = models.CategoryFor(models.CategoryScripture)
	}

	if s.generator == nil {
		log.WithField("error", apperrors.ErrGeneratorNotEnabled.Error()).Warn("Returning fallback suggestion")
		return FallbackSuggestions(category)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := s.generator.Generate(ctx, &GenerationRequest{
		Prompt:            cfg.Prompt,
		SystemInstruction: SuggestionSystemInstruction,
		ResponseMIMEType:  "application/json",
		ResponseSchema:    SuggestionResponseSchema(),
	})
	if err != nil {
		log.WithField("error", err.Error()).Warn("Suggestion request failed")
		return FallbackSuggestions(category)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []models.SuggestionItem{}
	}

	var parsed []generatedSuggestion
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.WithField("error", err.Error()).Warn("Suggestion response is not valid JSON")
		return FallbackSuggestions(category)
	}
	// a literal null decodes without error but is not a list
	if parsed == nil {
		log.Warn("Suggestion response is null")
		return FallbackSuggestions(category)
	}

	items := make([]models.SuggestionItem, 0, len(parsed))
	for _, p := range parsed {
		item := models.SuggestionItem{
			ID:       uuid.New().String(),
			Category: category,
			Text:     p.Text,
		}
		if p.Reference != nil {
			item.Reference = *p.Reference
		}
		items = append(items, item)
	}

	log.WithField("count", len(items)).Debug("Suggestions fetched")
	return items
}

// FallbackSuggestions is returned when the generator cannot be reached or misbehaves
func FallbackSuggestions(category models.SuggestionCategory) []models.SuggestionItem {
	if category == models.CategoryScripture {
		return []models.SuggestionItem{{
			ID:        "err-1",
			Category:  category,
			Text:      "Arroja tu carga sobre Jehová mismo, y él mismo te sustentará.",
			Reference: "Salmo 55:22",
		}}
	}
	return []models.SuggestionItem{{
		ID:        "err-2",
		Category:  category,
		Text:      "Por favor, verifica tu conexión para ver nuevas sugerencias.",
		Reference: "Error de conexión",
	}}
}
