package models

// SuggestionCategory is one of the fixed suggestion topics
type SuggestionCategory string

const (
	CategoryScripture    SuggestionCategory = "scripture"
	CategoryPresentation SuggestionCategory = "presentation"
	CategoryPractical    SuggestionCategory = "practical"
	CategorySafety       SuggestionCategory = "safety"
)

// SuggestionItem is one piece of fetched guidance text
type SuggestionItem struct {
	ID        string             `json:"id"`
	Category  SuggestionCategory `json:"category"`
	Text      string             `json:"text"`
	Reference string             `json:"reference,omitempty"`
}

// CategoryConfig binds a category to its prompt and display metadata
type CategoryConfig struct {
	Category SuggestionCategory `json:"category"`
	Label    string             `json:"label"`
	Color    string             `json:"color"`
	Prompt   string             `json:"-"`
}

// Categories is the single lookup table for suggestion categories, in tab order
var Categories = []CategoryConfig{
	{
		Category: CategoryScripture,
		Label:    "Ánimo",
		Color:    "pink",
		Prompt:   "Genera 3 textos bíblicos ANIMADORES para un grupo de predicación. Deben ser citas EXACTAS de la Traducción del Nuevo Mundo (TNM) en español. Enfocados en el aguante, el amor y el apoyo de Jehová.",
	},
	{
		Category: CategoryPresentation,
		Label:    "Ideas",
		Color:    "blue",
		Prompt:   "Genera 3 presentaciones o introducciones MUY BREVES y sencillas para predicar de casa en casa. Deben ser respetuosas, amables y fáciles de decir. Basadas en sugerencias recientes de la Guía de Actividades de jw.org.",
	},
	{
		Category: CategoryPractical,
		Label:    "Tips",
		Color:    "yellow",
		Prompt:   "Genera 3 consejos prácticos para ser eficientes en el territorio (ej: cómo anotar revisitas, uso del carrito, predicación informal). Basado en jw.org.",
	},
	{
		Category: CategorySafety,
		Label:    "Cuidado",
		Color:    "emerald",
		Prompt:   "Genera 3 recordatorios breves sobre seguridad, modales o cuidado al predicar (ej: no dejar tratados visibles en casas vacías, cuidado con perros, discreción al hablar). Basado en principios de jw.org.",
	},
}

// CategoryFor resolves the configuration of a category
func CategoryFor(c SuggestionCategory) (CategoryConfig, bool) {
	for _, cfg := range Categories {
		if cfg.Category == c {
			return cfg, true
		}
	}
	return CategoryConfig{}, false
}

// CategoryNames returns the category tags as plain strings
func CategoryNames() []string {
	names := make([]string, 0, len(Categories))
	for _, cfg := range Categories {
		names = append(names, string(cfg.Category))
	}
	return names
}

// SuggestionPanel is the state of the suggestions panel
type SuggestionPanel struct {
	ActiveTab SuggestionCategory `json:"activeTab"`
	Loading   bool               `json:"loading"`
	Items     []SuggestionItem   `json:"items"`
}
