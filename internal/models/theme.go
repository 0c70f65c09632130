package models

// PresetHeaderImages are the header images editors can cycle through
var PresetHeaderImages = []string{
	"https://images.unsplash.com/photo-1504052434569-70ad5836ab65?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1519834785169-98be25ec3f84?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1469474968028-56623f02e42e?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1529156069898-49953e39b3ac?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1470252649378-9c29740c9fa8?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1544377193-33dcf4d68fb5?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1455849318743-b2233052fcff?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1526778548025-fa2f459cd5c1?auto=format&fit=crop&w=800&q=80",
}

// ThemeConfig holds the cosmetic settings of the board
type ThemeConfig struct {
	PrimaryColor    string `json:"primaryColor"`
	HeaderTextColor string `json:"headerTextColor"`
	HeaderImageURL  string `json:"headerImageUrl"`
}

// DefaultTheme returns the theme used at startup
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		PrimaryColor:    "#22c55e",
		HeaderTextColor: "#14532d",
		HeaderImageURL:  PresetHeaderImages[2],
	}
}
