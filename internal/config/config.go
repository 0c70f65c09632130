package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Supported key-value backends for the persisted viewer flag
const (
	KVBackendMemory   = "memory"
	KVBackendFile     = "file"
	KVBackendSQLite   = "sqlite"
	KVBackendPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Key-value store configuration
	KVBackend    string `mapstructure:"KV_BACKEND"`
	KVFilePath   string `mapstructure:"KV_FILE_PATH"`
	KVSQLitePath string `mapstructure:"KV_SQLITE_PATH"`

	// Database configuration (postgres backend)
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Access gates
	BoardUser         string `mapstructure:"BOARD_USER"`
	BoardPassword     string `mapstructure:"BOARD_PASSWORD"`
	EditorUser        string `mapstructure:"EDITOR_USER"`
	EditorPassword    string `mapstructure:"EDITOR_PASSWORD"`
	EditorTokenTTLMin int    `mapstructure:"EDITOR_TOKEN_TTL_MIN"`

	// Gemini configuration
	GeminiAPIKey         string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel          string `mapstructure:"GEMINI_MODEL"`
	SuggestionTimeoutSec int    `mapstructure:"SUGGESTION_TIMEOUT_SEC"`

	// Board defaults
	AnnouncementDefaultDuration int  `mapstructure:"ANNOUNCEMENT_DEFAULT_DURATION"`
	SeedRoster                  bool `mapstructure:"SEED_ROSTER"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Key-value store defaults
	viper.SetDefault("KV_BACKEND", KVBackendFile)
	viper.SetDefault("KV_FILE_PATH", "data/board-state.yaml")
	viper.SetDefault("KV_SQLITE_PATH", "data/board.db")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "outing_board")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// Gate defaults
	viper.SetDefault("BOARD_USER", "congre")
	viper.SetDefault("BOARD_PASSWORD", "congre")
	viper.SetDefault("EDITOR_USER", "ItaembeMini")
	viper.SetDefault("EDITOR_PASSWORD", "Ita2025")
	viper.SetDefault("EDITOR_TOKEN_TTL_MIN", 240)

	// Gemini defaults
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("SUGGESTION_TIMEOUT_SEC", 20)

	// Board defaults
	viper.SetDefault("ANNOUNCEMENT_DEFAULT_DURATION", 15)
	viper.SetDefault("SEED_ROSTER", true)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	switch config.KVBackend {
	case KVBackendMemory:
	case KVBackendFile:
		if config.KVFilePath == "" {
			return fmt.Errorf("KV_FILE_PATH is required for the file backend")
		}
	case KVBackendSQLite:
		if config.KVSQLitePath == "" {
			return fmt.Errorf("KV_SQLITE_PATH is required for the sqlite backend")
		}
	case KVBackendPostgres:
		if config.DatabaseName == "" {
			return fmt.Errorf("database name is required")
		}
	default:
		return fmt.Errorf("unknown KV_BACKEND %q", config.KVBackend)
	}

	if config.BoardUser == "" || config.BoardPassword == "" {
		return fmt.Errorf("BOARD_USER and BOARD_PASSWORD are required")
	}
	if config.EditorUser == "" || config.EditorPassword == "" {
		return fmt.Errorf("EDITOR_USER and EDITOR_PASSWORD are required")
	}

	if config.SuggestionTimeoutSec <= 0 {
		return fmt.Errorf("SUGGESTION_TIMEOUT_SEC must be positive")
	}
	if config.EditorTokenTTLMin <= 0 {
		return fmt.Errorf("EDITOR_TOKEN_TTL_MIN must be positive")
	}
	if config.AnnouncementDefaultDuration < 5 || config.AnnouncementDefaultDuration > 60 {
		return fmt.Errorf("ANNOUNCEMENT_DEFAULT_DURATION must be between 5 and 60")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GeminiEnabled reports whether a Gemini API key was configured
func (c *Config) GeminiEnabled() bool {
	return c.GeminiAPIKey != ""
}
