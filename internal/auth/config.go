package auth

import (
	"strings"

	"outing-board-backend/internal/config"
	apperrors "outing-board-backend/internal/errors"
)

// Credentials holds the two fixed credential pairs guarding the board
type Credentials struct {
	BoardUser      string
	BoardPassword  string
	EditorUser     string
	EditorPassword string
}

// CredentialsFromConfig extracts the gate credentials from the application config
func CredentialsFromConfig(cfg *config.Config) Credentials {
	return Credentials{
		BoardUser:      cfg.BoardUser,
		BoardPassword:  cfg.BoardPassword,
		EditorUser:     cfg.EditorUser,
		EditorPassword: cfg.EditorPassword,
	}
}

// Validate checks that both pairs are present
func (c Credentials) Validate() error {
	if c.BoardUser == "" || c.BoardPassword == "" {
		return apperrors.NewConfigurationError("board credentials are required")
	}
	if c.EditorUser == "" || c.EditorPassword == "" {
		return apperrors.NewConfigurationError("editor credentials are required")
	}
	return nil
}

// MatchBoard compares against the board pair. The username is case-insensitive and
// both values are trimmed.
func (c Credentials) MatchBoard(username, password string) bool {
	return strings.ToLower(strings.TrimSpace(username)) == strings.ToLower(c.BoardUser) &&
		strings.TrimSpace(password) == c.BoardPassword
}

// MatchEditor compares against the editor pair exactly
func (c Credentials) MatchEditor(username, password string) bool {
	return username == c.EditorUser && password == c.EditorPassword
}
