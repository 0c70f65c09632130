package auth

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	apperrors "outing-board-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// RoleViewer is attached to requests that passed the board gate
	RoleViewer = "viewer"
	// RoleEditor is attached to requests carrying a valid editor token
	RoleEditor = "editor"

	tokenIssuer = "outing-board-backend"
)

// EditorClaims represents editor token claims
type EditorClaims struct {
	Role  string `json:"role" example:"editor"`
	Epoch uint64 `json:"epoch" example:"3"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenService issues and validates editor tokens.
// The signing secret is generated per process, so tokens never survive a restart.
// Revoke bumps the epoch and invalidates every token issued before it.
type TokenService struct {
	mu     sync.RWMutex
	secret []byte
	ttl    time.Duration
	epoch  uint64
	now    func() time.Time
}

// NewTokenService creates a token service with a random signing secret
func NewTokenService(ttl time.Duration, now func() time.Time) (*TokenService, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate signing secret: %w", err)
	}
	if now == nil {
		now = time.Now
	}
	return &TokenService{secret: secret, ttl: ttl, now: now}, nil
}

// Issue signs a new editor token for the given subject
func (s *TokenService) Issue(subject string) (string, time.Time, error) {
	s.mu.RLock()
	epoch := s.epoch
	s.mu.RUnlock()

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := &EditorClaims{
		Role:  RoleEditor,
		Epoch: epoch,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate parses a token and checks it belongs to the current epoch
func (s *TokenService) Validate(tokenString string) (*EditorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &EditorClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*EditorClaims)
	if !ok || !token.Valid {
		return nil, apperrors.NewAuthorizationError("invalid token")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if claims.Epoch != s.epoch || claims.Role != RoleEditor {
		return nil, apperrors.NewAuthorizationError("token has been revoked")
	}
	return claims, nil
}

// Revoke invalidates every outstanding token
func (s *TokenService) Revoke() {
	s.mu.Lock()
	s.epoch++
	s.mu.Unlock()
}
