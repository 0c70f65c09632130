package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "outing-board-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials(t *testing.T) {
	creds := Credentials{
		BoardUser:      "congre",
		BoardPassword:  "congre",
		EditorUser:     "ItaembeMini",
		EditorPassword: "Ita2025",
	}

	t.Run("valid config structure", func(t *testing.T) {
		assert.NoError(t, creds.Validate())
	})

	t.Run("missing editor pair", func(t *testing.T) {
		c := creds
		c.EditorPassword = ""
		err := c.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "editor credentials are required")
		assert.True(t, apperrors.IsConfiguration(err))
	})

	t.Run("board username is case-insensitive and trimmed", func(t *testing.T) {
		assert.True(t, creds.MatchBoard("  CONGRE ", " congre "))
		assert.True(t, creds.MatchBoard("Congre", "congre"))
		assert.False(t, creds.MatchBoard("congre", "CONGRE"))
		assert.False(t, creds.MatchBoard("other", "congre"))
	})

	t.Run("editor pair is exact", func(t *testing.T) {
		assert.True(t, creds.MatchEditor("ItaembeMini", "Ita2025"))
		assert.False(t, creds.MatchEditor("itaembemini", "Ita2025"))
		assert.False(t, creds.MatchEditor("ItaembeMini ", "Ita2025"))
		assert.False(t, creds.MatchEditor("ItaembeMini", "ita2025"))
	})
}

func TestTokenOperations(t *testing.T) {
	service, err := NewTokenService(time.Hour, nil)
	require.NoError(t, err)

	token, expiresAt, err := service.Issue("ItaembeMini")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := service.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, RoleEditor, claims.Role)
	assert.Equal(t, "ItaembeMini", claims.Subject)
	assert.Equal(t, uint64(0), claims.Epoch)

	_, err = service.Validate("invalid-token")
	assert.Error(t, err)
}

func TestTokenRevoke(t *testing.T) {
	service, err := NewTokenService(time.Hour, nil)
	require.NoError(t, err)

	first, _, err := service.Issue("editor")
	require.NoError(t, err)

	service.Revoke()

	_, err = service.Validate(first)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revoked")
	assert.True(t, apperrors.IsAuthorization(err))

	second, _, err := service.Issue("editor")
	require.NoError(t, err)
	claims, err := service.Validate(second)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), claims.Epoch)
}

func TestTokenExpiration(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	service, err := NewTokenService(time.Minute, func() time.Time { return now })
	require.NoError(t, err)

	token, _, err := service.Issue("editor")
	require.NoError(t, err)

	_, err = service.Validate(token)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = service.Validate(token)
	assert.Error(t, err)
}

func TestTokensDoNotSurviveRestart(t *testing.T) {
	before, err := NewTokenService(time.Hour, nil)
	require.NoError(t, err)
	token, _, err := before.Issue("editor")
	require.NoError(t, err)

	after, err := NewTokenService(time.Hour, nil)
	require.NoError(t, err)
	_, err = after.Validate(token)
	assert.Error(t, err)
}

type stubGate struct {
	viewer bool
	tokens *TokenService
}

func (g *stubGate) ViewerGranted() bool { return g.viewer }

func (g *stubGate) ValidateEditorToken(token string) (*EditorClaims, error) {
	if g.tokens == nil {
		return nil, errors.New("no tokens")
	}
	return g.tokens.Validate(token)
}

func TestGateMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokens, err := NewTokenService(time.Hour, nil)
	require.NoError(t, err)
	token, _, err := tokens.Issue("editor")
	require.NoError(t, err)

	newRouter := func(gate *stubGate) *gin.Engine {
		m := NewGateMiddleware(gate)
		r := gin.New()
		r.GET("/view", m.RequireViewer(), func(c *gin.Context) {
			c.String(http.StatusOK, GetRole(c))
		})
		r.GET("/edit", m.RequireViewer(), m.RequireEditor(), func(c *gin.Context) {
			claims, ok := GetEditorClaims(c)
			require.True(t, ok)
			c.String(http.StatusOK, claims.Subject)
		})
		return r
	}

	t.Run("viewer gate closed", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(&stubGate{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/view", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("viewer gate open", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(&stubGate{viewer: true}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/view", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, RoleViewer, w.Body.String())
	})

	t.Run("editor without header", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(&stubGate{viewer: true, tokens: tokens}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/edit", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("editor with malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/edit", nil)
		req.Header.Set("Authorization", token)
		w := httptest.NewRecorder()
		newRouter(&stubGate{viewer: true, tokens: tokens}).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("editor with valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/edit", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter(&stubGate{viewer: true, tokens: tokens}).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "editor", w.Body.String())
	})

	t.Run("editor with foreign token", func(t *testing.T) {
		other, err := NewTokenService(time.Hour, nil)
		require.NoError(t, err)
		foreign, _, err := other.Issue("editor")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/edit", nil)
		req.Header.Set("Authorization", "Bearer "+foreign)
		w := httptest.NewRecorder()
		newRouter(&stubGate{viewer: true, tokens: tokens}).ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
