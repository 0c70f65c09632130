package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Gate is the view of the session state the middleware needs
type Gate interface {
	ViewerGranted() bool
	ValidateEditorToken(token string) (*EditorClaims, error)
}

// GateMiddleware enforces the board gate and the edit gate
type GateMiddleware struct {
	gate Gate
}

// NewGateMiddleware creates a new gate middleware
func NewGateMiddleware(gate Gate) *GateMiddleware {
	return &GateMiddleware{gate: gate}
}

// RequireViewer rejects requests until the board gate has been passed
func (m *GateMiddleware) RequireViewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.gate.ViewerGranted() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Board access required"})
			c.Abort()
			return
		}

		if _, exists := c.Get("role"); !exists {
			c.Set("role", RoleViewer)
		}
		c.Next()
	}
}

// RequireEditor validates the editor bearer token and sets the editor context
func (m *GateMiddleware) RequireEditor() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.gate.ValidateEditorToken(tokenString)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Editor access required", "details": err.Error()})
			c.Abort()
			return
		}

		c.Set("role", RoleEditor)
		c.Set("editor_claims", claims)
		c.Next()
	}
}

// OptionalEditor marks the request as editor when a valid token is present
func (m *GateMiddleware) OptionalEditor() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			c.Next()
			return
		}
		if claims, err := m.gate.ValidateEditorToken(tokenString); err == nil {
			c.Set("role", RoleEditor)
			c.Set("editor_claims", claims)
		}
		c.Next()
	}
}

// GetRole is a helper function to extract the caller role from context
func GetRole(c *gin.Context) string {
	role, exists := c.Get("role")
	if !exists {
		return ""
	}
	roleStr, _ := role.(string)
	return roleStr
}

// GetEditorClaims is a helper function to extract editor claims from context
func GetEditorClaims(c *gin.Context) (*EditorClaims, bool) {
	claims, exists := c.Get("editor_claims")
	if !exists {
		return nil, false
	}
	editorClaims, ok := claims.(*EditorClaims)
	return editorClaims, ok
}
