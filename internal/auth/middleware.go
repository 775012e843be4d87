package auth

import (
	"net/http"
	"strings"

	apperrors "org-tenancy-backend/internal/errors"
	"org-tenancy-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

func unauthorized(c *gin.Context, err error) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
}

// RequireAuth validates the bearer token and sets the admin identity on the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, apperrors.ErrMissingToken)
			return
		}

		scheme, tokenString, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
			unauthorized(c, apperrors.ErrInvalidToken)
			return
		}

		claims, err := m.service.ValidateJWT(strings.TrimSpace(tokenString))
		if err != nil {
			unauthorized(c, err)
			return
		}

		c.Set("email", claims.Email())
		c.Set("organization", claims.Organization)
		c.Set("auth_claims", claims)
		c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), claims.Email(), claims.Organization))

		c.Next()
	}
}

// GetUserEmail is a helper function to extract the admin email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetOrganization is a helper function to extract the token's organization from context
func GetOrganization(c *gin.Context) (string, bool) {
	org, exists := c.Get("organization")
	if !exists {
		return "", false
	}

	orgStr, ok := org.(string)
	return orgStr, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
