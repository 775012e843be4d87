package auth

import (
	"fmt"
	"time"

	apperrors "org-tenancy-backend/internal/errors"
	"org-tenancy-backend/internal/logger"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the lifetime of every issued access token
const TokenTTL = 30 * time.Minute

// TokenType is echoed to clients alongside the access token
const TokenType = "bearer"

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Organization string `json:"org" example:"Acme Corp"`
	jwt.RegisteredClaims
}

// Email returns the admin email carried in the subject claim
func (c *AuthClaims) Email() string {
	return c.Subject
}

// AuthService issues and verifies admin access tokens. It holds no state besides its config.
type AuthService struct {
	config *AuthConfig
	now    func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config, now: time.Now}, nil
}

// GenerateJWT creates a signed token for the admin of an organization
func (s *AuthService) GenerateJWT(subject, organization string) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		Organization: organization,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(s.config.signingMethod(), claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates signature, algorithm and expiry. Every failure yields ErrInvalidToken.
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{s.config.Algorithm}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		logger.New().WithError(err).Debug("rejected access token")
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
