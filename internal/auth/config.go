package auth

import (
	"fmt"

	"org-tenancy-backend/internal/config"
	apperrors "org-tenancy-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// AuthConfig holds the token signing configuration
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" json:"jwt_secret"`
	Algorithm string `yaml:"jwt_algorithm" json:"jwt_algorithm"`
}

var supportedAlgorithms = map[string]jwt.SigningMethod{
	jwt.SigningMethodHS256.Alg(): jwt.SigningMethodHS256,
	jwt.SigningMethodHS384.Alg(): jwt.SigningMethodHS384,
	jwt.SigningMethodHS512.Alg(): jwt.SigningMethodHS512,
}

// NewAuthConfig extracts the auth settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Algorithm: cfg.JWTAlgorithm,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Algorithm == "" {
		c.Algorithm = jwt.SigningMethodHS256.Alg()
	}
	if _, ok := supportedAlgorithms[c.Algorithm]; !ok {
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedJWTAlgorithm, c.Algorithm)
	}
	return nil
}

func (c *AuthConfig) signingMethod() jwt.SigningMethod {
	return supportedAlgorithms[c.Algorithm]
}
