package service

import (
	"context"
	"errors"
	"fmt"

	"org-tenancy-backend/internal/auth"
	apperrors "org-tenancy-backend/internal/errors"
	"org-tenancy-backend/internal/logger"
	"org-tenancy-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// AdminService authenticates organization admins
type AdminService struct {
	userRepo  repository.UserRepositoryInterface
	tokens    TokenIssuer
	validator *validator.Validate
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo repository.UserRepositoryInterface, tokens TokenIssuer, validator *validator.Validate) *AdminService {
	return &AdminService{
		userRepo:  userRepo,
		tokens:    tokens,
		validator: validator,
	}
}

// LoginRequest represents admin credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"a@x.com"`
	Password string `json:"password" validate:"required" example:"pw123"`
}

// TokenResponse represents an issued access token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}

// Login verifies the credentials and issues a token for the admin's organization.
// Unknown emails and wrong passwords fail the same way.
func (s *AdminService) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			logger.WithContext(ctx).WithError(apperrors.ErrUserNotFound).WithField("email", req.Email).Info("login rejected")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if !auth.VerifyPassword(req.Password, user.Password) {
		logger.WithContext(ctx).WithField("email", req.Email).Info("login rejected: wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateJWT(user.Email, user.OrganizationName)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &TokenResponse{AccessToken: token, TokenType: auth.TokenType}, nil
}
