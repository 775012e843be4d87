package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization lifecycle operations
type OrganizationServiceInterface interface {
	Create(ctx context.Context, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByName(ctx context.Context, name string) (*OrganizationResponse, error)
	Update(ctx context.Context, oldName string, req *UpdateOrganizationRequest) (*UpdateOrganizationResponse, error)
	Delete(ctx context.Context, name string) (*DeleteOrganizationResponse, error)
}

// AdminServiceInterface defines the interface for admin authentication
type AdminServiceInterface interface {
	Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error)
}

// TokenIssuer signs access tokens for an authenticated admin
type TokenIssuer interface {
	GenerateJWT(subject, organization string) (string, error)
}
