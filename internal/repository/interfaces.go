package repository

import (
	"context"

	"org-tenancy-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization metadata operations
type OrganizationRepositoryInterface interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByName(ctx context.Context, name string) (*models.Organization, error)
	Rename(ctx context.Context, oldName, newName string, collection models.CollectionName) error
	DeleteByName(ctx context.Context, name string) error
}

// UserRepositoryInterface defines the interface for admin user operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateByOrganization(ctx context.Context, organizationName string, update UserUpdate) error
	DeleteByOrganization(ctx context.Context, organizationName string) (int64, error)
}

// TenantRepositoryInterface defines the interface for tenant collection lifecycle operations
type TenantRepositoryInterface interface {
	Provision(ctx context.Context, name models.CollectionName, seed *models.TenantMetadata) error
	Rename(ctx context.Context, from, to models.CollectionName) error
	Drop(ctx context.Context, name models.CollectionName) error
}

// Pinger reports whether the underlying store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// UserUpdate lists the user fields to overwrite; nil fields are left untouched
type UserUpdate struct {
	Email            *string
	PasswordHash     *string
	OrganizationName *string
}

// IsEmpty reports whether the update would change nothing
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.PasswordHash == nil && u.OrganizationName == nil
}

// Set bundles one store driver's repositories
type Set struct {
	Organizations OrganizationRepositoryInterface
	Users         UserRepositoryInterface
	Tenants       TenantRepositoryInterface
	Health        Pinger
}
