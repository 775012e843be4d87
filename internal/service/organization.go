package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"org-tenancy-backend/internal/auth"
	"org-tenancy-backend/internal/database/models"
	apperrors "org-tenancy-backend/internal/errors"
	"org-tenancy-backend/internal/logger"
	"org-tenancy-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// Update statuses echoed back to clients
const (
	StatusUpdated = "updated"
	StatusDeleted = "deleted"
)

// OrganizationService handles business logic for organizations and their tenant collections
type OrganizationService struct {
	orgRepo    repository.OrganizationRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	tenantRepo repository.TenantRepositoryInterface
	validator  *validator.Validate
	now        func() time.Time
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(orgRepo repository.OrganizationRepositoryInterface, userRepo repository.UserRepositoryInterface, tenantRepo repository.TenantRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		orgRepo:    orgRepo,
		userRepo:   userRepo,
		tenantRepo: tenantRepo,
		validator:  validator,
		now:        time.Now,
	}
}

// CreateOrganizationRequest represents the request to register an organization with its admin
type CreateOrganizationRequest struct {
	Name     string `json:"organization_name" validate:"required,min=1,max=100" example:"Acme Corp"`
	Email    string `json:"email" validate:"required,email,max=255" example:"a@x.com"`
	Password string `json:"password" validate:"required,min=1,max=72" example:"pw123"`
}

// UpdateOrganizationRequest carries the optional new values; a nil or empty name means no rename
type UpdateOrganizationRequest struct {
	Name     *string `json:"organization_name,omitempty" validate:"omitempty,max=100" example:"Acme Inc"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=1,max=72"`
}

// OrganizationResponse represents the organization record returned by the API
type OrganizationResponse struct {
	Name           string `json:"organization_name" example:"Acme Corp"`
	CollectionName string `json:"collection_name" example:"org_acme_corp"`
	AdminEmail     string `json:"admin_email" example:"a@x.com"`
}

// UpdateOrganizationResponse acknowledges an update. Warning is set when the tenant collection could not be renamed.
type UpdateOrganizationResponse struct {
	Status  string `json:"status" example:"updated"`
	NewName string `json:"new_name" example:"Acme Inc"`
	Warning string `json:"warning,omitempty"`
}

// DeleteOrganizationResponse acknowledges a delete
type DeleteOrganizationResponse struct {
	Status string `json:"status" example:"deleted"`
}

// Create registers an organization: admin user, seeded tenant collection, then the organization row.
// The steps are not transactional; a failure part way leaves the earlier writes in place.
func (s *OrganizationService) Create(ctx context.Context, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	existing, err := s.orgRepo.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	collection, err := models.NewCollectionName(req.Name)
	if err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:            req.Email,
		Password:         hash,
		Role:             models.RoleAdmin,
		OrganizationName: req.Name,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	if err := s.tenantRepo.Provision(ctx, collection, models.NewTenantMetadata(s.now())); err != nil {
		return nil, fmt.Errorf("failed to provision tenant collection: %w", err)
	}

	org := &models.Organization{
		Name:           req.Name,
		CollectionName: collection,
		AdminEmail:     req.Email,
	}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.ErrOrganizationExists
		}
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organization": org.Name,
		"collection":   org.CollectionName.String(),
	}).Info("organization created")

	return toOrganizationResponse(org), nil
}

// GetByName retrieves an organization by its exact name
func (s *OrganizationService) GetByName(ctx context.Context, name string) (*OrganizationResponse, error) {
	org, err := s.lookup(ctx, name)
	if err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

// Update renames the organization and/or changes its admin credentials.
// A rename re-points the admin user's organization_name even when no credentials change.
// A failed tenant collection rename does not abort the update; it is reported in the response warning.
func (s *OrganizationService) Update(ctx context.Context, oldName string, req *UpdateOrganizationRequest) (*UpdateOrganizationResponse, error) {
	if strings.TrimSpace(oldName) == "" {
		return nil, apperrors.ErrOrganizationNameEmpty
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	org, err := s.lookup(ctx, oldName)
	if err != nil {
		return nil, err
	}

	resp := &UpdateOrganizationResponse{Status: StatusUpdated, NewName: oldName}
	var userUpdate repository.UserUpdate

	// Hashed before any write so a rejected password leaves the organization untouched
	if req.Password != nil && *req.Password != "" {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		userUpdate.PasswordHash = &hash
	}

	if req.Name != nil && *req.Name != "" && *req.Name != oldName {
		newName := *req.Name

		taken, err := s.orgRepo.GetByName(ctx, newName)
		if err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check new organization name: %w", err)
		}
		if taken != nil {
			return nil, apperrors.ErrNewOrganizationNameExists
		}

		newCollection, err := models.NewCollectionName(newName)
		if err != nil {
			return nil, err
		}

		if newCollection != org.CollectionName {
			if err := s.tenantRepo.Rename(ctx, org.CollectionName, newCollection); err != nil {
				renameErr := &apperrors.TenantRenameError{From: org.CollectionName.String(), To: newCollection.String(), Err: err}
				logger.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
					"from": renameErr.From,
					"to":   renameErr.To,
				}).Warn("tenant collection rename failed, continuing with metadata rename")
				resp.Warning = renameErr.Error()
			}
		}

		if err := s.orgRepo.Rename(ctx, oldName, newName, newCollection); err != nil {
			switch {
			case errors.Is(err, repository.ErrDuplicateKey):
				return nil, apperrors.ErrNewOrganizationNameExists
			case errors.Is(err, repository.ErrRecordNotFound):
				return nil, apperrors.ErrOrganizationNotFound
			}
			return nil, fmt.Errorf("failed to rename organization: %w", err)
		}

		userUpdate.OrganizationName = &newName
		resp.NewName = newName
	}

	if req.Email != nil && *req.Email != "" {
		userUpdate.Email = req.Email
	}

	if !userUpdate.IsEmpty() {
		// Users are matched by the name the organization had before this update
		if err := s.userRepo.UpdateByOrganization(ctx, oldName, userUpdate); err != nil {
			return nil, fmt.Errorf("failed to update admin user: %w", err)
		}
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"old_name": oldName,
		"new_name": resp.NewName,
	}).Info("organization updated")

	return resp, nil
}

// Delete drops the tenant collection, then removes the organization row and its users.
// Tokens already issued for the organization stay valid until they expire.
func (s *OrganizationService) Delete(ctx context.Context, name string) (*DeleteOrganizationResponse, error) {
	org, err := s.lookup(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := s.tenantRepo.Drop(ctx, org.CollectionName); err != nil {
		return nil, fmt.Errorf("failed to drop tenant collection: %w", err)
	}

	if err := s.orgRepo.DeleteByName(ctx, org.Name); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to delete organization: %w", err)
	}

	removed, err := s.userRepo.DeleteByOrganization(ctx, org.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to delete organization users: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organization":  org.Name,
		"users_removed": removed,
	}).Info("organization deleted")

	return &DeleteOrganizationResponse{Status: StatusDeleted}, nil
}

func (s *OrganizationService) lookup(ctx context.Context, name string) (*models.Organization, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.ErrOrganizationNameEmpty
	}
	org, err := s.orgRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

func toOrganizationResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		Name:           org.Name,
		CollectionName: org.CollectionName.String(),
		AdminEmail:     org.AdminEmail,
	}
}

// hashPassword passes input errors through unwrapped so they reach the client as validation failures
func hashPassword(plain string) (string, error) {
	hash, err := auth.HashPassword(plain)
	if err != nil {
		if apperrors.IsValidation(err) {
			return "", err
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}
