package repository

import (
	"context"
	"time"

	"org-tenancy-backend/internal/database/models"

	"gorm.io/gorm"
)

// SQLOrganizationRepository handles Postgres operations on the organizations table
type SQLOrganizationRepository struct {
	db *gorm.DB
}

// NewSQLOrganizationRepository creates a new organization repository backed by GORM
func NewSQLOrganizationRepository(db *gorm.DB) *SQLOrganizationRepository {
	return &SQLOrganizationRepository{db: db}
}

// Create inserts a new organization
func (r *SQLOrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	org.Stamp(time.Now().UTC())
	return translateError(r.db.WithContext(ctx).Create(org).Error)
}

// GetByName retrieves an organization by its exact name
func (r *SQLOrganizationRepository) GetByName(ctx context.Context, name string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).First(&org, "organization_name = ?", name).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &org, nil
}

// Rename points the organization row at its new name and collection
func (r *SQLOrganizationRepository) Rename(ctx context.Context, oldName, newName string, collection models.CollectionName) error {
	res := r.db.WithContext(ctx).
		Model(&models.Organization{}).
		Where("organization_name = ?", oldName).
		Updates(map[string]interface{}{
			"organization_name": newName,
			"collection_name":   collection.String(),
			"updated_at":        time.Now().UTC(),
		})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// DeleteByName removes the organization row
func (r *SQLOrganizationRepository) DeleteByName(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).Where("organization_name = ?", name).Delete(&models.Organization{})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
