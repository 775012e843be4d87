package repository

import (
	"context"
	"time"

	"org-tenancy-backend/internal/database/models"

	"gorm.io/gorm"
)

// SQLUserRepository handles Postgres operations on the users table
type SQLUserRepository struct {
	db *gorm.DB
}

// NewSQLUserRepository creates a new user repository backed by GORM
func NewSQLUserRepository(db *gorm.DB) *SQLUserRepository {
	return &SQLUserRepository{db: db}
}

// Create inserts a new user
func (r *SQLUserRepository) Create(ctx context.Context, user *models.User) error {
	user.Stamp(time.Now().UTC())
	return translateError(r.db.WithContext(ctx).Create(user).Error)
}

// GetByEmail returns the oldest user with the given email
func (r *SQLUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Order("created_at").First(&user, "email = ?", email).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// UpdateByOrganization applies the update to every user of the organization
func (r *SQLUserRepository) UpdateByOrganization(ctx context.Context, organizationName string, update UserUpdate) error {
	if update.IsEmpty() {
		return nil
	}
	fields := map[string]interface{}{"updated_at": time.Now().UTC()}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.PasswordHash != nil {
		fields["password"] = *update.PasswordHash
	}
	if update.OrganizationName != nil {
		fields["organization_name"] = *update.OrganizationName
	}
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("organization_name = ?", organizationName).
		Updates(fields).Error
	return translateError(err)
}

// DeleteByOrganization removes every user of the organization
func (r *SQLUserRepository) DeleteByOrganization(ctx context.Context, organizationName string) (int64, error) {
	res := r.db.WithContext(ctx).Where("organization_name = ?", organizationName).Delete(&models.User{})
	if res.Error != nil {
		return 0, translateError(res.Error)
	}
	return res.RowsAffected, nil
}
