package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"org-tenancy-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SQLTenantRepository stores each tenant collection as its own jsonb document table
type SQLTenantRepository struct {
	db *gorm.DB
}

// NewSQLTenantRepository creates a new tenant repository backed by GORM
func NewSQLTenantRepository(db *gorm.DB) *SQLTenantRepository {
	return &SQLTenantRepository{db: db}
}

// Provision creates the tenant table if needed and inserts its seed document
func (r *SQLTenantRepository) Provision(ctx context.Context, name models.CollectionName, seed *models.TenantMetadata) error {
	doc, err := json.Marshal(seed)
	if err != nil {
		return fmt.Errorf("encode seed document: %w", err)
	}
	table := r.db.WithContext(ctx).Table(name.String())
	if err := table.AutoMigrate(&models.TenantDocument{}); err != nil {
		return fmt.Errorf("create tenant table %s: %w", name, err)
	}
	return r.db.WithContext(ctx).Table(name.String()).Create(&models.TenantDocument{
		ID:        uuid.NewString(),
		Document:  doc,
		CreatedAt: seed.CreatedAt,
	}).Error
}

// Rename renames the tenant table
func (r *SQLTenantRepository) Rename(ctx context.Context, from, to models.CollectionName) error {
	return r.db.WithContext(ctx).Migrator().RenameTable(from.String(), to.String())
}

// Drop removes the tenant table
func (r *SQLTenantRepository) Drop(ctx context.Context, name models.CollectionName) error {
	return r.db.WithContext(ctx).Migrator().DropTable(name.String())
}

type sqlPinger struct {
	db *gorm.DB
}

func (p sqlPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// NewSQLSet wires the GORM implementations of every repository
func NewSQLSet(db *gorm.DB) *Set {
	return &Set{
		Organizations: NewSQLOrganizationRepository(db),
		Users:         NewSQLUserRepository(db),
		Tenants:       NewSQLTenantRepository(db),
		Health:        sqlPinger{db: db},
	}
}
