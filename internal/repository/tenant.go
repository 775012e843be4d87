package repository

import (
	"context"

	"org-tenancy-backend/internal/database"
	"org-tenancy-backend/internal/database/models"
)

// TenantRepository manages tenant collections through the Mongo gateway
type TenantRepository struct {
	gw *database.MongoGateway
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(gw *database.MongoGateway) *TenantRepository {
	return &TenantRepository{gw: gw}
}

// Provision creates the collection implicitly by inserting its seed document
func (r *TenantRepository) Provision(ctx context.Context, name models.CollectionName, seed *models.TenantMetadata) error {
	_, err := r.gw.TenantCollection(name).InsertOne(ctx, seed)
	return err
}

// Rename moves the collection to its new name
func (r *TenantRepository) Rename(ctx context.Context, from, to models.CollectionName) error {
	return r.gw.RenameCollection(ctx, from, to)
}

// Drop removes the collection and all its documents
func (r *TenantRepository) Drop(ctx context.Context, name models.CollectionName) error {
	return r.gw.TenantCollection(name).Drop(ctx)
}

// NewMongoSet wires the Mongo implementations of every repository
func NewMongoSet(gw *database.MongoGateway) *Set {
	return &Set{
		Organizations: NewOrganizationRepository(gw),
		Users:         NewUserRepository(gw),
		Tenants:       NewTenantRepository(gw),
		Health:        gw,
	}
}
