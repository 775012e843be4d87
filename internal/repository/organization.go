package repository

import (
	"context"
	"time"

	"org-tenancy-backend/internal/database"
	"org-tenancy-backend/internal/database/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrganizationRepository handles Mongo operations on the organizations collection
type OrganizationRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(gw *database.MongoGateway) *OrganizationRepository {
	return &OrganizationRepository{
		collection: gw.MasterDatabase().Collection(models.OrganizationsCollection),
		now:        time.Now,
	}
}

// Create inserts a new organization
func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	org.Stamp(r.now().UTC())
	_, err := r.collection.InsertOne(ctx, org)
	return translateError(err)
}

// GetByName retrieves an organization by its exact name
func (r *OrganizationRepository) GetByName(ctx context.Context, name string) (*models.Organization, error) {
	var org models.Organization
	err := r.collection.FindOne(ctx, bson.M{"organization_name": name}).Decode(&org)
	if err != nil {
		return nil, translateError(err)
	}
	return &org, nil
}

// Rename points the organization row at its new name and collection
func (r *OrganizationRepository) Rename(ctx context.Context, oldName, newName string, collection models.CollectionName) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"organization_name": oldName},
		bson.M{"$set": bson.M{
			"organization_name": newName,
			"collection_name":   collection,
			"updated_at":        r.now().UTC(),
		}},
	)
	if err != nil {
		return translateError(err)
	}
	if res.MatchedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// DeleteByName removes the organization row
func (r *OrganizationRepository) DeleteByName(ctx context.Context, name string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"organization_name": name})
	if err != nil {
		return translateError(err)
	}
	if res.DeletedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}
