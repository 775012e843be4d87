package repository

import (
	"context"
	"time"

	"org-tenancy-backend/internal/database"
	"org-tenancy-backend/internal/database/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository handles Mongo operations on the users collection
type UserRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewUserRepository creates a new user repository
func NewUserRepository(gw *database.MongoGateway) *UserRepository {
	return &UserRepository{
		collection: gw.MasterDatabase().Collection(models.UsersCollection),
		now:        time.Now,
	}
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.Stamp(r.now().UTC())
	_, err := r.collection.InsertOne(ctx, user)
	return translateError(err)
}

// GetByEmail returns the first user with the given email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// UpdateByOrganization applies the update to every user of the organization
func (r *UserRepository) UpdateByOrganization(ctx context.Context, organizationName string, update UserUpdate) error {
	if update.IsEmpty() {
		return nil
	}
	set := bson.M{"updated_at": r.now().UTC()}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.PasswordHash != nil {
		set["password"] = *update.PasswordHash
	}
	if update.OrganizationName != nil {
		set["organization_name"] = *update.OrganizationName
	}
	_, err := r.collection.UpdateMany(ctx, bson.M{"organization_name": organizationName}, bson.M{"$set": set})
	return translateError(err)
}

// DeleteByOrganization removes every user of the organization
func (r *UserRepository) DeleteByOrganization(ctx context.Context, organizationName string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"organization_name": organizationName})
	if err != nil {
		return 0, translateError(err)
	}
	return res.DeletedCount, nil
}
