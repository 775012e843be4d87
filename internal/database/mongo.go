package database

import (
	"context"
	"fmt"
	"time"

	"org-tenancy-backend/internal/database/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// MongoOptions tunes the Mongo client
type MongoOptions struct {
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
	SkipIndexes    bool
}

// MongoGateway owns the single Mongo client shared by all requests. Master and tenant
// collections live side by side in one logical database.
type MongoGateway struct {
	client *mongo.Client
	dbName string
}

var masterIndexes = map[string][]mongo.IndexModel{
	models.OrganizationsCollection: {
		{
			Keys:    bson.D{{Key: "organization_name", Value: 1}},
			Options: options.Index().SetName("uniq_organization_name").SetUnique(true),
		},
	},
	models.UsersCollection: {
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_email"),
		},
		{
			Keys:    bson.D{{Key: "organization_name", Value: 1}},
			Options: options.Index().SetName("idx_organization_name"),
		},
	},
}

// ConnectMongo establishes the store connection. It is called once at process start.
func ConnectMongo(ctx context.Context, uri, dbName string, opts *MongoOptions) (*MongoGateway, error) {
	if opts == nil {
		opts = &MongoOptions{}
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 10 * time.Second
	}
	if opts.MaxPoolSize == 0 {
		opts.MaxPoolSize = 100
	}

	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, fmt.Errorf("parse mongo connection string: %w", err)
	}
	if dbName == "" {
		dbName = cs.Database
	}
	if dbName == "" {
		return nil, fmt.Errorf("master database name is required")
	}

	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(opts.ConnectTimeout).
		SetServerSelectionTimeout(opts.ConnectTimeout).
		SetMaxPoolSize(opts.MaxPoolSize)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	gw := &MongoGateway{client: client, dbName: dbName}

	pingCtx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()
	if err := gw.Ping(pingCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	if !opts.SkipIndexes {
		if err := gw.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
	}

	return gw, nil
}

// EnsureIndexes creates the master collection indexes; it is safe to call repeatedly
func (g *MongoGateway) EnsureIndexes(ctx context.Context) error {
	for collection, indexes := range masterIndexes {
		if _, err := g.MasterDatabase().Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("create indexes on %s: %w", collection, err)
		}
	}
	return nil
}

// Close releases the connection
func (g *MongoGateway) Close(ctx context.Context) error {
	return g.client.Disconnect(ctx)
}

// Ping checks that the primary is reachable
func (g *MongoGateway) Ping(ctx context.Context) error {
	return g.client.Ping(ctx, readpref.Primary())
}

// DatabaseName returns the name of the master database
func (g *MongoGateway) DatabaseName() string {
	return g.dbName
}

// MasterDatabase returns the database holding the organizations and users collections
func (g *MongoGateway) MasterDatabase() *mongo.Database {
	return g.client.Database(g.dbName)
}

// TenantCollection returns the handle of a tenant collection in the master database
func (g *MongoGateway) TenantCollection(name models.CollectionName) *mongo.Collection {
	return g.MasterDatabase().Collection(name.String())
}

// RenameCollection renames a tenant collection in place. renameCollection is an admin
// command, so it runs against the admin database with fully qualified namespaces.
func (g *MongoGateway) RenameCollection(ctx context.Context, from, to models.CollectionName) error {
	cmd := bson.D{
		{Key: "renameCollection", Value: g.dbName + "." + from.String()},
		{Key: "to", Value: g.dbName + "." + to.String()},
	}
	return g.client.Database("admin").RunCommand(ctx, cmd).Err()
}
