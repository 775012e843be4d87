package testutils

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"org-tenancy-backend/internal/database"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"go.mongodb.org/mongo-driver/bson"
)

const mongoTestDatabase = "master_db_test"

var (
	mongoOnce     sync.Once
	mongoInitErr  error
	mongoPool     *dockertest.Pool
	mongoResource *dockertest.Resource
	mongoGateway  *database.MongoGateway
)

// MongoTestSuite hands a shared Mongo gateway to repository tests
type MongoTestSuite struct {
	Gateway *database.MongoGateway
}

// SetupMongoTestSuite starts (once) the shared Mongo container and returns a per-suite wrapper.
func SetupMongoTestSuite(t *testing.T) *MongoTestSuite {
	mongoOnce.Do(func() { mongoInitErr = initSharedMongoContainer() })
	if mongoInitErr != nil {
		t.Fatalf("failed to initialize shared mongo container: %v", mongoInitErr)
	}
	return &MongoTestSuite{Gateway: mongoGateway}
}

// CleanTestDB drops every collection of the test database and recreates the master indexes.
func (s *MongoTestSuite) CleanTestDB() {
	if s.Gateway == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	names, err := s.Gateway.MasterDatabase().ListCollectionNames(ctx, bson.M{})
	if err != nil {
		log.Printf("WARN: could not list collections: %v", err)
		return
	}
	for _, name := range names {
		if strings.HasPrefix(name, "system.") {
			continue
		}
		if err := s.Gateway.MasterDatabase().Collection(name).Drop(ctx); err != nil {
			log.Printf("WARN: could not drop %s: %v", name, err)
		}
	}
	if err := s.Gateway.EnsureIndexes(ctx); err != nil {
		log.Printf("WARN: could not recreate indexes: %v", err)
	}
}

// CollectionNames lists the collections currently present in the test database
func (s *MongoTestSuite) CollectionNames(t *testing.T) []string {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	names, err := s.Gateway.MasterDatabase().ListCollectionNames(ctx, bson.M{})
	if err != nil {
		t.Fatalf("list collections: %v", err)
	}
	return names
}

func initSharedMongoContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	mongoPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start mongo: %w", err)
	}
	mongoResource = resource

	uri := fmt.Sprintf("mongodb://127.0.0.1:%s", resource.GetPort("27017/tcp"))

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		gw, err := database.ConnectMongo(ctx, uri, mongoTestDatabase, &database.MongoOptions{ConnectTimeout: 5 * time.Second})
		if err != nil {
			return err
		}
		mongoGateway = gw
		return nil
	}); err != nil {
		return fmt.Errorf("could not connect to docker mongo: %w", err)
	}

	log.Printf("Shared Mongo ready on %s", uri)
	return nil
}

func cleanupMongoContainer() {
	if mongoGateway != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		_ = mongoGateway.Close(ctx)
		cancel()
	}
	if mongoPool != nil && mongoResource != nil {
		log.Printf("Purging Docker container: %s", mongoResource.Container.Name)
		if err := mongoPool.Purge(mongoResource); err != nil {
			log.Printf("WARN: could not purge mongo resource: %v", err)
		}
		mongoResource = nil
		mongoPool = nil
		mongoGateway = nil
	}
}
