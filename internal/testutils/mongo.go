package testutils

import (
	"context"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"yelpcamp/internal/database"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	mongoOnce     sync.Once
	mongoInitErr  error
	mongoPool     *dockertest.Pool
	mongoResource *dockertest.Resource
	mongoClient   *mongo.Client
	mongoURI      string
)

// MongoTestDatabase is the database used by Mongo-backed tests
const MongoTestDatabase = "yelp-camp-test"

// SetupMongo starts (once) a single-node replica set so that transactions are
// available, and returns a client plus a database emptied for this test.
func SetupMongo(t *testing.T) (*mongo.Client, *mongo.Database) {
	t.Helper()
	mongoOnce.Do(func() { mongoInitErr = initSharedMongoContainer() })
	if mongoInitErr != nil {
		t.Fatalf("failed to initialize shared mongo container: %v", mongoInitErr)
	}

	db := mongoClient.Database(MongoTestDatabase)
	CleanMongo(t, db)
	return mongoClient, db
}

// MongoURI returns the connection string of the shared container
func MongoURI() string {
	return mongoURI
}

// CleanMongo empties the application collections
func CleanMongo(t *testing.T, db *mongo.Database) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, name := range []string{database.CampgroundsCollection, database.ReviewsCollection} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			t.Fatalf("failed to clean %s: %v", name, err)
		}
	}
}

// CleanupSharedMongo tears down the Mongo container. Call it from TestMain.
func CleanupSharedMongo() {
	if mongoClient != nil {
		_ = mongoClient.Disconnect(context.Background())
		mongoClient = nil
	}
	if mongoPool != nil && mongoResource != nil {
		if err := mongoPool.Purge(mongoResource); err != nil {
			log.Printf("WARN: could not purge mongo resource: %v", err)
		}
		mongoPool = nil
		mongoResource = nil
	}
}

func initSharedMongoContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	mongoPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7.0",
		Cmd:        []string{"--replSet", "rs0", "--bind_ip_all"},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start mongo: %w", err)
	}
	mongoResource = resource

	mongoURI = fmt.Sprintf("mongodb://127.0.0.1:%s/?directConnection=true", resource.GetPort("27017/tcp"))

	pool.MaxWait = 2 * time.Minute
	err = pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
		if err != nil {
			return err
		}
		if err := client.Ping(ctx, readpref.Nearest()); err != nil {
			_ = client.Disconnect(context.Background())
			return err
		}

		// Initiating twice fails with AlreadyInitialized, which is fine on retry
		_ = client.Database("admin").RunCommand(ctx, bson.D{{Key: "replSetInitiate", Value: bson.M{
			"_id":     "rs0",
			"members": bson.A{bson.M{"_id": 0, "host": "localhost:27017"}},
		}}}).Err()

		var hello struct {
			IsWritablePrimary bool `bson:"isWritablePrimary"`
		}
		if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&hello); err != nil || !hello.IsWritablePrimary {
			_ = client.Disconnect(context.Background())
			return fmt.Errorf("replica set has no primary yet (err: %v)", err)
		}
		mongoClient = client
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not connect to docker mongo: %w", err)
	}

	log.Printf("Shared Mongo replica set ready at %s", mongoURI)
	return nil
}
