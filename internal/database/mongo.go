package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo collection names
const (
	CampgroundsCollection = "campgrounds"
	ReviewsCollection     = "reviews"
)

type MongoOptions struct {
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
}

// ConnectMongo connects to uri and returns the client and the named database.
// The caller owns the client and must Disconnect it on shutdown.
func ConnectMongo(ctx context.Context, uri, dbName string, opts *MongoOptions) (*mongo.Client, *mongo.Database, error) {
	if opts == nil {
		opts = &MongoOptions{}
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 10 * time.Second
	}
	if opts.MaxPoolSize == 0 {
		opts.MaxPoolSize = 20
	}

	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(opts.ConnectTimeout).
		SetMaxPoolSize(opts.MaxPoolSize)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, client.Database(dbName), nil
}
