// Package mongodb implements the repository interfaces on MongoDB.
package mongodb

import (
	"context"

	"yelpcamp/internal/database"
	"yelpcamp/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store is the MongoDB-backed repository.Store
type Store struct {
	client       *mongo.Client
	db           *mongo.Database
	transactions bool
	campgrounds  *CampgroundRepository
	reviews      *ReviewRepository
}

// Ensure Store implements repository.Store
var _ repository.Store = (*Store)(nil)

// NewStore creates a Store on db. When transactions is false, WithinTransaction
// runs its steps sequentially, which is all a standalone server supports.
func NewStore(client *mongo.Client, db *mongo.Database, transactions bool) *Store {
	return &Store{
		client:       client,
		db:           db,
		transactions: transactions,
		campgrounds:  NewCampgroundRepository(db),
		reviews:      NewReviewRepository(db),
	}
}

func (s *Store) Campgrounds() repository.CampgroundRepositoryInterface { return s.campgrounds }

func (s *Store) Reviews() repository.ReviewRepositoryInterface { return s.reviews }

// WithinTransaction runs fn in a multi-document transaction when enabled.
// The session context handed to fn carries the transaction to every call made with it.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.Store) error) error {
	if !s.transactions {
		return fn(ctx, s)
	}

	session, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc, s)
	})
	return err
}

// Ping checks connectivity to the primary
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func campgroundsColl(db *mongo.Database) *mongo.Collection {
	return db.Collection(database.CampgroundsCollection)
}

func reviewsColl(db *mongo.Database) *mongo.Collection {
	return db.Collection(database.ReviewsCollection)
}
