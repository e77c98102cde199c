//go:build integration
// +build integration

package mongodb_test

import (
	"context"
	"errors"
	"testing"

	"yelpcamp/internal/database"
	"yelpcamp/internal/repository"
	"yelpcamp/internal/repository/mongodb"
	"yelpcamp/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Contract(t *testing.T) {
	testutils.RunStoreContract(t, func(t *testing.T) repository.Store {
		client, db := testutils.SetupMongo(t)
		return mongodb.NewStore(client, db, true)
	}, primitive.NewObjectID().Hex())
}

func TestStore_WithoutTransactionsKeepsPartialWrites(t *testing.T) {
	client, db := testutils.SetupMongo(t)
	store := mongodb.NewStore(client, db, false)
	ctx := context.Background()

	err := store.WithinTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if err := tx.Campgrounds().Create(ctx, testutils.NewCampgroundFactory().Create()); err != nil {
			return err
		}
		return errors.New("boom")
	})
	require.Error(t, err)

	all, err := store.Campgrounds().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCampgroundRepository_ReviewsStoredAsObjectIDs(t *testing.T) {
	client, db := testutils.SetupMongo(t)
	store := mongodb.NewStore(client, db, true)
	ctx := context.Background()

	cg := testutils.NewCampgroundFactory().Create()
	require.NoError(t, store.Campgrounds().Create(ctx, cg))
	r := testutils.NewReviewFactory().Create()
	require.NoError(t, store.Reviews().Create(ctx, r))
	require.NoError(t, store.Campgrounds().AppendReview(ctx, cg.ID, r.ID))

	oid, err := primitive.ObjectIDFromHex(cg.ID)
	require.NoError(t, err)

	var raw struct {
		Reviews []primitive.ObjectID `bson:"reviews"`
	}
	require.NoError(t, db.Collection(database.CampgroundsCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&raw))
	require.Len(t, raw.Reviews, 1)
	assert.Equal(t, r.ID, raw.Reviews[0].Hex())
}

func TestGetWithReviews_DropsDanglingReferences(t *testing.T) {
	client, db := testutils.SetupMongo(t)
	store := mongodb.NewStore(client, db, true)
	ctx := context.Background()

	cg := testutils.NewCampgroundFactory().Create()
	require.NoError(t, store.Campgrounds().Create(ctx, cg))
	kept := testutils.NewReviewFactory().Create()
	require.NoError(t, store.Reviews().Create(ctx, kept))
	require.NoError(t, store.Campgrounds().AppendReview(ctx, cg.ID, kept.ID))
	require.NoError(t, store.Campgrounds().AppendReview(ctx, cg.ID, primitive.NewObjectID().Hex()))

	got, err := store.Campgrounds().GetWithReviews(ctx, cg.ID)
	require.NoError(t, err)
	assert.Len(t, got.ReviewIDs, 2)
	require.Len(t, got.Reviews, 1)
	assert.Equal(t, kept.ID, got.Reviews[0].ID)
}
