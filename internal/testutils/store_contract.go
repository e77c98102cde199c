package testutils

import (
	"context"
	"errors"
	"testing"

	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract checks behaviour every repository.Store backend must share.
// newStore must return a store over empty collections.
func RunStoreContract(t *testing.T, newStore func(t *testing.T) repository.Store, missingID string) {
	campgrounds := NewCampgroundFactory()
	reviews := NewReviewFactory()
	ctx := context.Background()

	t.Run("create then get returns input fields and no reviews", func(t *testing.T) {
		store := newStore(t)
		cg := campgrounds.Create()
		require.NoError(t, store.Campgrounds().Create(ctx, cg))
		require.NotEmpty(t, cg.ID)

		got, err := store.Campgrounds().GetWithReviews(ctx, cg.ID)
		require.NoError(t, err)
		assert.Equal(t, cg.Title, got.Title)
		assert.Equal(t, cg.Price, got.Price)
		assert.Equal(t, cg.Image, got.Image)
		assert.Equal(t, cg.Description, got.Description)
		assert.Equal(t, cg.Location, got.Location)
		assert.Empty(t, got.ReviewIDs)
		assert.Empty(t, got.Reviews)
	})

	t.Run("missing and malformed ids are not found", func(t *testing.T) {
		store := newStore(t)
		for _, id := range []string{missingID, "not-an-id", ""} {
			_, err := store.Campgrounds().GetByID(ctx, id)
			assert.True(t, apperrors.IsNotFound(err), id)

			_, err = store.Campgrounds().GetWithReviews(ctx, id)
			assert.True(t, apperrors.IsNotFound(err), id)

			cg := campgrounds.Create()
			cg.ID = id
			assert.True(t, apperrors.IsNotFound(store.Campgrounds().Update(ctx, cg)), id)

			_, err = store.Campgrounds().Delete(ctx, id)
			assert.True(t, apperrors.IsNotFound(err), id)

			_, err = store.Reviews().GetByID(ctx, id)
			assert.True(t, apperrors.IsNotFound(err), id)
		}
	})

	t.Run("list keeps insertion order", func(t *testing.T) {
		store := newStore(t)
		for _, title := range []string{"First", "Second", "Third"} {
			require.NoError(t, store.Campgrounds().Create(ctx, campgrounds.WithTitle(title)))
		}

		all, err := store.Campgrounds().GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "First", all[0].Title)
		assert.Equal(t, "Third", all[2].Title)
	})

	t.Run("update replaces fields and keeps reviews", func(t *testing.T) {
		store := newStore(t)
		cg := campgrounds.Create()
		require.NoError(t, store.Campgrounds().Create(ctx, cg))
		r := reviews.Create()
		require.NoError(t, store.Reviews().Create(ctx, r))
		require.NoError(t, store.Campgrounds().AppendReview(ctx, cg.ID, r.ID))

		changed := campgrounds.WithTitle("Renamed")
		changed.ID = cg.ID
		changed.Price = 0
		require.NoError(t, store.Campgrounds().Update(ctx, changed))

		got, err := store.Campgrounds().GetByID(ctx, cg.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Title)
		assert.Zero(t, got.Price)
		assert.Equal(t, []string{r.ID}, got.ReviewIDs)
	})

	t.Run("reviews resolve in attach order", func(t *testing.T) {
		store := newStore(t)
		cg := campgrounds.Create()
		require.NoError(t, store.Campgrounds().Create(ctx, cg))

		var ids []string
		for rating := 1; rating <= 3; rating++ {
			r := reviews.WithRating(rating)
			require.NoError(t, store.Reviews().Create(ctx, r))
			require.NoError(t, store.Campgrounds().AppendReview(ctx, cg.ID, r.ID))
			ids = append(ids, r.ID)
		}

		got, err := store.Campgrounds().GetWithReviews(ctx, cg.ID)
		require.NoError(t, err)
		assert.Equal(t, ids, got.ReviewIDs)
		require.Len(t, got.Reviews, 3)
		for i, r := range got.Reviews {
			assert.Equal(t, ids[i], r.ID)
			assert.Equal(t, i+1, r.Rating)
		}
	})

	t.Run("append to missing campground", func(t *testing.T) {
		store := newStore(t)
		r := reviews.Create()
		require.NoError(t, store.Reviews().Create(ctx, r))
		assert.True(t, apperrors.IsNotFound(store.Campgrounds().AppendReview(ctx, missingID, r.ID)))
	})

	t.Run("delete returns the removed references", func(t *testing.T) {
		store := newStore(t)
		cg := campgrounds.Create()
		require.NoError(t, store.Campgrounds().Create(ctx, cg))
		r := reviews.Create()
		require.NoError(t, store.Reviews().Create(ctx, r))
		require.NoError(t, store.Campgrounds().AppendReview(ctx, cg.ID, r.ID))

		removed, err := store.Campgrounds().Delete(ctx, cg.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{r.ID}, removed.ReviewIDs)

		_, err = store.Campgrounds().GetByID(ctx, cg.ID)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("delete many ignores unknown and malformed ids", func(t *testing.T) {
		store := newStore(t)
		a, b := reviews.Create(), reviews.Create()
		require.NoError(t, store.Reviews().Create(ctx, a))
		require.NoError(t, store.Reviews().Create(ctx, b))

		n, err := store.Reviews().DeleteMany(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, n)

		n, err = store.Reviews().DeleteMany(ctx, []string{a.ID, missingID, "garbage"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		left, err := store.Reviews().GetByIDs(ctx, []string{a.ID, b.ID})
		require.NoError(t, err)
		require.Len(t, left, 1)
		assert.Equal(t, b.ID, left[0].ID)

		n, err = store.Reviews().DeleteMany(ctx, []string{a.ID})
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("transaction error rolls back", func(t *testing.T) {
		store := newStore(t)
		boom := errors.New("boom")

		err := store.WithinTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
			if err := tx.Campgrounds().Create(ctx, campgrounds.Create()); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		all, err := store.Campgrounds().GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("delete all", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Campgrounds().Create(ctx, campgrounds.Create()))
		require.NoError(t, store.Campgrounds().Create(ctx, campgrounds.Create()))

		n, err := store.Campgrounds().DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, newStore(t).Ping(ctx))
	})
}
