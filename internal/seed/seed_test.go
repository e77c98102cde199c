package seed_test

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"yelpcamp/internal/database/models"
	"yelpcamp/internal/mocks"
	"yelpcamp/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const sampleData = `
image: https://example.com/camp.jpg
description: Lorem ipsum
descriptors: [Misty, Roaring]
places: [Flats, Hollow]
cities:
  - { city: Boulder, state: Colorado }
  - { city: Missoula, state: Montana }
`

func TestParse(t *testing.T) {
	data, err := seed.Parse([]byte(sampleData))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/camp.jpg", data.Image)
	assert.Len(t, data.Cities, 2)

	_, err = seed.Parse([]byte("descriptors: [a]\nplaces: [b]\n"))
	assert.ErrorContains(t, err, "no cities")
}

func TestLoadFile_RepositoryData(t *testing.T) {
	data, err := seed.LoadFile("../../scripts/data/campgrounds.yaml")
	require.NoError(t, err)
	assert.NotEmpty(t, data.Descriptors)
	assert.NotEmpty(t, data.Places)
	assert.NotEmpty(t, data.Cities)
}

func TestGenerate(t *testing.T) {
	data, err := seed.Parse([]byte(sampleData))
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		cg := data.Generate(rng)

		assert.GreaterOrEqual(t, cg.Price, 10.0)
		assert.LessOrEqual(t, cg.Price, 29.0)
		assert.Equal(t, cg.Price, float64(int(cg.Price)))

		parts := strings.SplitN(cg.Title, " ", 2)
		require.Len(t, parts, 2)
		assert.Contains(t, data.Descriptors, parts[0])
		assert.Contains(t, data.Places, parts[1])
		assert.Contains(t, []string{"Boulder, Colorado", "Missoula, Montana"}, cg.Location)
		assert.Equal(t, "Lorem ipsum", cg.Description)
		assert.Equal(t, "https://example.com/camp.jpg", cg.Image)
	}
}

func TestSeed(t *testing.T) {
	data, err := seed.Parse([]byte(sampleData))
	require.NoError(t, err)

	t.Run("clears then inserts count campgrounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		campgrounds := mocks.NewMockCampgroundRepositoryInterface(ctrl)
		reviews := mocks.NewMockReviewRepositoryInterface(ctrl)
		store.EXPECT().Campgrounds().Return(campgrounds).AnyTimes()
		store.EXPECT().Reviews().Return(reviews).AnyTimes()

		gomock.InOrder(
			reviews.EXPECT().DeleteAll(gomock.Any()).Return(int64(3), nil),
			campgrounds.EXPECT().DeleteAll(gomock.Any()).Return(int64(2), nil),
			campgrounds.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(&models.Campground{})).Return(nil).Times(5),
		)

		err := seed.Seed(context.Background(), store, data, 5, rand.New(rand.NewSource(7)))
		assert.NoError(t, err)
	})

	t.Run("stops on store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		campgrounds := mocks.NewMockCampgroundRepositoryInterface(ctrl)
		reviews := mocks.NewMockReviewRepositoryInterface(ctrl)
		store.EXPECT().Campgrounds().Return(campgrounds).AnyTimes()
		store.EXPECT().Reviews().Return(reviews).AnyTimes()

		reviews.EXPECT().DeleteAll(gomock.Any()).Return(int64(0), nil)
		campgrounds.EXPECT().DeleteAll(gomock.Any()).Return(int64(0), nil)
		campgrounds.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		err := seed.Seed(context.Background(), store, data, 5, rand.New(rand.NewSource(7)))
		assert.ErrorContains(t, err, "failed to seed campground 1")
	})
}
