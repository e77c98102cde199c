package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCampgroundWithReviews_DecodesLookupResult(t *testing.T) {
	id := primitive.NewObjectID()
	first, second := primitive.NewObjectID(), primitive.NewObjectID()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	raw, err := bson.Marshal(bson.M{
		"_id":         id,
		"title":       "Ridge View",
		"image":       "x",
		"price":       25.0,
		"description": "y",
		"location":    "z",
		"reviews":     bson.A{first, second},
		"created_at":  created,
		"updated_at":  created,
		"review_docs": bson.A{
			bson.M{"_id": second, "body": "Meh", "rating": 2},
			bson.M{"_id": first, "body": "Nice", "rating": 5},
		},
	})
	require.NoError(t, err)

	var doc campgroundWithReviews
	require.NoError(t, bson.Unmarshal(raw, &doc))

	cg := doc.Campground.toModel()
	assert.Equal(t, id.Hex(), cg.ID)
	assert.Equal(t, "Ridge View", cg.Title)
	assert.Equal(t, 25.0, cg.Price)
	assert.Equal(t, "z", cg.Location)
	assert.Equal(t, created, cg.CreatedAt)
	assert.Equal(t, []string{first.Hex(), second.Hex()}, cg.ReviewIDs)
	require.Len(t, doc.ReviewDocs, 2)
	assert.Equal(t, 2, doc.ReviewDocs[0].Rating)
}

func TestCampgroundDocument_ToModelWithoutReviews(t *testing.T) {
	doc := campgroundDocument{ID: primitive.NewObjectID(), Title: "Empty"}

	cg := doc.toModel()
	assert.Equal(t, doc.ID.Hex(), cg.ID)
	assert.NotNil(t, cg.ReviewIDs)
	assert.Empty(t, cg.ReviewIDs)
}

func TestObjectIDs_DropsInvalid(t *testing.T) {
	valid := primitive.NewObjectID()
	assert.Equal(t, []primitive.ObjectID{valid}, objectIDs([]string{"nope", valid.Hex(), ""}))
}
