package mongodb

import (
	"context"
	"errors"
	"time"

	"yelpcamp/internal/database"
	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CampgroundRepository handles MongoDB operations for campgrounds
type CampgroundRepository struct {
	coll *mongo.Collection
}

// Ensure CampgroundRepository implements repository.CampgroundRepositoryInterface
var _ repository.CampgroundRepositoryInterface = (*CampgroundRepository)(nil)

// NewCampgroundRepository creates a new campground repository
func NewCampgroundRepository(db *mongo.Database) *CampgroundRepository {
	return &CampgroundRepository{coll: campgroundsColl(db)}
}

// Create inserts a campground with a fresh ObjectID and no reviews
func (r *CampgroundRepository) Create(ctx context.Context, campground *models.Campground) error {
	now := time.Now().UTC()
	doc := campgroundDocument{
		ID:          primitive.NewObjectID(),
		Title:       campground.Title,
		Image:       campground.Image,
		Price:       campground.Price,
		Description: campground.Description,
		Location:    campground.Location,
		Reviews:     []primitive.ObjectID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return apperrors.NewStoreError("create campground", err)
	}

	campground.ID = doc.ID.Hex()
	campground.CreatedAt = now
	campground.UpdatedAt = now
	campground.ReviewIDs = []string{}
	campground.Reviews = nil
	return nil
}

// GetByID retrieves a campground by its id
func (r *CampgroundRepository) GetByID(ctx context.Context, id string) (*models.Campground, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrCampgroundNotFound
	}
	var doc campgroundDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCampgroundNotFound
		}
		return nil, apperrors.NewStoreError("get campground", err)
	}
	return doc.toModel(), nil
}

// GetWithReviews retrieves a campground joined with its reviews, in reference order
func (r *CampgroundRepository) GetWithReviews(ctx context.Context, id string) (*models.Campground, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrCampgroundNotFound
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": oid}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         database.ReviewsCollection,
			"localField":   "reviews",
			"foreignField": "_id",
			"as":           "review_docs",
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperrors.NewStoreError("get campground", err)
	}
	defer cur.Close(ctx)

	var results []campgroundWithReviews
	if err := cur.All(ctx, &results); err != nil {
		return nil, apperrors.NewStoreError("get campground", err)
	}
	if len(results) == 0 {
		return nil, apperrors.ErrCampgroundNotFound
	}

	campground := results[0].Campground.toModel()
	reviews := make([]models.Review, len(results[0].ReviewDocs))
	for i := range results[0].ReviewDocs {
		reviews[i] = results[0].ReviewDocs[i].toModel()
	}
	campground.Reviews = models.OrderByIDs(reviews, campground.ReviewIDs)
	return campground, nil
}

// GetAll retrieves all campgrounds in insertion order
func (r *CampgroundRepository) GetAll(ctx context.Context) ([]models.Campground, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, apperrors.NewStoreError("list campgrounds", err)
	}
	defer cur.Close(ctx)

	var docs []campgroundDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, apperrors.NewStoreError("list campgrounds", err)
	}

	campgrounds := make([]models.Campground, len(docs))
	for i := range docs {
		campgrounds[i] = *docs[i].toModel()
	}
	return campgrounds, nil
}

// Update replaces the editable fields of the campground; id and review references are untouched
func (r *CampgroundRepository) Update(ctx context.Context, campground *models.Campground) error {
	oid, err := primitive.ObjectIDFromHex(campground.ID)
	if err != nil {
		return apperrors.ErrCampgroundNotFound
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"title":       campground.Title,
		"image":       campground.Image,
		"price":       campground.Price,
		"description": campground.Description,
		"location":    campground.Location,
		"updated_at":  time.Now().UTC(),
	}})
	if err != nil {
		return apperrors.NewStoreError("update campground", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrCampgroundNotFound
	}
	return nil
}

// AppendReview pushes reviewID onto the campground's review references
func (r *CampgroundRepository) AppendReview(ctx context.Context, campgroundID, reviewID string) error {
	oid, err := primitive.ObjectIDFromHex(campgroundID)
	if err != nil {
		return apperrors.ErrCampgroundNotFound
	}
	rid, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return apperrors.ErrReviewNotFound
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$push": bson.M{"reviews": rid},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return apperrors.NewStoreError("attach review", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrCampgroundNotFound
	}
	return nil
}

// Delete removes the campground and returns the removed document
func (r *CampgroundRepository) Delete(ctx context.Context, id string) (*models.Campground, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrCampgroundNotFound
	}
	var doc campgroundDocument
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCampgroundNotFound
		}
		return nil, apperrors.NewStoreError("delete campground", err)
	}
	return doc.toModel(), nil
}

// DeleteAll removes every campground
func (r *CampgroundRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, apperrors.NewStoreError("delete all campgrounds", err)
	}
	return res.DeletedCount, nil
}
