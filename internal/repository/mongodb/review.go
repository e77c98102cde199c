package mongodb

import (
	"context"
	"errors"
	"time"

	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewRepository handles MongoDB operations for reviews
type ReviewRepository struct {
	coll *mongo.Collection
}

// Ensure ReviewRepository implements repository.ReviewRepositoryInterface
var _ repository.ReviewRepositoryInterface = (*ReviewRepository)(nil)

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: reviewsColl(db)}
}

// Create inserts a review with a fresh ObjectID
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	now := time.Now().UTC()
	doc := reviewDocument{
		ID:        primitive.NewObjectID(),
		Body:      review.Body,
		Rating:    review.Rating,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return apperrors.NewStoreError("create review", err)
	}
	review.ID = doc.ID.Hex()
	review.CreatedAt = now
	review.UpdatedAt = now
	return nil
}

// GetByID retrieves a review by its id
func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*models.Review, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrReviewNotFound
	}
	var doc reviewDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, apperrors.NewStoreError("get review", err)
	}
	review := doc.toModel()
	return &review, nil
}

// GetByIDs retrieves the reviews that exist among ids
func (r *ReviewRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Review, error) {
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return []models.Review{}, nil
	}
	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, apperrors.NewStoreError("get reviews", err)
	}
	defer cur.Close(ctx)

	var docs []reviewDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, apperrors.NewStoreError("get reviews", err)
	}
	reviews := make([]models.Review, len(docs))
	for i := range docs {
		reviews[i] = docs[i].toModel()
	}
	return reviews, nil
}

// DeleteMany deletes the reviews whose own _id is among ids. Unknown ids are ignored.
func (r *ReviewRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return 0, nil
	}
	res, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, apperrors.NewStoreError("delete reviews", err)
	}
	return res.DeletedCount, nil
}

// DeleteAll removes every review
func (r *ReviewRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, apperrors.NewStoreError("delete all reviews", err)
	}
	return res.DeletedCount, nil
}
