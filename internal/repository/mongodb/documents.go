package mongodb

import (
	"time"

	"yelpcamp/internal/database/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type campgroundDocument struct {
	ID          primitive.ObjectID   `bson:"_id"`
	Title       string               `bson:"title"`
	Image       string               `bson:"image"`
	Price       float64              `bson:"price"`
	Description string               `bson:"description"`
	Location    string               `bson:"location"`
	Reviews     []primitive.ObjectID `bson:"reviews"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

// campgroundWithReviews is the shape produced by the $lookup pipeline.
// The inlined document needs an exported field name or the codec skips it.
type campgroundWithReviews struct {
	Campground campgroundDocument `bson:",inline"`
	ReviewDocs []reviewDocument   `bson:"review_docs"`
}

type reviewDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Body      string             `bson:"body"`
	Rating    int                `bson:"rating"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *campgroundDocument) toModel() *models.Campground {
	ids := make([]string, len(d.Reviews))
	for i, oid := range d.Reviews {
		ids[i] = oid.Hex()
	}
	return &models.Campground{
		BaseModel: models.BaseModel{
			ID:        d.ID.Hex(),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		Title:       d.Title,
		Image:       d.Image,
		Price:       d.Price,
		Description: d.Description,
		Location:    d.Location,
		ReviewIDs:   ids,
	}
}

func (d *reviewDocument) toModel() models.Review {
	return models.Review{
		BaseModel: models.BaseModel{
			ID:        d.ID.Hex(),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		Body:   d.Body,
		Rating: d.Rating,
	}
}

// objectIDs converts hex ids, dropping any that are not valid ObjectIDs
func objectIDs(ids []string) []primitive.ObjectID {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	return oids
}
