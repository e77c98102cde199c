package models

// Rating bounds for a review
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rated comment owned by exactly one campground
type Review struct {
	BaseModel
	Body   string `json:"body" gorm:"type:text;not null"`
	Rating int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
}

// TableName returns the table name for Review
func (Review) TableName() string {
	return "reviews"
}

// OrderByIDs returns reviews sorted to follow ids. Reviews whose id is not in
// ids are dropped, as are ids with no matching review.
func OrderByIDs(reviews []Review, ids []string) []Review {
	byID := make(map[string]Review, len(reviews))
	for _, r := range reviews {
		byID[r.ID] = r
	}
	ordered := make([]Review, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered
}
