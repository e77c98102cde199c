package models

// Campground is a listable place to camp. ReviewIDs is the ordered list of
// owned review references; Reviews is only populated by joined reads.
type Campground struct {
	BaseModel
	Title       string   `json:"title" gorm:"not null"`
	Image       string   `json:"image"`
	Price       float64  `json:"price" gorm:"not null;check:price >= 0"`
	Description string   `json:"description" gorm:"type:text"`
	Location    string   `json:"location"`
	ReviewIDs   []string `json:"review_ids" gorm:"column:review_ids;type:jsonb;serializer:json;not null;default:'[]'"`
	Reviews     []Review `json:"reviews,omitempty" gorm:"-"`
}

// TableName returns the table name for Campground
func (Campground) TableName() string {
	return "campgrounds"
}
