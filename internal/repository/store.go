package repository

import (
	"context"

	"yelpcamp/internal/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore is the Postgres-backed Store
type GormStore struct {
	db          *gorm.DB
	campgrounds *CampgroundRepository
	reviews     *ReviewRepository
}

// Ensure GormStore implements Store
var _ Store = (*GormStore)(nil)

// NewGormStore creates a Store on top of db
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:          db,
		campgrounds: NewCampgroundRepository(db),
		reviews:     NewReviewRepository(db),
	}
}

func (s *GormStore) Campgrounds() CampgroundRepositoryInterface { return s.campgrounds }

func (s *GormStore) Reviews() ReviewRepositoryInterface { return s.reviews }

// WithinTransaction runs fn inside a database transaction; any error rolls it back
func (s *GormStore) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewGormStore(tx))
	})
}

// Ping checks database connectivity
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool
func (s *GormStore) Close(ctx context.Context) error {
	return database.Close(s.db)
}

// isUUID reports whether id can address a row; anything else cannot exist
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// filterUUIDs drops ids that cannot address a row
func filterUUIDs(ids []string) []string {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if isUUID(id) {
			valid = append(valid, id)
		}
	}
	return valid
}
