// Package seed repopulates the store with generated campgrounds.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"yelpcamp/internal/database/models"
	"yelpcamp/internal/logger"
	"yelpcamp/internal/repository"

	"gopkg.in/yaml.v3"
)

// DefaultCount is the number of campgrounds a seed run creates
const DefaultCount = 50

// City is one entry of the location word list
type City struct {
	City  string `yaml:"city"`
	State string `yaml:"state"`
}

// Data holds the word lists campgrounds are generated from
type Data struct {
	Image       string   `yaml:"image"`
	Description string   `yaml:"description"`
	Descriptors []string `yaml:"descriptors"`
	Places      []string `yaml:"places"`
	Cities      []City   `yaml:"cities"`
}

// LoadFile reads seed data from a YAML file
func LoadFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed data: %w", err)
	}
	return Parse(raw)
}

// Parse decodes seed data and checks that every word list is populated
func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	switch {
	case len(data.Descriptors) == 0:
		return nil, fmt.Errorf("seed data has no descriptors")
	case len(data.Places) == 0:
		return nil, fmt.Errorf("seed data has no places")
	case len(data.Cities) == 0:
		return nil, fmt.Errorf("seed data has no cities")
	}
	return &data, nil
}

// Generate builds one random campground. Price is a whole number from 10 to 29.
func (d *Data) Generate(rng *rand.Rand) *models.Campground {
	city := d.Cities[rng.Intn(len(d.Cities))]
	return &models.Campground{
		Title:       fmt.Sprintf("%s %s", sample(rng, d.Descriptors), sample(rng, d.Places)),
		Image:       d.Image,
		Price:       float64(rng.Intn(20) + 10),
		Description: d.Description,
		Location:    fmt.Sprintf("%s, %s", city.City, city.State),
	}
}

func sample(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

// Seed deletes every review and campground and inserts count generated campgrounds
func Seed(ctx context.Context, store repository.Store, data *Data, count int, rng *rand.Rand) error {
	log := logger.WithContext(ctx)

	reviews, err := store.Reviews().DeleteAll(ctx)
	if err != nil {
		return err
	}
	campgrounds, err := store.Campgrounds().DeleteAll(ctx)
	if err != nil {
		return err
	}
	log.WithFields(map[string]interface{}{
		"campgrounds": campgrounds,
		"reviews":     reviews,
	}).Info("Cleared existing data")

	for i := 0; i < count; i++ {
		if err := store.Campgrounds().Create(ctx, data.Generate(rng)); err != nil {
			return fmt.Errorf("failed to seed campground %d: %w", i+1, err)
		}
	}

	log.WithField("count", count).Info("Seeded campgrounds")
	return nil
}
