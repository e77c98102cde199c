package factory

import (
	"context"
	"testing"

	"yelpcamp/internal/config"
	apperrors "yelpcamp/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestNewStore_UnknownDriver(t *testing.T) {
	store, err := NewStore(context.Background(), &config.Config{DBDriver: "bolt"})

	assert.Nil(t, store)
	assert.ErrorIs(t, err, apperrors.ErrUnknownDriver)
	assert.Contains(t, err.Error(), `"bolt"`)
}
