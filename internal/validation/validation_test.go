package validation

import (
	"encoding/json"
	"net/url"
	"strconv"
	"testing"

	apperrors "yelpcamp/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 { return &v }
func integer(v int) *int       { return &v }

func validCampground() *CampgroundInput {
	return &CampgroundInput{
		Title:       "Ridge View",
		Image:       "x",
		Price:       float(25),
		Description: "y",
		Location:    "z",
	}
}

func TestValidate_Campground(t *testing.T) {
	v := New()

	t.Run("accepts a complete payload unchanged", func(t *testing.T) {
		in := validCampground()
		require.NoError(t, v.Validate(Campground, in))
		assert.Equal(t, validCampground(), in)
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		in := validCampground()
		in.Price = float(0)
		assert.NoError(t, v.Validate(Campground, in))
	})

	t.Run("missing title and negative price are both reported", func(t *testing.T) {
		in := validCampground()
		in.Title = ""
		in.Price = float(-1)

		err := v.Validate(Campground, in)

		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"title", "price"}, verr.Fields())
		assert.Equal(t, `"title" is required,"price" must be greater than or equal to 0`, err.Error())
	})

	t.Run("empty payload lists every field", func(t *testing.T) {
		err := v.Validate(Campground, &CampgroundInput{})

		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"title", "image", "price", "description", "location"}, verr.Fields())
	})

	t.Run("wrong payload type", func(t *testing.T) {
		err := v.Validate(Campground, &ReviewInput{})
		assert.True(t, apperrors.IsValidation(err))
		assert.Equal(t, `"campground" must be of type object`, err.Error())
	})

	t.Run("nil payload", func(t *testing.T) {
		var in *CampgroundInput
		err := v.Validate(Campground, in)
		assert.Equal(t, `"campground" is required`, err.Error())
	})
}

func TestValidate_Review(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   *ReviewInput
		wantErr string
	}{
		{name: "valid", input: &ReviewInput{Body: "Nice", Rating: integer(5)}},
		{name: "lowest rating", input: &ReviewInput{Body: "Meh", Rating: integer(1)}},
		{name: "rating too high", input: &ReviewInput{Body: "Wow", Rating: integer(6)}, wantErr: `"rating" must be less than or equal to 5`},
		{name: "rating too low", input: &ReviewInput{Body: "Bad", Rating: integer(0)}, wantErr: `"rating" must be greater than or equal to 1`},
		{name: "missing rating", input: &ReviewInput{Body: "Nice"}, wantErr: `"rating" is required`},
		{name: "missing body", input: &ReviewInput{Rating: integer(3)}, wantErr: `"body" is required`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(Review, tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidate_UnknownKind(t *testing.T) {
	err := New().Validate(Kind(7), validCampground())
	require.Error(t, err)
	assert.False(t, apperrors.IsValidation(err))
}

func TestFromBindError(t *testing.T) {
	t.Run("json type mismatch names the field", func(t *testing.T) {
		var in CampgroundInput
		bindErr := json.Unmarshal([]byte(`{"price":"cheap"}`), &in)
		require.Error(t, bindErr)

		err := FromBindError(bindErr)
		assert.True(t, apperrors.IsValidation(err))
		assert.Equal(t, `"price" must be a number`, err.Error())
	})

	t.Run("other decoding failures", func(t *testing.T) {
		var in CampgroundInput
		err := FromBindError(json.Unmarshal([]byte(`{`), &in))
		assert.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "malformed request")
	})

	t.Run("number parse failures hide parser detail", func(t *testing.T) {
		_, parseErr := strconv.ParseFloat("abc", 64)
		err := FromBindError(parseErr)
		assert.True(t, apperrors.IsValidation(err))
		assert.NotContains(t, err.Error(), "strconv")
		assert.NotContains(t, err.Error(), "abc")
	})

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, FromBindError(nil))
	})
}

func TestCheckForm(t *testing.T) {
	t.Run("non-numeric values are named like json type errors", func(t *testing.T) {
		err := CheckForm(&CampgroundInput{}, url.Values{"price": {"abc"}, "title": {"abc"}})
		assert.True(t, apperrors.IsValidation(err))
		assert.Equal(t, `"price" must be a number`, err.Error())

		err = CheckForm(&ReviewInput{}, url.Values{"rating": {"4.5"}})
		assert.Equal(t, `"rating" must be a number`, err.Error())
	})

	t.Run("numbers and blanks pass", func(t *testing.T) {
		assert.NoError(t, CheckForm(&CampgroundInput{}, url.Values{"price": {"12.5"}}))
		assert.NoError(t, CheckForm(&CampgroundInput{}, url.Values{"price": {" "}}))
		assert.NoError(t, CheckForm(&ReviewInput{}, url.Values{"rating": {"3"}}))
		assert.NoError(t, CheckForm(&ReviewInput{}, nil))
	})

	t.Run("non-struct targets are ignored", func(t *testing.T) {
		var n int
		assert.NoError(t, CheckForm(&n, url.Values{"price": {"abc"}}))
	})
}
