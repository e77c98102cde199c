// Package validation checks incoming campground and review payloads before
// they reach the stores.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Kind names the schema a payload is checked against
type Kind int

const (
	Campground Kind = iota
	Review
)

func (k Kind) String() string {
	switch k {
	case Campground:
		return "campground"
	case Review:
		return "review"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// CampgroundInput is the body of a campground create or update request.
// Price is a pointer so that a missing value is distinguishable from zero.
type CampgroundInput struct {
	Title       string   `json:"title" form:"title" validate:"required" example:"Ridge View"`
	Image       string   `json:"image" form:"image" validate:"required" example:"https://example.com/ridge.jpg"`
	Price       *float64 `json:"price" form:"price" validate:"required,gte=0" example:"25"`
	Description string   `json:"description" form:"description" validate:"required" example:"Quiet sites above the river"`
	Location    string   `json:"location" form:"location" validate:"required" example:"Boulder, Colorado"`
}

// ReviewInput is the body of a review create request
type ReviewInput struct {
	Body   string `json:"body" form:"body" validate:"required" example:"Nice"`
	Rating *int   `json:"rating" form:"rating" validate:"required,rating" example:"5"`
}

// Validator checks payloads against the campground and review schemas
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their json names
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterAlias("rating", fmt.Sprintf("min=%d,max=%d", models.MinRating, models.MaxRating))
	return &Validator{validate: v}
}

// Validate checks payload against the schema for kind. It returns nil when the
// payload is acceptable and a *errors.ValidationError listing every violated
// field otherwise. The payload is never modified.
func (v *Validator) Validate(kind Kind, payload interface{}) error {
	switch kind {
	case Campground:
		in, ok := payload.(*CampgroundInput)
		if !ok {
			return typeViolation(kind)
		}
		if in == nil {
			return requiredViolation(kind)
		}
	case Review:
		in, ok := payload.(*ReviewInput)
		if !ok {
			return typeViolation(kind)
		}
		if in == nil {
			return requiredViolation(kind)
		}
	default:
		return fmt.Errorf("no schema registered for %s", kind)
	}

	if err := v.validate.Struct(payload); err != nil {
		return translate(err)
	}
	return nil
}

func translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &apperrors.ValidationError{Violations: []apperrors.FieldViolation{{Message: err.Error()}}}
	}

	violations := make([]apperrors.FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, apperrors.FieldViolation{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return &apperrors.ValidationError{Violations: violations}
}

func message(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%q is required", fe.Field())
	case "gte", "min":
		return fmt.Sprintf("%q must be greater than or equal to %s", fe.Field(), fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%q must be less than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%q is invalid", fe.Field())
	}
}

func typeViolation(kind Kind) error {
	return apperrors.NewValidationError(kind.String(), fmt.Sprintf("%q must be of type object", kind.String()))
}

func requiredViolation(kind Kind) error {
	return apperrors.NewValidationError(kind.String(), fmt.Sprintf("%q is required", kind.String()))
}

// FromBindError converts a request decoding failure into a ValidationError so
// that malformed bodies are rejected like any other invalid payload.
func FromBindError(err error) error {
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.NewValidationError(typeErr.Field, fmt.Sprintf("%q must be a %s", typeErr.Field, jsonKind(typeErr.Type)))
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return apperrors.NewValidationError("request", "malformed request: a numeric field is not a number")
	}
	return apperrors.NewValidationError("request", fmt.Sprintf("malformed request: %v", err))
}

// CheckForm reports form values that cannot be decoded into the numeric
// fields of obj, named the same way as JSON type errors. Blank values are
// skipped; they are left for the required rule.
func CheckForm(obj interface{}, form url.Values) error {
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	var violations []apperrors.FieldViolation
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		key := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if key == "" || key == "-" {
			continue
		}
		val := form.Get(key)
		if strings.TrimSpace(val) == "" {
			continue
		}

		ft := fld.Type
		for ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		var err error
		switch ft.Kind() {
		case reflect.Float32, reflect.Float64:
			_, err = strconv.ParseFloat(val, ft.Bits())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			_, err = strconv.ParseInt(val, 10, ft.Bits())
		default:
			continue
		}
		if err != nil {
			violations = append(violations, apperrors.FieldViolation{
				Field:   key,
				Message: fmt.Sprintf("%q must be a %s", key, jsonKind(fld.Type)),
			})
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return &apperrors.ValidationError{Violations: violations}
}

func jsonKind(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	default:
		return t.Kind().String()
	}
}
