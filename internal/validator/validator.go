package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movies-api/internal/domain"
)

// DefaultMinYearOfRelease is the year of the earliest surviving motion picture.
const DefaultMinYearOfRelease = 1888

const (
	ErrNotBlank      = "must not be blank"
	ErrYearOfRelease = "must be between %d and %d"
	ErrInvalid       = "is invalid"
)

// YearRange bounds the accepted release years, inclusive. A zero Max means
// the current calendar year.
type YearRange struct {
	Min int
	Max int
}

func DefaultYearRange() YearRange {
	return YearRange{Min: DefaultMinYearOfRelease}
}

func (y YearRange) Bounds() (int, int) {
	max := y.Max
	if max == 0 {
		max = time.Now().Year()
	}

	return y.Min, max
}

func (y YearRange) Contains(year int) bool {
	min, max := y.Bounds()

	return year >= min && year <= max
}

func NewValidator(years YearRange) *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("notblank", validateNotBlank)
	validator.RegisterValidation("year_of_release", validateYearOfRelease(years))

	return validator
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateYearOfRelease(years YearRange) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return years.Contains(int(fl.Field().Int()))
	}
}

type MovieValidator struct {
	validate *validator.Validate
	years    YearRange
}

func NewMovieValidator(years YearRange) *MovieValidator {
	return &MovieValidator{
		validate: NewValidator(years),
		years:    years,
	}
}

// Validate checks the movie against its field rules. Errors are returned in
// field declaration order; a nil result means the movie is valid.
func (v *MovieValidator) Validate(movie domain.Movie) domain.ValidationErrors {
	err := v.validate.Struct(movie)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return domain.ValidationErrors{{Message: err.Error()}}
	}

	errs := make(domain.ValidationErrors, len(fieldErrors))
	for i, fe := range fieldErrors {
		errs[i] = domain.FieldError{
			Field:   fe.Field(),
			Message: v.ValidationMessage(fe),
		}
	}

	return errs
}

// ValidationMessage converts validator errors into readable messages
func (v *MovieValidator) ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "notblank":
		return ErrNotBlank
	case "year_of_release":
		min, max := v.years.Bounds()
		return fmt.Sprintf(ErrYearOfRelease, min, max)
	default:
		return ErrInvalid
	}
}
