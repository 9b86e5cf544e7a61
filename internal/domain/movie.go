package domain

import (
	"context"
	"iter"

	"github.com/google/uuid"
)

type Movie struct {
	ID            uuid.UUID `db:"id"`
	Title         string    `db:"title" validate:"notblank"`
	YearOfRelease int       `db:"yearOfRelease" validate:"year_of_release"`
}

// FieldError describes a single rule a movie field failed.
type FieldError struct {
	Field   string
	Message string
}

type ValidationErrors []FieldError

type MovieValidator interface {
	Validate(movie Movie) ValidationErrors
}

type MovieService interface {
	Create(ctx context.Context, movie Movie) (Result, error)
	GetById(ctx context.Context, id uuid.UUID) (Movie, bool, error)
	GetAll(ctx context.Context) iter.Seq2[Movie, error]
	Update(ctx context.Context, movie Movie) (Result, error)
	DeleteById(ctx context.Context, id uuid.UUID) (bool, error)
}
