package mocks

import (
	"context"
	"iter"

	"github.com/google/uuid"
	"github.com/metinatakli/movies-api/internal/domain"
)

type MockMovieService struct {
	domain.MovieService
	CreateFunc     func(ctx context.Context, movie domain.Movie) (domain.Result, error)
	GetByIdFunc    func(ctx context.Context, id uuid.UUID) (domain.Movie, bool, error)
	GetAllFunc     func(ctx context.Context) iter.Seq2[domain.Movie, error]
	UpdateFunc     func(ctx context.Context, movie domain.Movie) (domain.Result, error)
	DeleteByIdFunc func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *MockMovieService) Create(ctx context.Context, movie domain.Movie) (domain.Result, error) {
	return m.CreateFunc(ctx, movie)
}

func (m *MockMovieService) GetById(ctx context.Context, id uuid.UUID) (domain.Movie, bool, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieService) GetAll(ctx context.Context) iter.Seq2[domain.Movie, error] {
	return m.GetAllFunc(ctx)
}

func (m *MockMovieService) Update(ctx context.Context, movie domain.Movie) (domain.Result, error) {
	return m.UpdateFunc(ctx, movie)
}

func (m *MockMovieService) DeleteById(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.DeleteByIdFunc(ctx, id)
}

// MovieSeq builds a sequence that yields the given movies and then err, if
// err is not nil.
func MovieSeq(movies []domain.Movie, err error) iter.Seq2[domain.Movie, error] {
	return func(yield func(domain.Movie, error) bool) {
		for _, movie := range movies {
			if !yield(movie, nil) {
				return
			}
		}

		if err != nil {
			yield(domain.Movie{}, err)
		}
	}
}
