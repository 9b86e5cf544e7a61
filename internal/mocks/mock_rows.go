package mocks

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/metinatakli/movies-api/internal/domain"
)

// MovieRows is an in-memory pgx.Rows over movies, shaped like the result of
// SELECT id, title, "yearOfRelease" FROM movies.
type MovieRows struct {
	Movies []domain.Movie
	Error  error

	pos    int
	closed bool
}

func (r *MovieRows) Close() {
	r.closed = true
}

func (r *MovieRows) Closed() bool {
	return r.closed
}

func (r *MovieRows) Err() error {
	return r.Error
}

func (r *MovieRows) CommandTag() pgconn.CommandTag {
	return pgconn.NewCommandTag(fmt.Sprintf("SELECT %d", len(r.Movies)))
}

func (r *MovieRows) FieldDescriptions() []pgconn.FieldDescription {
	return []pgconn.FieldDescription{
		{Name: "id"},
		{Name: "title"},
		{Name: "yearOfRelease"},
	}
}

func (r *MovieRows) Next() bool {
	if r.closed || r.pos >= len(r.Movies) {
		r.closed = true
		return false
	}

	r.pos++
	return true
}

func (r *MovieRows) Scan(dest ...any) error {
	if len(dest) != 3 {
		return fmt.Errorf("expected 3 scan targets, got %d", len(dest))
	}

	movie := r.Movies[r.pos-1]

	id, ok := dest[0].(*uuid.UUID)
	if !ok {
		return fmt.Errorf("unexpected id target %T", dest[0])
	}
	title, ok := dest[1].(*string)
	if !ok {
		return fmt.Errorf("unexpected title target %T", dest[1])
	}
	year, ok := dest[2].(*int)
	if !ok {
		return fmt.Errorf("unexpected yearOfRelease target %T", dest[2])
	}

	*id = movie.ID
	*title = movie.Title
	*year = movie.YearOfRelease

	return nil
}

func (r *MovieRows) Values() ([]any, error) {
	movie := r.Movies[r.pos-1]
	return []any{movie.ID, movie.Title, movie.YearOfRelease}, nil
}

func (r *MovieRows) RawValues() [][]byte {
	return nil
}

func (r *MovieRows) Conn() *pgx.Conn {
	return nil
}
