package service

import (
	"context"
	"errors"
	"iter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/metinatakli/movies-api/internal/database"
	"github.com/metinatakli/movies-api/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const (
	insertMovieQuery = `INSERT INTO movies (id, title, "yearOfRelease")
		VALUES (@id, @title, @yearOfRelease)`

	selectMovieByIdQuery = `SELECT id, title, "yearOfRelease"
		FROM movies
		WHERE id = @id
		LIMIT 1`

	selectMoviesQuery = `SELECT id, title, "yearOfRelease" FROM movies`

	updateMovieQuery = `UPDATE movies
		SET title = @title, "yearOfRelease" = @yearOfRelease
		WHERE id = @id`

	deleteMovieQuery = `DELETE FROM movies WHERE id = @id`
)

const (
	instrumentationName = "github.com/metinatakli/movies-api/internal/service"

	operationsMetric = "movies.operations"
	outcomeError     = "error"
)

var tracer = otel.Tracer(instrumentationName)

// MovieService validates and persists movies. Every operation acquires its
// own connection and releases it before returning.
type MovieService struct {
	validator   domain.MovieValidator
	connections database.ConnectionFactory
	operations  metric.Int64Counter
}

// NewMovieService takes its meter from the global provider at construction
// time, so telemetry must be initialized first for operations to be exported.
func NewMovieService(validator domain.MovieValidator, connections database.ConnectionFactory) *MovieService {
	operations, err := otel.Meter(instrumentationName).Int64Counter(operationsMetric,
		metric.WithDescription("Movie operations handled, by operation and outcome"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		otel.Handle(err)
		operations = noop.Int64Counter{}
	}

	return &MovieService{
		validator:   validator,
		connections: connections,
		operations:  operations,
	}
}

func (s *MovieService) Create(ctx context.Context, movie domain.Movie) (result domain.Result, err error) {
	ctx, span := tracer.Start(ctx, "MovieService.Create", movieAttributes(movie.ID))
	defer span.End()
	defer func() { s.count(ctx, "create", resultOutcome(result, err)) }()

	errs := s.validator.Validate(movie)
	if len(errs) > 0 {
		return domain.ValidationFailed(errs), nil
	}

	conn, err := s.connections.CreateConnection(ctx)
	if err != nil {
		return domain.Result{}, recordError(span, err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, insertMovieQuery, movieArgs(movie))
	if err != nil {
		return domain.Result{}, recordError(span, err)
	}

	return domain.Success(movie), nil
}

// GetById reports false when no movie has the given id.
func (s *MovieService) GetById(ctx context.Context, id uuid.UUID) (domain.Movie, bool, error) {
	movie, found, err := s.findById(ctx, id)
	s.count(ctx, "get", lookupOutcome(found, err))

	return movie, found, err
}

func (s *MovieService) findById(ctx context.Context, id uuid.UUID) (domain.Movie, bool, error) {
	ctx, span := tracer.Start(ctx, "MovieService.GetById", movieAttributes(id))
	defer span.End()

	conn, err := s.connections.CreateConnection(ctx)
	if err != nil {
		return domain.Movie{}, false, recordError(span, err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, selectMovieByIdQuery, pgx.NamedArgs{"id": id})
	if err != nil {
		return domain.Movie{}, false, recordError(span, err)
	}

	movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Movie])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Movie{}, false, nil
		}

		return domain.Movie{}, false, recordError(span, err)
	}

	return movie, true, nil
}

// GetAll streams every stored movie in no particular order. The connection
// is held only while the sequence is being iterated. A storage error is
// yielded once and ends the sequence.
func (s *MovieService) GetAll(ctx context.Context) iter.Seq2[domain.Movie, error] {
	return func(yield func(domain.Movie, error) bool) {
		ctx, span := tracer.Start(ctx, "MovieService.GetAll")
		defer span.End()

		var failed error
		defer func() { s.count(ctx, "list", lookupOutcome(true, failed)) }()

		conn, err := s.connections.CreateConnection(ctx)
		if err != nil {
			failed = recordError(span, err)
			yield(domain.Movie{}, failed)
			return
		}
		defer conn.Release()

		rows, err := conn.Query(ctx, selectMoviesQuery)
		if err != nil {
			failed = recordError(span, err)
			yield(domain.Movie{}, failed)
			return
		}
		defer rows.Close()

		for rows.Next() {
			movie, err := pgx.RowToStructByName[domain.Movie](rows)
			if err != nil {
				failed = recordError(span, err)
				yield(domain.Movie{}, failed)
				return
			}

			if !yield(movie, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			failed = recordError(span, err)
			yield(domain.Movie{}, failed)
		}
	}
}

// Update validates the movie before checking that it exists, so invalid
// input never reaches the database.
func (s *MovieService) Update(ctx context.Context, movie domain.Movie) (result domain.Result, err error) {
	ctx, span := tracer.Start(ctx, "MovieService.Update", movieAttributes(movie.ID))
	defer span.End()
	defer func() { s.count(ctx, "update", resultOutcome(result, err)) }()

	errs := s.validator.Validate(movie)
	if len(errs) > 0 {
		return domain.ValidationFailed(errs), nil
	}

	_, found, err := s.findById(ctx, movie.ID)
	if err != nil {
		return domain.Result{}, err
	}

	if !found {
		return domain.NotFound(), nil
	}

	conn, err := s.connections.CreateConnection(ctx)
	if err != nil {
		return domain.Result{}, recordError(span, err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, updateMovieQuery, movieArgs(movie))
	if err != nil {
		return domain.Result{}, recordError(span, err)
	}

	return domain.Success(movie), nil
}

// DeleteById reports whether a row was actually removed.
func (s *MovieService) DeleteById(ctx context.Context, id uuid.UUID) (deleted bool, err error) {
	ctx, span := tracer.Start(ctx, "MovieService.DeleteById", movieAttributes(id))
	defer span.End()
	defer func() { s.count(ctx, "delete", lookupOutcome(deleted, err)) }()

	conn, err := s.connections.CreateConnection(ctx)
	if err != nil {
		return false, recordError(span, err)
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, deleteMovieQuery, pgx.NamedArgs{"id": id})
	if err != nil {
		return false, recordError(span, err)
	}

	return tag.RowsAffected() > 0, nil
}

func movieArgs(movie domain.Movie) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":            movie.ID,
		"title":         movie.Title,
		"yearOfRelease": movie.YearOfRelease,
	}
}

func movieAttributes(id uuid.UUID) trace.SpanStartOption {
	return trace.WithAttributes(attribute.String("movie.id", id.String()))
}

func (s *MovieService) count(ctx context.Context, operation, outcome string) {
	s.operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("movie.operation", operation),
		attribute.String("movie.outcome", outcome),
	))
}

func resultOutcome(result domain.Result, err error) string {
	if err != nil {
		return outcomeError
	}

	return result.Outcome.String()
}

func lookupOutcome(found bool, err error) string {
	switch {
	case err != nil:
		return outcomeError
	case !found:
		return domain.OutcomeNotFound.String()
	default:
		return domain.OutcomeSuccess.String()
	}
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}
