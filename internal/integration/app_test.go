package integration_test

import (
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movies-api/internal/app"
	"github.com/metinatakli/movies-api/internal/config"
	"github.com/metinatakli/movies-api/internal/database"
	"github.com/metinatakli/movies-api/internal/service"
	"github.com/metinatakli/movies-api/internal/validator"
)

type TestApp struct {
	App     *app.Application
	DB      *pgxpool.Pool
	Service *service.MovieService
}

func newTestApp(cfg config.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := database.NewPool(cfg.DB)
	if err != nil {
		return nil, err
	}

	years := validator.YearRange{
		Min: cfg.Movies.MinYearOfRelease,
		Max: cfg.Movies.MaxYearOfRelease,
	}

	movieService := service.NewMovieService(
		validator.NewMovieValidator(years),
		database.NewPoolConnectionFactory(db),
	)

	return &TestApp{
		App:     app.NewApp(cfg, logger, db, movieService),
		DB:      db,
		Service: movieService,
	}, nil
}
