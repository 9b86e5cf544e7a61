package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/metinatakli/movies-api/api"
	"github.com/metinatakli/movies-api/internal/config"
	"github.com/metinatakli/movies-api/internal/database"
	"github.com/metinatakli/movies-api/internal/domain"
	"github.com/metinatakli/movies-api/internal/handler"
	appmiddleware "github.com/metinatakli/movies-api/internal/middleware"
	"github.com/metinatakli/movies-api/internal/service"
	"github.com/metinatakli/movies-api/internal/validator"
	"github.com/metinatakli/movies-api/internal/vcs"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "movies-api"

var (
	version = vcs.Version()

	_ api.ServerInterface = (*Application)(nil)
)

type Application struct {
	config       config.Config
	logger       *slog.Logger
	movieService domain.MovieService
	healthcheck  *handler.HealthcheckHandler
	newID        func() uuid.UUID
}

func NewApp(cfg config.Config, logger *slog.Logger, db handler.Pinger, movieService domain.MovieService) *Application {
	return &Application{
		config:       cfg,
		logger:       logger,
		movieService: movieService,
		healthcheck:  handler.NewHealthcheckHandler(cfg, db),
		newID:        uuid.New,
	}
}

// Run loads configuration from args, connects to the database and serves
// HTTP until the process receives SIGINT or SIGTERM.
func Run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	if cfg.DisplayVersion {
		fmt.Printf("Version:\t%s\n", version)
		return nil
	}

	logger := slog.New(NewMultiHandler(
		slog.NewTextHandler(os.Stdout, nil),
		otelslog.NewHandler(serviceName),
	))

	app := &Application{config: cfg, logger: logger}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	db, err := database.NewPool(cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	years := validator.YearRange{
		Min: cfg.Movies.MinYearOfRelease,
		Max: cfg.Movies.MaxYearOfRelease,
	}

	movieService := service.NewMovieService(
		validator.NewMovieValidator(years),
		database.NewPoolConnectionFactory(db),
	)

	return NewApp(cfg, logger, db, movieService).run()
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(appmiddleware.NotFoundHandler)
	r.MethodNotAllowed(appmiddleware.MethodNotAllowedHandler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)

	if app.config.Limiter.Enabled {
		r.Use(appmiddleware.RateLimit(app.config.Limiter.RPS, app.config.Limiter.Burst))
	}

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))

	if app.config.Env == "dev" {
		r.Get("/swagger/openapi.json", app.GetOpenAPISpec)
	}

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: app.paramErrorResponse,
	})
}

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	app.healthcheck.GetHealth(w, r)
}
