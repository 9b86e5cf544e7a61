package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/movies-api/api"
	"github.com/metinatakli/movies-api/internal/domain"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie := domain.Movie{
		ID:            app.newID(),
		Title:         input.Title,
		YearOfRelease: input.YearOfRelease,
	}

	result, err := app.movieService.Create(r.Context(), movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if result.Outcome == domain.OutcomeValidationFailed {
		app.failedValidationResponse(w, r, result.Errors)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/movies/%s", result.Movie.ID))

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(result.Movie), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	movie, found, err := app.movieService.GetById(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !found {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetMovies drains the movie sequence before writing anything, so a storage
// error midway still produces a clean 500.
func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	items := make([]api.MovieResponse, 0)

	for movie, err := range app.movieService.GetAll(r.Context()) {
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		items = append(items, toMovieResponse(movie))
	}

	err := app.writeJSON(w, http.StatusOK, api.MoviesResponse{Items: items}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	var input api.UpdateMovieJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie := domain.Movie{
		ID:            id,
		Title:         input.Title,
		YearOfRelease: input.YearOfRelease,
	}

	result, err := app.movieService.Update(r.Context(), movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	switch result.Outcome {
	case domain.OutcomeValidationFailed:
		app.failedValidationResponse(w, r, result.Errors)
	case domain.OutcomeNotFound:
		app.notFoundResponse(w, r)
	default:
		err = app.writeJSON(w, http.StatusOK, toMovieResponse(result.Movie), nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	deleted, err := app.movieService.DeleteById(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !deleted {
		app.notFoundResponse(w, r)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toMovieResponse(movie domain.Movie) api.MovieResponse {
	return api.MovieResponse{
		Id:            movie.ID,
		Title:         movie.Title,
		YearOfRelease: movie.YearOfRelease,
	}
}
