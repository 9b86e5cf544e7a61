package integration_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movies-api/internal/domain"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := []cmp.Option{
		cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
			_, ok := keysToIgnore[k]
			return ok
		}),
		cmpopts.SortSlices(func(a, b any) bool {
			return sortKey(a) < sortKey(b)
		}),
	}

	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

// sortKey orders movie items by id so listings compare regardless of the
// order the database returned them in.
func sortKey(v any) string {
	m, ok := v.(map[string]any)
	if !ok {
		return ""
	}

	id, _ := m["id"].(string)
	return id
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func truncateMovies(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), "TRUNCATE movies")
	require.NoError(t, err)
}

func insertTestMovie(t testing.TB, db *pgxpool.Pool, movie domain.Movie) {
	_, err := db.Exec(context.Background(),
		`INSERT INTO movies (id, title, "yearOfRelease") VALUES (@id, @title, @yearOfRelease)`,
		pgx.NamedArgs{"id": movie.ID, "title": movie.Title, "yearOfRelease": movie.YearOfRelease},
	)
	require.NoError(t, err)
}

func selectTestMovie(t testing.TB, db *pgxpool.Pool, id uuid.UUID) (domain.Movie, bool) {
	rows, err := db.Query(context.Background(),
		`SELECT id, title, "yearOfRelease" FROM movies WHERE id = $1`, id)
	require.NoError(t, err)

	movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Movie])
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Movie{}, false
	}
	require.NoError(t, err)

	return movie, true
}

func countMovies(t testing.TB, db *pgxpool.Pool) int {
	var count int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM movies").Scan(&count)
	require.NoError(t, err)

	return count
}

var (
	inceptionID = uuid.MustParse("8c9b3d4e-51f2-4c43-9a3c-2d9f1d6a7b10")
	alienID     = uuid.MustParse("1f0e2d3c-4b5a-4968-8776-655443322110")
)

func inception() domain.Movie {
	return domain.Movie{ID: inceptionID, Title: "Inception", YearOfRelease: 2010}
}

func alien() domain.Movie {
	return domain.Movie{ID: alienID, Title: "Alien", YearOfRelease: 1979}
}
