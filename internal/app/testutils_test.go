package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/metinatakli/movies-api/api"
	"github.com/metinatakli/movies-api/internal/config"
	"github.com/metinatakli/movies-api/internal/handler"
	"github.com/metinatakli/movies-api/internal/mocks"
)

var fixedID = uuid.MustParse("8c9b3d4e-51f2-4c43-9a3c-2d9f1d6a7b10")

func newTestApplication(opts ...func(*Application)) *Application {
	cfg := config.Config{Env: "test"}

	app := &Application{
		config:       cfg,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		movieService: &mocks.MockMovieService{},
		healthcheck:  handler.NewHealthcheckHandler(cfg, nil),
		newID:        func() uuid.UUID { return fixedID },
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader = http.NoBody

	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		jsonData, err := json.Marshal(b)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	var errorResp api.ValidationErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if errorResp.Timestamp.IsZero() {
		t.Error("Error response timestamp is not set")
	}

	if errorResp.Message == ErrFailedValidation {
		if errorResp.ValidationErrors == nil {
			t.Fatal("Validation error response has no validationErrors")
		}

		errorSet := make(map[string]bool)
		for _, vErr := range *errorResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

		return
	}

	if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
		t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
	}
}
