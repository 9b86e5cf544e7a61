package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/metinatakli/movies-api/api"
	"github.com/metinatakli/movies-api/internal/config"
	"github.com/metinatakli/movies-api/internal/jsonutil"
	"github.com/metinatakli/movies-api/internal/vcs"
)

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"

	pingTimeout = 2 * time.Second
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthcheckHandler struct {
	cfg config.Config
	db  Pinger
}

func NewHealthcheckHandler(cfg config.Config, db Pinger) *HealthcheckHandler {
	return &HealthcheckHandler{
		cfg: cfg,
		db:  db,
	}
}

func (h *HealthcheckHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := StatusUp
	code := http.StatusOK

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		status = StatusDown
		code = http.StatusServiceUnavailable
	}

	resp := api.HealthcheckResponse{
		Status: status,
		SystemInfo: api.SystemInfo{
			Version:     vcs.Version(),
			Environment: h.cfg.Env,
		},
	}

	jsonutil.WriteJSON(w, code, resp, nil)
}
