package health

import (
	"context"
	"net/http"
	"time"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/api/handlers"
)

const (
	statusOK       = "ok"
	statusDegraded = "unavailable"

	pingTimeout = 2 * time.Second
)

// Pinger проверка доступности хранилища
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Warn(format string, v ...interface{})
}

type Response struct {
	Status string `json:"status"`
}

type Handler struct {
	db     Pinger
	logger Logger
}

func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

// Handle GET /healthz
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("GET /healthz - Storage ping failed: %v", err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, Response{Status: statusDegraded})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Status: statusOK})
}
