package get_occupancy_trends

import (
	"errors"
	"net/http"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/api/handlers"
	getOccupancyTrends "github.com/strix8755/LodgeEaseApp-sub000/internal/usecase/get_occupancy_trends"
)

const (
	msgInvalidParams   = "некорректные параметры запроса: date (YYYY-MM-DD), months (число)"
	msgInvalidInput    = "некорректная дата отсчета или длина окна"
	msgDataUnavailable = "данные о бронированиях временно недоступны"
)

type Handler struct {
	useCase GetOccupancyTrendsUseCase
	logger  Logger
}

func NewHandler(useCase GetOccupancyTrendsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/analytics/occupancy-trends
// Query params: date (optional, YYYY-MM-DD), months (optional, 1..36, default 12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	dateStr := query.Get("date")
	monthsStr := query.Get("months")

	useCaseReq, err := ToUseCaseRequest(dateStr, monthsStr)
	if err != nil {
		h.logger.Warn("GET /analytics/occupancy-trends - Invalid query params: date=%q, months=%q, error=%v", dateStr, monthsStr, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getOccupancyTrends.ErrInvalidInput):
			h.logger.Warn("GET /analytics/occupancy-trends - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getOccupancyTrends.ErrDataUnavailable):
			h.logger.Error("GET /analytics/occupancy-trends - Data unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgDataUnavailable)

		default:
			h.logger.Error("GET /analytics/occupancy-trends - Failed to build trends: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /analytics/occupancy-trends - Trends built: %s..%s", resp.From, resp.To)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
