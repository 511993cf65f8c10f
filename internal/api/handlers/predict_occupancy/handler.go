package predict_occupancy

import (
	"errors"
	"net/http"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/api/handlers"
	predictOccupancy "github.com/strix8755/LodgeEaseApp-sub000/internal/usecase/predict_occupancy"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD или RFC3339"
	msgInvalidInput    = "некорректная дата отсчета"
	msgDataUnavailable = "данные о бронированиях временно недоступны"
)

type Handler struct {
	useCase PredictOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase PredictOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/forecast/occupancy
// Query params: date (optional, YYYY-MM-DD или RFC3339) - дата отсчета, по умолчанию сегодня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(dateStr)
	if err != nil {
		h.logger.Warn("GET /forecast/occupancy - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, predictOccupancy.ErrInvalidInput):
			h.logger.Warn("GET /forecast/occupancy - Invalid input: date=%q, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, predictOccupancy.ErrDataUnavailable):
			h.logger.Error("GET /forecast/occupancy - Data unavailable: date=%q, error=%v", dateStr, err)
			handlers.RespondServiceUnavailable(w, msgDataUnavailable)

		default:
			h.logger.Error("GET /forecast/occupancy - Failed to compute forecast: date=%q, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /forecast/occupancy - Forecast computed: target=%s, predicted=%.2f, confidence=%.2f",
		result.TargetPeriod, result.PredictedRate, result.Confidence)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
