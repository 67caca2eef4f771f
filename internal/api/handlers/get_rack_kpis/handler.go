package get_rack_kpis

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RackService/internal/api/handlers"
	getRackKPIs "github.com/m04kA/SMC-RackService/internal/usecase/get_rack_kpis"
)

const (
	msgInvalidDateRange = "некорректный период, ожидаются from и to в формате YYYY-MM-DD, from <= to"
	msgRangeTooLong     = "слишком длинный период"
	msgHotelNotFound    = "отель не найден"
)

type Handler struct {
	useCase GetRackKPIsUseCase
	logger  Logger
}

func NewHandler(useCase GetRackKPIsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/rack/kpis?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID := mux.Vars(r)["hotelId"]
	query := r.URL.Query()

	result, err := h.useCase.Execute(r.Context(), &getRackKPIs.Request{
		HotelID: hotelID,
		From:    query.Get("from"),
		To:      query.Get("to"),
	})
	if err != nil {
		RespondKPIError(w, h.logger, "GET /rack/kpis", hotelID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// RespondKPIError отвечает на ошибку расчета показателей; используется и выгрузкой
func RespondKPIError(w http.ResponseWriter, logger Logger, route, hotelID string, err error) {
	switch {
	case errors.Is(err, getRackKPIs.ErrInvalidInput), errors.Is(err, getRackKPIs.ErrInvalidDateRange):
		logger.Warn("%s - Invalid date range: hotel_id=%s, error=%v", route, hotelID, err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)

	case errors.Is(err, getRackKPIs.ErrRangeTooLong):
		logger.Warn("%s - Range too long: hotel_id=%s, error=%v", route, hotelID, err)
		handlers.RespondBadRequest(w, msgRangeTooLong)

	case errors.Is(err, getRackKPIs.ErrHotelNotFound):
		logger.Warn("%s - Hotel not found: hotel_id=%s", route, hotelID)
		handlers.RespondNotFound(w, msgHotelNotFound)

	default:
		logger.Error("%s - Failed to compute KPIs: hotel_id=%s, error=%v", route, hotelID, err)
		handlers.RespondInternalError(w)
	}
}
