package get_rack

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RackService/internal/api/handlers"
	"github.com/m04kA/SMC-RackService/internal/service/snapshot"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgHotelNotFound = "отель не найден"
)

type Handler struct {
	service SnapshotService
	logger  Logger
}

func NewHandler(service SnapshotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/rack
// Query params: from, to (YYYY-MM-DD, включительно), includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID := mux.Vars(r)["hotelId"]
	query := r.URL.Query()

	q, err := ParseQuery(query.Get("from"), query.Get("to"), query.Get("includeInactive"))
	if err != nil {
		h.logger.Warn("GET /rack - Invalid parameters: hotel_id=%s, error=%v", hotelID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	snap, err := h.service.ForPeriod(r.Context(), hotelID, q.From, q.To)
	if err != nil {
		switch {
		case errors.Is(err, snapshot.ErrHotelNotFound):
			h.logger.Warn("GET /rack - Hotel not found: hotel_id=%s", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		default:
			h.logger.Error("GET /rack - Failed to get rack: hotel_id=%s, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	result := FromSnapshot(hotelID, q, snap)
	h.logger.Info("GET /rack - Rack retrieved successfully: hotel_id=%s, rooms=%d, reservations=%d",
		hotelID, len(result.Rooms), len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
