package get_move

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RackService/internal/api/handlers"
	getMove "github.com/m04kA/SMC-RackService/internal/usecase/get_move"
)

const (
	msgInvalidMoveID = "некорректный ID переноса"
	msgMoveNotFound  = "перенос не найден или истек"
)

type Handler struct {
	useCase GetMoveUseCase
	logger  Logger
}

func NewHandler(useCase GetMoveUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/rack/moves/{moveId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hotelID, moveID := vars["hotelId"], vars["moveId"]

	result, err := h.useCase.Execute(r.Context(), &getMove.Request{HotelID: hotelID, MoveID: moveID})
	if err != nil {
		switch {
		case errors.Is(err, getMove.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidMoveID)

		case errors.Is(err, getMove.ErrMoveNotFound):
			h.logger.Warn("GET /rack/moves/{id} - Move not found: hotel_id=%s, move_id=%s", hotelID, moveID)
			handlers.RespondNotFound(w, msgMoveNotFound)

		default:
			h.logger.Error("GET /rack/moves/{id} - Failed to get move: move_id=%s, error=%v", moveID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
