package propose_move

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RackService/internal/api/handlers"
	proposeMove "github.com/m04kA/SMC-RackService/internal/usecase/propose_move"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "бронирование или комната не найдены в шахматке отеля"
	msgHotelNotFound      = "отель не найден"
	msgMoveInProgress     = "бронирование или комната уже участвуют в незавершенном переносе"
	msgStaleSnapshot      = "шахматка изменилась, повторите перенос"
)

type Handler struct {
	useCase ProposeMoveUseCase
	logger  Logger
}

func NewHandler(useCase ProposeMoveUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/hotels/{hotelId}/rack/moves
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID := mux.Vars(r)["hotelId"]

	var req ProposeMoveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rack/moves - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(hotelID))
	if err != nil {
		switch {
		case errors.Is(err, proposeMove.ErrInvalidInput):
			h.logger.Warn("POST /rack/moves - Invalid input: hotel_id=%s, error=%v", hotelID, err)
			handlers.RespondUnprocessable(w, msgInvalidInput)

		case errors.Is(err, proposeMove.ErrHotelNotFound):
			h.logger.Warn("POST /rack/moves - Hotel not found: hotel_id=%s", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, proposeMove.ErrMoveInProgress):
			h.logger.Warn("POST /rack/moves - Move in progress: reservation_id=%s, room_id=%s",
				req.ReservationID, req.TargetRoomID)
			handlers.RespondConflict(w, msgMoveInProgress)

		case errors.Is(err, proposeMove.ErrStaleSnapshot):
			h.logger.Warn("POST /rack/moves - Stale snapshot: reservation_id=%s", req.ReservationID)
			handlers.RespondConflict(w, msgStaleSnapshot)

		default:
			h.logger.Error("POST /rack/moves - Failed to propose move: hotel_id=%s, reservation_id=%s, error=%v",
				hotelID, req.ReservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rack/moves - Move proposed: hotel_id=%s, reservation_id=%s, status=%s",
		hotelID, req.ReservationID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
