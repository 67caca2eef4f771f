package resolve_move

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RackService/internal/api/handlers"
	"github.com/m04kA/SMC-RackService/internal/rack"
	resolveMove "github.com/m04kA/SMC-RackService/internal/usecase/resolve_move"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgUnknownChoice        = "вариант разрешения должен быть swap, relocate или cancel"
	msgInvalidInput         = "перенос больше невозможен: бронирование или комната отсутствуют"
	msgMoveNotFound         = "перенос не найден или истек"
	msgResolutionInProgress = "перенос уже обрабатывается"
	msgNoVacantRoom         = "нет свободных комнат для переселения"
	msgSwapNotAvailable     = "обмен комнатами недоступен для этого конфликта"
	msgStaleSnapshot        = "шахматка изменилась, выберите вариант снова"
)

type Handler struct {
	useCase ResolveMoveUseCase
	logger  Logger
}

func NewHandler(useCase ResolveMoveUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/hotels/{hotelId}/rack/moves/{moveId}/resolve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hotelID, moveID := vars["hotelId"], vars["moveId"]

	var req ResolveMoveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rack/moves/{id}/resolve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(hotelID, moveID))
	if err != nil {
		var noRoom *rack.NoVacantRoomError
		switch {
		case errors.Is(err, resolveMove.ErrUnknownChoice):
			h.logger.Warn("POST /rack/moves/{id}/resolve - Unknown choice: %q", req.Choice)
			handlers.RespondBadRequest(w, msgUnknownChoice)

		case errors.Is(err, resolveMove.ErrInvalidInput):
			h.logger.Warn("POST /rack/moves/{id}/resolve - Invalid input: move_id=%s, error=%v", moveID, err)
			handlers.RespondUnprocessable(w, msgInvalidInput)

		case errors.Is(err, resolveMove.ErrMoveNotFound):
			h.logger.Warn("POST /rack/moves/{id}/resolve - Move not found: move_id=%s", moveID)
			handlers.RespondNotFound(w, msgMoveNotFound)

		case errors.Is(err, resolveMove.ErrResolutionInProgress):
			h.logger.Warn("POST /rack/moves/{id}/resolve - Resolution in progress: move_id=%s", moveID)
			handlers.RespondConflict(w, msgResolutionInProgress)

		case errors.As(err, &noRoom):
			h.logger.Warn("POST /rack/moves/{id}/resolve - No vacant room: move_id=%s, reservations=%v",
				moveID, noRoom.ReservationIDs)
			handlers.RespondErrorWithDetails(w, http.StatusConflict, msgNoVacantRoom,
				NoVacantRoomDetails{UnplacedReservationIDs: noRoom.ReservationIDs})

		case errors.Is(err, resolveMove.ErrSwapNotAvailable):
			h.logger.Warn("POST /rack/moves/{id}/resolve - Swap not available: move_id=%s", moveID)
			handlers.RespondConflict(w, msgSwapNotAvailable)

		case errors.Is(err, resolveMove.ErrStaleSnapshot):
			h.logger.Warn("POST /rack/moves/{id}/resolve - Stale snapshot: move_id=%s", moveID)
			handlers.RespondConflict(w, msgStaleSnapshot)

		default:
			h.logger.Error("POST /rack/moves/{id}/resolve - Failed to resolve move: move_id=%s, error=%v", moveID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rack/moves/{id}/resolve - Move resolved: move_id=%s, choice=%s, status=%s",
		moveID, result.Resolution, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
