package resolve_move

import (
	"github.com/m04kA/SMC-RackService/internal/api/handlers"
	resolveMove "github.com/m04kA/SMC-RackService/internal/usecase/resolve_move"
)

// ResolveMoveRequest выбор пользователя
type ResolveMoveRequest struct {
	Choice string `json:"choice"` // swap, relocate, cancel
}

type ResolveMoveResponse struct {
	Status      string                        `json:"status"`
	Resolution  string                        `json:"resolution"`
	Assignments []handlers.AssignmentResponse `json:"assignments"`
}

// NoVacantRoomDetails бронирования, которым не нашлось свободной комнаты
type NoVacantRoomDetails struct {
	UnplacedReservationIDs []string `json:"unplacedReservationIds"`
}

func (r *ResolveMoveRequest) ToUseCaseRequest(hotelID, moveID string) *resolveMove.Request {
	return &resolveMove.Request{
		HotelID: hotelID,
		MoveID:  moveID,
		Choice:  r.Choice,
	}
}

func FromUseCaseResponse(resp *resolveMove.Response) *ResolveMoveResponse {
	return &ResolveMoveResponse{
		Status:      string(resp.Status),
		Resolution:  string(resp.Resolution),
		Assignments: handlers.FromDomainAssignments(resp.Assignments),
	}
}
