package propose_move

import (
	"github.com/m04kA/SMC-RackService/internal/api/handlers"
	proposeMove "github.com/m04kA/SMC-RackService/internal/usecase/propose_move"
)

// ProposeMoveRequest тело запроса drag-and-drop переноса
type ProposeMoveRequest struct {
	ReservationID string `json:"reservationId"`
	TargetRoomID  string `json:"targetRoomId"`
}

// ProposeMoveResponse ответ: перенос применен или ждет выбора
type ProposeMoveResponse struct {
	Status        string                        `json:"status"`
	MoveID        string                        `json:"moveId,omitempty"`
	Conflict      *handlers.ConflictResponse    `json:"conflict,omitempty"`
	Options       []string                      `json:"options,omitempty"`
	SwapAvailable bool                          `json:"swapAvailable"`
	Assignments   []handlers.AssignmentResponse `json:"assignments"`
}

func (r *ProposeMoveRequest) ToUseCaseRequest(hotelID string) *proposeMove.Request {
	return &proposeMove.Request{
		HotelID:       hotelID,
		ReservationID: r.ReservationID,
		TargetRoomID:  r.TargetRoomID,
	}
}

func FromUseCaseResponse(resp *proposeMove.Response) *ProposeMoveResponse {
	result := &ProposeMoveResponse{
		Status:        string(resp.Status),
		MoveID:        resp.MoveID,
		Conflict:      handlers.FromDomainConflict(resp.Conflict),
		SwapAvailable: resp.SwapAvailable,
		Assignments:   handlers.FromDomainAssignments(resp.Assignments),
	}
	if resp.Status == proposeMove.StatusConflict {
		result.Options = handlers.FromDomainResolutions(resp.Options)
	}
	return result
}
