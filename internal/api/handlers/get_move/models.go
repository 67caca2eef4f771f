package get_move

import (
	"time"

	"github.com/m04kA/SMC-RackService/internal/api/handlers"
	getMove "github.com/m04kA/SMC-RackService/internal/usecase/get_move"
)

type MoveResponse struct {
	MoveID        string                     `json:"moveId"`
	ReservationID string                     `json:"reservationId"`
	TargetRoomID  string                     `json:"targetRoomId"`
	State         string                     `json:"state"`
	Conflict      *handlers.ConflictResponse `json:"conflict,omitempty"`
	Options       []string                   `json:"options"`
	SwapAvailable bool                       `json:"swapAvailable"`
	LastError     string                     `json:"lastError,omitempty"`
	CreatedAt     time.Time                  `json:"createdAt"`
}

func FromUseCaseResponse(resp *getMove.Response) *MoveResponse {
	return &MoveResponse{
		MoveID:        resp.MoveID,
		ReservationID: resp.ReservationID,
		TargetRoomID:  resp.TargetRoomID,
		State:         string(resp.State),
		Conflict:      handlers.FromDomainConflict(resp.Conflict),
		Options:       handlers.FromDomainResolutions(resp.Options),
		SwapAvailable: resp.SwapAvailable,
		LastError:     resp.LastError,
		CreatedAt:     resp.CreatedAt,
	}
}
