package get_move

import (
	"time"

	"github.com/m04kA/SMC-RackService/internal/domain"
	"github.com/m04kA/SMC-RackService/internal/rack"
)

type Request struct {
	HotelID string
	MoveID  string
}

// Response текущее состояние ожидающего переноса
type Response struct {
	MoveID        string
	ReservationID string
	TargetRoomID  string
	State         rack.State
	Conflict      *domain.ConflictInfo
	Options       []domain.Resolution
	SwapAvailable bool
	LastError     string // Ошибка последней неудачной попытки разрешения
	CreatedAt     time.Time
}
