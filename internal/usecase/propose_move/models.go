package propose_move

import "github.com/m04kA/SMC-RackService/internal/domain"

// Request модель запроса на перенос бронирования (drag-and-drop на шахматке)
type Request struct {
	HotelID       string
	ReservationID string
	TargetRoomID  string
}

// Status результат предложения переноса
type Status string

const (
	// StatusApplied перенос без конфликтов уже применен
	StatusApplied Status = "applied"
	// StatusConflict перенос ждет выбора пользователя
	StatusConflict Status = "conflict"
)

// Response модель ответа
type Response struct {
	Status        Status
	MoveID        string               // Только для StatusConflict
	Conflict      *domain.ConflictInfo // Только для StatusConflict
	Options       []domain.Resolution  // Только для StatusConflict
	SwapAvailable bool                 // Только для StatusConflict
	Assignments   []domain.Assignment  // Только для StatusApplied
}

// Исходы для метрик
const (
	outcomeApplied  = "applied"
	outcomeConflict = "conflict"
	outcomeRejected = "rejected"
)
