package resolve_move

import "github.com/m04kA/SMC-RackService/internal/domain"

// Request модель запроса на разрешение конфликта
type Request struct {
	HotelID string
	MoveID  string
	Choice  string // swap, relocate или cancel
}

// Status результат разрешения
type Status string

const (
	StatusApplied   Status = "applied"
	StatusCancelled Status = "cancelled"
)

// Response модель ответа
type Response struct {
	Status      Status
	Resolution  domain.Resolution
	Assignments []domain.Assignment
}

// Результаты для метрик
const (
	resultApplied      = "applied"
	resultCancelled    = "cancelled"
	resultNoVacantRoom = "no_vacant_room"
	resultStale        = "stale"
	resultFailed       = "failed"
)
