package resolve_move

import (
	"context"

	"github.com/m04kA/SMC-RackService/internal/domain"
	"github.com/m04kA/SMC-RackService/internal/service/moves"
)

// SnapshotService собирает снимок шахматки для переноса
type SnapshotService interface {
	ForMove(ctx context.Context, hotelID, reservationID string) (*domain.Snapshot, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ApplyAssignments(ctx context.Context, hotelID string, assignments []domain.Assignment) error
}

// MoveRegistry реестр ожидающих переносов
type MoveRegistry interface {
	Acquire(hotelID, moveID string) (*moves.Move, func(), error)
	Touch(moveID string)
	Close(moveID string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder учитывает результаты разрешения конфликтов
type MetricsRecorder interface {
	ObserveMoveResolution(choice, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
