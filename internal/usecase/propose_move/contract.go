package propose_move

import (
	"context"

	"github.com/m04kA/SMC-RackService/internal/domain"
	"github.com/m04kA/SMC-RackService/internal/rack"
	"github.com/m04kA/SMC-RackService/internal/service/moves"
)

// SnapshotService собирает снимок шахматки для переноса
type SnapshotService interface {
	ForMove(ctx context.Context, hotelID, reservationID string) (*domain.Snapshot, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// ApplyAssignments переносит бронирования и проверяет отсутствие пересечений в новых комнатах
	ApplyAssignments(ctx context.Context, hotelID string, assignments []domain.Assignment) error
}

// MoveRegistry реестр ожидающих переносов
type MoveRegistry interface {
	IsBusy(hotelID, reservationID, roomID string) bool
	Open(hotelID string, session *rack.Session) (*moves.Move, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder учитывает результаты предложений переноса
type MetricsRecorder interface {
	ObserveMoveProposal(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
