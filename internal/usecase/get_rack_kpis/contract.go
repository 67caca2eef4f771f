package get_rack_kpis

import (
	"context"

	"github.com/m04kA/SMC-RackService/internal/domain"
	"github.com/m04kA/SMC-RackService/pkg/types"
)

// SnapshotService собирает снимок шахматки за период
type SnapshotService interface {
	ForPeriod(ctx context.Context, hotelID string, from, to types.Date) (*domain.Snapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
