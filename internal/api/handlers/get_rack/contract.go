package get_rack

import (
	"context"

	"github.com/m04kA/SMC-RackService/internal/domain"
	"github.com/m04kA/SMC-RackService/pkg/types"
)

// SnapshotService снимок шахматки за период
type SnapshotService interface {
	ForPeriod(ctx context.Context, hotelID string, from, to types.Date) (*domain.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
