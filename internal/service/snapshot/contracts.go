package snapshot

import (
	"context"

	"github.com/m04kA/SMC-RackService/internal/domain"
	"github.com/m04kA/SMC-RackService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, hotelID, id string) (*domain.Reservation, error)
	GetByHotelAndPeriod(ctx context.Context, hotelID string, from, to types.Date) ([]*domain.Reservation, error)
}

// RoomSource источник комнат отеля (SettingsService, опционально через кэш)
type RoomSource interface {
	GetRooms(ctx context.Context, hotelID string) ([]*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
