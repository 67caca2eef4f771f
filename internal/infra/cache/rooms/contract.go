package rooms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RackService/internal/domain"
)

// Source первичный источник комнат (SettingsService)
type Source interface {
	GetRooms(ctx context.Context, hotelID string) ([]*domain.Room, error)
}

// KVStore хранилище ключ-значение, в проде Redis
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
