package rooms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RackService/internal/domain"
)

const keyPrefix = "rack:rooms:"

type cachedRoom struct {
	ID      string `json:"id"`
	HotelID string `json:"hotel_id"`
	Number  string `json:"number"`
	Type    string `json:"type"`
	Status  string `json:"status"`
}

// CachedSource кэширует список комнат отеля поверх Source
// Ошибки кэша не ломают чтение: при недоступном Redis комнаты читаются из Source
type CachedSource struct {
	source Source
	store  KVStore
	ttl    time.Duration
	log    Logger
}

func NewCachedSource(source Source, store KVStore, ttl time.Duration, log Logger) *CachedSource {
	return &CachedSource{
		source: source,
		store:  store,
		ttl:    ttl,
		log:    log,
	}
}

// GetRooms возвращает комнаты отеля из кэша или из источника
func (c *CachedSource) GetRooms(ctx context.Context, hotelID string) ([]*domain.Room, error) {
	key := keyPrefix + hotelID

	raw, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		rooms, decodeErr := decodeRooms(raw)
		if decodeErr == nil {
			return rooms, nil
		}
		c.log.Warn("RoomsCache: broken entry for hotel_id=%s: %v", hotelID, decodeErr)
	case errors.Is(err, ErrCacheMiss):
	default:
		c.log.Warn("RoomsCache: get failed for hotel_id=%s: %v", hotelID, err)
	}

	rooms, err := c.source.GetRooms(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	encoded, err := encodeRooms(rooms)
	if err != nil {
		c.log.Warn("RoomsCache: encode failed for hotel_id=%s: %v", hotelID, err)
		return rooms, nil
	}
	if err := c.store.Set(ctx, key, encoded, c.ttl); err != nil {
		c.log.Warn("RoomsCache: set failed for hotel_id=%s: %v", hotelID, err)
	}

	return rooms, nil
}

// Invalidate удаляет комнаты отеля из кэша
func (c *CachedSource) Invalidate(ctx context.Context, hotelID string) error {
	if err := c.store.Del(ctx, keyPrefix+hotelID); err != nil {
		return fmt.Errorf("rooms.cache: invalidate hotel %s: %w", hotelID, err)
	}
	return nil
}

func encodeRooms(rooms []*domain.Room) (string, error) {
	items := make([]cachedRoom, 0, len(rooms))
	for _, r := range rooms {
		items = append(items, cachedRoom{
			ID:      r.ID,
			HotelID: r.HotelID,
			Number:  r.Number,
			Type:    r.Type,
			Status:  string(r.Status),
		})
	}

	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeRooms(raw string) ([]*domain.Room, error) {
	var items []cachedRoom
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}

	rooms := make([]*domain.Room, 0, len(items))
	for _, item := range items {
		rooms = append(rooms, &domain.Room{
			ID:      item.ID,
			HotelID: item.HotelID,
			Number:  item.Number,
			Type:    item.Type,
			Status:  domain.RoomStatus(item.Status),
		})
	}
	return rooms, nil
}
