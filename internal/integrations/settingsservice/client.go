package settingsservice

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/m04kA/SMC-RackService/internal/domain"
)

const (
	retryCount       = 2
	retryWaitTime    = 100 * time.Millisecond
	retryMaxWaitTime = 500 * time.Millisecond
)

// Client клиент для работы с SettingsService (справочник номеров отеля)
type Client struct {
	http *resty.Client
	log  Logger
}

// NewClient создает новый экземпляр клиента SettingsService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWaitTime).
		SetRetryMaxWaitTime(retryMaxWaitTime).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http: httpClient,
		log:  log,
	}
}

// GetRooms получает все комнаты отеля, включая out_of_order и фиктивные
func (c *Client) GetRooms(ctx context.Context, hotelID string) ([]*domain.Room, error) {
	var rooms []Room
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("hotelId", hotelID).
		SetResult(&rooms).
		Get("/internal/hotels/{hotelId}/rooms")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrHotelNotFound
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode(), resp.String())
	}

	result := make([]*domain.Room, 0, len(rooms))
	for _, room := range rooms {
		status := domain.RoomStatus(room.Status)
		if !domain.IsValidRoomStatus(status) {
			return nil, fmt.Errorf("%w: room %s has unknown status %q", ErrInvalidResponse, room.ID, room.Status)
		}
		result = append(result, &domain.Room{
			ID:      room.ID,
			HotelID: hotelID,
			Number:  room.Number,
			Type:    room.Type,
			Status:  status,
		})
	}

	c.log.Info("Fetched %d rooms for hotel_id=%s", len(result), hotelID)
	return result, nil
}
