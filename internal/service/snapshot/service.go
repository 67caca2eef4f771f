package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RackService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RackService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RackService/internal/integrations/settingsservice"
	"github.com/m04kA/SMC-RackService/pkg/types"
)

// Service собирает снимок шахматки отеля для ядра
type Service struct {
	reservationRepo ReservationRepository
	rooms           RoomSource
	logger          Logger
}

// NewService создает новый экземпляр сервиса снимков
func NewService(reservationRepo ReservationRepository, rooms RoomSource, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		rooms:           rooms,
		logger:          logger,
	}
}

// ForMove собирает снимок, достаточный для переноса бронирования
//
// Снимок содержит все комнаты отеля и бронирования, пересекающие окно,
// в которое попадают переносимое бронирование и все пересекающиеся с ним.
// Этого хватает и для поиска конфликтов, и для поиска свободной комнаты вытесняемым.
func (s *Service) ForMove(ctx context.Context, hotelID, reservationID string) (*domain.Snapshot, error) {
	moving, err := s.reservationRepo.GetByID(ctx, hotelID, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("ForMove: reservation id=%s not found in hotel=%s", reservationID, hotelID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("ForMove: repository error for reservation id=%s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: ForMove - get reservation: %v", ErrInternal, err)
	}

	rooms, err := s.getRooms(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	reservations, err := s.getReservations(ctx, hotelID, moving.Start, moving.End)
	if err != nil {
		return nil, err
	}

	from, to := moving.Start, moving.End
	for _, r := range reservations {
		if r.Start.Before(from) {
			from = r.Start
		}
		if r.End.After(to) {
			to = r.End
		}
	}

	// Расширяем окно до интервалов вытесняемых бронирований
	if from.Before(moving.Start) || to.After(moving.End) {
		reservations, err = s.getReservations(ctx, hotelID, from, to)
		if err != nil {
			return nil, err
		}
	}

	return &domain.Snapshot{Rooms: rooms, Reservations: ensureReservation(reservations, moving)}, nil
}

// ForPeriod собирает снимок для дней [from, to] включительно
func (s *Service) ForPeriod(ctx context.Context, hotelID string, from, to types.Date) (*domain.Snapshot, error) {
	rooms, err := s.getRooms(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	reservations, err := s.getReservations(ctx, hotelID, from, to.AddDays(1))
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{Rooms: rooms, Reservations: reservations}, nil
}

func (s *Service) getRooms(ctx context.Context, hotelID string) ([]*domain.Room, error) {
	rooms, err := s.rooms.GetRooms(ctx, hotelID)
	if err != nil {
		if errors.Is(err, settingsservice.ErrHotelNotFound) {
			s.logger.Warn("Snapshot: hotel=%s not found in settings service", hotelID)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("Snapshot: failed to get rooms for hotel=%s: %v", hotelID, err)
		return nil, fmt.Errorf("%w: get rooms: %v", ErrInternal, err)
	}
	return rooms, nil
}

func (s *Service) getReservations(ctx context.Context, hotelID string, from, to types.Date) ([]*domain.Reservation, error) {
	reservations, err := s.reservationRepo.GetByHotelAndPeriod(ctx, hotelID, from, to)
	if err != nil {
		s.logger.Error("Snapshot: failed to get reservations for hotel=%s [%s, %s): %v", hotelID, from, to, err)
		return nil, fmt.Errorf("%w: get reservations: %v", ErrInternal, err)
	}
	return reservations, nil
}

// ensureReservation добавляет переносимое бронирование, если период его не захватил (ноль ночей)
// Детектор сам отклонит пустой интервал
func ensureReservation(list []*domain.Reservation, r *domain.Reservation) []*domain.Reservation {
	for _, item := range list {
		if item.ID == r.ID {
			return list
		}
	}
	return append(list, r)
}
