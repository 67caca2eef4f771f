package get_move

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RackService/internal/rack"
	"github.com/m04kA/SMC-RackService/internal/service/moves"
)

// UseCase use case для получения ожидающего переноса
type UseCase struct {
	registry MoveRegistry
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(registry MoveRegistry, logger Logger) *UseCase {
	return &UseCase{
		registry: registry,
		logger:   logger,
	}
}

// Execute возвращает состояние, конфликт и варианты разрешения переноса
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.HotelID) == "" || strings.TrimSpace(req.MoveID) == "" {
		return nil, fmt.Errorf("%w: hotelId and moveId are required", ErrInvalidInput)
	}

	var resp *Response
	err := uc.registry.View(req.HotelID, req.MoveID, func(m *moves.Move) {
		session := m.Session
		resp = &Response{
			MoveID:        m.ID,
			ReservationID: m.ReservationID,
			TargetRoomID:  m.TargetRoomID,
			State:         session.State(),
			Conflict:      session.Conflict(),
			Options:       session.Options(),
			CreatedAt:     m.CreatedAt,
		}
		if session.Conflict() != nil {
			resp.SwapAvailable = rack.CanSwap(session.Conflict())
		}
		if lastErr := session.LastError(); lastErr != nil {
			resp.LastError = lastErr.Error()
		}
	})
	if err != nil {
		if errors.Is(err, moves.ErrMoveNotFound) {
			uc.logger.Warn("GetMove: move id=%s not found in hotel=%s", req.MoveID, req.HotelID)
			return nil, ErrMoveNotFound
		}
		uc.logger.Error("GetMove: failed to read move id=%s: %v", req.MoveID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return resp, nil
}
