package get_rack_kpis

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RackService/internal/rack"
	"github.com/m04kA/SMC-RackService/internal/service/snapshot"
)

// UseCase use case для расчета показателей шахматки по дням
type UseCase struct {
	snapshots SnapshotService
	maxDays   int
	logger    Logger
}

// NewUseCase создает новый экземпляр use case; maxDays = 0 снимает ограничение периода
func NewUseCase(snapshots SnapshotService, maxDays int, logger Logger) *UseCase {
	return &UseCase{
		snapshots: snapshots,
		maxDays:   maxDays,
		logger:    logger,
	}
}

// Execute считает загрузку, среднюю цену и тренд на каждый день периода
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRackKPIs: hotel=%s, from=%s, to=%s", req.HotelID, req.From, req.To)

	from, to, err := validateRequest(req, uc.maxDays)
	if err != nil {
		uc.logger.Warn("GetRackKPIs: validation failed: %v", err)
		return nil, err
	}

	snap, err := uc.snapshots.ForPeriod(ctx, req.HotelID, from, to)
	if err != nil {
		if errors.Is(err, snapshot.ErrHotelNotFound) {
			return nil, ErrHotelNotFound
		}
		uc.logger.Error("GetRackKPIs: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	days := rack.ComputeDailyKPIs(snap.Rooms, snap.Reservations, rack.DaysBetween(from, to))

	uc.logger.Info("GetRackKPIs: computed %d day(s) for hotel=%s over %d room(s), %d reservation(s)",
		len(days), req.HotelID, len(snap.Rooms), len(snap.Reservations))

	return &Response{
		HotelID: req.HotelID,
		From:    from,
		To:      to,
		Days:    days,
	}, nil
}
