package resolve_move

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RackService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RackService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RackService/internal/rack"
	"github.com/m04kA/SMC-RackService/internal/service/moves"
	"github.com/m04kA/SMC-RackService/internal/service/snapshot"
)

// UseCase use case для разрешения конфликта переноса выбором пользователя
type UseCase struct {
	snapshots       SnapshotService
	reservationRepo ReservationRepository
	registry        MoveRegistry
	txManager       TransactionManager
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	snapshots SnapshotService,
	reservationRepo ReservationRepository,
	registry MoveRegistry,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		snapshots:       snapshots,
		reservationRepo: reservationRepo,
		registry:        registry,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute применяет выбор пользователя к ожидающему переносу
//
// Конфликт ищется заново на свежем снимке шахматки. При нехватке свободных комнат
// или устаревшем снимке перенос остается ждать другого выбора.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveMove: hotel=%s, move=%s, choice=%s", req.HotelID, req.MoveID, req.Choice)

	// 1. Валидация входных данных
	choice, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ResolveMove: validation failed: %v", err)
		return nil, err
	}

	// 2. Захватываем перенос
	move, release, err := uc.registry.Acquire(req.HotelID, req.MoveID)
	if err != nil {
		switch {
		case errors.Is(err, moves.ErrMoveNotFound):
			uc.logger.Warn("ResolveMove: move id=%s not found", req.MoveID)
			return nil, ErrMoveNotFound
		case errors.Is(err, moves.ErrMoveBusy):
			uc.logger.Warn("ResolveMove: move id=%s is already being resolved", req.MoveID)
			return nil, ErrResolutionInProgress
		default:
			uc.logger.Error("ResolveMove: failed to acquire move id=%s: %v", req.MoveID, err)
			return nil, fmt.Errorf("%w: acquire move: %v", ErrInternal, err)
		}
	}
	defer release()

	session := move.Session

	// 3. Отмена: ничего не применялось
	if choice == domain.ResolutionCancel {
		if _, err := session.Choose(choice, nil); err != nil {
			return nil, uc.sessionError(move, choice, err)
		}
		uc.registry.Close(move.ID)
		uc.metrics.ObserveMoveResolution(string(choice), resultCancelled)
		uc.logger.Info("ResolveMove: move id=%s cancelled", move.ID)
		return &Response{Status: StatusCancelled, Resolution: choice, Assignments: []domain.Assignment{}}, nil
	}

	// 4. Свежий снимок
	snap, err := uc.snapshots.ForMove(ctx, move.HotelID, move.ReservationID)
	if err != nil {
		if errors.Is(err, snapshot.ErrReservationNotFound) {
			uc.logger.Warn("ResolveMove: reservation=%s disappeared, closing move id=%s", move.ReservationID, move.ID)
			_ = session.Cancel()
			uc.registry.Close(move.ID)
			return nil, fmt.Errorf("%w: reservation %s no longer exists", ErrInvalidInput, move.ReservationID)
		}
		uc.logger.Error("ResolveMove: failed to load snapshot for move id=%s: %v", move.ID, err)
		uc.registry.Touch(move.ID)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	// 5. План
	plan, err := session.Choose(choice, snap)
	if err != nil {
		return nil, uc.sessionError(move, choice, err)
	}

	// 6. Применение
	if len(plan.Assignments) > 0 {
		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			return uc.reservationRepo.ApplyAssignments(txCtx, move.HotelID, plan.Assignments)
		})
	}
	if err != nil {
		_ = session.Fail(err)
		uc.registry.Touch(move.ID)

		if errors.Is(err, reservationRepo.ErrAssignmentConflict) {
			uc.logger.Warn("ResolveMove: stale snapshot for move id=%s: %v", move.ID, err)
			uc.metrics.ObserveMoveResolution(string(choice), resultStale)
			return nil, ErrStaleSnapshot
		}
		uc.logger.Error("ResolveMove: failed to apply move id=%s: %v", move.ID, err)
		uc.metrics.ObserveMoveResolution(string(choice), resultFailed)
		return nil, fmt.Errorf("%w: apply assignments: %v", ErrInternal, err)
	}

	if err := session.Complete(); err != nil {
		uc.logger.Error("ResolveMove: failed to complete move id=%s: %v", move.ID, err)
	}
	uc.registry.Close(move.ID)
	uc.metrics.ObserveMoveResolution(string(choice), resultApplied)
	uc.logger.Info("ResolveMove: move id=%s resolved by %s, %d assignment(s) applied", move.ID, choice, len(plan.Assignments))

	return &Response{
		Status:      StatusApplied,
		Resolution:  choice,
		Assignments: plan.Assignments,
	}, nil
}

// sessionError переводит ошибку машины состояний в ошибку use case
// Восстановимые ошибки оставляют перенос в ожидании, остальные его закрывают
func (uc *UseCase) sessionError(move *moves.Move, choice domain.Resolution, err error) error {
	switch {
	case errors.Is(err, rack.ErrNoVacantRoom):
		uc.logger.Warn("ResolveMove: move id=%s: %v", move.ID, err)
		uc.registry.Touch(move.ID)
		uc.metrics.ObserveMoveResolution(string(choice), resultNoVacantRoom)
		return fmt.Errorf("%w: %w", ErrNoVacantRoom, err)
	case errors.Is(err, rack.ErrSwapNotAvailable):
		uc.logger.Warn("ResolveMove: move id=%s: swap is no longer available", move.ID)
		uc.registry.Touch(move.ID)
		uc.metrics.ObserveMoveResolution(string(choice), resultFailed)
		return ErrSwapNotAvailable
	case errors.Is(err, rack.ErrResolutionInProgress):
		return ErrResolutionInProgress
	case errors.Is(err, rack.ErrInvalidInput):
		uc.logger.Warn("ResolveMove: move id=%s is no longer valid: %v", move.ID, err)
		uc.registry.Close(move.ID)
		uc.metrics.ObserveMoveResolution(string(choice), resultFailed)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("ResolveMove: unexpected session error for move id=%s: %v", move.ID, err)
		uc.metrics.ObserveMoveResolution(string(choice), resultFailed)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
