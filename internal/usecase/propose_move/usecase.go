package propose_move

import (
	"context"
	"errors"
	"fmt"

	reservationRepo "github.com/m04kA/SMC-RackService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RackService/internal/rack"
	"github.com/m04kA/SMC-RackService/internal/service/moves"
	"github.com/m04kA/SMC-RackService/internal/service/snapshot"
)

// UseCase use case для переноса бронирования в другую комнату
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

// Execute проверяет перенос на конфликты
// Перенос без конфликтов применяется сразу. При конфликте открывается ожидающий перенос,
// который пользователь разрешает через resolve_move.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ProposeMove: hotel=%s, reservation=%s, target_room=%s",
		req.HotelID, req.ReservationID, req.TargetRoomID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ProposeMove: validation failed: %v", err)
		uc.metrics.ObserveMoveProposal(outcomeRejected)
		return nil, err
	}

	// 2. Бронирование или комната уже в ожидающем переносе
	if uc.registry.IsBusy(req.HotelID, req.ReservationID, req.TargetRoomID) {
		uc.logger.Warn("ProposeMove: reservation=%s or room=%s is locked by a pending move",
			req.ReservationID, req.TargetRoomID)
		uc.metrics.ObserveMoveProposal(outcomeRejected)
		return nil, ErrMoveInProgress
	}

	// 3. Снимок шахматки
	snap, err := uc.snapshots.ForMove(ctx, req.HotelID, req.ReservationID)
	if err != nil {
		uc.metrics.ObserveMoveProposal(outcomeRejected)
		switch {
		case errors.Is(err, snapshot.ErrReservationNotFound):
			return nil, fmt.Errorf("%w: reservation %s not found", ErrInvalidInput, req.ReservationID)
		case errors.Is(err, snapshot.ErrHotelNotFound):
			return nil, ErrHotelNotFound
		default:
			uc.logger.Error("ProposeMove: failed to load snapshot: %v", err)
			return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
		}
	}

	// 4. Поиск конфликтов
	session := rack.NewSession()
	plan, err := session.Propose(snap, req.ReservationID, req.TargetRoomID)
	if err != nil {
		uc.metrics.ObserveMoveProposal(outcomeRejected)
		if errors.Is(err, rack.ErrInvalidInput) {
			uc.logger.Warn("ProposeMove: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("ProposeMove: unexpected session error: %v", err)
		return nil, fmt.Errorf("%w: propose: %v", ErrInternal, err)
	}

	// 5a. Конфликтов нет: применяем сразу
	if plan != nil {
		if err := uc.apply(ctx, req.HotelID, plan); err != nil {
			uc.metrics.ObserveMoveProposal(outcomeRejected)
			return nil, err
		}

		uc.metrics.ObserveMoveProposal(outcomeApplied)
		uc.logger.Info("ProposeMove: reservation=%s moved to room=%s", req.ReservationID, req.TargetRoomID)
		return &Response{
			Status:      StatusApplied,
			Assignments: plan.Assignments,
		}, nil
	}

	// 5b. Конфликт: ждем выбора пользователя
	move, err := uc.registry.Open(req.HotelID, session)
	if err != nil {
		uc.metrics.ObserveMoveProposal(outcomeRejected)
		if errors.Is(err, moves.ErrMoveInProgress) {
			uc.logger.Warn("ProposeMove: %v", err)
			return nil, ErrMoveInProgress
		}
		uc.logger.Error("ProposeMove: failed to open move: %v", err)
		return nil, fmt.Errorf("%w: open move: %v", ErrInternal, err)
	}

	uc.metrics.ObserveMoveProposal(outcomeConflict)
	uc.logger.Info("ProposeMove: move id=%s awaits user choice, %d conflicting reservation(s), options=%v",
		move.ID, len(session.Conflict().ConflictingReservations), session.Options())

	return &Response{
		Status:        StatusConflict,
		MoveID:        move.ID,
		Conflict:      session.Conflict(),
		Options:       session.Options(),
		SwapAvailable: rack.CanSwap(session.Conflict()),
	}, nil
}

func (uc *UseCase) apply(ctx context.Context, hotelID string, plan *rack.Plan) error {
	if len(plan.Assignments) == 0 {
		return nil
	}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return uc.reservationRepo.ApplyAssignments(txCtx, hotelID, plan.Assignments)
	})
	if err == nil {
		return nil
	}

	if errors.Is(err, reservationRepo.ErrAssignmentConflict) {
		uc.logger.Warn("ProposeMove: stale snapshot: %v", err)
		return ErrStaleSnapshot
	}
	uc.logger.Error("ProposeMove: failed to apply assignments: %v", err)
	return fmt.Errorf("%w: apply assignments: %v", ErrInternal, err)
}
