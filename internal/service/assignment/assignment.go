package assignment

import (
	"context"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"loadboard/internal/entities"
)

type Assignment struct {
	loads     LoadRepository
	bids      BidLedger
	events    EventPublisher
	txManager TxManager
}

func New(loads LoadRepository, bids BidLedger, events EventPublisher, txManager TxManager) *Assignment {
	return &Assignment{
		loads:     loads,
		bids:      bids,
		events:    events,
		txManager: txManager,
	}
}

// AcceptBid принимает ставку от имени владельца груза. Все четыре мутации
// (назначение перевозчика, перевод груза в assigned, принятие ставки,
// отклонение остальных pending-ставок) происходят в одной транзакции: либо
// все, либо ни одной. Из двух одновременных принятий выигрывает ровно одно.
func (s *Assignment) AcceptBid(ctx context.Context, actor entities.Principal, loadID, bidID int64) (*entities.Assignment, error) {
	if loadID <= 0 {
		return nil, ErrInvalidLoadID
	}
	if bidID <= 0 {
		return nil, ErrInvalidBidID
	}

	var result *entities.Assignment

	trErr := s.txManager.Do(ctx, func(ctx context.Context) error {
		bidEntity, err := s.bids.GetByID(ctx, bidID)
		if err != nil {
			return fmt.Errorf("get bid: %w", err)
		}

		if bidEntity.LoadID != loadID {
			return ErrBidLoadMismatch
		}

		loadEntity, err := s.loads.GetByID(ctx, loadID)
		if err != nil {
			return fmt.Errorf("get load: %w", err)
		}

		// терминальный статус закрывает переход для любой роли
		if loadEntity.Status.Terminal() {
			return ErrLoadTerminal
		}

		if !actor.IsAdmin() && loadEntity.ShipperID != actor.UserID {
			return ErrNotOwner
		}

		assignedLoad, err := s.loads.AssignIfOpen(ctx, loadID, bidEntity.TruckerID)
		if err != nil {
			return fmt.Errorf("assign load: %w", err)
		}

		acceptedBid, err := s.bids.AcceptIfPending(ctx, bidID)
		if err != nil {
			return fmt.Errorf("accept bid: %w", err)
		}

		rejected, err := s.bids.RejectOtherPending(ctx, loadID, bidID)
		if err != nil {
			return fmt.Errorf("reject competing bids: %w", err)
		}

		result = &entities.Assignment{
			Load:         *assignedLoad,
			AcceptedBid:  *acceptedBid,
			RejectedBids: rejected,
		}

		return nil
	})
	if trErr != nil {
		return nil, trErr
	}

	s.events.Publish(ctx, entities.LoadEvent{
		LoadID:     result.Load.ID,
		Status:     result.Load.Status,
		TruckerID:  result.Load.TruckerID,
		BidID:      pointer.To(result.AcceptedBid.ID),
		OccurredAt: time.Now().UTC(),
	})

	return result, nil
}

// CancelLoad отменяет груз из open или assigned. У assigned-груза принятая
// ставка отклоняется, перевозчик снимается.
func (s *Assignment) CancelLoad(ctx context.Context, actor entities.Principal, loadID int64) (*entities.Load, error) {
	if loadID <= 0 {
		return nil, ErrInvalidLoadID
	}

	var cancelledLoad *entities.Load

	trErr := s.txManager.Do(ctx, func(ctx context.Context) error {
		loadEntity, err := s.loads.GetByID(ctx, loadID)
		if err != nil {
			return fmt.Errorf("get load: %w", err)
		}

		if loadEntity.Status.Terminal() {
			return ErrLoadTerminal
		}

		if !actor.IsAdmin() && loadEntity.ShipperID != actor.UserID {
			return ErrNotOwner
		}

		if loadEntity.Status == entities.LoadInTransit {
			return ErrLoadInTransit
		}

		wasAssigned := loadEntity.Status == entities.LoadAssigned

		cancelledLoad, err = s.loads.CancelOpenOrAssigned(ctx, loadID)
		if err != nil {
			return fmt.Errorf("cancel load: %w", err)
		}

		if wasAssigned {
			if err := s.bids.RejectAccepted(ctx, loadID); err != nil {
				return fmt.Errorf("reject accepted bid: %w", err)
			}
		}

		return nil
	})
	if trErr != nil {
		return nil, trErr
	}

	s.events.Publish(ctx, entities.LoadEvent{
		LoadID:     cancelledLoad.ID,
		Status:     cancelledLoad.Status,
		OccurredAt: time.Now().UTC(),
	})

	return cancelledLoad, nil
}

// MarkInTransit переводит assigned-груз в in_transit от имени назначенного перевозчика.
func (s *Assignment) MarkInTransit(ctx context.Context, actor entities.Principal, loadID int64) (*entities.Load, error) {
	return s.transition(ctx, actor, loadID, entities.LoadAssigned, entities.LoadInTransit)
}

// MarkCompleted закрывает in_transit-груз. Разрешено владельцу и назначенному перевозчику.
func (s *Assignment) MarkCompleted(ctx context.Context, actor entities.Principal, loadID int64) (*entities.Load, error) {
	return s.transition(ctx, actor, loadID, entities.LoadInTransit, entities.LoadCompleted)
}

func (s *Assignment) transition(ctx context.Context, actor entities.Principal, loadID int64, from, to entities.LoadStatusType) (*entities.Load, error) {
	if loadID <= 0 {
		return nil, ErrInvalidLoadID
	}

	var updatedLoad *entities.Load

	trErr := s.txManager.Do(ctx, func(ctx context.Context) error {
		loadEntity, err := s.loads.GetByID(ctx, loadID)
		if err != nil {
			return fmt.Errorf("get load: %w", err)
		}

		// терминальный статус закрывает переход для любой роли
		if loadEntity.Status.Terminal() {
			return ErrLoadTerminal
		}

		if err := authorizeTransition(actor, loadEntity, to); err != nil {
			return err
		}

		if loadEntity.Status != from {
			return wrongStatusError(from)
		}

		updatedLoad, err = s.loads.TransitionStatus(ctx, loadID, from, to)
		if err != nil {
			return fmt.Errorf("transition load: %w", err)
		}

		return nil
	})
	if trErr != nil {
		return nil, trErr
	}

	s.events.Publish(ctx, entities.LoadEvent{
		LoadID:     updatedLoad.ID,
		Status:     updatedLoad.Status,
		TruckerID:  updatedLoad.TruckerID,
		OccurredAt: time.Now().UTC(),
	})

	return updatedLoad, nil
}

func authorizeTransition(actor entities.Principal, loadEntity *entities.Load, to entities.LoadStatusType) error {
	if actor.IsAdmin() {
		return nil
	}

	isOwner := loadEntity.ShipperID == actor.UserID
	isAssignedTrucker := loadEntity.TruckerID != nil && *loadEntity.TruckerID == actor.UserID

	switch to {
	case entities.LoadInTransit:
		if !isAssignedTrucker {
			return ErrNotAssignedTrucker
		}
	case entities.LoadCompleted:
		if !isOwner && !isAssignedTrucker {
			return ErrNotParticipant
		}
	default:
		return ErrNotParticipant
	}

	return nil
}

func wrongStatusError(expected entities.LoadStatusType) error {
	switch expected {
	case entities.LoadAssigned:
		return ErrLoadNotAssigned
	case entities.LoadInTransit:
		return ErrLoadNotInTransit
	default:
		return ErrLoadNotOpen
	}
}
