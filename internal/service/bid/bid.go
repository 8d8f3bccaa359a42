package bid

import (
	"context"
	"fmt"
	"strings"

	"loadboard/internal/entities"
)

type Bid struct {
	repository  Repository
	loadService LoadService
	txManager   TxManager
}

func New(repository Repository, loadService LoadService, txManager TxManager) *Bid {
	return &Bid{
		repository:  repository,
		loadService: loadService,
		txManager:   txManager,
	}
}

// PlaceBid ставит pending-ставку перевозчика на открытый груз. Прежняя
// pending-ставка этого перевозчика на тот же груз отзывается в той же транзакции.
func (s *Bid) PlaceBid(ctx context.Context, actor entities.Principal, loadID int64, price float64, comment string) (*entities.BidPlacement, error) {
	if !actor.IsTrucker() {
		return nil, ErrRoleCannotBid
	}
	if loadID <= 0 {
		return nil, ErrInvalidLoadID
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}

	var placement *entities.BidPlacement

	trErr := s.txManager.Do(ctx, func(ctx context.Context) error {
		loadEntity, err := s.loadService.GetLoad(ctx, loadID)
		if err != nil {
			return fmt.Errorf("get load: %w", err)
		}

		if loadEntity.Status != entities.LoadOpen {
			return ErrLoadNotOpen
		}

		supersededID, err := s.repository.WithdrawPendingByTrucker(ctx, loadID, actor.UserID)
		if err != nil {
			return fmt.Errorf("withdraw superseded bid: %w", err)
		}

		createdBid, err := s.repository.Create(ctx, entities.Bid{
			LoadID:    loadID,
			TruckerID: actor.UserID,
			Price:     price,
			Comment:   strings.TrimSpace(comment),
			Status:    entities.BidPending,
		})
		if err != nil {
			return fmt.Errorf("create bid: %w", err)
		}

		placement = &entities.BidPlacement{
			Bid:          *createdBid,
			SupersededID: supersededID,
		}

		return nil
	})
	if trErr != nil {
		return nil, trErr
	}

	return placement, nil
}

// WithdrawBid отзывает собственную pending-ставку перевозчика.
func (s *Bid) WithdrawBid(ctx context.Context, actor entities.Principal, bidID int64) (*entities.Bid, error) {
	if bidID <= 0 {
		return nil, ErrInvalidBidID
	}

	var withdrawnBid *entities.Bid

	trErr := s.txManager.Do(ctx, func(ctx context.Context) error {
		bidEntity, err := s.repository.GetByID(ctx, bidID)
		if err != nil {
			return fmt.Errorf("get bid: %w", err)
		}

		if bidEntity.TruckerID != actor.UserID {
			return ErrNotBidOwner
		}

		if bidEntity.Status != entities.BidPending {
			return ErrBidNotPending
		}

		withdrawnBid, err = s.repository.WithdrawIfPending(ctx, bidID)
		if err != nil {
			return fmt.Errorf("withdraw bid: %w", err)
		}

		return nil
	})
	if trErr != nil {
		return nil, trErr
	}

	return withdrawnBid, nil
}

// ListBidsForLoad возвращает ставки груза, дешёвые первыми.
func (s *Bid) ListBidsForLoad(ctx context.Context, loadID int64) ([]entities.Bid, error) {
	if loadID <= 0 {
		return nil, ErrInvalidLoadID
	}

	if _, err := s.loadService.GetLoad(ctx, loadID); err != nil {
		return nil, fmt.Errorf("get load: %w", err)
	}

	bids, err := s.repository.ListByLoad(ctx, loadID)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}

	return bids, nil
}
