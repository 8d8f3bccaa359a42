//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bid_test
package bid

import (
	"context"

	"loadboard/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, bidEntity entities.Bid) (*entities.Bid, error)
	GetByID(ctx context.Context, id int64) (*entities.Bid, error)

	// ListByLoad возвращает все ставки груза, дешёвые первыми.
	ListByLoad(ctx context.Context, loadID int64) ([]entities.Bid, error)

	// WithdrawPendingByTrucker отзывает pending-ставку перевозчика на этот груз,
	// если она есть, и возвращает её id. Нет ставки - nil без ошибки.
	WithdrawPendingByTrucker(ctx context.Context, loadID, truckerID int64) (*int64, error)

	// WithdrawIfPending переводит ставку pending -> withdrawn одним условным UPDATE.
	WithdrawIfPending(ctx context.Context, bidID int64) (*entities.Bid, error)
}

type LoadService interface {
	GetLoad(ctx context.Context, id int64) (*entities.Load, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
