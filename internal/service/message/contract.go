//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=message_test
package message

import (
	"context"

	"loadboard/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, messageEntity entities.Message) (*entities.Message, error)

	// ListByLoad возвращает переписку груза в хронологическом порядке.
	ListByLoad(ctx context.Context, loadID int64) ([]entities.Message, error)
}

type LoadService interface {
	GetLoad(ctx context.Context, id int64) (*entities.Load, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (*entities.User, error)
}

// BidLedger отвечает на вопрос, участвует ли перевозчик в торгах по грузу.
type BidLedger interface {
	HasActiveBid(ctx context.Context, loadID, truckerID int64) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
