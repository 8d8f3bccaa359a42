//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=savedload_test
package savedload

import (
	"context"

	"loadboard/internal/entities"
)

type Repository interface {
	// Save добавляет закладку. false - закладка уже существовала.
	Save(ctx context.Context, userID, loadID int64) (bool, error)
	Remove(ctx context.Context, userID, loadID int64) error
	ListLoadsByUser(ctx context.Context, userID int64) ([]entities.Load, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
