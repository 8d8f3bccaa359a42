//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=load_test
package load

import (
	"context"

	"loadboard/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, loadModifyEntity entities.LoadModify) (*entities.Load, error)
	GetByID(ctx context.Context, id int64) (*entities.Load, error)
	List(ctx context.Context, filter entities.LoadFilter) ([]entities.Load, error)

	// UpdateTermsIfOpen применяет частичное изменение условий только пока груз open.
	UpdateTermsIfOpen(ctx context.Context, loadModifyEntity entities.LoadModify) (*entities.Load, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
