//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"loadboard/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)

	// List возвращает пользователей, новые первыми.
	List(ctx context.Context) ([]entities.User, error)
}
