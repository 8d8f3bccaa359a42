//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stats_test
package stats

import (
	"context"

	"loadboard/internal/entities"
)

type Repository interface {
	Counts(ctx context.Context) (*entities.BoardStats, error)
}
