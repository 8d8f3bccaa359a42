package stats

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"loadboard/internal/entities"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Counts снимает все счётчики доски одним запросом.
func (r *Repository) Counts(ctx context.Context) (*entities.BoardStats, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM users),
		(SELECT COUNT(*) FROM loads),
		(SELECT COUNT(*) FROM loads WHERE status = 'open'),
		(SELECT COUNT(*) FROM bids),
		(SELECT COUNT(*) FROM bids WHERE status = 'pending')`

	var boardStats entities.BoardStats
	err := r.querier.QueryRow(ctx, query).Scan(
		&boardStats.Users,
		&boardStats.Loads,
		&boardStats.OpenLoads,
		&boardStats.Bids,
		&boardStats.PendingBids,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected stats repository counts error: %w", err)
	}

	return &boardStats, nil
}
