package bid

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"loadboard/internal/entities"
	"loadboard/internal/repository"
	"loadboard/internal/service/assignment"
	"loadboard/internal/service/bid"
	"loadboard/internal/service/load"
)

const bidColumns = `id, load_id, trucker_id, price, comment, status, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, bidEntity entities.Bid) (*entities.Bid, error) {
	query := `INSERT INTO bids (load_id, trucker_id, price, comment, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + bidColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		bidEntity.LoadID,
		bidEntity.TruckerID,
		bidEntity.Price,
		bidEntity.Comment,
		bidEntity.Status.String(),
	)

	bidModel, err := scanBid(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, load.ErrLoadNotFound
		}
		return nil, fmt.Errorf("unexpected bid repository create error: %w", err)
	}

	return ToDomain(bidModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE id = $1`

	bidModel, err := scanBid(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bid.ErrBidNotFound
		}
		return nil, fmt.Errorf("unexpected bid repository get error: %w", err)
	}

	return ToDomain(bidModel), nil
}

func (r *Repository) ListByLoad(ctx context.Context, loadID int64) ([]entities.Bid, error) {
	query := `SELECT ` + bidColumns + `
		FROM bids
		WHERE load_id = $1
		ORDER BY price ASC, created_at ASC`

	rows, err := r.querier.Query(ctx, query, loadID)
	if err != nil {
		return nil, fmt.Errorf("unexpected bid repository list error: %w", err)
	}
	defer rows.Close()

	bidModels := make([]BidDB, 0, 8)
	for rows.Next() {
		bidModel, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected bid repository list error: %w", err)
		}
		bidModels = append(bidModels, *bidModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected bid repository list error: %w", err)
	}

	return ToDomainList(bidModels), nil
}

func (r *Repository) WithdrawPendingByTrucker(ctx context.Context, loadID, truckerID int64) (*int64, error) {
	query := `UPDATE bids
		SET status = 'withdrawn'
		WHERE load_id = $1 AND trucker_id = $2 AND status = 'pending'
		RETURNING id`

	var withdrawnID int64
	err := r.querier.QueryRow(ctx, query, loadID, truckerID).Scan(&withdrawnID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected bid repository withdraw error: %w", err)
	}

	return &withdrawnID, nil
}

func (r *Repository) WithdrawIfPending(ctx context.Context, bidID int64) (*entities.Bid, error) {
	query := `UPDATE bids
		SET status = 'withdrawn'
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + bidColumns

	bidModel, err := scanBid(r.querier.QueryRow(ctx, query, bidID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bid.ErrBidNotPending
		}
		return nil, fmt.Errorf("unexpected bid repository withdraw error: %w", err)
	}

	return ToDomain(bidModel), nil
}

func (r *Repository) AcceptIfPending(ctx context.Context, bidID int64) (*entities.Bid, error) {
	query := `UPDATE bids
		SET status = 'accepted'
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + bidColumns

	bidModel, err := scanBid(r.querier.QueryRow(ctx, query, bidID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrBidNotPending
		}
		return nil, fmt.Errorf("unexpected bid repository accept error: %w", err)
	}

	return ToDomain(bidModel), nil
}

func (r *Repository) RejectOtherPending(ctx context.Context, loadID, acceptedBidID int64) (int64, error) {
	query := `UPDATE bids
		SET status = 'rejected'
		WHERE load_id = $1 AND id <> $2 AND status = 'pending'`

	tag, err := r.querier.Exec(ctx, query, loadID, acceptedBidID)
	if err != nil {
		return 0, fmt.Errorf("unexpected bid repository reject error: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) RejectAccepted(ctx context.Context, loadID int64) error {
	query := `UPDATE bids
		SET status = 'rejected'
		WHERE load_id = $1 AND status = 'accepted'`

	if _, err := r.querier.Exec(ctx, query, loadID); err != nil {
		return fmt.Errorf("unexpected bid repository reject error: %w", err)
	}

	return nil
}

func (r *Repository) HasActiveBid(ctx context.Context, loadID, truckerID int64) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM bids
		WHERE load_id = $1 AND trucker_id = $2 AND status IN ('pending', 'accepted'))`

	var exists bool
	err := r.querier.QueryRow(ctx, query, loadID, truckerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected bid repository exists error: %w", err)
	}

	return exists, nil
}

func scanBid(row pgx.Row) (*BidDB, error) {
	var bidModel BidDB
	err := row.Scan(
		&bidModel.ID,
		&bidModel.LoadID,
		&bidModel.TruckerID,
		&bidModel.Price,
		&bidModel.Comment,
		&bidModel.Status,
		&bidModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bidModel, nil
}
