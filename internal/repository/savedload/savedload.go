package savedload

import (
	"context"
	"fmt"

	"loadboard/internal/entities"
	"loadboard/internal/repository"
	"loadboard/internal/service/savedload"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Save(ctx context.Context, userID, loadID int64) (bool, error) {
	query := `INSERT INTO saved_loads (user_id, load_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, load_id) DO NOTHING`

	tag, err := r.querier.Exec(ctx, query, userID, loadID)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return false, savedload.ErrLoadNotFound
		}
		return false, fmt.Errorf("unexpected saved load repository save error: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Remove(ctx context.Context, userID, loadID int64) error {
	query := `DELETE FROM saved_loads WHERE user_id = $1 AND load_id = $2`

	if _, err := r.querier.Exec(ctx, query, userID, loadID); err != nil {
		return fmt.Errorf("unexpected saved load repository remove error: %w", err)
	}

	return nil
}

func (r *Repository) ListLoadsByUser(ctx context.Context, userID int64) ([]entities.Load, error) {
	query := `SELECT l.id, l.shipper_id, l.origin, l.destination, l.cargo, l.equipment, l.weight, l.rate,
			l.pickup_date, l.delivery_date, l.status, l.trucker_id, l.created_at, l.updated_at
		FROM loads l
		JOIN saved_loads s ON s.load_id = l.id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected saved load repository list error: %w", err)
	}
	defer rows.Close()

	rowModels := make([]SavedLoadRowDB, 0, 8)
	for rows.Next() {
		var rowModel SavedLoadRowDB
		err := rows.Scan(
			&rowModel.ID,
			&rowModel.ShipperID,
			&rowModel.Origin,
			&rowModel.Destination,
			&rowModel.Cargo,
			&rowModel.Equipment,
			&rowModel.Weight,
			&rowModel.Rate,
			&rowModel.PickupDate,
			&rowModel.DeliveryDate,
			&rowModel.Status,
			&rowModel.TruckerID,
			&rowModel.CreatedAt,
			&rowModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected saved load repository list error: %w", err)
		}
		rowModels = append(rowModels, rowModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected saved load repository list error: %w", err)
	}

	return ToDomainLoadList(rowModels), nil
}
