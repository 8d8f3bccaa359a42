package load

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"loadboard/internal/entities"
	"loadboard/internal/service/assignment"
	"loadboard/internal/service/load"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const loadColumns = `id, shipper_id, origin, destination, cargo, equipment, weight, rate,
		pickup_date, delivery_date, status, trucker_id, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, loadModifyEntity entities.LoadModify) (*entities.Load, error) {
	loadModifyModel := FromDomainModify(&loadModifyEntity)

	query := `INSERT INTO loads (shipper_id, origin, destination, cargo, equipment, weight, rate, pickup_date, delivery_date)
		VALUES ($1, $2, $3, COALESCE($4, ''), COALESCE($5, ''), COALESCE($6, 0), $7, COALESCE($8, ''), COALESCE($9, ''))
		RETURNING ` + loadColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		loadModifyModel.ShipperID,
		loadModifyModel.Origin,
		loadModifyModel.Destination,
		loadModifyModel.Cargo,
		loadModifyModel.Equipment,
		loadModifyModel.Weight,
		loadModifyModel.Rate,
		loadModifyModel.PickupDate,
		loadModifyModel.DeliveryDate,
	)

	loadModel, err := scanLoad(row)
	if err != nil {
		return nil, fmt.Errorf("unexpected load repository create error: %w", err)
	}

	return ToDomain(loadModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Load, error) {
	query := `SELECT ` + loadColumns + ` FROM loads WHERE id = $1`

	loadModel, err := scanLoad(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, load.ErrLoadNotFound
		}
		return nil, fmt.Errorf("unexpected load repository get error: %w", err)
	}

	return ToDomain(loadModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.LoadFilter) ([]entities.Load, error) {
	builder := qb.
		Select("id", "shipper_id", "origin", "destination", "cargo", "equipment", "weight", "rate",
			"pickup_date", "delivery_date", "status", "trucker_id", "created_at", "updated_at").
		From("loads")

	// опциональные фильтры доски
	if filter.Origin != nil {
		builder = builder.Where(sq.ILike{"origin": "%" + *filter.Origin + "%"})
	}
	if filter.Destination != nil {
		builder = builder.Where(sq.ILike{"destination": "%" + *filter.Destination + "%"})
	}
	if filter.Equipment != nil {
		builder = builder.Where(sq.Eq{"equipment": *filter.Equipment})
	}
	if filter.MinRate != nil {
		builder = builder.Where(sq.GtOrEq{"rate": *filter.MinRate})
	}
	if filter.MaxWeight != nil {
		builder = builder.Where(sq.LtOrEq{"weight": *filter.MaxWeight})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.ShipperID != nil {
		builder = builder.Where(sq.Eq{"shipper_id": *filter.ShipperID})
	}
	if filter.TruckerID != nil {
		builder = builder.Where(sq.Eq{"trucker_id": *filter.TruckerID})
	}

	builder = builder.OrderBy("created_at DESC", "id DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected load repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected load repository list error: %w", err)
	}
	defer rows.Close()

	loadModels := make([]LoadDB, 0, 8)
	for rows.Next() {
		loadModel, err := scanLoad(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected load repository list error: %w", err)
		}
		loadModels = append(loadModels, *loadModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected load repository list error: %w", err)
	}

	return ToDomainList(loadModels), nil
}

func (r *Repository) UpdateTermsIfOpen(ctx context.Context, loadModifyEntity entities.LoadModify) (*entities.Load, error) {
	loadModifyModel := FromDomainModify(&loadModifyEntity)

	builder := qb.
		Update("loads")

	// опциональные поля
	if loadModifyModel.Origin != nil {
		builder = builder.Set("origin", loadModifyModel.Origin)
	}
	if loadModifyModel.Destination != nil {
		builder = builder.Set("destination", loadModifyModel.Destination)
	}
	if loadModifyModel.Cargo != nil {
		builder = builder.Set("cargo", loadModifyModel.Cargo)
	}
	if loadModifyModel.Equipment != nil {
		builder = builder.Set("equipment", loadModifyModel.Equipment)
	}
	if loadModifyModel.Weight != nil {
		builder = builder.Set("weight", loadModifyModel.Weight)
	}
	if loadModifyModel.Rate != nil {
		builder = builder.Set("rate", loadModifyModel.Rate)
	}
	if loadModifyModel.PickupDate != nil {
		builder = builder.Set("pickup_date", loadModifyModel.PickupDate)
	}
	if loadModifyModel.DeliveryDate != nil {
		builder = builder.Set("delivery_date", loadModifyModel.DeliveryDate)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": loadModifyModel.ID}).
		Where(sq.Eq{"status": entities.LoadOpen.String()}).
		Suffix("RETURNING " + loadColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected load repository update error: %w", err)
	}

	loadModel, err := scanLoad(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, load.ErrLoadNotOpen
		}
		return nil, fmt.Errorf("unexpected load repository update error: %w", err)
	}

	return ToDomain(loadModel), nil
}

// AssignIfOpen - арбитр гонки двух одновременных принятий: условие status = 'open'
// пропускает ровно одно назначение.
func (r *Repository) AssignIfOpen(ctx context.Context, loadID, truckerID int64) (*entities.Load, error) {
	query := `UPDATE loads
		SET status = 'assigned', trucker_id = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'open'
		RETURNING ` + loadColumns

	loadModel, err := scanLoad(r.querier.QueryRow(ctx, query, loadID, truckerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrLoadNotOpen
		}
		return nil, fmt.Errorf("unexpected load repository assign error: %w", err)
	}

	return ToDomain(loadModel), nil
}

func (r *Repository) TransitionStatus(ctx context.Context, loadID int64, from, to entities.LoadStatusType) (*entities.Load, error) {
	query := `UPDATE loads
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + loadColumns

	loadModel, err := scanLoad(r.querier.QueryRow(ctx, query, loadID, from.String(), to.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, transitionConflictError(from)
		}
		return nil, fmt.Errorf("unexpected load repository transition error: %w", err)
	}

	return ToDomain(loadModel), nil
}

func (r *Repository) CancelOpenOrAssigned(ctx context.Context, loadID int64) (*entities.Load, error) {
	query := `UPDATE loads
		SET status = 'cancelled', trucker_id = NULL, updated_at = NOW()
		WHERE id = $1 AND status IN ('open', 'assigned')
		RETURNING ` + loadColumns

	loadModel, err := scanLoad(r.querier.QueryRow(ctx, query, loadID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrLoadTerminal
		}
		return nil, fmt.Errorf("unexpected load repository cancel error: %w", err)
	}

	return ToDomain(loadModel), nil
}

func transitionConflictError(from entities.LoadStatusType) error {
	switch from {
	case entities.LoadAssigned:
		return assignment.ErrLoadNotAssigned
	case entities.LoadInTransit:
		return assignment.ErrLoadNotInTransit
	default:
		return assignment.ErrLoadNotOpen
	}
}

func scanLoad(row pgx.Row) (*LoadDB, error) {
	var loadModel LoadDB
	err := row.Scan(
		&loadModel.ID,
		&loadModel.ShipperID,
		&loadModel.Origin,
		&loadModel.Destination,
		&loadModel.Cargo,
		&loadModel.Equipment,
		&loadModel.Weight,
		&loadModel.Rate,
		&loadModel.PickupDate,
		&loadModel.DeliveryDate,
		&loadModel.Status,
		&loadModel.TruckerID,
		&loadModel.CreatedAt,
		&loadModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &loadModel, nil
}
