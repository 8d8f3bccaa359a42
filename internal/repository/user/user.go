package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"loadboard/internal/entities"
	"loadboard/internal/service/user"
)

const userColumns = `id, role, name, email, company, phone, mc_number, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	userModel, err := scanUser(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}

	return ToDomain(userModel), nil
}

func (r *Repository) List(ctx context.Context) ([]entities.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC, id DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}
	defer rows.Close()

	userModels := make([]UserDB, 0, 8)
	for rows.Next() {
		userModel, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository list error: %w", err)
		}
		userModels = append(userModels, *userModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	return ToDomainList(userModels), nil
}

func scanUser(row pgx.Row) (*UserDB, error) {
	var userModel UserDB
	err := row.Scan(
		&userModel.ID,
		&userModel.Role,
		&userModel.Name,
		&userModel.Email,
		&userModel.Company,
		&userModel.Phone,
		&userModel.MCNumber,
		&userModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &userModel, nil
}
