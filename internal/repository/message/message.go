package message

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"loadboard/internal/entities"
	"loadboard/internal/repository"
	"loadboard/internal/service/load"
)

const messageColumns = `id, load_id, sender_id, recipient_id, body, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, messageEntity entities.Message) (*entities.Message, error) {
	query := `INSERT INTO messages (load_id, sender_id, recipient_id, body)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + messageColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		messageEntity.LoadID,
		messageEntity.SenderID,
		messageEntity.RecipientID,
		messageEntity.Body,
	)

	messageModel, err := scanMessage(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, load.ErrLoadNotFound
		}
		return nil, fmt.Errorf("unexpected message repository create error: %w", err)
	}

	return ToDomain(messageModel), nil
}

func (r *Repository) ListByLoad(ctx context.Context, loadID int64) ([]entities.Message, error) {
	query := `SELECT ` + messageColumns + `
		FROM messages
		WHERE load_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.querier.Query(ctx, query, loadID)
	if err != nil {
		return nil, fmt.Errorf("unexpected message repository list error: %w", err)
	}
	defer rows.Close()

	messageModels := make([]MessageDB, 0, 8)
	for rows.Next() {
		messageModel, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected message repository list error: %w", err)
		}
		messageModels = append(messageModels, *messageModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected message repository list error: %w", err)
	}

	return ToDomainList(messageModels), nil
}

func scanMessage(row pgx.Row) (*MessageDB, error) {
	var messageModel MessageDB
	err := row.Scan(
		&messageModel.ID,
		&messageModel.LoadID,
		&messageModel.SenderID,
		&messageModel.RecipientID,
		&messageModel.Body,
		&messageModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &messageModel, nil
}
