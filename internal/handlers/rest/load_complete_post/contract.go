//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=load_complete_post_test
package load_complete_post

import (
	"context"

	"loadboard/internal/entities"
	"loadboard/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	MarkCompleted(ctx context.Context, actor entities.Principal, loadID int64) (*entities.Load, error)
}
