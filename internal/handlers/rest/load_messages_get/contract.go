//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=load_messages_get_test
package load_messages_get

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
	Thread(ctx context.Context, actor entities.Principal, loadID int64) ([]entities.Message, error)
}
