//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=saved_loads_get_test
package saved_loads_get

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
	ListSaved(ctx context.Context, actor entities.Principal) ([]entities.Load, error)
}
