//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=load_put_test
package load_put

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
	UpdateTerms(ctx context.Context, actor entities.Principal, loadModifyEntity entities.LoadModify) (*entities.Load, error)
}
