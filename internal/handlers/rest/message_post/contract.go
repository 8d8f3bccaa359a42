//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=message_post_test
package message_post

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
	Send(ctx context.Context, actor entities.Principal, loadID, recipientID int64, body string) (*entities.Message, error)
}
