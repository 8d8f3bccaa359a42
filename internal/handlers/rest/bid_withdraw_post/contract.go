//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bid_withdraw_post_test
package bid_withdraw_post

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
	WithdrawBid(ctx context.Context, actor entities.Principal, bidID int64) (*entities.Bid, error)
}
