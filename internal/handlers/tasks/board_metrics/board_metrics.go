package board_metrics

import (
	"context"
	"time"

	"loadboard/internal/entities"
	"loadboard/pkg/logger"
)

type Service interface {
	BoardStats(ctx context.Context) (*entities.BoardStats, error)
}

// BoardMetrics периодически снимает агрегаты доски и выставляет их
// в Prometheus-гейджи.
type BoardMetrics struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewBoardMetrics(log logger.Logger, service Service, interval time.Duration) *BoardMetrics {
	return &BoardMetrics{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (b *BoardMetrics) TTL() time.Duration {
	return b.interval
}

func (b *BoardMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, b.interval)
	defer cancel()

	stats, err := b.service.BoardStats(ctxWithTimeout)
	if err != nil {
		return err
	}

	BoardUsersTotal.Set(float64(stats.Users))
	BoardLoadsTotal.Set(float64(stats.Loads))
	BoardOpenLoads.Set(float64(stats.OpenLoads))
	BoardBidsTotal.Set(float64(stats.Bids))
	BoardPendingBids.Set(float64(stats.PendingBids))

	return nil
}

func (b *BoardMetrics) Info() string {
	return "board metrics"
}
