package load_events

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/IBM/sarama"
	"loadboard/internal/entities"
	"loadboard/pkg/logger"
)

// LoadEventGateway публикует события жизненного цикла груза в Kafka.
// Публикация best-effort: переход уже закоммичен, поэтому ошибки шины
// логируются и считаются, но наверх не возвращаются.
type LoadEventGateway struct {
	log      gatewayLogger
	producer producer
	topic    string
}

func New(log gatewayLogger, producer producer, topic string) *LoadEventGateway {
	gatewayLog := log.With(
		logger.NewField("gateway", "load_events"),
		logger.NewField("topic", topic),
	)

	return &LoadEventGateway{
		log:      gatewayLog,
		producer: producer,
		topic:    topic,
	}
}

func (g *LoadEventGateway) Publish(_ context.Context, event entities.LoadEvent) {
	status := event.Status.String()

	value, err := json.Marshal(toPayload(event))
	if err != nil {
		LoadEventsPublishErrorsTotal.WithLabelValues(status).Inc()
		g.log.With(
			logger.NewField("load_id", event.LoadID),
			logger.NewField("status", status),
			logger.NewField("error", err),
		).Error("failed to marshal load event")
		return
	}

	// Ключ = id груза, чтобы события одного груза шли в один partition по порядку
	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.LoadID, 10)),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := g.producer.SendMessage(msg)
	if err != nil {
		LoadEventsPublishErrorsTotal.WithLabelValues(status).Inc()
		g.log.With(
			logger.NewField("load_id", event.LoadID),
			logger.NewField("status", status),
			logger.NewField("error", err),
		).Error("failed to publish load event")
		return
	}

	LoadEventsPublishedTotal.WithLabelValues(status).Inc()
	g.log.With(
		logger.NewField("load_id", event.LoadID),
		logger.NewField("status", status),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("load event published")
}
