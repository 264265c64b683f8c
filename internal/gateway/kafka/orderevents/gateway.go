package orderevents

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/IBM/sarama"

	"brokerage/internal/entities"
	"brokerage/pkg/logger"
)

// Gateway публикует события смены статуса заказа в кафку.
// Fire-and-forget: ошибка публикации логируется и не отдаётся вызывающему,
// транзакция заказа не должна откатываться из-за нотификаций.
type Gateway struct {
	log      logger.Logger
	producer producer
	topic    string
}

func New(log logger.Logger, producer producer, topic string) *Gateway {
	return &Gateway{
		log:      log.With(logger.NewField("topic", topic)),
		producer: producer,
		topic:    topic,
	}
}

func (g *Gateway) PublishStatusChanged(_ context.Context, event entities.OrderStatusChangedEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		g.log.Error("failed to marshal order status event",
			logger.NewField("order_id", event.OrderID),
			logger.NewField("error", err),
		)
		EventsPublishFailedTotal.WithLabelValues(g.topic).Inc()
		return
	}

	// ключ — id заказа: события одного заказа попадают в одну партицию
	// и читаются по порядку
	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err := g.producer.SendMessage(msg); err != nil {
		g.log.Error("failed to publish order status event",
			logger.NewField("order_id", event.OrderID),
			logger.NewField("status", event.Status.String()),
			logger.NewField("error", err),
		)
		EventsPublishFailedTotal.WithLabelValues(g.topic).Inc()
		return
	}

	EventsPublishedTotal.WithLabelValues(g.topic, event.Status.String()).Inc()
}
