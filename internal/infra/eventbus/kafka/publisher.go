package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

const headerEventType = "event_type"

// OutcomePublisher writes reconciliation outcomes keyed by session id, so all
// records for one order land on the same partition.
type OutcomePublisher struct {
	producer *Producer
	logger   *slog.Logger
}

func NewOutcomePublisher(producer *Producer, logger *slog.Logger) *OutcomePublisher {
	return &OutcomePublisher{producer: producer, logger: logger}
}

func (p *OutcomePublisher) PublishOutcome(_ context.Context, rec commands.OutcomeRecord) {
	b, err := json.Marshal(rec)
	if err != nil {
		p.logger.Warn("outcome record encode failed", "session_id", rec.SessionID, "error", err.Error())
		return
	}
	p.producer.Publish([]byte(rec.SessionID), b, kafka.Header{Key: headerEventType, Value: []byte("fulfillment." + string(rec.Outcome))})
}

// NopOutcomePublisher is used when no brokers are configured.
type NopOutcomePublisher struct{}

func (NopOutcomePublisher) PublishOutcome(context.Context, commands.OutcomeRecord) {}
