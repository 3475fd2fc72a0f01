//go:build unit

package kafka

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/fulfillment"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProducer_PublishDropsWhenBufferFull(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"}, "outcomes", 1, discardLogger())

	assert.True(t, p.Publish([]byte("k1"), []byte("v1")))
	assert.False(t, p.Publish([]byte("k2"), []byte("v2")))
}

func TestProducer_CloseIsIdempotent(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"}, "outcomes", 1, discardLogger())

	assert.NotPanics(t, func() {
		p.Close()
		p.Close()
	})
}

func TestProducer_PublishAfterCloseDrops(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"}, "outcomes", 4, discardLogger())
	p.Close()

	assert.NotPanics(t, func() {
		assert.False(t, p.Publish([]byte("k1"), []byte("v1")))
	})
	assert.Empty(t, p.inbox)
}

func TestOutcomePublisher_AfterCloseDoesNotPanic(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"}, "outcomes", 4, discardLogger())
	pub := NewOutcomePublisher(p, discardLogger())
	p.Close()

	assert.NotPanics(t, func() {
		pub.PublishOutcome(context.Background(), commands.OutcomeRecord{
			EventID:   "evt_late",
			SessionID: "cs_late",
			Outcome:   fulfillment.OutcomeFulfilled,
			At:        time.Now(),
		})
	})
}

func TestOutcomePublisher_KeysBySession(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"}, "outcomes", 4, discardLogger())
	pub := NewOutcomePublisher(p, discardLogger())

	at := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	pub.PublishOutcome(context.Background(), commands.OutcomeRecord{
		EventID:   "evt_1",
		SessionID: "cs_1",
		Outcome:   fulfillment.OutcomeFulfilled,
		At:        at,
	})

	require.Len(t, p.inbox, 1)
	msg := <-p.inbox
	assert.Equal(t, "cs_1", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "fulfillment.fulfilled", string(msg.Headers[0].Value))

	var rec commands.OutcomeRecord
	require.NoError(t, json.Unmarshal(msg.Value, &rec))
	assert.Equal(t, "evt_1", rec.EventID)
	assert.Equal(t, fulfillment.OutcomeFulfilled, rec.Outcome)
	assert.True(t, at.Equal(rec.At))
}
