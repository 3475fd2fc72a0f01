package kafka

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer buffers messages in memory and writes them from a single
// goroutine. Publish never blocks the caller: a full buffer or a closed
// producer drops the message.
type Producer struct {
	w       *kafka.Writer
	inbox   chan kafka.Message
	done    chan struct{}
	closeCh chan struct{}
	closed  atomic.Bool
	once    sync.Once
	logger  *slog.Logger
}

func NewProducer(brokers []string, topic string, buf int, logger *slog.Logger) *Producer {
	if buf <= 0 {
		buf = 1
	}
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: 50 * time.Millisecond,
		},
		inbox:   make(chan kafka.Message, buf),
		done:    make(chan struct{}),
		closeCh: make(chan struct{}),
		logger:  logger,
	}
}

func (p *Producer) Start() {
	go func() {
		defer close(p.closeCh)
		for {
			select {
			case m := <-p.inbox:
				p.write(m)
			case <-p.done:
				p.drain()
				if err := p.w.Close(); err != nil {
					p.logger.Warn("kafka writer close failed", "error", err.Error())
				}
				return
			}
		}
	}()
}

// inbox is never closed; whatever is buffered at shutdown is flushed here.
func (p *Producer) drain() {
	for {
		select {
		case m := <-p.inbox:
			p.write(m)
		default:
			return
		}
	}
}

func (p *Producer) write(m kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := p.w.WriteMessages(ctx, m); err != nil {
		p.logger.Warn("kafka publish failed",
			"topic", p.w.Topic,
			"key", string(m.Key),
			"error", err.Error())
	}
}

func (p *Producer) Publish(key, value []byte, headers ...kafka.Header) bool {
	if p.closed.Load() {
		p.logger.Warn("kafka producer closed; message dropped", "key", string(key))
		return false
	}
	select {
	case p.inbox <- kafka.Message{Key: key, Value: value, Time: time.Now(), Headers: headers}:
		return true
	default:
		p.logger.Warn("kafka buffer full; message dropped", "key", string(key))
		return false
	}
}

// Close stops accepting messages; the loop flushes what is buffered and exits.
func (p *Producer) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.done)
	})
}

func (p *Producer) WaitClosed() { <-p.closeCh }
