package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"
)

// Dispatcher periodically drains due notification jobs: failed inline
// sends waiting for their retry and deliveries whose lease expired.
type Dispatcher struct {
	deliveries commands.DeliveryCommands
	interval   time.Duration
	batchSize  int
	logger     *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDispatcher(deliveries commands.DeliveryCommands, interval time.Duration, batchSize int, logger *slog.Logger) *Dispatcher {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Dispatcher{
		deliveries: deliveries,
		interval:   interval,
		batchSize:  batchSize,
		logger:     logger.With("component", "delivery_dispatcher"),
	}
}

func (d *Dispatcher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.run(ctx)
	}()
	d.logger.Info("delivery dispatcher started", "interval", d.interval.String())
}

// Stop cancels the loop and waits for the in-flight batch to return.
func (d *Dispatcher) Stop(ctx context.Context) error {
	if d.cancel == nil {
		return nil
	}
	d.cancel()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		d.logger.Info("delivery dispatcher stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		// A full batch usually means more work is queued.
		for d.tick(ctx) >= d.batchSize && d.batchSize > 0 {
			if ctx.Err() != nil {
				return
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (d *Dispatcher) tick(ctx context.Context) int {
	n, err := d.deliveries.DispatchDue(ctx)
	if err != nil {
		if ctx.Err() == nil {
			d.logger.Error("delivery dispatch failed", "error", err.Error())
		}
		return 0
	}
	if n > 0 {
		d.logger.Debug("delivery batch processed", "jobs", n)
	}
	return n
}
