package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/internal/usecase/shared"
)

type Publisher interface {
	Publish(ctx context.Context, events ...shared.OutboxEvent) error
}

// OutboxRelay moves pending booking events to the publisher. Events are claimed
// with SKIP LOCKED inside one transaction, so several relays can share a table.
type OutboxRelay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	cfg       config.OutboxConfig
	logger    *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, cfg config.OutboxConfig, logger *slog.Logger) *OutboxRelay {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 10
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OutboxRelay{uow: uow, publisher: publisher, clock: clk, cfg: cfg, logger: logger}
}

// RelayOnce publishes one batch and returns how many events were delivered.
// The batch stops at the first failed event so per-reservation order is kept.
func (r *OutboxRelay) RelayOnce(ctx context.Context) (int, error) {
	published := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		events, err := tx.Events().Pending(ctx, tx.DB(), r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, e := range events {
			if perr := r.publisher.Publish(ctx, e); perr != nil {
				r.logger.Warn("booking event publish failed",
					"event_id", e.ID.String(),
					"type", string(e.Type),
					"display_id", e.DisplayID,
					"attempt", e.Attempts+1,
					"error", perr.Error())
				return tx.Events().MarkFailed(ctx, tx.DB(), e.ID, perr, r.cfg.MaxAttempts)
			}
			if err := tx.Events().MarkPublished(ctx, tx.DB(), e.ID, r.clock.Now()); err != nil {
				return err
			}
			published++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return published, nil
}

func (r *OutboxRelay) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
	}()
	r.logger.Info("outbox relay started", "interval", r.cfg.PollInterval.String(), "batch", r.cfg.BatchSize)
}

func (r *OutboxRelay) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
	r.logger.Info("outbox relay stopped")
}

func (r *OutboxRelay) run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// drain full batches before waiting for the next tick
			for {
				n, err := r.RelayOnce(ctx)
				if err != nil {
					if ctx.Err() == nil {
						r.logger.Error("outbox relay round failed", "error", err.Error())
					}
					break
				}
				if n < r.cfg.BatchSize {
					break
				}
			}
		}
	}
}
