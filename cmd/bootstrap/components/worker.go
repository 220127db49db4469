package components

import (
	"context"
	"log/slog"

	"hotel-booking-core/internal/infra/messaging"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/internal/usecase/shared"
	"hotel-booking-core/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		fx.Annotate(
			NewKafkaPublisher,
			fx.As(new(worker.Publisher)),
		),
		NewOutboxRelay,
	),
	fx.Invoke(startOutboxRelay),
)

func NewKafkaPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *messaging.KafkaPublisher {
	p := messaging.NewKafkaPublisher(cfg.Kafka, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher worker.Publisher, clk clock.Clock, cfg config.Config, logger *slog.Logger) *worker.OutboxRelay {
	return worker.NewOutboxRelay(uow, publisher, clk, cfg.Outbox, logger)
}

// Events stay in the outbox until Kafka is enabled; nothing is lost while it is off.
func startOutboxRelay(lc fx.Lifecycle, cfg config.Config, relay *worker.OutboxRelay, logger *slog.Logger) {
	if !cfg.Kafka.Enabled {
		logger.Info("outbox relay disabled", "reason", "KAFKA_ENABLED=false")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			relay.Stop()
			return nil
		},
	})
}
