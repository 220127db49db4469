//go:build unit

package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking-core/internal/infra/pgquery"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/internal/usecase/shared"
	"hotel-booking-core/internal/worker"
	"hotel-booking-core/tests/common/fake"
	workermock "hotel-booking-core/tests/mock/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OutboxRelayTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	uow       *fake.UnitOfWork
	publisher *workermock.MockPublisher
	clock     *clock.MockClock
	relay     *worker.OutboxRelay
}

func (s *OutboxRelayTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.uow = fake.NewUnitOfWork()
	s.publisher = workermock.NewMockPublisher(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.relay = worker.NewOutboxRelay(s.uow, s.publisher, s.clock, config.OutboxConfig{
		PollInterval: 10 * time.Millisecond,
		BatchSize:    10,
		MaxAttempts:  2,
	}, nil)
}

func (s *OutboxRelayTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOutboxRelaySuite(t *testing.T) {
	suite.Run(t, new(OutboxRelayTestSuite))
}

func (s *OutboxRelayTestSuite) appendEvents(displayIDs ...string) []shared.OutboxEvent {
	events := make([]shared.OutboxEvent, len(displayIDs))
	for i, id := range displayIDs {
		events[i] = shared.OutboxEvent{
			ID:        uuid.New(),
			Type:      shared.EventBookingCreated,
			DisplayID: id,
			Payload:   []byte(`{}`),
			CreatedAt: s.clock.Now(),
		}
	}
	err := s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, e := range events {
			if err := tx.Events().Append(ctx, tx.DB(), e); err != nil {
				return err
			}
		}
		return nil
	})
	s.Require().NoError(err)
	return events
}

func (s *OutboxRelayTestSuite) TestRelayOnce_PublishesAll() {
	events := s.appendEvents("BK-000001", "PK-000001")
	gomock.InOrder(
		s.publisher.EXPECT().Publish(gomock.Any(), events[0]).Return(nil),
		s.publisher.EXPECT().Publish(gomock.Any(), events[1]).Return(nil),
	)

	n, err := s.relay.RelayOnce(s.ctx)

	s.Require().NoError(err)
	s.Equal(2, n)
	for _, e := range s.uow.Events() {
		s.Equal(pgquery.EventStatusPublished, e.Status)
		s.Equal(1, e.Attempts)
		s.Equal(s.clock.Now(), e.PublishedAt)
	}
}

func (s *OutboxRelayTestSuite) TestRelayOnce_StopsAtFirstFailure() {
	events := s.appendEvents("BK-000001", "BK-000002", "BK-000003")
	gomock.InOrder(
		s.publisher.EXPECT().Publish(gomock.Any(), events[0]).Return(nil),
		s.publisher.EXPECT().Publish(gomock.Any(), events[1]).Return(errors.New("broker not available")),
	)

	n, err := s.relay.RelayOnce(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, n)
	stored := s.uow.Events()
	s.Equal(pgquery.EventStatusPublished, stored[0].Status)
	s.Equal(pgquery.EventStatusPending, stored[1].Status)
	s.Equal(1, stored[1].Attempts)
	s.Equal("broker not available", stored[1].LastError)
	s.Equal(pgquery.EventStatusPending, stored[2].Status)
	s.Zero(stored[2].Attempts)
}

func (s *OutboxRelayTestSuite) TestRelayOnce_GivesUpAfterMaxAttempts() {
	s.appendEvents("BK-000001")
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker not available")).Times(2)

	for range 3 {
		_, err := s.relay.RelayOnce(s.ctx)
		s.Require().NoError(err)
	}

	stored := s.uow.Events()
	s.Equal(pgquery.EventStatusFailed, stored[0].Status)
	s.Equal(2, stored[0].Attempts)
}

func (s *OutboxRelayTestSuite) TestStartStop() {
	s.appendEvents("BK-000001")
	published := make(chan struct{})
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, ...shared.OutboxEvent) error {
			close(published)
			return nil
		})

	s.relay.Start(s.ctx)
	select {
	case <-published:
	case <-time.After(2 * time.Second):
		s.Fail("relay did not publish")
	}
	s.relay.Stop()

	s.Eventually(func() bool {
		return s.uow.Events()[0].Status == pgquery.EventStatusPublished
	}, time.Second, 10*time.Millisecond)
}
