package repository

import (
	"context"
	"time"

	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/pgquery"
	"hotel-booking-core/internal/pkg/pgconv"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventWriteQueries interface {
	InsertBookingEvent(ctx context.Context, db pgquery.DBTX, arg pgquery.InsertBookingEventParams) error
	ListPendingBookingEvents(ctx context.Context, db pgquery.DBTX, limit int32) ([]pgquery.BookingEvent, error)
	MarkBookingEventPublished(ctx context.Context, db pgquery.DBTX, id uuid.UUID, at pgtype.Timestamptz) error
	MarkBookingEventFailed(ctx context.Context, db pgquery.DBTX, arg pgquery.MarkBookingEventFailedParams) error
}

type EventRepository struct {
	queries EventWriteQueries
}

func NewEventRepository(queries EventWriteQueries) *EventRepository {
	return &EventRepository{queries: queries}
}

func (r *EventRepository) Append(ctx context.Context, db pgquery.DBTX, e shared.OutboxEvent) error {
	params := pgquery.InsertBookingEventParams{
		ID:         e.ID,
		EventType:  string(e.Type),
		BookingKey: e.Key,
		DisplayID:  e.DisplayID,
		Payload:    e.Payload,
		CreatedAt:  pgconv.TimeToPgtype(e.CreatedAt),
	}

	if err := r.queries.InsertBookingEvent(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to append booking event", err)
	}
	return nil
}

func (r *EventRepository) Pending(ctx context.Context, db pgquery.DBTX, limit int) ([]shared.OutboxEvent, error) {
	rows, err := r.queries.ListPendingBookingEvents(ctx, db, int32(limit)) // #nosec G115 -- batch size is config bounded
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending booking events", err)
	}

	events := make([]shared.OutboxEvent, len(rows))
	for i, row := range rows {
		events[i] = shared.OutboxEvent{
			ID:        row.ID,
			Type:      shared.EventType(row.EventType),
			Key:       row.BookingKey,
			DisplayID: row.DisplayID,
			Payload:   row.Payload,
			Attempts:  int(row.Attempts),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return events, nil
}

func (r *EventRepository) MarkPublished(ctx context.Context, db pgquery.DBTX, id uuid.UUID, at time.Time) error {
	if err := r.queries.MarkBookingEventPublished(ctx, db, id, pgconv.TimeToPgtype(at)); err != nil {
		return infra.WrapRepoErr("failed to mark booking event published", err)
	}
	return nil
}

func (r *EventRepository) MarkFailed(ctx context.Context, db pgquery.DBTX, id uuid.UUID, cause error, maxAttempts int) error {
	var lastError *string
	if cause != nil {
		msg := cause.Error()
		lastError = &msg
	}

	params := pgquery.MarkBookingEventFailedParams{
		ID:          id,
		LastError:   pgconv.StringPtrToPgtype(lastError),
		MaxAttempts: int32(maxAttempts), // #nosec G115 -- config bounded
	}
	if err := r.queries.MarkBookingEventFailed(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to record booking event failure", err)
	}
	return nil
}
