package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertBookingEvent = `INSERT INTO booking_events (id, event_type, booking_key, display_id, payload, status, created_at)
VALUES ($1, $2, $3, $4, $5, 'pending', $6)`

type InsertBookingEventParams struct {
	ID         uuid.UUID
	EventType  string
	BookingKey string
	DisplayID  string
	Payload    []byte
	CreatedAt  pgtype.Timestamptz
}

func (q *Queries) InsertBookingEvent(ctx context.Context, db DBTX, arg InsertBookingEventParams) error {
	_, err := db.Exec(ctx, insertBookingEvent,
		arg.ID,
		arg.EventType,
		arg.BookingKey,
		arg.DisplayID,
		arg.Payload,
		arg.CreatedAt,
	)
	return err
}

// SKIP LOCKED lets several relays drain the outbox without double publishing.
const listPendingBookingEvents = `SELECT id, event_type, booking_key, display_id, payload, status, attempts, last_error, created_at, published_at
FROM booking_events
WHERE status = 'pending'
ORDER BY created_at, id
LIMIT $1
FOR UPDATE SKIP LOCKED`

func (q *Queries) ListPendingBookingEvents(ctx context.Context, db DBTX, limit int32) ([]BookingEvent, error) {
	rows, err := db.Query(ctx, listPendingBookingEvents, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (BookingEvent, error) {
		var e BookingEvent
		err := row.Scan(
			&e.ID,
			&e.EventType,
			&e.BookingKey,
			&e.DisplayID,
			&e.Payload,
			&e.Status,
			&e.Attempts,
			&e.LastError,
			&e.CreatedAt,
			&e.PublishedAt,
		)
		return e, err
	})
}

const markBookingEventPublished = `UPDATE booking_events
SET status = 'published', published_at = $2, attempts = attempts + 1, last_error = NULL
WHERE id = $1`

func (q *Queries) MarkBookingEventPublished(ctx context.Context, db DBTX, id uuid.UUID, at pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, markBookingEventPublished, id, at)
	return err
}

const markBookingEventFailed = `UPDATE booking_events
SET attempts = attempts + 1,
    last_error = $2,
    status = CASE WHEN attempts + 1 >= $3 THEN 'failed' ELSE 'pending' END
WHERE id = $1`

type MarkBookingEventFailedParams struct {
	ID          uuid.UUID
	LastError   pgtype.Text
	MaxAttempts int32
}

func (q *Queries) MarkBookingEventFailed(ctx context.Context, db DBTX, arg MarkBookingEventFailedParams) error {
	_, err := db.Exec(ctx, markBookingEventFailed, arg.ID, arg.LastError, arg.MaxAttempts)
	return err
}
