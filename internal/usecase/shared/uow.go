package shared

import (
	"context"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/infra/pgquery"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error
}

type Tx interface {
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Events() EventRepository
	DB() pgquery.DBTX
}

type RoomRepository interface {
	// Lock returns the rooms with the given ids, row-locked in id order. Unknown ids are skipped.
	Lock(ctx context.Context, db pgquery.DBTX, ids []int64) ([]room.Room, error)
	LockAll(ctx context.Context, db pgquery.DBTX) ([]room.Room, error)
}

type ReservationRepository interface {
	FindByKey(ctx context.Context, db pgquery.DBTX, key booking.CompositeKey) (booking.Reservation, error)
	// EndingAfter returns reservations of both origins whose check-out is after the given
	// date and that reference any of roomIDs. Status filtering is left to the domain.
	EndingAfter(ctx context.Context, db pgquery.DBTX, after time.Time, roomIDs []int64) ([]booking.Reservation, error)
	Insert(ctx context.Context, db pgquery.DBTX, r booking.Reservation) (booking.CompositeKey, error)
	// Update writes r if the stored version still equals r.Version.
	Update(ctx context.Context, db pgquery.DBTX, r booking.Reservation) error
}

type EventType string

const (
	EventBookingCreated   EventType = "booking.created"
	EventBookingCheckedIn EventType = "booking.checked_in"
	EventBookingExtended  EventType = "booking.extended"
	EventBookingCancelled EventType = "booking.cancelled"
)

type OutboxEvent struct {
	ID        uuid.UUID
	Type      EventType
	Key       string
	DisplayID string
	Payload   []byte
	Attempts  int
	CreatedAt time.Time
}

type EventRepository interface {
	Append(ctx context.Context, db pgquery.DBTX, e OutboxEvent) error
	// Pending locks up to limit unpublished events for the calling transaction.
	Pending(ctx context.Context, db pgquery.DBTX, limit int) ([]OutboxEvent, error)
	MarkPublished(ctx context.Context, db pgquery.DBTX, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, db pgquery.DBTX, id uuid.UUID, cause error, maxAttempts int) error
}
