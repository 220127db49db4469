package pgquery

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Room struct {
	ID            int64
	Number        string
	Type          string
	AdultCapacity int32
	ChildCapacity int32
	PriceCents    int64
	Status        string
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

// Reservation is a row of either reservation table. Rooms holds the
// json_agg of the linked rooms in the table's own shape.
type Reservation struct {
	ID               int64
	Kind             string
	PackageName      string
	GuestName        string
	GuestMobile      string
	GuestEmail       string
	CheckIn          pgtype.Date
	CheckOut         pgtype.Date
	Adults           int32
	Children         int32
	Status           string
	IdentityDocument string
	RegistrationForm string
	Version          int64
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
	Rooms            []byte
}

type BookingEvent struct {
	ID          uuid.UUID
	EventType   string
	BookingKey  string
	DisplayID   string
	Payload     []byte
	Status      string
	Attempts    int32
	LastError   pgtype.Text
	CreatedAt   pgtype.Timestamptz
	PublishedAt pgtype.Timestamptz
}

const (
	EventStatusPending   = "pending"
	EventStatusPublished = "published"
	EventStatusFailed    = "failed"
)
