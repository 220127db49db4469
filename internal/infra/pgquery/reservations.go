package pgquery

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Source names the table pair one reservation origin is stored in.
type Source struct {
	table     string
	roomTable string
	fkColumn  string
	roomJSON  string
}

// The two origins persist room links in different shapes; each keeps its own.
var (
	RegularSource = Source{
		table:     "bookings",
		roomTable: "booking_rooms",
		fkColumn:  "booking_id",
		roomJSON:  `json_build_object('id', r.id, 'number', r.number, 'type', r.type)`,
	}
	PackageSource = Source{
		table:     "package_bookings",
		roomTable: "package_booking_rooms",
		fkColumn:  "package_booking_id",
		roomJSON:  `json_build_object('room_id', r.id, 'room', json_build_object('id', r.id, 'number', r.number, 'type', r.type))`,
	}
)

func (s Source) Table() string {
	return s.table
}

func (s Source) selectSQL(tail string) string {
	return fmt.Sprintf(`SELECT b.id, b.kind, b.package_name, b.guest_name, b.guest_mobile, b.guest_email,
       b.check_in, b.check_out, b.adults, b.children, b.status,
       b.identity_document, b.registration_form, b.version, b.created_at, b.updated_at,
       COALESCE((SELECT json_agg(%s ORDER BY r.id)
                 FROM %s br
                 JOIN rooms r ON r.id = br.room_id
                 WHERE br.%s = b.id), '[]'::json) AS rooms
FROM %s b
%s`, s.roomJSON, s.roomTable, s.fkColumn, s.table, tail)
}

func scanReservation(row pgx.Row) (Reservation, error) {
	var r Reservation
	err := row.Scan(
		&r.ID,
		&r.Kind,
		&r.PackageName,
		&r.GuestName,
		&r.GuestMobile,
		&r.GuestEmail,
		&r.CheckIn,
		&r.CheckOut,
		&r.Adults,
		&r.Children,
		&r.Status,
		&r.IdentityDocument,
		&r.RegistrationForm,
		&r.Version,
		&r.CreatedAt,
		&r.UpdatedAt,
		&r.Rooms,
	)
	return r, err
}

func collectReservations(rows pgx.Rows, err error) ([]Reservation, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Reservation, error) {
		return scanReservation(row)
	})
}

func (q *Queries) GetReservation(ctx context.Context, db DBTX, src Source, id int64) (Reservation, error) {
	return scanReservation(db.QueryRow(ctx, src.selectSQL(`WHERE b.id = $1`), id))
}

type ListReservationsParams struct {
	Skip  int32
	Limit int32
}

// ListReservations pages newest first.
func (q *Queries) ListReservations(ctx context.Context, db DBTX, src Source, arg ListReservationsParams) ([]Reservation, error) {
	return collectReservations(db.Query(ctx, src.selectSQL(`ORDER BY b.id DESC OFFSET $1 LIMIT $2`), arg.Skip, arg.Limit))
}

func (q *Queries) CountReservations(ctx context.Context, db DBTX, src Source) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, `SELECT count(*) FROM `+src.table).Scan(&n)
	return n, err
}

type ListReservationsEndingAfterParams struct {
	After pgtype.Date
	// RoomIDs restricts to reservations linked to any of the rooms; nil means all rooms.
	RoomIDs []int64
}

// ListReservationsEndingAfter is a coarse prefilter; status and overlap are decided by the caller.
func (q *Queries) ListReservationsEndingAfter(ctx context.Context, db DBTX, src Source, arg ListReservationsEndingAfterParams) ([]Reservation, error) {
	tail := fmt.Sprintf(`WHERE b.check_out > $1
  AND ($2::bigint[] IS NULL OR EXISTS (
        SELECT 1 FROM %s x WHERE x.%s = b.id AND x.room_id = ANY($2::bigint[])))
ORDER BY b.id`, src.roomTable, src.fkColumn)
	return collectReservations(db.Query(ctx, src.selectSQL(tail), arg.After, arg.RoomIDs))
}

type InsertReservationParams struct {
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
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

func (q *Queries) InsertReservation(ctx context.Context, db DBTX, src Source, arg InsertReservationParams) (int64, error) {
	sql := `INSERT INTO ` + src.table + ` (
    kind, package_name, guest_name, guest_mobile, guest_email,
    check_in, check_out, adults, children, status,
    identity_document, registration_form, version, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 1, $13, $14)
RETURNING id`
	var id int64
	err := db.QueryRow(ctx, sql,
		arg.Kind,
		arg.PackageName,
		arg.GuestName,
		arg.GuestMobile,
		arg.GuestEmail,
		arg.CheckIn,
		arg.CheckOut,
		arg.Adults,
		arg.Children,
		arg.Status,
		arg.IdentityDocument,
		arg.RegistrationForm,
		arg.CreatedAt,
		arg.UpdatedAt,
	).Scan(&id)
	return id, err
}

func (q *Queries) InsertReservationRooms(ctx context.Context, db DBTX, src Source, reservationID int64, roomIDs []int64) error {
	sql := fmt.Sprintf(`INSERT INTO %s (%s, room_id) SELECT $1, unnest($2::bigint[])`, src.roomTable, src.fkColumn)
	_, err := db.Exec(ctx, sql, reservationID, roomIDs)
	return err
}

type UpdateReservationParams struct {
	ID               int64
	Version          int64
	CheckIn          pgtype.Date
	CheckOut         pgtype.Date
	Status           string
	IdentityDocument string
	RegistrationForm string
	UpdatedAt        pgtype.Timestamptz
}

// UpdateReservation applies only when the stored version still matches and
// returns the number of rows touched.
func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, src Source, arg UpdateReservationParams) (int64, error) {
	sql := `UPDATE ` + src.table + `
SET check_in = $3,
    check_out = $4,
    status = $5,
    identity_document = $6,
    registration_form = $7,
    updated_at = $8,
    version = version + 1
WHERE id = $1 AND version = $2`
	tag, err := db.Exec(ctx, sql,
		arg.ID,
		arg.Version,
		arg.CheckIn,
		arg.CheckOut,
		arg.Status,
		arg.IdentityDocument,
		arg.RegistrationForm,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
