package pgquery

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const roomColumns = `id, number, type, adult_capacity, child_capacity, price_cents, status, created_at, updated_at`

func scanRoom(row pgx.Row) (Room, error) {
	var r Room
	err := row.Scan(
		&r.ID,
		&r.Number,
		&r.Type,
		&r.AdultCapacity,
		&r.ChildCapacity,
		&r.PriceCents,
		&r.Status,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

func collectRooms(rows pgx.Rows, err error) ([]Room, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Room, error) {
		return scanRoom(row)
	})
}

const listRooms = `SELECT ` + roomColumns + ` FROM rooms ORDER BY id`

func (q *Queries) ListRooms(ctx context.Context, db DBTX) ([]Room, error) {
	return collectRooms(db.Query(ctx, listRooms))
}

// Row locks are taken in id order so concurrent creates cannot deadlock on each other.
const lockRooms = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ANY($1::bigint[]) ORDER BY id FOR UPDATE`

func (q *Queries) LockRooms(ctx context.Context, db DBTX, ids []int64) ([]Room, error) {
	return collectRooms(db.Query(ctx, lockRooms, ids))
}

const lockAllRooms = `SELECT ` + roomColumns + ` FROM rooms ORDER BY id FOR UPDATE`

func (q *Queries) LockAllRooms(ctx context.Context, db DBTX) ([]Room, error) {
	return collectRooms(db.Query(ctx, lockAllRooms))
}

const insertRoom = `INSERT INTO rooms (number, type, adult_capacity, child_capacity, price_cents, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

type InsertRoomParams struct {
	Number        string
	Type          string
	AdultCapacity int32
	ChildCapacity int32
	PriceCents    int64
	Status        string
}

func (q *Queries) InsertRoom(ctx context.Context, db DBTX, arg InsertRoomParams) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, insertRoom,
		arg.Number,
		arg.Type,
		arg.AdultCapacity,
		arg.ChildCapacity,
		arg.PriceCents,
		arg.Status,
	).Scan(&id)
	return id, err
}
