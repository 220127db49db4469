package readstore

import (
	"context"

	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/converter"
	"hotel-booking-core/internal/infra/pgquery"
)

type RoomViewQueries interface {
	ListRooms(ctx context.Context, db pgquery.DBTX) ([]pgquery.Room, error)
}

type RoomReadStore struct {
	queries RoomViewQueries
	db      pgquery.DBTX
}

func NewRoomReadStore(queries RoomViewQueries, db pgquery.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) List(ctx context.Context) ([]room.Room, error) {
	rows, err := r.queries.ListRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	return converter.RoomsFromRows(rows), nil
}
