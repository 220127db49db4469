package repository

import (
	"context"

	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/converter"
	"hotel-booking-core/internal/infra/pgquery"
)

type RoomLockQueries interface {
	LockRooms(ctx context.Context, db pgquery.DBTX, ids []int64) ([]pgquery.Room, error)
	LockAllRooms(ctx context.Context, db pgquery.DBTX) ([]pgquery.Room, error)
}

type RoomRepository struct {
	queries RoomLockQueries
}

func NewRoomRepository(queries RoomLockQueries) *RoomRepository {
	return &RoomRepository{queries: queries}
}

func (r *RoomRepository) Lock(ctx context.Context, db pgquery.DBTX, ids []int64) ([]room.Room, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.queries.LockRooms(ctx, db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock rooms", err)
	}
	return converter.RoomsFromRows(rows), nil
}

func (r *RoomRepository) LockAll(ctx context.Context, db pgquery.DBTX) ([]room.Room, error) {
	rows, err := r.queries.LockAllRooms(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock all rooms", err)
	}
	return converter.RoomsFromRows(rows), nil
}
