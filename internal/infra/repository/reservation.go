package repository

import (
	"context"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/converter"
	"hotel-booking-core/internal/infra/pgquery"
	"hotel-booking-core/internal/pkg/pgconv"
)

type ReservationWriteQueries interface {
	GetReservation(ctx context.Context, db pgquery.DBTX, src pgquery.Source, id int64) (pgquery.Reservation, error)
	ListReservationsEndingAfter(ctx context.Context, db pgquery.DBTX, src pgquery.Source, arg pgquery.ListReservationsEndingAfterParams) ([]pgquery.Reservation, error)
	InsertReservation(ctx context.Context, db pgquery.DBTX, src pgquery.Source, arg pgquery.InsertReservationParams) (int64, error)
	InsertReservationRooms(ctx context.Context, db pgquery.DBTX, src pgquery.Source, reservationID int64, roomIDs []int64) error
	UpdateReservation(ctx context.Context, db pgquery.DBTX, src pgquery.Source, arg pgquery.UpdateReservationParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) FindByKey(ctx context.Context, db pgquery.DBTX, key booking.CompositeKey) (booking.Reservation, error) {
	src, err := converter.SourceFor(key.Origin)
	if err != nil {
		return booking.Reservation{}, err
	}

	row, err := r.queries.GetReservation(ctx, db, src, key.LocalID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return booking.Reservation{}, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return booking.Reservation{}, infra.WrapRepoErr("failed to find reservation by key", err)
	}

	res, err := converter.ReservationFromRow(key.Origin, row)
	if err != nil {
		return booking.Reservation{}, infra.WrapRepoErr("failed to decode reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) EndingAfter(ctx context.Context, db pgquery.DBTX, after time.Time, roomIDs []int64) ([]booking.Reservation, error) {
	params := pgquery.ListReservationsEndingAfterParams{
		After:   pgconv.DateToPgtype(after),
		RoomIDs: roomIDs,
	}

	var all []booking.Reservation
	for _, origin := range []booking.Origin{booking.OriginRegular, booking.OriginPackage} {
		src, _ := converter.SourceFor(origin)
		rows, err := r.queries.ListReservationsEndingAfter(ctx, db, src, params)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list reservations touching rooms", err)
		}
		batch, err := converter.ReservationsFromRows(origin, rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode reservations", err)
		}
		all = append(all, batch...)
	}
	return all, nil
}

func (r *ReservationRepository) Insert(ctx context.Context, db pgquery.DBTX, res booking.Reservation) (booking.CompositeKey, error) {
	src, err := converter.SourceFor(res.Key.Origin)
	if err != nil {
		return booking.CompositeKey{}, err
	}

	id, err := r.queries.InsertReservation(ctx, db, src, converter.ReservationToInsertParams(res))
	if err != nil {
		return booking.CompositeKey{}, infra.WrapRepoErr("failed to create reservation", err)
	}

	if err := r.queries.InsertReservationRooms(ctx, db, src, id, res.RoomIDs()); err != nil {
		return booking.CompositeKey{}, infra.WrapRepoErr("failed to link reservation rooms", err)
	}

	return booking.CompositeKey{Origin: res.Key.Origin, LocalID: id}, nil
}

func (r *ReservationRepository) Update(ctx context.Context, db pgquery.DBTX, res booking.Reservation) error {
	src, err := converter.SourceFor(res.Key.Origin)
	if err != nil {
		return err
	}

	affected, err := r.queries.UpdateReservation(ctx, db, src, converter.ReservationToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindStaleVersion, "reservation "+res.Key.String()+" changed since it was read")
	}
	return nil
}
