package readstore

import (
	"context"
	"math"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/converter"
	"hotel-booking-core/internal/infra/pgquery"
	"hotel-booking-core/internal/pkg/pgconv"
)

type ReservationViewQueries interface {
	GetReservation(ctx context.Context, db pgquery.DBTX, src pgquery.Source, id int64) (pgquery.Reservation, error)
	ListReservations(ctx context.Context, db pgquery.DBTX, src pgquery.Source, arg pgquery.ListReservationsParams) ([]pgquery.Reservation, error)
	CountReservations(ctx context.Context, db pgquery.DBTX, src pgquery.Source) (int64, error)
	ListReservationsEndingAfter(ctx context.Context, db pgquery.DBTX, src pgquery.Source, arg pgquery.ListReservationsEndingAfterParams) ([]pgquery.Reservation, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      pgquery.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db pgquery.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByKey(ctx context.Context, key booking.CompositeKey) (booking.Reservation, error) {
	src, err := converter.SourceFor(key.Origin)
	if err != nil {
		return booking.Reservation{}, err
	}

	row, err := r.queries.GetReservation(ctx, r.db, src, key.LocalID)
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

func (r *ReservationReadStore) ListPage(ctx context.Context, origin booking.Origin, skip, limit int) ([]booking.Reservation, int, error) {
	src, err := converter.SourceFor(origin)
	if err != nil {
		return nil, 0, err
	}

	// OFFSET is an int4 parameter.
	skip = min(max(skip, 0), math.MaxInt32)
	params := pgquery.ListReservationsParams{
		Skip:  int32(skip),  // #nosec G115 -- clamped above
		Limit: int32(limit), // #nosec G115 -- capped by the caller's page size
	}
	rows, err := r.queries.ListReservations(ctx, r.db, src, params)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list "+origin.Name()+" reservations", err)
	}

	total, err := r.queries.CountReservations(ctx, r.db, src)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count "+origin.Name()+" reservations", err)
	}

	items, err := converter.ReservationsFromRows(origin, rows)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to decode reservations", err)
	}
	return items, int(total), nil
}

func (r *ReservationReadStore) EndingAfter(ctx context.Context, after time.Time) ([]booking.Reservation, error) {
	params := pgquery.ListReservationsEndingAfterParams{After: pgconv.DateToPgtype(after)}

	var all []booking.Reservation
	for _, origin := range []booking.Origin{booking.OriginRegular, booking.OriginPackage} {
		src, _ := converter.SourceFor(origin)
		rows, err := r.queries.ListReservationsEndingAfter(ctx, r.db, src, params)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list reservations ending after date", err)
		}
		batch, err := converter.ReservationsFromRows(origin, rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode reservations", err)
		}
		all = append(all, batch...)
	}
	return all, nil
}
