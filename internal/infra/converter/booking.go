package converter

import (
	"encoding/json"
	"fmt"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/infra/pgquery"
	"hotel-booking-core/internal/pkg/pgconv"
)

func SourceFor(origin booking.Origin) (pgquery.Source, error) {
	switch origin {
	case booking.OriginRegular:
		return pgquery.RegularSource, nil
	case booking.OriginPackage:
		return pgquery.PackageSource, nil
	default:
		return pgquery.Source{}, fmt.Errorf("%w: %q", booking.ErrInvalidOrigin, origin)
	}
}

// RoomFromRow trusts the row; the table constraints already hold the invariants.
func RoomFromRow(row pgquery.Room) room.Room {
	return room.Room{
		ID:            row.ID,
		Number:        row.Number,
		Type:          row.Type,
		AdultCapacity: int(row.AdultCapacity),
		ChildCapacity: int(row.ChildCapacity),
		Price:         room.NewMoney(row.PriceCents),
		Status:        room.ParseStatus(row.Status),
	}
}

func RoomsFromRows(rows []pgquery.Room) []room.Room {
	out := make([]room.Room, len(rows))
	for i, row := range rows {
		out[i] = RoomFromRow(row)
	}
	return out
}

func ReservationFromRow(origin booking.Origin, row pgquery.Reservation) (booking.Reservation, error) {
	var raw []booking.RawRoomRef
	if len(row.Rooms) > 0 {
		if err := json.Unmarshal(row.Rooms, &raw); err != nil {
			return booking.Reservation{}, fmt.Errorf("decode rooms of %s_%d: %w", origin, row.ID, err)
		}
	}

	return booking.Reservation{
		Key:         booking.CompositeKey{Origin: origin, LocalID: row.ID},
		Kind:        booking.Kind(row.Kind),
		PackageName: row.PackageName,
		Guest: booking.Guest{
			Name:   row.GuestName,
			Mobile: row.GuestMobile,
			Email:  row.GuestEmail,
		},
		Stay: booking.Stay{
			Interval: booking.Interval{
				CheckIn:  pgconv.DateFromPgtype(row.CheckIn),
				CheckOut: pgconv.DateFromPgtype(row.CheckOut),
			},
			Adults:   int(row.Adults),
			Children: int(row.Children),
		},
		Rooms:     booking.ResolveRoomRefs(raw),
		RawStatus: row.Status,
		Documents: booking.Documents{
			IdentityDocument: row.IdentityDocument,
			RegistrationForm: row.RegistrationForm,
		},
		Version:   row.Version,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func ReservationsFromRows(origin booking.Origin, rows []pgquery.Reservation) ([]booking.Reservation, error) {
	out := make([]booking.Reservation, 0, len(rows))
	for _, row := range rows {
		r, err := ReservationFromRow(origin, row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func ReservationToInsertParams(r booking.Reservation) pgquery.InsertReservationParams {
	return pgquery.InsertReservationParams{
		Kind:             string(r.Kind),
		PackageName:      r.PackageName,
		GuestName:        r.Guest.Name,
		GuestMobile:      r.Guest.Mobile,
		GuestEmail:       r.Guest.Email,
		CheckIn:          pgconv.DateToPgtype(r.Stay.CheckIn),
		CheckOut:         pgconv.DateToPgtype(r.Stay.CheckOut),
		Adults:           int32(r.Stay.Adults),   // #nosec G115 -- guest counts are small
		Children:         int32(r.Stay.Children), // #nosec G115 -- guest counts are small
		Status:           r.RawStatus,
		IdentityDocument: r.Documents.IdentityDocument,
		RegistrationForm: r.Documents.RegistrationForm,
		CreatedAt:        pgconv.TimeToPgtype(r.CreatedAt),
		UpdatedAt:        pgconv.TimeToPgtype(r.UpdatedAt),
	}
}

// ReservationToUpdateParams targets the version r was read at.
func ReservationToUpdateParams(r booking.Reservation) pgquery.UpdateReservationParams {
	return pgquery.UpdateReservationParams{
		ID:               r.Key.LocalID,
		Version:          r.Version,
		CheckIn:          pgconv.DateToPgtype(r.Stay.CheckIn),
		CheckOut:         pgconv.DateToPgtype(r.Stay.CheckOut),
		Status:           r.RawStatus,
		IdentityDocument: r.Documents.IdentityDocument,
		RegistrationForm: r.Documents.RegistrationForm,
		UpdatedAt:        pgconv.TimeToPgtype(r.UpdatedAt),
	}
}
