//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"hotel-booking-core/internal/domain/booking"
	reqdto "hotel-booking-core/internal/handler/dto/request"
	"hotel-booking-core/internal/usecase/queries"
)

func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type ReservationBuilder struct {
	Origin      booking.Origin
	LocalID     int64
	Kind        booking.Kind
	PackageName string
	GuestName   string
	Mobile      string
	Email       string
	CheckIn     time.Time
	CheckOut    time.Time
	Adults      int
	Children    int
	RoomIDs     []int64
	Status      string
	Documents   booking.Documents
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	created := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		Origin:    booking.OriginRegular,
		LocalID:   1,
		Kind:      booking.KindRoomType,
		GuestName: "Hanako Suzuki",
		Mobile:    "+81-90-0000-0000",
		Email:     "hanako@example.com",
		CheckIn:   Date(2024, 6, 1),
		CheckOut:  Date(2024, 6, 5),
		Adults:    2,
		Children:  0,
		RoomIDs:   []int64{1},
		Status:    "Booked",
		Version:   1,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithKey(origin booking.Origin, localID int64) *ReservationBuilder {
	r.Origin = origin
	r.LocalID = localID
	return r
}

func (r *ReservationBuilder) WithStay(checkIn, checkOut time.Time) *ReservationBuilder {
	r.CheckIn = checkIn
	r.CheckOut = checkOut
	return r
}

func (r *ReservationBuilder) WithRooms(ids ...int64) *ReservationBuilder {
	r.RoomIDs = ids
	return r
}

func (r *ReservationBuilder) WithStatus(raw string) *ReservationBuilder {
	r.Status = raw
	return r
}

func (r *ReservationBuilder) BuildDomain() booking.Reservation {
	refs := make([]booking.RoomRef, len(r.RoomIDs))
	for i, id := range r.RoomIDs {
		refs[i] = booking.RoomRef{RoomID: id, Number: fmt.Sprintf("%d", 100+id), Type: "Deluxe"}
	}
	return booking.Reservation{
		Key:         booking.CompositeKey{Origin: r.Origin, LocalID: r.LocalID},
		Kind:        r.Kind,
		PackageName: r.PackageName,
		Guest:       booking.Guest{Name: r.GuestName, Mobile: r.Mobile, Email: r.Email},
		Stay: booking.Stay{
			Interval: booking.Interval{CheckIn: r.CheckIn, CheckOut: r.CheckOut},
			Adults:   r.Adults,
			Children: r.Children,
		},
		Rooms:     refs,
		RawStatus: r.Status,
		Documents: r.Documents,
		Version:   r.Version,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *ReservationBuilder) BuildCreateSpec() booking.CreateSpec {
	return booking.CreateSpec{
		Origin:      r.Origin,
		Kind:        r.Kind,
		PackageName: r.PackageName,
		Guest:       booking.Guest{Name: r.GuestName, Mobile: r.Mobile, Email: r.Email},
		Stay: booking.Stay{
			Interval: booking.Interval{CheckIn: r.CheckIn, CheckOut: r.CheckOut},
			Adults:   r.Adults,
			Children: r.Children,
		},
		RoomIDs: r.RoomIDs,
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Origin:      r.Origin.Name(),
		Kind:        string(r.Kind),
		PackageName: r.PackageName,
		Guest:       reqdto.GuestRequest{Name: r.GuestName, Mobile: r.Mobile, Email: r.Email},
		CheckIn:     r.CheckIn.Format(time.DateOnly),
		CheckOut:    r.CheckOut.Format(time.DateOnly),
		Adults:      r.Adults,
		Children:    r.Children,
		RoomIDs:     r.RoomIDs,
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return queries.NewReservationView(r.BuildDomain())
}
