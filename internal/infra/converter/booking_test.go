//go:build unit

package converter_test

import (
	"testing"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/infra/converter"
	"hotel-booking-core/internal/infra/pgquery"
	"hotel-booking-core/internal/pkg/pgconv"
	"hotel-booking-core/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reservationRow(rooms string) pgquery.Reservation {
	return pgquery.Reservation{
		ID:        42,
		Kind:      "room_type",
		GuestName: "Hanako Suzuki",
		CheckIn:   pgconv.DateToPgtype(builder.Date(2024, 6, 1)),
		CheckOut:  pgconv.DateToPgtype(builder.Date(2024, 6, 5)),
		Adults:    2,
		Children:  1,
		Status:    "checked in",
		Version:   3,
		CreatedAt: pgconv.TimeToPgtype(time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)),
		UpdatedAt: pgconv.TimeToPgtype(time.Date(2024, 5, 21, 9, 0, 0, 0, time.UTC)),
		Rooms:     []byte(rooms),
	}
}

func TestReservationFromRow_RoomShapes(t *testing.T) {
	want := []booking.RoomRef{
		{RoomID: 1, Number: "101", Type: "Deluxe"},
		{RoomID: 2, Number: "102", Type: "Suite"},
	}

	tests := []struct {
		name   string
		origin booking.Origin
		rooms  string
	}{
		{
			name:   "regular rows carry the direct shape",
			origin: booking.OriginRegular,
			rooms:  `[{"id":1,"number":"101","type":"Deluxe"},{"id":2,"number":"102","type":"Suite"}]`,
		},
		{
			name:   "package rows carry the nested shape",
			origin: booking.OriginPackage,
			rooms:  `[{"room_id":1,"room":{"id":1,"number":"101","type":"Deluxe"}},{"room_id":2,"room":{"id":2,"number":"102","type":"Suite"}}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := converter.ReservationFromRow(tt.origin, reservationRow(tt.rooms))
			require.NoError(t, err)

			if diff := cmp.Diff(want, got.Rooms); diff != "" {
				t.Errorf("rooms mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, booking.CompositeKey{Origin: tt.origin, LocalID: 42}, got.Key)
			assert.Equal(t, booking.StatusCheckedIn, got.Status())
			assert.Equal(t, 4, got.Stay.Nights())
			assert.Equal(t, int64(3), got.Version)
		})
	}
}

func TestReservationFromRow_BadRoomsJSON(t *testing.T) {
	_, err := converter.ReservationFromRow(booking.OriginRegular, reservationRow(`{"id":`))
	assert.Error(t, err)
}

func TestReservationToInsertParams(t *testing.T) {
	r := builder.NewReservationBuilder().
		WithStay(builder.Date(2024, 7, 1), builder.Date(2024, 7, 3)).
		With(func(b *builder.ReservationBuilder) { b.Adults = 3 }).
		BuildDomain()

	params := converter.ReservationToInsertParams(r)

	assert.Equal(t, "room_type", params.Kind)
	assert.Equal(t, int32(3), params.Adults)
	assert.Equal(t, "Booked", params.Status)
	assert.Equal(t, builder.Date(2024, 7, 1), pgconv.DateFromPgtype(params.CheckIn))
	assert.Equal(t, builder.Date(2024, 7, 3), pgconv.DateFromPgtype(params.CheckOut))
}

func TestReservationToUpdateParams_UsesReadVersion(t *testing.T) {
	r := builder.NewReservationBuilder().WithKey(booking.OriginPackage, 7).With(func(b *builder.ReservationBuilder) {
		b.Version = 5
	}).BuildDomain()

	params := converter.ReservationToUpdateParams(r)

	assert.Equal(t, int64(7), params.ID)
	assert.Equal(t, int64(5), params.Version)
}

func TestRoomFromRow(t *testing.T) {
	got := converter.RoomFromRow(pgquery.Room{
		ID:            3,
		Number:        "103",
		Type:          "Twin",
		AdultCapacity: 2,
		ChildCapacity: 2,
		PriceCents:    1250000,
		Status:        "Under Maintenance",
	})

	assert.Equal(t, room.StatusMaintenance, got.Status)
	assert.False(t, got.Bookable())
	assert.Equal(t, "12500.00", got.Price.String())
}

func TestSourceFor(t *testing.T) {
	src, err := converter.SourceFor(booking.OriginPackage)
	require.NoError(t, err)
	assert.Equal(t, "package_bookings", src.Table())

	_, err = converter.SourceFor(booking.Origin("XX"))
	assert.ErrorIs(t, err, booking.ErrInvalidOrigin)
}
