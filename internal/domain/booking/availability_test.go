//go:build unit

package booking_test

import (
	"testing"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomIDs(rooms []room.Room) []int64 {
	ids := make([]int64, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	return ids
}

func june(d int) booking.Interval {
	return booking.Interval{CheckIn: builder.Date(2024, 6, d)}
}

func stay(from, to int) *booking.Interval {
	return &booking.Interval{CheckIn: builder.Date(2024, 6, from), CheckOut: builder.Date(2024, 6, to)}
}

func TestResolveAvailable_NoDoubleAllocation(t *testing.T) {
	rooms := builder.Rooms(2)
	held := builder.NewReservationBuilder().
		WithStay(builder.Date(2024, 6, 1), builder.Date(2024, 6, 5)).
		WithRooms(1).
		BuildDomain()
	snapshot := []booking.Reservation{held}

	tests := []struct {
		name     string
		interval *booking.Interval
		want     []int64
	}{
		{name: "same stay", interval: stay(1, 5), want: []int64{2}},
		{name: "overlapping start", interval: stay(4, 8), want: []int64{2}},
		{name: "contained", interval: stay(2, 3), want: []int64{2}},
		{name: "same-day turnover", interval: stay(5, 10), want: []int64{1, 2}},
		{name: "before", interval: &booking.Interval{CheckIn: builder.Date(2024, 5, 1), CheckOut: builder.Date(2024, 5, 30)}, want: []int64{1, 2}},
		{name: "ends on check-in day", interval: &booking.Interval{CheckIn: builder.Date(2024, 5, 28), CheckOut: builder.Date(2024, 6, 1)}, want: []int64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.ResolveAvailable(booking.AvailabilityQuery{Interval: tt.interval}, snapshot, rooms)
			assert.Equal(t, tt.want, roomIDs(got))
		})
	}
}

func TestResolveAvailable_StatusFilter(t *testing.T) {
	rooms := builder.Rooms(1)
	requested := stay(1, 5)

	tests := []struct {
		status  string
		blocked bool
	}{
		{status: "Booked", blocked: true},
		{status: "checked_in", blocked: true},
		{status: "Checked-Out", blocked: false},
		{status: "canceled", blocked: false},
		{status: "on hold", blocked: false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			r := builder.NewReservationBuilder().WithRooms(1).WithStatus(tt.status).BuildDomain()
			got := booking.ResolveAvailable(booking.AvailabilityQuery{Interval: requested}, []booking.Reservation{r}, rooms)
			assert.Equal(t, tt.blocked, len(got) == 0)
		})
	}
}

func TestResolveAvailable_BothOrigins(t *testing.T) {
	rooms := builder.Rooms(3)
	regular := builder.NewReservationBuilder().WithKey(booking.OriginRegular, 10).WithRooms(1).BuildDomain()
	pkg := builder.NewReservationBuilder().WithKey(booking.OriginPackage, 10).WithRooms(2).BuildDomain()

	got := booking.ResolveAvailable(booking.AvailabilityQuery{Interval: stay(2, 3)}, []booking.Reservation{regular, pkg}, rooms)
	assert.Equal(t, []int64{3}, roomIDs(got))
}

func TestResolveAvailable_Exclude(t *testing.T) {
	rooms := builder.Rooms(1)
	own := builder.NewReservationBuilder().WithKey(booking.OriginPackage, 5).WithRooms(1).BuildDomain()
	sameIDOtherOrigin := booking.CompositeKey{Origin: booking.OriginRegular, LocalID: 5}

	got := booking.ResolveAvailable(booking.AvailabilityQuery{Interval: stay(1, 5), Exclude: &own.Key}, []booking.Reservation{own}, rooms)
	assert.Equal(t, []int64{1}, roomIDs(got), "a reservation does not block itself")

	got = booking.ResolveAvailable(booking.AvailabilityQuery{Interval: stay(1, 5), Exclude: &sameIDOtherOrigin}, []booking.Reservation{own}, rooms)
	assert.Empty(t, got, "exclusion matches the composite key, not the local id")
}

func TestResolveAvailable_AdministrativeStatus(t *testing.T) {
	rooms := []room.Room{
		builder.NewRoomBuilder().WithID(1).BuildDomain(),
		builder.NewRoomBuilder().WithID(2).WithStatus(room.StatusDisabled).BuildDomain(),
		builder.NewRoomBuilder().WithID(3).WithStatus(room.StatusComingSoon).BuildDomain(),
		builder.NewRoomBuilder().WithID(4).WithStatus(room.StatusMaintenance).BuildDomain(),
		builder.NewRoomBuilder().WithID(5).WithStatus(room.StatusOccupied).BuildDomain(),
		builder.NewRoomBuilder().WithID(6).WithStatus(room.ParseStatus("Cleaning")).BuildDomain(),
	}

	t.Run("with interval only the administrative blocks are dropped", func(t *testing.T) {
		got := booking.ResolveAvailable(booking.AvailabilityQuery{Interval: stay(1, 5)}, nil, rooms)
		assert.Equal(t, []int64{1, 5, 6}, roomIDs(got))
	})

	t.Run("without interval only exactly Available rooms are returned", func(t *testing.T) {
		got := booking.ResolveAvailable(booking.AvailabilityQuery{}, nil, rooms)
		assert.Equal(t, []int64{1}, roomIDs(got))
	})

	t.Run("a reversed interval frees nothing", func(t *testing.T) {
		got := booking.ResolveAvailable(booking.AvailabilityQuery{Interval: stay(5, 1)}, nil, rooms)
		assert.Empty(t, got)
	})

	t.Run("a partial interval uses the coarse mode", func(t *testing.T) {
		partial := june(1)
		got := booking.ResolveAvailable(booking.AvailabilityQuery{Interval: &partial}, nil, rooms)
		assert.Equal(t, []int64{1}, roomIDs(got))
	})
}

func TestEnsureRoomsFree(t *testing.T) {
	held := builder.NewReservationBuilder().WithRooms(1, 3).BuildDomain()

	err := booking.EnsureRoomsFree(*stay(2, 4), []int64{3, 2, 1}, []booking.Reservation{held}, nil)
	var target *booking.RoomUnavailableError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, []int64{1, 3}, target.RoomIDs)
	assert.ErrorIs(t, err, booking.ErrRoomUnavailable)

	assert.NoError(t, booking.EnsureRoomsFree(*stay(5, 6), []int64{1, 3}, []booking.Reservation{held}, nil))
	assert.NoError(t, booking.EnsureRoomsFree(*stay(2, 4), []int64{1, 3}, []booking.Reservation{held}, &held.Key))
}
