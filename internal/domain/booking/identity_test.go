//go:build unit

package booking_test

import (
	"testing"

	"hotel-booking-core/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeKey(t *testing.T) {
	k := booking.CompositeKey{Origin: booking.OriginRegular, LocalID: 42}
	assert.Equal(t, "BK_42", k.String())
	assert.Equal(t, "BK-000042", k.DisplayID())

	p := booking.CompositeKey{Origin: booking.OriginPackage, LocalID: 7}
	assert.Equal(t, "PK-000007", p.DisplayID())
	assert.NotEqual(t, k, booking.CompositeKey{Origin: booking.OriginPackage, LocalID: 42})
}

func TestParseDisplayID(t *testing.T) {
	valid := []struct {
		in   string
		want booking.CompositeKey
	}{
		{in: "BK-000042", want: booking.CompositeKey{Origin: booking.OriginRegular, LocalID: 42}},
		{in: "PK-000007", want: booking.CompositeKey{Origin: booking.OriginPackage, LocalID: 7}},
		{in: "pk-000007", want: booking.CompositeKey{Origin: booking.OriginPackage, LocalID: 7}},
		{in: "BK-1234567", want: booking.CompositeKey{Origin: booking.OriginRegular, LocalID: 1234567}},
	}
	for _, tt := range valid {
		t.Run(tt.in, func(t *testing.T) {
			got, err := booking.ParseDisplayID(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	invalid := []string{"", "BK", "BK-42", "XX-000042", "BK-00004a", "BK-000000", "42"}
	for _, in := range invalid {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := booking.ParseDisplayID(in)
			assert.ErrorIs(t, err, booking.ErrInvalidDisplayID)
		})
	}

	t.Run("round trip", func(t *testing.T) {
		k := booking.CompositeKey{Origin: booking.OriginPackage, LocalID: 314}
		got, err := booking.ParseDisplayID(k.DisplayID())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	})
}

func TestParseOrigin(t *testing.T) {
	for in, want := range map[string]booking.Origin{
		"BK": booking.OriginRegular, "regular": booking.OriginRegular,
		"pk": booking.OriginPackage, "Package": booking.OriginPackage,
	} {
		got, err := booking.ParseOrigin(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := booking.ParseOrigin("walk-in")
	assert.ErrorIs(t, err, booking.ErrInvalidOrigin)
}

func TestRawRoomRef_Resolve(t *testing.T) {
	id := func(v int64) *int64 { return &v }

	tests := []struct {
		name   string
		raw    booking.RawRoomRef
		want   booking.RoomRef
		wantOK bool
	}{
		{
			name:   "direct shape",
			raw:    booking.RawRoomRef{ID: id(3), Number: "103", Type: "Suite"},
			want:   booking.RoomRef{RoomID: 3, Number: "103", Type: "Suite"},
			wantOK: true,
		},
		{
			name:   "nested shape",
			raw:    booking.RawRoomRef{RoomID: id(3), Room: &booking.RawRoomBody{ID: 3, Number: "103", Type: "Suite"}},
			want:   booking.RoomRef{RoomID: 3, Number: "103", Type: "Suite"},
			wantOK: true,
		},
		{
			name:   "nested body wins over room_id",
			raw:    booking.RawRoomRef{RoomID: id(9), Room: &booking.RawRoomBody{ID: 3, Number: "103", Type: "Suite"}},
			want:   booking.RoomRef{RoomID: 3, Number: "103", Type: "Suite"},
			wantOK: true,
		},
		{
			name:   "room_id without body",
			raw:    booking.RawRoomRef{RoomID: id(4)},
			want:   booking.RoomRef{RoomID: 4},
			wantOK: true,
		},
		{
			name:   "nothing to resolve",
			raw:    booking.RawRoomRef{Number: "101"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.raw.Resolve()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}

	t.Run("both shapes resolve to the same ref and duplicates are dropped", func(t *testing.T) {
		refs := booking.ResolveRoomRefs([]booking.RawRoomRef{
			{ID: id(3), Number: "103", Type: "Suite"},
			{RoomID: id(3), Room: &booking.RawRoomBody{ID: 3, Number: "103", Type: "Suite"}},
			{},
		})
		assert.Equal(t, []booking.RoomRef{{RoomID: 3, Number: "103", Type: "Suite"}}, refs)
	})
}
