//go:build unit

package readstore

import (
	"context"
	"testing"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/pgquery"
	"hotel-booking-core/internal/pkg/pgconv"
	"hotel-booking-core/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationViewQueries struct {
	mock.Mock
}

func (m *MockReservationViewQueries) GetReservation(ctx context.Context, db pgquery.DBTX, src pgquery.Source, id int64) (pgquery.Reservation, error) {
	args := m.Called(ctx, db, src, id)
	return args.Get(0).(pgquery.Reservation), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservations(ctx context.Context, db pgquery.DBTX, src pgquery.Source, arg pgquery.ListReservationsParams) ([]pgquery.Reservation, error) {
	args := m.Called(ctx, db, src, arg)
	return args.Get(0).([]pgquery.Reservation), args.Error(1)
}

func (m *MockReservationViewQueries) CountReservations(ctx context.Context, db pgquery.DBTX, src pgquery.Source) (int64, error) {
	args := m.Called(ctx, db, src)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservationsEndingAfter(ctx context.Context, db pgquery.DBTX, src pgquery.Source, arg pgquery.ListReservationsEndingAfterParams) ([]pgquery.Reservation, error) {
	args := m.Called(ctx, db, src, arg)
	return args.Get(0).([]pgquery.Reservation), args.Error(1)
}

func row(id int64, status, rooms string) pgquery.Reservation {
	return pgquery.Reservation{
		ID:       id,
		Kind:     "room_type",
		CheckIn:  pgconv.DateToPgtype(builder.Date(2024, 6, 1)),
		CheckOut: pgconv.DateToPgtype(builder.Date(2024, 6, 3)),
		Adults:   1,
		Status:   status,
		Version:  1,
		Rooms:    []byte(rooms),
	}
}

func TestFindByKey(t *testing.T) {
	tests := []struct {
		name      string
		key       booking.CompositeKey
		src       pgquery.Source
		mockRow   pgquery.Reservation
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:    "success - regular",
			key:     booking.CompositeKey{Origin: booking.OriginRegular, LocalID: 5},
			src:     pgquery.RegularSource,
			mockRow: row(5, "Booked", `[{"id":1,"number":"101","type":"Deluxe"}]`),
		},
		{
			name:      "reservation not found",
			key:       booking.CompositeKey{Origin: booking.OriginPackage, LocalID: 9},
			src:       pgquery.PackageSource,
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			key:       booking.CompositeKey{Origin: booking.OriginRegular, LocalID: 5},
			src:       pgquery.RegularSource,
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReservationViewQueries)
			mockQueries.On("GetReservation", mock.Anything, mock.Anything, tt.src, tt.key.LocalID).Return(tt.mockRow, tt.mockError)

			store := NewReservationReadStore(mockQueries, nil)
			got, err := store.FindByKey(context.Background(), tt.key)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.key, got.Key)
				assert.Equal(t, []int64{1}, got.RoomIDs())
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestListPage(t *testing.T) {
	mockQueries := new(MockReservationViewQueries)
	mockQueries.On("ListReservations", mock.Anything, mock.Anything, pgquery.PackageSource, pgquery.ListReservationsParams{Skip: 0, Limit: 500}).
		Return([]pgquery.Reservation{
			row(2, "Booked", `[{"room_id":2,"room":{"id":2,"number":"102","type":"Suite"}}]`),
			row(1, "canceled", `[]`),
		}, nil)
	mockQueries.On("CountReservations", mock.Anything, mock.Anything, pgquery.PackageSource).Return(int64(2), nil)

	store := NewReservationReadStore(mockQueries, nil)
	items, total, err := store.ListPage(context.Background(), booking.OriginPackage, 0, 500)

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "PK-000002", items[0].DisplayID())
	assert.Equal(t, "Suite", items[0].Rooms[0].Type)
	assert.Equal(t, booking.StatusCancelled, items[1].Status())
	assert.Empty(t, items[1].Rooms)
	mockQueries.AssertExpectations(t)
}

func TestListPage_CountFailure(t *testing.T) {
	mockQueries := new(MockReservationViewQueries)
	mockQueries.On("ListReservations", mock.Anything, mock.Anything, pgquery.RegularSource, mock.Anything).Return([]pgquery.Reservation{}, nil)
	mockQueries.On("CountReservations", mock.Anything, mock.Anything, pgquery.RegularSource).Return(int64(0), assert.AnError)

	_, _, err := NewReservationReadStore(mockQueries, nil).ListPage(context.Background(), booking.OriginRegular, 0, 20)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestEndingAfter_MergesOrigins(t *testing.T) {
	mockQueries := new(MockReservationViewQueries)
	params := pgquery.ListReservationsEndingAfterParams{After: pgconv.DateToPgtype(builder.Date(2024, 6, 1))}
	mockQueries.On("ListReservationsEndingAfter", mock.Anything, mock.Anything, pgquery.RegularSource, params).
		Return([]pgquery.Reservation{row(1, "Booked", `[{"id":1}]`)}, nil)
	mockQueries.On("ListReservationsEndingAfter", mock.Anything, mock.Anything, pgquery.PackageSource, params).
		Return([]pgquery.Reservation{row(1, "Booked", `[{"room_id":1}]`)}, nil)

	got, err := NewReservationReadStore(mockQueries, nil).EndingAfter(context.Background(), builder.Date(2024, 6, 1))

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, booking.OriginRegular, got[0].Key.Origin)
	assert.Equal(t, booking.OriginPackage, got[1].Key.Origin)
	mockQueries.AssertExpectations(t)
}
