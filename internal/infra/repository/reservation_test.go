//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/pgquery"
	"hotel-booking-core/internal/infra/repository"
	"hotel-booking-core/internal/pkg/pgconv"
	"hotel-booking-core/tests/common/builder"
	repositorymock "hotel-booking-core/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func bookedRow(id int64, rooms string) pgquery.Reservation {
	return pgquery.Reservation{
		ID:       id,
		Kind:     "room_type",
		CheckIn:  pgconv.DateToPgtype(builder.Date(2024, 6, 1)),
		CheckOut: pgconv.DateToPgtype(builder.Date(2024, 6, 5)),
		Adults:   2,
		Status:   "Booked",
		Version:  1,
		Rooms:    []byte(rooms),
	}
}

// =============================================================================
// FindByKey Tests
// =============================================================================

func TestReservationRepository_FindByKey(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		key        booking.CompositeKey
		setupMock  func(*repositorymock.MockReservationWriteQueries, pgquery.DBTX)
		expectKind infra.RepositoryErrorKind
		expectErr  error
	}{
		{
			name: "success: package reservation decoded from nested rooms",
			key:  booking.CompositeKey{Origin: booking.OriginPackage, LocalID: 7},
			setupMock: func(m *repositorymock.MockReservationWriteQueries, db pgquery.DBTX) {
				m.EXPECT().GetReservation(ctx, db, pgquery.PackageSource, int64(7)).
					Return(bookedRow(7, `[{"room_id":3,"room":{"id":3,"number":"103","type":"Twin"}}]`), nil)
			},
		},
		{
			name: "error: reservation not found",
			key:  booking.CompositeKey{Origin: booking.OriginRegular, LocalID: 99},
			setupMock: func(m *repositorymock.MockReservationWriteQueries, db pgquery.DBTX) {
				m.EXPECT().GetReservation(ctx, db, pgquery.RegularSource, int64(99)).Return(pgquery.Reservation{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database failure",
			key:  booking.CompositeKey{Origin: booking.OriginRegular, LocalID: 1},
			setupMock: func(m *repositorymock.MockReservationWriteQueries, db pgquery.DBTX) {
				m.EXPECT().GetReservation(ctx, db, pgquery.RegularSource, int64(1)).Return(pgquery.Reservation{}, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name:      "error: unknown origin never reaches the database",
			key:       booking.CompositeKey{Origin: booking.Origin("XX"), LocalID: 1},
			setupMock: func(*repositorymock.MockReservationWriteQueries, pgquery.DBTX) {},
			expectErr: booking.ErrInvalidOrigin,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			tc.setupMock(mockQueries, mockDB)

			repo := repository.NewReservationRepository(mockQueries)
			got, err := repo.FindByKey(ctx, mockDB, tc.key)

			switch {
			case tc.expectKind != "":
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
			case tc.expectErr != nil:
				assert.ErrorIs(t, err, tc.expectErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.key, got.Key)
				assert.Equal(t, []int64{3}, got.RoomIDs())
			}
		})
	}
}

// =============================================================================
// EndingAfter Tests
// =============================================================================

func TestReservationRepository_EndingAfter_ReadsBothOrigins(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	params := pgquery.ListReservationsEndingAfterParams{
		After:   pgconv.DateToPgtype(builder.Date(2024, 6, 1)),
		RoomIDs: []int64{1, 2},
	}

	gomock.InOrder(
		mockQueries.EXPECT().ListReservationsEndingAfter(ctx, mockDB, pgquery.RegularSource, params).
			Return([]pgquery.Reservation{bookedRow(4, `[{"id":1,"number":"101","type":"Deluxe"}]`)}, nil),
		mockQueries.EXPECT().ListReservationsEndingAfter(ctx, mockDB, pgquery.PackageSource, params).
			Return([]pgquery.Reservation{bookedRow(4, `[{"room_id":2,"room":{"id":2,"number":"102","type":"Deluxe"}}]`)}, nil),
	)

	repo := repository.NewReservationRepository(mockQueries)
	got, err := repo.EndingAfter(ctx, mockDB, builder.Date(2024, 6, 1), []int64{1, 2})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "BK_4", got[0].Key.String())
	assert.Equal(t, "PK_4", got[1].Key.String())
	assert.Equal(t, []int64{2}, got[1].RoomIDs())
}

// =============================================================================
// Insert Tests
// =============================================================================

func TestReservationRepository_Insert(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockReservationWriteQueries, pgquery.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: rows and room links written",
			setupMock: func(m *repositorymock.MockReservationWriteQueries, db pgquery.DBTX) {
				m.EXPECT().InsertReservation(ctx, db, pgquery.RegularSource, gomock.Any()).Return(int64(42), nil)
				m.EXPECT().InsertReservationRooms(ctx, db, pgquery.RegularSource, int64(42), []int64{1, 2}).Return(nil)
			},
		},
		{
			name: "error: room link violates foreign key",
			setupMock: func(m *repositorymock.MockReservationWriteQueries, db pgquery.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
				m.EXPECT().InsertReservation(ctx, db, pgquery.RegularSource, gomock.Any()).Return(int64(42), nil)
				m.EXPECT().InsertReservationRooms(ctx, db, pgquery.RegularSource, int64(42), gomock.Any()).Return(fk)
			},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name: "error: insert fails",
			setupMock: func(m *repositorymock.MockReservationWriteQueries, db pgquery.DBTX) {
				m.EXPECT().InsertReservation(ctx, db, pgquery.RegularSource, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			tc.setupMock(mockQueries, mockDB)

			res := builder.NewReservationBuilder().WithKey(booking.OriginRegular, 0).WithRooms(1, 2).BuildDomain()
			repo := repository.NewReservationRepository(mockQueries)
			key, err := repo.Insert(ctx, mockDB, res)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.True(t, key.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "BK-000042", key.DisplayID())
		})
	}
}

// =============================================================================
// Update Tests
// =============================================================================

func TestReservationRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: version matched", affected: 1},
		{name: "error: version moved on", affected: 0, expectKind: infra.KindStaleVersion},
		{name: "error: database failure", dbErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			res := builder.NewReservationBuilder().WithKey(booking.OriginPackage, 7).WithStatus("Cancelled").With(func(b *builder.ReservationBuilder) {
				b.Version = 4
			}).BuildDomain()

			mockQueries.EXPECT().UpdateReservation(ctx, mockDB, pgquery.PackageSource, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ pgquery.DBTX, _ pgquery.Source, arg pgquery.UpdateReservationParams) (int64, error) {
					assert.Equal(t, int64(7), arg.ID)
					assert.Equal(t, int64(4), arg.Version)
					assert.Equal(t, "Cancelled", arg.Status)
					return tc.affected, tc.dbErr
				})

			err := repository.NewReservationRepository(mockQueries).Update(ctx, mockDB, res)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
