//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hotel-booking-core/internal/infra/pgquery"
	"hotel-booking-core/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedRooms is the inventory every e2e test starts from. After a reset the ids are 1..n in order.
var SeedRooms = []pgquery.InsertRoomParams{
	{Number: "101", Type: "Deluxe", AdultCapacity: 2, ChildCapacity: 1, PriceCents: 1200000, Status: "Available"},
	{Number: "102", Type: "Deluxe", AdultCapacity: 2, ChildCapacity: 1, PriceCents: 1200000, Status: "Available"},
	{Number: "201", Type: "Suite", AdultCapacity: 4, ChildCapacity: 2, PriceCents: 2500000, Status: "Available"},
	{Number: "301", Type: "Standard", AdultCapacity: 2, ChildCapacity: 0, PriceCents: 800000, Status: "Maintenance"},
}

func CreateTestRoom(t *testing.T, db pgquery.DBTX, arg pgquery.InsertRoomParams) int64 {
	t.Helper()

	id, err := pgquery.New().InsertRoom(context.Background(), db, arg)
	require.NoError(t, err)
	return id
}

// CreateTestPackageBooking inserts a package booking directly; packages are created
// by an upstream system in production and never through the API.
func CreateTestPackageBooking(t *testing.T, db pgquery.DBTX, roomIDs []int64, checkIn, checkOut time.Time, status string) int64 {
	t.Helper()

	ctx := context.Background()
	q := pgquery.New()
	now := pgconv.TimeToPgtype(time.Now().UTC())

	id, err := q.InsertReservation(ctx, db, pgquery.PackageSource, pgquery.InsertReservationParams{
		Kind:        "room_type",
		PackageName: "Seaside Weekend",
		GuestName:   "Package Guest",
		CheckIn:     pgconv.DateToPgtype(checkIn),
		CheckOut:    pgconv.DateToPgtype(checkOut),
		Adults:      2,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)
	require.NoError(t, q.InsertReservationRooms(ctx, db, pgquery.PackageSource, id, roomIDs))
	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()
	q := pgquery.New()

	for _, r := range SeedRooms {
		if _, err := q.InsertRoom(ctx, pool, r); err != nil {
			return fmt.Errorf("failed to seed room %s: %w", r.Number, err)
		}
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
