//go:build unit

package repository_test

import "hotel-booking-core/internal/infra/pgquery"

// mockDBTX is only passed through to mocked queries and never called.
type mockDBTX struct {
	pgquery.DBTX
}
