//go:build unit

package handler_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/handler"
	"hotel-booking-core/internal/handler/api"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/tests/common/builder"
	"hotel-booking-core/tests/common/httptest"
	commandsmock "hotel-booking-core/tests/mock/commands"
	queriesmock "hotel-booking-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *commandsmock.MockBookingCommands, *queriesmock.MockBookingQueries) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockBookingCommands(ctrl)
	q := queriesmock.NewMockBookingQueries(ctrl)

	cfg := config.Config{
		CORS: config.CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{http.MethodGet, http.MethodPost},
			MaxAge:       time.Hour,
		},
		Log: config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: time.DateTime},
	}

	engine := gin.New()
	handler.NewRouter(engine, cfg, api.NewBookingHandler(cmds, q), api.NewRoomHandler(q), api.NewCatalogHandler(q))
	return engine, cmds, q
}

func TestNewRouter(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("booking routes reach their handlers", func(t *testing.T) {
		router, cmds, q := newTestRouter(t)
		view := builder.NewReservationBuilder().BuildView()
		q.EXPECT().GetByDisplayID(gomock.Any(), "BK-000001").Return(view, nil)
		cmds.EXPECT().Cancel(gomock.Any(), "BK-000001").Return(view, nil)

		get := httptest.PerformRequest(t, router, http.MethodGet, "/api/bookings/BK-000001", nil)
		cancel := httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings/BK-000001/cancel", nil)

		assert.Equal(t, http.StatusOK, get.Code, get.Body.String())
		assert.Equal(t, http.StatusOK, cancel.Code, cancel.Body.String())
	})

	t.Run("unregistered method is not routed", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodDelete, "/api/bookings/BK-000001", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid availability interval is rejected at the edge", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodGet,
			"/api/rooms/availability?check_in=2024-06-04&check_out=2024-06-04", nil)

		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, booking.ErrInvalidInterval.Error())
	})
}
