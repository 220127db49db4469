//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/handler/api"
	resdto "hotel-booking-core/internal/handler/dto/response"
	"hotel-booking-core/internal/handler/middleware"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/tests/common/builder"
	"hotel-booking-core/tests/common/httptest"
	"hotel-booking-core/tests/common/testutil"
	commandsmock "hotel-booking-core/tests/mock/commands"
	queriesmock "hotel-booking-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings/regular", s.handler.ListRegular)
	s.router.GET("/bookings/package", s.handler.ListPackages)
	s.router.GET("/bookings/:displayId", s.handler.Get)
	s.router.GET("/bookings/:displayId/check-in-preview", s.handler.CheckInPreview)
	s.router.POST("/bookings/:displayId/check-in", s.handler.CheckIn)
	s.router.POST("/bookings/:displayId/extend", s.handler.Extend)
	s.router.POST("/bookings/:displayId/cancel", s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns 201 with the booking and its location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.CreateBookingRequest) (*queries.ReservationView, error) {
				s.Equal("regular", req.Origin)
				s.Equal(builder.Date(2024, 6, 1), req.CheckIn)
				s.Equal(builder.Date(2024, 6, 5), req.CheckOut)
				s.Equal([]int64{1}, req.RoomIDs)
				s.Equal("Hanako Suzuki", req.Guest.Name)
				return returnView, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("BK-000001", body.DisplayID)
		s.Equal("Booked", body.Status)
		s.Equal(4, body.Nights)
		s.Require().Len(body.Rooms, 1)
		s.Equal(int64(1), body.Rooms[0].RoomID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/BK-000001"})
	})

	validation := []testCaseBooking{
		{name: "missing field: origin", mutate: testutil.Field("origin", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: checkIn", mutate: testutil.Field("checkIn", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: guest name", mutate: testutil.Nested("guest", "name", nil), expectCode: http.StatusBadRequest},
		{name: "bad date format", mutate: testutil.Field("checkOut", "06/05/2024"), expectCode: http.StatusBadRequest},
		{name: "negative adults", mutate: testutil.Field("adults", -1), expectCode: http.StatusBadRequest},
		{name: "invalid email", mutate: testutil.Nested("guest", "email", "nope"), expectCode: http.StatusBadRequest},
		{name: "kind omitted is fine", mutate: testutil.Field("kind", nil), expectCode: http.StatusCreated},
	}

	for _, tc := range validation {
		s.Run("validation: "+tc.name, func() {
			if tc.expectCode == http.StatusCreated {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(returnView, nil)
			}
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate))
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	domainErrors := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "invalid interval", err: booking.ErrInvalidInterval, expectCode: http.StatusBadRequest, expectMsg: "check-out"},
		{name: "invalid origin", err: errs.Wrap(booking.ErrInvalidOrigin, "walk-in"), expectCode: http.StatusBadRequest},
		{name: "no rooms", err: booking.ErrNoRoomsSelected, expectCode: http.StatusBadRequest},
		{name: "room unavailable", err: &booking.RoomUnavailableError{RoomIDs: []int64{1, 3}}, expectCode: http.StatusConflict},
		{name: "capacity", err: &booking.CapacityExceededError{Dimension: booking.DimensionAdults, Requested: 5, Available: 2}, expectCode: http.StatusUnprocessableEntity},
		{name: "storage failure", err: errors.New("connection refused"), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
	}

	for _, tc := range domainErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("error detail: conflicting rooms are listed", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, &booking.RoomUnavailableError{RoomIDs: []int64{1, 3}})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		s.Equal(map[string]any{"roomIds": []any{float64(1), float64(3)}}, httptest.ErrorDetail(s.T(), rec))
	})

	s.Run("error detail: capacity dimension", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, &booking.CapacityExceededError{Dimension: booking.DimensionChildren, Requested: 3, Available: 1})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		s.Equal(map[string]any{"dimension": "children", "requested": float64(3), "available": float64(1)},
			httptest.ErrorDetail(s.T(), rec))
	})
}

// ================================================================================
// TestGet / lists
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := builder.NewReservationBuilder().WithKey(booking.OriginPackage, 42).BuildView()
		s.mockQueries.EXPECT().GetByDisplayID(gomock.Any(), "PK-000042").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/PK-000042", nil)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("PK-000042", body.DisplayID)
		s.Equal("package", body.Origin)
	})

	s.Run("error: a missing view is a server error", func() {
		s.mockQueries.EXPECT().GetByDisplayID(gomock.Any(), "BK-000001").Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/BK-000001", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: not found", func() {
		notFound := errs.Mark(infra.NewRepoErr(infra.KindNotFound, "reservation not found"), booking.ErrReservationNotFound)
		s.mockQueries.EXPECT().GetByDisplayID(gomock.Any(), "BK-000404").Return(nil, notFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/BK-000404", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})

	s.Run("error: malformed id", func() {
		s.mockQueries.EXPECT().GetByDisplayID(gomock.Any(), "42").Return(nil, booking.ErrInvalidDisplayID)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/42", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid display id")
	})
}

func (s *BookingHandlerTestSuite) TestListRegular() {
	s.Run("success: passes paging through", func() {
		page := &queries.ReservationPage{
			Items: []*queries.ReservationView{builder.NewReservationBuilder().BuildView()},
			Total: 31, Skip: 20, Limit: 10,
		}
		s.mockQueries.EXPECT().ListRegular(gomock.Any(), 20, 10).Return(page, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/regular?skip=20&limit=10", nil)

		var body resdto.BookingPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(31, body.Total)
		s.Len(body.Items, 1)
	})

	s.Run("error: negative skip", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/regular?skip=-1", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: skip beyond the int32 offset range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/regular?skip=4294967296", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *BookingHandlerTestSuite) TestListPackages() {
	views := []*queries.ReservationView{
		builder.NewReservationBuilder().WithKey(booking.OriginPackage, 2).BuildView(),
		builder.NewReservationBuilder().WithKey(booking.OriginPackage, 1).BuildView(),
	}
	s.mockQueries.EXPECT().ListPackages(gomock.Any()).Return(views, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/package", nil)

	var body []resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 2)
	s.Equal("PK-000002", body[0].DisplayID)
}

// ================================================================================
// Lifecycle transitions
// ================================================================================

func (s *BookingHandlerTestSuite) TestCheckIn() {
	url := "/bookings/BK-000001/check-in"
	docs := map[string]any{"identityDocument": "id/passport.png", "registrationForm": "forms/reg.pdf"}

	s.Run("success: reports the early check-in", func() {
		view := builder.NewReservationBuilder().
			WithStay(builder.Date(2024, 5, 25), builder.Date(2024, 6, 5)).
			WithStatus("Checked-In").BuildView()
		s.mockCommands.EXPECT().
			CheckIn(gomock.Any(), "BK-000001", booking.Documents{IdentityDocument: "id/passport.png", RegistrationForm: "forms/reg.pdf"}).
			Return(&commands.CheckInResult{Reservation: view, EarlyCheckIn: true, ScheduledCheckIn: builder.Date(2024, 6, 1)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, docs)

		var body resdto.CheckInResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.EarlyCheckIn)
		s.Equal("2024-06-01", body.ScheduledCheckIn)
		s.Equal("2024-05-25", body.Booking.CheckIn)
		s.Equal("Checked-In", body.Booking.Status)
	})

	s.Run("error: missing documents is 422", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), "BK-000001", gomock.Any()).Return(nil, booking.ErrMissingDocuments)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "identity document")
	})

	s.Run("error: unrecognized status carries the raw text", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), "BK-000001", gomock.Any()).
			Return(nil, &booking.UnrecognizedStatusError{Raw: "on hold", Attempted: booking.OpCheckIn})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, docs)

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Equal(map[string]any{"rawStatus": "on hold", "operation": "check-in"}, httptest.ErrorDetail(s.T(), rec))
	})
}

func (s *BookingHandlerTestSuite) TestCheckInPreview() {
	s.mockQueries.EXPECT().CheckInPreview(gomock.Any(), "BK-000001").Return(&queries.CheckInPreviewView{
		DisplayID:        "BK-000001",
		Status:           "Booked",
		Allowed:          true,
		EarlyCheckIn:     true,
		ScheduledCheckIn: "2024-06-01",
		AdvancedTo:       "2024-05-25",
		NightsAdvanced:   7,
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/BK-000001/check-in-preview", nil)

	var body resdto.CheckInPreviewResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(resdto.CheckInPreviewResponse{
		DisplayID:        "BK-000001",
		Status:           "Booked",
		Allowed:          true,
		EarlyCheckIn:     true,
		ScheduledCheckIn: "2024-06-01",
		AdvancedTo:       "2024-05-25",
		NightsAdvanced:   7,
	}, body)
}

func (s *BookingHandlerTestSuite) TestExtend() {
	url := "/bookings/BK-000001/extend"

	s.Run("success", func() {
		view := builder.NewReservationBuilder().WithStay(builder.Date(2024, 6, 1), builder.Date(2024, 6, 8)).BuildView()
		s.mockCommands.EXPECT().Extend(gomock.Any(), "BK-000001", builder.Date(2024, 6, 8)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"checkOut": "2024-06-08"})

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2024-06-08", body.CheckOut)
	})

	s.Run("error: missing checkOut", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: not later is 422", func() {
		s.mockCommands.EXPECT().Extend(gomock.Any(), "BK-000001", gomock.Any()).Return(nil, booking.ErrExtendNotLater)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"checkOut": "2024-06-05"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "new check-out")
	})

	s.Run("error: stale version is 409", func() {
		stale := errs.Mark(infra.NewRepoErr(infra.KindStaleVersion, "changed"), booking.ErrStaleReservation)
		s.mockCommands.EXPECT().Extend(gomock.Any(), "BK-000001", gomock.Any()).Return(nil, stale)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"checkOut": "2024-06-09"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "modified concurrently")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	s.Run("success", func() {
		view := builder.NewReservationBuilder().WithStatus("Cancelled").BuildView()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), "BK-000001").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/BK-000001/cancel", nil)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Cancelled", body.Status)
	})

	s.Run("error: invalid transition is 409 with detail", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), "BK-000001").
			Return(nil, &booking.InvalidTransitionError{From: booking.StatusCheckedIn, Attempted: booking.OpCancel})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/BK-000001/cancel", nil)

		s.Equal(http.StatusConflict, rec.Code)
		s.Equal(map[string]any{"from": "Checked-In", "operation": "cancel"}, httptest.ErrorDetail(s.T(), rec))
	})
}
