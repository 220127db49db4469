package api

import (
	"net/http"

	reqdto "hotel-booking-core/internal/handler/dto/request"
	resdto "hotel-booking-core/internal/handler/dto/response"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Allocate rooms for a stay. Whole-property bookings take every bookable room.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortInvalidRequest(c, err)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), cmd)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	res, err := resdto.FromReservationView(view)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+view.DisplayID)
	c.JSON(http.StatusCreated, res)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param displayId path string true "Display id, e.g. BK-000042"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{displayId} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	view, err := h.q.GetByDisplayID(c.Request.Context(), c.Param("displayId"))
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	res, err := resdto.FromReservationView(view)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List regular bookings
// @Description One page of the regular booking stream, newest first
// @Tags bookings
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BookingPageResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings/regular [get]
func (h *BookingHandler) ListRegular(c *gin.Context) {
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	page, err := h.q.ListRegular(c.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	res, err := resdto.FromReservationPage(page)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List package bookings
// @Description The package booking stream in one bounded fetch
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Router /api/bookings/package [get]
func (h *BookingHandler) ListPackages(c *gin.Context) {
	views, err := h.q.ListPackages(c.Request.Context())
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	res, err := resdto.FromReservationViews(views)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Preview check-in
// @Description Reports whether checking in now would move the stay start to today
// @Tags bookings
// @Produce json
// @Param displayId path string true "Display id"
// @Success 200 {object} resdto.CheckInPreviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{displayId}/check-in-preview [get]
func (h *BookingHandler) CheckInPreview(c *gin.Context) {
	view, err := h.q.CheckInPreview(c.Request.Context(), c.Param("displayId"))
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	res, err := resdto.FromCheckInPreview(view)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Check in
// @Tags bookings
// @Accept json
// @Produce json
// @Param displayId path string true "Display id"
// @Param request body reqdto.CheckInRequest true "Guest documents"
// @Success 200 {object} resdto.CheckInResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{displayId}/check-in [post]
func (h *BookingHandler) CheckIn(c *gin.Context) {
	var req reqdto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	result, err := h.cmds.CheckIn(c.Request.Context(), c.Param("displayId"), req.ToDomain())
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	res, err := resdto.FromCheckInResult(result)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Extend stay
// @Tags bookings
// @Accept json
// @Produce json
// @Param displayId path string true "Display id"
// @Param request body reqdto.ExtendBookingRequest true "New check-out date"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{displayId}/extend [post]
func (h *BookingHandler) Extend(c *gin.Context) {
	var req reqdto.ExtendBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	checkOut, err := req.NewCheckOut()
	if err != nil {
		abortInvalidRequest(c, err)
		return
	}
	view, err := h.cmds.Extend(c.Request.Context(), c.Param("displayId"), checkOut)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	res, err := resdto.FromReservationView(view)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Cancel booking
// @Tags bookings
// @Produce json
// @Param displayId path string true "Display id"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{displayId}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	view, err := h.cmds.Cancel(c.Request.Context(), c.Param("displayId"))
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	res, err := resdto.FromReservationView(view)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
