package api

import (
	"net/http"

	"hotel-booking-core/internal/domain/booking"
	reqdto "hotel-booking-core/internal/handler/dto/request"
	resdto "hotel-booking-core/internal/handler/dto/response"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	q queries.BookingQueries
}

func NewRoomHandler(q queries.BookingQueries) *RoomHandler {
	return &RoomHandler{q: q}
}

// @Summary Room availability
// @Description With both dates, rooms free for the stay. Without them, rooms whose status is Available.
// @Tags rooms
// @Produce json
// @Param check_in query string false "YYYY-MM-DD"
// @Param check_out query string false "YYYY-MM-DD"
// @Param exclude query string false "Display id of a reservation to ignore"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/rooms/availability [get]
func (h *RoomHandler) Availability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	aq, err := q.ToDomain()
	if err != nil {
		if errs.Is(err, booking.ErrInvalidInterval) {
			abortWithBookingError(c, err)
			return
		}
		abortInvalidRequest(c, err)
		return
	}
	view, err := h.q.Availability(c.Request.Context(), aq)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	res, err := resdto.FromAvailabilityView(view)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
