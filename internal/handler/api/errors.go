package api

import (
	"net/http"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/handler/httperr"
	"hotel-booking-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
}

// first match wins
var bookingErrorMappings = []errorMapping{
	{booking.ErrInvalidInterval, http.StatusBadRequest},
	{booking.ErrInvalidDisplayID, http.StatusBadRequest},
	{booking.ErrInvalidOrigin, http.StatusBadRequest},
	{booking.ErrInvalidKind, http.StatusBadRequest},
	{booking.ErrNoRoomsSelected, http.StatusBadRequest},
	{booking.ErrReservationNotFound, http.StatusNotFound},
	{booking.ErrRoomUnavailable, http.StatusConflict},
	{booking.ErrInvalidTransition, http.StatusConflict},
	{booking.ErrStaleReservation, http.StatusConflict},
	{booking.ErrCapacityExceeded, http.StatusUnprocessableEntity},
	{booking.ErrUnrecognizedStatus, http.StatusUnprocessableEntity},
	{booking.ErrMissingDocuments, http.StatusUnprocessableEntity},
	{booking.ErrExtendNotLater, http.StatusUnprocessableEntity},
}

func abortWithBookingError(c *gin.Context, err error) {
	for _, m := range bookingErrorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.target.Error(), errorDetail(err))
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func errorDetail(err error) any {
	var capacity *booking.CapacityExceededError
	if errs.As(err, &capacity) {
		return gin.H{
			"dimension": string(capacity.Dimension),
			"requested": capacity.Requested,
			"available": capacity.Available,
		}
	}
	var unavailable *booking.RoomUnavailableError
	if errs.As(err, &unavailable) {
		return gin.H{"roomIds": unavailable.RoomIDs}
	}
	var transition *booking.InvalidTransitionError
	if errs.As(err, &transition) {
		return gin.H{"from": transition.From.String(), "operation": string(transition.Attempted)}
	}
	var unrecognized *booking.UnrecognizedStatusError
	if errs.As(err, &unrecognized) {
		return gin.H{"rawStatus": unrecognized.Raw, "operation": string(unrecognized.Attempted)}
	}
	return nil
}

func abortInvalidRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", gin.H{"reason": err.Error()})
}
