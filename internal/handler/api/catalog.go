package api

import (
	"net/http"

	reqdto "hotel-booking-core/internal/handler/dto/request"
	resdto "hotel-booking-core/internal/handler/dto/response"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.BookingQueries
}

func NewCatalogHandler(q queries.BookingQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary Booking catalog
// @Description Regular and package bookings merged, deduplicated and sorted by status priority
// @Tags catalog
// @Produce json
// @Param limit query int false "Regular page size"
// @Param pages query int false "Regular pages to load"
// @Success 200 {object} resdto.CatalogResponse
// @Failure 400 {object} httperr.Response
// @Router /api/catalog [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	var q reqdto.CatalogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	view, err := h.q.Catalog(c.Request.Context(), q.Limit, q.Pages)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	res, err := resdto.FromCatalogView(view)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
