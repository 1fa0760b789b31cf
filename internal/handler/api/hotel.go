package api

import (
	"net/http"

	reqdto "github.com/B1gB4dB4ng/HotelApp/internal/handler/dto/request"
	resdto "github.com/B1gB4dB4ng/HotelApp/internal/handler/dto/response"
	"github.com/B1gB4dB4ng/HotelApp/internal/handler/httperr"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	hotels       queries.HotelQueries
	availability queries.AvailabilityQueries
}

func NewHotelHandler(hotels queries.HotelQueries, availability queries.AvailabilityQueries) *HotelHandler {
	return &HotelHandler{hotels: hotels, availability: availability}
}

// @Summary Hotel rating
// @Description Average of confirmed review ratings, null when there are none
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelRatingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id}/rating [get]
func (h *HotelHandler) Rating(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.hotels.GetRating(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelRatingView(view))
}

// @Summary Room availability
// @Description Whether the room can be booked for [check_in, check_out). Unavailable answers carry a reason.
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param check_in query string true "YYYY-MM-DD"
// @Param check_out query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/{id}/availability [get]
func (h *HotelHandler) RoomAvailability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	checkIn, checkOut, err := query.Dates()
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	view, err := h.availability.Check(c.Request.Context(), id, checkIn, checkOut)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
