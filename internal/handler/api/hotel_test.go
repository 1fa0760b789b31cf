//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"
	"github.com/B1gB4dB4ng/HotelApp/internal/handler/api"
	resdto "github.com/B1gB4dB4ng/HotelApp/internal/handler/dto/response"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"
	"github.com/B1gB4dB4ng/HotelApp/tests/common/builder"
	"github.com/B1gB4dB4ng/HotelApp/tests/common/httptest"
	queriesmock "github.com/B1gB4dB4ng/HotelApp/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HotelHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockHotels       *queriesmock.MockHotelQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
}

func (s *HotelHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockHotels = queriesmock.NewMockHotelQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	h := api.NewHotelHandler(s.mockHotels, s.mockAvailability)

	s.router.GET("/hotels/:id/rating", h.Rating)
	s.router.GET("/rooms/:id/availability", h.RoomAvailability)
}

func (s *HotelHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHotelHandlerSuite(t *testing.T) {
	suite.Run(t, new(HotelHandlerTestSuite))
}

func (s *HotelHandlerTestSuite) TestRating() {
	hotelID := uuid.New()
	url := "/hotels/" + hotelID.String() + "/rating"

	s.Run("success: average present", func() {
		avg := 4.25
		s.mockHotels.EXPECT().GetRating(gomock.Any(), hotelID).
			Return(&queries.HotelRatingView{HotelID: hotelID, Name: "Harbor View", AverageRating: &avg, ConfirmedReviews: 4}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.HotelRatingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.AverageRating)
		s.InDelta(4.25, *body.AverageRating, 1e-9)
		s.Equal(int64(4), body.ConfirmedReviews)
	})

	s.Run("success: no confirmed reviews is null", func() {
		s.mockHotels.EXPECT().GetRating(gomock.Any(), hotelID).
			Return(&queries.HotelRatingView{HotelID: hotelID, Name: "Harbor View"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Contains(rec.Body.String(), `"average_rating":null`)
	})

	s.Run("error: unknown hotel", func() {
		s.mockHotels.EXPECT().GetRating(gomock.Any(), hotelID).Return(nil, booking.ErrHotelNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, "NotFound")
	})
}

func (s *HotelHandlerTestSuite) TestRoomAvailability() {
	roomID := uuid.New()
	base := "/rooms/" + roomID.String() + "/availability"

	s.Run("success: unavailable carries a reason", func() {
		s.mockAvailability.EXPECT().
			Check(gomock.Any(), roomID, builder.Date(2024, 6, 10), builder.Date(2024, 6, 12)).
			Return(&queries.AvailabilityView{
				RoomID: roomID, CheckIn: "2024-06-10", CheckOut: "2024-06-12",
				Available: false, Reason: "overlapping booking",
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?check_in=2024-06-10&check_out=2024-06-12", nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Available)
		s.Equal("overlapping booking", body.Reason)
	})

	s.Run("error: missing dates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?check_in=2024-06-10", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: empty range", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), roomID, gomock.Any(), gomock.Any()).Return(nil, booking.ErrInvalidRange)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?check_in=2024-06-10&check_out=2024-06-10", nil, "")
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "InvalidInput")
	})

	s.Run("error: malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?check_in=June&check_out=2024-06-12", nil, "")
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "InvalidInput")
	})
}
