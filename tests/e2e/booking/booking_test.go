//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	resdto "github.com/B1gB4dB4ng/HotelApp/internal/handler/dto/response"
	"github.com/B1gB4dB4ng/HotelApp/tests/common/authtest"
	"github.com/B1gB4dB4ng/HotelApp/tests/common/dbtest"
	"github.com/B1gB4dB4ng/HotelApp/tests/common/httptest"
	"github.com/B1gB4dB4ng/HotelApp/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const testCard = "4242 4242 4242 4242"

type bookingFlowSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestBookingFlowSuite(t *testing.T) {
	suite.Run(t, new(bookingFlowSuite))
}

func (s *bookingFlowSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

type world struct {
	guestID    uuid.UUID
	guestToken string
	otherToken string
	adminToken string
	hotelID    uuid.UUID
	roomID     uuid.UUID
}

// seed inserts one hotel with a 100.00 room plus a guest, a second guest and an admin.
func (s *bookingFlowSuite) seed() world {
	t := s.T()
	guestID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleGuest))
	otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleGuest))
	adminID := dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
	hotelID := dbtest.CreateTestHotel(t, s.DB, "Harbor View")
	roomID := dbtest.CreateTestRoom(t, s.DB, hotelID, "101", 10000)

	return world{
		guestID:    guestID,
		guestToken: s.jwt.GenerateToken(t, guestID, user.RoleGuest),
		otherToken: s.jwt.GenerateToken(t, otherID, user.RoleGuest),
		adminToken: s.jwt.GenerateToken(t, adminID, user.RoleAdmin),
		hotelID:    hotelID,
		roomID:     roomID,
	}
}

func day(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
}

func (s *bookingFlowSuite) book(w world, token, checkIn, checkOut string) *resdto.BookingResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", map[string]any{
		"hotel_id":       w.hotelID,
		"room_id":        w.roomID,
		"check_in_date":  checkIn,
		"check_out_date": checkOut,
	}, token)
	var resp resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
	return &resp
}

func (s *bookingFlowSuite) pay(w world, bookingID uuid.UUID, amount string) *resdto.PaymentResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/payments", paymentBody(bookingID, amount), w.guestToken)
	var resp resdto.PaymentResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
	return &resp
}

func paymentBody(bookingID uuid.UUID, amount string) map[string]any {
	return map[string]any{
		"booking_id": bookingID,
		"amount":     amount,
		"card": map[string]any{
			"number": testCard,
			"holder": "Mina Park",
			"expiry": "12/99",
			"cvv":    "123",
		},
	}
}

func (s *bookingFlowSuite) availability(w world, checkIn, checkOut string) resdto.AvailabilityResponse {
	path := fmt.Sprintf("/api/rooms/%s/availability?check_in=%s&check_out=%s", w.roomID, checkIn, checkOut)
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, "")
	var resp resdto.AvailabilityResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	return resp
}

func (s *bookingFlowSuite) TestBookingLifecycle() {
	s.Run("book, pay and cancel a stay", func() {
		w := s.seed()

		b := s.book(w, w.guestToken, day(10), day(13))
		s.Equal("300.00", b.TotalCost)
		s.Equal("pending", b.LifecycleState)
		s.Equal(w.guestID, b.UserID)
		s.Equal("reserved", dbtest.RoomOccupancy(s.T(), s.DB, w.roomID))

		s.False(s.availability(w, day(12), day(14)).Available)
		s.True(s.availability(w, day(13), day(15)).Available, "check-out day is free again")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/payments", paymentBody(b.ID, "299.99"), w.guestToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "InvalidInput")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/payments", paymentBody(b.ID, "300.00"), w.otherToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, "Forbidden")

		p := s.pay(w, b.ID, "300.00")
		s.Equal("completed", p.Status)
		s.Equal("4242", p.Card.Last4)
		s.Equal(1, dbtest.CountNotificationJobs(s.T(), s.DB, "booking.confirmed"))

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/payments", paymentBody(b.ID, "300.00"), w.guestToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusConflict, "Conflict")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+b.ID.String(), nil, w.guestToken)
		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("confirmed", got.LifecycleState)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/bookings/"+b.ID.String(), map[string]any{
			"check_out_date": day(14),
		}, w.guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "dates of a confirmed booking cannot change")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/payments/"+p.ID.String()+"/receipt", nil, w.guestToken)
		s.Equal(http.StatusOK, rec.Code)
		s.True(strings.HasPrefix(rec.Body.String(), "%PDF"))

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/bookings/"+b.ID.String(), map[string]any{
			"reason": "change of plans",
		}, w.guestToken)
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+b.ID.String(), nil, w.guestToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, "NotFound")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+b.ID.String(), nil, w.adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("cancelled", got.LifecycleState)
		s.Equal("deleted", got.ActiveState)

		s.True(s.availability(w, day(10), day(13)).Available)
		s.Equal("available", dbtest.RoomOccupancy(s.T(), s.DB, w.roomID))
	})

	s.Run("overlapping stays are rejected", func() {
		w := s.seed()
		s.book(w, w.guestToken, day(20), day(23))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", map[string]any{
			"hotel_id":       w.hotelID,
			"room_id":        w.roomID,
			"check_in_date":  day(22),
			"check_out_date": day(24),
		}, w.otherToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "room is already booked for the requested dates")

		s.book(w, w.otherToken, day(23), day(24))
	})

	s.Run("concurrent overlapping creates admit exactly one", func() {
		w := s.seed()
		const callers = 10

		var wg sync.WaitGroup
		codes := make([]int, callers)
		for i := range callers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				// every range contains the night of day(61)
				body := fmt.Sprintf(`{"hotel_id":%q,"room_id":%q,"check_in_date":%q,"check_out_date":%q}`,
					w.hotelID, w.roomID, day(60+i%2), day(62+i%3))
				req := nethttptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Authorization", "Bearer "+w.guestToken)
				rec := nethttptest.NewRecorder()
				s.Router.ServeHTTP(rec, req)
				codes[i] = rec.Code
			}(i)
		}
		wg.Wait()

		created, conflicts := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		s.Equal(1, created, "status codes: %v", codes)
		s.Equal(callers-1, conflicts, "status codes: %v", codes)
		s.Equal(1, dbtest.CountLiveBookings(s.T(), s.DB, w.roomID))
	})

	s.Run("pending bookings can be rescheduled and repriced", func() {
		w := s.seed()
		b := s.book(w, w.guestToken, day(30), day(31))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/bookings/"+b.ID.String(), map[string]any{
			"check_out_date": day(33),
		}, w.guestToken)
		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("300.00", got.TotalCost)
		s.Equal(day(33), got.CheckOutDate)
	})

	s.Run("other guests cannot see a booking", func() {
		w := s.seed()
		b := s.book(w, w.guestToken, day(40), day(41))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+b.ID.String(), nil, w.otherToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

func (s *bookingFlowSuite) TestIdempotentCreate() {
	s.Run("replayed key returns the original booking", func() {
		w := s.seed()
		key := uuid.NewString()
		body := map[string]any{
			"hotel_id":       w.hotelID,
			"room_id":        w.roomID,
			"check_in_date":  day(5),
			"check_out_date": day(6),
		}
		headers := map[string]string{"Idempotency-Key": key}

		first := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/bookings", body, headers, w.guestToken)
		var created resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), first, http.StatusCreated, &created)

		second := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/bookings", body, headers, w.guestToken)
		var replayed resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), second, http.StatusCreated, &replayed)
		httptest.AssertHeaders(s.T(), second, map[string]string{"Idempotent-Replay": "true"})
		s.Equal(created.ID, replayed.ID)

		body["check_out_date"] = day(7)
		third := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/bookings", body, headers, w.guestToken)
		httptest.AssertErrorKind(s.T(), third, http.StatusConflict, "Conflict")
	})
}

func (s *bookingFlowSuite) TestReviewGate() {
	s.Run("only settled, finished stays can be reviewed", func() {
		w := s.seed()
		past := s.book(w, w.guestToken, day(-5), day(-2))
		future := s.book(w, w.guestToken, day(50), day(52))

		review := func(bookingID uuid.UUID, token string) *nethttptest.ResponseRecorder {
			return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reviews", map[string]any{
				"hotel_id":   w.hotelID,
				"booking_id": bookingID,
				"rating":     4.5,
				"comment":    "quiet room",
			}, token)
		}

		httptest.AssertErrorResponse(s.T(), review(past.ID, w.guestToken), http.StatusBadRequest, "only confirmed bookings can be reviewed")

		s.pay(w, past.ID, "300.00")
		s.pay(w, future.ID, "200.00")

		httptest.AssertErrorResponse(s.T(), review(future.ID, w.guestToken), http.StatusBadRequest, "stay has not ended yet")
		httptest.AssertErrorKind(s.T(), review(past.ID, w.otherToken), http.StatusForbidden, "Forbidden")

		var created resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), review(past.ID, w.guestToken), http.StatusCreated, &created)
		s.Equal("pending", created.Status)
		s.InDelta(4.5, created.Rating, 0.001)

		httptest.AssertErrorKind(s.T(), review(past.ID, w.guestToken), http.StatusConflict, "Conflict")

		s.Nil(dbtest.HotelAverage(s.T(), s.DB, w.hotelID), "pending reviews do not count")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/reviews/"+created.ID.String(), map[string]any{
			"status": "confirmed",
		}, w.guestToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, "Forbidden")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/reviews/"+created.ID.String(), map[string]any{
			"status": "confirmed",
		}, w.adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/hotels/"+w.hotelID.String()+"/rating", nil, "")
		var rating resdto.HotelRatingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &rating)
		s.Require().NotNil(rating.AverageRating)
		s.InDelta(4.5, *rating.AverageRating, 0.001)
		s.EqualValues(1, rating.ConfirmedReviews)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/reviews/"+created.ID.String(), map[string]any{
			"comment": "changed my mind",
		}, w.guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "only pending reviews can be edited")
	})
}

func (s *bookingFlowSuite) TestAccessControl() {
	s.Run("protected routes need a valid token", func() {
		w := s.seed()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)

		expired := s.jwt.CreateExpiredToken(s.T(), w.guestID, user.RoleGuest)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings", nil, expired)
		s.Equal(http.StatusUnauthorized, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings", nil, w.guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "no matches")

		s.book(w, w.guestToken, day(3), day(4))
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings", nil, w.guestToken)
		var list struct {
			Bookings []resdto.BookingResponse `json:"bookings"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &list)
		s.Len(list.Bookings, 1)
	})

	s.Run("admin routes reject guests", func() {
		w := s.seed()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/reconcile", nil, w.guestToken)
		s.Equal(http.StatusForbidden, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/reconcile", nil, w.adminToken)
		var report resdto.ReconcileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &report)
		s.Zero(report.Failures)
	})
}
