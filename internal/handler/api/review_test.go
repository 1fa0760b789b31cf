//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/review"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	"github.com/B1gB4dB4ng/HotelApp/internal/handler/api"
	resdto "github.com/B1gB4dB4ng/HotelApp/internal/handler/dto/response"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/commands"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"
	"github.com/B1gB4dB4ng/HotelApp/tests/common/builder"
	"github.com/B1gB4dB4ng/HotelApp/tests/common/httptest"
	"github.com/B1gB4dB4ng/HotelApp/tests/common/testutil"
	commandsmock "github.com/B1gB4dB4ng/HotelApp/tests/mock/commands"
	queriesmock "github.com/B1gB4dB4ng/HotelApp/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reviews", fakeAuth, s.handler.Create)
	s.router.GET("/reviews", s.handler.List)
	s.router.GET("/reviews/:id", s.handler.Get)
	s.router.PUT("/reviews/:id", fakeAuth, s.handler.Update)
	s.router.PATCH("/reviews/:id", fakeAuth, s.handler.Update)
	s.router.DELETE("/reviews/:id", fakeAuth, s.handler.Delete)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

func createReviewBody(v *queries.ReviewView) map[string]any {
	return map[string]any{
		"hotel_id":   v.HotelID.String(),
		"booking_id": v.BookingID.String(),
		"rating":     4.5,
		"comment":    "Quiet room, friendly staff.",
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/reviews"
	view := builder.NewReviewBuilder().WithUserID(guestActor.ID).BuildView()

	s.Run("success: 201 with the stored review", func() {
		s.mockCommands.EXPECT().
			SubmitReview(gomock.Any(), gomock.Any(), guestActor).
			DoAndReturn(func(_ any, in commands.SubmitReviewInput, _ any) (*commands.SubmitReviewResult, error) {
				s.Equal(guestActor.ID, in.UserID)
				s.Equal(view.HotelID, in.HotelID)
				s.Equal(view.BookingID, in.BookingID)
				s.InDelta(4.5, in.Rating, 1e-9)
				return &commands.SubmitReviewResult{ReviewID: view.ID}, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createReviewBody(view), guestToken)

		var body resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.InDelta(4.5, body.Rating, 1e-9)
		s.Equal("pending", body.Status)
	})

	s.Run("success: explicit user_id is forwarded", func() {
		other := uuid.New()
		s.mockCommands.EXPECT().
			SubmitReview(gomock.Any(), gomock.Any(), guestActor).
			DoAndReturn(func(_ any, in commands.SubmitReviewInput, _ any) (*commands.SubmitReviewResult, error) {
				s.Equal(other, in.UserID)
				return nil, review.ErrNotBookingOwner
			})

		req := testutil.DtoMap(s.T(), createReviewBody(view), testutil.Field("user_id", other.String()))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, guestToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("error: 400 on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing hotel_id", mutate: testutil.Field("hotel_id", nil)},
			{name: "missing booking_id", mutate: testutil.Field("booking_id", nil)},
			{name: "missing rating", mutate: testutil.Field("rating", nil)},
			{name: "malformed booking_id", mutate: testutil.Field("booking_id", "not-a-uuid")},
			{name: "rating as string", mutate: testutil.Field("rating", "4.5")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				req := testutil.DtoMap(s.T(), createReviewBody(view), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, guestToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createReviewBody(view), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps domain errors to statuses", func() {
		cases := []struct {
			name       string
			err        error
			wantStatus int
			wantKind   string
		}{
			{name: "rating step", err: review.ErrRatingStep, wantStatus: http.StatusBadRequest, wantKind: "InvalidInput"},
			{name: "stay not finished", err: review.ErrStayNotFinished, wantStatus: http.StatusBadRequest, wantKind: "NotEligible"},
			{name: "booking not confirmed", err: review.ErrBookingNotSettled, wantStatus: http.StatusBadRequest, wantKind: "NotEligible"},
			{name: "duplicate review", err: review.ErrReviewAlreadyExists, wantStatus: http.StatusConflict, wantKind: "Conflict"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SubmitReview(gomock.Any(), gomock.Any(), guestActor).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createReviewBody(view), guestToken)
				httptest.AssertErrorKind(s.T(), rec, tc.wantStatus, tc.wantKind)
			})
		}
	})

	s.Run("error: unclassified errors hide their message", func() {
		s.mockCommands.EXPECT().SubmitReview(gomock.Any(), gomock.Any(), guestActor).
			Return(nil, errors.New("pq: connection reset"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createReviewBody(view), guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "connection reset")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReviewHandlerTestSuite) TestGet() {
	view := builder.NewReviewBuilder().BuildView()
	url := "/reviews/" + view.ID.String()

	s.Run("success: public read", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.Comment, body.Comment)
	})

	s.Run("error: 400 for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 for missing review", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, review.ErrReviewNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "review not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReviewHandlerTestSuite) TestList() {
	hotelID := uuid.New()
	first := builder.NewReviewBuilder().WithHotelID(hotelID).BuildView()
	second := builder.NewReviewBuilder().WithHotelID(hotelID).WithRating(3.0).BuildView()

	s.Run("success: filters are forwarded", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f queries.ReviewFilter) ([]*queries.ReviewView, error) {
				s.Require().NotNil(f.HotelID)
				s.Equal(hotelID, *f.HotelID)
				s.Require().NotNil(f.Rating)
				s.Equal("4.5", *f.Rating)
				s.Require().NotNil(f.Status)
				s.Equal("confirmed", *f.Status)
				s.Equal(10, f.Limit)
				return []*queries.ReviewView{first}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reviews?hotel_id="+hotelID.String()+"&rating=4.5&status=confirmed&limit=10", nil, "")

		var body struct {
			Reviews []resdto.ReviewResponse `json:"reviews"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Reviews, 1)
	})

	s.Run("success: empty filter lists everything visible", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ReviewFilter{}).
			Return([]*queries.ReviewView{first, second}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews", nil, "")

		var body struct {
			Reviews []resdto.ReviewResponse `json:"reviews"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Reviews, 2)
		s.InDelta(3.0, body.Reviews[1].Rating, 1e-9)
	})

	s.Run("error: malformed filters", func() {
		for _, q := range []string{"hotel_id=nope", "limit=0", "limit=abc"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews?"+q, nil, "")
			httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "InvalidInput")
		}
	})

	s.Run("error: malformed rating reported by the query layer", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, review.ErrInvalidRatingFormat)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews?rating=4.55", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid rating format")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestUpdate() {
	view := builder.NewReviewBuilder().WithUserID(guestActor.ID).WithRating(3.5).BuildView()
	url := "/reviews/" + view.ID.String()

	s.Run("success: author edits rating via PATCH", func() {
		s.mockCommands.EXPECT().
			EditReview(gomock.Any(), view.ID, guestActor, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, _ any, in commands.EditReviewInput) error {
				s.Require().NotNil(in.Rating)
				s.InDelta(3.5, *in.Rating, 1e-9)
				s.Nil(in.Status)
				return nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"rating": 3.5}, guestToken)

		var body resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.InDelta(3.5, body.Rating, 1e-9)
	})

	s.Run("success: admin confirms via PUT", func() {
		confirmed := builder.NewReviewBuilder().WithStatus(review.StatusConfirmed).BuildView()
		confirmed.ID = view.ID
		s.mockCommands.EXPECT().
			EditReview(gomock.Any(), view.ID, adminActor, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, _ any, in commands.EditReviewInput) error {
				s.Require().NotNil(in.Status)
				s.Equal("confirmed", *in.Status)
				return nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(confirmed, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "confirmed"}, adminToken)

		var body resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Status)
	})

	s.Run("error: maps domain errors to statuses", func() {
		cases := []struct {
			name       string
			err        error
			wantStatus int
		}{
			{name: "guest sets status", err: review.ErrStatusReserved, wantStatus: http.StatusForbidden},
			{name: "not pending", err: review.ErrNotEditable, wantStatus: http.StatusForbidden},
			{name: "not found", err: review.ErrReviewNotFound, wantStatus: http.StatusNotFound},
			{name: "transition", err: review.ErrInvalidTransition, wantStatus: http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().EditReview(gomock.Any(), view.ID, guestActor, gomock.Any()).Return(tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "confirmed"}, guestToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.wantStatus, "")
			})
		}
	})

	s.Run("error: 400 for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reviews/invalid-uuid", map[string]any{"rating": 4}, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"rating": 4}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ReviewHandlerTestSuite) TestDelete() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	s.Run("success: 204 for admin", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, adminActor).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, adminToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 for guest", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, guestActor).Return(user.ErrNotAdmin)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, guestToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("error: 404 for missing review", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, adminActor).Return(review.ErrReviewNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, adminToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, "NotFound")
	})

	s.Run("error: 400 for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reviews/invalid-uuid", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
