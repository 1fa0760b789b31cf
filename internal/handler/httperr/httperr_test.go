//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/B1gB4dB4ng/HotelApp/internal/handler/httperr"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRoomTaken = errs.Define("room is taken", errs.ErrConflict)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: errs.Define("x", errs.ErrNotFound), want: http.StatusNotFound},
		{name: "forbidden", err: errs.Define("x", errs.ErrForbidden), want: http.StatusForbidden},
		{name: "conflict", err: errRoomTaken, want: http.StatusConflict},
		{name: "wrapped conflict", err: errs.Wrap(errRoomTaken, "creating booking"), want: http.StatusConflict},
		{name: "not eligible", err: errs.Define("x", errs.ErrNotEligible), want: http.StatusBadRequest},
		{name: "invalid input", err: errs.Define("x", errs.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "unclassified", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httperr.StatusOf(tc.err))
		})
	}
}

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, httperr.Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	httperr.Respond(c, err)

	var body httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestRespond(t *testing.T) {
	t.Run("domain message survives wrapping", func(t *testing.T) {
		w, body := respond(t, errs.Wrap(errRoomTaken, "creating booking"))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "room is taken", body.Error.Message)
		assert.Equal(t, "Conflict", body.Error.Kind)
	})

	t.Run("unclassified errors stay private", func(t *testing.T) {
		w, body := respond(t, errs.Wrap(errors.New("pq: password authentication failed"), "querying"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", body.Error.Message)
		assert.Empty(t, body.Error.Kind)
	})
}

func TestAbortWithError_NilPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Panics(t, func() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "x", nil)
	})
}
