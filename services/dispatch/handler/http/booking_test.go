package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/models"
	"github.com/eshaatri/homewash-dispatch/services/dispatch/mocks"
)

func setupBookingHandlerTest(t *testing.T) (*BookingHandler, *mocks.MockDispatchUC, *echo.Echo, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewBookingHandler(mockUC)
	e := echo.New()
	return handler, mockUC, e, ctrl
}

func newJSONRequest(method, target string, body interface{}) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestCreateBooking(t *testing.T) {
	t.Run("creates and returns booking", func(t *testing.T) {
		handler, mockUC, e, ctrl := setupBookingHandlerTest(t)
		defer ctrl.Finish()

		created := &models.Booking{
			ID:          uuid.New(),
			CustomerID:  "cust-1",
			ServiceArea: "Bandra",
			Status:      models.BookingStatusPending,
		}
		mockUC.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(created, nil)

		req := newJSONRequest(http.MethodPost, "/bookings", CreateBookingRequest{
			CustomerID:  "cust-1",
			ServiceArea: "Bandra",
			Location:    &models.Location{Latitude: 19.0596, Longitude: 72.8295},
		})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.CreateBooking(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		handler, _, e, ctrl := setupBookingHandlerTest(t)
		defer ctrl.Finish()

		req := newJSONRequest(http.MethodPost, "/bookings", CreateBookingRequest{CustomerID: "cust-1"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.CreateBooking(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("usecase failure yields 500", func(t *testing.T) {
		handler, mockUC, e, ctrl := setupBookingHandlerTest(t)
		defer ctrl.Finish()

		mockUC.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down"))

		req := newJSONRequest(http.MethodPost, "/bookings", CreateBookingRequest{
			CustomerID:  "cust-1",
			ServiceArea: "Bandra",
		})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.CreateBooking(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetBooking(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		handler, mockUC, e, ctrl := setupBookingHandlerTest(t)
		defer ctrl.Finish()

		booking := &models.Booking{ID: uuid.New(), Status: models.BookingStatusPending}
		mockUC.EXPECT().
			GetBooking(gomock.Any(), booking.ID.String()).
			Return(booking, nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/bookings/:id")
		c.SetParamNames("id")
		c.SetParamValues(booking.ID.String())

		err := handler.GetBooking(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		handler, mockUC, e, ctrl := setupBookingHandlerTest(t)
		defer ctrl.Finish()

		mockUC.EXPECT().
			GetBooking(gomock.Any(), "missing").
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/bookings/:id")
		c.SetParamNames("id")
		c.SetParamValues("missing")

		err := handler.GetBooking(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("applies valid status", func(t *testing.T) {
		handler, mockUC, e, ctrl := setupBookingHandlerTest(t)
		defer ctrl.Finish()

		id := uuid.NewString()
		mockUC.EXPECT().
			UpdateBookingStatus(gomock.Any(), id, models.BookingStatusCompleted).
			Return(nil)

		req := newJSONRequest(http.MethodPatch, "/", UpdateStatusRequest{Status: models.BookingStatusCompleted})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/bookings/:id/status")
		c.SetParamNames("id")
		c.SetParamValues(id)

		err := handler.UpdateStatus(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		handler, _, e, ctrl := setupBookingHandlerTest(t)
		defer ctrl.Finish()

		req := newJSONRequest(http.MethodPatch, "/", UpdateStatusRequest{Status: "TELEPORTED"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/bookings/:id/status")
		c.SetParamNames("id")
		c.SetParamValues(uuid.NewString())

		err := handler.UpdateStatus(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
