package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinema-booking/internal/handler"
	"cinema-booking/internal/model"
	serviceMocks "cinema-booking/internal/service/mocks"
	apperrors "cinema-booking/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupBookingRouter() (*gin.Engine, *serviceMocks.MockBookingService) {
	gin.SetMode(gin.TestMode)
	mockService := serviceMocks.NewMockBookingService()
	router := gin.New()
	handler.NewBookingHandler(mockService).RegisterRoutes(router)
	return router, mockService
}

func purchaseBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(gin.H{
		"showtime_id": 7,
		"user_id":     42,
		"seats":       []gin.H{{"seat_letter": "A", "seat_number": 1}},
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestBookingHandler_CreatePurchase(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockService := setupBookingRouter()
		resp := &model.PurchaseResponse{
			PaymentID: 9,
			Amount:    300.0,
			Currency:  "TWD",
			Status:    "SUCCESS",
			Tickets: []model.TicketResponse{
				{ID: 100, SeatLetter: "A", SeatNumber: 1, Price: 300.0, Status: "PAID"},
			},
		}
		mockService.On("Buy", mock.Anything, mock.MatchedBy(func(req model.PurchaseRequest) bool {
			return req.ShowtimeID != nil && *req.ShowtimeID == 7 && req.UserID == 42 && len(req.Seats) == 1
		}), "key-1").Return(resp, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/purchases", purchaseBody(t))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "key-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var got model.PurchaseResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 9, got.PaymentID)
		assert.Equal(t, "SUCCESS", got.Status)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - missing idempotency key header", func(t *testing.T) {
		router, mockService := setupBookingRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/purchases", purchaseBody(t))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Idempotency-Key")
		mockService.AssertNotCalled(t, "Buy", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed - malformed body", func(t *testing.T) {
		router, _ := setupBookingRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/purchases", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "key-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - seat taken maps to 409", func(t *testing.T) {
		router, mockService := setupBookingRouter()
		mockService.On("Buy", mock.Anything, mock.Anything, "key-1").
			Return(nil, apperrors.ErrSeatTaken).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/purchases", purchaseBody(t))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "key-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - capacity exceeded maps to 409", func(t *testing.T) {
		router, mockService := setupBookingRouter()
		mockService.On("Buy", mock.Anything, mock.Anything, "key-1").
			Return(nil, apperrors.ErrCapacityExceeded).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/purchases", purchaseBody(t))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "key-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - showtime not found maps to 404", func(t *testing.T) {
		router, mockService := setupBookingRouter()
		mockService.On("Buy", mock.Anything, mock.Anything, "key-1").
			Return(nil, apperrors.ErrShowtimeNotFound).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/purchases", purchaseBody(t))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "key-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - showtime already started maps to 400", func(t *testing.T) {
		router, mockService := setupBookingRouter()
		mockService.On("Buy", mock.Anything, mock.Anything, "key-1").
			Return(nil, apperrors.ErrShowtimeAlreadyStarted).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/purchases", purchaseBody(t))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "key-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - unexpected error maps to 500", func(t *testing.T) {
		router, mockService := setupBookingRouter()
		mockService.On("Buy", mock.Anything, mock.Anything, "key-1").
			Return(nil, apperrors.ErrInternalServerError).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/purchases", purchaseBody(t))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "key-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestBookingHandler_CreateReservation(t *testing.T) {
	reservationBody := func(t *testing.T) *bytes.Buffer {
		t.Helper()
		body, err := json.Marshal(gin.H{
			"showtime_id": 7,
			"seats":       []gin.H{{"seat_letter": "B", "seat_number": 2}},
		})
		require.NoError(t, err)
		return bytes.NewBuffer(body)
	}

	t.Run("Success", func(t *testing.T) {
		router, mockService := setupBookingRouter()
		tickets := []model.TicketResponse{
			{ID: 101, SeatLetter: "B", SeatNumber: 2, Price: 300.0, Status: "RESERVED"},
		}
		mockService.On("Reserve", mock.Anything, mock.MatchedBy(func(req model.ReserveRequest) bool {
			return req.ShowtimeID != nil && *req.ShowtimeID == 7 && req.UserID == nil
		})).Return(tickets, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", reservationBody(t))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "RESERVED")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - empty seats maps to 400", func(t *testing.T) {
		router, mockService := setupBookingRouter()
		mockService.On("Reserve", mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrEmptySeats).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", reservationBody(t))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - seat conflict maps to 409", func(t *testing.T) {
		router, mockService := setupBookingRouter()
		mockService.On("Reserve", mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrSeatTaken).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", reservationBody(t))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestBookingHandler_GetPayment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockService := setupBookingRouter()
		resp := &model.PurchaseResponse{PaymentID: 9, Amount: 300.0, Currency: "TWD", Status: "SUCCESS"}
		mockService.On("GetPurchase", mock.Anything, 9).Return(resp, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/9", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"payment_id":9`)
	})

	t.Run("Failed - non-numeric id", func(t *testing.T) {
		router, mockService := setupBookingRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "GetPurchase", mock.Anything, mock.Anything)
	})

	t.Run("Failed - payment not found maps to 404", func(t *testing.T) {
		router, mockService := setupBookingRouter()
		mockService.On("GetPurchase", mock.Anything, 9).
			Return(nil, apperrors.ErrPaymentNotFound).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/9", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
