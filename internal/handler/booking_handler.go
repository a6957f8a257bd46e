package handler

import (
	"cinema-booking/internal/model"
	"cinema-booking/internal/service"
	apperrors "cinema-booking/pkg/app_errors"
	"cinema-booking/pkg/logger"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const idempotencyKeyHeader = "Idempotency-Key"

type BookingHandler struct {
	service service.BookingService
}

func NewBookingHandler(service service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("purchases", h.CreatePurchase)
		router.POST("reservations", h.CreateReservation)
		router.GET("payments/:id", h.GetPayment)
	}
}

func (h *BookingHandler) CreatePurchase(c *gin.Context) {
	idempotencyKey := c.GetHeader(idempotencyKeyHeader)
	if idempotencyKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing Idempotency-Key header",
		})
		return
	}

	var req model.PurchaseRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	resp, err := h.service.Buy(c, req, idempotencyKey)
	if err != nil {
		h.handleBookingError(c, err, "CreatePurchase")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *BookingHandler) CreateReservation(c *gin.Context) {
	var req model.ReserveRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	tickets, err := h.service.Reserve(c, req)
	if err != nil {
		h.handleBookingError(c, err, "CreateReservation")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"tickets": tickets,
	})
}

func (h *BookingHandler) GetPayment(c *gin.Context) {
	id := c.Param("id")
	idInt, err := strconv.Atoi(id)
	if err != nil {
		h.handleBookingError(c, apperrors.ErrInvalidInput, "GetPayment")
		return
	}

	resp, err := h.service.GetPurchase(c, idInt)
	if err != nil {
		h.handleBookingError(c, err, "GetPayment")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Helper functions

func (h *BookingHandler) handleBookingError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrShowtimeNotFound):
		log.Warn("Showtime not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Showtime not found",
		})
	case errors.Is(err, apperrors.ErrUserNotFound):
		log.Warn("User not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
	case errors.Is(err, apperrors.ErrPaymentNotFound):
		log.Warn("Payment not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Payment not found",
		})
	case errors.Is(err, apperrors.ErrEmptySeats):
		log.Warn("Empty seat selection")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Seat selection is empty",
		})
	case errors.Is(err, apperrors.ErrShowtimeAlreadyStarted):
		log.Warn("Showtime already started")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Only upcoming showtimes can be booked",
		})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input",
		})
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		log.Warn("Capacity exceeded")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Hall capacity exceeded",
		})
	case errors.Is(err, apperrors.ErrSeatTaken):
		log.Warn("Seat already taken")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Seat already reserved or paid",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
