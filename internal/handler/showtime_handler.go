package handler

import (
	"cinema-booking/internal/service"
	apperrors "cinema-booking/pkg/app_errors"
	"cinema-booking/pkg/logger"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service service.ShowtimeService
}

func NewShowtimeHandler(service service.ShowtimeService) *ShowtimeHandler {
	return &ShowtimeHandler{service: service}
}

func (h *ShowtimeHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("showtimes/:id/seats", h.GetSeatMap)
	}
}

func (h *ShowtimeHandler) GetSeatMap(c *gin.Context) {
	id := c.Param("id")
	idInt, err := strconv.Atoi(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input",
		})
		return
	}

	seatMap, err := h.service.GetSeatMap(c, idInt)
	if err != nil {
		log := logger.WithComponent("handler").With(zap.String("operation", "GetSeatMap"), zap.Error(err))
		if errors.Is(err, apperrors.ErrShowtimeNotFound) {
			log.Warn("Showtime not found")
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Showtime not found",
			})
			return
		}
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, seatMap)
}
