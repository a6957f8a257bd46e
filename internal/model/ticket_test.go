package model_test

import (
	"testing"
	"time"

	"cinema-booking/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestTicketStatus_IsValid(t *testing.T) {
	assert.True(t, model.TicketStatusReserved.IsValid())
	assert.True(t, model.TicketStatusPaid.IsValid())
	assert.True(t, model.TicketStatusUsed.IsValid())
	assert.True(t, model.TicketStatusCancelled.IsValid())
	assert.False(t, model.TicketStatus("EXPIRED").IsValid())
	assert.False(t, model.TicketStatus("").IsValid())
}

func TestTicketStatus_IsActive(t *testing.T) {
	// 只有 RESERVED 與 PAID 佔用座位
	assert.True(t, model.TicketStatusReserved.IsActive())
	assert.True(t, model.TicketStatusPaid.IsActive())
	assert.False(t, model.TicketStatusUsed.IsActive())
	assert.False(t, model.TicketStatusCancelled.IsActive())
}

func TestTicketStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, model.TicketStatusReserved.CanTransitionTo(model.TicketStatusPaid))
	assert.True(t, model.TicketStatusReserved.CanTransitionTo(model.TicketStatusCancelled))
	assert.False(t, model.TicketStatusReserved.CanTransitionTo(model.TicketStatusUsed))

	assert.True(t, model.TicketStatusPaid.CanTransitionTo(model.TicketStatusUsed))
	assert.True(t, model.TicketStatusPaid.CanTransitionTo(model.TicketStatusCancelled))
	assert.False(t, model.TicketStatusPaid.CanTransitionTo(model.TicketStatusReserved))

	// 終態不能再轉出去
	assert.False(t, model.TicketStatusUsed.CanTransitionTo(model.TicketStatusCancelled))
	assert.False(t, model.TicketStatusCancelled.CanTransitionTo(model.TicketStatusReserved))
}

func TestSeatRef_String(t *testing.T) {
	assert.Equal(t, "A-1", model.SeatRef{SeatLetter: "A", SeatNumber: 1}.String())
	assert.Equal(t, "K-12", model.SeatRef{SeatLetter: "K", SeatNumber: 12}.String())
}

func TestNewTicketResponse(t *testing.T) {
	showtime := &model.ShowtimeDetail{
		Showtime: model.Showtime{
			ID:       7,
			StartsAt: time.Date(2030, 5, 1, 20, 0, 0, 0, time.UTC),
		},
		MovieTitle: "Inception",
		HallName:   "Hall A",
		CinemaName: "Downtown Cinema",
	}
	ticket := &model.Ticket{
		ID:         100,
		ShowtimeID: 7,
		SeatLetter: "A",
		SeatNumber: 1,
		Price:      300.0,
		Status:     model.TicketStatusPaid,
	}

	resp := model.NewTicketResponse(ticket, showtime)

	assert.Equal(t, 100, resp.ID)
	assert.Equal(t, "Inception", resp.MovieTitle)
	assert.Equal(t, "Downtown Cinema", resp.CinemaName)
	assert.Equal(t, "Hall A", resp.HallName)
	assert.Equal(t, "2030-05-01T20:00:00Z", resp.StartsAt)
	assert.Equal(t, "PAID", resp.Status)
}
