package model

import (
	"fmt"
	"time"
)

// TicketStatus 票券狀態類型
type TicketStatus string

const (
	TicketStatusReserved  TicketStatus = "RESERVED"
	TicketStatusPaid      TicketStatus = "PAID"
	TicketStatusUsed      TicketStatus = "USED"
	TicketStatusCancelled TicketStatus = "CANCELLED"
)

// IsValid 驗證狀態是否有效
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusReserved, TicketStatusPaid, TicketStatusUsed, TicketStatusCancelled:
		return true
	}
	return false
}

// IsActive RESERVED 與 PAID 的票佔用座位庫存，USED/CANCELLED 不佔
func (s TicketStatus) IsActive() bool {
	return s == TicketStatusReserved || s == TicketStatusPaid
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s TicketStatus) CanTransitionTo(target TicketStatus) bool {
	transitions := map[TicketStatus][]TicketStatus{
		TicketStatusReserved:  {TicketStatusPaid, TicketStatusCancelled},
		TicketStatusPaid:      {TicketStatusUsed, TicketStatusCancelled},
		TicketStatusUsed:      {},
		TicketStatusCancelled: {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// SeatRef 座位座標：排字母 + 座位號
type SeatRef struct {
	SeatLetter string `json:"seat_letter" binding:"required"`
	SeatNumber int    `json:"seat_number" binding:"required,min=1"`
}

func (s SeatRef) String() string {
	return fmt.Sprintf("%s-%d", s.SeatLetter, s.SeatNumber)
}

// Ticket 票券模型：一張票對應一個場次的一個座位
type Ticket struct {
	ID         int          `json:"id" db:"id"`
	ShowtimeID int          `json:"showtime_id" db:"showtime_id"`
	UserID     *int         `json:"user_id,omitempty" db:"user_id"`
	PaymentID  *int         `json:"payment_id,omitempty" db:"payment_id"`
	SeatLetter string       `json:"seat_letter" db:"seat_letter"`
	SeatNumber int          `json:"seat_number" db:"seat_number"`
	Price      float64      `json:"price" db:"price"`
	Status     TicketStatus `json:"status" db:"status"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at" db:"updated_at"`
}

func (t *Ticket) Seat() SeatRef {
	return SeatRef{SeatLetter: t.SeatLetter, SeatNumber: t.SeatNumber}
}

// BookingRequest 訂票請求：可以直接帶場次 ID，或帶片名/影廳/影城/時間組合
type BookingRequest struct {
	ShowtimeID *int      `json:"showtime_id,omitempty"`
	MovieTitle string    `json:"movie_title"`
	HallName   string    `json:"hall_name"`
	CinemaName string    `json:"cinema_name"`
	Date       string    `json:"date"`       // 2006-01-02
	StartTime  string    `json:"start_time"` // 15:04
	Seats      []SeatRef `json:"seats"`
}

// PurchaseRequest 購票請求：訂票內容加上購買人
type PurchaseRequest struct {
	BookingRequest
	UserID int `json:"user_id" binding:"required"`
}

// ReserveRequest 預約請求：user_id 可為空（訪客保留）
type ReserveRequest struct {
	BookingRequest
	UserID *int `json:"user_id,omitempty"`
}

// TicketResponse 票券響應
type TicketResponse struct {
	ID         int     `json:"id"`
	MovieTitle string  `json:"movie_title"`
	CinemaName string  `json:"cinema_name"`
	HallName   string  `json:"hall_name"`
	StartsAt   string  `json:"starts_at"`
	SeatLetter string  `json:"seat_letter"`
	SeatNumber int     `json:"seat_number"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`
}

func NewTicketResponse(ticket *Ticket, showtime *ShowtimeDetail) TicketResponse {
	return TicketResponse{
		ID:         ticket.ID,
		MovieTitle: showtime.MovieTitle,
		CinemaName: showtime.CinemaName,
		HallName:   showtime.HallName,
		StartsAt:   showtime.StartsAt.UTC().Format(time.RFC3339),
		SeatLetter: ticket.SeatLetter,
		SeatNumber: ticket.SeatNumber,
		Price:      ticket.Price,
		Status:     string(ticket.Status),
	}
}
