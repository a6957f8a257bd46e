package model

// ReceiptJob 購票成功後要寄出的收據內容。
// 寄送是 best-effort：任何一段失敗都只記 log，不影響已完成的購票。
type ReceiptJob struct {
	PaymentID  int       `json:"payment_id"`
	Email      string    `json:"email"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	MovieTitle string    `json:"movie_title"`
	CinemaName string    `json:"cinema_name"`
	HallName   string    `json:"hall_name"`
	StartsAt   string    `json:"starts_at"`
	Seats      []SeatRef `json:"seats"`
}
