package model

import "time"

// Showtime 場次：同一個影廳同一個開演時間只能有一場 (hall_id, starts_at 唯一)
type Showtime struct {
	ID        int       `json:"id" db:"id"`
	MovieID   int       `json:"movie_id" db:"movie_id"`
	HallID    int       `json:"hall_id" db:"hall_id"`
	StartsAt  time.Time `json:"starts_at" db:"starts_at"`
	EndsAt    time.Time `json:"ends_at" db:"ends_at"`
	BasePrice float64   `json:"base_price" db:"base_price"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsUpcoming 場次是否還沒開演，已開演的場次不能再訂票
func (s *Showtime) IsUpcoming(now time.Time) bool {
	return s.StartsAt.After(now)
}

// ShowtimeDetail 場次加上 join 出來的電影、影廳、影城資訊，
// 一次查齊，避免逐層補查關聯
type ShowtimeDetail struct {
	Showtime
	MovieTitle   string `json:"movie_title" db:"movie_title"`
	HallName     string `json:"hall_name" db:"hall_name"`
	CinemaName   string `json:"cinema_name" db:"cinema_name"`
	HallCapacity int    `json:"hall_capacity" db:"hall_capacity"`
	HallSpecial  bool   `json:"hall_special" db:"hall_special"`
}

// SeatMapResponse 座位表響應：某場次目前被活躍票券佔用的座位
type SeatMapResponse struct {
	ShowtimeID   int       `json:"showtime_id"`
	MovieTitle   string    `json:"movie_title"`
	CinemaName   string    `json:"cinema_name"`
	HallName     string    `json:"hall_name"`
	StartsAt     string    `json:"starts_at"`
	SeatCapacity int       `json:"seat_capacity"`
	TakenSeats   []SeatRef `json:"taken_seats"`
}
