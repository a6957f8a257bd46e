package model

import "time"

// Movie 電影目錄屬於外部 CRUD，這裡只保留訂票流程需要的欄位
type Movie struct {
	ID        int       `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type Cinema struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Hall 影廳：座位上限是容量檢查的依據，特殊廳會加價
type Hall struct {
	ID           int       `json:"id" db:"id"`
	CinemaID     int       `json:"cinema_id" db:"cinema_id"`
	Name         string    `json:"name" db:"name"`
	SeatCapacity int       `json:"seat_capacity" db:"seat_capacity"`
	IsSpecial    bool      `json:"is_special" db:"is_special"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
