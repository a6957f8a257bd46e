package service

import (
	"cinema-booking/config"
	"cinema-booking/internal/model"
)

// Pricer 座位定價。實際金流與促銷屬於外部系統，這裡只算
// 場次底價加上特殊廳（IMAX、4DX 等）的固定加價。
type Pricer interface {
	SeatPrice(showtime *model.ShowtimeDetail, seat model.SeatRef) float64
	Currency() string
}

type SurchargePricer struct {
	cfg config.PricingConfig
}

func NewSurchargePricer(cfg config.PricingConfig) Pricer {
	return &SurchargePricer{cfg: cfg}
}

func (p *SurchargePricer) SeatPrice(showtime *model.ShowtimeDetail, seat model.SeatRef) float64 {
	price := showtime.BasePrice
	if showtime.HallSpecial {
		price += p.cfg.SpecialHallSurcharge
	}
	return price
}

func (p *SurchargePricer) Currency() string {
	return p.cfg.Currency
}
