package service_test

import (
	"testing"

	"cinema-booking/config"
	"cinema-booking/internal/model"
	"cinema-booking/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestSurchargePricer(t *testing.T) {
	pricer := service.NewSurchargePricer(config.PricingConfig{
		SpecialHallSurcharge: 50.0,
		Currency:             "TWD",
	})
	seat := model.SeatRef{SeatLetter: "A", SeatNumber: 1}

	t.Run("Success - regular hall uses base price", func(t *testing.T) {
		showtime := &model.ShowtimeDetail{
			Showtime:    model.Showtime{BasePrice: 300.0},
			HallSpecial: false,
		}

		assert.Equal(t, 300.0, pricer.SeatPrice(showtime, seat))
	})

	t.Run("Success - special hall adds surcharge", func(t *testing.T) {
		showtime := &model.ShowtimeDetail{
			Showtime:    model.Showtime{BasePrice: 300.0},
			HallSpecial: true,
		}

		assert.Equal(t, 350.0, pricer.SeatPrice(showtime, seat))
	})

	t.Run("Success - currency from config", func(t *testing.T) {
		assert.Equal(t, "TWD", pricer.Currency())
	})
}
