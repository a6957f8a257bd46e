package service

import (
	"cinema-booking/internal/cache"
	"cinema-booking/internal/model"
	"cinema-booking/internal/repository"
	"cinema-booking/pkg/logger"
	"context"
	"time"

	"go.uber.org/zap"
)

// 座位表快取的存活時間。熱門場次開賣時座位表會被狂打，
// 容忍幾十秒的舊資料換掉大部分的 DB 查詢
const seatMapTTL = 30 * time.Second

type ShowtimeService interface {
	GetSeatMap(ctx context.Context, showtimeID int) (*model.SeatMapResponse, error)
}

type ShowtimeServiceImpl struct {
	showtimeRepo repository.ShowtimeRepository
	ticketRepo   repository.TicketRepository
	seatMapCache cache.SeatMapCache
}

func NewShowtimeService(
	showtimeRepo repository.ShowtimeRepository,
	ticketRepo repository.TicketRepository,
	seatMapCache cache.SeatMapCache,
) ShowtimeService {
	return &ShowtimeServiceImpl{
		showtimeRepo: showtimeRepo,
		ticketRepo:   ticketRepo,
		seatMapCache: seatMapCache,
	}
}

func (s *ShowtimeServiceImpl) GetSeatMap(ctx context.Context, showtimeID int) (*model.SeatMapResponse, error) {
	detail, err := s.showtimeRepo.FindByID(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	taken, hit, err := s.seatMapCache.GetTakenSeats(ctx, showtimeID)
	if err != nil {
		// 快取壞了就當 miss，照常查 DB
		logger.WithComponent("showtime_service").Warn("seat map cache read failed",
			zap.Int("showtime_id", showtimeID), zap.Error(err))
		hit = false
	}

	if !hit {
		taken, err = s.ticketRepo.ListActiveSeats(ctx, showtimeID)
		if err != nil {
			return nil, err
		}
		if cacheErr := s.seatMapCache.SetTakenSeats(ctx, showtimeID, taken, seatMapTTL); cacheErr != nil {
			logger.WithComponent("showtime_service").Warn("seat map cache fill failed",
				zap.Int("showtime_id", showtimeID), zap.Error(cacheErr))
		}
	}

	return &model.SeatMapResponse{
		ShowtimeID:   detail.ID,
		MovieTitle:   detail.MovieTitle,
		CinemaName:   detail.CinemaName,
		HallName:     detail.HallName,
		StartsAt:     detail.StartsAt.UTC().Format(time.RFC3339),
		SeatCapacity: detail.HallCapacity,
		TakenSeats:   taken,
	}, nil
}
