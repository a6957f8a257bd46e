package service

import (
	"cinema-booking/internal/model"
	"cinema-booking/internal/repository"
	apperrors "cinema-booking/pkg/app_errors"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// SeatInventoryGuard 座位庫存的預檢：容量上限與逐座位佔用檢查。
// 預檢是樂觀的，通過了也可能在寫入時輸掉競爭，
// 最終仍由 tickets 的 partial unique index 擋下重複座位。
type SeatInventoryGuard interface {
	CheckAvailability(ctx context.Context, tx pgx.Tx, showtimeID int, hallCapacity int, seats []model.SeatRef) error
}

type SeatInventoryGuardImpl struct {
	ticketRepo repository.TicketRepository
}

func NewSeatInventoryGuard(ticketRepo repository.TicketRepository) SeatInventoryGuard {
	return &SeatInventoryGuardImpl{
		ticketRepo: ticketRepo,
	}
}

func (g *SeatInventoryGuardImpl) CheckAvailability(ctx context.Context, tx pgx.Tx, showtimeID int, hallCapacity int, seats []model.SeatRef) error {
	// 同一個請求內選了重複座位，直接當座位衝突擋掉
	seen := make(map[model.SeatRef]bool, len(seats))
	for _, seat := range seats {
		if seen[seat] {
			return fmt.Errorf("seat %s: %w", seat, apperrors.ErrSeatTaken)
		}
		seen[seat] = true
	}

	activeCount, err := g.ticketRepo.CountActive(ctx, tx, showtimeID)
	if err != nil {
		return err
	}
	if activeCount+len(seats) > hallCapacity {
		return apperrors.ErrCapacityExceeded
	}

	for _, seat := range seats {
		taken, err := g.ticketRepo.SeatTaken(ctx, tx, showtimeID, seat)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("seat %s: %w", seat, apperrors.ErrSeatTaken)
		}
	}

	return nil
}
