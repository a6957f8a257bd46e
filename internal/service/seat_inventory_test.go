package service_test

import (
	"context"
	"errors"
	"testing"

	"cinema-booking/internal/model"
	repoMocks "cinema-booking/internal/repository/mocks"
	"cinema-booking/internal/service"
	apperrors "cinema-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatInventoryGuard_CheckAvailability(t *testing.T) {
	ctx := context.Background()
	tx := &fakeTx{}
	seatA1 := model.SeatRef{SeatLetter: "A", SeatNumber: 1}
	seatA2 := model.SeatRef{SeatLetter: "A", SeatNumber: 2}

	t.Run("Success", func(t *testing.T) {
		ticketRepo := repoMocks.NewMockTicketRepository()
		guard := service.NewSeatInventoryGuard(ticketRepo)

		ticketRepo.On("CountActive", ctx, tx, 7).Return(2, nil).Once()
		ticketRepo.On("SeatTaken", ctx, tx, 7, seatA1).Return(false, nil).Once()
		ticketRepo.On("SeatTaken", ctx, tx, 7, seatA2).Return(false, nil).Once()

		err := guard.CheckAvailability(ctx, tx, 7, 10, []model.SeatRef{seatA1, seatA2})

		require.NoError(t, err)
		ticketRepo.AssertExpectations(t)
	})

	t.Run("Failed - duplicate seat in request", func(t *testing.T) {
		ticketRepo := repoMocks.NewMockTicketRepository()
		guard := service.NewSeatInventoryGuard(ticketRepo)

		// 重複座位在查 DB 之前就擋掉
		err := guard.CheckAvailability(ctx, tx, 7, 10, []model.SeatRef{seatA1, seatA1})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrSeatTaken)
		assert.Contains(t, err.Error(), "A-1")
	})

	t.Run("Failed - capacity exceeded", func(t *testing.T) {
		ticketRepo := repoMocks.NewMockTicketRepository()
		guard := service.NewSeatInventoryGuard(ticketRepo)

		ticketRepo.On("CountActive", ctx, tx, 7).Return(9, nil).Once()

		err := guard.CheckAvailability(ctx, tx, 7, 10, []model.SeatRef{seatA1, seatA2})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
	})

	t.Run("Success - fills hall exactly to capacity", func(t *testing.T) {
		ticketRepo := repoMocks.NewMockTicketRepository()
		guard := service.NewSeatInventoryGuard(ticketRepo)

		ticketRepo.On("CountActive", ctx, tx, 7).Return(8, nil).Once()
		ticketRepo.On("SeatTaken", ctx, tx, 7, seatA1).Return(false, nil).Once()
		ticketRepo.On("SeatTaken", ctx, tx, 7, seatA2).Return(false, nil).Once()

		err := guard.CheckAvailability(ctx, tx, 7, 10, []model.SeatRef{seatA1, seatA2})

		require.NoError(t, err)
	})

	t.Run("Failed - seat already taken", func(t *testing.T) {
		ticketRepo := repoMocks.NewMockTicketRepository()
		guard := service.NewSeatInventoryGuard(ticketRepo)

		ticketRepo.On("CountActive", ctx, tx, 7).Return(0, nil).Once()
		ticketRepo.On("SeatTaken", ctx, tx, 7, seatA1).Return(false, nil).Once()
		ticketRepo.On("SeatTaken", ctx, tx, 7, seatA2).Return(true, nil).Once()

		err := guard.CheckAvailability(ctx, tx, 7, 10, []model.SeatRef{seatA1, seatA2})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrSeatTaken)
		assert.Contains(t, err.Error(), "A-2")
	})

	t.Run("Failed - repository error propagates", func(t *testing.T) {
		ticketRepo := repoMocks.NewMockTicketRepository()
		guard := service.NewSeatInventoryGuard(ticketRepo)

		ticketRepo.On("CountActive", ctx, tx, 7).Return(0, errors.New("connection refused")).Once()

		err := guard.CheckAvailability(ctx, tx, 7, 10, []model.SeatRef{seatA1})

		require.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrSeatTaken)
	})
}
