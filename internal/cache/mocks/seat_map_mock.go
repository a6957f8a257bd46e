package mocks

import (
	"cinema-booking/internal/model"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockSeatMapCache struct {
	mock.Mock
}

func NewMockSeatMapCache() *MockSeatMapCache {
	return &MockSeatMapCache{}
}

func (m *MockSeatMapCache) GetTakenSeats(ctx context.Context, showtimeID int) ([]model.SeatRef, bool, error) {
	args := m.Called(ctx, showtimeID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]model.SeatRef), args.Bool(1), args.Error(2)
}

func (m *MockSeatMapCache) SetTakenSeats(ctx context.Context, showtimeID int, seats []model.SeatRef, ttl time.Duration) error {
	args := m.Called(ctx, showtimeID, seats, ttl)
	return args.Error(0)
}

func (m *MockSeatMapCache) Invalidate(ctx context.Context, showtimeID int) error {
	args := m.Called(ctx, showtimeID)
	return args.Error(0)
}
