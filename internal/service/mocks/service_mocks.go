package mocks

import (
	"cinema-booking/internal/model"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockBookingService struct {
	mock.Mock
}

func NewMockBookingService() *MockBookingService {
	return &MockBookingService{}
}

func (m *MockBookingService) Buy(ctx context.Context, req model.PurchaseRequest, idempotencyKey string) (*model.PurchaseResponse, error) {
	args := m.Called(ctx, req, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PurchaseResponse), args.Error(1)
}

func (m *MockBookingService) Reserve(ctx context.Context, req model.ReserveRequest) ([]model.TicketResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TicketResponse), args.Error(1)
}

func (m *MockBookingService) GetPurchase(ctx context.Context, paymentID int) (*model.PurchaseResponse, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PurchaseResponse), args.Error(1)
}

type MockShowtimeService struct {
	mock.Mock
}

func NewMockShowtimeService() *MockShowtimeService {
	return &MockShowtimeService{}
}

func (m *MockShowtimeService) GetSeatMap(ctx context.Context, showtimeID int) (*model.SeatMapResponse, error) {
	args := m.Called(ctx, showtimeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SeatMapResponse), args.Error(1)
}
