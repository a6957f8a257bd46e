package mocks

import (
	"cinema-booking/internal/model"
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type MockShowtimeRepository struct {
	mock.Mock
}

func NewMockShowtimeRepository() *MockShowtimeRepository {
	return &MockShowtimeRepository{}
}

func (m *MockShowtimeRepository) FindByID(ctx context.Context, id int) (*model.ShowtimeDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShowtimeDetail), args.Error(1)
}

func (m *MockShowtimeRepository) FindBySchedule(ctx context.Context, movieTitle, hallName, cinemaName string, startsAt time.Time) (*model.ShowtimeDetail, error) {
	args := m.Called(ctx, movieTitle, hallName, cinemaName, startsAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShowtimeDetail), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockTicketRepository struct {
	mock.Mock
}

func NewMockTicketRepository() *MockTicketRepository {
	return &MockTicketRepository{}
}

func (m *MockTicketRepository) FindByID(ctx context.Context, id int) (*model.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindByPaymentID(ctx context.Context, paymentID int) ([]*model.Ticket, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Ticket), args.Error(1)
}

func (m *MockTicketRepository) ListActiveSeats(ctx context.Context, showtimeID int) ([]model.SeatRef, error) {
	args := m.Called(ctx, showtimeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SeatRef), args.Error(1)
}

func (m *MockTicketRepository) CountActive(ctx context.Context, tx pgx.Tx, showtimeID int) (int, error) {
	args := m.Called(ctx, tx, showtimeID)
	return args.Int(0), args.Error(1)
}

func (m *MockTicketRepository) SeatTaken(ctx context.Context, tx pgx.Tx, showtimeID int, seat model.SeatRef) (bool, error) {
	args := m.Called(ctx, tx, showtimeID, seat)
	return args.Bool(0), args.Error(1)
}

func (m *MockTicketRepository) CreateBatch(ctx context.Context, tx pgx.Tx, tickets []*model.Ticket) ([]*model.Ticket, error) {
	args := m.Called(ctx, tx, tickets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Ticket), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{}
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id int) (*model.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByIdempotencyKey(ctx context.Context, key string) (*model.Payment, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) MarkFailed(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentRepository) Finalize(ctx context.Context, tx pgx.Tx, id int, amount float64, providerRef string, paidAt time.Time) (*model.Payment, error) {
	args := m.Called(ctx, tx, id, amount, providerRef, paidAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}
