package mocks

import (
	"cinema-booking/internal/model"
	"cinema-booking/internal/queue"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockReceiptQueue struct {
	mock.Mock
}

func NewMockReceiptQueue() *MockReceiptQueue {
	return &MockReceiptQueue{}
}

func (m *MockReceiptQueue) PublishReceipt(ctx context.Context, job *model.ReceiptJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockReceiptQueue) SubscribeReceipts(ctx context.Context) (<-chan queue.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan queue.Delivery), args.Error(1)
}
