package gateway

import (
	"cinema-booking/internal/model"
	"context"
	"sync"
)

// ReceiptsMock 記錄送出的收據，供測試與本機開發使用
type ReceiptsMock struct {
	mu sync.Mutex

	SentReceipts []model.ReceiptJob
	Err          error
}

func (m *ReceiptsMock) SendReceipt(ctx context.Context, job *model.ReceiptJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	m.SentReceipts = append(m.SentReceipts, *job)
	return nil
}

// Sent 回傳目前已送出收據的快照
func (m *ReceiptsMock) Sent() []model.ReceiptJob {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.ReceiptJob(nil), m.SentReceipts...)
}
