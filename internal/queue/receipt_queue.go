package queue

import (
	"cinema-booking/internal/model"
	"context"
)

type Delivery struct {
	Data *model.ReceiptJob
	Ack  func()
	Nack func(requeue bool)
}

type ReceiptQueue interface {
	// 發送收據任務到隊列
	PublishReceipt(ctx context.Context, job *model.ReceiptJob) error
	// 訂閱收據隊列
	SubscribeReceipts(ctx context.Context) (<-chan Delivery, error)
}

type ReceiptQueueImpl struct {
	// 使用 Go channel 來模擬 MQ 隊列，供本機開發與測試
	ch chan *model.ReceiptJob
}

func NewReceiptQueue(bufferSize int) ReceiptQueue {
	return &ReceiptQueueImpl{
		ch: make(chan *model.ReceiptJob, bufferSize),
	}
}

func (q *ReceiptQueueImpl) PublishReceipt(ctx context.Context, job *model.ReceiptJob) error {
	q.ch <- job
	return nil
}

func (q *ReceiptQueueImpl) SubscribeReceipts(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case job, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: job,
					Ack:  func() { /* 記憶體版不用做特別動作 */ },
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- job // 簡單模擬重回隊列
						}
					},
				}
			}
		}
	}()

	return out, nil
}
