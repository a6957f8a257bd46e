package worker

import (
	"cinema-booking/internal/gateway"
	"cinema-booking/internal/queue"
	"cinema-booking/pkg/logger"
	"context"

	"go.uber.org/zap"
)

type ReceiptWorker interface {
	// 訂閱收據隊列
	Start(ctx context.Context) error
}

type ReceiptWorkerImpl struct {
	sender gateway.ReceiptSender
	queue  queue.ReceiptQueue
}

func NewReceiptWorker(sender gateway.ReceiptSender, queue queue.ReceiptQueue) ReceiptWorker {
	return &ReceiptWorkerImpl{
		sender: sender,
		queue:  queue,
	}
}

func (w *ReceiptWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeReceipts(ctx)
	if err != nil {
		return err
	}

	go func() {
		log := logger.WithComponent("receipt_worker")
		for msg := range msgs {
			err := w.sender.SendReceipt(ctx, msg.Data)

			if err != nil {
				// 寄送失敗只重試，不回頭動已完成的購票
				log.Warn("send receipt failed, will retry",
					zap.Int("payment_id", msg.Data.PaymentID), zap.Error(err))
				msg.Nack(true)
			} else {
				msg.Ack()
			}
		}
	}()
	return nil
}
