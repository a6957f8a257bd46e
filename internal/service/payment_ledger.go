package service

import (
	"cinema-booking/internal/model"
	"cinema-booking/internal/repository"
	apperrors "cinema-booking/pkg/app_errors"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaymentLedger 付款生命週期與冪等鍵去重的唯一入口。
// 同一把冪等鍵永遠只會有一筆付款：請求內先查再開，
// 併發重送撞到唯一約束時輸家直接改抱贏家的那筆。
type PaymentLedger interface {
	// FindByIdempotencyKey 查無此鍵時回 (nil, nil)，缺席是正常情況
	FindByIdempotencyKey(ctx context.Context, key string) (*model.Payment, error)
	FindByID(ctx context.Context, id int) (*model.Payment, error)
	// OpenPending 立刻落庫，票還沒寫之前付款就有持久的 id。
	// replayed=true 表示這把鍵已有付款（先到的請求開的），呼叫端應走回放路徑。
	OpenPending(ctx context.Context, userID int, key string, currency string) (payment *model.Payment, replayed bool, err error)
	// Finalize 補上總金額並標成 SUCCESS
	Finalize(ctx context.Context, tx pgx.Tx, payment *model.Payment, amount float64) (*model.Payment, error)
	MarkFailed(ctx context.Context, payment *model.Payment) error
}

type PaymentLedgerImpl struct {
	repo repository.PaymentRepository
}

func NewPaymentLedger(repo repository.PaymentRepository) PaymentLedger {
	return &PaymentLedgerImpl{
		repo: repo,
	}
}

func (l *PaymentLedgerImpl) FindByIdempotencyKey(ctx context.Context, key string) (*model.Payment, error) {
	payment, err := l.repo.FindByIdempotencyKey(ctx, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrPaymentNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return payment, nil
}

func (l *PaymentLedgerImpl) FindByID(ctx context.Context, id int) (*model.Payment, error) {
	return l.repo.FindByID(ctx, id)
}

func (l *PaymentLedgerImpl) OpenPending(ctx context.Context, userID int, key string, currency string) (*model.Payment, bool, error) {
	payment := &model.Payment{
		UserID:         userID,
		Amount:         0,
		Currency:       currency,
		Status:         model.PaymentStatusPending,
		IdempotencyKey: key,
	}

	created, err := l.repo.Create(ctx, payment)
	if err == nil {
		return created, false, nil
	}

	if errors.Is(err, apperrors.ErrDuplicateIdempotencyKey) {
		// 併發重送輸掉了 insert 競爭：改查贏家的付款回放
		winner, findErr := l.repo.FindByIdempotencyKey(ctx, key)
		if findErr != nil {
			return nil, false, findErr
		}
		return winner, true, nil
	}

	return nil, false, err
}

func (l *PaymentLedgerImpl) Finalize(ctx context.Context, tx pgx.Tx, payment *model.Payment, amount float64) (*model.Payment, error) {
	providerRef := uuid.New().String()
	return l.repo.Finalize(ctx, tx, payment.ID, amount, providerRef, time.Now().UTC())
}

func (l *PaymentLedgerImpl) MarkFailed(ctx context.Context, payment *model.Payment) error {
	return l.repo.MarkFailed(ctx, payment.ID)
}
