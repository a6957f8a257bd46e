package repository

import (
	"cinema-booking/internal/model"
	apperrors "cinema-booking/pkg/app_errors"
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const idempotencyKeyConstraint = "uq_payments_idempotency_key"

type PaymentRepository interface {
	// Create 直接落庫（非交易），付款在任何票券寫入前就有持久的 id
	Create(ctx context.Context, payment *model.Payment) (*model.Payment, error)
	FindByID(ctx context.Context, id int) (*model.Payment, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*model.Payment, error)
	MarkFailed(ctx context.Context, id int) error

	// Transaction methods
	Finalize(ctx context.Context, tx pgx.Tx, id int, amount float64, providerRef string, paidAt time.Time) (*model.Payment, error)
}

type PaymentRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &PaymentRepositoryImpl{
		pool: pool,
	}
}

const paymentColumns = `
	id, user_id, amount, currency, status, idempotency_key,
	provider_ref, paid_at, created_at, updated_at
`

func scanPayment(row pgx.Row) (*model.Payment, error) {
	var payment model.Payment
	err := row.Scan(
		&payment.ID,
		&payment.UserID,
		&payment.Amount,
		&payment.Currency,
		&payment.Status,
		&payment.IdempotencyKey,
		&payment.ProviderRef,
		&payment.PaidAt,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	query := `
		INSERT INTO payments (user_id, amount, currency, status, idempotency_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + paymentColumns

	created, err := scanPayment(r.pool.QueryRow(ctx, query,
		payment.UserID, payment.Amount, payment.Currency, payment.Status, payment.IdempotencyKey,
	))
	if err != nil {
		// 兩個請求同時帶同一把冪等鍵：輸的那方收到這個錯誤後改走回放
		if isUniqueViolation(err, idempotencyKeyConstraint) {
			return nil, apperrors.ErrDuplicateIdempotencyKey
		}
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return created, nil
}

func (r *PaymentRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	payment, err := scanPayment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}
	return payment, nil
}

func (r *PaymentRepositoryImpl) FindByIdempotencyKey(ctx context.Context, key string) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE idempotency_key = $1`

	payment, err := scanPayment(r.pool.QueryRow(ctx, query, key))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}
	return payment, nil
}

func (r *PaymentRepositoryImpl) Finalize(ctx context.Context, tx pgx.Tx, id int, amount float64, providerRef string, paidAt time.Time) (*model.Payment, error) {
	query := `
		UPDATE payments
		SET amount = $1, status = $2, provider_ref = $3, paid_at = $4, updated_at = $5
		WHERE id = $6 AND status = $7
		RETURNING ` + paymentColumns

	payment, err := scanPayment(tx.QueryRow(ctx, query,
		amount, model.PaymentStatusSuccess, providerRef, paidAt, time.Now().UTC(),
		id, model.PaymentStatusPending,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to finalize payment: %w", err)
	}

	return payment, nil
}

func (r *PaymentRepositoryImpl) MarkFailed(ctx context.Context, id int) error {
	query := `
		UPDATE payments
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := r.pool.Exec(ctx, query,
		model.PaymentStatusFailed, time.Now().UTC(), id, model.PaymentStatusPending,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPaymentNotFound
	}

	return nil
}
