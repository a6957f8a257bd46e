package model

import "time"

// PaymentStatus 付款狀態類型
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// IsValid 驗證狀態是否有效
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusSuccess, PaymentStatusFailed:
		return true
	}
	return false
}

// CanTransitionTo SUCCESS 與 FAILED 是終態
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	transitions := map[PaymentStatus][]PaymentStatus{
		PaymentStatusPending: {PaymentStatusSuccess, PaymentStatusFailed},
		PaymentStatusSuccess: {},
		PaymentStatusFailed:  {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// Payment 付款模型：一次 Buy 產生一筆付款，底下掛多張票。
// IdempotencyKey 由呼叫端帶入，資料庫層有唯一約束，重送請求永遠回到同一筆付款。
type Payment struct {
	ID             int           `json:"id" db:"id"`
	UserID         int           `json:"user_id" db:"user_id"`
	Amount         float64       `json:"amount" db:"amount"`
	Currency       string        `json:"currency" db:"currency"`
	Status         PaymentStatus `json:"status" db:"status"`
	IdempotencyKey string        `json:"idempotency_key" db:"idempotency_key"`
	ProviderRef    *string       `json:"provider_ref,omitempty" db:"provider_ref"`
	PaidAt         *time.Time    `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at"`
}

// PurchaseResponse 購票響應：付款摘要加上本次買到的票
type PurchaseResponse struct {
	PaymentID   int              `json:"payment_id"`
	Amount      float64          `json:"amount"`
	Currency    string           `json:"currency"`
	Status      string           `json:"status"`
	ProviderRef *string          `json:"provider_ref,omitempty"`
	PaidAt      *string          `json:"paid_at,omitempty"`
	Tickets     []TicketResponse `json:"tickets"`
}

func NewPurchaseResponse(payment *Payment, tickets []TicketResponse) *PurchaseResponse {
	resp := &PurchaseResponse{
		PaymentID:   payment.ID,
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		Status:      string(payment.Status),
		ProviderRef: payment.ProviderRef,
		Tickets:     tickets,
	}
	if payment.PaidAt != nil {
		paidAt := payment.PaidAt.UTC().Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}
	return resp
}
