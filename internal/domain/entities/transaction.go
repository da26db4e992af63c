package entities

import "time"

// PaymentStatus represents the lifecycle of a payment transaction.
//
// A transaction is created PENDING when a payment attempt is submitted to the
// gateway; the provider's asynchronous notification (IPN) moves it to one of
// the terminal states.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Terminal reports whether the status accepts no further transitions.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusSuccess || s == PaymentStatusFailed
}

// Valid reports whether the status is one of the known lifecycle states.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusSuccess, PaymentStatusFailed:
		return true
	}
	return false
}

// TransactionType classifies what a payment is for.
type TransactionType string

const (
	TransactionTypePremiumSubscription TransactionType = "PREMIUM_SUBSCRIPTION"
	TransactionTypeAuthorPayout        TransactionType = "AUTHOR_PAYOUT"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypePremiumSubscription, TransactionTypeAuthorPayout:
		return true
	}
	return false
}

// Transaction is the payment record persisted per attempt.
//
// Storage model (DynamoDB):
//   - PK: order_id
//   - GSI1 (user_id-index): user_id, range key created_at
//
// OrderID is the caller-visible identifier for the business order; RequestID
// identifies one gateway submission attempt and is never reused across calls.
type Transaction struct {
	OrderID   string                 `json:"order_id"`
	RequestID string                 `json:"request_id"`
	UserID    string                 `json:"user_id"`
	Amount    string                 `json:"amount"`
	Type      TransactionType        `json:"type"`
	Message   string                 `json:"message"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Status    PaymentStatus          `json:"status"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
