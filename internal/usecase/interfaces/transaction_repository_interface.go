package interfaces

import (
	"context"
	"himmel_payments/internal/domain/entities"
)

// ITransactionRepository abstracts persistence for payment transactions.
//
// The core needs exactly four operations:
//   - create a PENDING record when a payment attempt is submitted
//   - find one record by its caller-visible order id
//   - conditionally move a record's status (compare-and-swap on the current
//     status, so concurrent notifications for the same order cannot race)
//   - list a user's records, most recent first
//
// Lookups and failed swaps return a zero-value Transaction rather than an
// error; callers check OrderID == "".
type ITransactionRepository interface {
	Create(ctx context.Context, tx entities.Transaction) (entities.Transaction, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Transaction, error)
	UpdateStatus(ctx context.Context, orderID string, current, next entities.PaymentStatus) (entities.Transaction, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Transaction, error)
}
