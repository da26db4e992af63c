package response

import (
	"time"

	"himmel_payments/internal/domain/entities"
)

type TransactionResponse struct {
	OrderID   string                 `json:"order_id"`
	RequestID string                 `json:"request_id"`
	UserID    string                 `json:"user_id"`
	Amount    string                 `json:"amount"`
	Type      string                 `json:"type"`
	Message   string                 `json:"message,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Status    string                 `json:"status"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

func FromTransaction(tx entities.Transaction) TransactionResponse {
	return TransactionResponse{
		OrderID:   tx.OrderID,
		RequestID: tx.RequestID,
		UserID:    tx.UserID,
		Amount:    tx.Amount,
		Type:      string(tx.Type),
		Message:   tx.Message,
		Metadata:  tx.Metadata,
		Status:    string(tx.Status),
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
	}
}

func FromTransactions(txs []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, FromTransaction(tx))
	}
	return out
}
