package response

import (
	"testing"
	"time"

	"himmel_payments/internal/domain/entities"
)

func TestFromTransaction(t *testing.T) {
	now := time.Now().UTC()
	tx := entities.Transaction{
		OrderID:   "65f0a1b2c3d4e5f6a7b8c9d0",
		RequestID: "65f0a1b2c3d4e5f6a7b8c9d1",
		UserID:    "65f0a1b2c3d4e5f6a7b8c9aa",
		Amount:    "10000",
		Type:      entities.TransactionTypePremiumSubscription,
		Message:   "premium subscription",
		Metadata:  map[string]interface{}{"plan": "monthly"},
		Status:    entities.PaymentStatusSuccess,
		CreatedAt: now,
		UpdatedAt: now,
	}

	got := FromTransaction(tx)

	if got.OrderID != tx.OrderID || got.RequestID != tx.RequestID || got.UserID != tx.UserID {
		t.Errorf("ids not carried over: %+v", got)
	}
	if got.Amount != "10000" || got.Type != "PREMIUM_SUBSCRIPTION" || got.Status != "SUCCESS" {
		t.Errorf("unexpected mapped fields: %+v", got)
	}
	if got.Metadata["plan"] != "monthly" {
		t.Errorf("metadata not carried over: %+v", got.Metadata)
	}
	if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
		t.Errorf("timestamps not carried over: %+v", got)
	}
}

func TestFromTransactions(t *testing.T) {
	txs := []entities.Transaction{
		{OrderID: "65f0a1b2c3d4e5f6a7b8c9d2"},
		{OrderID: "65f0a1b2c3d4e5f6a7b8c9d1"},
	}

	got := FromTransactions(txs)

	if len(got) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(got))
	}
	if got[0].OrderID != "65f0a1b2c3d4e5f6a7b8c9d2" || got[1].OrderID != "65f0a1b2c3d4e5f6a7b8c9d1" {
		t.Errorf("order not preserved: %+v", got)
	}

	if empty := FromTransactions(nil); empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", empty)
	}
}
