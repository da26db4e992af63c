package request

import (
	"testing"

	"himmel_payments/internal/domain/entities"
)

func TestPaymentRequestToEntity(t *testing.T) {
	req := PaymentRequest{
		Amount: "  10000 ",
		OrderInfo: OrderInfoRequest{
			UserID:   " 65f0a1b2c3d4e5f6a7b8c9aa ",
			Message:  "premium subscription",
			Type:     "PREMIUM_SUBSCRIPTION",
			Metadata: map[string]interface{}{"plan": "monthly"},
		},
		PaymentItems: []PaymentItemRequest{
			{
				ID:         "sku-1",
				Name:       "Premium",
				Price:      10000,
				Currency:   "VND",
				Quantity:   1,
				TotalPrice: 10000,
			},
		},
		Options: &PaymentOptions{
			RedirectURL:     " https://app.example.com/done ",
			IPNURL:          "https://app.example.com/ipn",
			Lang:            "en",
			PaymentProvider: " MOMO ",
		},
	}

	got := req.ToEntity()

	if got.Amount != "10000" {
		t.Errorf("expected trimmed amount, got %q", got.Amount)
	}
	if got.OrderInfo.UserID != "65f0a1b2c3d4e5f6a7b8c9aa" {
		t.Errorf("expected trimmed user id, got %q", got.OrderInfo.UserID)
	}
	if got.OrderInfo.Type != entities.TransactionTypePremiumSubscription {
		t.Errorf("unexpected type %q", got.OrderInfo.Type)
	}
	if got.OrderInfo.Metadata["plan"] != "monthly" {
		t.Errorf("metadata not carried over: %+v", got.OrderInfo.Metadata)
	}
	if len(got.Items) != 1 || got.Items[0].ID != "sku-1" || got.Items[0].TotalPrice != 10000 {
		t.Errorf("unexpected items: %+v", got.Items)
	}
	if got.Options.RedirectURL != "https://app.example.com/done" {
		t.Errorf("expected trimmed redirect url, got %q", got.Options.RedirectURL)
	}
	if got.Options.Provider != entities.ProviderMoMo {
		t.Errorf("expected trimmed provider, got %q", got.Options.Provider)
	}
}

func TestPaymentRequestToEntityWithoutOptions(t *testing.T) {
	req := PaymentRequest{
		Amount: "5000",
		OrderInfo: OrderInfoRequest{
			UserID: "65f0a1b2c3d4e5f6a7b8c9aa",
			Type:   "AUTHOR_PAYOUT",
		},
	}

	got := req.ToEntity()

	if got.Options != (entities.PaymentOptions{}) {
		t.Errorf("expected zero options, got %+v", got.Options)
	}
	if got.Items == nil || len(got.Items) != 0 {
		t.Errorf("expected empty non-nil items, got %#v", got.Items)
	}
}

func TestMoMoIPNRequestToNotification(t *testing.T) {
	req := MoMoIPNRequest{
		PartnerCode:  "MOMO",
		OrderID:      "65f0a1b2c3d4e5f6a7b8c9d0",
		RequestID:    "65f0a1b2c3d4e5f6a7b8c9d1",
		Amount:       10000,
		OrderInfo:    "premium subscription",
		OrderType:    "momo_wallet",
		TransID:      4088878653,
		ResultCode:   0,
		Message:      "Successful.",
		PayType:      "qr",
		ResponseTime: 1710000000000,
		ExtraData:    "",
		Signature:    "deadbeef",
	}

	got := req.ToNotification()

	if got.OrderID != req.OrderID || got.RequestID != req.RequestID {
		t.Errorf("ids not carried over: %+v", got)
	}
	if got.Amount != 10000 || got.TransID != 4088878653 || got.ResultCode != 0 {
		t.Errorf("numeric fields not carried over: %+v", got)
	}
	if got.Signature != "deadbeef" {
		t.Errorf("signature not carried over: %q", got.Signature)
	}
}
