package interfaces

import (
	"context"
	"himmel_payments/internal/domain/entities"
)

// IPaymentProvider abstracts one external payment gateway (e.g. MoMo).
//
// CreatePayment builds the provider's signed wire payload for a fully
// resolved order, submits it, and returns the redirect URL the end user is
// sent to. VerifyNotification checks the signature of an asynchronous
// payment-outcome callback before it is allowed to drive the transaction
// lifecycle.
type IPaymentProvider interface {
	CreatePayment(ctx context.Context, order entities.PaymentOrder) (payURL string, err error)
	VerifyNotification(n entities.PaymentNotification) bool
}

// IProviderRegistry resolves a provider selector to its gateway
// implementation and static configuration. The registry is populated once at
// startup; both methods fail with entities.ErrUnsupportedProvider for a
// selector that was never registered.
type IProviderRegistry interface {
	Resolve(p entities.PaymentProvider) (IPaymentProvider, error)
	Config(p entities.PaymentProvider) (entities.ProviderConfig, error)
}
