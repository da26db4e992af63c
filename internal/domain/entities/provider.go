package entities

import "errors"

// ErrUnsupportedProvider signals that a payment-provider selector has no
// registered configuration or gateway implementation. Not retryable; the
// caller has to pick a supported provider.
var ErrUnsupportedProvider = errors.New("unsupported payment provider")

// PaymentProvider selects which external gateway processes a payment.
type PaymentProvider string

const (
	ProviderMoMo        PaymentProvider = "MOMO"
	ProviderMercadoPago PaymentProvider = "MERCADOPAGO"
)

// DefaultProvider is used when the caller does not select one.
const DefaultProvider = ProviderMoMo

// ProviderConfig is the per-provider static configuration resolved once at
// startup. Immutable for the process lifetime.
type ProviderConfig struct {
	Endpoint           string
	AccessKey          string
	SecretKey          string
	PartnerCode        string
	StoreName          string
	DefaultRedirectURL string
	DefaultIPNURL      string
}
