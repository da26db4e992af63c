package payments

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"himmel_payments/internal/domain/entities"
)

var ErrMissingMoMoCredentials = errors.New("missing MOMO_ACCESS_KEY/MOMO_SECRET_KEY/MOMO_PARTNER_CODE")

const (
	defaultMoMoEndpoint   = "https://test-payment.momo.vn/v2/gateway/api"
	defaultStoreName      = "Himmel"
	defaultGatewayTimeout = 10 * time.Second
)

// LoadMoMoConfig reads the MoMo provider configuration from the environment.
//
// Supported env vars:
//   - MOMO_ENDPOINT (default: MoMo sandbox)
//   - MOMO_ACCESS_KEY, MOMO_SECRET_KEY, MOMO_PARTNER_CODE (required)
//   - MOMO_REDIRECT_URL, MOMO_IPN_URL (defaults applied to requests that omit them)
//   - STORE_NAME (default: Himmel)
func LoadMoMoConfig() (entities.ProviderConfig, error) {
	cfg := entities.ProviderConfig{
		Endpoint:           getenvDefault("MOMO_ENDPOINT", defaultMoMoEndpoint),
		AccessKey:          os.Getenv("MOMO_ACCESS_KEY"),
		SecretKey:          os.Getenv("MOMO_SECRET_KEY"),
		PartnerCode:        os.Getenv("MOMO_PARTNER_CODE"),
		StoreName:          getenvDefault("STORE_NAME", defaultStoreName),
		DefaultRedirectURL: os.Getenv("MOMO_REDIRECT_URL"),
		DefaultIPNURL:      os.Getenv("MOMO_IPN_URL"),
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.PartnerCode == "" {
		log.Printf("[payment][config] momo credentials incomplete")
		return entities.ProviderConfig{}, ErrMissingMoMoCredentials
	}
	return cfg, nil
}

// GatewayTimeout returns the bound applied to every outbound gateway call
// (env PAYMENT_GATEWAY_TIMEOUT, e.g. "5s"; default 10s).
func GatewayTimeout() time.Duration {
	if v := strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_TIMEOUT")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		log.Printf("[payment][config] ignoring invalid PAYMENT_GATEWAY_TIMEOUT=%q", v)
	}
	return defaultGatewayTimeout
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
