package payments

import (
	"fmt"
	"log"

	"himmel_payments/internal/domain/entities"
	"himmel_payments/internal/usecase/interfaces"
)

// ProviderRegistry maps provider selectors to their gateway implementation
// and static configuration. Adding a provider is a Register call at startup,
// not a switch edit; after startup the registry is read-only.
type ProviderRegistry struct {
	gateways map[entities.PaymentProvider]interfaces.IPaymentProvider
	configs  map[entities.PaymentProvider]entities.ProviderConfig
}

var _ interfaces.IProviderRegistry = (*ProviderRegistry)(nil)

func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		gateways: make(map[entities.PaymentProvider]interfaces.IPaymentProvider),
		configs:  make(map[entities.PaymentProvider]entities.ProviderConfig),
	}
}

func (r *ProviderRegistry) Register(p entities.PaymentProvider, gateway interfaces.IPaymentProvider, cfg entities.ProviderConfig) {
	r.gateways[p] = gateway
	r.configs[p] = cfg
	log.Printf("[payment][registry] provider registered provider=%s endpoint=%s", p, cfg.Endpoint)
}

func (r *ProviderRegistry) Resolve(p entities.PaymentProvider) (interfaces.IPaymentProvider, error) {
	gateway, ok := r.gateways[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrUnsupportedProvider, p)
	}
	return gateway, nil
}

func (r *ProviderRegistry) Config(p entities.PaymentProvider) (entities.ProviderConfig, error) {
	cfg, ok := r.configs[p]
	if !ok {
		return entities.ProviderConfig{}, fmt.Errorf("%w: %s", entities.ErrUnsupportedProvider, p)
	}
	return cfg, nil
}
