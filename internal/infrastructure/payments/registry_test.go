package payments

import (
	"errors"
	"testing"
	"time"

	"himmel_payments/internal/domain/entities"
)

func TestRegistryResolveUnregisteredProvider(t *testing.T) {
	r := NewProviderRegistry()

	if _, err := r.Resolve(entities.ProviderMoMo); !errors.Is(err, entities.ErrUnsupportedProvider) {
		t.Fatalf("expected ErrUnsupportedProvider, got %v", err)
	}
	if _, err := r.Config("ZALOPAY"); !errors.Is(err, entities.ErrUnsupportedProvider) {
		t.Fatalf("expected ErrUnsupportedProvider, got %v", err)
	}
}

func TestRegistryResolveRegisteredProvider(t *testing.T) {
	r := NewProviderRegistry()
	g := NewMoMoGateway(momoTestConfig, time.Second)
	r.Register(entities.ProviderMoMo, g, momoTestConfig)

	got, err := r.Resolve(entities.ProviderMoMo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != g {
		t.Fatalf("resolved a different gateway")
	}

	cfg, err := r.Config(entities.ProviderMoMo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PartnerCode != momoTestConfig.PartnerCode {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	// Registering one provider never makes another resolvable.
	if _, err := r.Resolve(entities.ProviderMercadoPago); !errors.Is(err, entities.ErrUnsupportedProvider) {
		t.Fatalf("expected ErrUnsupportedProvider, got %v", err)
	}
}
