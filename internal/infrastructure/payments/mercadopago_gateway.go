package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"himmel_payments/internal/domain/entities"
	"himmel_payments/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoGateway implements the provider contract on top of Mercado
// Pago's Checkout Pro flow: a preference is created for the order and its
// init_point is returned as the redirect URL. Only registered when
// MERCADOPAGO_ACCESS_TOKEN is set.
type MercadoPagoGateway struct {
	client preference.Client
	cfg    entities.ProviderConfig
}

var _ interfaces.IPaymentProvider = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, providerCfg entities.ProviderConfig) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][mercadopago] client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(sdkCfg), cfg: providerCfg}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, order entities.PaymentOrder) (string, error) {
	log.Printf("[payment][mercadopago] create start order_id=%s amount=%s", order.OrderID, order.Amount)

	amount, err := strconv.ParseFloat(order.Amount, 64)
	if err != nil {
		return "", fmt.Errorf("mercadopago: cannot parse amount %q: %w", order.Amount, err)
	}

	items := make([]preference.ItemRequest, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, preference.ItemRequest{
			ID:          it.ID,
			Title:       it.Name,
			Description: it.Description,
			PictureURL:  it.ImageURL,
			CategoryID:  it.Category,
			CurrencyID:  it.Currency,
			Quantity:    it.Quantity,
			UnitPrice:   it.Price,
		})
	}
	if len(items) == 0 {
		items = append(items, preference.ItemRequest{
			ID:        order.OrderID,
			Title:     order.OrderInfo,
			Quantity:  1,
			UnitPrice: amount,
		})
	}

	req := preference.Request{
		Items:             items,
		ExternalReference: order.OrderID,
		NotificationURL:   order.IPNURL,
		BackURLs: &preference.BackURLsRequest{
			Success: order.RedirectURL,
			Pending: order.RedirectURL,
			Failure: order.RedirectURL,
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][mercadopago] sdk create failed order_id=%s err=%v", order.OrderID, err)
		return "", err
	}
	if resp == nil || resp.InitPoint == "" {
		log.Printf("[payment][mercadopago] create rejected order_id=%s (no init_point)", order.OrderID)
		return "", fmt.Errorf("%w: preference created without init_point", ErrGatewayRejected)
	}

	log.Printf("[payment][mercadopago] create success order_id=%s preference_id=%s", order.OrderID, resp.ID)
	return resp.InitPoint, nil
}

// VerifyNotification rejects callbacks on the shared IPN route: Mercado Pago
// reports outcomes through its own webhook channel (x-signature header), not
// through the MoMo-shaped notification this service accepts.
func (g *MercadoPagoGateway) VerifyNotification(_ entities.PaymentNotification) bool {
	return false
}
