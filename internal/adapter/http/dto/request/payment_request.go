package request

import (
	"strings"

	"himmel_payments/internal/domain/entities"
)

// PaymentRequest is the normalized "create payment" payload.
//
// `amount` is a digit-only string so monetary values survive JSON without
// floating-point drift; `options` may be omitted entirely, in which case the
// selected provider's configured defaults apply.
type PaymentRequest struct {
	Amount       string               `json:"amount" binding:"required"`
	OrderInfo    OrderInfoRequest     `json:"orderInfo" binding:"required"`
	PaymentItems []PaymentItemRequest `json:"paymentItems"`
	Options      *PaymentOptions      `json:"options"`
}

type OrderInfoRequest struct {
	UserID   string                 `json:"userId" binding:"required"`
	Message  string                 `json:"message"`
	Type     string                 `json:"type" binding:"required"`
	Metadata map[string]interface{} `json:"metadata"`
}

type PaymentItemRequest struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	ImageURL     string  `json:"imageUrl"`
	Manufacturer string  `json:"manufacturer"`
	Price        float64 `json:"price" binding:"required"`
	Currency     string  `json:"currency" binding:"required"`
	Quantity     int     `json:"quantity" binding:"required,min=1"`
	Unit         string  `json:"unit"`
	TotalPrice   float64 `json:"totalPrice" binding:"required"`
	TaxAmount    float64 `json:"taxAmount"`
}

type PaymentOptions struct {
	RedirectURL     string `json:"redirectUrl"`
	IPNURL          string `json:"ipnUrl"`
	Lang            string `json:"lang"`
	PaymentProvider string `json:"paymentProvider"`
}

// ToEntity maps the wire payload onto the domain command. Field-level
// validation beyond binding (amount format, id shape, item totals) is the
// use case's responsibility.
func (r PaymentRequest) ToEntity() entities.PaymentRequest {
	items := make([]entities.PaymentItem, 0, len(r.PaymentItems))
	for _, it := range r.PaymentItems {
		items = append(items, entities.PaymentItem{
			ID:           it.ID,
			Name:         it.Name,
			Description:  it.Description,
			Category:     it.Category,
			ImageURL:     it.ImageURL,
			Manufacturer: it.Manufacturer,
			Price:        it.Price,
			Currency:     it.Currency,
			Quantity:     it.Quantity,
			Unit:         it.Unit,
			TotalPrice:   it.TotalPrice,
			TaxAmount:    it.TaxAmount,
		})
	}

	var opts entities.PaymentOptions
	if r.Options != nil {
		opts = entities.PaymentOptions{
			RedirectURL: strings.TrimSpace(r.Options.RedirectURL),
			IPNURL:      strings.TrimSpace(r.Options.IPNURL),
			Lang:        strings.TrimSpace(r.Options.Lang),
			Provider:    entities.PaymentProvider(strings.TrimSpace(r.Options.PaymentProvider)),
		}
	}

	return entities.PaymentRequest{
		Amount: strings.TrimSpace(r.Amount),
		OrderInfo: entities.OrderInfo{
			UserID:   strings.TrimSpace(r.OrderInfo.UserID),
			Message:  r.OrderInfo.Message,
			Type:     entities.TransactionType(r.OrderInfo.Type),
			Metadata: r.OrderInfo.Metadata,
		},
		Items:   items,
		Options: opts,
	}
}
