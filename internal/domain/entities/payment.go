package entities

// OrderInfo carries the business context of a payment request.
type OrderInfo struct {
	UserID   string                 `json:"userId"`
	Message  string                 `json:"message"`
	Type     TransactionType        `json:"type"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// PaymentItem describes one line item attached to a payment. Descriptive
// fields are optional; price, currency, quantity and total price are required.
type PaymentItem struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name,omitempty"`
	Description  string  `json:"description,omitempty"`
	Category     string  `json:"category,omitempty"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	Manufacturer string  `json:"manufacturer,omitempty"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	Quantity     int     `json:"quantity"`
	Unit         string  `json:"unit,omitempty"`
	TotalPrice   float64 `json:"totalPrice"`
	TaxAmount    float64 `json:"taxAmount,omitempty"`
}

// PaymentOptions are the caller-overridable knobs of a payment request.
// Absent fields fall back to the selected provider's configured defaults
// (language falls back to "vi").
type PaymentOptions struct {
	RedirectURL string
	IPNURL      string
	Lang        string
	Provider    PaymentProvider
}

// PaymentRequest is the normalized "create payment" command handled by the
// core. Amount is a digit-only string so monetary values never pass through
// floating point.
type PaymentRequest struct {
	Amount    string
	OrderInfo OrderInfo
	Items     []PaymentItem
	Options   PaymentOptions
}

// PaymentOrder is a fully resolved payment attempt handed to a provider
// gateway: ids generated, defaults applied, nothing left optional.
type PaymentOrder struct {
	Amount      string
	OrderID     string
	RequestID   string
	RedirectURL string
	IPNURL      string
	OrderInfo   string
	Items       []PaymentItem
	Lang        string
}

// PaymentNotification is the normalized form of a provider's asynchronous
// payment-outcome callback (IPN). ResultCode zero means the payment
// succeeded; any other value is a failure.
type PaymentNotification struct {
	PartnerCode  string
	OrderID      string
	RequestID    string
	Amount       int64
	OrderInfo    string
	OrderType    string
	TransID      int64
	ResultCode   int
	Message      string
	PayType      string
	ResponseTime int64
	ExtraData    string
	Signature    string
}
