package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"himmel_payments/internal/domain/entities"
	"himmel_payments/internal/usecase/interfaces"
)

// ErrGatewayRejected signals that the provider's response did not contain the
// expected redirect URL. The wrapped error text carries the raw response body
// for diagnostics; the failure is not automatically retryable (a bad
// signature, an invalid amount and a provider outage all look the same from
// here).
var ErrGatewayRejected = errors.New("payment gateway rejected request")

const (
	momoRequestTypeCaptureWallet = "captureWallet"
	momoCreatePath               = "/create"

	// extraData is reserved for provider round-tripping; the service sends it
	// empty but it still participates in the signature.
	momoExtraData = ""
)

// momoCreateRequest is the MoMo /create wire payload. Field selection and
// naming follow the gateway contract exactly; the signature covers a fixed
// ten-field subset of it (see signingFields).
type momoCreateRequest struct {
	PartnerCode string                 `json:"partnerCode"`
	AccessKey   string                 `json:"accessKey"`
	RequestID   string                 `json:"requestId"`
	StoreName   string                 `json:"storeName"`
	Amount      string                 `json:"amount"`
	OrderID     string                 `json:"orderId"`
	OrderInfo   string                 `json:"orderInfo"`
	RedirectURL string                 `json:"redirectUrl"`
	IPNURL      string                 `json:"ipnUrl"`
	Items       []entities.PaymentItem `json:"items"`
	RequestType string                 `json:"requestType"`
	Signature   string                 `json:"signature"`
	Lang        string                 `json:"lang"`
	ExtraData   string                 `json:"extraData"`
}

type momoCreateResponse struct {
	PayURL     string `json:"payUrl"`
	ResultCode int    `json:"resultCode"`
	Message    string `json:"message"`
}

// MoMoGateway submits signed captureWallet requests to the MoMo gateway.
//
// One outbound call per CreatePayment invocation; no retry. A re-invocation
// with a fresh request id is a distinct attempt at the gateway.
type MoMoGateway struct {
	cfg        entities.ProviderConfig
	httpClient *http.Client
}

var _ interfaces.IPaymentProvider = (*MoMoGateway)(nil)

func NewMoMoGateway(cfg entities.ProviderConfig, timeout time.Duration) *MoMoGateway {
	return &MoMoGateway{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (g *MoMoGateway) CreatePayment(ctx context.Context, order entities.PaymentOrder) (string, error) {
	body := g.buildCreateRequest(order)
	log.Printf("[payment][momo] create start order_id=%s request_id=%s amount=%s", order.OrderID, order.RequestID, order.Amount)

	raw, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.Endpoint+momoCreatePath, bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[payment][momo] request failed order_id=%s err=%v", order.OrderID, err)
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed momoCreateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil || parsed.PayURL == "" {
		log.Printf("[payment][momo] create rejected order_id=%s http_status=%d body=%s", order.OrderID, resp.StatusCode, respBody)
		return "", fmt.Errorf("%w: %s", ErrGatewayRejected, respBody)
	}

	log.Printf("[payment][momo] create success order_id=%s", order.OrderID)
	return parsed.PayURL, nil
}

func (g *MoMoGateway) buildCreateRequest(order entities.PaymentOrder) momoCreateRequest {
	signature := SignSHA256(CanonicalSigningString(g.signingFields(order)), g.cfg.SecretKey)

	items := order.Items
	if items == nil {
		items = []entities.PaymentItem{}
	}

	return momoCreateRequest{
		PartnerCode: g.cfg.PartnerCode,
		AccessKey:   g.cfg.AccessKey,
		RequestID:   order.RequestID,
		StoreName:   g.cfg.StoreName,
		Amount:      order.Amount,
		OrderID:     order.OrderID,
		OrderInfo:   order.OrderInfo,
		RedirectURL: order.RedirectURL,
		IPNURL:      order.IPNURL,
		Items:       items,
		RequestType: momoRequestTypeCaptureWallet,
		Signature:   signature,
		Lang:        order.Lang,
		ExtraData:   momoExtraData,
	}
}

// signingFields is the exact ten-field set MoMo signs over for a create
// request. Other payload fields (storeName, items, lang, the signature
// itself) never participate.
func (g *MoMoGateway) signingFields(order entities.PaymentOrder) map[string]string {
	return map[string]string{
		"accessKey":   g.cfg.AccessKey,
		"amount":      order.Amount,
		"extraData":   momoExtraData,
		"ipnUrl":      order.IPNURL,
		"orderId":     order.OrderID,
		"orderInfo":   order.OrderInfo,
		"partnerCode": g.cfg.PartnerCode,
		"redirectUrl": order.RedirectURL,
		"requestId":   order.RequestID,
		"requestType": momoRequestTypeCaptureWallet,
	}
}

// VerifyNotification recomputes the IPN signature over MoMo's notification
// field set and compares it with the one the caller presented.
func (g *MoMoGateway) VerifyNotification(n entities.PaymentNotification) bool {
	fields := map[string]string{
		"accessKey":    g.cfg.AccessKey,
		"amount":       strconv.FormatInt(n.Amount, 10),
		"extraData":    n.ExtraData,
		"message":      n.Message,
		"orderId":      n.OrderID,
		"orderInfo":    n.OrderInfo,
		"orderType":    n.OrderType,
		"partnerCode":  n.PartnerCode,
		"payType":      n.PayType,
		"requestId":    n.RequestID,
		"responseTime": strconv.FormatInt(n.ResponseTime, 10),
		"resultCode":   strconv.Itoa(n.ResultCode),
		"transId":      strconv.FormatInt(n.TransID, 10),
	}
	expected := SignSHA256(CanonicalSigningString(fields), g.cfg.SecretKey)
	return n.Signature != "" && n.Signature == expected
}
