package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"himmel_payments/internal/domain/entities"
)

var momoTestConfig = entities.ProviderConfig{
	AccessKey:          "F8BBA842ECF85",
	SecretKey:          "K951B6PE1waDMi640xX08PD3vg6EkVlz",
	PartnerCode:        "MOMO",
	StoreName:          "Himmel",
	DefaultRedirectURL: "https://example.com/return",
	DefaultIPNURL:      "https://example.com/ipn",
}

func momoTestOrder() entities.PaymentOrder {
	return entities.PaymentOrder{
		Amount:      "50000",
		OrderID:     "65f0a1b2c3d4e5f6a7b8c9d0",
		RequestID:   "65f0a1b2c3d4e5f6a7b8c9d1",
		RedirectURL: "https://example.com/return",
		IPNURL:      "https://example.com/ipn",
		OrderInfo:   "pay with MoMo",
		Lang:        "vi",
	}
}

func TestBuildCreateRequestSignature(t *testing.T) {
	g := NewMoMoGateway(momoTestConfig, time.Second)

	body := g.buildCreateRequest(momoTestOrder())
	want := "0ddbffd3933e98d4de94f7daef85cc24aece1ec2701ecf070f69c34bc4bbad35"
	if body.Signature != want {
		t.Fatalf("signature = %q, want %q", body.Signature, want)
	}
	if body.RequestType != "captureWallet" {
		t.Fatalf("requestType = %q", body.RequestType)
	}
	if body.ExtraData != "" {
		t.Fatalf("extraData = %q, want empty placeholder", body.ExtraData)
	}
}

func TestBuildCreateRequestSignatureIgnoresUnsignedFields(t *testing.T) {
	g := NewMoMoGateway(momoTestConfig, time.Second)

	plain := g.buildCreateRequest(momoTestOrder())

	// Items, lang and store name sit in the payload but outside the signed
	// field set; changing them must not move the signature.
	other := momoTestOrder()
	other.Lang = "en"
	other.Items = []entities.PaymentItem{{Name: "premium", Price: 50000, Currency: "VND", Quantity: 1, TotalPrice: 50000}}
	withExtras := g.buildCreateRequest(other)

	if plain.Signature != withExtras.Signature {
		t.Fatalf("signature depends on unsigned fields: %q vs %q", plain.Signature, withExtras.Signature)
	}
}

func TestCreatePaymentSuccess(t *testing.T) {
	var received momoCreateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/create" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &received); err != nil {
			t.Errorf("payload not json: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"resultCode":0,"message":"ok","payUrl":"https://pay.example.com/abc"}`))
	}))
	defer srv.Close()

	cfg := momoTestConfig
	cfg.Endpoint = srv.URL
	g := NewMoMoGateway(cfg, time.Second)

	payURL, err := g.CreatePayment(context.Background(), momoTestOrder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payURL != "https://pay.example.com/abc" {
		t.Fatalf("payUrl = %q", payURL)
	}
	if received.OrderID != "65f0a1b2c3d4e5f6a7b8c9d0" || received.PartnerCode != "MOMO" {
		t.Fatalf("unexpected wire payload: %+v", received)
	}
	if received.Signature == "" {
		t.Fatalf("wire payload missing signature")
	}
	if received.Items == nil {
		t.Fatalf("items must marshal as [], not null")
	}
}

func TestCreatePaymentRejectedWithoutPayURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"resultCode":41,"message":"invalid signature"}`))
	}))
	defer srv.Close()

	cfg := momoTestConfig
	cfg.Endpoint = srv.URL
	g := NewMoMoGateway(cfg, time.Second)

	_, err := g.CreatePayment(context.Background(), momoTestOrder())
	if !errors.Is(err, ErrGatewayRejected) {
		t.Fatalf("expected ErrGatewayRejected, got %v", err)
	}
	// Raw response rides along for diagnostics.
	if !strings.Contains(err.Error(), "invalid signature") {
		t.Fatalf("error does not carry raw response: %v", err)
	}
}

func TestCreatePaymentCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server can detect the client disconnect and
		// cancel the request context; otherwise this handler never unblocks
		// and srv.Close deadlocks.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	cfg := momoTestConfig
	cfg.Endpoint = srv.URL
	g := NewMoMoGateway(cfg, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := g.CreatePayment(ctx, momoTestOrder()); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestVerifyNotification(t *testing.T) {
	g := NewMoMoGateway(momoTestConfig, time.Second)

	n := entities.PaymentNotification{
		PartnerCode:  "MOMO",
		OrderID:      "65f0a1b2c3d4e5f6a7b8c9d0",
		RequestID:    "65f0a1b2c3d4e5f6a7b8c9d1",
		Amount:       50000,
		OrderInfo:    "pay with MoMo",
		OrderType:    "momo_wallet",
		TransID:      4088878653,
		ResultCode:   0,
		Message:      "Successful.",
		PayType:      "qr",
		ResponseTime: 1710000000000,
	}
	n.Signature = SignSHA256(CanonicalSigningString(map[string]string{
		"accessKey":    momoTestConfig.AccessKey,
		"amount":       "50000",
		"extraData":    "",
		"message":      n.Message,
		"orderId":      n.OrderID,
		"orderInfo":    n.OrderInfo,
		"orderType":    n.OrderType,
		"partnerCode":  n.PartnerCode,
		"payType":      n.PayType,
		"requestId":    n.RequestID,
		"responseTime": "1710000000000",
		"resultCode":   "0",
		"transId":      "4088878653",
	}), momoTestConfig.SecretKey)

	if !g.VerifyNotification(n) {
		t.Fatalf("expected valid signature to verify")
	}

	tampered := n
	tampered.Amount = 99999
	if g.VerifyNotification(tampered) {
		t.Fatalf("tampered notification must not verify")
	}

	unsigned := n
	unsigned.Signature = ""
	if g.VerifyNotification(unsigned) {
		t.Fatalf("empty signature must not verify")
	}
}
