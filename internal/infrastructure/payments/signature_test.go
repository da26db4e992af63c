package payments

import "testing"

func TestCanonicalSigningStringSortsByFieldName(t *testing.T) {
	got := CanonicalSigningString(map[string]string{
		"orderId":   "A",
		"accessKey": "B",
	})
	want := "accessKey=B&orderId=A"
	if got != want {
		t.Fatalf("canonical string = %q, want %q", got, want)
	}
}

func TestCanonicalSigningStringKeepsRawValues(t *testing.T) {
	// Values go in unescaped: the gateway recomputes over raw bytes.
	got := CanonicalSigningString(map[string]string{
		"redirectUrl": "https://example.com/return?a=1&b=2",
		"orderInfo":   "pay with MoMo",
		"extraData":   "",
	})
	want := "extraData=&orderInfo=pay with MoMo&redirectUrl=https://example.com/return?a=1&b=2"
	if got != want {
		t.Fatalf("canonical string = %q, want %q", got, want)
	}
}

func TestSignSHA256PinnedVector(t *testing.T) {
	// Known-good HMAC-SHA256("a=1&b=2", "secret"), pinned against an
	// independent implementation.
	got := SignSHA256("a=1&b=2", "secret")
	want := "604fe97c66c6393ff22e3cae366eee1131e351ebc736bf12f5d62e1755b7a233"
	if got != want {
		t.Fatalf("signature = %q, want %q", got, want)
	}
}

func TestSignatureDeterministic(t *testing.T) {
	fields := map[string]string{
		"requestType": "captureWallet",
		"accessKey":   "F8BBA842ECF85",
		"amount":      "50000",
		"extraData":   "",
		"ipnUrl":      "https://example.com/ipn",
		"orderId":     "65f0a1b2c3d4e5f6a7b8c9d0",
		"orderInfo":   "pay with MoMo",
		"partnerCode": "MOMO",
		"redirectUrl": "https://example.com/return",
		"requestId":   "65f0a1b2c3d4e5f6a7b8c9d1",
	}

	first := SignSHA256(CanonicalSigningString(fields), "K951B6PE1waDMi640xX08PD3vg6EkVlz")
	for i := 0; i < 50; i++ {
		// Map iteration order varies run to run; the signature must not.
		if got := SignSHA256(CanonicalSigningString(fields), "K951B6PE1waDMi640xX08PD3vg6EkVlz"); got != first {
			t.Fatalf("signature changed between computations: %q vs %q", first, got)
		}
	}

	want := "0ddbffd3933e98d4de94f7daef85cc24aece1ec2701ecf070f69c34bc4bbad35"
	if first != want {
		t.Fatalf("signature = %q, want %q", first, want)
	}
}
