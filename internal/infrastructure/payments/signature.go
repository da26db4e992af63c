package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// CanonicalSigningString builds the deterministic string a payment gateway
// recomputes on its side: field names sorted by byte order, joined as
// key=value pairs with "&", values raw (never URL-encoded).
//
// The result depends only on the field set passed in; insertion order is
// irrelevant by construction. Callers must pass exactly the fields the target
// provider signs over, nothing else.
func CanonicalSigningString(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(fields[k])
	}
	return b.String()
}

// SignSHA256 returns the lowercase-hex HMAC-SHA256 of raw under secretKey.
func SignSHA256(raw, secretKey string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}
