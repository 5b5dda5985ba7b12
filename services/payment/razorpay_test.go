package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "test_secret_key"
	orderID := "order_MkX3abc123"
	paymentID := "pay_NpQ9def456"

	valid := signPayload(orderID, paymentID, secret)
	assert.True(t, VerifySignature(orderID, paymentID, valid, secret))
}

func TestVerifySignatureRejectsTampering(t *testing.T) {
	secret := "test_secret_key"
	valid := signPayload("order_MkX3abc123", "pay_NpQ9def456", secret)

	// wrong order
	assert.False(t, VerifySignature("order_other", "pay_NpQ9def456", valid, secret))
	// wrong payment
	assert.False(t, VerifySignature("order_MkX3abc123", "pay_other", valid, secret))
	// wrong secret
	assert.False(t, VerifySignature("order_MkX3abc123", "pay_NpQ9def456", valid, "other_secret"))
	// garbage signature
	assert.False(t, VerifySignature("order_MkX3abc123", "pay_NpQ9def456", "not-a-signature", secret))
	assert.False(t, VerifySignature("order_MkX3abc123", "pay_NpQ9def456", "", secret))
}
