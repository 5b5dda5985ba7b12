package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"lms/config"

	"github.com/go-resty/resty/v2"
)

// Order is the gateway's view of a created payment order
type Order struct {
	ID       string `json:"id"`
	Amount   uint   `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Gateway creates payment orders for priced items. Implemented by the
// Razorpay client below; tests substitute a stub.
type Gateway interface {
	CreateOrder(amount uint, currency, receipt string, notes map[string]string) (*Order, error)
}

// RazorpayClient talks to the Razorpay Orders API
type RazorpayClient struct {
	client    *resty.Client
	keyID     string
	keySecret string
}

// NewRazorpayClient builds a client from the loaded app config
func NewRazorpayClient() *RazorpayClient {
	return &RazorpayClient{
		client:    resty.New().SetBaseURL(config.AppConfig.RazorpayApiURL),
		keyID:     config.AppConfig.RazorpayKeyID,
		keySecret: config.AppConfig.RazorpayKeySecret,
	}
}

// CreateOrder creates an order on Razorpay. Amount is in the smallest
// currency unit (paise for INR).
func (r *RazorpayClient) CreateOrder(amount uint, currency, receipt string, notes map[string]string) (*Order, error) {
	body := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		body["notes"] = notes
	}

	resp, err := r.client.R().
		SetBasicAuth(r.keyID, r.keySecret).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("orders")
	if err != nil {
		return nil, fmt.Errorf("failed to create payment order: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("payment gateway error: %s", resp.String())
	}

	var order Order
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %v", err)
	}

	return &order, nil
}

// VerifySignature checks the HMAC-SHA256 signature Razorpay sends with
// a successful checkout: hex(hmac_sha256(orderId + "|" + paymentId)).
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
