package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

type razorpayClient struct {
	rest      *resty.Client
	breaker   *gobreaker.CircuitBreaker
	keyID     string
	keySecret string
}

// NewRazorpay builds a gateway client over the Razorpay orders API. Calls go
// through a circuit breaker so a failing gateway sheds load fast instead of
// holding request handlers on timeouts.
func NewRazorpay(baseURL, keyID, keySecret string) Client {
	rest := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(keyID, keySecret).
		SetTimeout(10 * time.Second).
		SetRetryCount(0)

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "payment-gateway",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
	})

	return &razorpayClient{rest: rest, breaker: cb, keyID: keyID, keySecret: keySecret}
}

type orderCreateBody struct {
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	PaymentCapture int               `json:"payment_capture"`
	Notes          map[string]string `json:"notes,omitempty"`
}

func (c *razorpayClient) CreateOrder(ctx context.Context, req OrderRequest) (Order, error) {
	res, err := c.breaker.Execute(func() (interface{}, error) {
		var order Order
		resp, err := c.rest.R().
			SetContext(ctx).
			SetBody(orderCreateBody{
				Amount:         req.AmountPaise,
				Currency:       req.Currency,
				PaymentCapture: 1,
				Notes:          req.Notes,
			}).
			SetResult(&order).
			Post("/v1/orders")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("order create: %s", resp.Status())
		}
		return order, nil
	})
	if err != nil {
		return Order{}, err
	}
	return res.(Order), nil
}

func (c *razorpayClient) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (c *razorpayClient) KeyID() string { return c.keyID }
