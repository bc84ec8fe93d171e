// Package gateway talks to the payment gateway: creating payable orders and
// verifying the signature the gateway attaches to completed payments.
package gateway

import "context"

type OrderRequest struct {
	AmountPaise int64
	Currency    string
	Notes       map[string]string
}

type Order struct {
	ID          string `json:"id"`
	AmountPaise int64  `json:"amount"`
	Currency    string `json:"currency"`
}

type Client interface {
	CreateOrder(ctx context.Context, req OrderRequest) (Order, error)
	// VerifySignature reports whether signature binds orderID and paymentID
	// under the gateway's shared secret.
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}
