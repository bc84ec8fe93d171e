package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	c := NewRazorpay("http://unused", "key_id", "s3cret")

	good := sign("s3cret", "order_1", "pay_1")
	if !c.VerifySignature("order_1", "pay_1", good) {
		t.Fatal("valid signature rejected")
	}

	flipped := "0"
	if good[len(good)-1] == '0' {
		flipped = "1"
	}
	bad := []string{
		"",
		good[:len(good)-1] + flipped,
		sign("other-secret", "order_1", "pay_1"),
		sign("s3cret", "order_2", "pay_1"),
		sign("s3cret", "order_1", "pay_2"),
	}
	for _, sig := range bad {
		if c.VerifySignature("order_1", "pay_1", sig) {
			t.Fatalf("tampered signature accepted: %q", sig)
		}
	}
}

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/orders" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key_id" || pass != "s3cret" {
			t.Fatal("missing basic auth")
		}
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["amount"].(float64) != 20000 || body["currency"].(string) != "INR" {
			t.Fatalf("unexpected order body: %v", body)
		}
		if body["payment_capture"].(float64) != 1 {
			t.Fatal("auto capture not requested")
		}
		notes := body["notes"].(map[string]interface{})
		if notes["student_id"] != "S1" {
			t.Fatalf("notes not forwarded: %v", notes)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id": "order_xyz", "amount": 20000, "currency": "INR",
		})
	}))
	defer srv.Close()

	c := NewRazorpay(srv.URL, "key_id", "s3cret")
	order, err := c.CreateOrder(context.Background(), OrderRequest{
		AmountPaise: 20000,
		Currency:    "INR",
		Notes:       map[string]string{"student_id": "S1", "vendor_id": "V1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != "order_xyz" || order.AmountPaise != 20000 || order.Currency != "INR" {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestCreateOrderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewRazorpay(srv.URL, "key_id", "s3cret")
	if _, err := c.CreateOrder(context.Background(), OrderRequest{AmountPaise: 100, Currency: "INR"}); err == nil {
		t.Fatal("expected error on gateway failure")
	}
}
