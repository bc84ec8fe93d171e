package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/campuspay/smartcard-backend/internal/api/httpx"
	"github.com/campuspay/smartcard-backend/internal/api/validate"
	"github.com/campuspay/smartcard-backend/internal/money"
	"github.com/campuspay/smartcard-backend/internal/services"
	"github.com/shopspring/decimal"
)

// PaymentFlow is the slice of the payment service the HTTP layer uses.
type PaymentFlow interface {
	CreateRechargeOrder(ctx context.Context, studentID, vendorID string, amount decimal.Decimal) (services.RechargeOrder, error)
	VerifyRechargePayment(ctx context.Context, in services.VerifyRechargeInput) (int64, error)
	ProcessStudentPayment(ctx context.Context, in services.PurchaseInput) (services.PurchaseOutput, error)
}

type PaymentHandler struct {
	Flow PaymentFlow
}

func NewPaymentHandler(f PaymentFlow) *PaymentHandler { return &PaymentHandler{Flow: f} }

type rechargeOrderReq struct {
	StudentID string          `json:"student_id"`
	VendorID  string          `json:"vendor_id"`
	Amount    decimal.Decimal `json:"amount"`
}

type rechargeOrderResp struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Key      string `json:"key"`
}

func (h *PaymentHandler) CreateRechargeOrder(w http.ResponseWriter, r *http.Request) {
	var req rechargeOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	if err := validate.Collect(
		validate.Required("student_id", req.StudentID),
		validate.Required("vendor_id", req.VendorID),
	); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "validation failed", err)
		return
	}

	order, err := h.Flow.CreateRechargeOrder(r.Context(), req.StudentID, req.VendorID, req.Amount)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rechargeOrderResp{
		ID:       order.OrderID,
		Amount:   order.AmountPaise,
		Currency: order.Currency,
		Key:      order.Key,
	})
}

type verifyPaymentReq struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
	StudentID string `json:"student_id"`
	VendorID  string `json:"vendor_id"`
}

type verifyPaymentResp struct {
	Status     string  `json:"status"`
	Message    string  `json:"message"`
	NewBalance float64 `json:"new_balance"`
}

func (h *PaymentHandler) VerifyRechargePayment(w http.ResponseWriter, r *http.Request) {
	var req verifyPaymentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}

	wallet, err := h.Flow.VerifyRechargePayment(r.Context(), services.VerifyRechargeInput{
		PaymentID: req.PaymentID,
		OrderID:   req.OrderID,
		Signature: req.Signature,
		StudentID: req.StudentID,
		VendorID:  req.VendorID,
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, verifyPaymentResp{
		Status:     "success",
		Message:    "Payment verified and processed successfully",
		NewBalance: money.Rupees(wallet),
	})
}

type studentPaymentReq struct {
	StudentID   string          `json:"student_id"`
	VendorID    string          `json:"vendor_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Password    string          `json:"password"`
}

type studentPaymentResp struct {
	Status          string  `json:"status"`
	Message         string  `json:"message"`
	StudentBalance  float64 `json:"student_balance"`
	VendorBalance   float64 `json:"vendor_balance"`
	TransactionDate string  `json:"transaction_date"`
	TransactionID   string  `json:"transaction_id"`
}

func (h *PaymentHandler) ProcessStudentPayment(w http.ResponseWriter, r *http.Request) {
	var req studentPaymentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	if err := validate.Collect(
		validate.Required("student_id", req.StudentID),
		validate.Required("vendor_id", req.VendorID),
		validate.Required("password", req.Password),
	); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "validation failed", err)
		return
	}

	out, err := h.Flow.ProcessStudentPayment(r.Context(), services.PurchaseInput{
		StudentID:   req.StudentID,
		VendorID:    req.VendorID,
		Amount:      req.Amount,
		Description: req.Description,
		PIN:         req.Password,
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, studentPaymentResp{
		Status:          "success",
		Message:         "Payment processed successfully",
		StudentBalance:  money.Rupees(out.StudentBalancePaise),
		VendorBalance:   money.Rupees(out.VendorBalancePaise),
		TransactionDate: out.TransactionDate,
		TransactionID:   out.TransactionID,
	})
}
