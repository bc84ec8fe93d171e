package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/campuspay/smartcard-backend/internal/api/httpx"
	"github.com/campuspay/smartcard-backend/internal/api/validate"
)

type OtpVerifier interface {
	VerifyOtp(ctx context.Context, phone, code, serviceSID string) bool
}

type OTPHandler struct {
	Bridge OtpVerifier
}

func NewOTPHandler(b OtpVerifier) *OTPHandler { return &OTPHandler{Bridge: b} }

type otpReq struct {
	PhoneNumber string `json:"phone_number"`
	OTPCode     string `json:"otp_code"`
	ServiceSID  string `json:"service_sid"`
}

func (h *OTPHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req otpReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	if err := validate.Collect(
		validate.Required("phone_number", req.PhoneNumber),
		validate.Required("otp_code", req.OTPCode),
		validate.Required("service_sid", req.ServiceSID),
	); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "validation failed", err)
		return
	}

	verified := h.Bridge.VerifyOtp(r.Context(), req.PhoneNumber, req.OTPCode, req.ServiceSID)
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"verified": verified})
}
