package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campuspay/smartcard-backend/internal/api/httpx"
	"github.com/campuspay/smartcard-backend/internal/services"
)

// writeDomainErr maps the service error taxonomy onto HTTP statuses.
// Unclassified errors get an opaque body; the detail stays in the server log.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrStudentNotFound):
		httpx.WriteError(w, http.StatusNotFound, "student_not_found", "Student not found", nil)
	case errors.Is(err, services.ErrVendorNotFound):
		httpx.WriteError(w, http.StatusNotFound, "vendor_not_found", "Vendor not found", nil)
	case errors.Is(err, services.ErrOrderNotFound):
		httpx.WriteError(w, http.StatusNotFound, "order_not_found", "Order not found", nil)
	case errors.Is(err, services.ErrInvalidPIN):
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Invalid student password", nil)
	case errors.Is(err, services.ErrInsufficientBalance):
		httpx.WriteError(w, http.StatusBadRequest, "insufficient_balance", "Insufficient balance", nil)
	case errors.Is(err, services.ErrInsufficientVendorBalance):
		httpx.WriteError(w, http.StatusBadRequest, "insufficient_vendor_balance", "Insufficient vendor balance", nil)
	case errors.Is(err, services.ErrSignatureMismatch):
		httpx.WriteError(w, http.StatusBadRequest, "verification_failed", "Payment verification failed", nil)
	case errors.Is(err, services.ErrAlreadyProcessed):
		httpx.WriteError(w, http.StatusBadRequest, "already_processed", "Payment already processed", nil)
	case errors.Is(err, services.ErrInvalidAmount):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_amount", "Invalid amount", nil)
	case errors.Is(err, services.ErrGateway):
		slog.Error("gateway failure", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "gateway_error", "Failed to create payment order", nil)
	default:
		slog.Error("unhandled error", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}
