package handlers

import (
	"context"
	"net/http"

	"github.com/campuspay/smartcard-backend/internal/api/httpx"
	"github.com/campuspay/smartcard-backend/internal/models"
	"github.com/campuspay/smartcard-backend/internal/money"
	"github.com/campuspay/smartcard-backend/internal/services"
	"github.com/go-chi/chi/v5"
)

type VendorReader interface {
	Get(ctx context.Context, vendorID string) (models.Vendor, error)
	Transactions(ctx context.Context, vendorID string) ([]models.Transaction, int64, error)
	QR(ctx context.Context, vendorID string) (services.VendorQR, error)
}

type VendorHandler struct {
	Svc VendorReader
}

func NewVendorHandler(s VendorReader) *VendorHandler { return &VendorHandler{Svc: s} }

type vendorResp struct {
	VendorID string  `json:"vendor_id"`
	Name     string  `json:"name"`
	UPIID    string  `json:"upi_id"`
	Balance  float64 `json:"balance"`
}

func (h *VendorHandler) Get(w http.ResponseWriter, r *http.Request) {
	v, err := h.Svc.Get(r.Context(), chi.URLParam(r, "vendor_id"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, vendorResp{
		VendorID: v.VendorID,
		Name:     v.Name,
		UPIID:    v.UPIID,
		Balance:  money.Rupees(v.BalancePaise),
	})
}

func (h *VendorHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	txns, balance, err := h.Svc.Transactions(r.Context(), chi.URLParam(r, "vendor_id"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"transactions":    txns,
		"current_balance": money.Rupees(balance),
	})
}

type vendorQRResp struct {
	QRCode     string  `json:"qr_code"`
	VendorName string  `json:"vendor_name"`
	UPIID      string  `json:"upi_id"`
	Balance    float64 `json:"balance"`
}

func (h *VendorHandler) QR(w http.ResponseWriter, r *http.Request) {
	q, err := h.Svc.QR(r.Context(), chi.URLParam(r, "vendor_id"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, vendorQRResp{
		QRCode:     q.QRCode,
		VendorName: q.VendorName,
		UPIID:      q.UPIID,
		Balance:    money.Rupees(q.BalancePaise),
	})
}
