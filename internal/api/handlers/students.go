package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/campuspay/smartcard-backend/internal/api/httpx"
	"github.com/campuspay/smartcard-backend/internal/api/validate"
	"github.com/campuspay/smartcard-backend/internal/models"
	"github.com/campuspay/smartcard-backend/internal/money"
	"github.com/campuspay/smartcard-backend/internal/services"
	"github.com/go-chi/chi/v5"
)

type StudentReader interface {
	Get(ctx context.Context, studentID string) (models.Student, error)
	Transactions(ctx context.Context, studentID string) ([]services.TransactionSummary, error)
	QR(ctx context.Context, studentID string) (services.StudentQR, error)
	UpdateParentPhone(ctx context.Context, studentID, phone string) error
}

type StudentHandler struct {
	Svc StudentReader
}

func NewStudentHandler(s StudentReader) *StudentHandler { return &StudentHandler{Svc: s} }

type studentResp struct {
	StudentID     string  `json:"student_id"`
	Name          string  `json:"name"`
	Balance       float64 `json:"balance"`
	WalletBalance float64 `json:"wallet_balance"`
	ParentPhone   *string `json:"parent_phone,omitempty"`
	ParentName    *string `json:"parent_name,omitempty"`
}

func (h *StudentHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.Svc.Get(r.Context(), chi.URLParam(r, "student_id"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, studentResp{
		StudentID:     s.StudentID,
		Name:          s.Name,
		Balance:       money.Rupees(s.BalancePaise),
		WalletBalance: money.Rupees(s.WalletBalancePaise),
		ParentPhone:   s.ParentPhone,
		ParentName:    s.ParentName,
	})
}

func (h *StudentHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	txns, err := h.Svc.Transactions(r.Context(), chi.URLParam(r, "student_id"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{"transactions": txns})
}

type studentQRResp struct {
	QRCode      string  `json:"qr_code"`
	StudentName string  `json:"student_name"`
	Balance     float64 `json:"balance"`
}

func (h *StudentHandler) QR(w http.ResponseWriter, r *http.Request) {
	q, err := h.Svc.QR(r.Context(), chi.URLParam(r, "student_id"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, studentQRResp{
		QRCode:      q.QRCode,
		StudentName: q.StudentName,
		Balance:     money.Rupees(q.BalancePaise),
	})
}

type parentPhoneReq struct {
	StudentID string `json:"student_id"`
	Phone     string `json:"phone"`
}

func (h *StudentHandler) UpdateParentPhone(w http.ResponseWriter, r *http.Request) {
	var req parentPhoneReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	if err := validate.Collect(
		validate.Required("student_id", req.StudentID),
		validate.Required("phone", req.Phone),
	); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "validation failed", err)
		return
	}
	if err := h.Svc.UpdateParentPhone(r.Context(), req.StudentID, req.Phone); err != nil {
		writeDomainErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Parent phone number updated successfully"})
}
