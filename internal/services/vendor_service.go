package services

import (
	"context"
	"encoding/json"

	"github.com/campuspay/smartcard-backend/internal/models"
	"github.com/campuspay/smartcard-backend/internal/qr"
	repo "github.com/campuspay/smartcard-backend/internal/repository"
)

type VendorService struct {
	vendors repo.Vendors
	txns    repo.Transactions
}

func NewVendorService(v repo.Vendors, t repo.Transactions) *VendorService {
	return &VendorService{vendors: v, txns: t}
}

func (s *VendorService) Get(ctx context.Context, vendorID string) (models.Vendor, error) {
	v, err := s.vendors.GetByID(ctx, vendorID)
	if err != nil {
		return models.Vendor{}, mapNotFound(err, ErrVendorNotFound)
	}
	return v, nil
}

// Transactions returns the raw vendor transaction log plus the current balance.
func (s *VendorService) Transactions(ctx context.Context, vendorID string) ([]models.Transaction, int64, error) {
	v, err := s.vendors.GetByID(ctx, vendorID)
	if err != nil {
		return nil, 0, mapNotFound(err, ErrVendorNotFound)
	}
	txns, err := s.txns.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, 0, err
	}
	return txns, v.BalancePaise, nil
}

type VendorQR struct {
	QRCode       string
	VendorName   string
	UPIID        string
	BalancePaise int64
}

// QR encodes the vendor identity and payment address for students to scan.
func (s *VendorService) QR(ctx context.Context, vendorID string) (VendorQR, error) {
	v, err := s.vendors.GetByID(ctx, vendorID)
	if err != nil {
		return VendorQR{}, mapNotFound(err, ErrVendorNotFound)
	}
	payload, err := json.Marshal(map[string]string{
		"vendor_id": v.VendorID,
		"name":      v.Name,
		"upi_id":    v.UPIID,
	})
	if err != nil {
		return VendorQR{}, err
	}
	uri, err := qr.DataURI(string(payload))
	if err != nil {
		return VendorQR{}, err
	}
	return VendorQR{QRCode: uri, VendorName: v.Name, UPIID: v.UPIID, BalancePaise: v.BalancePaise}, nil
}
