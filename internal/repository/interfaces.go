package repository

import (
	"context"
	"errors"
	"time"

	"github.com/campuspay/smartcard-backend/internal/models"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadySettled = errors.New("order already settled")

	// Returned when a conditional debit finds less balance than the service
	// saw at check time (a concurrent payment won the race).
	ErrInsufficientStudentBalance = errors.New("insufficient student balance")
	ErrInsufficientVendorBalance  = errors.New("insufficient vendor balance")
)

type Students interface {
	GetByID(ctx context.Context, studentID string) (models.Student, error)
	UpdateParentPhone(ctx context.Context, studentID, phone string) error
}

type Vendors interface {
	GetByID(ctx context.Context, vendorID string) (models.Vendor, error)
}

// Purchase is the unit of work RecordPurchase applies atomically.
type Purchase struct {
	ID            string
	StudentID     string
	VendorID      string
	AmountPaise   int64
	Description   string
	FormattedDate string
	Now           time.Time
}

type PurchaseResult struct {
	Transaction         models.Transaction
	StudentBalancePaise int64
	VendorBalancePaise  int64
}

type RechargeSettlement struct {
	Transaction        models.Transaction
	WalletBalancePaise int64
	VendorBalancePaise int64
}

type Transactions interface {
	Create(ctx context.Context, txn models.Transaction) (models.Transaction, error)
	GetByOrderID(ctx context.Context, orderID string) (models.Transaction, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Transaction, error)
	ListByVendor(ctx context.Context, vendorID string) ([]models.Transaction, error)

	// SettleRecharge credits the student wallet and the vendor balance by the
	// order's recorded amount and completes the pending order, all inside one
	// serializable transaction. A settled order returns ErrAlreadySettled.
	SettleRecharge(ctx context.Context, orderID, paymentID, studentID, vendorID string, completedAt time.Time, formattedDate string) (RechargeSettlement, error)

	// RecordPurchase debits the student and vendor balances and appends the
	// completed purchase inside one serializable transaction. Debits are
	// conditional on sufficient balance.
	RecordPurchase(ctx context.Context, p Purchase) (PurchaseResult, error)
}
