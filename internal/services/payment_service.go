package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campuspay/smartcard-backend/internal/auth"
	"github.com/campuspay/smartcard-backend/internal/gateway"
	"github.com/campuspay/smartcard-backend/internal/metrics"
	"github.com/campuspay/smartcard-backend/internal/models"
	"github.com/campuspay/smartcard-backend/internal/money"
	"github.com/campuspay/smartcard-backend/internal/notify"
	repo "github.com/campuspay/smartcard-backend/internal/repository"
	"github.com/shopspring/decimal"
)

// DateFormat is the human-readable timestamp carried on every transaction.
const DateFormat = "02/01/2006, 15:04:05"

// Notifier is the slice of the notification bridge the payment flow needs.
type Notifier interface {
	Dispatch(phone, message string)
}

type PaymentService struct {
	students repo.Students
	vendors  repo.Vendors
	txns     repo.Transactions
	gw       gateway.Client
	notifier Notifier
	currency string
	now      func() time.Time
}

func NewPaymentService(s repo.Students, v repo.Vendors, t repo.Transactions, gw gateway.Client, n Notifier, currency string) *PaymentService {
	return &PaymentService{
		students: s,
		vendors:  v,
		txns:     t,
		gw:       gw,
		notifier: n,
		currency: currency,
		now:      time.Now,
	}
}

type RechargeOrder struct {
	OrderID     string
	AmountPaise int64
	Currency    string
	Key         string
}

// CreateRechargeOrder opens a gateway order for a wallet top-up and logs it as
// a pending recharge. Balances are not touched here; only a verified payment
// moves money.
func (s *PaymentService) CreateRechargeOrder(ctx context.Context, studentID, vendorID string, amount decimal.Decimal) (RechargeOrder, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return RechargeOrder{}, mapNotFound(err, ErrStudentNotFound)
	}
	vendor, err := s.vendors.GetByID(ctx, vendorID)
	if err != nil {
		return RechargeOrder{}, mapNotFound(err, ErrVendorNotFound)
	}

	paise, err := money.ToPaise(amount)
	if err != nil {
		return RechargeOrder{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	order, err := s.gw.CreateOrder(ctx, gateway.OrderRequest{
		AmountPaise: paise,
		Currency:    s.currency,
		Notes: map[string]string{
			"student_id": studentID,
			"vendor_id":  vendorID,
		},
	})
	if err != nil {
		metrics.PaymentsFailed.WithLabelValues(string(models.TxnRecharge)).Inc()
		return RechargeOrder{}, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	now := s.now()
	orderID := order.ID
	_, err = s.txns.Create(ctx, models.Transaction{
		OrderID:       &orderID,
		StudentID:     studentID,
		VendorID:      vendorID,
		AmountPaise:   paise,
		Type:          models.TxnRecharge,
		Status:        models.TxnPending,
		FormattedDate: now.Format(DateFormat),
		CreatedAt:     now,
	})
	if err != nil {
		return RechargeOrder{}, err
	}

	s.notifyParent(student, notify.FormatRechargeMessage(paise, vendor.Name, student.Name))

	return RechargeOrder{
		OrderID:     order.ID,
		AmountPaise: paise,
		Currency:    s.currency,
		Key:         s.gw.KeyID(),
	}, nil
}

type VerifyRechargeInput struct {
	PaymentID string
	OrderID   string
	Signature string
	StudentID string
	VendorID  string
}

// VerifyRechargePayment checks the gateway signature and, in one atomic unit,
// credits the student wallet and the vendor balance and completes the pending
// order. Replayed verifications of a settled order are rejected.
func (s *PaymentService) VerifyRechargePayment(ctx context.Context, in VerifyRechargeInput) (int64, error) {
	if !s.gw.VerifySignature(in.OrderID, in.PaymentID, in.Signature) {
		return 0, ErrSignatureMismatch
	}

	if _, err := s.txns.GetByOrderID(ctx, in.OrderID); err != nil {
		return 0, mapNotFound(err, ErrOrderNotFound)
	}
	student, err := s.students.GetByID(ctx, in.StudentID)
	if err != nil {
		return 0, mapNotFound(err, ErrStudentNotFound)
	}
	vendor, err := s.vendors.GetByID(ctx, in.VendorID)
	if err != nil {
		return 0, mapNotFound(err, ErrVendorNotFound)
	}

	now := s.now()
	settled, err := s.txns.SettleRecharge(ctx, in.OrderID, in.PaymentID, in.StudentID, in.VendorID, now, now.Format(DateFormat))
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrAlreadySettled):
			return 0, ErrAlreadyProcessed
		case errors.Is(err, repo.ErrNotFound):
			return 0, ErrOrderNotFound
		}
		metrics.PaymentsFailed.WithLabelValues(string(models.TxnRecharge)).Inc()
		return 0, err
	}
	metrics.PaymentsTotal.WithLabelValues(string(models.TxnRecharge)).Inc()

	// The recharge alert goes out again on settlement; the duplicate with the
	// order-creation alert is accepted behavior.
	s.notifyParent(student, notify.FormatRechargeMessage(settled.Transaction.AmountPaise, vendor.Name, student.Name))

	return settled.WalletBalancePaise, nil
}

type PurchaseInput struct {
	StudentID   string
	VendorID    string
	Amount      decimal.Decimal
	Description string
	PIN         string
}

type PurchaseOutput struct {
	StudentBalancePaise int64
	VendorBalancePaise  int64
	TransactionID       string
	TransactionDate     string
}

// ProcessStudentPayment authorizes a direct student->vendor purchase with the
// card PIN and settles both balances plus the completed transaction in one
// atomic unit.
func (s *PaymentService) ProcessStudentPayment(ctx context.Context, in PurchaseInput) (PurchaseOutput, error) {
	student, err := s.students.GetByID(ctx, in.StudentID)
	if err != nil {
		return PurchaseOutput{}, mapNotFound(err, ErrStudentNotFound)
	}
	if err := auth.VerifyPIN(in.PIN, student.PINHash); err != nil {
		return PurchaseOutput{}, ErrInvalidPIN
	}

	paise, err := money.ToPaise(in.Amount)
	if err != nil {
		return PurchaseOutput{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	if student.BalancePaise < paise {
		return PurchaseOutput{}, ErrInsufficientBalance
	}

	vendor, err := s.vendors.GetByID(ctx, in.VendorID)
	if err != nil {
		return PurchaseOutput{}, mapNotFound(err, ErrVendorNotFound)
	}
	if vendor.BalancePaise < paise {
		return PurchaseOutput{}, ErrInsufficientVendorBalance
	}

	now := s.now()
	result, err := s.txns.RecordPurchase(ctx, repo.Purchase{
		StudentID:     in.StudentID,
		VendorID:      in.VendorID,
		AmountPaise:   paise,
		Description:   in.Description,
		FormattedDate: now.Format(DateFormat),
		Now:           now,
	})
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrInsufficientStudentBalance):
			return PurchaseOutput{}, ErrInsufficientBalance
		case errors.Is(err, repo.ErrInsufficientVendorBalance):
			return PurchaseOutput{}, ErrInsufficientVendorBalance
		}
		metrics.PaymentsFailed.WithLabelValues(string(models.TxnPurchase)).Inc()
		return PurchaseOutput{}, err
	}
	metrics.PaymentsTotal.WithLabelValues(string(models.TxnPurchase)).Inc()

	s.notifyParent(student, notify.FormatPurchaseMessage(paise, vendor.Name, student.Name))

	return PurchaseOutput{
		StudentBalancePaise: result.StudentBalancePaise,
		VendorBalancePaise:  result.VendorBalancePaise,
		TransactionID:       result.Transaction.ID,
		TransactionDate:     result.Transaction.FormattedDate,
	}, nil
}

func (s *PaymentService) notifyParent(student models.Student, message string) {
	if student.ParentPhone == nil || *student.ParentPhone == "" {
		return
	}
	s.notifier.Dispatch(*student.ParentPhone, message)
}

func mapNotFound(err, domain error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return domain
	}
	return err
}
