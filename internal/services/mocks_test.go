package services

import (
	"context"
	"errors"
	"time"

	"github.com/campuspay/smartcard-backend/internal/gateway"
	"github.com/campuspay/smartcard-backend/internal/models"
	repo "github.com/campuspay/smartcard-backend/internal/repository"
)

var errMockUnset = errors.New("mock not configured")

type mockStudents struct {
	GetByIDFunc           func(ctx context.Context, studentID string) (models.Student, error)
	UpdateParentPhoneFunc func(ctx context.Context, studentID, phone string) error
}

func (m *mockStudents) GetByID(ctx context.Context, studentID string) (models.Student, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, studentID)
	}
	return models.Student{}, errMockUnset
}

func (m *mockStudents) UpdateParentPhone(ctx context.Context, studentID, phone string) error {
	if m.UpdateParentPhoneFunc != nil {
		return m.UpdateParentPhoneFunc(ctx, studentID, phone)
	}
	return errMockUnset
}

type mockVendors struct {
	GetByIDFunc func(ctx context.Context, vendorID string) (models.Vendor, error)
}

func (m *mockVendors) GetByID(ctx context.Context, vendorID string) (models.Vendor, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, vendorID)
	}
	return models.Vendor{}, errMockUnset
}

type mockTransactions struct {
	CreateFunc         func(ctx context.Context, txn models.Transaction) (models.Transaction, error)
	GetByOrderIDFunc   func(ctx context.Context, orderID string) (models.Transaction, error)
	ListByStudentFunc  func(ctx context.Context, studentID string) ([]models.Transaction, error)
	ListByVendorFunc   func(ctx context.Context, vendorID string) ([]models.Transaction, error)
	SettleRechargeFunc func(ctx context.Context, orderID, paymentID, studentID, vendorID string, completedAt time.Time, formattedDate string) (repo.RechargeSettlement, error)
	RecordPurchaseFunc func(ctx context.Context, p repo.Purchase) (repo.PurchaseResult, error)
}

func (m *mockTransactions) Create(ctx context.Context, txn models.Transaction) (models.Transaction, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, txn)
	}
	return models.Transaction{}, errMockUnset
}

func (m *mockTransactions) GetByOrderID(ctx context.Context, orderID string) (models.Transaction, error) {
	if m.GetByOrderIDFunc != nil {
		return m.GetByOrderIDFunc(ctx, orderID)
	}
	return models.Transaction{}, errMockUnset
}

func (m *mockTransactions) ListByStudent(ctx context.Context, studentID string) ([]models.Transaction, error) {
	if m.ListByStudentFunc != nil {
		return m.ListByStudentFunc(ctx, studentID)
	}
	return nil, errMockUnset
}

func (m *mockTransactions) ListByVendor(ctx context.Context, vendorID string) ([]models.Transaction, error) {
	if m.ListByVendorFunc != nil {
		return m.ListByVendorFunc(ctx, vendorID)
	}
	return nil, errMockUnset
}

func (m *mockTransactions) SettleRecharge(ctx context.Context, orderID, paymentID, studentID, vendorID string, completedAt time.Time, formattedDate string) (repo.RechargeSettlement, error) {
	if m.SettleRechargeFunc != nil {
		return m.SettleRechargeFunc(ctx, orderID, paymentID, studentID, vendorID, completedAt, formattedDate)
	}
	return repo.RechargeSettlement{}, errMockUnset
}

func (m *mockTransactions) RecordPurchase(ctx context.Context, p repo.Purchase) (repo.PurchaseResult, error) {
	if m.RecordPurchaseFunc != nil {
		return m.RecordPurchaseFunc(ctx, p)
	}
	return repo.PurchaseResult{}, errMockUnset
}

type mockGateway struct {
	CreateOrderFunc     func(ctx context.Context, req gateway.OrderRequest) (gateway.Order, error)
	VerifySignatureFunc func(orderID, paymentID, signature string) bool
	Key                 string
}

func (m *mockGateway) CreateOrder(ctx context.Context, req gateway.OrderRequest) (gateway.Order, error) {
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, req)
	}
	return gateway.Order{}, errMockUnset
}

func (m *mockGateway) VerifySignature(orderID, paymentID, signature string) bool {
	if m.VerifySignatureFunc != nil {
		return m.VerifySignatureFunc(orderID, paymentID, signature)
	}
	return false
}

func (m *mockGateway) KeyID() string { return m.Key }

type mockNotifier struct {
	calls []string
}

func (m *mockNotifier) Dispatch(phone, message string) {
	m.calls = append(m.calls, phone+": "+message)
}
