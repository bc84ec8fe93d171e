package models

import "time"

type TransactionType string

const (
	TxnRecharge TransactionType = "recharge"
	TxnPurchase TransactionType = "purchase"
)

type TransactionStatus string

const (
	TxnPending   TransactionStatus = "pending"
	TxnCompleted TransactionStatus = "completed"
)

// Transaction is the append-only payment log. OrderID and PaymentID are set
// only on gateway recharges; the balance snapshots only on purchases.
type Transaction struct {
	ID                  string            `json:"id"`
	OrderID             *string           `json:"order_id,omitempty"`
	PaymentID           *string           `json:"payment_id,omitempty"`
	StudentID           string            `json:"student_id"`
	VendorID            string            `json:"vendor_id"`
	AmountPaise         int64             `json:"amount_paise"`
	Type                TransactionType   `json:"type"`
	Status              TransactionStatus `json:"status"`
	Description         *string           `json:"description,omitempty"`
	StudentBalancePaise *int64            `json:"student_balance_paise,omitempty"`
	VendorBalancePaise  *int64            `json:"vendor_balance_paise,omitempty"`
	FormattedDate       string            `json:"formatted_date"`
	CreatedAt           time.Time         `json:"created_at"`
	CompletedAt         *time.Time        `json:"completed_at,omitempty"`
}
