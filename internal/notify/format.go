package notify

import (
	"fmt"

	"github.com/campuspay/smartcard-backend/internal/money"
)

func FormatRechargeMessage(amountPaise int64, vendorName, studentName string) string {
	return fmt.Sprintf("Payment Alert: %s recharged to %s for student %s.",
		money.Format(amountPaise), vendorName, studentName)
}

func FormatPurchaseMessage(amountPaise int64, vendorName, studentName string) string {
	return fmt.Sprintf("Payment Alert: Your child %s made a purchase of %s at %s.",
		studentName, money.Format(amountPaise), vendorName)
}
