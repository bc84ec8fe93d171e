package notify

import "testing"

func TestFormatRechargeMessage(t *testing.T) {
	got := FormatRechargeMessage(20000, "Canteen", "Asha")
	want := "Payment Alert: ₹200 recharged to Canteen for student Asha."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatPurchaseMessage(t *testing.T) {
	got := FormatPurchaseMessage(3050, "Canteen", "Asha")
	want := "Payment Alert: Your child Asha made a purchase of ₹30.5 at Canteen."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
