package models

import "time"

// Student carries two independent balances: Balance is spent on direct
// purchases, WalletBalance is only ever topped up through gateway recharges.
type Student struct {
	StudentID          string    `json:"student_id"`
	Name               string    `json:"name"`
	BalancePaise       int64     `json:"-"`
	WalletBalancePaise int64     `json:"-"`
	PINHash            string    `json:"-"`
	ParentPhone        *string   `json:"parent_phone,omitempty"`
	ParentName         *string   `json:"parent_name,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
