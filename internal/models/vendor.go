package models

import "time"

type Vendor struct {
	VendorID     string    `json:"vendor_id"`
	Name         string    `json:"name"`
	UPIID        string    `json:"upi_id"`
	BalancePaise int64     `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
