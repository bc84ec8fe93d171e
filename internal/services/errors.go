package services

import "errors"

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrVendorNotFound  = errors.New("vendor not found")
	ErrOrderNotFound   = errors.New("order not found")

	ErrInvalidPIN    = errors.New("invalid student pin")
	ErrInvalidAmount = errors.New("invalid amount")

	ErrInsufficientBalance       = errors.New("insufficient balance")
	ErrInsufficientVendorBalance = errors.New("insufficient vendor balance")

	ErrSignatureMismatch = errors.New("payment signature verification failed")
	ErrAlreadyProcessed  = errors.New("payment already processed")

	// ErrGateway wraps failures from the payment gateway.
	ErrGateway = errors.New("payment gateway error")
)
