package services

import "errors"

// Ledger
var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Order lifecycle
var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrOrderNotFound     = errors.New("order not found")
	ErrValidationFailed  = errors.New("validation failed")
)

// Menu
var ErrDishNotFound = errors.New("dish not found")

// Webhook ingestion
var (
	ErrIncompleteMetadata = errors.New("incomplete payment metadata")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

// Fulfillment
var ErrPrintUnavailable = errors.New("print service unavailable")

// Authorization
var ErrForbidden = errors.New("forbidden")
