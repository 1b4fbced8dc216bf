package models

import "time"

// PaymentStatus is the status of a single payment attempt.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Payment is the model for the 'payments' table. Rows are appended as
// the customer retries; only the status field is ever changed in
// place, and only by an administrator verifying the bank transfer.
// TransactionRef holds the last 4 digits of the transfer reference
// only. We never store the full bank reference.
type Payment struct {
	ID              int64         `json:"id" db:"id"`
	OrderID         int64         `json:"orderId" db:"order_id"`
	PaymentMethodID int64         `json:"paymentMethodId" db:"payment_method_id"`
	TransactionRef  string        `json:"transactionRef" db:"transaction_ref"`
	Amount          int64         `json:"amount" db:"amount"`
	Status          PaymentStatus `json:"status" db:"status"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// PaymentMethod is the model for the 'payment_methods' table (the
// bank accounts customers can transfer to).
type PaymentMethod struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	AccountName   string `json:"accountName" db:"account_name"`
	AccountNumber string `json:"accountNumber" db:"account_number"`
	IsActive      bool   `json:"isActive" db:"is_active"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CanTransitionPayment reports whether an admin may move a payment
// row from 'current' to 'target'. Verification resolves a pending
// payment to paid or failed; a refund is only possible after paid.
// A rejected payment is never reopened; the customer submits a new
// one instead.
func CanTransitionPayment(current, target PaymentStatus) bool {
	switch current {
	case PaymentStatusPending:
		return target == PaymentStatusPaid || target == PaymentStatusFailed
	case PaymentStatusPaid:
		return target == PaymentStatusRefunded
	default:
		return false
	}
}
