package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionOrder(t *testing.T) {
	testCases := []struct {
		name    string
		current OrderStatus
		payment PaymentState
		target  OrderStatus
		want    bool
	}{
		{"pending to processing while unpaid", OrderStatusPending, PaymentStateUnpaid, OrderStatusProcessing, false},
		{"pending to processing while payment pending", OrderStatusPending, PaymentStatePending, OrderStatusProcessing, false},
		{"pending to processing once paid", OrderStatusPending, PaymentStatePaid, OrderStatusProcessing, true},
		{"pending to delivered skips processing", OrderStatusPending, PaymentStatePaid, OrderStatusDelivered, false},
		{"pending can be cancelled", OrderStatusPending, PaymentStateUnpaid, OrderStatusCancelled, true},
		{"processing to delivered", OrderStatusProcessing, PaymentStatePaid, OrderStatusDelivered, true},
		{"processing can be cancelled", OrderStatusProcessing, PaymentStatePaid, OrderStatusCancelled, true},
		{"processing cannot go back to pending", OrderStatusProcessing, PaymentStatePaid, OrderStatusPending, false},
		{"delivered is terminal", OrderStatusDelivered, PaymentStatePaid, OrderStatusCancelled, false},
		{"cancelled is terminal", OrderStatusCancelled, PaymentStateUnpaid, OrderStatusPending, false},
		{"no self transition", OrderStatusPending, PaymentStatePaid, OrderStatusPending, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CanTransitionOrder(tc.current, tc.payment, tc.target)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNextOrderStatus(t *testing.T) {
	assert.Equal(t, OrderStatus(""), NextOrderStatus(OrderStatusPending, PaymentStateUnpaid))
	assert.Equal(t, OrderStatus(""), NextOrderStatus(OrderStatusPending, PaymentStatePending))
	assert.Equal(t, OrderStatusProcessing, NextOrderStatus(OrderStatusPending, PaymentStatePaid))
	assert.Equal(t, OrderStatusDelivered, NextOrderStatus(OrderStatusProcessing, PaymentStatePaid))
	assert.Equal(t, OrderStatus(""), NextOrderStatus(OrderStatusDelivered, PaymentStatePaid))
	assert.Equal(t, OrderStatus(""), NextOrderStatus(OrderStatusCancelled, PaymentStateUnpaid))
}

func TestCanTransitionPayment(t *testing.T) {
	testCases := []struct {
		name    string
		current PaymentStatus
		target  PaymentStatus
		want    bool
	}{
		{"pending verified as paid", PaymentStatusPending, PaymentStatusPaid, true},
		{"pending rejected as failed", PaymentStatusPending, PaymentStatusFailed, true},
		{"pending cannot jump to refunded", PaymentStatusPending, PaymentStatusRefunded, false},
		{"paid can be refunded", PaymentStatusPaid, PaymentStatusRefunded, true},
		{"paid cannot be failed", PaymentStatusPaid, PaymentStatusFailed, false},
		{"failed is never reopened", PaymentStatusFailed, PaymentStatusPending, false},
		{"failed cannot become paid", PaymentStatusFailed, PaymentStatusPaid, false},
		{"refunded is terminal", PaymentStatusRefunded, PaymentStatusPaid, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransitionPayment(tc.current, tc.target))
		})
	}
}

func TestDerivePaymentState(t *testing.T) {
	assert.Equal(t, PaymentStateUnpaid, DerivePaymentState(nil))
	assert.Equal(t, PaymentStatePending, DerivePaymentState(&Payment{Status: PaymentStatusPending}))
	assert.Equal(t, PaymentStatePaid, DerivePaymentState(&Payment{Status: PaymentStatusPaid}))
	assert.Equal(t, PaymentStateFailed, DerivePaymentState(&Payment{Status: PaymentStatusFailed}))
	assert.Equal(t, PaymentStateRefunded, DerivePaymentState(&Payment{Status: PaymentStatusRefunded}))
}

func TestCanSubmitPayment(t *testing.T) {
	assert.True(t, CanSubmitPayment(PaymentStateUnpaid))
	assert.True(t, CanSubmitPayment(PaymentStateFailed), "a rejected payment allows a retry")
	assert.False(t, CanSubmitPayment(PaymentStatePending), "only one payment may be outstanding")
	assert.False(t, CanSubmitPayment(PaymentStatePaid))
	assert.False(t, CanSubmitPayment(PaymentStateRefunded))
}
