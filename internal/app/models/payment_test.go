package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusCanTransitionTo(t *testing.T) {
	testCases := []struct {
		name     string
		from     PaymentStatus
		to       PaymentStatus
		expected bool
	}{
		{"pending to completed", PaymentStatusPending, PaymentStatusCompleted, true},
		{"pending to cancelled", PaymentStatusPending, PaymentStatusCancelled, true},
		{"pending to failed", PaymentStatusPending, PaymentStatusFailed, true},
		{"pending to refunded", PaymentStatusPending, PaymentStatusRefunded, false},
		{"completed to refunded", PaymentStatusCompleted, PaymentStatusRefunded, true},
		{"completed to cancelled", PaymentStatusCompleted, PaymentStatusCancelled, false},
		{"completed to pending", PaymentStatusCompleted, PaymentStatusPending, false},
		{"cancelled to completed", PaymentStatusCancelled, PaymentStatusCompleted, false},
		{"failed to completed", PaymentStatusFailed, PaymentStatusCompleted, false},
		{"refunded to completed", PaymentStatusRefunded, PaymentStatusCompleted, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestPaymentStatusIsTerminal(t *testing.T) {
	assert.False(t, PaymentStatusPending.IsTerminal())
	assert.False(t, PaymentStatusCompleted.IsTerminal())
	assert.True(t, PaymentStatusFailed.IsTerminal())
	assert.True(t, PaymentStatusCancelled.IsTerminal())
	assert.True(t, PaymentStatusRefunded.IsTerminal())
}

func TestPaymentMetadataMerge(t *testing.T) {
	metadata := PaymentMetadata{
		StripeAccount: "acct_123",
		ExpiresAt:     1700000000,
	}

	metadata.Merge(map[string]string{
		"booking_id":     "bk_1",
		"transaction_id": "pi_1",
		"custom_flag":    "yes",
	})

	assert.Equal(t, "acct_123", metadata.StripeAccount)
	assert.Equal(t, int64(1700000000), metadata.ExpiresAt)
	assert.Equal(t, "bk_1", metadata.BookingID)
	assert.Equal(t, "pi_1", metadata.TransactionID)
	assert.Equal(t, "yes", metadata.Extra["custom_flag"])
}

func TestPaymentMetadataMergeOverwritesTypedKeys(t *testing.T) {
	metadata := PaymentMetadata{BookingID: "bk_old"}

	metadata.Merge(map[string]string{"booking_id": "bk_new"})

	assert.Equal(t, "bk_new", metadata.BookingID)
	assert.Empty(t, metadata.Extra)
}

func TestPaymentIsCompleted(t *testing.T) {
	payment := &Payment{Status: PaymentStatusPending}
	assert.False(t, payment.IsCompleted())

	payment.Status = PaymentStatusCompleted
	assert.True(t, payment.IsCompleted())
}
