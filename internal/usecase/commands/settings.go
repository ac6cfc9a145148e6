package commands

import (
	"time"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/invoice"
)

// Settings carries the booking timings and policies shared by the commands.
type Settings struct {
	HoldTTL        time.Duration
	CheckoutTTL    time.Duration
	IdempotencyTTL time.Duration
	InvoiceDueDays int
	RefundPolicy   booking.RefundPolicy
	Currency       string
	SweepBatchSize int32
	DispatchBatch  int32
	MaxSendAttempt int32
}

func DefaultSettings() Settings {
	return Settings{
		HoldTTL:        booking.DefaultHoldTTL,
		CheckoutTTL:    15 * time.Minute,
		IdempotencyTTL: 24 * time.Hour,
		InvoiceDueDays: invoice.DefaultDueDays,
		RefundPolicy:   booking.DefaultRefundPolicy(),
		Currency:       "usd",
		SweepBatchSize: 100,
		DispatchBatch:  20,
		MaxSendAttempt: 5,
	}
}
