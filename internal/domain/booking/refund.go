package booking

import (
	"time"

	"bounce-booking/internal/pkg/money"
)

const (
	DefaultLateCancelWindow  = 24 * time.Hour
	DefaultLateRefundPercent = 90
)

type RefundPolicy struct {
	LateWindow        time.Duration
	LateRefundPercent int64
}

func DefaultRefundPolicy() RefundPolicy {
	return RefundPolicy{LateWindow: DefaultLateCancelWindow, LateRefundPercent: DefaultLateRefundPercent}
}

type RefundDecision struct {
	Amount           money.Cents
	Percentage       int64
	IsWithinWindow   bool
	ForcedFullRefund bool
}

// Decide computes the refund for a cancellation at now. Inside the late
// window the late percentage applies unless the merchant forces a full refund.
func (p RefundPolicy) Decide(paid money.Cents, eventStart, now time.Time, fullRefund bool) RefundDecision {
	within := eventStart.Sub(now) < p.LateWindow
	pct := int64(100)
	if within && !fullRefund {
		pct = p.LateRefundPercent
	}
	return RefundDecision{
		Amount:           paid.Percent(pct),
		Percentage:       pct,
		IsWithinWindow:   within,
		ForcedFullRefund: fullRefund,
	}
}
