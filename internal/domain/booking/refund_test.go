//go:build unit

package booking_test

import (
	"testing"
	"time"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/pkg/money"
	"bounce-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestRefundPolicy_Decide(t *testing.T) {
	policy := booking.DefaultRefundPolicy()
	now := builder.RefTime

	tests := []struct {
		name       string
		untilEvent time.Duration
		fullRefund bool
		amount     money.Cents
		percentage int64
		within     bool
	}{
		{name: "23 hours out refunds 90 percent", untilEvent: 23 * time.Hour, amount: 9720, percentage: 90, within: true},
		{name: "10 hours out refunds 90 percent", untilEvent: 10 * time.Hour, amount: 9720, percentage: 90, within: true},
		{name: "25 hours out refunds in full", untilEvent: 25 * time.Hour, amount: 10800, percentage: 100},
		{name: "30 hours out refunds in full", untilEvent: 30 * time.Hour, amount: 10800, percentage: 100},
		{name: "exactly 24 hours out refunds in full", untilEvent: 24 * time.Hour, amount: 10800, percentage: 100},
		{name: "forced full refund inside window", untilEvent: 2 * time.Hour, fullRefund: true, amount: 10800, percentage: 100, within: true},
		{name: "event already started", untilEvent: -time.Hour, amount: 9720, percentage: 90, within: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := policy.Decide(10800, now.Add(tt.untilEvent), now, tt.fullRefund)
			assert.Equal(t, tt.amount, d.Amount)
			assert.Equal(t, tt.percentage, d.Percentage)
			assert.Equal(t, tt.within, d.IsWithinWindow)
		})
	}
}
