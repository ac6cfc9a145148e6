package payment

import (
	"errors"
	"time"

	"bounce-booking/internal/pkg/money"

	"github.com/google/uuid"
)

type Kind string

const (
	KindDeposit     Kind = "DEPOSIT"
	KindFullPayment Kind = "FULL_PAYMENT"
	KindRefund      Kind = "REFUND"
)

type Status string

var ErrNotPending = errors.New("payment is not pending")

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
	StatusRefunded  Status = "REFUNDED"
)

func (s Status) String() string { return string(s) }

// RefundRecord is stored on the original payment after a refund.
type RefundRecord struct {
	RefundID         string `json:"refundId"`
	RefundedAmount   int64  `json:"refundedAmount"`
	RefundPercentage int64  `json:"refundPercentage"`
	IsWithin24Hours  bool   `json:"isWithin24Hours"`
	Reason           string `json:"reason,omitempty"`
	RefundedAt       string `json:"refundedAt"`
}

type Payment struct {
	id          uuid.UUID
	bookingID   uuid.UUID
	kind        Kind
	status      Status
	amount      money.Cents
	currency    string
	externalRef *string
	refund      *RefundRecord
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPendingPayment(bookingID uuid.UUID, kind Kind, amount money.Cents, currency, externalRef string, now time.Time) *Payment {
	ref := externalRef
	return &Payment{
		id:          uuid.New(),
		bookingID:   bookingID,
		kind:        kind,
		status:      StatusPending,
		amount:      amount,
		currency:    currency,
		externalRef: &ref,
		createdAt:   now,
		updatedAt:   now,
	}
}

func ReconstructPayment(
	id, bookingID uuid.UUID,
	kind Kind,
	status Status,
	amount money.Cents,
	currency string,
	externalRef *string,
	refund *RefundRecord,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:          id,
		bookingID:   bookingID,
		kind:        kind,
		status:      status,
		amount:      amount,
		currency:    currency,
		externalRef: externalRef,
		refund:      refund,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Payment) IsRefundable() bool {
	return p.status == StatusCompleted && (p.kind == KindFullPayment || p.kind == KindDeposit) && p.amount > 0
}

func (p *Payment) HasExternalRef() bool {
	return p.externalRef != nil && *p.externalRef != ""
}

// ApplyRefund records a refund against this payment. An exact full refund
// flips the row to REFUNDED with a negated amount; anything less keeps the
// status and leaves the unrefunded remainder as the amount.
func (p *Payment) ApplyRefund(refunded money.Cents, record RefundRecord, now time.Time) {
	if refunded == p.amount {
		p.status = StatusRefunded
		p.amount = -p.amount
	} else {
		p.amount -= refunded
	}
	record.RefundedAmount = refunded.Int64()
	p.refund = &record
	p.updatedAt = now
}

// Reprice points a pending payment at a new intent and amount. It reports
// the intent it replaced when that differs from externalRef, so the caller
// can void it with the processor.
func (p *Payment) Reprice(amount money.Cents, externalRef string, now time.Time) (superseded string, err error) {
	if p.status != StatusPending {
		return "", ErrNotPending
	}
	if p.HasExternalRef() && *p.externalRef != externalRef {
		superseded = *p.externalRef
	}
	ref := externalRef
	p.amount = amount
	p.externalRef = &ref
	p.updatedAt = now
	return superseded, nil
}

// FindPending returns the newest pending payment of kind, if any.
func FindPending(payments []*Payment, kind Kind) *Payment {
	var found *Payment
	for _, p := range payments {
		if p.kind != kind || p.status != StatusPending {
			continue
		}
		if found == nil || p.createdAt.After(found.createdAt) {
			found = p
		}
	}
	return found
}

// SelectRefundable picks the payment a cancellation refunds: completed full
// payments before deposits, newest first.
func SelectRefundable(payments []*Payment) *Payment {
	var best *Payment
	for _, p := range payments {
		if !p.IsRefundable() {
			continue
		}
		if best == nil || rank(p) > rank(best) || (rank(p) == rank(best) && p.createdAt.After(best.createdAt)) {
			best = p
		}
	}
	return best
}

func rank(p *Payment) int {
	if p.kind == KindFullPayment {
		return 2
	}
	return 1
}

func (p *Payment) ID() uuid.UUID         { return p.id }
func (p *Payment) BookingID() uuid.UUID  { return p.bookingID }
func (p *Payment) Kind() Kind            { return p.kind }
func (p *Payment) Status() Status        { return p.status }
func (p *Payment) Amount() money.Cents   { return p.amount }
func (p *Payment) Currency() string      { return p.currency }
func (p *Payment) ExternalRef() *string  { return p.externalRef }
func (p *Payment) Refund() *RefundRecord { return p.refund }
func (p *Payment) CreatedAt() time.Time  { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time  { return p.updatedAt }
