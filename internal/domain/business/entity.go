package business

import (
	"errors"
	"fmt"
	"time"

	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrNoticeTooShort   = errors.New("booking notice below minimum")
	ErrNoticeTooLong    = errors.New("booking notice above maximum")
	ErrBelowMinimum     = errors.New("order total below business minimum")
	ErrNegativeSetting  = errors.New("business setting cannot be negative")
	ErrInvalidTaxRate   = errors.New("default tax rate must be between 0 and 1")
	ErrMissingTimeZone  = errors.New("business time zone is required")
	ErrNoPaymentAccount = errors.New("business has no connected payment account")
)

// Settings are the booking rules a merchant configures for their storefront.
// MaxNoticeHours of zero means there is no upper bound.
type Settings struct {
	TimeZone          string
	MinNoticeHours    int
	MaxNoticeHours    int
	MinBookingAmount  money.Cents
	BufferBeforeHours int
	BufferAfterHours  int
	DefaultTaxRate    float64
}

func (s Settings) Validate() error {
	if s.TimeZone == "" {
		return ErrMissingTimeZone
	}
	if s.MinNoticeHours < 0 || s.MaxNoticeHours < 0 || s.BufferBeforeHours < 0 || s.BufferAfterHours < 0 || s.MinBookingAmount < 0 {
		return ErrNegativeSetting
	}
	if s.DefaultTaxRate < 0 || s.DefaultTaxRate >= 1 {
		return ErrInvalidTaxRate
	}
	return nil
}

type Business struct {
	id              uuid.UUID
	name            string
	settings        Settings
	stripeAccountID *string
	currency        string
}

func NewBusiness(id uuid.UUID, name string, settings Settings, stripeAccountID *string, currency string) (*Business, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Business{
		id:              id,
		name:            name,
		settings:        settings,
		stripeAccountID: stripeAccountID,
		currency:        currency,
	}, nil
}

// ValidateNotice checks the lead time between now and the event start.
// Both bounds are inclusive.
func (b *Business) ValidateNotice(start, now time.Time) error {
	lead := start.Sub(now)
	minNotice := time.Duration(b.settings.MinNoticeHours) * time.Hour
	if lead < minNotice {
		return errs.Ef(errs.KindInvalidRequest, "bookings require at least %d hours notice", b.settings.MinNoticeHours).
			WithCause(ErrNoticeTooShort).
			WithDetail("bound", "minNoticeHours").
			WithDetail("minNoticeHours", b.settings.MinNoticeHours)
	}
	if b.settings.MaxNoticeHours > 0 {
		maxNotice := time.Duration(b.settings.MaxNoticeHours) * time.Hour
		if lead > maxNotice {
			return errs.Ef(errs.KindInvalidRequest, "bookings cannot be made more than %d hours in advance", b.settings.MaxNoticeHours).
				WithCause(ErrNoticeTooLong).
				WithDetail("bound", "maxNoticeHours").
				WithDetail("maxNoticeHours", b.settings.MaxNoticeHours)
		}
	}
	return nil
}

func (b *Business) ValidateMinimumAmount(total money.Cents) error {
	if total < b.settings.MinBookingAmount {
		return errs.E(errs.KindInvalidRequest,
			fmt.Sprintf("minimum booking amount is $%s, order total is $%s", b.settings.MinBookingAmount, total)).
			WithCause(ErrBelowMinimum).
			WithDetail("minimumAmount", b.settings.MinBookingAmount.String()).
			WithDetail("totalAmount", total.String())
	}
	return nil
}

func (b *Business) BufferBefore() time.Duration {
	return time.Duration(b.settings.BufferBeforeHours) * time.Hour
}

func (b *Business) BufferAfter() time.Duration {
	return time.Duration(b.settings.BufferAfterHours) * time.Hour
}

func (b *Business) PaymentAccount() (string, error) {
	if b.stripeAccountID == nil || *b.stripeAccountID == "" {
		return "", ErrNoPaymentAccount
	}
	return *b.stripeAccountID, nil
}

func (b *Business) ID() uuid.UUID            { return b.id }
func (b *Business) Name() string             { return b.name }
func (b *Business) Settings() Settings       { return b.settings }
func (b *Business) TimeZone() string         { return b.settings.TimeZone }
func (b *Business) DefaultTaxRate() float64  { return b.settings.DefaultTaxRate }
func (b *Business) StripeAccountID() *string { return b.stripeAccountID }
func (b *Business) Currency() string         { return b.currency }
