//go:build unit

package commands_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"bounce-booking/internal/domain/address"
	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/customer"
	"bounce-booking/internal/domain/payment"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/pkg/money"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/internal/usecase/shared"
	"bounce-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errStripeDown = errors.New("stripe: service unavailable")

type checkoutFixture struct {
	biz    *builder.BusinessBuilder
	hold   *builder.BookingBuilder
	coupon *builder.CouponBuilder
	req    commands.FinalizeCheckoutRequest
}

func newCheckoutFixture() *checkoutFixture {
	biz := builder.NewBusinessBuilder()
	hold := builder.NewBookingBuilder().WithBusinessID(biz.ID)
	cp := builder.NewCouponBuilder().With(func(c *builder.CouponBuilder) { c.BusinessID = biz.ID })
	return &checkoutFixture{
		biz:    biz,
		hold:   hold,
		coupon: cp,
		req: commands.FinalizeCheckoutRequest{
			HoldID: hold.ID,
			Customer: customer.Contact{
				Email: "  Parent@Example.com ",
				Name:  "Pat Parent",
				Phone: "512-555-0100",
			},
			Event: commands.EventInput{
				Address: address.Address{Line1: "100 Main St", City: "Austin", State: "TX", PostalCode: "78701"},
			},
		},
	}
}

func (f *checkoutFixture) expectLoad(t *testing.T, m *uowMocks) {
	m.reads.EXPECT().BusinessByID(gomock.Any(), f.biz.ID).Return(f.biz.BuildSnapshot(), nil)
	m.reads.EXPECT().BookingByID(gomock.Any(), f.hold.ID).Return(f.hold.BuildSnapshot(t), nil).AnyTimes()
}

// expectPersist covers the serializable write, the processor calls and the
// payment record for a new customer.
func (f *checkoutFixture) expectPersist(t *testing.T, m *uowMocks, p *portMocks, saved **booking.Booking, intent *commands.PaymentIntentRequest) {
	m.reads.EXPECT().CustomerByEmail(gomock.Any(), f.biz.ID, "parent@example.com").Return(nil, notFound("customer"))
	m.customers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.bookings.EXPECT().SavePaymentTerms(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, b *booking.Booking) error {
			*saved = b
			return nil
		})
	p.cache.EXPECT().Invalidate(gomock.Any(), f.biz.ID).Return(nil)
	p.gateway.EXPECT().EnsureCustomer(gomock.Any(), gomock.Any()).Return("cus_123", nil)
	m.customers.EXPECT().SetStripeCustomer(gomock.Any(), gomock.Any(), gomock.Any(), "cus_123").Return(nil)
	p.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req commands.PaymentIntentRequest) (*commands.PaymentIntent, error) {
			*intent = req
			return &commands.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil
		})
	m.bookings.EXPECT().SetPaymentIntent(gomock.Any(), gomock.Any(), f.hold.ID, "pi_123").Return(nil)
	m.reads.EXPECT().PaymentsByBooking(gomock.Any(), f.hold.ID).Return(nil, nil)
	m.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, pay *payment.Payment) error {
			assert.Equal(t, payment.StatusPending, pay.Status())
			return nil
		})
}

// =============================================================================
// FinalizeCheckout Tests
// =============================================================================

func TestCheckout_FinalizeCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("success: hold promoted to pending with stripe tax", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture()
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		var (
			saved  *booking.Booking
			intent commands.PaymentIntentRequest
		)
		f.expectLoad(t, m)
		p.tax.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(&commands.TaxCalculation{ID: "taxcalc_1", Amount: 800}, nil)
		f.expectPersist(t, m, p, &saved, &intent)

		uc := commands.NewCheckoutUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.cache, newTestClock(), testSettings())
		result, err := uc.FinalizeCheckout(ctx, f.biz.ID, f.req)

		require.NoError(t, err)
		assert.Equal(t, "pi_123_secret", result.ClientSecret)
		assert.Equal(t, f.hold.ID, result.BookingID)

		require.NotNil(t, saved)
		assert.Equal(t, booking.StatusPending, saved.Status())
		assert.Equal(t, money.Cents(10000), saved.Totals().Subtotal())
		assert.Equal(t, money.Cents(800), saved.Totals().Tax())
		assert.Equal(t, money.Cents(10800), saved.Totals().Total())
		assert.Equal(t, commands.TaxMethodStripe, saved.TaxMethod())
		assert.Equal(t, builder.RefTime.Add(15*time.Minute), *saved.ExpiresAt())

		assert.Equal(t, money.Cents(10800), intent.Amount)
		assert.Equal(t, "acct_test_123", intent.StripeAccount)
		assert.Equal(t, fmt.Sprintf("booking-%s-10800", f.hold.ID), intent.IdempotencyKey)
		assert.Equal(t, "taxcalc_1", intent.Metadata["taxCalculationId"])
		assert.Equal(t, "108.00", intent.Metadata["totalAmount"])
	})

	t.Run("success: tax falls back to the business rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture()
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		var (
			saved  *booking.Booking
			intent commands.PaymentIntentRequest
		)
		f.expectLoad(t, m)
		p.tax.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(nil, errStripeDown)
		f.expectPersist(t, m, p, &saved, &intent)

		uc := commands.NewCheckoutUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.cache, newTestClock(), testSettings())
		_, err := uc.FinalizeCheckout(ctx, f.biz.ID, f.req)

		require.NoError(t, err)
		assert.Equal(t, commands.TaxMethodFallback, saved.TaxMethod())
		assert.Equal(t, money.Cents(800), saved.Totals().Tax())
		assert.Nil(t, saved.TaxCalculationID())
		assert.Equal(t, "fallback_rate", intent.Metadata["taxCalculationMethod"])
		assert.Equal(t, "", intent.Metadata["taxCalculationId"])
	})

	t.Run("success: percentage coupon discounts the subtotal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture()
		code := "summer10"
		f.req.CouponCode = &code
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		var (
			saved  *booking.Booking
			intent commands.PaymentIntentRequest
		)
		f.expectLoad(t, m)
		m.reads.EXPECT().CouponByCode(gomock.Any(), f.biz.ID, "SUMMER10").Return(f.coupon.BuildSnapshot(), nil)
		p.tax.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(nil, errStripeDown)
		m.coupons.EXPECT().IncrementUsage(gomock.Any(), gomock.Any(), f.coupon.ID).Return(nil)
		f.expectPersist(t, m, p, &saved, &intent)

		uc := commands.NewCheckoutUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.cache, newTestClock(), testSettings())
		_, err := uc.FinalizeCheckout(ctx, f.biz.ID, f.req)

		require.NoError(t, err)
		assert.Equal(t, money.Cents(9000), saved.Totals().Subtotal())
		assert.Equal(t, money.Cents(1000), saved.Totals().Discount())
		assert.Equal(t, money.Cents(720), saved.Totals().Tax())
		assert.Equal(t, money.Cents(9720), intent.Amount)
		require.NotNil(t, saved.CouponID())
		assert.Equal(t, f.coupon.ID, *saved.CouponID())
		assert.Equal(t, "SUMMER10", intent.Metadata["couponCode"])
	})

	t.Run("success: re-finalizing a pending booking reprices its payment and voids the old intent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture()
		f.hold.WithStatus(booking.StatusPending)
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		oldRef := "pi_old"
		pending := builder.NewPaymentBuilder().With(func(pb *builder.PaymentBuilder) {
			pb.BookingID = f.hold.ID
			pb.Status = payment.StatusPending
			pb.Amount = 9720
			pb.ExternalRef = &oldRef
		})

		f.expectLoad(t, m)
		p.tax.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(&commands.TaxCalculation{ID: "taxcalc_2", Amount: 800}, nil)
		m.reads.EXPECT().CustomerByEmail(gomock.Any(), f.biz.ID, "parent@example.com").Return(nil, notFound("customer"))
		m.customers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.bookings.EXPECT().SavePaymentTerms(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		p.cache.EXPECT().Invalidate(gomock.Any(), f.biz.ID).Return(nil)
		p.gateway.EXPECT().EnsureCustomer(gomock.Any(), gomock.Any()).Return("cus_123", nil)
		m.customers.EXPECT().SetStripeCustomer(gomock.Any(), gomock.Any(), gomock.Any(), "cus_123").Return(nil)
		p.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
			Return(&commands.PaymentIntent{ID: "pi_new", ClientSecret: "pi_new_secret"}, nil)
		m.bookings.EXPECT().SetPaymentIntent(gomock.Any(), gomock.Any(), f.hold.ID, "pi_new").Return(nil)
		m.reads.EXPECT().PaymentsByBooking(gomock.Any(), f.hold.ID).Return([]shared.PaymentSnapshot{pending.BuildSnapshot()}, nil)
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		m.payments.EXPECT().SavePending(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, pay *payment.Payment) error {
				assert.Equal(t, pending.ID, pay.ID())
				assert.Equal(t, money.Cents(10800), pay.Amount())
				require.NotNil(t, pay.ExternalRef())
				assert.Equal(t, "pi_new", *pay.ExternalRef())
				return nil
			})
		p.gateway.EXPECT().CancelPaymentIntent(gomock.Any(), "acct_test_123", "pi_old").Return(nil)

		uc := commands.NewCheckoutUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.cache, newTestClock(), testSettings())
		result, err := uc.FinalizeCheckout(ctx, f.biz.ID, f.req)

		require.NoError(t, err)
		assert.Equal(t, "pi_new_secret", result.ClientSecret)
	})

	t.Run("success: a failed void of the old intent does not fail checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture()
		f.hold.WithStatus(booking.StatusPending)
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		oldRef := "pi_old"
		pending := builder.NewPaymentBuilder().With(func(pb *builder.PaymentBuilder) {
			pb.BookingID = f.hold.ID
			pb.Status = payment.StatusPending
			pb.ExternalRef = &oldRef
		})

		f.expectLoad(t, m)
		p.tax.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(nil, errStripeDown)
		m.reads.EXPECT().CustomerByEmail(gomock.Any(), f.biz.ID, "parent@example.com").Return(nil, notFound("customer"))
		m.customers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.bookings.EXPECT().SavePaymentTerms(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		p.cache.EXPECT().Invalidate(gomock.Any(), f.biz.ID).Return(nil)
		p.gateway.EXPECT().EnsureCustomer(gomock.Any(), gomock.Any()).Return("cus_123", nil)
		m.customers.EXPECT().SetStripeCustomer(gomock.Any(), gomock.Any(), gomock.Any(), "cus_123").Return(nil)
		p.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
			Return(&commands.PaymentIntent{ID: "pi_new", ClientSecret: "pi_new_secret"}, nil)
		m.bookings.EXPECT().SetPaymentIntent(gomock.Any(), gomock.Any(), f.hold.ID, "pi_new").Return(nil)
		m.reads.EXPECT().PaymentsByBooking(gomock.Any(), f.hold.ID).Return([]shared.PaymentSnapshot{pending.BuildSnapshot()}, nil)
		m.payments.EXPECT().SavePending(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		p.gateway.EXPECT().CancelPaymentIntent(gomock.Any(), gomock.Any(), "pi_old").Return(errStripeDown)

		uc := commands.NewCheckoutUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.cache, newTestClock(), testSettings())
		_, err := uc.FinalizeCheckout(ctx, f.biz.ID, f.req)

		require.NoError(t, err)
	})

	t.Run("error: expired hold is flipped and rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture()
		lapsed := builder.RefTime.Add(-time.Minute)
		f.hold.WithExpiresAt(&lapsed)
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		f.expectLoad(t, m)
		m.bookings.EXPECT().SaveStatus(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, b *booking.Booking) error {
				assert.Equal(t, booking.StatusExpired, b.Status())
				return nil
			})
		p.cache.EXPECT().Invalidate(gomock.Any(), f.biz.ID).Return(nil)

		uc := commands.NewCheckoutUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.cache, newTestClock(), testSettings())
		result, err := uc.FinalizeCheckout(ctx, f.biz.ID, f.req)

		requireKind(t, err, errs.KindExpired)
		assert.Nil(t, result)
		assert.Equal(t, true, errs.DetailOf(err)["expired"])
	})

	t.Run("error: expiry survives a retried transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture()
		lapsed := builder.RefTime.Add(-time.Minute)
		f.hold.WithExpiresAt(&lapsed)
		m := newRetryingUoWMocks(ctrl, 2)
		p := newPortMocks(ctrl)

		f.expectLoad(t, m)
		gomock.InOrder(
			m.bookings.EXPECT().SaveStatus(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(errs.New("could not serialize access")),
			m.bookings.EXPECT().SaveStatus(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ any, b *booking.Booking) error {
					assert.Equal(t, booking.StatusExpired, b.Status())
					return nil
				}),
		)
		p.cache.EXPECT().Invalidate(gomock.Any(), f.biz.ID).Return(nil)

		uc := commands.NewCheckoutUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.cache, newTestClock(), testSettings())
		_, err := uc.FinalizeCheckout(ctx, f.biz.ID, f.req)

		requireKind(t, err, errs.KindExpired)
	})

	t.Run("error: coupon past its end date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture()
		ended := builder.RefTime.Add(-24 * time.Hour)
		f.coupon.WithWindow(nil, &ended)
		code := "SUMMER10"
		f.req.CouponCode = &code
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		f.expectLoad(t, m)
		m.reads.EXPECT().CouponByCode(gomock.Any(), f.biz.ID, "SUMMER10").Return(f.coupon.BuildSnapshot(), nil)

		uc := commands.NewCheckoutUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.cache, newTestClock(), testSettings())
		_, err := uc.FinalizeCheckout(ctx, f.biz.ID, f.req)

		requireKind(t, err, errs.KindInvalidRequest)
		assert.Equal(t, "coupon has expired", errs.MessageOf(err))
	})

	t.Run("error: unknown coupon code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture()
		code := "NOPE"
		f.req.CouponCode = &code
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		f.expectLoad(t, m)
		m.reads.EXPECT().CouponByCode(gomock.Any(), f.biz.ID, "NOPE").Return(nil, notFound("coupon"))

		uc := commands.NewCheckoutUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.cache, newTestClock(), testSettings())
		_, err := uc.FinalizeCheckout(ctx, f.biz.ID, f.req)

		requireKind(t, err, errs.KindInvalidRequest)
	})

	t.Run("error: cancelled booking cannot be paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture()
		f.hold.WithStatus(booking.StatusCancelled).WithExpiresAt(nil)
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		f.expectLoad(t, m)

		uc := commands.NewCheckoutUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.cache, newTestClock(), testSettings())
		_, err := uc.FinalizeCheckout(ctx, f.biz.ID, f.req)

		requireKind(t, err, errs.KindConflict)
	})

	t.Run("error: hold belongs to another business", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture()
		f.hold.WithBusinessID(uuid.New())
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		f.expectLoad(t, m)

		uc := commands.NewCheckoutUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.cache, newTestClock(), testSettings())
		_, err := uc.FinalizeCheckout(ctx, f.biz.ID, f.req)

		requireKind(t, err, errs.KindNotFound)
	})

	t.Run("error: event time moved after the hold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture()
		f.req.EventDate = "2026-06-03"
		f.req.StartTime = "09:00"
		f.req.EndTime = "11:00"
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		f.expectLoad(t, m)

		uc := commands.NewCheckoutUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.cache, newTestClock(), testSettings())
		_, err := uc.FinalizeCheckout(ctx, f.biz.ID, f.req)

		requireKind(t, err, errs.KindInvalidRequest)
	})

	t.Run("error: incomplete event address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture()
		f.req.Event.Address = address.Address{Line1: "100 Main St"}
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		f.expectLoad(t, m)

		uc := commands.NewCheckoutUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.cache, newTestClock(), testSettings())
		_, err := uc.FinalizeCheckout(ctx, f.biz.ID, f.req)

		requireKind(t, err, errs.KindInvalidRequest)
	})

	t.Run("error: payment intent failure leaves no payment record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture()
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		f.expectLoad(t, m)
		p.tax.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(&commands.TaxCalculation{ID: "taxcalc_1", Amount: 800}, nil)
		m.reads.EXPECT().CustomerByEmail(gomock.Any(), f.biz.ID, "parent@example.com").Return(nil, notFound("customer"))
		m.customers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.bookings.EXPECT().SavePaymentTerms(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		p.cache.EXPECT().Invalidate(gomock.Any(), f.biz.ID).Return(nil)
		p.gateway.EXPECT().EnsureCustomer(gomock.Any(), gomock.Any()).Return("cus_123", nil)
		m.customers.EXPECT().SetStripeCustomer(gomock.Any(), gomock.Any(), gomock.Any(), "cus_123").Return(nil)
		p.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).Return(nil, errStripeDown)

		uc := commands.NewCheckoutUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.cache, newTestClock(), testSettings())
		_, err := uc.FinalizeCheckout(ctx, f.biz.ID, f.req)

		requireKind(t, err, errs.KindExternalService)
	})

	t.Run("error: business without a payment account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture()
		f.biz.WithStripeAccount(nil)
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		f.expectLoad(t, m)

		uc := commands.NewCheckoutUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.cache, newTestClock(), testSettings())
		_, err := uc.FinalizeCheckout(ctx, f.biz.ID, f.req)

		requireKind(t, err, errs.KindInvalidRequest)
	})
}
