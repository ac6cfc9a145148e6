package shared

import (
	"context"
	"time"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/customer"
	"bounce-booking/internal/domain/invoice"
	"bounce-booking/internal/domain/payment"
	sqlc "bounce-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

// UnitOfWork runs fn in one transaction and retries it on serialization
// failures and deadlocks, so fn must be safe to run more than once.
type UnitOfWork interface {
	// Within runs at READ COMMITTED.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable runs at SERIALIZABLE, for reads that decide a write
	// such as checkout totals and refund amounts.
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads reads outside any transaction, for validation before one starts.
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Customers() CustomerRepository
	Coupons() CouponRepository
	Payments() PaymentRepository
	Invoices() InvoiceRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	BusinessByID(ctx context.Context, id uuid.UUID) (*BusinessSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	InventoryByIDs(ctx context.Context, businessID uuid.UUID, ids []uuid.UUID) ([]InventorySnapshot, error)
	ConflictingItems(ctx context.Context, inventoryIDs []uuid.UUID, from, to time.Time) ([]ConflictSnapshot, error)
	CouponByCode(ctx context.Context, businessID uuid.UUID, code string) (*CouponSnapshot, error)
	CustomerByEmail(ctx context.Context, businessID uuid.UUID, email string) (*CustomerSnapshot, error)
	CustomerByID(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
	PaymentsByBooking(ctx context.Context, bookingID uuid.UUID) ([]PaymentSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, businessID uuid.UUID) (*IdempotencyRecord, error)
}

type BookingRepository interface {
	// CreateHold inserts the booking and its items; an overlapping live item
	// surfaces as a conflict repository error.
	CreateHold(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	SavePaymentTerms(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	SaveStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	SetPaymentIntent(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, intentID string) error
	Cancel(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	ExpireStaleForInventory(ctx context.Context, tx sqlc.DBTX, inventoryIDs []uuid.UUID, now time.Time) (int64, error)
	ExpireStale(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]ExpiredBooking, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) error
	Update(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) error
	SetStripeCustomer(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID, stripeCustomerID string) error
}

type CouponRepository interface {
	// IncrementUsage fails with a conflict when the coupon has no uses left.
	IncrementUsage(ctx context.Context, tx sqlc.DBTX, couponID uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
	SavePending(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
	SaveRefund(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
}

type InvoiceRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, inv *invoice.Invoice) error
}

type IdempotencyRepository interface {
	// TryInsert claims the key; it reports false when an unexpired record exists.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, businessID uuid.UUID, endpoint, requestHash string, now, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, businessID uuid.UUID, resultID uuid.UUID) error
	Release(ctx context.Context, tx sqlc.DBTX, key, businessID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) (uuid.UUID, error)
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, attempts int32, nextRunAt time.Time, lastError string, giveUp bool) error
}
