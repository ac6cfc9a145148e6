package shared

import (
	"encoding/json"
	"time"

	"bounce-booking/internal/domain/address"
	"bounce-booking/internal/pkg/money"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of read-side query types

type BusinessSnapshot struct {
	ID                uuid.UUID
	Name              string
	TimeZone          string
	MinNoticeHours    int
	MaxNoticeHours    int
	MinBookingAmount  money.Cents
	BufferBeforeHours int
	BufferAfterHours  int
	DefaultTaxRate    float64
	StripeAccountID   *string
	Currency          string
}

type BookingItemSnapshot struct {
	ID            uuid.UUID
	InventoryID   uuid.UUID
	Name          string
	Quantity      int32
	Price         money.Cents
	StartTime     time.Time
	EndTime       time.Time
	BufferedStart time.Time
	BufferedEnd   time.Time
	Status        string
}

type BookingSnapshot struct {
	ID                  uuid.UUID
	BusinessID          uuid.UUID
	CustomerID          *uuid.UUID
	CouponID            *uuid.UUID
	Status              string
	EventDate           time.Time
	StartTime           time.Time
	EndTime             time.Time
	EventTimeZone       string
	SubtotalAmount      money.Cents
	DiscountAmount      money.Cents
	TaxAmount           money.Cents
	TaxRate             float64
	TotalAmount         money.Cents
	DepositPaid         bool
	ExpiresAt           *time.Time
	EventAddress        address.Address
	ParticipantCount    *int32
	SpecialInstructions string
	TaxCalculationID    *string
	TaxMethod           string
	PaymentIntentID     *string
	CancellationReason  string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Items               []BookingItemSnapshot
}

type InventorySnapshot struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       string
	PriceCents money.Cents
	IsActive   bool
}

// ConflictSnapshot is a live booking item overlapping a requested window.
type ConflictSnapshot struct {
	BookingID     uuid.UUID
	InventoryID   uuid.UUID
	InventoryName string
	Status        string
	StartTime     time.Time
	EndTime       time.Time
	ExpiresAt     *time.Time
}

type CouponSnapshot struct {
	ID             uuid.UUID
	BusinessID     uuid.UUID
	Code           string
	DiscountType   string
	DiscountValue  int64
	StartDate      *time.Time
	EndDate        *time.Time
	MaxUses        *int32
	UsedCount      int32
	IsActive       bool
	StripeCouponID *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CustomerSnapshot struct {
	ID               uuid.UUID
	BusinessID       uuid.UUID
	Email            string
	Name             string
	Phone            string
	Address          address.Address
	StripeCustomerID *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type PaymentSnapshot struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	Kind        string
	Status      string
	AmountCents money.Cents
	Currency    string
	ExternalRef *string
	Metadata    json.RawMessage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type IdempotencyRecord struct {
	Key         uuid.UUID
	BusinessID  uuid.UUID
	Endpoint    string
	Status      string
	RequestHash string
	ResultID    *uuid.UUID
	ExpiresAt   time.Time
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type ExpiredBooking struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
}
