package queries

import (
	"time"

	"bounce-booking/internal/pkg/money"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BusinessView struct {
	ID       uuid.UUID
	Name     string
	TimeZone string
	Currency string
}

type BookingListItem struct {
	ID            uuid.UUID   `json:"id"`
	Status        string      `json:"status"`
	EventDate     time.Time   `json:"event_date"`
	StartTime     time.Time   `json:"start_time"`
	EndTime       time.Time   `json:"end_time"`
	EventTimeZone string      `json:"event_time_zone"`
	TotalAmount   money.Cents `json:"total_amount"`
	CustomerName  *string     `json:"customer_name,omitempty"`
	CustomerEmail *string     `json:"customer_email,omitempty"`
	ItemCount     int32       `json:"item_count"`
	ExpiresAt     *time.Time  `json:"expires_at,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

type DashboardFilters struct {
	Statuses []string
	From     *time.Time
	To       *time.Time
}

// ReservedSlot is one inventory unit occupied by a live booking item.
type ReservedSlot struct {
	BookingID     uuid.UUID  `json:"booking_id"`
	InventoryID   uuid.UUID  `json:"inventory_id"`
	InventoryName string     `json:"inventory_name"`
	Status        string     `json:"status"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       time.Time  `json:"end_time"`
	BufferedStart time.Time  `json:"buffered_start"`
	BufferedEnd   time.Time  `json:"buffered_end"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

type AvailabilityView struct {
	BusinessID uuid.UUID      `json:"business_id"`
	TimeZone   string         `json:"time_zone"`
	From       time.Time      `json:"from"`
	To         time.Time      `json:"to"`
	Reserved   []ReservedSlot `json:"reserved"`
}

type BookingItemView struct {
	ID          uuid.UUID   `json:"id"`
	InventoryID uuid.UUID   `json:"inventory_id"`
	Name        string      `json:"name"`
	Quantity    int32       `json:"quantity"`
	Price       money.Cents `json:"price"`
	Status      string      `json:"status"`
}

type TotalsView struct {
	Subtotal money.Cents `json:"subtotal"`
	Discount money.Cents `json:"discount"`
	Tax      money.Cents `json:"tax"`
	TaxRate  float64     `json:"tax_rate"`
	Total    money.Cents `json:"total"`
}

type EventAddressView struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// BookingDetail is the stored booking with its items, before projection.
type BookingDetail struct {
	ID                  uuid.UUID
	BusinessID          uuid.UUID
	CustomerID          *uuid.UUID
	CouponID            *uuid.UUID
	Status              string
	EventDate           time.Time
	StartTime           time.Time
	EndTime             time.Time
	EventTimeZone       string
	Totals              TotalsView
	DepositPaid         bool
	ExpiresAt           *time.Time
	EventAddress        EventAddressView
	ParticipantCount    *int32
	SpecialInstructions string
	TaxMethod           string
	PaymentIntentID     *string
	CancellationReason  string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Items               []BookingItemView
}

// PublicBookingView carries no customer data.
type PublicBookingView struct {
	ID            uuid.UUID         `json:"id"`
	Status        string            `json:"status"`
	EventDate     string            `json:"event_date"`
	StartTime     string            `json:"start_time"`
	EndTime       string            `json:"end_time"`
	EventTimeZone string            `json:"event_time_zone"`
	Items         []BookingItemView `json:"items"`
	Totals        TotalsView        `json:"totals"`
	ExpiresAt     *time.Time        `json:"expires_at,omitempty"`
}

type CustomerView struct {
	ID      uuid.UUID        `json:"id"`
	Email   string           `json:"email"`
	Name    string           `json:"name"`
	Phone   string           `json:"phone,omitempty"`
	Address EventAddressView `json:"address"`
}

type CouponView struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	DiscountType  string    `json:"discount_type"`
	DiscountValue int64     `json:"discount_value"`
}

type PaymentView struct {
	ID          uuid.UUID   `json:"id"`
	Kind        string      `json:"kind"`
	Status      string      `json:"status"`
	Amount      money.Cents `json:"amount"`
	Currency    string      `json:"currency"`
	ExternalRef *string     `json:"external_ref,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

type InvoiceView struct {
	ID         uuid.UUID   `json:"id"`
	ExternalID string      `json:"external_id"`
	Number     string      `json:"number"`
	Status     string      `json:"status"`
	AmountDue  money.Cents `json:"amount_due"`
	HostedURL  string      `json:"hosted_url"`
	DueAt      time.Time   `json:"due_at"`
	SentAt     time.Time   `json:"sent_at"`
}

// BookingEditView backs the merchant edit form.
type BookingEditView struct {
	Booking  BookingDetail `json:"booking"`
	Customer *CustomerView `json:"customer,omitempty"`
	Coupon   *CouponView   `json:"coupon,omitempty"`
	Payments []PaymentView `json:"payments"`
	Invoice  *InvoiceView  `json:"invoice,omitempty"`
}
