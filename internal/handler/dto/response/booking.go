package response

import (
	"time"

	"bounce-booking/internal/pkg/money"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// Amount carries a money value both as a decimal string and in cents.
type Amount struct {
	Value string `json:"value"`
	Cents int64  `json:"cents"`
}

func NewAmount(c money.Cents) Amount {
	return Amount{Value: c.String(), Cents: c.Int64()}
}

type HoldResponse struct {
	HoldID    uuid.UUID `json:"holdId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func FromHoldResult(r *commands.HoldResult) *HoldResponse {
	return &HoldResponse{HoldID: r.HoldID, ExpiresAt: r.ExpiresAt}
}

type CheckoutResponse struct {
	BookingID    uuid.UUID `json:"bookingId"`
	ClientSecret string    `json:"clientSecret"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{BookingID: r.BookingID, ClientSecret: r.ClientSecret}
}

type RefundResponse struct {
	RefundID        string `json:"refundId"`
	Amount          Amount `json:"amount"`
	Percentage      int64  `json:"percentage"`
	IsWithin24Hours bool   `json:"isWithin24Hours"`
}

type CancelResponse struct {
	BookingID uuid.UUID       `json:"bookingId"`
	Status    string          `json:"status"`
	Refund    *RefundResponse `json:"refund,omitempty"`
}

func FromCancelResult(r *commands.CancelResult) *CancelResponse {
	out := &CancelResponse{BookingID: r.BookingID, Status: r.Status.String()}
	if r.Refund != nil {
		out.Refund = &RefundResponse{
			RefundID:        r.Refund.RefundID,
			Amount:          NewAmount(r.Refund.Amount),
			Percentage:      r.Refund.Percentage,
			IsWithin24Hours: r.Refund.IsWithin24Hours,
		}
	}
	return out
}

type InvoiceResponse struct {
	InvoiceID  uuid.UUID `json:"invoiceId"`
	BookingID  uuid.UUID `json:"bookingId"`
	ExternalID string    `json:"externalId"`
	Number     string    `json:"number"`
	HostedURL  string    `json:"hostedUrl"`
	AmountDue  string    `json:"amountDue"`
	DueAt      time.Time `json:"dueAt"`
}

func FromInvoiceResult(r *commands.InvoiceResult) *InvoiceResponse {
	return &InvoiceResponse{
		InvoiceID:  r.InvoiceID,
		BookingID:  r.BookingID,
		ExternalID: r.ExternalID,
		Number:     r.Number,
		HostedURL:  r.HostedURL,
		AmountDue:  r.AmountDue,
		DueAt:      r.DueAt,
	}
}

type ItemResponse struct {
	ID          uuid.UUID `json:"id"`
	InventoryID uuid.UUID `json:"inventoryId"`
	Name        string    `json:"name"`
	Quantity    int32     `json:"quantity"`
	Price       Amount    `json:"price"`
	Status      string    `json:"status"`
}

type TotalsResponse struct {
	Subtotal Amount  `json:"subtotal"`
	Discount Amount  `json:"discount"`
	Tax      Amount  `json:"tax"`
	TaxRate  float64 `json:"taxRate"`
	Total    Amount  `json:"total"`
}

type PublicBookingResponse struct {
	ID            uuid.UUID      `json:"id"`
	Status        string         `json:"status"`
	EventDate     string         `json:"eventDate"`
	StartTime     string         `json:"startTime"`
	EndTime       string         `json:"endTime"`
	EventTimeZone string         `json:"eventTimeZone"`
	Items         []ItemResponse `json:"items"`
	Totals        TotalsResponse `json:"totals"`
	ExpiresAt     *time.Time     `json:"expiresAt,omitempty"`
}

func FromPublicBookingView(v *queries.PublicBookingView) *PublicBookingResponse {
	return &PublicBookingResponse{
		ID:            v.ID,
		Status:        v.Status,
		EventDate:     v.EventDate,
		StartTime:     v.StartTime,
		EndTime:       v.EndTime,
		EventTimeZone: v.EventTimeZone,
		Items:         fromItems(v.Items),
		Totals:        fromTotals(v.Totals),
		ExpiresAt:     v.ExpiresAt,
	}
}

type BookingListResponse struct {
	ID            uuid.UUID  `json:"id"`
	Status        string     `json:"status"`
	EventDate     string     `json:"eventDate"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       time.Time  `json:"endTime"`
	EventTimeZone string     `json:"eventTimeZone"`
	Total         Amount     `json:"total"`
	CustomerName  *string    `json:"customerName,omitempty"`
	CustomerEmail *string    `json:"customerEmail,omitempty"`
	ItemCount     int32      `json:"itemCount"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type BookingPageResponse struct {
	Items      []*BookingListResponse `json:"items"`
	NextCursor string                 `json:"nextCursor,omitempty"`
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) *BookingPageResponse {
	out := &BookingPageResponse{Items: make([]*BookingListResponse, len(items))}
	for i, it := range items {
		out.Items[i] = &BookingListResponse{
			ID:            it.ID,
			Status:        it.Status,
			EventDate:     it.EventDate.UTC().Format("2006-01-02"),
			StartTime:     it.StartTime,
			EndTime:       it.EndTime,
			EventTimeZone: it.EventTimeZone,
			Total:         NewAmount(it.TotalAmount),
			CustomerName:  it.CustomerName,
			CustomerEmail: it.CustomerEmail,
			ItemCount:     it.ItemCount,
			ExpiresAt:     it.ExpiresAt,
			CreatedAt:     it.CreatedAt,
		}
	}
	if next != nil {
		out.NextCursor = next.After
	}
	return out
}

type AddressResponse struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type CustomerResponse struct {
	ID      uuid.UUID       `json:"id"`
	Email   string          `json:"email"`
	Name    string          `json:"name"`
	Phone   string          `json:"phone,omitempty"`
	Address AddressResponse `json:"address"`
}

type CouponResponse struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	DiscountType  string    `json:"discountType"`
	DiscountValue int64     `json:"discountValue"`
}

type PaymentResponse struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Status      string    `json:"status"`
	Amount      Amount    `json:"amount"`
	Currency    string    `json:"currency"`
	ExternalRef *string   `json:"externalRef,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type InvoiceSummaryResponse struct {
	ID         uuid.UUID `json:"id"`
	ExternalID string    `json:"externalId"`
	Number     string    `json:"number"`
	Status     string    `json:"status"`
	AmountDue  Amount    `json:"amountDue"`
	HostedURL  string    `json:"hostedUrl"`
	DueAt      time.Time `json:"dueAt"`
	SentAt     time.Time `json:"sentAt"`
}

type BookingEditResponse struct {
	ID                  uuid.UUID               `json:"id"`
	Status              string                  `json:"status"`
	EventDate           string                  `json:"eventDate"`
	StartTime           time.Time               `json:"startTime"`
	EndTime             time.Time               `json:"endTime"`
	EventTimeZone       string                  `json:"eventTimeZone"`
	EventAddress        AddressResponse         `json:"eventAddress"`
	ParticipantCount    *int32                  `json:"participantCount,omitempty"`
	SpecialInstructions string                  `json:"specialInstructions,omitempty"`
	Items               []ItemResponse          `json:"items"`
	Totals              TotalsResponse          `json:"totals"`
	DepositPaid         bool                    `json:"depositPaid"`
	TaxMethod           string                  `json:"taxMethod"`
	CancellationReason  string                  `json:"cancellationReason,omitempty"`
	ExpiresAt           *time.Time              `json:"expiresAt,omitempty"`
	Customer            *CustomerResponse       `json:"customer,omitempty"`
	Coupon              *CouponResponse         `json:"coupon,omitempty"`
	Payments            []PaymentResponse       `json:"payments"`
	Invoice             *InvoiceSummaryResponse `json:"invoice,omitempty"`
	CreatedAt           time.Time               `json:"createdAt"`
	UpdatedAt           time.Time               `json:"updatedAt"`
}

func FromBookingEditView(v *queries.BookingEditView) *BookingEditResponse {
	b := v.Booking
	out := &BookingEditResponse{
		ID:                  b.ID,
		Status:              b.Status,
		EventDate:           b.EventDate.UTC().Format("2006-01-02"),
		StartTime:           b.StartTime,
		EndTime:             b.EndTime,
		EventTimeZone:       b.EventTimeZone,
		EventAddress:        fromAddress(b.EventAddress),
		ParticipantCount:    b.ParticipantCount,
		SpecialInstructions: b.SpecialInstructions,
		Items:               fromItems(b.Items),
		Totals:              fromTotals(b.Totals),
		DepositPaid:         b.DepositPaid,
		TaxMethod:           b.TaxMethod,
		CancellationReason:  b.CancellationReason,
		ExpiresAt:           b.ExpiresAt,
		Payments:            make([]PaymentResponse, len(v.Payments)),
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
	if c := v.Customer; c != nil {
		out.Customer = &CustomerResponse{
			ID:      c.ID,
			Email:   c.Email,
			Name:    c.Name,
			Phone:   c.Phone,
			Address: fromAddress(c.Address),
		}
	}
	if c := v.Coupon; c != nil {
		out.Coupon = &CouponResponse{
			ID:            c.ID,
			Code:          c.Code,
			DiscountType:  c.DiscountType,
			DiscountValue: c.DiscountValue,
		}
	}
	for i, p := range v.Payments {
		out.Payments[i] = PaymentResponse{
			ID:          p.ID,
			Kind:        p.Kind,
			Status:      p.Status,
			Amount:      NewAmount(p.Amount),
			Currency:    p.Currency,
			ExternalRef: p.ExternalRef,
			CreatedAt:   p.CreatedAt,
		}
	}
	if inv := v.Invoice; inv != nil {
		out.Invoice = &InvoiceSummaryResponse{
			ID:         inv.ID,
			ExternalID: inv.ExternalID,
			Number:     inv.Number,
			Status:     inv.Status,
			AmountDue:  NewAmount(inv.AmountDue),
			HostedURL:  inv.HostedURL,
			DueAt:      inv.DueAt,
			SentAt:     inv.SentAt,
		}
	}
	return out
}

type ReservedSlotResponse struct {
	BookingID     uuid.UUID `json:"bookingId"`
	InventoryID   uuid.UUID `json:"inventoryId"`
	InventoryName string    `json:"inventoryName"`
	Status        string    `json:"status"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	BufferedStart time.Time `json:"bufferedStart"`
	BufferedEnd   time.Time `json:"bufferedEnd"`
}

type AvailabilityResponse struct {
	BusinessID uuid.UUID              `json:"businessId"`
	TimeZone   string                 `json:"timeZone"`
	From       time.Time              `json:"from"`
	To         time.Time              `json:"to"`
	Reserved   []ReservedSlotResponse `json:"reserved"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	out := &AvailabilityResponse{
		BusinessID: v.BusinessID,
		TimeZone:   v.TimeZone,
		From:       v.From,
		To:         v.To,
		Reserved:   make([]ReservedSlotResponse, len(v.Reserved)),
	}
	for i, s := range v.Reserved {
		out.Reserved[i] = ReservedSlotResponse{
			BookingID:     s.BookingID,
			InventoryID:   s.InventoryID,
			InventoryName: s.InventoryName,
			Status:        s.Status,
			StartTime:     s.StartTime,
			EndTime:       s.EndTime,
			BufferedStart: s.BufferedStart,
			BufferedEnd:   s.BufferedEnd,
		}
	}
	return out
}

func fromItems(items []queries.BookingItemView) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = ItemResponse{
			ID:          it.ID,
			InventoryID: it.InventoryID,
			Name:        it.Name,
			Quantity:    it.Quantity,
			Price:       NewAmount(it.Price),
			Status:      it.Status,
		}
	}
	return out
}

func fromTotals(t queries.TotalsView) TotalsResponse {
	return TotalsResponse{
		Subtotal: NewAmount(t.Subtotal),
		Discount: NewAmount(t.Discount),
		Tax:      NewAmount(t.Tax),
		TaxRate:  t.TaxRate,
		Total:    NewAmount(t.Total),
	}
}

func fromAddress(a queries.EventAddressView) AddressResponse {
	return AddressResponse{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
