package request

import (
	"strings"
	"time"

	"bounce-booking/internal/domain/address"
	"bounce-booking/internal/domain/customer"
	"bounce-booking/internal/pkg/money"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AddressRequest struct {
	Line1      string `json:"line1" binding:"required,max=200"`
	Line2      string `json:"line2" binding:"max=200"`
	City       string `json:"city" binding:"required,max=100"`
	State      string `json:"state" binding:"required,max=100"`
	PostalCode string `json:"postalCode" binding:"required,max=20"`
	Country    string `json:"country" binding:"omitempty,len=2"`
}

func (r AddressRequest) ToDomain() address.Address {
	return address.Address{
		Line1:      r.Line1,
		Line2:      r.Line2,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}.Normalize()
}

type EventRequest struct {
	Address             AddressRequest `json:"address" binding:"required"`
	ParticipantCount    *int32         `json:"participantCount" binding:"omitempty,min=1"`
	SpecialInstructions string         `json:"specialInstructions" binding:"max=2000"`
}

func (r *EventRequest) ToInput() commands.EventInput {
	if r == nil {
		return commands.EventInput{}
	}
	return commands.EventInput{
		Address:             r.Address.ToDomain(),
		ParticipantCount:    r.ParticipantCount,
		SpecialInstructions: strings.TrimSpace(r.SpecialInstructions),
	}
}

type CustomerRequest struct {
	Email   string         `json:"email" binding:"required,email,max=254"`
	Name    string         `json:"name" binding:"required,max=200"`
	Phone   string         `json:"phone" binding:"max=40"`
	Address AddressRequest `json:"address" binding:"required"`
}

func (r CustomerRequest) ToContact() customer.Contact {
	return customer.Contact{
		Email:   r.Email,
		Name:    strings.TrimSpace(r.Name),
		Phone:   strings.TrimSpace(r.Phone),
		Address: r.Address.ToDomain(),
	}.Normalize()
}

type HoldItemRequest struct {
	InventoryItemID uuid.UUID `json:"inventoryItemId" binding:"required"`
	PriceCents      int64     `json:"priceCents" binding:"min=0"`
	Quantity        int32     `json:"quantity" binding:"required,min=1"`
}

type CreateHoldRequest struct {
	EventDate     string            `json:"eventDate" binding:"required,ymd"`
	StartTime     string            `json:"startTime" binding:"required,hhmm"`
	EndTime       string            `json:"endTime" binding:"required,hhmm"`
	EventTimeZone string            `json:"eventTimeZone" binding:"omitempty,iana_tz"`
	Items         []HoldItemRequest `json:"items" binding:"required,min=1,dive"`
	Event         *EventRequest     `json:"event"`
}

func (r CreateHoldRequest) ToCommand() commands.CreateHoldRequest {
	items := make([]commands.HoldItemRequest, len(r.Items))
	for i, it := range r.Items {
		items[i] = commands.HoldItemRequest{
			InventoryItemID: it.InventoryItemID,
			Price:           money.Cents(it.PriceCents),
			Quantity:        it.Quantity,
		}
	}
	return commands.CreateHoldRequest{
		EventDate:     r.EventDate,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		EventTimeZone: r.EventTimeZone,
		Items:         items,
		Event:         r.Event.ToInput(),
	}
}

type CheckoutRequest struct {
	HoldID        uuid.UUID       `json:"holdId" binding:"required"`
	Customer      CustomerRequest `json:"customer" binding:"required"`
	Event         EventRequest    `json:"event" binding:"required"`
	EventDate     string          `json:"eventDate" binding:"required,ymd"`
	StartTime     string          `json:"startTime" binding:"required,hhmm"`
	EndTime       string          `json:"endTime" binding:"required,hhmm"`
	EventTimeZone string          `json:"eventTimeZone" binding:"omitempty,iana_tz"`
	CouponCode    *string         `json:"couponCode" binding:"omitempty,max=64"`
}

func (r CheckoutRequest) ToCommand() commands.FinalizeCheckoutRequest {
	return commands.FinalizeCheckoutRequest{
		HoldID:        r.HoldID,
		Customer:      r.Customer.ToContact(),
		Event:         r.Event.ToInput(),
		EventDate:     r.EventDate,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		EventTimeZone: r.EventTimeZone,
		CouponCode:    trimmedCode(r.CouponCode),
	}
}

type CancelRequest struct {
	FullRefund bool   `json:"fullRefund"`
	Reason     string `json:"reason" binding:"max=500"`
}

func (r CancelRequest) ToCommand() commands.CancelRequest {
	return commands.CancelRequest{
		FullRefund: r.FullRefund,
		Reason:     strings.TrimSpace(r.Reason),
	}
}

type IssueInvoiceRequest struct {
	Customer   *CustomerRequest `json:"customer"`
	Event      *EventRequest    `json:"event"`
	CouponCode *string          `json:"couponCode" binding:"omitempty,max=64"`
	DueDays    *int             `json:"dueDays" binding:"omitempty,min=1,max=90"`
}

func (r IssueInvoiceRequest) ToCommand() commands.IssueInvoiceRequest {
	out := commands.IssueInvoiceRequest{
		CouponCode: trimmedCode(r.CouponCode),
		DueDays:    r.DueDays,
	}
	if r.Customer != nil {
		contact := r.Customer.ToContact()
		out.Customer = &contact
	}
	if r.Event != nil {
		event := r.Event.ToInput()
		out.Event = &event
	}
	return out
}

func trimmedCode(code *string) *string {
	if code == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*code)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type AvailabilityQuery struct {
	From string `form:"from" binding:"required,ymd"`
	To   string `form:"to" binding:"required,ymd"`
}

type DashboardQuery struct {
	Statuses []string   `form:"status"`
	From     *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To       *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit    int        `form:"limit" binding:"omitempty,min=1,max=200"`
	After    string     `form:"after"`
}

func (q DashboardQuery) ToFilters() queries.DashboardFilters {
	statuses := make([]string, 0, len(q.Statuses))
	for _, s := range q.Statuses {
		for _, part := range strings.Split(s, ",") {
			if part = strings.ToUpper(strings.TrimSpace(part)); part != "" {
				statuses = append(statuses, part)
			}
		}
	}
	return queries.DashboardFilters{Statuses: statuses, From: q.From, To: q.To}
}
