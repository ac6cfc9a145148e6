package booking

import (
	"errors"

	"bounce-booking/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("item quantity must be at least 1")
	ErrNegativePrice   = errors.New("item price cannot be negative")
)

// Item reserves one inventory unit for the booking window. The price is
// snapshotted when the hold is taken and never re-read from inventory.
type Item struct {
	id          uuid.UUID
	inventoryID uuid.UUID
	name        string
	quantity    int32
	price       money.Cents
	window      TimeWindow
	buffered    TimeWindow
	status      Status
}

func newItem(inventoryID uuid.UUID, name string, quantity int32, price money.Cents, window, buffered TimeWindow, status Status) (Item, error) {
	if quantity < 1 {
		return Item{}, ErrInvalidQuantity
	}
	if price < 0 {
		return Item{}, ErrNegativePrice
	}
	return Item{
		id:          uuid.New(),
		inventoryID: inventoryID,
		name:        name,
		quantity:    quantity,
		price:       price,
		window:      window,
		buffered:    buffered,
		status:      status,
	}, nil
}

func ReconstructItem(
	id, inventoryID uuid.UUID,
	name string,
	quantity int32,
	price money.Cents,
	window, buffered TimeWindow,
	status Status,
) Item {
	return Item{
		id:          id,
		inventoryID: inventoryID,
		name:        name,
		quantity:    quantity,
		price:       price,
		window:      window,
		buffered:    buffered,
		status:      status,
	}
}

func (i Item) LineTotal() money.Cents {
	return i.price * money.Cents(i.quantity)
}

func (i Item) ID() uuid.UUID              { return i.id }
func (i Item) InventoryID() uuid.UUID     { return i.inventoryID }
func (i Item) Name() string               { return i.name }
func (i Item) Quantity() int32            { return i.quantity }
func (i Item) Price() money.Cents         { return i.price }
func (i Item) Window() TimeWindow         { return i.window }
func (i Item) BufferedWindow() TimeWindow { return i.buffered }
func (i Item) Status() Status             { return i.status }
