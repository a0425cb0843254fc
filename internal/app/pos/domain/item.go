package domain

import (
	"strconv"

	"github.com/light-bringer/pos-service/internal/pkg/clock"
)

// Field names for change tracking on the Item aggregate
const (
	FieldItemName  = "item_name"
	FieldItemPrice = "item_price"
	FieldItemStock = "item_stock"
)

// MaxNameLen bounds item names and customer names, per the catalog schema.
const MaxNameLen = 32

// Item is the aggregate root for catalog products.
// Its one hard invariant is that stock never goes negative: any adjustment
// that would overdraw fails with ErrOutOfStock and leaves the count unchanged.
type Item struct {
	id    int64
	name  string
	price *Money
	stock int64

	clock   clock.Clock
	changes *ChangeTracker
	events  []DomainEvent
}

// NewItem creates a new Item aggregate (for catalog entry).
// The id is externally assigned and immutable once created.
func NewItem(id int64, name string, price *Money, stock int64, clk clock.Clock) (*Item, error) {
	if id < 0 {
		return nil, ErrInvalidItemID
	}
	if name == "" || len(name) > MaxNameLen {
		return nil, ErrInvalidName
	}
	if price == nil || price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	it := &Item{
		id:      id,
		name:    name,
		price:   price.Copy(),
		stock:   stock,
		clock:   clk,
		changes: NewChangeTracker(),
		events:  make([]DomainEvent, 0),
	}

	it.changes.MarkDirty(FieldItemName)
	it.changes.MarkDirty(FieldItemPrice)
	it.changes.MarkDirty(FieldItemStock)

	it.recordEvent(&ItemCreatedEvent{
		ItemID:    it.id,
		Name:      it.name,
		Price:     it.price.Float64(),
		Stock:     it.stock,
		CreatedAt: clk.Now(),
	})

	return it, nil
}

// ReconstructItem reconstitutes an Item from the database.
func ReconstructItem(id int64, name string, price *Money, stock int64, clk clock.Clock) *Item {
	return &Item{
		id:      id,
		name:    name,
		price:   price,
		stock:   stock,
		clock:   clk,
		changes: NewChangeTracker(),
		events:  make([]DomainEvent, 0),
	}
}

// Getters
func (it *Item) ID() int64                  { return it.id }
func (it *Item) Name() string               { return it.name }
func (it *Item) Price() *Money              { return it.price.Copy() }
func (it *Item) Stock() int64               { return it.stock }
func (it *Item) Changes() *ChangeTracker    { return it.changes }
func (it *Item) DomainEvents() []DomainEvent { return it.events }

// AggregateID returns the item id in the string form used by the outbox.
func (it *Item) AggregateID() string {
	return strconv.FormatInt(it.id, 10)
}

// SetName updates the item name. Setting the current value is a no-op.
func (it *Item) SetName(name string) error {
	if name == "" || len(name) > MaxNameLen {
		return ErrInvalidName
	}
	if name == it.name {
		return nil
	}
	it.name = name
	it.changes.MarkDirty(FieldItemName)
	it.recordUpdated()
	return nil
}

// SetPrice updates the unit price. Setting the current value is a no-op.
func (it *Item) SetPrice(price *Money) error {
	if price == nil || price.IsNegative() {
		return ErrInvalidPrice
	}
	if price.Equals(it.price) {
		return nil
	}
	it.price = price.Copy()
	it.changes.MarkDirty(FieldItemPrice)
	it.recordUpdated()
	return nil
}

// SetStock overwrites the stock count (catalog edit, not a sale adjustment).
// Setting the current value is a no-op.
func (it *Item) SetStock(stock int64) error {
	if stock < 0 {
		return ErrInvalidStock
	}
	if stock == it.stock {
		return nil
	}
	it.stock = stock
	it.changes.MarkDirty(FieldItemStock)
	it.recordUpdated()
	return nil
}

// AdjustStock applies a delta to the stock count: negative when items are
// sold, positive when a sale is cancelled. A delta that would take the count
// below zero fails with ErrOutOfStock and performs no mutation.
func (it *Item) AdjustStock(delta int64) error {
	next := it.stock + delta
	if next < 0 {
		return ErrOutOfStock
	}
	it.stock = next
	it.changes.MarkDirty(FieldItemStock)
	return nil
}

func (it *Item) recordUpdated() {
	it.recordEvent(&ItemUpdatedEvent{
		ItemID:    it.id,
		Name:      it.name,
		Price:     it.price.Float64(),
		Stock:     it.stock,
		UpdatedAt: it.clock.Now(),
	})
}

func (it *Item) recordEvent(event DomainEvent) {
	it.events = append(it.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (it *Item) ClearEvents() {
	it.events = make([]DomainEvent, 0)
}
