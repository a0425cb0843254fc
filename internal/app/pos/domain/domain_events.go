package domain

import (
	"strconv"
	"time"
)

// DomainEvent is the base interface for all domain events. Events are written
// to the outbox in the same transaction as the state change they describe;
// the customer-facing mirror display and reporting consume the feed.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ItemCreatedEvent is emitted when a catalog item is created.
type ItemCreatedEvent struct {
	ItemID    int64
	Name      string
	Price     float64
	Stock     int64
	CreatedAt time.Time
}

func (e *ItemCreatedEvent) EventType() string   { return "item.created" }
func (e *ItemCreatedEvent) AggregateID() string { return strconv.FormatInt(e.ItemID, 10) }

// ItemUpdatedEvent is emitted when catalog fields are edited.
type ItemUpdatedEvent struct {
	ItemID    int64
	Name      string
	Price     float64
	Stock     int64
	UpdatedAt time.Time
}

func (e *ItemUpdatedEvent) EventType() string   { return "item.updated" }
func (e *ItemUpdatedEvent) AggregateID() string { return strconv.FormatInt(e.ItemID, 10) }

// ItemRemovedEvent is emitted when a catalog item is hard-deleted.
type ItemRemovedEvent struct {
	ItemID    int64
	RemovedAt time.Time
}

func (e *ItemRemovedEvent) EventType() string   { return "item.removed" }
func (e *ItemRemovedEvent) AggregateID() string { return strconv.FormatInt(e.ItemID, 10) }

// CampaignCreatedEvent is emitted when a campaign rule is created.
type CampaignCreatedEvent struct {
	CampaignID  string
	ItemID      int64
	MinQuantity int64
	Kind        string
	Value       float64
}

func (e *CampaignCreatedEvent) EventType() string   { return "campaign.created" }
func (e *CampaignCreatedEvent) AggregateID() string { return e.CampaignID }

// CampaignDeletedEvent is emitted when a campaign rule is deleted.
type CampaignDeletedEvent struct {
	CampaignID string
	DeletedAt  time.Time
}

func (e *CampaignDeletedEvent) EventType() string   { return "campaign.deleted" }
func (e *CampaignDeletedEvent) AggregateID() string { return e.CampaignID }

// SaleStartedEvent is emitted when a sale is opened.
type SaleStartedEvent struct {
	SaleID       string
	CustomerName string
	StartedAt    time.Time
}

func (e *SaleStartedEvent) EventType() string   { return "sale.started" }
func (e *SaleStartedEvent) AggregateID() string { return e.SaleID }

// SaleLineAddedEvent is emitted when a quantity of an item enters the cart.
type SaleLineAddedEvent struct {
	SaleID  string
	ItemID  int64
	Count   int64
	AddedAt time.Time
}

func (e *SaleLineAddedEvent) EventType() string   { return "sale.line.added" }
func (e *SaleLineAddedEvent) AggregateID() string { return e.SaleID }

// SaleLineRemovedEvent is emitted when a cart line is removed.
type SaleLineRemovedEvent struct {
	SaleID    string
	ItemID    int64
	RemovedAt time.Time
}

func (e *SaleLineRemovedEvent) EventType() string   { return "sale.line.removed" }
func (e *SaleLineRemovedEvent) AggregateID() string { return e.SaleID }

// SaleRepricedEvent is emitted when repricing changed the sale's totals.
type SaleRepricedEvent struct {
	SaleID           string
	TotalDiscountNum float64
	TotalAmount      float64
}

func (e *SaleRepricedEvent) EventType() string   { return "sale.repriced" }
func (e *SaleRepricedEvent) AggregateID() string { return e.SaleID }

// SaleHeldEvent is emitted when a sale is suspended.
type SaleHeldEvent struct {
	SaleID string
	HeldAt time.Time
}

func (e *SaleHeldEvent) EventType() string   { return "sale.held" }
func (e *SaleHeldEvent) AggregateID() string { return e.SaleID }

// SaleResumedEvent is emitted when a suspended sale is reloaded.
type SaleResumedEvent struct {
	SaleID    string
	ResumedAt time.Time
}

func (e *SaleResumedEvent) EventType() string   { return "sale.resumed" }
func (e *SaleResumedEvent) AggregateID() string { return e.SaleID }

// SaleFinalizedEvent is emitted when a sale settles with a terminal payment
// method.
type SaleFinalizedEvent struct {
	SaleID      string
	Method      string
	Reference   string
	FinalizedAt time.Time
}

func (e *SaleFinalizedEvent) EventType() string   { return "sale.finalized" }
func (e *SaleFinalizedEvent) AggregateID() string { return e.SaleID }

// SaleCancelledEvent is emitted when a sale is cancelled and deleted.
type SaleCancelledEvent struct {
	SaleID      string
	CancelledAt time.Time
}

func (e *SaleCancelledEvent) EventType() string   { return "sale.cancelled" }
func (e *SaleCancelledEvent) AggregateID() string { return e.SaleID }
