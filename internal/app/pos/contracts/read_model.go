package contracts

import (
	"context"
	"time"
)

// ItemDTO is a data transfer object for catalog queries.
type ItemDTO struct {
	ItemID    int64
	Name      string
	Price     float64
	Stock     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemFilter defines substring filters for searching the catalog. Every field
// is typed free text; empty fields don't constrain the result.
type ItemFilter struct {
	ID    string
	Name  string
	Price string
	Stock string
}

// SaleDTO is a data transfer object for sale header queries.
type SaleDTO struct {
	SaleID            string
	SaleDate          time.Time
	CustomerName      string
	TotalDiscountPerc int64
	TotalDiscountNum  float64
	TotalAmount       float64
	PaymentMethod     string
	PaymentInfo       string
	OnHold            bool
}

// SaleFilter defines substring filters for browsing sales.
type SaleFilter struct {
	Date     string
	Customer string
}

// CartLineDTO is a data transfer object for one cart line joined with its
// catalog item. Dangling is set when the item was deleted from the catalog
// after the line was recorded; Name and UnitPrice are then zero values.
type CartLineDTO struct {
	CartItemID   string
	ItemID       int64
	Name         string
	UnitPrice    float64
	Count        int64
	DiscountPerc float64
	DiscountNum  float64
	Total        float64
	Dangling     bool
}

// CartDTO is the full cart view for the register and the mirror display.
type CartDTO struct {
	Sale  *SaleDTO
	Lines []*CartLineDTO
}

// CampaignDTO is a data transfer object for campaign rule queries. ItemName
// is joined from the catalog; empty when the item has since been removed.
type CampaignDTO struct {
	CampID        string
	ItemID        int64
	ItemName      string
	MinQuantity   int64
	DiscountKind  string
	DiscountValue float64
	CreatedAt     time.Time
}

// ReadModel defines the interface for register-facing queries.
// Read models can bypass the domain layer for performance.
type ReadModel interface {
	// ListAvailableItems retrieves catalog items with stock on hand
	ListAvailableItems(ctx context.Context) ([]*ItemDTO, error)

	// SearchItems retrieves catalog items matching the filter
	SearchItems(ctx context.Context, filter *ItemFilter) ([]*ItemDTO, error)

	// ListSales retrieves sale headers matching the filter, newest first
	ListSales(ctx context.Context, filter *SaleFilter) ([]*SaleDTO, error)

	// ListOnHoldSales retrieves suspended sales awaiting resumption
	ListOnHoldSales(ctx context.Context) ([]*SaleDTO, error)

	// GetSaleByID retrieves one sale header
	GetSaleByID(ctx context.Context, saleID string) (*SaleDTO, error)

	// GetCart retrieves the sale header with its lines joined against the
	// catalog
	GetCart(ctx context.Context, saleID string) (*CartDTO, error)

	// ListCampaigns retrieves all campaign rules
	ListCampaigns(ctx context.Context) ([]*CampaignDTO, error)
}
