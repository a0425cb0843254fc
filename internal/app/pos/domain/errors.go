package domain

import "errors"

// Domain errors as sentinel values
var (
	// Catalog errors
	ErrItemNotFound  = errors.New("item not found")
	ErrDuplicateItem = errors.New("item id already exists")
	ErrInvalidItemID = errors.New("item id must be a non-negative integer")
	ErrInvalidName   = errors.New("item name must be 1-32 characters")
	ErrInvalidPrice  = errors.New("item price must be a non-negative number")
	ErrInvalidStock  = errors.New("item stock must be a non-negative integer")
	ErrOutOfStock    = errors.New("insufficient stock")

	// Sale errors
	ErrSaleNotFound          = errors.New("sale not found")
	ErrDuplicateSaleID       = errors.New("sale id already exists")
	ErrInvalidCustomerName   = errors.New("customer name must be at most 32 characters")
	ErrInvalidQuantity       = errors.New("quantity must be a positive integer")
	ErrInvalidDiscount       = errors.New("discount must be non-negative, percentage at most 100")
	ErrInvalidPaymentMethod  = errors.New("unknown payment method")
	ErrLineNotFound          = errors.New("cart line not found")

	// Campaign errors
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrInvalidCampaignKind   = errors.New("campaign discount kind must be \"percent\" or \"fixed\"")
	ErrInvalidCampaignRule   = errors.New("campaign rule values out of range")
	ErrDuplicateCampaignTier = errors.New("item already has a rule at this quantity")

	// Store errors
	ErrStoreUnavailable = errors.New("store unavailable")
)
