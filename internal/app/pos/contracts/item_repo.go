package contracts

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/light-bringer/pos-service/internal/app/pos/domain"
)

// ItemRepository defines the interface for catalog item persistence.
// Repositories return mutations, they don't apply them (Golden Mutation Pattern).
type ItemRepository interface {
	// InsertMut creates a mutation for inserting a new item
	InsertMut(item *domain.Item) *spanner.Mutation

	// UpdateMut creates a mutation for updating an item (only dirty fields).
	// Returns nil when nothing changed.
	UpdateMut(item *domain.Item) *spanner.Mutation

	// DeleteMut creates a mutation for hard-deleting an item
	DeleteMut(itemID int64) *spanner.Mutation

	// GetByID retrieves an item by barcode, reconstructing the domain aggregate
	GetByID(ctx context.Context, itemID int64) (*domain.Item, error)

	// GetByIDForUpdate retrieves an item inside a read-write transaction so
	// the stock read locks the row until commit
	GetByIDForUpdate(ctx context.Context, txn *spanner.ReadWriteTransaction, itemID int64) (*domain.Item, error)

	// PricesForUpdate retrieves current unit prices for the given barcodes
	// inside a read-write transaction. Missing barcodes are absent from the
	// result, not an error.
	PricesForUpdate(ctx context.Context, txn *spanner.ReadWriteTransaction, itemIDs []int64) (map[int64]*domain.Money, error)

	// Exists checks if an item exists
	Exists(ctx context.Context, itemID int64) (bool, error)
}
