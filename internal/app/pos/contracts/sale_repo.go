package contracts

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/light-bringer/pos-service/internal/app/pos/domain"
)

// SaleRepository defines the interface for sale persistence. A sale and its
// cart lines form one aggregate, so the mutation builders cover both tables.
type SaleRepository interface {
	// InsertMuts creates mutations for inserting a new sale and any lines it
	// already carries
	InsertMuts(sale *domain.Sale) []*spanner.Mutation

	// UpdateMuts creates mutations for a loaded sale: dirty sale fields, new
	// lines, repriced lines and removed lines. Returns an empty slice when
	// nothing changed.
	UpdateMuts(sale *domain.Sale) []*spanner.Mutation

	// DeleteMut creates a mutation deleting the sale row; interleaved cart
	// lines go with it
	DeleteMut(saleID string) *spanner.Mutation

	// GetByID retrieves a sale with its cart lines, reconstructing the
	// domain aggregate
	GetByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// GetByIDForUpdate retrieves a sale with its cart lines inside a
	// read-write transaction
	GetByIDForUpdate(ctx context.Context, txn *spanner.ReadWriteTransaction, saleID string) (*domain.Sale, error)
}
