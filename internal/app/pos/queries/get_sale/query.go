package get_sale

import (
	"context"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
)

// Request identifies the sale to fetch.
type Request struct {
	SaleID string
}

// Query handles the get sale query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get sale query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves one sale header as stored. Unlike the cart query this
// does not reprice first; receipts and history browsing want the settled
// values.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.SaleDTO, error) {
	return q.readModel.GetSaleByID(ctx, req.SaleID)
}
