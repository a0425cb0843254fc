package list_sales

import (
	"context"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
)

// Request contains substring filters for browsing sales.
type Request struct {
	Date     string
	Customer string
}

// Query handles the list sales query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list sales query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves sale headers matching the filters, newest first. The date
// filter matches against the "2006-01-02T15:04:05" rendering, so a prefix
// like "2026-09" selects a whole month.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.SaleDTO, error) {
	filter := &contracts.SaleFilter{
		Date:     req.Date,
		Customer: req.Customer,
	}

	return q.readModel.ListSales(ctx, filter)
}
