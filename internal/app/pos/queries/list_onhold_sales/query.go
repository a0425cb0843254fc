package list_onhold_sales

import (
	"context"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
)

// Query handles the list on-hold sales query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list on-hold sales query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves the suspended sales waiting to be resumed, newest first.
func (q *Query) Execute(ctx context.Context) ([]*contracts.SaleDTO, error) {
	return q.readModel.ListOnHoldSales(ctx)
}
