package get_cart

import (
	"context"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/reprice_sale"
)

// Request identifies the sale whose cart to fetch.
type Request struct {
	SaleID string
}

// Query handles the get cart query use case.
type Query struct {
	readModel contracts.ReadModel
	repricer  *reprice_sale.Interactor
}

// NewQuery creates a new get cart query.
func NewQuery(readModel contracts.ReadModel, repricer *reprice_sale.Interactor) *Query {
	return &Query{
		readModel: readModel,
		repricer:  repricer,
	}
}

// Execute reprices the sale against current prices and campaign rules, then
// returns the cart joined with the catalog. Loading a cart is the moment
// discounts refresh, so the register and the mirror display always show
// totals the customer would actually pay.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.CartDTO, error) {
	if err := q.repricer.Execute(ctx, &reprice_sale.Request{SaleID: req.SaleID}); err != nil {
		return nil, err
	}

	return q.readModel.GetCart(ctx, req.SaleID)
}
