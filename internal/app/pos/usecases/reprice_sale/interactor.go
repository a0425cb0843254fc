package reprice_sale

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/pkg/committer"
)

// Request identifies the sale to reprice.
type Request struct {
	SaleID string
}

// Interactor handles the reprice sale use case.
type Interactor struct {
	saleRepo     contracts.SaleRepository
	itemRepo     contracts.ItemRepository
	campaignRepo contracts.CampaignRepository
	outboxRepo   contracts.OutboxRepository
	committer    *committer.Committer
	calc         *domain.PricingCalculator
}

// NewInteractor creates a new reprice sale interactor.
func NewInteractor(
	saleRepo contracts.SaleRepository,
	itemRepo contracts.ItemRepository,
	campaignRepo contracts.CampaignRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	calc *domain.PricingCalculator,
) *Interactor {
	return &Interactor{
		saleRepo:     saleRepo,
		itemRepo:     itemRepo,
		campaignRepo: campaignRepo,
		outboxRepo:   outboxRepo,
		committer:    committer,
		calc:         calc,
	}
}

// Execute re-derives every line's discount and total from current catalog
// prices and campaign rules, then the sale's aggregate totals. Repricing is
// idempotent: when nothing changed, no rows are written and no event is
// recorded.
//
// The reads and the writes share one read-write transaction, so a price edit
// committing concurrently cannot produce totals computed from a mix of old
// and new prices.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	return i.committer.ReadWrite(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		sale, err := i.saleRepo.GetByIDForUpdate(ctx, txn, req.SaleID)
		if err != nil {
			return err
		}

		itemIDs := make([]int64, 0, len(sale.Lines()))
		for _, line := range sale.Lines() {
			itemIDs = append(itemIDs, line.ItemID())
		}

		prices, err := i.itemRepo.PricesForUpdate(ctx, txn, itemIDs)
		if err != nil {
			return err
		}

		rules, err := i.campaignRepo.RulesForItemsForUpdate(ctx, txn, itemIDs)
		if err != nil {
			return err
		}

		sale.Reprice(prices, rules, i.calc)

		muts := i.saleRepo.UpdateMuts(sale)

		for _, event := range sale.DomainEvents() {
			payload, err := json.Marshal(event)
			if err != nil {
				return fmt.Errorf("failed to serialize event: %w", err)
			}
			muts = append(muts, i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, string(payload))))
		}

		if len(muts) == 0 {
			return nil
		}
		return txn.BufferWrite(muts)
	})
}
