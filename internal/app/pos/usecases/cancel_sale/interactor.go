package cancel_sale

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/pkg/committer"
)

// Request identifies the sale to cancel.
type Request struct {
	SaleID string
}

// Interactor handles the cancel sale use case.
type Interactor struct {
	saleRepo   contracts.SaleRepository
	itemRepo   contracts.ItemRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
}

// NewInteractor creates a new cancel sale interactor.
func NewInteractor(
	saleRepo contracts.SaleRepository,
	itemRepo contracts.ItemRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
) *Interactor {
	return &Interactor{
		saleRepo:   saleRepo,
		itemRepo:   itemRepo,
		outboxRepo: outboxRepo,
		committer:  committer,
	}
}

// Execute cancels a sale: every line's quantity goes back to catalog stock
// and the sale row is deleted, cart lines cascading with it. Restores and
// deletion commit together, so a failed cancel changes nothing.
//
// Lines whose item no longer exists in the catalog are skipped; their
// quantities have nowhere to return to.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	return i.committer.ReadWrite(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		sale, err := i.saleRepo.GetByIDForUpdate(ctx, txn, req.SaleID)
		if err != nil {
			return err
		}

		muts := make([]*spanner.Mutation, 0)

		for _, line := range sale.Lines() {
			item, err := i.itemRepo.GetByIDForUpdate(ctx, txn, line.ItemID())
			if errors.Is(err, domain.ErrItemNotFound) {
				continue
			}
			if err != nil {
				return err
			}

			if err := item.AdjustStock(line.Count()); err != nil {
				return err
			}
			muts = append(muts, i.itemRepo.UpdateMut(item))
		}

		sale.Cancel()
		muts = append(muts, i.saleRepo.DeleteMut(sale.ID()))

		for _, event := range sale.DomainEvents() {
			payload, err := json.Marshal(event)
			if err != nil {
				return fmt.Errorf("failed to serialize event: %w", err)
			}
			muts = append(muts, i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, string(payload))))
		}

		return txn.BufferWrite(muts)
	})
}
