package remove_line

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
	"github.com/light-bringer/pos-service/internal/pkg/committer"
)

// Request identifies the cart line to remove by its stable line id, so the
// operation targets the same line regardless of how the list happens to be
// sorted on screen.
type Request struct {
	SaleID string
	LineID string
}

// Interactor handles the remove line use case.
type Interactor struct {
	repo       contracts.SaleRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
}

// NewInteractor creates a new remove line interactor.
func NewInteractor(
	repo contracts.SaleRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
	}
}

// Execute removes a line from the cart. Stock is not restored; the quantities
// return to the catalog only when the whole sale is cancelled.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	sale, err := i.repo.GetByID(ctx, req.SaleID)
	if err != nil {
		return err
	}

	if err := sale.RemoveLine(req.LineID); err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.AddMultiple(i.repo.UpdateMuts(sale))

	for _, event := range sale.DomainEvents() {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, string(payload))))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
