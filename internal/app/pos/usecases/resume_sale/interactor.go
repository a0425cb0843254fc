package resume_sale

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
	"github.com/light-bringer/pos-service/internal/pkg/committer"
)

// Request identifies the suspended sale to reload.
type Request struct {
	SaleID string
}

// Interactor handles the resume sale use case.
type Interactor struct {
	repo       contracts.SaleRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
}

// NewInteractor creates a new resume sale interactor.
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

// Execute brings a suspended sale back to the register. The only data change
// is the refreshed sale date; the caller follows up with the cart query,
// which reprices.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	sale, err := i.repo.GetByID(ctx, req.SaleID)
	if err != nil {
		return err
	}

	sale.Resume()

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
