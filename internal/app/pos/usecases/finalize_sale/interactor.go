package finalize_sale

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/pkg/committer"
)

// Request contains the settlement input. Reference is optional free text,
// e.g. the sender name on a bank transfer.
type Request struct {
	SaleID    string
	Method    string
	Reference string
}

// Interactor handles the finalize sale use case.
type Interactor struct {
	repo       contracts.SaleRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
}

// NewInteractor creates a new finalize sale interactor.
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

// Execute settles a sale with a terminal payment method. The register shows
// totals from the cart view, which repriced on load, so the stored totals are
// current when the sale settles.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	sale, err := i.repo.GetByID(ctx, req.SaleID)
	if err != nil {
		return err
	}

	if err := sale.Finalize(domain.PaymentMethod(req.Method), req.Reference); err != nil {
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
