package start_sale

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/pkg/clock"
	"github.com/light-bringer/pos-service/internal/pkg/committer"
)

// maxIDAttempts bounds the retry loop for sale id collisions. Two collisions
// in a row need two sales in the same second drawing the same 3-digit suffix.
const maxIDAttempts = 3

// Request contains the input for opening a sale. The customer name is
// optional free text.
type Request struct {
	CustomerName string
}

// Interactor handles the start sale use case.
type Interactor struct {
	repo       contracts.SaleRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
	rand       *rand.Rand
}

// NewInteractor creates a new start sale interactor.
func NewInteractor(
	repo contracts.SaleRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
	rnd *rand.Rand,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
		rand:       rnd,
	}
}

// Execute opens a new sale with zero totals and the in-progress payment
// sentinel, and returns its id. Id collisions (same second, same random
// suffix) surface as duplicate-key commit failures and are retried with a
// fresh suffix.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := domain.NewSaleID(i.clock.Now(), i.rand)

		sale, err := domain.NewSale(id, req.CustomerName, i.clock)
		if err != nil {
			return "", err
		}

		plan := committer.NewPlan()
		plan.AddMultiple(i.repo.InsertMuts(sale))

		for _, event := range sale.DomainEvents() {
			payload, err := json.Marshal(event)
			if err != nil {
				return "", fmt.Errorf("failed to serialize event: %w", err)
			}
			plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, string(payload))))
		}

		err = i.committer.Apply(ctx, plan)
		if err == nil {
			return sale.ID(), nil
		}
		if errors.Is(err, committer.ErrAlreadyExists) {
			continue
		}
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return "", domain.ErrDuplicateSaleID
}
