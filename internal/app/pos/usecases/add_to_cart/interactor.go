package add_to_cart

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/pkg/committer"
)

// Request contains the operator's raw input for ringing up an item. The
// manual discount fields may be empty, which means no discount.
type Request struct {
	SaleID       string
	ItemID       string
	Count        string
	DiscountPerc string
	DiscountNum  string
}

// Interactor handles the add to cart use case.
type Interactor struct {
	saleRepo   contracts.SaleRepository
	itemRepo   contracts.ItemRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
}

// NewInteractor creates a new add to cart interactor.
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

// Execute rings a quantity of an item into a sale's cart. The stock check and
// the decrement happen inside one read-write transaction, so stock can never
// go negative no matter how many registers sell the item concurrently. When
// the item is already in the cart the quantity merges into the existing line.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	// 1. Parse operator input
	itemID, err := strconv.ParseInt(req.ItemID, 10, 64)
	if err != nil || itemID < 0 {
		return domain.ErrInvalidItemID
	}

	count, err := strconv.ParseInt(req.Count, 10, 64)
	if err != nil || count <= 0 {
		return domain.ErrInvalidQuantity
	}

	manualPerc := 0.0
	if req.DiscountPerc != "" {
		manualPerc, err = strconv.ParseFloat(req.DiscountPerc, 64)
		if err != nil {
			return domain.ErrInvalidDiscount
		}
	}

	manualNum := domain.ZeroMoney()
	if req.DiscountNum != "" {
		manualNum, err = domain.NewMoneyFromString(req.DiscountNum)
		if err != nil {
			return domain.ErrInvalidDiscount
		}
	}

	// 2. Reserve stock and extend the cart atomically
	return i.committer.ReadWrite(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		sale, err := i.saleRepo.GetByIDForUpdate(ctx, txn, req.SaleID)
		if err != nil {
			return err
		}

		item, err := i.itemRepo.GetByIDForUpdate(ctx, txn, itemID)
		if err != nil {
			return err
		}

		if err := item.AdjustStock(-count); err != nil {
			return err
		}

		if err := sale.AddItem(uuid.New().String(), item, count, manualPerc, manualNum); err != nil {
			return err
		}

		muts := []*spanner.Mutation{i.itemRepo.UpdateMut(item)}
		muts = append(muts, i.saleRepo.UpdateMuts(sale)...)

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
