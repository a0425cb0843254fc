package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/models/m_item"
	"github.com/light-bringer/pos-service/internal/pkg/clock"
)

// txReader is the read surface shared by snapshot and read-write transactions.
type txReader interface {
	ReadRow(ctx context.Context, table string, key spanner.Key, columns []string) (*spanner.Row, error)
	Query(ctx context.Context, statement spanner.Statement) *spanner.RowIterator
}

// wrapStore tags a Spanner failure with ErrStoreUnavailable while keeping the
// underlying message. The cause is formatted rather than wrapped so the
// committer never mistakes a repo error for a raw status error.
func wrapStore(msg string, err error) error {
	return fmt.Errorf("%s: %v: %w", msg, err, domain.ErrStoreUnavailable)
}

// ItemRepo implements ItemRepository for Spanner.
type ItemRepo struct {
	client *spanner.Client
	model  *m_item.Model
	clock  clock.Clock
}

// NewItemRepo creates a new ItemRepo.
func NewItemRepo(client *spanner.Client, clk clock.Clock) contracts.ItemRepository {
	return &ItemRepo{
		client: client,
		model:  m_item.NewModel(),
		clock:  clk,
	}
}

// InsertMut creates a mutation for inserting a new item.
func (r *ItemRepo) InsertMut(item *domain.Item) *spanner.Mutation {
	return r.model.InsertMut(&m_item.Data{
		ItemID:    item.ID(),
		ItemName:  item.Name(),
		ItemPrice: item.Price().Float64(),
		ItemStock: item.Stock(),
	})
}

// UpdateMut creates a mutation for updating an item (only dirty fields).
func (r *ItemRepo) UpdateMut(item *domain.Item) *spanner.Mutation {
	changes := item.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldItemName) {
		updates[m_item.ItemName] = item.Name()
	}

	if changes.Dirty(domain.FieldItemPrice) {
		updates[m_item.ItemPrice] = item.Price().Float64()
	}

	if changes.Dirty(domain.FieldItemStock) {
		updates[m_item.ItemStock] = item.Stock()
	}

	return r.model.UpdateMut(item.ID(), updates)
}

// DeleteMut creates a mutation for hard-deleting an item.
func (r *ItemRepo) DeleteMut(itemID int64) *spanner.Mutation {
	return r.model.DeleteMut(itemID)
}

// GetByID retrieves an item by barcode, reconstructing the domain aggregate.
func (r *ItemRepo) GetByID(ctx context.Context, itemID int64) (*domain.Item, error) {
	return r.getByID(ctx, r.client.Single(), itemID)
}

// GetByIDForUpdate retrieves an item inside a read-write transaction. The read
// locks the row, which is what makes the stock check atomic with the write.
func (r *ItemRepo) GetByIDForUpdate(ctx context.Context, txn *spanner.ReadWriteTransaction, itemID int64) (*domain.Item, error) {
	return r.getByID(ctx, txn, itemID)
}

func (r *ItemRepo) getByID(ctx context.Context, tx txReader, itemID int64) (*domain.Item, error) {
	row, err := tx.ReadRow(ctx, m_item.TableName, spanner.Key{itemID}, []string{
		m_item.ItemID,
		m_item.ItemName,
		m_item.ItemPrice,
		m_item.ItemStock,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrItemNotFound
		}
		return nil, wrapStore("failed to read item", err)
	}

	var (
		id    int64
		name  string
		price float64
		stock int64
	)
	if err := row.Columns(&id, &name, &price, &stock); err != nil {
		return nil, fmt.Errorf("failed to parse item: %w", err)
	}

	return domain.ReconstructItem(id, name, domain.NewMoneyFromFloat64(price), stock, r.clock), nil
}

// PricesForUpdate retrieves current unit prices for the given barcodes inside
// a read-write transaction. Barcodes no longer in the catalog are simply
// absent from the result.
func (r *ItemRepo) PricesForUpdate(ctx context.Context, txn *spanner.ReadWriteTransaction, itemIDs []int64) (map[int64]*domain.Money, error) {
	prices := make(map[int64]*domain.Money, len(itemIDs))
	if len(itemIDs) == 0 {
		return prices, nil
	}

	stmt := spanner.Statement{
		SQL: fmt.Sprintf("SELECT %s, %s FROM %s WHERE %s IN UNNEST(@ids)",
			m_item.ItemID, m_item.ItemPrice, m_item.TableName, m_item.ItemID),
		Params: map[string]interface{}{"ids": itemIDs},
	}

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStore("failed to read item prices", err)
		}

		var (
			id    int64
			price float64
		)
		if err := row.Columns(&id, &price); err != nil {
			return nil, fmt.Errorf("failed to parse item price: %w", err)
		}
		prices[id] = domain.NewMoneyFromFloat64(price)
	}

	return prices, nil
}

// Exists checks if an item exists.
func (r *ItemRepo) Exists(ctx context.Context, itemID int64) (bool, error) {
	row, err := r.client.Single().ReadRow(ctx, m_item.TableName, spanner.Key{itemID}, []string{m_item.ItemID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, wrapStore("failed to check item existence", err)
	}
	return row != nil, nil
}
