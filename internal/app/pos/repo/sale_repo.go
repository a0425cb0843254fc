package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/models/m_cart_item"
	"github.com/light-bringer/pos-service/internal/models/m_sale"
	"github.com/light-bringer/pos-service/internal/pkg/clock"
)

// SaleRepo implements SaleRepository for Spanner. The sale header and its
// interleaved cart lines are loaded and written together as one aggregate.
type SaleRepo struct {
	client    *spanner.Client
	saleModel *m_sale.Model
	lineModel *m_cart_item.Model
	clock     clock.Clock
}

// NewSaleRepo creates a new SaleRepo.
func NewSaleRepo(client *spanner.Client, clk clock.Clock) contracts.SaleRepository {
	return &SaleRepo{
		client:    client,
		saleModel: m_sale.NewModel(),
		lineModel: m_cart_item.NewModel(),
		clock:     clk,
	}
}

// InsertMuts creates mutations for inserting a new sale and any lines it
// already carries.
func (r *SaleRepo) InsertMuts(sale *domain.Sale) []*spanner.Mutation {
	muts := []*spanner.Mutation{
		r.saleModel.InsertMut(&m_sale.Data{
			SaleID:            sale.ID(),
			SaleDate:          sale.SaleDate(),
			CustomerName:      sale.CustomerName(),
			TotalDiscountPerc: sale.TotalDiscountPerc(),
			TotalDiscountNum:  sale.TotalDiscountNum().Float64(),
			TotalAmount:       sale.TotalAmount().Float64(),
			PaymentMethod:     string(sale.PaymentMethod()),
			PaymentInfo:       sale.PaymentInfo(),
		}),
	}

	for _, line := range sale.Lines() {
		muts = append(muts, r.lineInsertMut(sale.ID(), line))
	}

	return muts
}

// UpdateMuts creates mutations for a loaded sale: dirty header fields, new
// lines, repriced lines and removed lines.
func (r *SaleRepo) UpdateMuts(sale *domain.Sale) []*spanner.Mutation {
	muts := make([]*spanner.Mutation, 0)

	changes := sale.Changes()
	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldSaleDate) {
		updates[m_sale.SaleDate] = sale.SaleDate()
	}

	if changes.Dirty(domain.FieldPaymentMethod) {
		updates[m_sale.PaymentMethod] = string(sale.PaymentMethod())
	}

	if changes.Dirty(domain.FieldPaymentInfo) {
		updates[m_sale.PaymentInfo] = sale.PaymentInfo()
	}

	if changes.Dirty(domain.FieldTotalDiscountNum) {
		updates[m_sale.TotalDiscountNum] = sale.TotalDiscountNum().Float64()
	}

	if changes.Dirty(domain.FieldTotalAmount) {
		updates[m_sale.TotalAmount] = sale.TotalAmount().Float64()
	}

	if mut := r.saleModel.UpdateMut(sale.ID(), updates); mut != nil {
		muts = append(muts, mut)
	}

	for _, line := range sale.Lines() {
		switch {
		case line.IsNew():
			muts = append(muts, r.lineInsertMut(sale.ID(), line))
		case line.IsDirty():
			muts = append(muts, r.lineModel.UpdateMut(sale.ID(), line.ID(), map[string]interface{}{
				m_cart_item.ItemCount:    line.Count(),
				m_cart_item.ItemDiscountPerc: line.DiscountPerc(),
				m_cart_item.ItemDiscountNum:  line.DiscountNum().Float64(),
				m_cart_item.ItemTotal:        line.Total().Float64(),
			}))
		}
	}

	for _, lineID := range sale.RemovedLineIDs() {
		muts = append(muts, r.lineModel.DeleteMut(sale.ID(), lineID))
	}

	return muts
}

// DeleteMut creates a mutation deleting the sale row; interleaved cart lines
// cascade with it.
func (r *SaleRepo) DeleteMut(saleID string) *spanner.Mutation {
	return r.saleModel.DeleteMut(saleID)
}

// GetByID retrieves a sale with its cart lines, reconstructing the domain
// aggregate.
func (r *SaleRepo) GetByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	return r.getByID(ctx, r.client.Single(), saleID)
}

// GetByIDForUpdate retrieves a sale with its cart lines inside a read-write
// transaction.
func (r *SaleRepo) GetByIDForUpdate(ctx context.Context, txn *spanner.ReadWriteTransaction, saleID string) (*domain.Sale, error) {
	return r.getByID(ctx, txn, saleID)
}

func (r *SaleRepo) getByID(ctx context.Context, tx txReader, saleID string) (*domain.Sale, error) {
	row, err := tx.ReadRow(ctx, m_sale.TableName, spanner.Key{saleID}, []string{
		m_sale.SaleID,
		m_sale.SaleDate,
		m_sale.CustomerName,
		m_sale.TotalDiscountPerc,
		m_sale.TotalDiscountNum,
		m_sale.TotalAmount,
		m_sale.PaymentMethod,
		m_sale.PaymentInfo,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrSaleNotFound
		}
		return nil, wrapStore("failed to read sale", err)
	}

	var data m_sale.Data
	if err := row.Columns(
		&data.SaleID,
		&data.SaleDate,
		&data.CustomerName,
		&data.TotalDiscountPerc,
		&data.TotalDiscountNum,
		&data.TotalAmount,
		&data.PaymentMethod,
		&data.PaymentInfo,
	); err != nil {
		return nil, fmt.Errorf("failed to parse sale: %w", err)
	}

	lines, err := r.loadLines(ctx, tx, saleID)
	if err != nil {
		return nil, err
	}

	return domain.ReconstructSale(
		data.SaleID,
		data.SaleDate,
		data.CustomerName,
		data.TotalDiscountPerc,
		domain.NewMoneyFromFloat64(data.TotalDiscountNum),
		domain.NewMoneyFromFloat64(data.TotalAmount),
		domain.PaymentMethod(data.PaymentMethod),
		data.PaymentInfo,
		lines,
		r.clock,
	), nil
}

// loadLines reads the cart lines for a sale, oldest first so the on-screen
// order matches the order items were rung up.
func (r *SaleRepo) loadLines(ctx context.Context, tx txReader, saleID string) ([]*domain.CartLine, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(
			"SELECT %s, %s, %s, %s, %s, %s FROM %s WHERE %s = @saleID ORDER BY %s",
			m_cart_item.CartItemID,
			m_cart_item.ItemID,
			m_cart_item.ItemCount,
			m_cart_item.ItemDiscountPerc,
			m_cart_item.ItemDiscountNum,
			m_cart_item.ItemTotal,
			m_cart_item.TableName,
			m_cart_item.SaleID,
			m_cart_item.CreatedAt,
		),
		Params: map[string]interface{}{"saleID": saleID},
	}

	iter := tx.Query(ctx, stmt)
	defer iter.Stop()

	var lines []*domain.CartLine
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStore("failed to read cart lines", err)
		}

		var (
			cartItemID   string
			itemID       int64
			itemCount    int64
			discountPerc float64
			discountNum  float64
			totalPrice   float64
		)
		if err := row.Columns(&cartItemID, &itemID, &itemCount, &discountPerc, &discountNum, &totalPrice); err != nil {
			return nil, fmt.Errorf("failed to parse cart line: %w", err)
		}

		lines = append(lines, domain.ReconstructLine(
			cartItemID,
			itemID,
			itemCount,
			discountPerc,
			domain.NewMoneyFromFloat64(discountNum),
			domain.NewMoneyFromFloat64(totalPrice),
		))
	}

	return lines, nil
}

func (r *SaleRepo) lineInsertMut(saleID string, line *domain.CartLine) *spanner.Mutation {
	return r.lineModel.InsertMut(&m_cart_item.Data{
		SaleID:           saleID,
		CartItemID:       line.ID(),
		ItemID:           line.ItemID(),
		ItemCount:        line.Count(),
		ItemDiscountPerc: line.DiscountPerc(),
		ItemDiscountNum:  line.DiscountNum().Float64(),
		ItemTotal:        line.Total().Float64(),
	})
}
