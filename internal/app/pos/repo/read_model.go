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
	"github.com/light-bringer/pos-service/internal/models/m_campaign"
	"github.com/light-bringer/pos-service/internal/models/m_item"
	"github.com/light-bringer/pos-service/internal/models/m_sale"
	"github.com/light-bringer/pos-service/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// ListAvailableItems retrieves catalog items with stock on hand.
func (rm *ReadModelImpl) ListAvailableItems(ctx context.Context) ([]*contracts.ItemDTO, error) {
	stmt := itemSelect().
		Where(query.Gt(m_item.ItemStock, int64(0))).
		OrderBy(m_item.ItemID, query.Asc).
		Build()
	return rm.queryItems(ctx, stmt)
}

// SearchItems retrieves catalog items matching the filter. Each filter field
// is a substring match against the column's string form, so operators can find
// an item by a fragment of its barcode or price just like by name.
func (rm *ReadModelImpl) SearchItems(ctx context.Context, filter *contracts.ItemFilter) ([]*contracts.ItemDTO, error) {
	qb := itemSelect()
	if filter != nil {
		if filter.ID != "" {
			qb = qb.Where(query.Contains(m_item.ItemID, filter.ID))
		}
		if filter.Name != "" {
			qb = qb.Where(query.Contains(m_item.ItemName, filter.Name))
		}
		if filter.Price != "" {
			qb = qb.Where(query.Contains(m_item.ItemPrice, filter.Price))
		}
		if filter.Stock != "" {
			qb = qb.Where(query.Contains(m_item.ItemStock, filter.Stock))
		}
	}
	return rm.queryItems(ctx, qb.OrderBy(m_item.ItemID, query.Asc).Build())
}

// ListSales retrieves sale headers matching the filter, newest first.
func (rm *ReadModelImpl) ListSales(ctx context.Context, filter *contracts.SaleFilter) ([]*contracts.SaleDTO, error) {
	qb := saleSelect()
	if filter != nil {
		if filter.Date != "" {
			qb = qb.Where(query.TimestampContains(m_sale.SaleDate, filter.Date))
		}
		if filter.Customer != "" {
			qb = qb.Where(query.Contains(m_sale.CustomerName, filter.Customer))
		}
	}
	return rm.querySales(ctx, qb.OrderBy(m_sale.SaleDate, query.Desc).Build())
}

// ListOnHoldSales retrieves suspended sales awaiting resumption.
func (rm *ReadModelImpl) ListOnHoldSales(ctx context.Context) ([]*contracts.SaleDTO, error) {
	stmt := saleSelect().
		Where(query.Eq(m_sale.PaymentMethod, string(domain.PaymentInProgress))).
		OrderBy(m_sale.SaleDate, query.Desc).
		Build()
	return rm.querySales(ctx, stmt)
}

// GetSaleByID retrieves one sale header.
func (rm *ReadModelImpl) GetSaleByID(ctx context.Context, saleID string) (*contracts.SaleDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_sale.TableName, spanner.Key{saleID}, []string{
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
	return scanSaleDTO(row)
}

// GetCart retrieves the sale header with its lines joined against the
// catalog. Lines whose item has since been deleted come back with Dangling
// set and zero catalog fields; their stored totals still stand.
func (rm *ReadModelImpl) GetCart(ctx context.Context, saleID string) (*contracts.CartDTO, error) {
	sale, err := rm.GetSaleByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	stmt := spanner.Statement{
		SQL: fmt.Sprintf(
			"SELECT c.%s, c.%s, i.%s, i.%s, c.%s, c.%s, c.%s, c.%s "+
				"FROM %s c LEFT JOIN %s i ON c.%s = i.%s "+
				"WHERE c.%s = @saleID ORDER BY c.%s",
			m_cart_item.CartItemID,
			m_cart_item.ItemID,
			m_item.ItemName,
			m_item.ItemPrice,
			m_cart_item.ItemCount,
			m_cart_item.ItemDiscountPerc,
			m_cart_item.ItemDiscountNum,
			m_cart_item.ItemTotal,
			m_cart_item.TableName,
			m_item.TableName,
			m_cart_item.ItemID,
			m_item.ItemID,
			m_cart_item.SaleID,
			m_cart_item.CreatedAt,
		),
		Params: map[string]interface{}{"saleID": saleID},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	lines := make([]*contracts.CartLineDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStore("failed to read cart", err)
		}

		var (
			cartItemID   string
			itemID       int64
			itemName     spanner.NullString
			itemPrice    spanner.NullFloat64
			itemCount    int64
			discountPerc float64
			discountNum  float64
			totalPrice   float64
		)
		if err := row.Columns(&cartItemID, &itemID, &itemName, &itemPrice, &itemCount, &discountPerc, &discountNum, &totalPrice); err != nil {
			return nil, fmt.Errorf("failed to parse cart line: %w", err)
		}

		lines = append(lines, &contracts.CartLineDTO{
			CartItemID:   cartItemID,
			ItemID:       itemID,
			Name:         itemName.StringVal,
			UnitPrice:    itemPrice.Float64,
			Count:        itemCount,
			DiscountPerc: discountPerc,
			DiscountNum:  discountNum,
			Total:        totalPrice,
			Dangling:     !itemName.Valid,
		})
	}

	return &contracts.CartDTO{
		Sale:  sale,
		Lines: lines,
	}, nil
}

// ListCampaigns retrieves all campaign rules with the target item's name
// joined in. Rules whose item has since been removed come back with an empty
// name; they still apply nowhere but stay visible in the back office.
func (rm *ReadModelImpl) ListCampaigns(ctx context.Context) ([]*contracts.CampaignDTO, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(
			"SELECT c.%s, c.%s, i.%s, c.%s, c.%s, c.%s, c.%s "+
				"FROM %s c LEFT JOIN %s i ON c.%s = i.%s "+
				"ORDER BY c.%s, c.%s",
			m_campaign.CampID,
			m_campaign.ItemID,
			m_item.ItemName,
			m_campaign.MinQuan,
			m_campaign.DiscType,
			m_campaign.DiscVal,
			m_campaign.CreatedAt,
			m_campaign.TableName,
			m_item.TableName,
			m_campaign.ItemID,
			m_item.ItemID,
			m_campaign.ItemID,
			m_campaign.MinQuan,
		),
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	campaigns := make([]*contracts.CampaignDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStore("failed to iterate campaigns", err)
		}

		dto := &contracts.CampaignDTO{}
		var itemName spanner.NullString
		if err := row.Columns(&dto.CampID, &dto.ItemID, &itemName, &dto.MinQuantity, &dto.DiscountKind, &dto.DiscountValue, &dto.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to parse campaign: %w", err)
		}
		dto.ItemName = itemName.StringVal
		campaigns = append(campaigns, dto)
	}

	return campaigns, nil
}

func itemSelect() *query.Builder {
	return query.From(m_item.TableName).Select(
		m_item.ItemID,
		m_item.ItemName,
		m_item.ItemPrice,
		m_item.ItemStock,
		m_item.CreatedAt,
		m_item.UpdatedAt,
	)
}

func saleSelect() *query.Builder {
	return query.From(m_sale.TableName).Select(
		m_sale.SaleID,
		m_sale.SaleDate,
		m_sale.CustomerName,
		m_sale.TotalDiscountPerc,
		m_sale.TotalDiscountNum,
		m_sale.TotalAmount,
		m_sale.PaymentMethod,
		m_sale.PaymentInfo,
	)
}

func (rm *ReadModelImpl) queryItems(ctx context.Context, stmt spanner.Statement) ([]*contracts.ItemDTO, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	items := make([]*contracts.ItemDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStore("failed to iterate items", err)
		}

		dto := &contracts.ItemDTO{}
		if err := row.Columns(&dto.ItemID, &dto.Name, &dto.Price, &dto.Stock, &dto.CreatedAt, &dto.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to parse item: %w", err)
		}
		items = append(items, dto)
	}

	return items, nil
}

func (rm *ReadModelImpl) querySales(ctx context.Context, stmt spanner.Statement) ([]*contracts.SaleDTO, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	sales := make([]*contracts.SaleDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStore("failed to iterate sales", err)
		}

		dto, err := scanSaleDTO(row)
		if err != nil {
			return nil, err
		}
		sales = append(sales, dto)
	}

	return sales, nil
}

func scanSaleDTO(row *spanner.Row) (*contracts.SaleDTO, error) {
	dto := &contracts.SaleDTO{}
	if err := row.Columns(
		&dto.SaleID,
		&dto.SaleDate,
		&dto.CustomerName,
		&dto.TotalDiscountPerc,
		&dto.TotalDiscountNum,
		&dto.TotalAmount,
		&dto.PaymentMethod,
		&dto.PaymentInfo,
	); err != nil {
		return nil, fmt.Errorf("failed to parse sale: %w", err)
	}
	dto.OnHold = dto.PaymentMethod == string(domain.PaymentInProgress)
	return dto, nil
}
