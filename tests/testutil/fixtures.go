package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pos-service/internal/models/m_cart_item"
	"github.com/light-bringer/pos-service/internal/models/m_campaign"
	"github.com/light-bringer/pos-service/internal/models/m_item"
	"github.com/light-bringer/pos-service/internal/models/m_outbox"
	"github.com/light-bringer/pos-service/internal/models/m_sale"
)

// CreateTestItem creates a catalog item directly in the database.
func CreateTestItem(t *testing.T, client *spanner.Client, itemID int64, name string, price float64, stock int64) {
	t.Helper()

	ctx := context.Background()
	model := m_item.NewModel()
	data := &m_item.Data{
		ItemID:    itemID,
		ItemName:  name,
		ItemPrice: price,
		ItemStock: stock,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test item")
}

// CreateTestCampaign creates a campaign rule directly in the database and
// returns its id.
func CreateTestCampaign(t *testing.T, client *spanner.Client, itemID, minQuantity int64, kind string, value float64) string {
	t.Helper()

	ctx := context.Background()
	campID := uuid.New().String()

	model := m_campaign.NewModel()
	data := &m_campaign.Data{
		CampID:   campID,
		ItemID:   itemID,
		MinQuan:  minQuantity,
		DiscType: kind,
		DiscVal:  value,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test campaign")

	return campID
}

// CreateTestSale creates an open sale row directly in the database and
// returns its id.
func CreateTestSale(t *testing.T, client *spanner.Client, customerName string) string {
	t.Helper()

	ctx := context.Background()
	saleID := uuid.New().String()[:15]

	model := m_sale.NewModel()
	data := &m_sale.Data{
		SaleID:        saleID,
		SaleDate:      time.Now().UTC(),
		CustomerName:  customerName,
		PaymentMethod: "in-progress",
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test sale")

	return saleID
}

// CreateTestCartLine creates a cart line for an existing sale and returns its
// id. The item does not have to exist; that is how dangling lines are staged.
func CreateTestCartLine(t *testing.T, client *spanner.Client, saleID string, itemID, count int64, totalPrice float64) string {
	t.Helper()

	ctx := context.Background()
	lineID := uuid.New().String()

	model := m_cart_item.NewModel()
	data := &m_cart_item.Data{
		SaleID:     saleID,
		CartItemID: lineID,
		ItemID:     itemID,
		ItemCount:  count,
		ItemTotal:  totalPrice,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test cart line")

	return lineID
}

// GetItemByID retrieves an item row for verification.
func GetItemByID(t *testing.T, client *spanner.Client, itemID int64) *m_item.Data {
	t.Helper()

	ctx := context.Background()
	row, err := client.Single().ReadRow(ctx, m_item.TableName, spanner.Key{itemID}, []string{
		m_item.ItemID,
		m_item.ItemName,
		m_item.ItemPrice,
		m_item.ItemStock,
		m_item.CreatedAt,
		m_item.UpdatedAt,
	})
	require.NoError(t, err, "failed to get item by id")

	var data m_item.Data
	err = row.Columns(&data.ItemID, &data.ItemName, &data.ItemPrice, &data.ItemStock, &data.CreatedAt, &data.UpdatedAt)
	require.NoError(t, err, "failed to parse item data")

	return &data
}

// GetSaleByID retrieves a sale row for verification.
func GetSaleByID(t *testing.T, client *spanner.Client, saleID string) *m_sale.Data {
	t.Helper()

	ctx := context.Background()
	row, err := client.Single().ReadRow(ctx, m_sale.TableName, spanner.Key{saleID}, []string{
		m_sale.SaleID,
		m_sale.SaleDate,
		m_sale.CustomerName,
		m_sale.TotalDiscountPerc,
		m_sale.TotalDiscountNum,
		m_sale.TotalAmount,
		m_sale.PaymentMethod,
		m_sale.PaymentInfo,
		m_sale.CreatedAt,
		m_sale.UpdatedAt,
	})
	require.NoError(t, err, "failed to get sale by id")

	var data m_sale.Data
	err = row.Columns(
		&data.SaleID,
		&data.SaleDate,
		&data.CustomerName,
		&data.TotalDiscountPerc,
		&data.TotalDiscountNum,
		&data.TotalAmount,
		&data.PaymentMethod,
		&data.PaymentInfo,
		&data.CreatedAt,
		&data.UpdatedAt,
	)
	require.NoError(t, err, "failed to parse sale data")

	return &data
}

// AssertOutboxEvent verifies an outbox event exists with the given event type.
func AssertOutboxEvent(t *testing.T, client *spanner.Client, eventType string) {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL:    "SELECT event_id FROM outbox_events WHERE event_type = @eventType",
		Params: map[string]interface{}{"eventType": eventType},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "outbox event not found for type: %s", eventType)
	require.NotNil(t, row, "outbox event not found for type: %s", eventType)
}

// CreateTestOutboxEvent creates a test outbox event.
func CreateTestOutboxEvent(t *testing.T, client *spanner.Client, eventType string, aggregateID string) string {
	t.Helper()

	ctx := context.Background()
	eventID := uuid.New().String()

	model := m_outbox.NewModel()
	data := &m_outbox.Data{
		EventID:     eventID,
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     spanner.NullJSON{Value: `{"test": "data"}`, Valid: true},
		Status:      m_outbox.StatusPending,
		RetryCount:  0,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test outbox event")

	return eventID
}
