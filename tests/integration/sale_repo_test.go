//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/app/pos/repo"
	"github.com/light-bringer/pos-service/internal/pkg/clock"
	"github.com/light-bringer/pos-service/tests/testutil"
)

func saleTestClock() *clock.MockClock {
	return clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
}

func TestSaleRepository_InsertAndGet(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	clk := saleTestClock()
	repository := repo.NewSaleRepo(client, clk)

	sale, err := domain.NewSale("1788256800-123", "Ada", clk)
	require.NoError(t, err)

	item := domain.ReconstructItem(100001, "Beans", domain.NewMoneyFromFloat64(24.90), 40, clk)
	require.NoError(t, sale.AddItem("line-1", item, 3, 0, nil))

	ctx := context.Background()
	_, err = client.Apply(ctx, repository.InsertMuts(sale))
	require.NoError(t, err)

	loaded, err := repository.GetByID(ctx, "1788256800-123")
	require.NoError(t, err)

	assert.Equal(t, "Ada", loaded.CustomerName())
	assert.Equal(t, domain.PaymentInProgress, loaded.PaymentMethod())
	assert.True(t, loaded.OnHold())
	require.Len(t, loaded.Lines(), 1)

	line := loaded.Lines()[0]
	assert.Equal(t, "line-1", line.ID())
	assert.Equal(t, int64(100001), line.ItemID())
	assert.Equal(t, int64(3), line.Count())
	assert.Equal(t, 74.70, line.Total().Float64())
	assert.False(t, line.IsNew())
	assert.False(t, line.IsDirty())
}

func TestSaleRepository_DuplicateIDFails(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	clk := saleTestClock()
	repository := repo.NewSaleRepo(client, clk)

	first, err := domain.NewSale("1788256800-123", "", clk)
	require.NoError(t, err)
	second, err := domain.NewSale("1788256800-123", "", clk)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = client.Apply(ctx, repository.InsertMuts(first))
	require.NoError(t, err)

	_, err = client.Apply(ctx, repository.InsertMuts(second))
	assert.Error(t, err, "colliding sale ids must surface AlreadyExists")
}

func TestSaleRepository_UpdateMuts(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	clk := saleTestClock()
	repository := repo.NewSaleRepo(client, clk)
	ctx := context.Background()

	seed := func(t *testing.T, id string) {
		sale, err := domain.NewSale(id, "", clk)
		require.NoError(t, err)
		item := domain.ReconstructItem(100001, "Beans", domain.NewMoneyFromFloat64(100), 40, clk)
		require.NoError(t, sale.AddItem("line-1", item, 2, 0, nil))
		_, err = client.Apply(ctx, repository.InsertMuts(sale))
		require.NoError(t, err)
	}

	t.Run("merged line is updated in place", func(t *testing.T) {
		seed(t, "sale-merge")

		sale, err := repository.GetByID(ctx, "sale-merge")
		require.NoError(t, err)
		item := domain.ReconstructItem(100001, "Beans", domain.NewMoneyFromFloat64(100), 40, clk)
		require.NoError(t, sale.AddItem("line-ignored", item, 3, 0, nil))

		_, err = client.Apply(ctx, repository.UpdateMuts(sale))
		require.NoError(t, err)

		loaded, err := repository.GetByID(ctx, "sale-merge")
		require.NoError(t, err)
		require.Len(t, loaded.Lines(), 1)
		assert.Equal(t, "line-1", loaded.Lines()[0].ID())
		assert.Equal(t, int64(5), loaded.Lines()[0].Count())
		assert.Equal(t, 500.0, loaded.Lines()[0].Total().Float64())
		testutil.AssertRowCount(t, client, "cart_items", 1)
	})

	t.Run("removed line is deleted", func(t *testing.T) {
		seed(t, "sale-remove")

		sale, err := repository.GetByID(ctx, "sale-remove")
		require.NoError(t, err)
		require.NoError(t, sale.RemoveLine("line-1"))

		_, err = client.Apply(ctx, repository.UpdateMuts(sale))
		require.NoError(t, err)

		loaded, err := repository.GetByID(ctx, "sale-remove")
		require.NoError(t, err)
		assert.Empty(t, loaded.Lines())
	})

	t.Run("finalize writes payment fields", func(t *testing.T) {
		seed(t, "sale-final")

		sale, err := repository.GetByID(ctx, "sale-final")
		require.NoError(t, err)
		require.NoError(t, sale.Finalize(domain.PaymentBank, "A. Lovelace"))

		_, err = client.Apply(ctx, repository.UpdateMuts(sale))
		require.NoError(t, err)

		data := testutil.GetSaleByID(t, client, "sale-final")
		assert.Equal(t, "bank-transfer", data.PaymentMethod)
		assert.Equal(t, "A. Lovelace", data.PaymentInfo)
	})
}

func TestSaleRepository_DeleteCascadesLines(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	clk := saleTestClock()
	repository := repo.NewSaleRepo(client, clk)
	ctx := context.Background()

	sale, err := domain.NewSale("sale-delete", "", clk)
	require.NoError(t, err)
	item := domain.ReconstructItem(100001, "Beans", domain.NewMoneyFromFloat64(100), 40, clk)
	require.NoError(t, sale.AddItem("line-1", item, 2, 0, nil))
	_, err = client.Apply(ctx, repository.InsertMuts(sale))
	require.NoError(t, err)

	_, err = client.Apply(ctx, []*spanner.Mutation{repository.DeleteMut("sale-delete")})
	require.NoError(t, err)

	testutil.AssertRowCount(t, client, "sales", 0)
	testutil.AssertRowCount(t, client, "cart_items", 0)

	_, err = repository.GetByID(ctx, "sale-delete")
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}
