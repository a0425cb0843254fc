package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pos-service/internal/pkg/clock"
)

func newTestSale(t *testing.T, clk clock.Clock) *Sale {
	t.Helper()
	sale, err := NewSale("1788256800-123", "Walk-in", clk)
	require.NoError(t, err)
	sale.ClearEvents()
	return sale
}

func testItem(t *testing.T, id int64, price float64, stock int64) *Item {
	t.Helper()
	return ReconstructItem(id, "Test Item", NewMoneyFromFloat64(price), stock, testClock())
}

func TestNewSale(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	t.Run("opens in progress with zero totals", func(t *testing.T) {
		sale, err := NewSale("123-456", "Ada", clk)
		require.NoError(t, err)

		assert.Equal(t, PaymentInProgress, sale.PaymentMethod())
		assert.True(t, sale.OnHold())
		assert.True(t, sale.TotalAmount().IsZero())
		assert.True(t, sale.TotalDiscountNum().IsZero())
		assert.Equal(t, int64(0), sale.TotalDiscountPerc())
		assert.Equal(t, clk.Now(), sale.SaleDate())
		require.Len(t, sale.DomainEvents(), 1)
		assert.Equal(t, "sale.started", sale.DomainEvents()[0].EventType())
	})

	t.Run("empty customer name is allowed", func(t *testing.T) {
		_, err := NewSale("123-456", "", clk)
		assert.NoError(t, err)
	})

	t.Run("customer name too long", func(t *testing.T) {
		_, err := NewSale("123-456", strings.Repeat("x", MaxNameLen+1), clk)
		assert.ErrorIs(t, err, ErrInvalidCustomerName)
	})
}

func TestSale_AddItem(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	t.Run("new line at full price", func(t *testing.T) {
		sale := newTestSale(t, clk)

		err := sale.AddItem("line-1", testItem(t, 1, 100, 5), 3, 0, nil)
		require.NoError(t, err)

		require.Len(t, sale.Lines(), 1)
		line := sale.Lines()[0]
		assert.Equal(t, "line-1", line.ID())
		assert.Equal(t, int64(3), line.Count())
		assert.Equal(t, 300.0, line.Total().Float64())
		assert.True(t, line.IsNew())
		require.Len(t, sale.DomainEvents(), 1)
		assert.Equal(t, "sale.line.added", sale.DomainEvents()[0].EventType())
	})

	t.Run("manual percent discount folds into the line total", func(t *testing.T) {
		sale := newTestSale(t, clk)

		err := sale.AddItem("line-1", testItem(t, 1, 100, 5), 2, 10, nil)
		require.NoError(t, err)

		line := sale.Lines()[0]
		assert.Equal(t, 10.0, line.DiscountPerc())
		assert.Equal(t, 180.0, line.Total().Float64())
	})

	t.Run("manual amount discount comes off the unit price", func(t *testing.T) {
		sale := newTestSale(t, clk)

		err := sale.AddItem("line-1", testItem(t, 1, 100, 5), 2, 0, NewMoneyFromFloat64(5))
		require.NoError(t, err)

		// (100 - 5) * 2
		assert.Equal(t, 190.0, sale.Lines()[0].Total().Float64())
	})

	t.Run("same item merges into the existing line", func(t *testing.T) {
		sale := newTestSale(t, clk)
		item := testItem(t, 1, 100, 5)

		require.NoError(t, sale.AddItem("line-1", item, 3, 0, nil))
		require.NoError(t, sale.AddItem("line-2", item, 2, 0, nil))

		require.Len(t, sale.Lines(), 1)
		line := sale.Lines()[0]
		assert.Equal(t, "line-1", line.ID())
		assert.Equal(t, int64(5), line.Count())
		assert.Equal(t, 500.0, line.Total().Float64())
	})

	t.Run("merge extends the stored total at the current price", func(t *testing.T) {
		sale := newTestSale(t, clk)

		require.NoError(t, sale.AddItem("line-1", testItem(t, 1, 100, 5), 1, 0, nil))
		// Price changed between adds; the old portion of the total is kept.
		require.NoError(t, sale.AddItem("line-2", testItem(t, 1, 120, 5), 1, 0, nil))

		assert.Equal(t, 220.0, sale.Lines()[0].Total().Float64())
	})

	t.Run("invalid quantity", func(t *testing.T) {
		sale := newTestSale(t, clk)

		assert.ErrorIs(t, sale.AddItem("line-1", testItem(t, 1, 100, 5), 0, 0, nil), ErrInvalidQuantity)
		assert.ErrorIs(t, sale.AddItem("line-1", testItem(t, 1, 100, 5), -2, 0, nil), ErrInvalidQuantity)
	})

	t.Run("invalid manual discount", func(t *testing.T) {
		sale := newTestSale(t, clk)

		assert.ErrorIs(t, sale.AddItem("line-1", testItem(t, 1, 100, 5), 1, 101, nil), ErrInvalidDiscount)
		assert.ErrorIs(t, sale.AddItem("line-1", testItem(t, 1, 100, 5), 1, -1, nil), ErrInvalidDiscount)
		assert.ErrorIs(t, sale.AddItem("line-1", testItem(t, 1, 100, 5), 1, 0, NewMoneyFromFloat64(-1)), ErrInvalidDiscount)
	})
}

func TestSale_RemoveLine(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	t.Run("removes by stable line id", func(t *testing.T) {
		sale := newTestSale(t, clk)
		require.NoError(t, sale.AddItem("line-1", testItem(t, 1, 100, 5), 1, 0, nil))
		require.NoError(t, sale.AddItem("line-2", testItem(t, 2, 50, 5), 1, 0, nil))
		sale.ClearEvents()

		require.NoError(t, sale.RemoveLine("line-1"))

		require.Len(t, sale.Lines(), 1)
		assert.Equal(t, "line-2", sale.Lines()[0].ID())
		assert.Equal(t, []string{"line-1"}, sale.RemovedLineIDs())
		require.Len(t, sale.DomainEvents(), 1)
		assert.Equal(t, "sale.line.removed", sale.DomainEvents()[0].EventType())
	})

	t.Run("unknown line id", func(t *testing.T) {
		sale := newTestSale(t, clk)
		assert.ErrorIs(t, sale.RemoveLine("nope"), ErrLineNotFound)
	})
}

func TestSale_Reprice(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	calc := NewPricingCalculator()

	prices := func(p map[int64]float64) map[int64]*Money {
		out := make(map[int64]*Money, len(p))
		for id, v := range p {
			out[id] = NewMoneyFromFloat64(v)
		}
		return out
	}

	t.Run("applies campaign discounts and sums totals", func(t *testing.T) {
		sale := newTestSale(t, clk)
		require.NoError(t, sale.AddItem("line-1", testItem(t, 1, 100, 10), 3, 0, nil))
		sale.ClearEvents()

		rules := map[int64][]*CampaignRule{
			1: {ReconstructCampaignRule("c1", 1, 3, KindPercent, 10)},
		}
		sale.Reprice(prices(map[int64]float64{1: 100}), rules, calc)

		line := sale.Lines()[0]
		assert.Equal(t, 10.0, line.DiscountPerc())
		assert.Equal(t, 30.0, line.DiscountNum().Float64())
		assert.Equal(t, 270.0, line.Total().Float64())
		assert.Equal(t, 30.0, sale.TotalDiscountNum().Float64())
		assert.Equal(t, 270.0, sale.TotalAmount().Float64())
		assert.Equal(t, int64(0), sale.TotalDiscountPerc())
		require.Len(t, sale.DomainEvents(), 1)
		assert.Equal(t, "sale.repriced", sale.DomainEvents()[0].EventType())
	})

	t.Run("overwrites manual discounts when no rule qualifies", func(t *testing.T) {
		sale := newTestSale(t, clk)
		require.NoError(t, sale.AddItem("line-1", testItem(t, 1, 100, 10), 2, 10, nil))
		sale.ClearEvents()

		sale.Reprice(prices(map[int64]float64{1: 100}), nil, calc)

		line := sale.Lines()[0]
		assert.Equal(t, 0.0, line.DiscountPerc())
		assert.True(t, line.DiscountNum().IsZero())
		assert.Equal(t, 200.0, line.Total().Float64())
	})

	t.Run("is idempotent", func(t *testing.T) {
		sale := newTestSale(t, clk)
		require.NoError(t, sale.AddItem("line-1", testItem(t, 1, 100, 10), 3, 0, nil))

		rules := map[int64][]*CampaignRule{
			1: {ReconstructCampaignRule("c1", 1, 3, KindPercent, 10)},
		}
		sale.Reprice(prices(map[int64]float64{1: 100}), rules, calc)
		sale.ClearEvents()

		sale.Reprice(prices(map[int64]float64{1: 100}), rules, calc)

		assert.Empty(t, sale.DomainEvents())
		assert.Equal(t, 270.0, sale.TotalAmount().Float64())
	})

	t.Run("price edits apply retroactively", func(t *testing.T) {
		sale := newTestSale(t, clk)
		require.NoError(t, sale.AddItem("line-1", testItem(t, 1, 100, 10), 2, 0, nil))
		sale.ClearEvents()

		sale.Reprice(prices(map[int64]float64{1: 80}), nil, calc)

		assert.Equal(t, 160.0, sale.TotalAmount().Float64())
	})

	t.Run("dangling lines keep stored values but count toward totals", func(t *testing.T) {
		lines := []*CartLine{
			ReconstructLine("line-1", 1, 2, 0, ZeroMoney(), NewMoneyFromFloat64(200)),
			ReconstructLine("line-2", 99, 1, 0, ZeroMoney(), NewMoneyFromFloat64(42)),
		}
		sale := ReconstructSale("123-456", clk.Now(), "", 0, ZeroMoney(), ZeroMoney(), PaymentInProgress, "", lines, clk)

		// Item 99 is gone from the catalog; only item 1 gets repriced.
		sale.Reprice(prices(map[int64]float64{1: 100}), nil, calc)

		assert.Equal(t, 42.0, sale.Lines()[1].Total().Float64())
		assert.Equal(t, 242.0, sale.TotalAmount().Float64())
	})
}

func TestSale_HoldResume(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	sale := newTestSale(t, clk)

	clk.Advance(time.Minute)
	sale.Hold()

	assert.True(t, sale.OnHold())
	assert.Equal(t, clk.Now(), sale.SaleDate())
	assert.True(t, sale.Changes().Dirty(FieldSaleDate))

	clk.Advance(time.Minute)
	sale.Resume()

	assert.Equal(t, clk.Now(), sale.SaleDate())
	require.Len(t, sale.DomainEvents(), 2)
	assert.Equal(t, "sale.held", sale.DomainEvents()[0].EventType())
	assert.Equal(t, "sale.resumed", sale.DomainEvents()[1].EventType())
}

func TestSale_Finalize(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	t.Run("cash", func(t *testing.T) {
		sale := newTestSale(t, clk)

		require.NoError(t, sale.Finalize(PaymentCash, ""))

		assert.Equal(t, PaymentCash, sale.PaymentMethod())
		assert.False(t, sale.OnHold())
		assert.True(t, sale.Changes().Dirty(FieldPaymentMethod))
	})

	t.Run("bank transfer keeps the reference", func(t *testing.T) {
		sale := newTestSale(t, clk)

		require.NoError(t, sale.Finalize(PaymentBank, "A. Lovelace"))

		assert.Equal(t, "A. Lovelace", sale.PaymentInfo())
		assert.True(t, sale.Changes().Dirty(FieldPaymentInfo))
	})

	t.Run("in-progress is not a settlement", func(t *testing.T) {
		sale := newTestSale(t, clk)
		assert.ErrorIs(t, sale.Finalize(PaymentInProgress, ""), ErrInvalidPaymentMethod)
	})

	t.Run("unknown method", func(t *testing.T) {
		sale := newTestSale(t, clk)
		assert.ErrorIs(t, sale.Finalize("barter", ""), ErrInvalidPaymentMethod)
	})
}

func TestSale_Cancel(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	sale := newTestSale(t, clk)

	sale.Cancel()

	require.Len(t, sale.DomainEvents(), 1)
	assert.Equal(t, "sale.cancelled", sale.DomainEvents()[0].EventType())
}
