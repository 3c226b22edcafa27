package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

func sale(t *testing.T, raw string, amount float64, label string) NormalizedSale {
	t.Helper()
	instant, err := NormalizeTimestamp(raw, saoPaulo(t))
	require.NoError(t, err)
	return NormalizedSale{Instant: instant, Amount: amount, Items: ExpandItems(label, amount)}
}

func expense(t *testing.T, raw string, amount float64, category string, quantity *float64) NormalizedExpense {
	t.Helper()
	instant, err := NormalizeTimestamp(raw, saoPaulo(t))
	require.NoError(t, err)
	return NormalizedExpense{Instant: instant, Amount: amount, Category: category, Quantity: quantity}
}

func quantity(v float64) *float64 {
	return &v
}

func TestAggregate_CompositeSaleToday(t *testing.T) {
	now := time.Date(2026, 1, 15, 15, 0, 0, 0, saoPaulo(t))
	sales := []NormalizedSale{sale(t, "2026-01-15T12:00:00Z", 100, "Pizza, Soda")}

	today := Aggregate(sales, nil, Today, now)

	assert.Equal(t, domain.Aggregate{Revenue: 100, Profit: 100, ItemCount: 2}, today)

	ranking := RankProducts(sales, Today, now, 5)
	assert.Equal(t, []domain.ProductRanking{
		{Product: "PIZZA", Total: 50, Quantity: 1},
		{Product: "SODA", Total: 50, Quantity: 1},
	}, ranking)
}

func TestAggregate_Empty(t *testing.T) {
	now := time.Date(2026, 1, 15, 15, 0, 0, 0, saoPaulo(t))

	for _, bucket := range []Bucket{Today, CurrentMonth, CurrentYear, MonthOfYear(time.March)} {
		assert.Equal(t, domain.Aggregate{}, Aggregate(nil, nil, bucket, now))
	}
	assert.Empty(t, RankProducts(nil, CurrentYear, now, 5))
	assert.Empty(t, SummarizeCategories(nil, CurrentYear, now))
}

func TestAggregate_Buckets(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, saoPaulo(t))

	sales := []NormalizedSale{
		sale(t, "2026-03-10T12:00:00Z", 30, "A"),
		sale(t, "2026-03-01T12:00:00Z", 20, "B, C"),
		sale(t, "2026-01-20T12:00:00Z", 10.25, "A"),
		sale(t, "2025-12-31T12:00:00Z", 1000, "D"),
	}
	expenses := []NormalizedExpense{
		expense(t, "2026-03-10T10:00:00Z", 12.5, "INSUMOS", quantity(3)),
		expense(t, "2026-03-02T10:00:00Z", 7.5, "GÁS", nil),
		expense(t, "2026-02-02T10:00:00Z", 5, "GÁS", nil),
	}

	assert.Equal(t, domain.Aggregate{Revenue: 30, Cost: 12.5, Profit: 17.5, ItemCount: 1, ExpenseUnits: 3},
		Aggregate(sales, expenses, Today, now))
	assert.Equal(t, domain.Aggregate{Revenue: 50, Cost: 20, Profit: 30, ItemCount: 3, ExpenseUnits: 4},
		Aggregate(sales, expenses, CurrentMonth, now))

	year := Aggregate(sales, expenses, CurrentYear, now)
	assert.Equal(t, 60.25, year.Revenue)
	assert.Equal(t, 25.0, year.Cost)
	assert.Equal(t, 35.25, year.Profit)
	assert.Equal(t, 4, year.ItemCount)
	assert.Equal(t, 5.0, year.ExpenseUnits)

	assert.Equal(t, domain.Aggregate{Cost: 5, Profit: -5, ExpenseUnits: 1},
		Aggregate(sales, expenses, MonthOfYear(time.February), now))
	assert.Equal(t, domain.Aggregate{}, Aggregate(sales, expenses, MonthOfYear(time.December), now))
}

func TestAggregate_Idempotent(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, saoPaulo(t))
	sales := []NormalizedSale{
		sale(t, "2026-03-10T12:00:00Z", 33.33, "A, B, C"),
		sale(t, "2026-03-09T12:00:00Z", 10, "A"),
	}
	expenses := []NormalizedExpense{expense(t, "2026-03-10T10:00:00Z", 1.1, "X", nil)}

	first := Aggregate(sales, expenses, CurrentYear, now)
	second := Aggregate(sales, expenses, CurrentYear, now)
	assert.Equal(t, first, second)

	assert.Equal(t, RankProducts(sales, CurrentYear, now, 5), RankProducts(sales, CurrentYear, now, 5))
	assert.Equal(t, []domain.LineItem{
		{Name: "A", UnitAmount: 33.33 / 3},
		{Name: "B", UnitAmount: 33.33 / 3},
		{Name: "C", UnitAmount: 33.33 / 3},
	}, sales[0].Items)
}

func TestRankProducts(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, saoPaulo(t))
	sales := []NormalizedSale{
		sale(t, "2026-03-01T12:00:00Z", 10, "Suco"),
		sale(t, "2026-03-01T13:00:00Z", 30, "Pizza, Refri"),
		sale(t, "2026-03-02T13:00:00Z", 10, "Bolo"),
		sale(t, "2026-03-03T13:00:00Z", 40, "Pizza"),
		sale(t, "2026-03-04T13:00:00Z", 5, "Água"),
		sale(t, "2026-03-04T14:00:00Z", 1, "Bala"),
		sale(t, "2025-03-04T14:00:00Z", 500, "Vinho"),
	}

	ranking := RankProducts(sales, CurrentYear, now, 5)

	assert.Equal(t, []domain.ProductRanking{
		{Product: "PIZZA", Total: 55, Quantity: 2},
		{Product: "REFRI", Total: 15, Quantity: 1},
		{Product: "SUCO", Total: 10, Quantity: 1},
		{Product: "BOLO", Total: 10, Quantity: 1},
		{Product: "ÁGUA", Total: 5, Quantity: 1},
	}, ranking)

	assert.Len(t, RankProducts(sales, CurrentYear, now, 2), 2)
	assert.Len(t, RankProducts(sales, CurrentYear, now, 0), DefaultTopProducts)
}

func TestRankProducts_TieInCents(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, saoPaulo(t))
	instant := now.Add(-time.Hour)

	// 0.1 + 0.2 passa de 0.3 por epsilon; em centavos os dois produtos empatam
	sales := []NormalizedSale{
		{Instant: instant, Amount: 0.3, Items: []domain.LineItem{{Name: "CAFÉ", UnitAmount: 0.3}}},
		{Instant: instant, Amount: 0.1, Items: []domain.LineItem{{Name: "BALA", UnitAmount: 0.1}}},
		{Instant: instant, Amount: 0.2, Items: []domain.LineItem{{Name: "BALA", UnitAmount: 0.2}}},
	}

	ranking := RankProducts(sales, Today, now, 5)

	assert.Equal(t, []domain.ProductRanking{
		{Product: "CAFÉ", Total: 0.3, Quantity: 1},
		{Product: "BALA", Total: 0.3, Quantity: 2},
	}, ranking)
}

func TestSummarizeCategories(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, saoPaulo(t))
	expenses := []NormalizedExpense{
		expense(t, "2026-03-01T10:00:00Z", 10, "GÁS", nil),
		expense(t, "2026-03-02T10:00:00Z", 50, "INSUMOS", quantity(2.5)),
		expense(t, "2026-03-03T10:00:00Z", 10, "GÁS", nil),
		expense(t, "2025-03-03T10:00:00Z", 999, "ALUGUEL", nil),
	}

	assert.Equal(t, []domain.CategorySummary{
		{Category: "INSUMOS", Total: 50, Quantity: 2.5},
		{Category: "GÁS", Total: 20, Quantity: 2},
	}, SummarizeCategories(expenses, CurrentYear, now))
}
