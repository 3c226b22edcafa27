package dashboard

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

// DefaultTopProducts é o tamanho padrão do ranking de produtos
const DefaultTopProducts = 5

// Aggregate soma vendas e gastos pertencentes ao bucket. A receita usa o valor
// bruto de cada venda; a contagem de itens usa os itens rateados.
func Aggregate(sales []NormalizedSale, expenses []NormalizedExpense, bucket Bucket, now time.Time) domain.Aggregate {
	var (
		revenue   float64
		cost      float64
		itemCount int
		units     float64
	)

	for _, sale := range sales {
		if !Classify(sale.Instant, now).Contains(bucket) {
			continue
		}
		revenue += sale.Amount
		itemCount += len(sale.Items)
	}

	for _, expense := range expenses {
		if !Classify(expense.Instant, now).Contains(bucket) {
			continue
		}
		cost += expense.Amount
		units += expense.Units()
	}

	return domain.Aggregate{
		Revenue:      utils.RoundWithTwoDecimalPlace(revenue),
		Cost:         utils.RoundWithTwoDecimalPlace(cost),
		Profit:       utils.RoundWithTwoDecimalPlace(revenue - cost),
		ItemCount:    itemCount,
		ExpenseUnits: utils.RoundWithTwoDecimalPlace(units),
	}
}

// RankProducts retorna os n produtos de maior receita rateada no bucket.
// Empates mantêm a ordem em que o produto apareceu primeiro.
func RankProducts(sales []NormalizedSale, bucket Bucket, now time.Time, n int) []domain.ProductRanking {
	if n <= 0 {
		n = DefaultTopProducts
	}

	index := make(map[string]int)
	ranking := make([]domain.ProductRanking, 0)

	for _, sale := range sales {
		if !Classify(sale.Instant, now).Contains(bucket) {
			continue
		}
		for _, item := range sale.Items {
			pos, ok := index[item.Name]
			if !ok {
				pos = len(ranking)
				index[item.Name] = pos
				ranking = append(ranking, domain.ProductRanking{Product: item.Name})
			}
			ranking[pos].Total += item.UnitAmount
			ranking[pos].Quantity++
		}
	}

	// Compara em centavos para que somas rateadas como 3 x 10/3 empatem com 10
	for i := range ranking {
		ranking[i].Total = utils.RoundWithTwoDecimalPlace(ranking[i].Total)
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Total > ranking[j].Total
	})

	if len(ranking) > n {
		ranking = ranking[:n]
	}

	return ranking
}

// SummarizeCategories agrupa os gastos do bucket por categoria, do maior para o menor
func SummarizeCategories(expenses []NormalizedExpense, bucket Bucket, now time.Time) []domain.CategorySummary {
	index := make(map[string]int)
	categories := make([]domain.CategorySummary, 0)

	for _, expense := range expenses {
		if !Classify(expense.Instant, now).Contains(bucket) {
			continue
		}
		pos, ok := index[expense.Category]
		if !ok {
			pos = len(categories)
			index[expense.Category] = pos
			categories = append(categories, domain.CategorySummary{Category: expense.Category})
		}
		categories[pos].Total += expense.Amount
		categories[pos].Quantity += expense.Units()
	}

	for i := range categories {
		categories[i].Total = utils.RoundWithTwoDecimalPlace(categories[i].Total)
		categories[i].Quantity = utils.RoundWithTwoDecimalPlace(categories[i].Quantity)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Total > categories[j].Total
	})

	return categories
}
