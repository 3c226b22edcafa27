package dashboard

import (
	"time"

	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

// NoDataNotice é o aviso exibido quando nenhuma das origens possui registros
const NoDataNotice = "Nenhum dado encontrado"

// AssembleOptions parametriza a montagem do snapshot
type AssembleOptions struct {
	Location       *time.Location
	TopProducts    int
	DroppedRecords int // Linhas lidas e descartadas por timestamp inválido
}

// Assemble compõe o snapshot do painel a partir dos registros normalizados.
// Origens vazias resultam em agregados zerados; o mês corrente sempre aparece
// na lista mensal.
func Assemble(sales []NormalizedSale, expenses []NormalizedExpense, now time.Time, opts AssembleOptions) domain.Snapshot {
	loc := opts.Location
	if loc == nil {
		loc = DefaultLocation()
	}
	now = now.In(loc)

	snapshot := domain.Snapshot{
		GeneratedAt:       now,
		Today:             Aggregate(sales, expenses, Today, now),
		Month:             Aggregate(sales, expenses, CurrentMonth, now),
		Year:              Aggregate(sales, expenses, CurrentYear, now),
		Monthly:           monthlyBreakdown(sales, expenses, now),
		TopProducts:       RankProducts(sales, CurrentYear, now, opts.TopProducts),
		ExpenseCategories: SummarizeCategories(expenses, CurrentYear, now),
		UpdatedAt:         utils.FormatClock(now, loc),
		DroppedRecords:    opts.DroppedRecords,
	}

	// O aviso vale só para origens sem nenhuma linha; linhas descartadas contam como lidas
	if len(sales)+len(expenses)+opts.DroppedRecords == 0 {
		snapshot.Notice = NoDataNotice
	}

	return snapshot
}

// activeMonths marca os meses do ano corrente com movimento
func activeMonths(sales []NormalizedSale, expenses []NormalizedExpense, now time.Time) [13]bool {
	var active [13]bool

	for _, sale := range sales {
		if month := Classify(sale.Instant, now).MonthOfYear; month != 0 {
			active[month] = true
		}
	}
	for _, expense := range expenses {
		if month := Classify(expense.Instant, now).MonthOfYear; month != 0 {
			active[month] = true
		}
	}

	active[now.Month()] = true

	return active
}

func monthlyBreakdown(sales []NormalizedSale, expenses []NormalizedExpense, now time.Time) []domain.MonthlySummary {
	active := activeMonths(sales, expenses, now)

	summaries := make([]domain.MonthlySummary, 0, 12)
	for month := time.January; month <= time.December; month++ {
		if !active[month] {
			continue
		}
		summaries = append(summaries, domain.MonthlySummary{
			ID:        int(month),
			Name:      utils.MonthName(month),
			Aggregate: Aggregate(sales, expenses, MonthOfYear(month), now),
		})
	}

	return summaries
}
