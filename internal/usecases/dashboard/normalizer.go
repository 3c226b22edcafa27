package dashboard

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

// NormalizedSale é uma venda com instante no fuso do painel e itens rateados
type NormalizedSale struct {
	Instant time.Time
	Amount  float64
	Items   []domain.LineItem
}

// NormalizedExpense é um gasto com instante no fuso do painel.
// Quantity é nil quando a origem não informa quantidade.
type NormalizedExpense struct {
	Instant  time.Time
	Amount   float64
	Category string
	Quantity *float64
}

// Units retorna a quantidade informada ou 1 (uma linha) quando ausente
func (e NormalizedExpense) Units() float64 {
	if e.Quantity == nil {
		return 1
	}
	return *e.Quantity
}

// Normalizer converte linhas brutas em registros normalizados. Registros com
// horário inválido são descartados e contados; valores inválidos viram zero.
type Normalizer struct {
	Location *time.Location
}

func NewNormalizer(loc *time.Location) Normalizer {
	if loc == nil {
		loc = DefaultLocation()
	}
	return Normalizer{Location: loc}
}

// Sales normaliza e expande as vendas
func (n Normalizer) Sales(rows []domain.SaleRow) (sales []NormalizedSale, dropped int) {
	sales = make([]NormalizedSale, 0, len(rows))

	for _, row := range rows {
		instant, err := NormalizeTimestamp(row.Timestamp, n.Location)
		if err != nil {
			logrus.WithError(err).Debug("Venda descartada por horário inválido")
			dropped++
			continue
		}

		amount, ok := CoerceAmount(row.Amount)
		if !ok {
			logrus.WithField("valor", row.Amount).Debug("Valor de venda inválido, considerado zero")
		}

		sales = append(sales, NormalizedSale{
			Instant: instant,
			Amount:  amount,
			Items:   ExpandItems(row.Product, amount),
		})
	}

	return sales, dropped
}

// Expenses normaliza os gastos
func (n Normalizer) Expenses(rows []domain.ExpenseRow) (expenses []NormalizedExpense, dropped int) {
	expenses = make([]NormalizedExpense, 0, len(rows))

	for _, row := range rows {
		instant, err := NormalizeTimestamp(row.Timestamp, n.Location)
		if err != nil {
			logrus.WithError(err).Debug("Gasto descartado por horário inválido")
			dropped++
			continue
		}

		amount, ok := CoerceAmount(row.Amount)
		if !ok {
			logrus.WithField("valor", row.Amount).Debug("Valor de gasto inválido, considerado zero")
		}

		category := strings.ToUpper(strings.TrimSpace(row.Category))
		if category == "" {
			category = domain.UnspecifiedLabel
		}

		expense := NormalizedExpense{
			Instant:  instant,
			Amount:   amount,
			Category: category,
		}

		if row.Quantity != nil && strings.TrimSpace(*row.Quantity) != "" {
			quantity, err := ParseAmount(*row.Quantity)
			if err != nil {
				logrus.WithError(err).Debug("Quantidade de gasto inválida, contando a linha uma vez")
			} else {
				expense.Quantity = &quantity
			}
		}

		expenses = append(expenses, expense)
	}

	return expenses, dropped
}
