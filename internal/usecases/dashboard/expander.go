package dashboard

import (
	"strings"

	"github.com/vfg2006/sales-dashboard/internal/domain"
)

// ExpandItems divide o rótulo de uma venda composta em itens individuais,
// rateando o valor igualmente entre eles
func ExpandItems(label string, amount float64) []domain.LineItem {
	names := make([]string, 0, 1)
	for _, part := range strings.Split(label, ",") {
		name := strings.ToUpper(strings.TrimSpace(part))
		if name != "" {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return []domain.LineItem{{Name: domain.UnspecifiedLabel, UnitAmount: amount}}
	}

	unit := amount / float64(len(names))
	items := make([]domain.LineItem, len(names))
	for i, name := range names {
		items[i] = domain.LineItem{Name: name, UnitAmount: unit}
	}

	return items
}
