package dashboard

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

// ParseAmount interpreta um valor monetário bruto. Aceita "12.50", "12,50",
// "R$ 1.234,56" e "1,234.56": o último separador é o decimal. Valores vazios
// ou inválidos retornam *domain.ParseError.
func ParseAmount(raw string) (float64, error) {
	value := strings.TrimSpace(raw)
	value = strings.TrimPrefix(value, "R$")
	value = strings.ReplaceAll(strings.TrimSpace(value), " ", "")
	if value == "" {
		return 0, &domain.ParseError{Field: "amount", Value: raw}
	}

	lastDot, lastComma := strings.LastIndex(value, "."), strings.LastIndex(value, ",")
	switch {
	case lastComma > lastDot:
		// Formato brasileiro: ponto separa milhares e vírgula separa decimais
		if strings.Count(value, ",") > 1 {
			return 0, &domain.ParseError{Field: "amount", Value: raw}
		}
		value = strings.ReplaceAll(value, ".", "")
		value = strings.Replace(value, ",", ".", 1)
	case lastDot > lastComma && lastComma >= 0:
		// Formato americano: vírgula separa milhares
		if strings.Count(value, ".") > 1 {
			return 0, &domain.ParseError{Field: "amount", Value: raw}
		}
		value = strings.ReplaceAll(value, ",", "")
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return 0, &domain.ParseError{Field: "amount", Value: raw, Err: err}
	}

	return amount.InexactFloat64(), nil
}

// CoerceAmount aplica a regra de coerção: valores inválidos contam como zero
func CoerceAmount(raw string) (float64, bool) {
	amount, err := ParseAmount(raw)
	if err != nil {
		return 0, false
	}
	return amount, true
}
