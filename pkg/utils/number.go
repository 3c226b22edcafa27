package utils

import "github.com/shopspring/decimal"

// RoundWithTwoDecimalPlace arredonda para centavos (meio para longe do zero)
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}
