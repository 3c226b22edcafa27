package domain

// ExpenseRow é uma linha da tabela de gastos exatamente como lida da origem.
// Quantity é nil quando a coluna não está configurada ou o valor é NULL.
type ExpenseRow struct {
	Timestamp string
	Amount    string
	Category  string
	Quantity  *string
}
