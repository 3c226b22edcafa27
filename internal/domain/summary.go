package domain

// Aggregate consolida vendas e gastos de um período
type Aggregate struct {
	Revenue      float64 `json:"vendas"`
	Cost         float64 `json:"gastos"`
	Profit       float64 `json:"lucro"`
	ItemCount    int     `json:"itens"`
	ExpenseUnits float64 `json:"quantidade_gastos"`
}

// MonthlySummary é o agregado de um mês do ano corrente
type MonthlySummary struct {
	ID   int    `json:"id"`
	Name string `json:"mes"`
	Aggregate
}

// ProductRanking representa um produto no ranking por receita
type ProductRanking struct {
	Product  string  `json:"produto"`
	Total    float64 `json:"total"`
	Quantity int     `json:"quantidade"`
}

// CategorySummary agrupa os gastos de uma categoria
type CategorySummary struct {
	Category string  `json:"categoria"`
	Total    float64 `json:"total"`
	Quantity float64 `json:"quantidade"`
}
