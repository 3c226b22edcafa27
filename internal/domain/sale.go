package domain

// UnspecifiedLabel nomeia itens e categorias sem rótulo informado
const UnspecifiedLabel = "UNSPECIFIED"

// SaleRow é uma linha da tabela de vendas exatamente como lida da origem
type SaleRow struct {
	Timestamp string
	Amount    string
	Product   string
}

// LineItem é um item individual de uma venda composta ("Pizza, Refri")
type LineItem struct {
	Name       string
	UnitAmount float64
}
