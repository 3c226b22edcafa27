package domain

import "time"

// Snapshot é a resposta completa do painel, mantida em cache
type Snapshot struct {
	ID                string            `json:"-"`
	GeneratedAt       time.Time         `json:"-"`
	Today             Aggregate         `json:"diario"`
	Month             Aggregate         `json:"mensal"`
	Year              Aggregate         `json:"anual"`
	Monthly           []MonthlySummary  `json:"filtros_mensais"`
	TopProducts       []ProductRanking  `json:"ranking_produtos"`
	ExpenseCategories []CategorySummary `json:"gastos_por_categoria"`
	UpdatedAt         string            `json:"atualizado_em"`
	Notice            string            `json:"aviso,omitempty"`
	DroppedRecords    int               `json:"registros_descartados"`
}
