package supabase

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/supabase/supabaseclient"
	"github.com/vfg2006/sales-dashboard/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

// SupabaseService lê vendas e gastos pela API REST do Supabase
type SupabaseService struct {
	schema      config.Schema
	pageSize    int
	orderColumn string
	Client      supabaseclient.Client
}

func New(cfg *config.Config, client supabaseclient.Client) (repository.TransactionSource, error) {
	if err := repository.ValidateSchema(cfg.Schema); err != nil {
		return nil, err
	}

	orderColumn := cfg.Supabase.OrderColumn
	if orderColumn != "" {
		if err := repository.ValidateIdentifier("SUPABASE_ORDER_COLUMN", orderColumn); err != nil {
			return nil, err
		}
	}

	pageSize := cfg.Supabase.PageSize
	if pageSize <= 0 {
		pageSize = 1000
	}

	return &SupabaseService{
		schema:      cfg.Schema,
		pageSize:    pageSize,
		orderColumn: orderColumn,
		Client:      client,
	}, nil
}

func (s *SupabaseService) expenseColumns() []string {
	columns := []string{s.schema.ExpenseTimestampColumn, s.schema.ExpenseAmountColumn}
	if s.schema.ExpenseCategoryColumn != "" {
		columns = append(columns, s.schema.ExpenseCategoryColumn)
	}
	if s.schema.ExpenseQuantityColumn != "" {
		columns = append(columns, s.schema.ExpenseQuantityColumn)
	}
	return columns
}

// order ordena pelo timestamp com a coluna única como desempate, para que o
// deslocamento entre páginas não repita nem pule linhas
func (s *SupabaseService) order(timestampColumn string) []string {
	if s.orderColumn == "" || s.orderColumn == timestampColumn {
		return []string{timestampColumn}
	}
	return []string{timestampColumn, s.orderColumn}
}

// selectAll percorre as páginas até receber uma página vazia. O PostgREST pode
// devolver menos linhas que o limite pedido (db-max-rows), então o deslocamento
// avança pelo número de linhas recebidas.
func (s *SupabaseService) selectAll(ctx context.Context, table string, order, columns []string) ([]supabaseclient.Row, error) {
	rows := make([]supabaseclient.Row, 0)

	for offset := 0; ; {
		page, err := s.Client.Select(ctx, supabaseclient.SelectParams{
			Table:   table,
			Columns: columns,
			Order:   order,
			Limit:   s.pageSize,
			Offset:  offset,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao consultar a tabela %s", table)
		}

		if len(page) == 0 {
			return rows, nil
		}

		rows = append(rows, page...)
		offset += len(page)
	}
}

func (s *SupabaseService) ListSales(ctx context.Context) ([]domain.SaleRow, error) {
	rows, err := s.selectAll(ctx, s.schema.SalesTable, s.order(s.schema.SalesTimestampColumn), []string{
		s.schema.SalesTimestampColumn,
		s.schema.SalesAmountColumn,
		s.schema.SalesProductColumn,
	})
	if err != nil {
		return nil, err
	}

	sales := make([]domain.SaleRow, 0, len(rows))
	for _, row := range rows {
		timestamp, _ := row.String(s.schema.SalesTimestampColumn)
		amount, _ := row.String(s.schema.SalesAmountColumn)
		product, _ := row.String(s.schema.SalesProductColumn)

		sales = append(sales, domain.SaleRow{
			Timestamp: timestamp,
			Amount:    amount,
			Product:   product,
		})
	}

	return sales, nil
}

func (s *SupabaseService) ListExpenses(ctx context.Context) ([]domain.ExpenseRow, error) {
	rows, err := s.selectAll(ctx, s.schema.ExpensesTable, s.order(s.schema.ExpenseTimestampColumn), s.expenseColumns())
	if err != nil {
		return nil, err
	}

	expenses := make([]domain.ExpenseRow, 0, len(rows))
	for _, row := range rows {
		timestamp, _ := row.String(s.schema.ExpenseTimestampColumn)
		amount, _ := row.String(s.schema.ExpenseAmountColumn)

		expense := domain.ExpenseRow{
			Timestamp: timestamp,
			Amount:    amount,
		}
		if s.schema.ExpenseCategoryColumn != "" {
			expense.Category, _ = row.String(s.schema.ExpenseCategoryColumn)
		}
		if s.schema.ExpenseQuantityColumn != "" {
			if quantity, ok := row.String(s.schema.ExpenseQuantityColumn); ok {
				expense.Quantity = &quantity
			}
		}

		expenses = append(expenses, expense)
	}

	return expenses, nil
}

// CheckSchema pede zero linhas de cada tabela; o PostgREST rejeita colunas inexistentes
func (s *SupabaseService) CheckSchema(ctx context.Context) error {
	checks := []supabaseclient.SelectParams{
		{
			Table: s.schema.SalesTable,
			Columns: []string{
				s.schema.SalesTimestampColumn,
				s.schema.SalesAmountColumn,
				s.schema.SalesProductColumn,
			},
			Order: s.order(s.schema.SalesTimestampColumn),
		},
		{
			Table:   s.schema.ExpensesTable,
			Columns: s.expenseColumns(),
			Order:   s.order(s.schema.ExpenseTimestampColumn),
		},
	}

	for _, params := range checks {
		if _, err := s.Client.Select(ctx, params); err != nil {
			return &domain.ConfigurationError{
				Key:     params.Table,
				Details: "tabela ou colunas incompatíveis com o esquema configurado",
				Err:     err,
			}
		}
	}

	return nil
}
