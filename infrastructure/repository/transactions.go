// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard/infrastructure/database"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

//go:generate mockgen -source=transactions.go -destination=mocks/transactions.go -package=mocks

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// TransactionReader lê as linhas brutas das tabelas de vendas e gastos
type TransactionReader interface {
	ListSales(ctx context.Context) ([]domain.SaleRow, error)
	ListExpenses(ctx context.Context) ([]domain.ExpenseRow, error)
}

// TransactionSource é uma origem que também valida o contrato de esquema
type TransactionSource interface {
	TransactionReader
	CheckSchema(ctx context.Context) error
}

type transactionRepository struct {
	conn        database.Queryer
	schema      config.Schema
	placeholder squirrel.PlaceholderFormat
}

// NewTransactionRepository cria o repositório SQL. Use squirrel.Dollar para
// Postgres e squirrel.Question para SQLite.
func NewTransactionRepository(
	conn database.Queryer,
	schema config.Schema,
	placeholder squirrel.PlaceholderFormat,
) (TransactionSource, error) {
	if err := ValidateSchema(schema); err != nil {
		return nil, err
	}

	return &transactionRepository{
		conn:        conn,
		schema:      schema,
		placeholder: placeholder,
	}, nil
}

// ValidateSchema garante que tabelas e colunas configuradas são identificadores simples
func ValidateSchema(schema config.Schema) error {
	identifiers := map[string]string{
		"SALES_TABLE":               schema.SalesTable,
		"SALES_TIMESTAMP_COLUMN":    schema.SalesTimestampColumn,
		"SALES_AMOUNT_COLUMN":       schema.SalesAmountColumn,
		"SALES_PRODUCT_COLUMN":      schema.SalesProductColumn,
		"EXPENSES_TABLE":            schema.ExpensesTable,
		"EXPENSES_TIMESTAMP_COLUMN": schema.ExpenseTimestampColumn,
		"EXPENSES_AMOUNT_COLUMN":    schema.ExpenseAmountColumn,
	}
	if schema.ExpenseCategoryColumn != "" {
		identifiers["EXPENSES_CATEGORY_COLUMN"] = schema.ExpenseCategoryColumn
	}
	if schema.ExpenseQuantityColumn != "" {
		identifiers["EXPENSES_QUANTITY_COLUMN"] = schema.ExpenseQuantityColumn
	}

	for key, value := range identifiers {
		if err := ValidateIdentifier(key, value); err != nil {
			return err
		}
	}

	return nil
}

// ValidateIdentifier rejeita nomes que não sejam identificadores simples
func ValidateIdentifier(key, value string) error {
	if !identifierPattern.MatchString(value) {
		return domain.NewConfigurationError(key, fmt.Sprintf("identificador inválido %q", value))
	}
	return nil
}

func (r *transactionRepository) salesColumns() []string {
	return []string{
		r.schema.SalesTimestampColumn,
		r.schema.SalesAmountColumn,
		r.schema.SalesProductColumn,
	}
}

// expenseColumns retorna as colunas lidas e as posições das opcionais (-1 se ausentes)
func (r *transactionRepository) expenseColumns() (columns []string, categoryPos int, quantityPos int) {
	columns = []string{r.schema.ExpenseTimestampColumn, r.schema.ExpenseAmountColumn}
	categoryPos, quantityPos = -1, -1

	if r.schema.ExpenseCategoryColumn != "" {
		categoryPos = len(columns)
		columns = append(columns, r.schema.ExpenseCategoryColumn)
	}
	if r.schema.ExpenseQuantityColumn != "" {
		quantityPos = len(columns)
		columns = append(columns, r.schema.ExpenseQuantityColumn)
	}

	return columns, categoryPos, quantityPos
}

// CheckSchema executa um SELECT sem linhas com as colunas configuradas
func (r *transactionRepository) CheckSchema(ctx context.Context) error {
	expenseColumns, _, _ := r.expenseColumns()

	checks := []struct {
		table   string
		columns []string
	}{
		{table: r.schema.SalesTable, columns: r.salesColumns()},
		{table: r.schema.ExpensesTable, columns: expenseColumns},
	}

	for _, check := range checks {
		query, args, err := squirrel.
			Select(check.columns...).
			From(check.table).
			Limit(0).
			PlaceholderFormat(r.placeholder).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir a query")
		}

		rows, err := r.conn.QueryContext(ctx, query, args...)
		if err != nil {
			return &domain.ConfigurationError{
				Key:     check.table,
				Details: "tabela ou colunas incompatíveis com o esquema configurado",
				Err:     err,
			}
		}
		rows.Close()
	}

	return nil
}

func (r *transactionRepository) ListSales(ctx context.Context) ([]domain.SaleRow, error) {
	query, args, err := squirrel.
		Select(r.salesColumns()...).
		From(r.schema.SalesTable).
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao consultar a tabela %s", r.schema.SalesTable)
	}
	defer rows.Close()

	sales := make([]domain.SaleRow, 0)
	for rows.Next() {
		var timestamp, amount, product sql.NullString
		if err := rows.Scan(&timestamp, &amount, &product); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear venda")
		}

		sales = append(sales, domain.SaleRow{
			Timestamp: timestamp.String,
			Amount:    amount.String,
			Product:   product.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sales, nil
}

func (r *transactionRepository) ListExpenses(ctx context.Context) ([]domain.ExpenseRow, error) {
	columns, categoryPos, quantityPos := r.expenseColumns()

	query, args, err := squirrel.
		Select(columns...).
		From(r.schema.ExpensesTable).
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao consultar a tabela %s", r.schema.ExpensesTable)
	}
	defer rows.Close()

	expenses := make([]domain.ExpenseRow, 0)
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear gasto")
		}

		expense := domain.ExpenseRow{
			Timestamp: values[0].String,
			Amount:    values[1].String,
		}
		if categoryPos >= 0 {
			expense.Category = values[categoryPos].String
		}
		if quantityPos >= 0 && values[quantityPos].Valid {
			quantity := values[quantityPos].String
			expense.Quantity = &quantity
		}

		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return expenses, nil
}
