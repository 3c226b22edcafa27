package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard/infrastructure/database/sqlite"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

func testConfig(driver string) *config.Config {
	return &config.Config{
		Source: config.Source{Driver: driver},
		Schema: config.Schema{
			SalesTable:             "vendas",
			SalesTimestampColumn:   "created_at",
			SalesAmountColumn:      "valor",
			SalesProductColumn:     "produto",
			ExpensesTable:          "gastos",
			ExpenseTimestampColumn: "created_at",
			ExpenseAmountColumn:    "valor",
		},
		Dashboard: config.Dashboard{ReadTimeout: 5 * time.Second},
	}
}

func createSQLiteTables(t *testing.T, path string, statements ...string) {
	t.Helper()

	conn, err := sqlite.NewConnection(context.Background(), config.SQLite{Path: path})
	require.NoError(t, err)
	defer conn.Close()

	for _, stmt := range statements {
		_, err := conn.ExecContext(context.Background(), stmt)
		require.NoError(t, err)
	}
}

func TestOpen_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "painel.db")
	createSQLiteTables(t, path,
		`CREATE TABLE vendas (created_at TEXT, valor TEXT, produto TEXT)`,
		`CREATE TABLE gastos (created_at TEXT, valor TEXT)`,
		`INSERT INTO vendas VALUES ('2026-01-15T12:00:00Z', '100', 'Pizza')`,
	)

	cfg := testConfig(config.SourceSQLite)
	cfg.SQLite.Path = path

	src, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer src.Close()

	sales, err := src.ListSales(context.Background())
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}

func TestOpen_SchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "painel.db")
	createSQLiteTables(t, path,
		`CREATE TABLE vendas (created_at TEXT, valor TEXT, descricao TEXT)`,
		`CREATE TABLE gastos (created_at TEXT, valor TEXT)`,
	)

	cfg := testConfig(config.SourceSQLite)
	cfg.SQLite.Path = path

	_, err := Open(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
}

func TestOpen_Supabase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	cfg := testConfig(config.SourceSupabase)
	cfg.Supabase = config.Supabase{URL: server.URL, Key: "chave", PageSize: 100}

	src, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	assert.NoError(t, src.Close())
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), testConfig("mysql"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
}
