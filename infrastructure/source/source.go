// Package source escolhe e abre a origem de vendas e gastos configurada
package source

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/infrastructure/database"
	"github.com/vfg2006/sales-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard/infrastructure/database/sqlite"
	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/supabase"
	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/supabase/supabaseclient"
	"github.com/vfg2006/sales-dashboard/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

// Source é a origem aberta junto com a função que libera seus recursos
type Source struct {
	repository.TransactionSource
	conn database.Conn
}

func (s *Source) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// Open conecta à origem do driver configurado e valida o contrato de esquema.
// Erros de conexão são ErrSourceUnavailable; esquema incompatível é ConfigurationError.
func Open(ctx context.Context, cfg *config.Config) (*Source, error) {
	src, err := open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	checkCtx, cancel := context.WithTimeout(ctx, cfg.Dashboard.ReadTimeout)
	defer cancel()

	if err := src.CheckSchema(checkCtx); err != nil {
		src.Close()
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"source_driver":  cfg.Source.Driver,
		"sales_table":    cfg.Schema.SalesTable,
		"expenses_table": cfg.Schema.ExpensesTable,
	}).Info("Origem de dados validada")

	return src, nil
}

func open(ctx context.Context, cfg *config.Config) (*Source, error) {
	switch cfg.Source.Driver {
	case config.SourcePostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
		}
		return newSQLSource(conn, cfg.Schema, squirrel.Dollar)

	case config.SourceSQLite:
		conn, err := sqlite.NewConnection(ctx, cfg.SQLite)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
		}
		return newSQLSource(conn, cfg.Schema, squirrel.Question)

	case config.SourceSupabase:
		service, err := supabase.New(cfg, supabaseclient.NewClient(cfg.Supabase))
		if err != nil {
			return nil, err
		}
		return &Source{TransactionSource: service}, nil

	default:
		return nil, domain.NewConfigurationError("SOURCE_DRIVER", fmt.Sprintf("driver desconhecido %q", cfg.Source.Driver))
	}
}

func newSQLSource(conn database.Conn, schema config.Schema, placeholder squirrel.PlaceholderFormat) (*Source, error) {
	repo, err := repository.NewTransactionRepository(conn, schema, placeholder)
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &Source{TransactionSource: repo, conn: conn}, nil
}
