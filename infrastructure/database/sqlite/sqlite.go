package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard/internal/config"
	_ "modernc.org/sqlite"
)

type Connection struct {
	*sql.DB
}

// NewConnection abre o arquivo SQLite usado em desenvolvimento local
func NewConnection(ctx context.Context, cfg config.SQLite) (*Connection, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "erro ao criar diretório do banco SQLite")
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir banco SQLite")
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "erro ao testar conexão com SQLite")
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
