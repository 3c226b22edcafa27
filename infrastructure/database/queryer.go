package database

import (
	"context"
	"database/sql"
)

// Queryer é o mínimo que os repositórios de leitura precisam de uma conexão
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Conn é uma conexão aberta com a origem de dados
type Conn interface {
	Queryer
	Ping(context.Context) error
	Close() error
}
