package supabaseclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard/internal/config"
)

// Números chegam como json.Number para preservar o texto original do valor
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

type Client interface {
	Select(ctx context.Context, params SelectParams) ([]Row, error)
}

type SupabaseClient struct {
	httpClient *http.Client
	config     config.Supabase
}

// NewClient cria o cliente da API REST (PostgREST) do Supabase
func NewClient(cfg config.Supabase) Client {
	return &SupabaseClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
