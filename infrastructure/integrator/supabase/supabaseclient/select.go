package supabaseclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SelectParams descreve uma leitura paginada de uma tabela
type SelectParams struct {
	Table   string
	Columns []string
	Order   []string // Colunas em ordem ascendente; a última deve ser única
	Limit   int
	Offset  int
}

// Row é uma linha retornada pelo PostgREST, indexada pelo nome da coluna
type Row map[string]any

// String retorna o valor da coluna como texto; NULL vira "" e ok=false
func (r Row) String(column string) (value string, ok bool) {
	raw, exists := r[column]
	if !exists || raw == nil {
		return "", false
	}

	switch v := raw.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return fmt.Sprint(v), true
	}
}

func (c *SupabaseClient) Select(ctx context.Context, params SelectParams) ([]Row, error) {
	var response []Row

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "/rest/v1", params.Table)

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("select", strings.Join(params.Columns, ","))
	if len(params.Order) > 0 {
		order := make([]string, 0, len(params.Order))
		for _, column := range params.Order {
			order = append(order, column+".asc")
		}
		query.Set("order", strings.Join(order, ","))
	}
	query.Set("limit", strconv.Itoa(params.Limit))
	if params.Offset > 0 {
		query.Set("offset", strconv.Itoa(params.Offset))
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("apikey", c.config.Key)
	req.Header.Set("Authorization", "Bearer "+c.config.Key)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("requisição para %s falhou com status %s: %s", params.Table, resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return response, nil
}
