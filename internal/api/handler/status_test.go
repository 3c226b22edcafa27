package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
)

type fakeProvider struct {
	result dashboard.StatusResult
	calls  int
}

func (f *fakeProvider) GetStatus(ctx context.Context) dashboard.StatusResult {
	f.calls++
	return f.result
}

func (f *fakeProvider) Refresh(ctx context.Context) error {
	return nil
}

func snapshotResult() dashboard.StatusResult {
	return dashboard.StatusResult{Snapshot: &domain.Snapshot{
		ID:    "abc123XYZ456",
		Today: domain.Aggregate{Revenue: 100, Cost: 30, Profit: 70, ItemCount: 2, ExpenseUnits: 1},
		Monthly: []domain.MonthlySummary{
			{ID: 1, Name: "Janeiro", Aggregate: domain.Aggregate{Revenue: 100}},
		},
		TopProducts:       []domain.ProductRanking{{Product: "PIZZA", Total: 50, Quantity: 1}},
		ExpenseCategories: []domain.CategorySummary{},
		UpdatedAt:         "15:00:00",
	}}
}

func TestGetStatus_Success(t *testing.T) {
	provider := &fakeProvider{result: snapshotResult()}

	rec := httptest.NewRecorder()
	GetStatus(provider).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `"abc123XYZ456"`, rec.Header().Get("ETag"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, map[string]any{
		"vendas": 100.0, "gastos": 30.0, "lucro": 70.0, "itens": 2.0, "quantidade_gastos": 1.0,
	}, body["diario"])
	assert.Equal(t, "15:00:00", body["atualizado_em"])
	assert.Equal(t, []any{map[string]any{
		"id": 1.0, "mes": "Janeiro", "vendas": 100.0, "gastos": 0.0, "lucro": 0.0, "itens": 0.0, "quantidade_gastos": 0.0,
	}}, body["filtros_mensais"])
	assert.Equal(t, []any{map[string]any{"produto": "PIZZA", "total": 50.0, "quantidade": 1.0}}, body["ranking_produtos"])
	assert.NotContains(t, body, "aviso")
	assert.NotContains(t, body, "erro")
	assert.NotContains(t, body, "ID")
}

func TestGetStatus_NotModified(t *testing.T) {
	tests := []struct {
		name        string
		ifNoneMatch string
		wantStatus  int
	}{
		{name: "Mesma versão", ifNoneMatch: `"abc123XYZ456"`, wantStatus: http.StatusNotModified},
		{name: "ETag fraca", ifNoneMatch: `W/"abc123XYZ456"`, wantStatus: http.StatusNotModified},
		{name: "Lista com a versão", ifNoneMatch: `"velha", "abc123XYZ456"`, wantStatus: http.StatusNotModified},
		{name: "Versão antiga", ifNoneMatch: `"velha"`, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{result: snapshotResult()}

			req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
			req.Header.Set("If-None-Match", tt.ifNoneMatch)
			rec := httptest.NewRecorder()
			GetStatus(provider).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, `"abc123XYZ456"`, rec.Header().Get("ETag"))
			if tt.wantStatus == http.StatusNotModified {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}

func TestGetStatus_SoftError(t *testing.T) {
	provider := &fakeProvider{result: dashboard.StatusResult{Failure: &dashboard.Failure{
		Code:    apiErrors.ErrSourceUnavailable,
		Message: "Não foi possível consultar a base de dados",
		Err:     errors.New("connection refused"),
	}}}

	rec := httptest.NewRecorder()
	GetStatus(provider).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("ETag"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{
		"erro":   "Não foi possível consultar a base de dados",
		"codigo": "SRC_001",
	}, body)
}

func TestGetStatus_EmptyResult(t *testing.T) {
	provider := &fakeProvider{}

	rec := httptest.NewRecorder()
	GetStatus(provider).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}
