package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação
	ErrInvalidRequest   = "VAL_001" // Requisição inválida
	ErrNotFound         = "VAL_002" // Recurso não encontrado
	ErrMethodNotAllowed = "VAL_003" // Método HTTP não suportado

	// Erros de origem de dados
	ErrSourceUnavailable = "SRC_001" // Base de dados indisponível
	ErrConfiguration     = "CFG_001" // Configuração ausente ou incompatível

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrNotFound:          http.StatusNotFound,
	ErrMethodNotAllowed:  http.StatusMethodNotAllowed,
	ErrSourceUnavailable: http.StatusServiceUnavailable,
	ErrConfiguration:     http.StatusInternalServerError,
	ErrInternalServer:    http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// SoftError é o erro entregue no corpo de uma resposta 200, no formato que o
// painel já sabe exibir
type SoftError struct {
	Message string `json:"erro"`
	Code    string `json:"codigo,omitempty"`
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// WriteSoftError escreve {"erro": ..., "codigo": ...} mantendo o status 200
func WriteSoftError(w http.ResponseWriter, code string, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(SoftError{Message: message, Code: code})
}
