package domain

import (
	"errors"
	"fmt"
)

// Tipos de erro do painel
var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrParse             = errors.New("parse error")
	ErrEmptySource       = errors.New("empty source")
	ErrConfiguration     = errors.New("configuration error")
)

// ParseError descreve um valor bruto que não pôde ser interpretado
type ParseError struct {
	Field string // Campo de origem (timestamp, amount, quantity)
	Value string // Valor bruto recebido
	Err   error  // Erro do parser, quando existir
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: valor inválido para %s %q: %v", ErrParse, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: valor inválido para %s %q", ErrParse, e.Field, e.Value)
}

// Is permite errors.Is(err, ErrParse)
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigurationError indica configuração ausente ou incompatível com a origem
type ConfigurationError struct {
	Key     string
	Details string
	Err     error
}

func NewConfigurationError(key, details string) *ConfigurationError {
	return &ConfigurationError{Key: key, Details: details}
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrConfiguration, e.Key)
	if e.Details != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Details)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
