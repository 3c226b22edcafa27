package dashboard

import (
	"strings"
	"time"

	"github.com/vfg2006/sales-dashboard/internal/domain"
)

// DefaultTimezone é o fuso usado pelo painel quando nenhum outro é configurado
const DefaultTimezone = "America/Sao_Paulo"

// Formatos aceitos, com deslocamento primeiro. Valores sem deslocamento são
// interpretados por time.Parse como UTC, que é a regra única para horários ingênuos.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05-07",
	"2006-01-02 15:04:05-07",
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
}

// DefaultLocation carrega America/Sao_Paulo, caindo para UTC-3 fixo se a base
// de fusos não estiver disponível
func DefaultLocation() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}

// NormalizeTimestamp converte um horário bruto da origem para um instante no fuso loc
func NormalizeTimestamp(raw string, loc *time.Location) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, &domain.ParseError{Field: "timestamp", Value: raw}
	}

	if loc == nil {
		loc = time.UTC
	}

	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.In(loc), nil
		}
		lastErr = err
	}

	return time.Time{}, &domain.ParseError{Field: "timestamp", Value: raw, Err: lastErr}
}
