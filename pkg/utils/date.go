package utils

import "time"

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthName retorna o nome do mês em português
func MonthName(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}

	return monthNames[month-1]
}

// FormatClock formata o horário local no padrão HH:MM:SS
func FormatClock(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}

	return t.Format(time.TimeOnly)
}
