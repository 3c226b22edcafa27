package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 10.13, RoundWithTwoDecimalPlace(10.125000001))
	assert.Equal(t, 33.33, RoundWithTwoDecimalPlace(100.0/3))
	assert.Equal(t, -4.2, RoundWithTwoDecimalPlace(-4.2))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Janeiro", MonthName(time.January))
	assert.Equal(t, "Março", MonthName(time.March))
	assert.Equal(t, "Dezembro", MonthName(time.December))
	assert.Equal(t, "", MonthName(time.Month(13)))
}

func TestFormatClock(t *testing.T) {
	loc := time.FixedZone("-03", -3*60*60)
	instant := time.Date(2026, 1, 15, 18, 4, 5, 0, time.UTC)

	assert.Equal(t, "15:04:05", FormatClock(instant, loc))
	assert.Equal(t, "18:04:05", FormatClock(instant, nil))
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, 12)
	assert.NotEqual(t, first, second)
}

func TestPrettyJson(t *testing.T) {
	out, err := PrettyJson(map[string]int{"itens": 2})
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"itens\": 2\n}", out)

	out, err = PrettyJson([]byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"a\": 1\n}", out)
}
