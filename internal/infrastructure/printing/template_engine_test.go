package printing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyToFrench(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero", "0", "0 dirhams"},
		{"below one thousand", "742", "742 dirhams"},
		{"exact thousand", "1000", "1 mille dirhams"},
		{"thousands with remainder", "2500", "2 mille 500 dirhams"},
		{"upper edge of thousands wording", "9999", "9 mille 999 dirhams"},
		{"ten thousand exactly", "10000", "dix mille dirhams"},
		{"above ten thousand", "10001", "10001 dirhams"},
		{"large amount", "123456", "123456 dirhams"},
		{"fraction rounds down", "742.49", "742 dirhams"},
		{"fraction rounds up", "742.50", "743 dirhams"},
		{"fraction crossing the ten thousand boundary", "9999.60", "dix mille dirhams"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, moneyToFrench(d))
		})
	}
}

func TestFormatMoneyRaw(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "0.00"},
		{"1150", "1,150.00"},
		{"1234567.5", "1,234,567.50"},
		{"-42.1", "-42.10"},
	}

	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.amount)
		require.NoError(t, err)
		assert.Equal(t, tt.want, formatMoneyRaw(d), "amount %s", tt.amount)
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1,150.00 MAD", formatMoney(decimal.NewFromInt(1150), "MAD"))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 7, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "07/03/2025", formatDate(d))
	assert.Equal(t, "07/03/2025", formatDate(&d))
	assert.Equal(t, "N/A", formatDate((*time.Time)(nil)))
	assert.Equal(t, "N/A", formatDate(time.Time{}))
	assert.Equal(t, "N/A", formatDate("not a time"))
}

func TestDefaultFunc(t *testing.T) {
	assert.Equal(t, "N/A", defaultFunc("N/A", ""))
	assert.Equal(t, "N/A", defaultFunc("N/A", "   "))
	assert.Equal(t, "value", defaultFunc("N/A", "value"))
}

func TestTemplateEngine_Render(t *testing.T) {
	e := NewTemplateEngine()

	out, err := e.Render("test", `Total: {{formatMoney .Amount .Currency}}`, map[string]interface{}{
		"Amount":   decimal.NewFromInt(1150),
		"Currency": "MAD",
	})
	require.NoError(t, err)
	assert.Equal(t, "Total: 1,150.00 MAD", out)
}

func TestTemplateEngine_RenderParseError(t *testing.T) {
	e := NewTemplateEngine()

	_, err := e.Render("bad", `{{unknownFunc .X}}`, nil)
	assert.Error(t, err)
}
