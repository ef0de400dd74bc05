package printing

import (
	"bytes"
	"fmt"
	"html/template"
	"maps"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TemplateEngine renders HTML document templates with invoice data.
// It uses Go's html/template package with custom formatting functions.
type TemplateEngine struct {
	funcMap template.FuncMap
}

// NewTemplateEngine creates a new template engine with the default functions
func NewTemplateEngine() *TemplateEngine {
	e := &TemplateEngine{}

	e.funcMap = template.FuncMap{
		// Money formatting
		"formatMoney":    formatMoney,
		"formatMoneyRaw": formatMoneyRaw,
		"moneyToFrench":  moneyToFrench,

		// Date formatting
		"formatDate": formatDate,

		// String utilities
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"title": titleCase,
		"trim":  strings.TrimSpace,

		// Conditional
		"default": defaultFunc,

		// Safe HTML
		"safeURL": safeURL,
	}

	return e
}

// Render parses and executes a template against the given data
func (e *TemplateEngine) Render(name, content string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Funcs(e.funcMap).Parse(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %q: %w", name, err)
	}
	return buf.String(), nil
}

// GetFuncMap returns a copy of the template function map
func (e *TemplateEngine) GetFuncMap() template.FuncMap {
	funcMap := make(template.FuncMap, len(e.funcMap))
	maps.Copy(funcMap, e.funcMap)
	return funcMap
}

// formatMoney formats a decimal value with its currency code
// Example: 1234.5, "MAD" -> "1,234.50 MAD"
func formatMoney(v interface{}, currency string) string {
	return formatMoneyRaw(v) + " " + currency
}

// formatMoneyRaw formats a decimal value with thousand separators and two
// decimals. Example: 1234.5 -> "1,234.50"
func formatMoneyRaw(v interface{}) string {
	d := toDecimal(v)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	parts := strings.Split(d.StringFixed(2), ".")
	intPart := parts[0]
	decPart := "00"
	if len(parts) > 1 {
		decPart = parts[1]
	}

	var result strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(c)
	}

	return sign + result.String() + "." + decPart
}

// moneyToFrench writes an amount as the French words line that appears on
// invoices ("montant en lettres"). The amount is rounded half away from zero
// to the whole dirham before wording; decimals stay in the numeric cells.
//
// Examples: 742 -> "742 dirhams", 2500 -> "2 mille 500 dirhams",
// 10000 -> "dix mille dirhams".
func moneyToFrench(v interface{}) string {
	n := toDecimal(v).Round(0).IntPart()

	switch {
	case n == 10000:
		return "dix mille dirhams"
	case n < 1000:
		return fmt.Sprintf("%d dirhams", n)
	case n < 10000:
		thousands := n / 1000
		remainder := n % 1000
		if remainder == 0 {
			return fmt.Sprintf("%d mille dirhams", thousands)
		}
		return fmt.Sprintf("%d mille %d dirhams", thousands, remainder)
	default:
		return fmt.Sprintf("%d dirhams", n)
	}
}

// formatDate formats a time as dd/mm/yyyy; a nil or zero time yields "N/A"
func formatDate(v interface{}) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return "N/A"
		}
		return t.Format("02/01/2006")
	case *time.Time:
		if t == nil || t.IsZero() {
			return "N/A"
		}
		return t.Format("02/01/2006")
	default:
		return "N/A"
	}
}

var frenchTitleCaser = cases.Title(language.French)

func titleCase(s string) string {
	return frenchTitleCaser.String(s)
}

// defaultFunc returns the fallback when the value is empty
func defaultFunc(fallback, value string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func safeURL(s string) template.URL {
	return template.URL(s)
}

// toDecimal converts supported template values to decimal.Decimal
func toDecimal(v interface{}) decimal.Decimal {
	switch val := v.(type) {
	case decimal.Decimal:
		return val
	case *decimal.Decimal:
		if val == nil {
			return decimal.Zero
		}
		return *val
	case int:
		return decimal.NewFromInt(int64(val))
	case int64:
		return decimal.NewFromInt(val)
	case float64:
		return decimal.NewFromFloat(val)
	case string:
		d, err := decimal.NewFromString(val)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}
