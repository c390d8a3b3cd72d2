package tui

import (
	"strconv"
	"strings"

	"github.com/andy/piecework/internal/app"
	"github.com/andy/piecework/internal/domain"
	"github.com/shopspring/decimal"
)

// formatMoney formats money as "$X,XXX.XX" with comma separators
func formatMoney(symbol string, amount decimal.Decimal) string {
	negative := amount.IsNegative()
	s := amount.Abs().StringFixed(2)

	// Split at decimal point
	dotPos := len(s) - 3
	prefix := symbol
	if negative {
		prefix = "-" + symbol
	}
	return prefix + groupThousands(s[:dotPos]) + s[dotPos:]
}

// formatCount formats a whole number with comma separators
func formatCount(n int64) string {
	if n < 0 {
		return "-" + groupThousands(strconv.FormatInt(-n, 10))
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func groupThousands(digits string) string {
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// truncateStr truncates a string to the specified length with ellipsis
func truncateStr(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// currencySymbol returns the configured symbol for pay amounts
func currencySymbol(a *app.App) string {
	if a == nil || a.Config == nil || a.Config.Payroll.CurrencySymbol == "" {
		return "$"
	}
	return a.Config.Payroll.CurrencySymbol
}

// renderTotals draws the running payroll totals box shared by the entry and summary screens
func renderTotals(s *domain.Summary, symbol string) string {
	rows := []struct{ label, value string }{
		{"Workers:", formatCount(int64(s.TotalWorkers))},
		{"Messages:", formatCount(s.TotalMessages)},
		{"Total pay:", formatMoney(symbol, s.TotalPay)},
		{"Average pay:", formatMoney(symbol, s.AveragePay)},
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(labelStyle.Render(r.label) + " " + valueStyle.Render(r.value))
	}
	return boxStyle.Render(b.String())
}
