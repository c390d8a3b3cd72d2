package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

func confirmPrompt(message string) bool {
	fmt.Printf("%s [y/N] ", message)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// money formats a pay amount with the configured currency symbol
func money(d decimal.Decimal) string {
	symbol := "$"
	if appInstance != nil && appInstance.Config != nil {
		symbol = appInstance.Config.Payroll.CurrencySymbol
	}
	return symbol + d.StringFixed(2)
}
