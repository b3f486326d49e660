// Package currency renders minor-unit amounts for display.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

const poundSign = "£"

// enDashMinus marks money leaving the merchant. It is an en dash, not a
// hyphen, matching what the pages have always rendered.
const enDashMinus = "–"

// PoundsPence renders an amount in pence as GBP with two decimal places
// and thousands grouping, e.g. 1000 -> "£10.00", 123456 -> "£1,234.56".
func PoundsPence(pence int64) string {
	amount := decimal.NewFromInt(pence).Div(decimal.NewFromInt(100)).StringFixed(2)

	negative := strings.HasPrefix(amount, "-")
	amount = strings.TrimPrefix(amount, "-")

	parts := strings.SplitN(amount, ".", 2)
	formatted := poundSign + groupThousands(parts[0]) + "." + parts[1]
	if negative {
		formatted = enDashMinus + formatted
	}
	return formatted
}

// NegativePoundsPence renders an amount in pence as a GBP debit,
// e.g. 2000 -> "–£20.00".
func NegativePoundsPence(pence int64) string {
	return PoundsPence(-pence)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
