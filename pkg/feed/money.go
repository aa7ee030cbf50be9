package feed

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney renders a monetary amount as "79.99 USD": minor units
// scaled by 100 with exactly two decimal places, a dot separator and
// no grouping. Returns "" for a nil amount.
func FormatMoney(m *money.Money) string {
	if m == nil {
		return ""
	}
	amount := decimal.New(m.Amount(), -2)
	return amount.StringFixed(2) + " " + m.Currency().Code
}
