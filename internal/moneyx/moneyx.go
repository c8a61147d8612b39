// Package moneyx formats amounts in the fixed app locale (tr-TR, TRY).
package moneyx

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Turkish)

// Format renders amount as Turkish lira, e.g. 1500 -> "₺1.500,00".
func Format(amount float64) string {
	return printer.Sprintf("₺%.2f", amount)
}
