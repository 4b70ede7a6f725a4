package rental

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencyPlaces = 2

var (
	hundred        = decimal.NewFromInt(100)
	currencyFormat = message.NewPrinter(language.AmericanEnglish)
)

// roundCurrency rounds to cents, halves away from zero
func roundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(currencyPlaces)
}

func preDiscountCharge(dailyCharge decimal.Decimal, chargeableDays int) decimal.Decimal {
	return roundCurrency(dailyCharge.Mul(decimal.NewFromInt(int64(chargeableDays))))
}

func discountAmount(preDiscount decimal.Decimal, discountPercent int) decimal.Decimal {
	rate := decimal.NewFromInt(int64(discountPercent)).Div(hundred)
	return roundCurrency(preDiscount.Mul(rate))
}

// finalCharge subtracts two already-rounded amounts, so no rounding is needed
func finalCharge(preDiscount, discount decimal.Decimal) decimal.Decimal {
	return preDiscount.Sub(discount)
}

// FormatCurrency renders an amount as dollars with thousands separators,
// e.g. $1,234.50
func FormatCurrency(d decimal.Decimal) string {
	return currencyFormat.Sprintf("$%.2f", roundCurrency(d).InexactFloat64())
}
