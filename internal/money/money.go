package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Round2 rounds to two decimal places, half up. Invoice amounts are never
// negative, so decimal's half-away-from-zero rounding is half-up here.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// LineAmounts computes the net, VAT and gross amount of a single invoice
// line. The net and VAT amounts are each rounded to two decimals before
// the gross amount is formed, so aggregated invoice totals stay exact
// sums of the printed line values.
func LineAmounts(quantity, unitPrice, vatRate decimal.Decimal) (net, vat, total decimal.Decimal) {
	net = Round2(quantity.Mul(unitPrice))
	vat = Round2(net.Mul(vatRate).Div(hundred))
	total = net.Add(vat)
	return net, vat, total
}

// Convert applies an exchange rate to an amount and rounds the result to
// two decimals.
func Convert(amount, rate decimal.Decimal) decimal.Decimal {
	return Round2(amount.Mul(rate))
}
