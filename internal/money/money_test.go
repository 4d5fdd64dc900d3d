package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRound2_HalfUp(t *testing.T) {
	assert.Equal(t, "11.39", Round2(dec("11.3943")).StringFixed(2))
	assert.Equal(t, "11.40", Round2(dec("11.395")).StringFixed(2))
	assert.Equal(t, "0.01", Round2(dec("0.005")).StringFixed(2))
	assert.Equal(t, "2.00", Round2(dec("2")).StringFixed(2))
}

func TestLineAmounts_RoundsBeforeAggregation(t *testing.T) {
	// 3 x 19.99 at 19% VAT: net 59.97, VAT 11.3943 -> 11.39, gross 71.36.
	net, vat, total := LineAmounts(dec("3"), dec("19.99"), dec("19"))

	assert.Equal(t, "59.97", net.StringFixed(2))
	assert.Equal(t, "11.39", vat.StringFixed(2))
	assert.Equal(t, "71.36", total.StringFixed(2))
}

func TestLineAmounts_FractionalQuantity(t *testing.T) {
	net, vat, total := LineAmounts(dec("2.5"), dec("100.555"), dec("19"))

	// 2.5 * 100.555 = 251.3875 -> 251.39; VAT 47.7641 -> 47.76.
	assert.Equal(t, "251.39", net.StringFixed(2))
	assert.Equal(t, "47.76", vat.StringFixed(2))
	assert.Equal(t, "299.15", total.StringFixed(2))
}

func TestLineAmounts_ZeroVAT(t *testing.T) {
	net, vat, total := LineAmounts(dec("4"), dec("25"), dec("0"))

	assert.Equal(t, "100.00", net.StringFixed(2))
	assert.True(t, vat.IsZero())
	assert.Equal(t, "100.00", total.StringFixed(2))
}

func TestConvert(t *testing.T) {
	assert.Equal(t, "499.90", Convert(dec("102.02"), dec("4.9")).StringFixed(2))
	assert.Equal(t, "71.36", Convert(dec("71.36"), dec("1")).StringFixed(2))
}
