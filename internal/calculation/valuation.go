package calculation

import "github.com/shopspring/decimal"

// PropertyValueAtYear compounds basePrice at appreciationRatePct (percent per
// year) over year elapsed years. Year 0 is the purchase price. Works
// uniformly for zero, positive, or negative appreciation.
func PropertyValueAtYear(basePrice, appreciationRatePct decimal.Decimal, year int) decimal.Decimal {
	factor := one.Add(appreciationRatePct.Div(hundred)).Pow(decimal.NewFromInt(int64(year)))
	return basePrice.Mul(factor)
}

// PresentValue discounts a year-N amount back to today at discountRatePct
// (percent per year). Year 0 amounts and a zero rate pass through unchanged.
func PresentValue(amount decimal.Decimal, year int, discountRatePct decimal.Decimal) decimal.Decimal {
	if year == 0 || discountRatePct.IsZero() {
		return amount
	}
	factor := one.Add(discountRatePct.Div(hundred)).Pow(decimal.NewFromInt(int64(year)))
	return amount.Div(factor)
}
