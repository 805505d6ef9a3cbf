package calculation

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// FixedMonthlyPayment returns the constant monthly payment that fully
// amortizes principal at annualRatePct (percent) over years. A zero rate
// degrades to principal / (years*12) so the formula never divides by zero.
// Negative principal or years are the caller's responsibility to reject.
func FixedMonthlyPayment(principal, annualRatePct decimal.Decimal, years int) decimal.Decimal {
	numPayments := int64(years) * 12
	if annualRatePct.IsZero() {
		return principal.Div(decimal.NewFromInt(numPayments))
	}
	monthlyRate := annualRatePct.Div(hundred).Div(twelve)
	growth := one.Add(monthlyRate).Pow(decimal.NewFromInt(numPayments))
	return principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(one))
}

// PaymentSplit is a single payment's interest/principal breakdown.
type PaymentSplit struct {
	Interest      decimal.Decimal
	PrincipalPaid decimal.Decimal
}

// SplitPayment breaks payment number paymentIndex (1-based) of the loan's
// schedule into interest and principal. The balance entering the payment is
// recomputed by replaying every prior payment, an O(paymentIndex) walk rather
// than a closed form; at decade-scale horizons (a few hundred payments) the
// cost is negligible and the replay matches the schedule payment for payment.
func SplitPayment(principal, annualRatePct decimal.Decimal, years, paymentIndex int) PaymentSplit {
	payment := FixedMonthlyPayment(principal, annualRatePct, years)
	if annualRatePct.IsZero() {
		return PaymentSplit{Interest: decimal.Zero, PrincipalPaid: payment}
	}
	monthlyRate := annualRatePct.Div(hundred).Div(twelve)
	remaining := principal
	for i := 1; i < paymentIndex; i++ {
		interest := remaining.Mul(monthlyRate)
		remaining = remaining.Sub(payment.Sub(interest))
	}
	interest := remaining.Mul(monthlyRate)
	return PaymentSplit{Interest: interest, PrincipalPaid: payment.Sub(interest)}
}
