package calculation

import (
	"github.com/garyo/housing-cost-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX MODEL ASSUMPTIONS:
//
// 1. SALT cap: deductible state/local taxes limited to $10,000 per year.
//    State income tax is estimated as 4x (annual mortgage payment + property
//    tax) times the state rate. That proxy is deliberately rough and is
//    preserved as-is from earlier versions of this model; it is not a real
//    income figure.
//
// 2. Mortgage interest deduction: fully deductible up to a $750,000 loan.
//    Above the cap, interest is pro-rated by the fraction of the CURRENT
//    remaining balance under the cap. True acquisition-debt tracking would
//    need separate sub-balances; this approximation is intentional.
//
// 3. Home equity loan interest used to fund a down payment is never
//    deductible.
//
// 4. Capital gains at sale: gains over the purchase price taxed at the
//    long-term rate, less a flat $250,000 exclusion for a primary residence.

// DeductionCalculator applies SALT and mortgage-interest caps and computes
// sale-time capital gains tax.
type DeductionCalculator struct {
	Rules domain.TaxRules
}

// NewDeductionCalculator creates a calculator with current federal rules.
func NewDeductionCalculator() *DeductionCalculator {
	return &DeductionCalculator{Rules: domain.DefaultTaxRules()}
}

// NewDeductionCalculatorWithConfig creates a calculator with configurable
// caps, e.g. to model the 2018 caps expiring.
func NewDeductionCalculatorWithConfig(rules domain.TaxRules) *DeductionCalculator {
	if rules.IsZero() {
		rules = domain.DefaultTaxRules()
	}
	return &DeductionCalculator{Rules: rules}
}

// DeductionInputs captures one year's figures for the deduction computation.
type DeductionInputs struct {
	MortgageInterest   decimal.Decimal // interest paid this year
	MortgagePayment    decimal.Decimal // full annual payment (for the income proxy)
	PropertyTax        decimal.Decimal
	OriginalLoanAmount decimal.Decimal
	RemainingPrincipal decimal.Decimal
	StateTaxRatePct    decimal.Decimal
	CombinedRate       decimal.Decimal // (federal + state) / 100
}

// AnnualTaxSavings returns the year's tax reduction from itemized deductions
// under the configured caps.
func (dc *DeductionCalculator) AnnualTaxSavings(in DeductionInputs) decimal.Decimal {
	estimatedStateIncomeTax := in.MortgagePayment.Add(in.PropertyTax).
		Mul(dc.Rules.StateIncomeProxyFactor).
		Mul(in.StateTaxRatePct.Div(hundred))

	deductibleStateLocal := decimal.Min(estimatedStateIncomeTax.Add(in.PropertyTax), dc.Rules.SALTCap)

	deductibleInterest := in.MortgageInterest
	if in.OriginalLoanAmount.GreaterThan(dc.Rules.MortgageInterestCap) && in.RemainingPrincipal.GreaterThan(decimal.Zero) {
		overCapFraction := decimal.Max(decimal.Zero,
			in.RemainingPrincipal.Sub(dc.Rules.MortgageInterestCap).Div(in.RemainingPrincipal))
		deductibleInterest = in.MortgageInterest.Mul(one.Sub(overCapFraction))
	}

	return deductibleInterest.Add(deductibleStateLocal).Mul(in.CombinedRate)
}

// CapitalGainsAtSale returns the capital gains tax due on selling at
// saleValue. Losses are never negative gains, and the primary-residence
// exclusion never drives the taxable amount below zero.
func (dc *DeductionCalculator) CapitalGainsAtSale(saleValue, purchasePrice, capitalGainsRatePct decimal.Decimal, isPrimaryResidence bool) decimal.Decimal {
	gains := decimal.Max(decimal.Zero, saleValue.Sub(purchasePrice))
	if isPrimaryResidence {
		gains = decimal.Max(decimal.Zero, gains.Sub(dc.Rules.PrimaryResidenceExclusion))
	}
	return gains.Mul(capitalGainsRatePct.Div(hundred))
}
