package calculation

import "github.com/shopspring/decimal"

// LoanPayments aggregates one loan's activity for a single analysis year.
type LoanPayments struct {
	AnnualInterest  decimal.Decimal `json:"annual_interest"`
	AnnualPrincipal decimal.Decimal `json:"annual_principal"`
	AnnualPayment   decimal.Decimal `json:"annual_payment"`
	LoanActive      bool            `json:"loan_active"`
}

// AnnualLoanPayments totals the interest, principal, and payment for analysis
// year (1-based) of a fixed-rate loan. A zero principal short-circuits to an
// inactive all-zero result regardless of year, rate, or term; a year past the
// term is inactive and all-zero. For an active zero-rate loan the whole
// payment is principal.
func AnnualLoanPayments(year int, principal, annualRatePct decimal.Decimal, termYears int) LoanPayments {
	if principal.IsZero() {
		return LoanPayments{}
	}
	if year > termYears {
		return LoanPayments{}
	}

	annualPayment := FixedMonthlyPayment(principal, annualRatePct, termYears).Mul(twelve)
	lp := LoanPayments{AnnualPayment: annualPayment, LoanActive: true}

	if annualRatePct.IsZero() {
		lp.AnnualPrincipal = annualPayment
		return lp
	}

	startPayment := (year-1)*12 + 1
	endPayment := year * 12
	for n := startPayment; n <= endPayment; n++ {
		split := SplitPayment(principal, annualRatePct, termYears, n)
		lp.AnnualInterest = lp.AnnualInterest.Add(split.Interest)
		lp.AnnualPrincipal = lp.AnnualPrincipal.Add(split.PrincipalPaid)
	}
	return lp
}
