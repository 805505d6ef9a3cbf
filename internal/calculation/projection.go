package calculation

import (
	"github.com/garyo/housing-cost-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Heating and maintenance inflate at a fixed 2%/yr, independent of the
// scenario's appreciation and rent-increase inputs.
var costInflation = decimal.NewFromFloat(0.02)

var thousand = decimal.NewFromInt(1000)

// YearlyProjector walks one purchase scenario a year at a time, tracking each
// loan's remaining balance. Each loan is Active while year <= term and
// Matured afterward, at which point its balance is pinned to zero and never
// re-enters Active. All state is local to one projection run, so independent
// projections may run concurrently.
type YearlyProjector struct {
	params     *domain.ScenarioParams
	deductions *DeductionCalculator

	mortgagePrincipal decimal.Decimal
	equityLoanAmount  decimal.Decimal
	initialExpenses   decimal.Decimal

	remainingMortgage   decimal.Decimal
	remainingEquityLoan decimal.Decimal
	netCosts            []decimal.Decimal // one entry per completed year, oldest first
}

// NewYearlyProjector prepares a projector for one run. equityLoanAmount is
// zero unless the down payment is loan-funded; initialExpenses is the year-0
// cash outlay (down payment plus any capital gains tax on liquidated stock).
func NewYearlyProjector(params *domain.ScenarioParams, deductions *DeductionCalculator, mortgagePrincipal, equityLoanAmount, initialExpenses decimal.Decimal) *YearlyProjector {
	return &YearlyProjector{
		params:              params,
		deductions:          deductions,
		mortgagePrincipal:   mortgagePrincipal,
		equityLoanAmount:    equityLoanAmount,
		initialExpenses:     initialExpenses,
		remainingMortgage:   mortgagePrincipal,
		remainingEquityLoan: equityLoanAmount,
		netCosts:            make([]decimal.Decimal, 0, params.AnalysisYears),
	}
}

// ProjectYear computes one analysis year. Years must be requested in order
// starting at 1; the projector's balances advance as a side effect.
func (yp *YearlyProjector) ProjectYear(year int) domain.YearRecord {
	p := yp.params
	elapsed := decimal.NewFromInt(int64(year - 1))

	rentGrowth := one.Add(p.RentIncreaseRate.Div(hundred)).Pow(elapsed)
	apartmentCost := p.ApartmentRent.Mul(twelve).Mul(rentGrowth)

	costGrowth := one.Add(costInflation).Pow(elapsed)
	heating := p.HeatingCost.Mul(twelve).Mul(costGrowth)
	maintenance := p.MaintenanceCost.Mul(twelve).Mul(costGrowth)

	propertyValue := PropertyValueAtYear(p.CondoPrice, p.AppreciationRate, year)

	mortgage := AnnualLoanPayments(year, yp.mortgagePrincipal, p.MortgageRate, p.MortgageYears)
	if mortgage.LoanActive {
		yp.remainingMortgage = yp.remainingMortgage.Sub(mortgage.AnnualPrincipal)
	} else {
		yp.remainingMortgage = decimal.Zero
	}

	var equityLoan LoanPayments
	if p.DownPaymentSource == domain.DownPaymentLoan {
		equityLoan = AnnualLoanPayments(year, yp.equityLoanAmount, p.EquityLoanRate, p.EquityLoanYears)
		if equityLoan.LoanActive {
			yp.remainingEquityLoan = yp.remainingEquityLoan.Sub(equityLoan.AnnualPrincipal)
		} else {
			yp.remainingEquityLoan = decimal.Zero
		}
	}

	propertyTax := propertyValue.Mul(p.PropertyTaxRate.Div(thousand))
	hoa := propertyValue.Mul(p.HOARate.Div(hundred)).Mul(twelve)
	insurance := propertyValue.Mul(p.InsuranceRate.Div(hundred))

	// Equity loan interest is never deductible, so only the mortgage's
	// interest and payment feed the deduction inputs.
	taxSavings := yp.deductions.AnnualTaxSavings(DeductionInputs{
		MortgageInterest:   mortgage.AnnualInterest,
		MortgagePayment:    mortgage.AnnualPayment,
		PropertyTax:        propertyTax,
		OriginalLoanAmount: yp.mortgagePrincipal,
		RemainingPrincipal: yp.remainingMortgage,
		StateTaxRatePct:    p.StateTaxRate,
		CombinedRate:       p.CombinedMarginalRate(),
	})

	netCondoCost := mortgage.AnnualPayment.
		Add(propertyTax).
		Add(hoa).
		Add(insurance).
		Add(heating).
		Add(maintenance).
		Add(equityLoan.AnnualPayment).
		Sub(taxSavings)

	equity := decimal.Max(decimal.Zero,
		propertyValue.Sub(yp.remainingMortgage).Sub(yp.remainingEquityLoan))

	yp.netCosts = append(yp.netCosts, netCondoCost)

	return domain.YearRecord{
		Year:                year,
		ApartmentCost:       apartmentCost,
		MortgagePayment:     mortgage.AnnualPayment,
		EquityLoanPayment:   equityLoan.AnnualPayment,
		PropertyTax:         propertyTax,
		HOA:                 hoa,
		Insurance:           insurance,
		Heating:             heating,
		Maintenance:         maintenance,
		TaxSavings:          taxSavings,
		NetCondoCost:        netCondoCost,
		PropertyValue:       propertyValue,
		Equity:              equity,
		RemainingMortgage:   yp.remainingMortgage,
		RemainingEquityLoan: yp.remainingEquityLoan,
		IRR:                 yp.saleTodayIRR(propertyValue),
	}
}

// SaleProceeds returns the net cash from selling at the given property value
// with the projector's current loan balances: sale price less realtor fees,
// capital gains tax, and loan payoffs.
func (yp *YearlyProjector) SaleProceeds(propertyValue decimal.Decimal) decimal.Decimal {
	p := yp.params
	realtorFees := propertyValue.Mul(p.RealtorFeePct.Div(hundred))
	capGainsTax := yp.deductions.CapitalGainsAtSale(propertyValue, p.CondoPrice, p.CapitalGainsRate, p.IsPrimaryResidence)
	return propertyValue.Sub(realtorFees).Sub(capGainsTax).
		Sub(yp.remainingMortgage).Sub(yp.remainingEquityLoan)
}

// saleTodayIRR solves the return of buying at year 0 and selling at the end
// of the most recent projected year: the initial outlay, each completed
// year's net cost as an outflow, and the hypothetical sale-today proceeds
// added to the final flow. Nil when the series has no root.
func (yp *YearlyProjector) saleTodayIRR(propertyValue decimal.Decimal) *decimal.Decimal {
	flows := make([]decimal.Decimal, 0, len(yp.netCosts)+1)
	flows = append(flows, yp.initialExpenses.Neg())
	for _, net := range yp.netCosts {
		flows = append(flows, net.Neg())
	}
	last := len(flows) - 1
	flows[last] = flows[last].Add(yp.SaleProceeds(propertyValue))

	rate, ok := SolveIRR(flows)
	if !ok {
		return nil
	}
	return &rate
}
