package calculation

import (
	"fmt"

	"github.com/garyo/housing-cost-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ScenarioEngine drives the rent-vs-buy projection: it derives the purchase
// financing from the parameters, runs the yearly projector across the
// horizon, and finalizes sale proceeds, totals, and the overall IRR. Engines
// hold no per-run state, so one engine may serve concurrent callers.
type ScenarioEngine struct {
	Deductions *DeductionCalculator
	Logger     Logger
}

// NewScenarioEngine creates an engine with current federal tax rules.
func NewScenarioEngine() *ScenarioEngine {
	return &ScenarioEngine{
		Deductions: NewDeductionCalculator(),
		Logger:     NopLogger{},
	}
}

// NewScenarioEngineWithConfig creates an engine with configurable tax rules.
func NewScenarioEngineWithConfig(rules domain.TaxRules) *ScenarioEngine {
	return &ScenarioEngine{
		Deductions: NewDeductionCalculatorWithConfig(rules),
		Logger:     NopLogger{},
	}
}

// SetLogger sets the engine logger. A nil logger restores the no-op default.
func (se *ScenarioEngine) SetLogger(l Logger) {
	if l == nil {
		se.Logger = NopLogger{}
		return
	}
	se.Logger = l
}

// Project runs the full year-by-year comparison for one scenario.
func (se *ScenarioEngine) Project(params *domain.ScenarioParams) (*domain.ScenarioResult, error) {
	if !params.DownPaymentSource.Valid() {
		return nil, fmt.Errorf("unknown down payment source %q", params.DownPaymentSource)
	}
	if params.AnalysisYears <= 0 {
		return nil, fmt.Errorf("analysis years must be positive, got %d", params.AnalysisYears)
	}

	downPayment := params.DownPayment()
	mortgagePrincipal := params.MortgagePrincipal()

	// Initial cash position depends on how the down payment is funded:
	// cash pays it outright, selling stock pays it plus capital gains tax on
	// the gain portion, and an equity loan defers it entirely.
	var capGainsOnDownPayment, equityLoanAmount, initialExpenses decimal.Decimal
	switch params.DownPaymentSource {
	case domain.DownPaymentCash:
		initialExpenses = downPayment
	case domain.DownPaymentStocks:
		capGainsOnDownPayment = downPayment.
			Mul(params.StockGainPct.Div(hundred)).
			Mul(params.CapitalGainsRate.Div(hundred))
		initialExpenses = downPayment.Add(capGainsOnDownPayment)
	case domain.DownPaymentLoan:
		equityLoanAmount = downPayment
	}

	se.Logger.Debugf("projecting %d years: price=%s down=%s (%s) financed=%s",
		params.AnalysisYears, params.CondoPrice.StringFixed(0), downPayment.StringFixed(0),
		params.DownPaymentSource, mortgagePrincipal.StringFixed(0))

	projector := NewYearlyProjector(params, se.Deductions, mortgagePrincipal, equityLoanAmount, initialExpenses)
	years := make([]domain.YearRecord, 0, params.AnalysisYears)
	for year := 1; year <= params.AnalysisYears; year++ {
		years = append(years, projector.ProjectYear(year))
	}
	final := years[len(years)-1]

	// Sale math at the end of the horizon.
	finalPropertyValue := PropertyValueAtYear(params.CondoPrice, params.AppreciationRate, params.AnalysisYears)
	realtorFees := finalPropertyValue.Mul(params.RealtorFeePct.Div(hundred))
	capGainsTax := se.Deductions.CapitalGainsAtSale(finalPropertyValue, params.CondoPrice, params.CapitalGainsRate, params.IsPrimaryResidence)
	netSaleProceeds := finalPropertyValue.Sub(realtorFees).Sub(capGainsTax).
		Sub(final.RemainingMortgage).Sub(final.RemainingEquityLoan)

	// The IRR is always solved on nominal flows; discounting the flows would
	// double-count the time value the rate itself expresses.
	flows := make([]decimal.Decimal, 0, len(years)+1)
	flows = append(flows, initialExpenses.Neg())
	for _, yr := range years {
		flows = append(flows, yr.NetCondoCost.Neg())
	}
	flows[len(flows)-1] = flows[len(flows)-1].Add(netSaleProceeds)
	var overallIRR *decimal.Decimal
	if rate, ok := SolveIRR(flows); ok {
		overallIRR = &rate
	} else {
		se.Logger.Debugf("overall IRR not computable for %d-year horizon", params.AnalysisYears)
	}

	// Totals. When today's dollars are requested each component is
	// discounted at its own year before summing; pre-summed totals are never
	// discounted directly. Initial expenses occur at year 0 and pass through.
	discounting := params.DiscountingEnabled()
	sumNetCosts := decimal.Zero
	totalApartmentCost := decimal.Zero
	for _, yr := range years {
		net, apartment := yr.NetCondoCost, yr.ApartmentCost
		if discounting {
			net = PresentValue(net, yr.Year, params.DiscountRate)
			apartment = PresentValue(apartment, yr.Year, params.DiscountRate)
		}
		sumNetCosts = sumNetCosts.Add(net)
		totalApartmentCost = totalApartmentCost.Add(apartment)
	}
	saleProceedsOut := netSaleProceeds
	finalValueOut := finalPropertyValue
	if discounting {
		saleProceedsOut = PresentValue(netSaleProceeds, params.AnalysisYears, params.DiscountRate)
		finalValueOut = PresentValue(finalPropertyValue, params.AnalysisYears, params.DiscountRate)
	}
	totalCondoCost := sumNetCosts.Sub(saleProceedsOut).Add(initialExpenses)

	summary := domain.ScenarioSummary{
		FinalPropertyValue:  finalValueOut,
		RealtorFees:         realtorFees,
		CapitalGainsTax:     capGainsTax,
		RemainingMortgage:   final.RemainingMortgage,
		RemainingEquityLoan: final.RemainingEquityLoan,
		NetSaleProceeds:     saleProceedsOut,
		InitialExpenses:     initialExpenses,
		TotalCondoCost:      totalCondoCost,
		TotalApartmentCost:  totalApartmentCost,
		CostDifference:      totalCondoCost.Sub(totalApartmentCost),
		OverallIRR:          overallIRR,
	}

	return &domain.ScenarioResult{
		Years:       years,
		Summary:     summary,
		SummaryRows: buildSummaryRows(summary),
		Assumptions: buildAssumptions(params, downPayment, capGainsOnDownPayment),
		Params:      *params,
	}, nil
}

// CompareAcrossYears runs an independent projection for every horizon from 1
// to maxYears and returns each horizon's totals. The re-run per horizon is
// deliberate: sale proceeds, capital gains, and IRR all depend on the
// terminal year, so an incremental ledger would compute them incorrectly for
// the shorter horizons.
func (se *ScenarioEngine) CompareAcrossYears(maxYears int, params *domain.ScenarioParams) ([]domain.ComparisonPoint, error) {
	if maxYears <= 0 {
		return nil, fmt.Errorf("max years must be positive, got %d", maxYears)
	}

	points := make([]domain.ComparisonPoint, 0, maxYears)
	for horizon := 1; horizon <= maxYears; horizon++ {
		horizonParams := *params
		horizonParams.AnalysisYears = horizon
		result, err := se.Project(&horizonParams)
		if err != nil {
			return nil, fmt.Errorf("projection for %d-year horizon failed: %w", horizon, err)
		}
		points = append(points, domain.ComparisonPoint{
			Year:               horizon,
			ApartmentCost:      result.Summary.TotalApartmentCost,
			CondoCost:          result.Summary.TotalCondoCost,
			FinalPropertyValue: result.Summary.FinalPropertyValue,
		})
	}
	return points, nil
}

func buildSummaryRows(s domain.ScenarioSummary) []domain.SummaryLine {
	return []domain.SummaryLine{
		{Description: "Final Property Value", Amount: s.FinalPropertyValue},
		{Description: "Realtor Fees", Amount: s.RealtorFees},
		{Description: "Capital Gains Tax", Amount: s.CapitalGainsTax},
		{Description: "Remaining Mortgage", Amount: s.RemainingMortgage},
		{Description: "Remaining Equity Loan", Amount: s.RemainingEquityLoan},
		{Description: "Net Sale Proceeds", Amount: s.NetSaleProceeds},
		{Description: "Total Condo Costs", Amount: s.TotalCondoCost},
		{Description: "Total Apartment Costs", Amount: s.TotalApartmentCost},
		{Description: "Difference (Condo - Apartment)", Amount: s.CostDifference},
	}
}

func buildAssumptions(p *domain.ScenarioParams, downPayment, capGainsOnDownPayment decimal.Decimal) []domain.AssumptionLine {
	lines := []domain.AssumptionLine{
		{Assumption: "Condo Price", Value: dollars(p.CondoPrice)},
		{Assumption: fmt.Sprintf("Down Payment (%s%%)", p.DownPaymentPct.String()), Value: dollars(downPayment)},
		{Assumption: "Down Payment Source", Value: p.DownPaymentSource.Describe()},
	}
	if p.DownPaymentSource == domain.DownPaymentStocks {
		lines = append(lines, domain.AssumptionLine{Assumption: "Cap Gains Tax on Down Payment", Value: dollars(capGainsOnDownPayment)})
	}
	if p.DownPaymentSource == domain.DownPaymentLoan {
		lines = append(lines,
			domain.AssumptionLine{Assumption: "Equity Loan Rate", Value: percent(p.EquityLoanRate)},
			domain.AssumptionLine{Assumption: "Equity Loan Term", Value: fmt.Sprintf("%d years", p.EquityLoanYears)},
		)
	}
	lines = append(lines,
		domain.AssumptionLine{Assumption: "Mortgage Rate", Value: percent(p.MortgageRate)},
		domain.AssumptionLine{Assumption: "Mortgage Term", Value: fmt.Sprintf("%d years", p.MortgageYears)},
		domain.AssumptionLine{Assumption: "Property Tax Rate", Value: fmt.Sprintf("%s per $1000/yr", p.PropertyTaxRate.String())},
		domain.AssumptionLine{Assumption: "HOA Fee", Value: fmt.Sprintf("%s%%/mo of property value", p.HOARate.String())},
		domain.AssumptionLine{Assumption: "Insurance", Value: fmt.Sprintf("%s%%/yr of property value", p.InsuranceRate.String())},
		domain.AssumptionLine{Assumption: "Heating", Value: fmt.Sprintf("%s/mo", dollars(p.HeatingCost))},
		domain.AssumptionLine{Assumption: "Maintenance", Value: fmt.Sprintf("%s/mo", dollars(p.MaintenanceCost))},
		domain.AssumptionLine{Assumption: "Rent Increase", Value: percent(p.RentIncreaseRate) + "/yr"},
		domain.AssumptionLine{Assumption: "Federal Tax Rate", Value: percent(p.FederalTaxRate)},
		domain.AssumptionLine{Assumption: "State Tax Rate", Value: percent(p.StateTaxRate)},
		domain.AssumptionLine{Assumption: "Appreciation", Value: percent(p.AppreciationRate) + "/yr"},
		domain.AssumptionLine{Assumption: "Realtor Fee", Value: percent(p.RealtorFeePct)},
		domain.AssumptionLine{Assumption: "Capital Gains Tax", Value: percent(p.CapitalGainsRate)},
	)
	if p.IsPrimaryResidence {
		lines = append(lines, domain.AssumptionLine{Assumption: "Primary Residence", Value: "Yes ($250k gains exclusion)"})
	}
	if p.DiscountingEnabled() {
		lines = append(lines, domain.AssumptionLine{Assumption: "Today's Dollars", Value: fmt.Sprintf("Yes, discounted @ %s", percent(p.DiscountRate))})
	}
	return lines
}

func dollars(d decimal.Decimal) string { return "$" + d.StringFixed(0) }
func percent(d decimal.Decimal) string { return d.String() + "%" }
