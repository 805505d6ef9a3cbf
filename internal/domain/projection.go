package domain

import (
	"github.com/shopspring/decimal"
)

// YearRecord represents one analysis year's costs and running balances.
// Records are produced in year order and never mutated after creation.
type YearRecord struct {
	Year int `json:"year"`

	// Renting side
	ApartmentCost decimal.Decimal `json:"apartment_cost"`

	// Owning side cost lines
	MortgagePayment   decimal.Decimal `json:"mortgage_payment"`
	EquityLoanPayment decimal.Decimal `json:"equity_loan_payment"`
	PropertyTax       decimal.Decimal `json:"property_tax"`
	HOA               decimal.Decimal `json:"hoa"`
	Insurance         decimal.Decimal `json:"insurance"`
	Heating           decimal.Decimal `json:"heating"`
	Maintenance       decimal.Decimal `json:"maintenance"`
	TaxSavings        decimal.Decimal `json:"tax_savings"`
	NetCondoCost      decimal.Decimal `json:"net_condo_cost"`

	// Balances at end of year
	PropertyValue       decimal.Decimal `json:"property_value"`
	Equity              decimal.Decimal `json:"equity"`
	RemainingMortgage   decimal.Decimal `json:"remaining_mortgage"`
	RemainingEquityLoan decimal.Decimal `json:"remaining_equity_loan"`

	// IRR of the purchase if the condo were sold at the end of this year,
	// as a percentage. Nil when not computable (no sign change in flows).
	IRR *decimal.Decimal `json:"irr,omitempty"`
}

// GrossCondoCost is the owning-side outlay before the tax savings offset.
func (yr *YearRecord) GrossCondoCost() decimal.Decimal {
	return yr.MortgagePayment.
		Add(yr.PropertyTax).
		Add(yr.HOA).
		Add(yr.Insurance).
		Add(yr.Heating).
		Add(yr.Maintenance).
		Add(yr.EquityLoanPayment)
}

// ScenarioSummary holds sale-time values and whole-horizon totals. When the
// scenario requests today's dollars, the totals, sale proceeds, and final
// property value are present values; the per-year records stay nominal.
type ScenarioSummary struct {
	FinalPropertyValue  decimal.Decimal `json:"final_property_value"`
	RealtorFees         decimal.Decimal `json:"realtor_fees"`
	CapitalGainsTax     decimal.Decimal `json:"capital_gains_tax"`
	RemainingMortgage   decimal.Decimal `json:"remaining_mortgage"`
	RemainingEquityLoan decimal.Decimal `json:"remaining_equity_loan"`
	NetSaleProceeds     decimal.Decimal `json:"net_sale_proceeds"`
	InitialExpenses     decimal.Decimal `json:"initial_expenses"`
	TotalCondoCost      decimal.Decimal `json:"total_condo_cost"`
	TotalApartmentCost  decimal.Decimal `json:"total_apartment_cost"`
	CostDifference      decimal.Decimal `json:"cost_difference"` // condo - apartment

	// Overall IRR of the purchase over the full horizon, as a percentage.
	// Nil when not computable.
	OverallIRR *decimal.Decimal `json:"overall_irr,omitempty"`
}

// SummaryLine is one row of the sale/total summary table.
type SummaryLine struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// AssumptionLine echoes one normalized input for display.
type AssumptionLine struct {
	Assumption string `json:"assumption"`
	Value      string `json:"value"`
}

// ScenarioResult is the full output of one projection run.
type ScenarioResult struct {
	Years       []YearRecord     `json:"yearly_data"`
	Summary     ScenarioSummary  `json:"summary"`
	SummaryRows []SummaryLine    `json:"summary_rows"`
	Assumptions []AssumptionLine `json:"assumptions"`
	Params      ScenarioParams   `json:"params"`
}

// FinalYear returns the last year record, or nil for an empty projection.
func (r *ScenarioResult) FinalYear() *YearRecord {
	if len(r.Years) == 0 {
		return nil
	}
	return &r.Years[len(r.Years)-1]
}

// ComparisonPoint is one horizon's totals in a multi-year comparison: the
// cumulative cost of each path if the condo were sold after Year years.
type ComparisonPoint struct {
	Year               int             `json:"year"`
	ApartmentCost      decimal.Decimal `json:"apartment_cost"`
	CondoCost          decimal.Decimal `json:"condo_cost"`
	FinalPropertyValue decimal.Decimal `json:"final_property_value"`
}
