package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DownPaymentSource selects how the buyer funds the down payment.
type DownPaymentSource string

const (
	// DownPaymentCash pays the full down payment from cash on hand.
	DownPaymentCash DownPaymentSource = "cash"
	// DownPaymentStocks sells appreciated stock, triggering capital gains tax
	// on the gain portion at purchase time.
	DownPaymentStocks DownPaymentSource = "stocks"
	// DownPaymentLoan borrows the down payment with a home equity loan. No
	// cash outlay at purchase; the loan's interest is never tax deductible.
	DownPaymentLoan DownPaymentSource = "loan"
)

// Valid reports whether the source is one of the known enum values.
func (s DownPaymentSource) Valid() bool {
	switch s {
	case DownPaymentCash, DownPaymentStocks, DownPaymentLoan:
		return true
	}
	return false
}

// ScenarioParams holds the normalized inputs for one rent-vs-buy analysis.
// All percentage fields are expressed in percent (4.5 means 4.5%), matching
// the way users enter them. Monthly amounts are per month. The struct is
// treated as immutable by the calculation engine; range validation is the
// caller's contract (see internal/config).
type ScenarioParams struct {
	AnalysisYears int `yaml:"analysis_years" json:"analysis_years"`

	// Renting side
	ApartmentRent    decimal.Decimal `yaml:"apartment_rent" json:"apartment_rent"`          // monthly
	RentIncreaseRate decimal.Decimal `yaml:"rent_increase_rate" json:"rent_increase_rate"`  // %/yr

	// Purchase & financing
	CondoPrice        decimal.Decimal   `yaml:"condo_price" json:"condo_price"`
	DownPaymentPct    decimal.Decimal   `yaml:"down_payment_pct" json:"down_payment_pct"`
	DownPaymentSource DownPaymentSource `yaml:"down_payment_source" json:"down_payment_source"`
	StockGainPct      decimal.Decimal   `yaml:"stock_gain_pct,omitempty" json:"stock_gain_pct,omitempty"`     // portion of down payment that is gain, stocks source only
	EquityLoanRate    decimal.Decimal   `yaml:"equity_loan_rate,omitempty" json:"equity_loan_rate,omitempty"` // loan source only
	EquityLoanYears   int               `yaml:"equity_loan_years,omitempty" json:"equity_loan_years,omitempty"`
	MortgageRate      decimal.Decimal   `yaml:"mortgage_rate" json:"mortgage_rate"`
	MortgageYears     int               `yaml:"mortgage_years" json:"mortgage_years"`

	// Carrying costs
	PropertyTaxRate decimal.Decimal `yaml:"property_tax_rate" json:"property_tax_rate"` // $ per $1000 of value per year
	HOARate         decimal.Decimal `yaml:"hoa_rate" json:"hoa_rate"`                   // % of value per MONTH
	InsuranceRate   decimal.Decimal `yaml:"insurance_rate" json:"insurance_rate"`       // % of value per year
	HeatingCost     decimal.Decimal `yaml:"heating_cost" json:"heating_cost"`           // monthly, inflated 2%/yr
	MaintenanceCost decimal.Decimal `yaml:"maintenance_cost" json:"maintenance_cost"`   // monthly, inflated 2%/yr

	// Taxes
	FederalTaxRate     decimal.Decimal `yaml:"federal_tax_rate" json:"federal_tax_rate"`
	StateTaxRate       decimal.Decimal `yaml:"state_tax_rate" json:"state_tax_rate"`
	CapitalGainsRate   decimal.Decimal `yaml:"capital_gains_rate" json:"capital_gains_rate"`
	IsPrimaryResidence bool            `yaml:"is_primary_residence" json:"is_primary_residence"`

	// Market & sale
	AppreciationRate decimal.Decimal `yaml:"appreciation_rate" json:"appreciation_rate"` // %/yr, may be negative
	RealtorFeePct    decimal.Decimal `yaml:"realtor_fee_pct" json:"realtor_fee_pct"`

	// Present-value display
	DiscountRate     decimal.Decimal `yaml:"discount_rate" json:"discount_rate"` // %/yr, 0-20
	UseTodaysDollars bool            `yaml:"use_todays_dollars" json:"use_todays_dollars"`
}

// DownPayment returns the dollar down payment (condo price x pct / 100).
func (p *ScenarioParams) DownPayment() decimal.Decimal {
	return p.CondoPrice.Mul(p.DownPaymentPct).Div(decimal.NewFromInt(100))
}

// MortgagePrincipal returns the financed amount after the down payment.
func (p *ScenarioParams) MortgagePrincipal() decimal.Decimal {
	return p.CondoPrice.Sub(p.DownPayment())
}

// CombinedMarginalRate returns (federal + state) / 100 as a fraction.
func (p *ScenarioParams) CombinedMarginalRate() decimal.Decimal {
	return p.FederalTaxRate.Add(p.StateTaxRate).Div(decimal.NewFromInt(100))
}

// DiscountingEnabled reports whether results should be converted to today's
// dollars. Both the flag and a positive rate are required.
func (p *ScenarioParams) DiscountingEnabled() bool {
	return p.UseTodaysDollars && p.DiscountRate.GreaterThan(decimal.Zero)
}

func (s DownPaymentSource) String() string { return string(s) }

// Describe returns the human-readable description used in assumption tables.
func (s DownPaymentSource) Describe() string {
	switch s {
	case DownPaymentCash:
		return "Cash on Hand"
	case DownPaymentStocks:
		return "Sell Stocks (capital gains)"
	case DownPaymentLoan:
		return "Home Equity Loan (interest not tax-deductible)"
	}
	return fmt.Sprintf("unknown (%s)", string(s))
}
