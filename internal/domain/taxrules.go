package domain

import "github.com/shopspring/decimal"

// TaxRules holds the deduction caps and proxies applied by the tax engine.
// Defaults follow post-2018 US federal law; a config file may override them,
// for example to model the caps expiring.
type TaxRules struct {
	// SALTCap limits the deductible state-and-local tax amount per year.
	SALTCap decimal.Decimal `yaml:"salt_cap" json:"salt_cap"`

	// MortgageInterestCap is the loan balance above which mortgage interest
	// stops being deductible.
	MortgageInterestCap decimal.Decimal `yaml:"mortgage_interest_cap" json:"mortgage_interest_cap"`

	// PrimaryResidenceExclusion is the flat capital gains exclusion applied
	// when the property was the seller's primary home.
	PrimaryResidenceExclusion decimal.Decimal `yaml:"primary_residence_exclusion" json:"primary_residence_exclusion"`

	// StateIncomeProxyFactor estimates state income tax as this multiple of
	// the year's mortgage payment plus property tax, times the state rate.
	// A rough stand-in for a real income figure, kept for continuity with
	// earlier versions of this model.
	StateIncomeProxyFactor decimal.Decimal `yaml:"state_income_proxy_factor" json:"state_income_proxy_factor"`
}

// DefaultTaxRules returns the 2018+ federal values.
func DefaultTaxRules() TaxRules {
	return TaxRules{
		SALTCap:                   decimal.NewFromInt(10000),
		MortgageInterestCap:       decimal.NewFromInt(750000),
		PrimaryResidenceExclusion: decimal.NewFromInt(250000),
		StateIncomeProxyFactor:    decimal.NewFromInt(4),
	}
}

// IsZero reports whether the rules block was left unset (all fields zero),
// which callers treat as "use defaults".
func (tr TaxRules) IsZero() bool {
	return tr.SALTCap.IsZero() && tr.MortgageInterestCap.IsZero() &&
		tr.PrimaryResidenceExclusion.IsZero() && tr.StateIncomeProxyFactor.IsZero()
}
