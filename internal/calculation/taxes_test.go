package calculation

import (
	"testing"

	"github.com/garyo/housing-cost-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnualTaxSavings(t *testing.T) {
	dc := NewDeductionCalculator()

	tests := []struct {
		name     string
		in       DeductionInputs
		expected decimal.Decimal
	}{
		{
			name: "everything under the caps",
			in: DeductionInputs{
				MortgageInterest:   decimal.NewFromInt(8000),
				MortgagePayment:    decimal.NewFromInt(12000),
				PropertyTax:        decimal.NewFromInt(4000),
				OriginalLoanAmount: decimal.NewFromInt(200000),
				RemainingPrincipal: decimal.NewFromInt(180000),
				StateTaxRatePct:    decimal.NewFromFloat(5.0),
				CombinedRate:       decimal.NewFromFloat(0.30),
			},
			// state income proxy (12000+4000)*4*5% = 3200, plus 4000
			// property tax stays under the SALT cap: (8000+7200)*0.30
			expected: decimal.NewFromInt(4560),
		},
		{
			name: "SALT cap binds",
			in: DeductionInputs{
				MortgageInterest:   decimal.NewFromInt(10000),
				MortgagePayment:    decimal.NewFromInt(24000),
				PropertyTax:        decimal.NewFromInt(12000),
				OriginalLoanAmount: decimal.NewFromInt(400000),
				RemainingPrincipal: decimal.NewFromInt(380000),
				StateTaxRatePct:    decimal.NewFromFloat(6.0),
				CombinedRate:       decimal.NewFromFloat(0.30),
			},
			// proxy 8640 + property tax 12000 caps at 10000: (10000+10000)*0.30
			expected: decimal.NewFromInt(6000),
		},
		{
			name: "jumbo loan interest pro-rated",
			in: DeductionInputs{
				MortgageInterest:   decimal.NewFromInt(36000),
				MortgagePayment:    decimal.NewFromInt(60000),
				PropertyTax:        decimal.Zero,
				OriginalLoanAmount: decimal.NewFromInt(1000000),
				RemainingPrincipal: decimal.NewFromInt(900000),
				StateTaxRatePct:    decimal.Zero,
				CombinedRate:       decimal.NewFromFloat(0.30),
			},
			// 150000/900000 of the balance is over the cap, so 5/6 of the
			// interest (30000) is deductible
			expected: decimal.NewFromInt(9000),
		},
		{
			name: "jumbo loan paid down below the cap",
			in: DeductionInputs{
				MortgageInterest:   decimal.NewFromInt(30000),
				MortgagePayment:    decimal.NewFromInt(60000),
				PropertyTax:        decimal.Zero,
				OriginalLoanAmount: decimal.NewFromInt(1000000),
				RemainingPrincipal: decimal.NewFromInt(700000),
				StateTaxRatePct:    decimal.Zero,
				CombinedRate:       decimal.NewFromFloat(0.30),
			},
			// remaining balance is under the cap, full interest deducts
			expected: decimal.NewFromInt(9000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dc.AnnualTaxSavings(tt.in)
			diff := got.Sub(tt.expected).Abs()
			assert.True(t, diff.LessThan(decimal.NewFromFloat(0.01)),
				"tax savings %s, want %s", got, tt.expected)
		})
	}
}

func TestCapitalGainsAtSale(t *testing.T) {
	dc := NewDeductionCalculator()
	rate := decimal.NewFromFloat(15.0)

	t.Run("primary residence gain under exclusion", func(t *testing.T) {
		tax := dc.CapitalGainsAtSale(
			decimal.NewFromInt(600000), decimal.NewFromInt(400000), rate, true)
		assert.True(t, tax.IsZero(), "200k gain is fully excluded, got %s", tax)
	})

	t.Run("primary residence gain over exclusion", func(t *testing.T) {
		tax := dc.CapitalGainsAtSale(
			decimal.NewFromInt(800000), decimal.NewFromInt(400000), rate, true)
		// (400000 - 250000) * 15%
		assert.True(t, tax.Equal(decimal.NewFromInt(22500)), "got %s", tax)
	})

	t.Run("investment property taxes full gain", func(t *testing.T) {
		tax := dc.CapitalGainsAtSale(
			decimal.NewFromInt(500000), decimal.NewFromInt(400000), rate, false)
		assert.True(t, tax.Equal(decimal.NewFromInt(15000)), "got %s", tax)
	})

	t.Run("sale at a loss owes nothing", func(t *testing.T) {
		tax := dc.CapitalGainsAtSale(
			decimal.NewFromInt(350000), decimal.NewFromInt(400000), rate, false)
		assert.True(t, tax.IsZero(), "got %s", tax)
	})
}

func TestNewDeductionCalculatorWithConfig(t *testing.T) {
	custom := domain.TaxRules{
		SALTCap:                   decimal.NewFromInt(20000),
		MortgageInterestCap:       decimal.NewFromInt(1000000),
		PrimaryResidenceExclusion: decimal.NewFromInt(500000),
		StateIncomeProxyFactor:    decimal.NewFromInt(4),
	}
	dc := NewDeductionCalculatorWithConfig(custom)
	require.True(t, dc.Rules.SALTCap.Equal(decimal.NewFromInt(20000)))

	// Zero-value rules fall back to the statutory defaults.
	dc = NewDeductionCalculatorWithConfig(domain.TaxRules{})
	assert.True(t, dc.Rules.SALTCap.Equal(decimal.NewFromInt(10000)))
	assert.True(t, dc.Rules.PrimaryResidenceExclusion.Equal(decimal.NewFromInt(250000)))
}
