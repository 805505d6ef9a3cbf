package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFixedMonthlyPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal decimal.Decimal
		rate      decimal.Decimal
		years     int
		expected  decimal.Decimal
	}{
		{
			name:      "standard 30 year mortgage",
			principal: decimal.NewFromInt(200000),
			rate:      decimal.NewFromFloat(4.5),
			years:     30,
			expected:  decimal.NewFromFloat(1013.37),
		},
		{
			name:      "15 year mortgage",
			principal: decimal.NewFromInt(320000),
			rate:      decimal.NewFromFloat(6.0),
			years:     15,
			expected:  decimal.NewFromFloat(2700.36),
		},
		{
			name:      "zero rate splits principal evenly",
			principal: decimal.NewFromInt(120000),
			rate:      decimal.Zero,
			years:     10,
			expected:  decimal.NewFromInt(1000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := FixedMonthlyPayment(tt.principal, tt.rate, tt.years)
			diff := payment.Sub(tt.expected).Abs()
			assert.True(t, diff.LessThan(decimal.NewFromFloat(0.01)),
				"payment %s should be within a cent of %s", payment, tt.expected)
		})
	}
}

func TestSplitPaymentFirstMonth(t *testing.T) {
	principal := decimal.NewFromInt(200000)
	rate := decimal.NewFromFloat(4.5)

	split := SplitPayment(principal, rate, 30, 1)

	// First month interest is exactly principal * monthly rate.
	expectedInterest := decimal.NewFromInt(750)
	assert.True(t, split.Interest.Sub(expectedInterest).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"first month interest %s should be ~%s", split.Interest, expectedInterest)

	payment := FixedMonthlyPayment(principal, rate, 30)
	total := split.Interest.Add(split.PrincipalPaid)
	assert.True(t, total.Sub(payment).Abs().LessThan(decimal.NewFromFloat(0.0001)),
		"interest + principal should equal the fixed payment")
}

func TestSplitPaymentFullTermRetiresPrincipal(t *testing.T) {
	principal := decimal.NewFromInt(100000)
	rate := decimal.NewFromFloat(5.0)
	years := 5

	totalPrincipal := decimal.Zero
	for i := 1; i <= years*12; i++ {
		totalPrincipal = totalPrincipal.Add(SplitPayment(principal, rate, years, i).PrincipalPaid)
	}

	diff := totalPrincipal.Sub(principal).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.05)),
		"principal paid over full term was %s, want ~%s", totalPrincipal, principal)
}

func TestSplitPaymentInterestDeclines(t *testing.T) {
	principal := decimal.NewFromInt(300000)
	rate := decimal.NewFromFloat(4.0)

	early := SplitPayment(principal, rate, 30, 1)
	late := SplitPayment(principal, rate, 30, 300)

	assert.True(t, late.Interest.LessThan(early.Interest),
		"interest portion should shrink as the loan amortizes")
	assert.True(t, late.PrincipalPaid.GreaterThan(early.PrincipalPaid),
		"principal portion should grow as the loan amortizes")
}

func TestSplitPaymentZeroRate(t *testing.T) {
	split := SplitPayment(decimal.NewFromInt(120000), decimal.Zero, 10, 60)

	assert.True(t, split.Interest.IsZero(), "zero rate loan accrues no interest")
	assert.True(t, split.PrincipalPaid.Equal(decimal.NewFromInt(1000)))
}
