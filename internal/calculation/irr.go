package calculation

import "github.com/shopspring/decimal"

const irrMaxIterations = 1000

var (
	irrInitialGuess = decimal.NewFromFloat(0.10)
	irrTolerance    = decimal.NewFromFloat(1e-6)
	negativeOne     = decimal.NewFromInt(-1)
)

// SolveIRR finds the internal rate of return of an ordered cash-flow series
// (index 0 = today) by Newton-Raphson on NPV(r) = sum cf[j] / (1+r)^j.
//
// The series must contain at least one positive and one negative flow;
// otherwise no root exists and ok is false. ok is also false when the
// derivative stalls (magnitude below tolerance) or the iterate diverges to
// r <= -1. A false ok is a normal outcome, not an error; callers should
// render it as "N/A". On success the rate is returned as a percentage,
// possibly from the last iterate if the loop exhausts without convergence.
func SolveIRR(cashFlows []decimal.Decimal) (rate decimal.Decimal, ok bool) {
	hasPositive, hasNegative := false, false
	for _, cf := range cashFlows {
		if cf.GreaterThan(decimal.Zero) {
			hasPositive = true
		} else if cf.LessThan(decimal.Zero) {
			hasNegative = true
		}
	}
	if !hasPositive || !hasNegative {
		return decimal.Zero, false
	}

	r := irrInitialGuess
	for i := 0; i < irrMaxIterations; i++ {
		npv := decimal.Zero
		derivative := decimal.Zero
		base := one.Add(r)
		for j, cf := range cashFlows {
			power := decimal.NewFromInt(int64(j))
			npv = npv.Add(cf.Div(base.Pow(power)))
			// d/dr cf/(1+r)^j = -j * cf / (1+r)^(j+1)
			derivative = derivative.Sub(power.Mul(cf).Div(base.Pow(power.Add(one))))
		}

		if npv.Abs().LessThan(irrTolerance) {
			return r.Mul(hundred), true
		}
		if derivative.Abs().LessThan(irrTolerance) {
			return decimal.Zero, false // stalled
		}

		r = r.Sub(npv.Div(derivative))
		if r.LessThanOrEqual(negativeOne) {
			return decimal.Zero, false // diverged
		}
	}
	return r.Mul(hundred), true
}
