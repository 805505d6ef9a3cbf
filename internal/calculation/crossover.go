package calculation

import (
	"github.com/garyo/housing-cost-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CostCrossover marks the horizon at which total condo cost first drops
// below total apartment cost. Fraction interpolates within the year the
// sign flips, so a crossover of year 7 with fraction 0.4 reads as "about
// 7.4 years in".
type CostCrossover struct {
	YearIndex        int
	Fraction         decimal.Decimal
	CumulativeAmount decimal.Decimal
}

// FindCostCrossover scans comparison points for the first horizon where
// owning becomes cheaper than renting. Returns nil when owning never
// catches up within the points given, or when it is cheaper from year one.
func FindCostCrossover(points []domain.ComparisonPoint) *CostCrossover {
	var prevDiff decimal.Decimal
	for i, pt := range points {
		diff := pt.CondoCost.Sub(pt.ApartmentCost)
		if i == 0 {
			if diff.LessThanOrEqual(decimal.Zero) {
				return nil
			}
			prevDiff = diff
			continue
		}
		if diff.LessThanOrEqual(decimal.Zero) {
			// Linear interpolation between the bracketing horizons.
			fraction := decimal.Zero
			if span := prevDiff.Sub(diff); span.GreaterThan(decimal.Zero) {
				fraction = prevDiff.Div(span)
			}
			return &CostCrossover{
				YearIndex:        pt.Year,
				Fraction:         fraction,
				CumulativeAmount: pt.CondoCost,
			}
		}
		prevDiff = diff
	}
	return nil
}
