package output

import (
	"bytes"
	"fmt"

	"github.com/garyo/housing-cost-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders the full comparison as a fixed-width text report:
// assumptions, the year-by-year cost table, and the sale summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.ScenarioResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "RENT VS BUY COMPARISON")
	fmt.Fprintln(&buf, "======================")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Assumptions:")
	width := 0
	for _, line := range result.Assumptions {
		if len(line.Assumption) > width {
			width = len(line.Assumption)
		}
	}
	for _, line := range result.Assumptions {
		fmt.Fprintf(&buf, "  %-*s  %s\n", width, line.Assumption, line.Value)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%4s %12s %12s %11s %10s %10s %10s %12s %12s %12s %8s\n",
		"Year", "Apartment", "Mortgage", "Eq. Loan", "Prop Tax", "HOA", "Insur+Oth",
		"Tax Savings", "Net Condo", "Equity", "IRR")
	for _, yr := range result.Years {
		other := yr.Insurance.Add(yr.Heating).Add(yr.Maintenance)
		irr := "n/a"
		if yr.IRR != nil {
			irr = yr.IRR.StringFixed(1) + "%"
		}
		fmt.Fprintf(&buf, "%4d %12s %12s %11s %10s %10s %10s %12s %12s %12s %8s\n",
			yr.Year,
			FormatCurrency(yr.ApartmentCost),
			FormatCurrency(yr.MortgagePayment),
			FormatCurrency(yr.EquityLoanPayment),
			FormatCurrency(yr.PropertyTax),
			FormatCurrency(yr.HOA),
			FormatCurrency(other),
			FormatCurrency(yr.TaxSavings),
			FormatCurrency(yr.NetCondoCost),
			FormatCurrency(yr.Equity),
			irr)
	}
	fmt.Fprintln(&buf)

	title := fmt.Sprintf("Sale After %d Years", result.Params.AnalysisYears)
	if result.Params.DiscountingEnabled() {
		title += " (today's dollars)"
	}
	fmt.Fprintln(&buf, title+":")
	for _, row := range result.SummaryRows {
		fmt.Fprintf(&buf, "  %-30s %15s\n", row.Description, FormatCurrency(row.Amount))
	}
	fmt.Fprintln(&buf)

	if result.Summary.OverallIRR != nil {
		fmt.Fprintf(&buf, "Overall IRR of ownership: %s\n", FormatPercentage(*result.Summary.OverallIRR))
	} else {
		fmt.Fprintln(&buf, "Overall IRR of ownership: not computable")
	}
	verdict := "Owning costs more than renting over this horizon."
	if result.Summary.CostDifference.LessThanOrEqual(decimal.Zero) {
		verdict = "Owning comes out ahead of renting over this horizon."
	}
	fmt.Fprintln(&buf, verdict)

	return buf.Bytes(), nil
}

// ComparisonTable renders the across-horizons comparison as console text.
func ComparisonTable(points []domain.ComparisonPoint) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%5s %18s %18s %18s %14s\n",
		"Years", "Apartment Total", "Condo Total", "Difference", "Final Value")
	for _, pt := range points {
		fmt.Fprintf(&buf, "%5d %18s %18s %18s %14s\n",
			pt.Year,
			FormatCurrency(pt.ApartmentCost),
			FormatCurrency(pt.CondoCost),
			FormatCurrency(pt.CondoCost.Sub(pt.ApartmentCost)),
			FormatCurrency(pt.FinalPropertyValue))
	}
	return buf.Bytes()
}
