package output

import (
	"bytes"
	"encoding/csv"

	"github.com/garyo/housing-cost-calculator/internal/domain"
)

// CSVExporter implements the yearly CSV output (one row per projection year,
// sale summary appended as trailing rows).
type CSVExporter struct{}

func (c CSVExporter) Name() string { return "csv" }

func (c CSVExporter) Format(result *domain.ScenarioResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "ApartmentCost", "MortgagePayment", "EquityLoanPayment", "PropertyTax", "HOA", "Insurance", "Heating", "Maintenance", "TaxSavings", "NetCondoCost", "PropertyValue", "Equity", "RemainingMortgage", "IRRPercent"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, yr := range result.Years {
		irr := ""
		if yr.IRR != nil {
			irr = yr.IRR.StringFixed(2)
		}
		row := []string{
			intToString(yr.Year),
			yr.ApartmentCost.StringFixed(2),
			yr.MortgagePayment.StringFixed(2),
			yr.EquityLoanPayment.StringFixed(2),
			yr.PropertyTax.StringFixed(2),
			yr.HOA.StringFixed(2),
			yr.Insurance.StringFixed(2),
			yr.Heating.StringFixed(2),
			yr.Maintenance.StringFixed(2),
			yr.TaxSavings.StringFixed(2),
			yr.NetCondoCost.StringFixed(2),
			yr.PropertyValue.StringFixed(2),
			yr.Equity.StringFixed(2),
			yr.RemainingMortgage.StringFixed(2),
			irr,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	if err := w.Write([]string{}); err != nil {
		return nil, err
	}
	for _, row := range result.SummaryRows {
		if err := w.Write([]string{row.Description, row.Amount.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ComparisonCSV renders the across-horizons comparison as CSV.
func ComparisonCSV(points []domain.ComparisonPoint) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Years", "ApartmentTotal", "CondoTotal", "Difference", "FinalPropertyValue"}); err != nil {
		return nil, err
	}
	for _, pt := range points {
		row := []string{
			intToString(pt.Year),
			pt.ApartmentCost.StringFixed(2),
			pt.CondoCost.StringFixed(2),
			pt.CondoCost.Sub(pt.ApartmentCost).StringFixed(2),
			pt.FinalPropertyValue.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
