package output

import (
	"strings"
	"testing"

	"github.com/garyo/housing-cost-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *domain.ScenarioResult {
	d := func(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }
	irr1 := d(-12.5)
	irr2 := d(4.2)
	return &domain.ScenarioResult{
		Years: []domain.YearRecord{
			{
				Year: 1, ApartmentCost: d(30000), MortgagePayment: d(19456), PropertyTax: d(4000),
				HOA: d(4800), Insurance: d(2000), Heating: d(1200), Maintenance: d(2400),
				TaxSavings: d(5000), NetCondoCost: d(28856), PropertyValue: d(412000),
				Equity: d(85000), RemainingMortgage: d(314700), IRR: &irr1,
			},
			{
				Year: 2, ApartmentCost: d(30900), MortgagePayment: d(19456), PropertyTax: d(4120),
				HOA: d(4944), Insurance: d(2060), Heating: d(1224), Maintenance: d(2448),
				TaxSavings: d(4900), NetCondoCost: d(29352), PropertyValue: d(424360),
				Equity: d(95000), RemainingMortgage: d(309200), IRR: &irr2,
			},
		},
		Summary: domain.ScenarioSummary{
			FinalPropertyValue: d(424360),
			NetSaleProceeds:    d(90000),
			TotalCondoCost:     d(48208),
			TotalApartmentCost: d(60900),
			CostDifference:     d(-12692),
		},
		SummaryRows: []domain.SummaryLine{
			{Description: "Final Property Value", Amount: d(424360)},
			{Description: "Net Sale Proceeds", Amount: d(90000)},
		},
		Assumptions: []domain.AssumptionLine{
			{Assumption: "Condo Price", Value: "$400000"},
			{Assumption: "Mortgage Rate", Value: "4.5%"},
		},
		Params: domain.ScenarioParams{AnalysisYears: 2, CondoPrice: d(400000)},
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "csv", "json"} {
		f := GetFormatterByName(name)
		require.NotNil(t, f, "formatter %q should be registered", name)
		assert.Equal(t, name, f.Name())
	}
	assert.Nil(t, GetFormatterByName("xml"))
}

func TestGetFormatterByAlias(t *testing.T) {
	tests := map[string]string{
		"text":        "console",
		"TABLE":       "console",
		" csv-yearly": "csv",
		"json-pretty": "json",
	}
	for alias, want := range tests {
		f := GetFormatterByName(alias)
		require.NotNil(t, f, "alias %q should resolve", alias)
		assert.Equal(t, want, f.Name())
	}
}

func TestFormatterFunc(t *testing.T) {
	ff := FormatterFunc{
		ID: "static",
		F:  func(*domain.ScenarioResult) ([]byte, error) { return []byte("ok"), nil },
	}
	assert.Equal(t, "static", ff.Name())
	data, err := ff.Format(nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
}

func TestAvailableFormatterNames(t *testing.T) {
	names := AvailableFormatterNames()
	assert.Equal(t, []string{"console", "csv", "json"}, names)
	assert.NotEmpty(t, AvailableFormatAliases())
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleResult())
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "RENT VS BUY COMPARISON")
	assert.Contains(t, text, "Condo Price")
	assert.Contains(t, text, "Sale After 2 Years")
	assert.Contains(t, text, "Net Sale Proceeds")
	assert.Contains(t, text, "Owning comes out ahead")
	// One table row per projection year.
	assert.Contains(t, text, "\n   1 ")
	assert.Contains(t, text, "\n   2 ")
}

func TestCSVExporter(t *testing.T) {
	data, err := CSVExporter{}.Format(sampleResult())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "Year,ApartmentCost"))
	assert.True(t, strings.HasPrefix(lines[1], "1,30000.00"))
	assert.True(t, strings.HasPrefix(lines[2], "2,30900.00"))
	assert.Contains(t, string(data), "Net Sale Proceeds,90000.00")
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "\"yearly_data\"")
	assert.Contains(t, text, "\"summary\"")
	assert.Contains(t, text, "\"assumptions\"")
}

func TestComparisonTable(t *testing.T) {
	d := func(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }
	points := []domain.ComparisonPoint{
		{Year: 1, ApartmentCost: d(30000), CondoCost: d(90000), FinalPropertyValue: d(412000)},
		{Year: 2, ApartmentCost: d(61000), CondoCost: d(95000), FinalPropertyValue: d(424360)},
	}
	text := string(ComparisonTable(points))
	assert.Contains(t, text, "Apartment Total")
	assert.Contains(t, text, "$90,000.00")

	csvData, err := ComparisonCSV(points)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(csvData), "Years,ApartmentTotal"))
	assert.Contains(t, string(csvData), "1,30000.00,90000.00,60000.00,412000.00")
}
