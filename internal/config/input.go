package config

import (
	"fmt"
	"os"

	"github.com/garyo/housing-cost-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateParams(&config.Params); err != nil {
		return fmt.Errorf("parameter validation failed: %w", err)
	}
	if err := ip.validateTaxRules(&config.TaxRules); err != nil {
		return fmt.Errorf("tax rules validation failed: %w", err)
	}
	return nil
}

// validateParams validates the scenario parameters
func (ip *InputParser) validateParams(p *domain.ScenarioParams) error {
	if p.AnalysisYears <= 0 || p.AnalysisYears > 50 {
		return fmt.Errorf("analysis years must be between 1 and 50")
	}
	if p.ApartmentRent.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("apartment rent must be positive")
	}
	if p.CondoPrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("condo price must be positive")
	}
	if err := percentRange("down payment percent", p.DownPaymentPct); err != nil {
		return err
	}
	if !p.DownPaymentSource.Valid() {
		return fmt.Errorf("down payment source must be 'cash', 'stocks', or 'loan'")
	}
	if p.DownPaymentSource == domain.DownPaymentStocks {
		if err := percentRange("stock gain percent", p.StockGainPct); err != nil {
			return err
		}
	}
	if p.DownPaymentSource == domain.DownPaymentLoan {
		if p.EquityLoanRate.LessThan(decimal.Zero) {
			return fmt.Errorf("equity loan rate cannot be negative")
		}
		if p.EquityLoanYears <= 0 {
			return fmt.Errorf("equity loan term must be positive")
		}
	}
	if p.MortgageRate.LessThan(decimal.Zero) {
		return fmt.Errorf("mortgage rate cannot be negative")
	}
	if p.MortgageYears <= 0 {
		return fmt.Errorf("mortgage term must be positive")
	}
	if p.PropertyTaxRate.LessThan(decimal.Zero) {
		return fmt.Errorf("property tax rate cannot be negative")
	}
	if p.HOARate.LessThan(decimal.Zero) {
		return fmt.Errorf("HOA rate cannot be negative")
	}
	if p.InsuranceRate.LessThan(decimal.Zero) {
		return fmt.Errorf("insurance rate cannot be negative")
	}
	if p.HeatingCost.LessThan(decimal.Zero) {
		return fmt.Errorf("heating cost cannot be negative")
	}
	if p.MaintenanceCost.LessThan(decimal.Zero) {
		return fmt.Errorf("maintenance cost cannot be negative")
	}
	if err := percentRange("federal tax rate", p.FederalTaxRate); err != nil {
		return err
	}
	if err := percentRange("state tax rate", p.StateTaxRate); err != nil {
		return err
	}
	if err := percentRange("capital gains rate", p.CapitalGainsRate); err != nil {
		return err
	}
	if err := percentRange("realtor fee percent", p.RealtorFeePct); err != nil {
		return err
	}
	if p.AppreciationRate.LessThan(decimal.NewFromInt(-20)) {
		return fmt.Errorf("appreciation rate below -20%% is not supported")
	}
	if p.RentIncreaseRate.LessThan(decimal.Zero) {
		return fmt.Errorf("rent increase rate cannot be negative")
	}
	if p.DiscountRate.LessThan(decimal.Zero) || p.DiscountRate.GreaterThan(decimal.NewFromInt(20)) {
		return fmt.Errorf("discount rate must be between 0 and 20%%")
	}
	return nil
}

// validateTaxRules validates tax rule overrides; an all-zero block is the
// "use defaults" sentinel and always passes.
func (ip *InputParser) validateTaxRules(rules *domain.TaxRules) error {
	if rules.IsZero() {
		return nil
	}
	if rules.SALTCap.LessThan(decimal.Zero) {
		return fmt.Errorf("SALT cap cannot be negative")
	}
	if rules.MortgageInterestCap.LessThan(decimal.Zero) {
		return fmt.Errorf("mortgage interest cap cannot be negative")
	}
	if rules.PrimaryResidenceExclusion.LessThan(decimal.Zero) {
		return fmt.Errorf("primary residence exclusion cannot be negative")
	}
	if rules.StateIncomeProxyFactor.LessThan(decimal.Zero) {
		return fmt.Errorf("state income proxy factor cannot be negative")
	}
	return nil
}

func percentRange(name string, value decimal.Decimal) error {
	if value.LessThan(decimal.Zero) || value.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%s must be between 0 and 100", name)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Params: domain.ScenarioParams{
			AnalysisYears:      10,
			ApartmentRent:      decimal.NewFromInt(2500),
			RentIncreaseRate:   decimal.NewFromFloat(3.0),
			CondoPrice:         decimal.NewFromInt(400000),
			DownPaymentPct:     decimal.NewFromInt(20),
			DownPaymentSource:  domain.DownPaymentCash,
			StockGainPct:       decimal.NewFromInt(50),
			EquityLoanRate:     decimal.NewFromFloat(7.0),
			EquityLoanYears:    10,
			MortgageRate:       decimal.NewFromFloat(4.5),
			MortgageYears:      30,
			PropertyTaxRate:    decimal.NewFromInt(10),
			HOARate:            decimal.NewFromFloat(0.1),
			InsuranceRate:      decimal.NewFromFloat(0.5),
			HeatingCost:        decimal.NewFromInt(100),
			MaintenanceCost:    decimal.NewFromInt(200),
			FederalTaxRate:     decimal.NewFromInt(24),
			StateTaxRate:       decimal.NewFromInt(5),
			CapitalGainsRate:   decimal.NewFromInt(15),
			IsPrimaryResidence: true,
			AppreciationRate:   decimal.NewFromFloat(3.0),
			RealtorFeePct:      decimal.NewFromInt(6),
			DiscountRate:       decimal.NewFromFloat(3.0),
			UseTodaysDollars:   false,
		},
	}
}
