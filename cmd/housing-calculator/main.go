package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/garyo/housing-cost-calculator/internal/calculation"
	"github.com/garyo/housing-cost-calculator/internal/config"
	"github.com/garyo/housing-cost-calculator/internal/domain"
	"github.com/garyo/housing-cost-calculator/internal/output"
)

var (
	configFile   string
	formatName   string
	compareYears int
	saveToFile   bool
	verbose      bool
)

// zapAdapter bridges a zap SugaredLogger to the calculation logger interface.
type zapAdapter struct {
	s *zap.SugaredLogger
}

func (l zapAdapter) Debugf(format string, args ...interface{}) { l.s.Debugf(format, args...) }
func (l zapAdapter) Infof(format string, args ...interface{})  { l.s.Infof(format, args...) }
func (l zapAdapter) Warnf(format string, args ...interface{})  { l.s.Warnf(format, args...) }
func (l zapAdapter) Errorf(format string, args ...interface{}) { l.s.Errorf(format, args...) }

func newLogger() (calculation.Logger, func(), error) {
	if !verbose {
		return calculation.NopLogger{}, func() {}, nil
	}
	cfg := zap.NewDevelopmentConfig()
	zl, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return zapAdapter{s: zl.Sugar()}, func() { _ = zl.Sync() }, nil
}

var rootCmd = &cobra.Command{
	Use:   "housing-calculator",
	Short: "Compare the long-run cost of renting against buying",
	Long: `housing-calculator projects the year-by-year cost of renting an
apartment against buying a condo: mortgage amortization, property tax,
HOA, insurance, tax deductions, appreciation, and the return on the
money tied up in the purchase.`,
	RunE: runAnalysis,
}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print a starter configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		data, err := yaml.Marshal(parser.CreateExampleConfiguration())
		if err != nil {
			return fmt.Errorf("failed to marshal example configuration: %w", err)
		}
		cmd.OutOrStdout().Write(data)
		return nil
	},
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	logger, flush, err := newLogger()
	if err != nil {
		return err
	}
	defer flush()

	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	engine := calculation.NewScenarioEngineWithConfig(cfg.TaxRules)
	engine.SetLogger(logger)

	if compareYears > 0 {
		return runComparison(cmd, engine, cfg)
	}

	result, err := engine.Project(&cfg.Params)
	if err != nil {
		return fmt.Errorf("projection failed: %w", err)
	}

	formatter := output.GetFormatterByName(formatName)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %v)", formatName, output.AvailableFormatterNames())
	}

	if saveToFile {
		filename, err := output.WriteFormatted(formatter, result, output.NormalizeFormatName(formatName))
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
		return nil
	}

	data, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}
	cmd.OutOrStdout().Write(data)
	return nil
}

func runComparison(cmd *cobra.Command, engine *calculation.ScenarioEngine, cfg *domain.Configuration) error {
	points, err := engine.CompareAcrossYears(compareYears, &cfg.Params)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	switch output.NormalizeFormatName(formatName) {
	case "csv":
		data, err := output.ComparisonCSV(points)
		if err != nil {
			return fmt.Errorf("formatting failed: %w", err)
		}
		cmd.OutOrStdout().Write(data)
	default:
		cmd.OutOrStdout().Write(output.ComparisonTable(points))
		if crossover := calculation.FindCostCrossover(points); crossover != nil {
			fracYears := crossover.Fraction.InexactFloat64()
			fmt.Fprintf(cmd.OutOrStdout(), "\nOwning becomes cheaper than renting around year %.1f\n",
				float64(crossover.YearIndex-1)+fracYears)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "\nNo cost crossover within the compared horizons")
		}
	}
	return nil
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "path to configuration file (required)")
	rootCmd.Flags().StringVarP(&formatName, "format", "f", "console", "output format: console, csv, json")
	rootCmd.Flags().IntVar(&compareYears, "compare-years", 0, "compare totals for every horizon up to N years")
	rootCmd.Flags().BoolVar(&saveToFile, "save", false, "write the report to a timestamped file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(exampleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
