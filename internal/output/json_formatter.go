package output

import (
	json "github.com/goccy/go-json"

	"github.com/garyo/housing-cost-calculator/internal/domain"
)

// JSONFormatter serializes the full scenario result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.ScenarioResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
