package domain

// Configuration is the top-level structure of an input file: the scenario
// parameters plus optional tax rule overrides. A zero-value tax_rules block
// means the statutory defaults apply.
type Configuration struct {
	Params   ScenarioParams `yaml:"parameters" json:"parameters"`
	TaxRules TaxRules       `yaml:"tax_rules,omitempty" json:"tax_rules,omitempty"`
}
