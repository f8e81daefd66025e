package output

import (
	"encoding/json"

	"github.com/taxplan/planner/internal/domain"
	"gopkg.in/yaml.v3"
)

// JSONFormatter serializes the report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	return json.MarshalIndent(withAssumptions(report), "", "  ")
}

// YAMLFormatter serializes the report as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	return yaml.Marshal(withAssumptions(report))
}

func withAssumptions(report *domain.TaxReport) *domain.TaxReport {
	r := *report
	r.Assumptions = assumptionsFor(report)
	return &r
}
