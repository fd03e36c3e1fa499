package export

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"fjacquet/budget-projector/internal/budgeterror"
	"fjacquet/budget-projector/internal/models"

	"gopkg.in/yaml.v3"
)

// Report formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatXML  = "xml"
)

// Report is a complete projection: the ledger rows and their summary.
type Report struct {
	XMLName xml.Name           `json:"-" yaml:"-" xml:"budget_report"`
	Title   string             `json:"title,omitempty" yaml:"title,omitempty" xml:"title,attr,omitempty"`
	Rows    []models.LedgerRow `json:"ledger" yaml:"ledger" xml:"ledger>row"`
	Summary models.Summary     `json:"summary" yaml:"summary" xml:"summary"`
}

// NewReport assembles a report.
func NewReport(title string, ledger models.Ledger, summary models.Summary) *Report {
	return &Report{Title: title, Rows: ledger.Rows(), Summary: summary}
}

// GenerateReport renders report as json, yaml or xml.
func (e *Exporter) GenerateReport(report *Report, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return e.generateJSONReport(report)
	case FormatYAML, "yml":
		return e.generateYAMLReport(report)
	case FormatXML:
		return e.generateXMLReport(report)
	default:
		return nil, fmt.Errorf("report format %q: %w", format, budgeterror.ErrUnsupportedFormat)
	}
}

func (e *Exporter) generateJSONReport(report *Report) ([]byte, error) {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		e.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}

func (e *Exporter) generateYAMLReport(report *Report) ([]byte, error) {
	out, err := yaml.Marshal(report)
	if err != nil {
		e.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}

func (e *Exporter) generateXMLReport(report *Report) ([]byte, error) {
	out, err := xml.MarshalIndent(report, "", "  ")
	if err != nil {
		e.logger.WithError(err).Error("Failed to marshal XML report")
		return nil, fmt.Errorf("failed to marshal XML report: %w", err)
	}
	return []byte(xml.Header + string(out) + "\n"), nil
}
