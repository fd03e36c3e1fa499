// Package export writes projections as CSV files and structured reports.
package export

import (
	"fjacquet/budget-projector/internal/logging"
)

// Exporter serializes ledgers and summaries.
type Exporter struct {
	delimiter      rune
	includeHeaders bool
	logger         logging.Logger
}

// NewExporter creates an Exporter. A zero delimiter means comma.
func NewExporter(delimiter rune, includeHeaders bool, logger logging.Logger) *Exporter {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.NewMockLogger()
	}
	return &Exporter{
		delimiter:      delimiter,
		includeHeaders: includeHeaders,
		logger:         logger,
	}
}

// Delimiter returns the CSV field separator.
func (e *Exporter) Delimiter() rune {
	return e.delimiter
}
