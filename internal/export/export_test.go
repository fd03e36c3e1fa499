package export

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/budget-projector/internal/aggregator"
	"fjacquet/budget-projector/internal/budgeterror"
	"fjacquet/budget-projector/internal/logging"
	"fjacquet/budget-projector/internal/models"
	"fjacquet/budget-projector/internal/projection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func exampleLedger() models.Ledger {
	return projection.Project(models.Configuration{
		InitialBalance: 6400000,
		MonthlySalary:  5200000,
		THRBonus:       1800000,
		RecurringItems: []models.RecurringExpenseItem{{ID: "r", Amount: 3840000, Active: true}},
		WishlistItems:  []models.WishlistItem{{ID: "w", Price: 6000000, Month: models.March, Enabled: true}},
	})
}

func TestNewExporter_Defaults(t *testing.T) {
	e := NewExporter(0, true, nil)
	assert.Equal(t, ',', e.Delimiter())
}

func TestWriteCSV(t *testing.T) {
	tests := []struct {
		name       string
		delimiter  rune
		headers    bool
		locale     string
		wantFirst  string
		wantSecond string
		wantLines  int
	}{
		{
			name:       "comma with headers",
			delimiter:  ',',
			headers:    true,
			locale:     "en",
			wantFirst:  "Month,OpeningBalance,Income,RecurringExpense,WishlistExpense,TotalExpense,ClosingBalance",
			wantSecond: "January,6400000,5200000,3840000,0,3840000,7760000",
			wantLines:  13,
		},
		{
			name:      "semicolon without headers in Indonesian",
			delimiter: ';',
			headers:   false,
			locale:    "id",
			wantFirst: "Januari;6400000;5200000;3840000;0;3840000;7760000",
			wantLines: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := NewExporter(tt.delimiter, tt.headers, logging.NewMockLogger())
			require.NoError(t, e.WriteCSV(&buf, exampleLedger(), tt.locale))

			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			require.Len(t, lines, tt.wantLines)
			assert.Equal(t, tt.wantFirst, lines[0])
			if tt.wantSecond != "" {
				assert.Equal(t, tt.wantSecond, lines[1])
			}
		})
	}
}

func TestWriteCSVFile(t *testing.T) {
	mock := logging.NewMockLogger()
	e := NewExporter(',', true, mock)
	path := filepath.Join(t.TempDir(), "out", "ledger.csv")

	require.NoError(t, e.WriteCSVFile(path, exampleLedger(), "en"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "December,")
	assert.True(t, mock.HasEntry("INFO", "Wrote ledger to CSV file"))
}

func TestGenerateReport(t *testing.T) {
	ledger := exampleLedger()
	report := NewReport("Budget", ledger, aggregator.Summarize(ledger))
	e := NewExporter(',', true, nil)

	t.Run("json", func(t *testing.T) {
		out, err := e.GenerateReport(report, "json")
		require.NoError(t, err)

		var decoded struct {
			Title   string `json:"title"`
			Ledger  []map[string]interface{}
			Summary map[string]interface{} `json:"summary"`
		}
		require.NoError(t, json.Unmarshal(out, &decoded))
		assert.Equal(t, "Budget", decoded.Title)
		assert.Len(t, decoded.Ledger, 12)
		assert.Equal(t, "January", decoded.Ledger[0]["month"])
		assert.Equal(t, float64(18520000), decoded.Summary["final_balance"])
		assert.Equal(t, "4.8", decoded.Summary["survival_months"])
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := e.GenerateReport(report, "YAML")
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, yaml.Unmarshal(out, &decoded))
		assert.Equal(t, "Budget", decoded["title"])
		summary, ok := decoded["summary"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, 18520000, summary["final_balance"])
		assert.Equal(t, "March", summary["lowest_balance_month"])
	})

	t.Run("xml", func(t *testing.T) {
		out, err := e.GenerateReport(report, "xml")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(out), xml.Header))
		assert.Contains(t, string(out), `<budget_report title="Budget">`)
		assert.Contains(t, string(out), "<month>March</month>")
		assert.Contains(t, string(out), "<survival_months>4.8</survival_months>")
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := e.GenerateReport(report, "pdf")
		assert.ErrorIs(t, err, budgeterror.ErrUnsupportedFormat)
	})
}

func TestGenerateReport_NoSurvivalEstimate(t *testing.T) {
	ledger := projection.Project(models.Configuration{
		RecurringItems: []models.RecurringExpenseItem{{ID: "r", Amount: 10, Active: true}},
	})
	report := NewReport("", ledger, aggregator.Summarize(ledger))

	out, err := NewExporter(',', true, nil).GenerateReport(report, "xml")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "survival_months")
	assert.Contains(t, string(out), "<negative_months>")
}
