package logging

// Field keys shared across packages so log lines can be grepped consistently.
const (
	FieldScenario   = "scenario_file"
	FieldOutputFile = "output_file"
	FieldFormat     = "format"
	FieldRecord     = "record"
	FieldIndex      = "index"
	FieldItemID     = "item_id"
	FieldMonth      = "month"
	FieldReason     = "reason"
	FieldOperation  = "operation"
	FieldCount      = "count"
	FieldBalance    = "final_balance"
	FieldDelimiter  = "delimiter"
)
