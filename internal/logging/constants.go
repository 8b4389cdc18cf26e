package logging

// Field names shared by every component so log output can be filtered uniformly.
const (
	FieldFile        = "file_path"
	FieldParser      = "parser"
	FieldSource      = "source"
	FieldDescription = "description"
	FieldTxnType     = "txn_type"
	FieldCategory    = "category"
	FieldStrategy    = "strategy"
	FieldStore       = "store"
	FieldReason      = "reason"
	FieldOperation   = "operation"
	FieldStatus      = "status"
	FieldError       = "error"
	FieldDuration    = "duration_ms"
	FieldCount       = "count"
	FieldPages       = "pages"
	FieldTextLength  = "text_length"
	FieldRequestID   = "request_id"
	FieldModel       = "model"
	FieldDelimiter   = "delimiter"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
)
