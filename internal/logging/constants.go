package logging

// Field names shared by every component so log output stays greppable.
const (
	FieldFile        = "file_path"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
	FieldParser      = "parser"
	FieldBackend     = "backend"
	FieldFormat      = "format"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldCount       = "count"
	FieldDropped     = "dropped"
	FieldLine        = "line"
	FieldRawValue    = "raw_value"
	FieldDate        = "date"
	FieldKind        = "kind"
	FieldAmount      = "amount"
	FieldDescription = "description"
	FieldDelimiter   = "delimiter"
)
