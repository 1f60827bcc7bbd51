package models

// ISO 20022 credit/debit indicators, used as the machine-readable code of a Kind.
const (
	TransactionTypeDebit  = "DBIT"
	TransactionTypeCredit = "CRDT"
)

// Column headers of the exported sheet, in output order.
const (
	ColumnDate        = "Fecha"
	ColumnKind        = "Tipo de transacción"
	ColumnDescription = "Descripción"
	ColumnAmount      = "Valor"
)

// SheetName is the single worksheet written by the spreadsheet sink.
const SheetName = "Movimientos"

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)

// Output formats accepted by the sink.
const (
	OutputFormatXLSX = "xlsx"
	OutputFormatCSV  = "csv"
)
