package parser

// ParserType names a supported input document type.
type ParserType string

// PDF is the Bancolombia PDF statement.
const PDF ParserType = "pdf"
