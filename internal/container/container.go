// Package container provides dependency injection for the extracto application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/extracto/internal/config"
	"fjacquet/extracto/internal/logging"
	"fjacquet/extracto/internal/parser"
	"fjacquet/extracto/internal/pdfparser"
)

// Container holds all application dependencies and provides methods to access them.
// It is immutable after creation: fields are private and only reachable
// through getters.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	extractor pdfparser.PDFExtractor

	parsers map[parser.ParserType]parser.FullParser
}

// Option overrides a dependency before the container wires the rest.
type Option func(*Container)

// WithLogger replaces the logger built from the configuration.
func WithLogger(logger logging.Logger) Option {
	return func(c *Container) {
		c.logger = logger
	}
}

// WithExtractor replaces the extractor selected by extractor.backend.
func WithExtractor(extractor pdfparser.PDFExtractor) Option {
	return func(c *Container) {
		c.extractor = extractor
	}
}

// NewContainer creates and wires all application dependencies.
// This is the main entry point for dependency injection in the application.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	c := &Container{config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	// Logger first, everything else logs through it
	if c.logger == nil {
		c.logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}

	if c.extractor == nil {
		extractor, err := pdfparser.NewExtractor(cfg.Extractor, c.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create PDF extractor: %w", err)
		}
		c.extractor = extractor
	}

	c.parsers = map[parser.ParserType]parser.FullParser{
		parser.PDF: pdfparser.NewAdapter(c.logger, c.extractor, cfg),
	}

	c.logger.Debug("Container initialized successfully",
		logging.F("parsers_count", len(c.parsers)),
		logging.F(logging.FieldBackend, cfg.Extractor.Backend))

	return c, nil
}

// GetParser returns a parser for the given type.
func (c *Container) GetParser(pt parser.ParserType) (parser.FullParser, error) {
	p, ok := c.parsers[pt]
	if !ok {
		return nil, fmt.Errorf("unknown parser type: %s", pt)
	}
	return p, nil
}

// GetPDFAdapter returns the PDF parser with its text helpers.
func (c *Container) GetPDFAdapter() (*pdfparser.Adapter, error) {
	p, err := c.GetParser(parser.PDF)
	if err != nil {
		return nil, err
	}
	adapter, ok := p.(*pdfparser.Adapter)
	if !ok {
		return nil, fmt.Errorf("unexpected PDF parser type %T", p)
	}
	return adapter, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetExtractor returns the PDF text source shared by the parsers.
func (c *Container) GetExtractor() pdfparser.PDFExtractor {
	return c.extractor
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
