// Package container provides dependency injection for the budget-buddy application.
// It centralizes the creation and wiring of the parser, the stores and the
// category resolver so commands and handlers receive them explicitly.
package container

import (
	"context"
	"fmt"

	"askbudget/budget-buddy/internal/categorizer"
	"askbudget/budget-buddy/internal/config"
	"askbudget/budget-buddy/internal/logging"
	"askbudget/budget-buddy/internal/pdfparser"
	"askbudget/budget-buddy/internal/statement"
	"askbudget/budget-buddy/internal/store"
)

// Container holds all application dependencies. It is immutable after
// creation; dependencies are reached through getters.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	cache    store.MappingStore
	mappings store.MappingStore
	service  categorizer.ClassificationService
	gemini   *categorizer.GeminiClient
	parser   *statement.Parser
	resolver *categorizer.Resolver
}

// Option customizes NewContainer, mainly for tests.
type Option func(*options)

type options struct {
	logger        logging.Logger
	service       categorizer.ClassificationService
	textExtractor pdfparser.TextExtractor
}

// WithLogger replaces the logger built from the log section.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithClassificationService replaces the Gemini client.
func WithClassificationService(service categorizer.ClassificationService) Option {
	return func(o *options) { o.service = service }
}

// WithTextExtractor replaces the PDF text extractor.
func WithTextExtractor(extractor pdfparser.TextExtractor) Option {
	return func(o *options) { o.textExtractor = extractor }
}

// NewContainer creates and wires all application dependencies.
//
// When AI is enabled and no service is injected, a Gemini client is created.
// A client that cannot be created disables the AI layer instead of failing;
// the keyword rules still answer every request.
func NewContainer(ctx context.Context, cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = config.ConfigureLoggingFromConfig(cfg)
	}

	cache := store.NewCacheStore(cfg.CachePath(), logger)
	mappings := store.NewMappingsStore(cfg.MappingsPath(), logger)

	c := &Container{
		logger:   logger,
		config:   cfg,
		cache:    cache,
		mappings: mappings,
		service:  o.service,
	}

	if c.service == nil && cfg.AI.Enabled {
		if cfg.AI.APIKey == "" {
			logger.Warn("AI categorization enabled but no API key set, using keyword rules only")
		} else {
			gemini, err := categorizer.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.RequestsPerMinute, logger)
			if err != nil {
				logger.WithError(err).Warn("Failed to create Gemini client, using keyword rules only")
			} else {
				c.gemini = gemini
				c.service = gemini
			}
		}
	}
	if c.service != nil {
		logger.Info("AI categorization enabled", logging.Field{Key: logging.FieldModel, Value: cfg.AI.Model})
	} else {
		logger.Info("AI categorization disabled")
	}

	c.parser = statement.NewParser(o.textExtractor, logger)
	c.resolver = categorizer.NewResolver(mappings, cache, c.service, cfg.AITimeout(), logger)

	logger.Debug("Container initialized",
		logging.Field{Key: "cache_file", Value: cfg.CachePath()},
		logging.Field{Key: "mappings_file", Value: cfg.MappingsPath()})

	return c, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetParser returns the statement parser.
func (c *Container) GetParser() *statement.Parser {
	return c.parser
}

// GetResolver returns the category resolver.
func (c *Container) GetResolver() *categorizer.Resolver {
	return c.resolver
}

// GetCacheStore returns the category cache store.
func (c *Container) GetCacheStore() store.MappingStore {
	return c.cache
}

// GetMappingsStore returns the user override store.
func (c *Container) GetMappingsStore() store.MappingStore {
	return c.mappings
}

// GetClassificationService returns the classification service, or nil when
// AI categorization is disabled.
func (c *Container) GetClassificationService() categorizer.ClassificationService {
	return c.service
}

// Close releases the Gemini connection, if one was opened.
func (c *Container) Close() error {
	if c.gemini != nil {
		if err := c.gemini.Close(); err != nil {
			return fmt.Errorf("failed to close Gemini client: %w", err)
		}
	}
	c.logger.Debug("Container closed")
	return nil
}
