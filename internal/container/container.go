// Package container provides dependency injection for the iltracker
// application. It centralizes the creation and wiring of the stats API
// client, the classifier and the dataset builder, making them explicit and
// testable.
package container

import (
	"fmt"
	"time"

	"iltracker/internal/classifier"
	"iltracker/internal/config"
	"iltracker/internal/dataset"
	"iltracker/internal/logging"
	"iltracker/internal/statsapi"
	"iltracker/internal/store"
)

// Container holds the wired application components. It is immutable after
// creation; components are reached through getter methods.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	store      *store.KeywordStore
	classifier *classifier.Classifier
	client     *statsapi.Client
	builder    *dataset.Builder
}

// NewContainer creates and wires all application dependencies.
//
// A nil logger gets one built from the configuration's log section. The
// keywordsFile selects an injury keyword override file; empty means the
// default location search, and an absent file keeps the built-in keywords.
func NewContainer(cfg *config.Config, logger logging.Logger, keywordsFile string) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	if logger == nil {
		logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}

	keywordStore := store.NewKeywordStore(keywordsFile)

	cls := classifier.NewClassifier(logger)
	keywords, err := keywordStore.LoadInjuryKeywords()
	if err != nil {
		return nil, fmt.Errorf("loading injury keywords: %w", err)
	}
	if len(keywords) > 0 {
		cls.SetKeywords(keywords)
		logger.Info("Using injury keywords from configuration file",
			logging.Field{Key: logging.FieldCount, Value: len(keywords)})
	}

	client := statsapi.NewClient(clientOptions(cfg), logger)
	builder := dataset.NewBuilder(client, cls, logger)

	logger.Debug("Container initialized",
		logging.Field{Key: logging.FieldURL, Value: cfg.API.BaseURL},
		logging.Field{Key: logging.FieldCount, Value: len(keywords)})

	return &Container{
		logger:     logger,
		config:     cfg,
		store:      keywordStore,
		classifier: cls,
		client:     client,
		builder:    builder,
	}, nil
}

// clientOptions maps the API section of the configuration onto client
// options. Zero values fall back to the client's own defaults.
func clientOptions(cfg *config.Config) statsapi.Options {
	return statsapi.Options{
		BaseURL:     cfg.API.BaseURL,
		SportID:     cfg.API.SportID,
		Timeout:     time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		MaxAttempts: cfg.API.MaxAttempts,
		RetryPause:  time.Duration(cfg.API.RetryPauseSeconds * float64(time.Second)),
	}
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the container's keyword store instance.
func (c *Container) GetStore() *store.KeywordStore {
	return c.store
}

// GetClassifier returns the container's classifier instance.
func (c *Container) GetClassifier() *classifier.Classifier {
	return c.classifier
}

// GetClient returns the container's stats API client instance.
func (c *Container) GetClient() *statsapi.Client {
	return c.client
}

// GetBuilder returns the container's dataset builder instance.
func (c *Container) GetBuilder() *dataset.Builder {
	return c.builder
}
