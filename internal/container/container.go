// Package container provides dependency injection for the budget projector.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/budget-projector/internal/config"
	"fjacquet/budget-projector/internal/export"
	"fjacquet/budget-projector/internal/logging"
	"fjacquet/budget-projector/internal/models"
	"fjacquet/budget-projector/internal/normalizer"
	"fjacquet/budget-projector/internal/planner"
	"fjacquet/budget-projector/internal/projection"
	"fjacquet/budget-projector/internal/render"
	"fjacquet/budget-projector/internal/store"
)

// Container holds all application dependencies. It is immutable after
// creation; dependencies are reached through getters.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	normalizer *normalizer.Normalizer
	engine     *projection.Engine
	store      *store.ScenarioStore
	exporter   *export.Exporter
	renderer   *render.Renderer
}

// NewContainer creates and wires all application dependencies with a
// logger built from cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.ConfigureLoggingFromConfig(cfg))
}

// NewContainerWithLogger is NewContainer with an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	policy := projection.Policy{
		LegacyJanuaryExpense: cfg.Projection.LegacyJanuaryExpense,
		JanuaryExpense:       cfg.Projection.JanuaryExpense,
	}

	c := &Container{
		logger:     logger,
		config:     cfg,
		normalizer: normalizer.New(cfg.Normalizer.Strict, logger),
		engine:     projection.NewEngine(policy),
		store:      store.NewScenarioStore(cfg.Scenario.File, logger),
		exporter:   export.NewExporter(cfg.Delimiter(), cfg.CSV.IncludeHeaders, logger),
		renderer:   render.NewRenderer(cfg.Display.Currency, cfg.Display.Locale),
	}

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldScenario, cfg.Scenario.File),
		logging.F("strict", cfg.Normalizer.Strict),
		logging.F("legacy_january_expense", policy.LegacyJanuaryExpense))

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

// GetNormalizer returns the normalizer configured by normalizer.strict.
func (c *Container) GetNormalizer() *normalizer.Normalizer {
	return c.normalizer
}

// GetEngine returns the projection engine.
func (c *Container) GetEngine() *projection.Engine {
	return c.engine
}

// GetStore returns the scenario store.
func (c *Container) GetStore() *store.ScenarioStore {
	return c.store
}

// GetExporter returns the CSV and report exporter.
func (c *Container) GetExporter() *export.Exporter {
	return c.exporter
}

// GetRenderer returns the terminal renderer.
func (c *Container) GetRenderer() *render.Renderer {
	return c.renderer
}

// NewPlanner returns a planner over cfg that projects with the container's engine.
func (c *Container) NewPlanner(cfg models.Configuration) *planner.Planner {
	return planner.New(cfg, c.engine, c.logger)
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
