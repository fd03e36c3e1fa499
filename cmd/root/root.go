// Package root contains the root command for the application
package root

import (
	"fmt"
	"strings"

	"fjacquet/budget-projector/internal/config"
	"fjacquet/budget-projector/internal/container"
	"fjacquet/budget-projector/internal/logging"
	"fjacquet/budget-projector/internal/validation"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Scenario string
	Output   string
	Format   string
	Config   string
	Locale   string
	Strict   bool
}

var (
	// Log is the shared logger instance for commands
	Log = config.ConfigureLogging()

	// AppConfig is the configuration loaded by Setup
	AppConfig *config.Config

	// AppContainer holds the dependencies built by Setup
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "budget-projector",
		Short: "A CLI tool to project a monthly budget over one calendar year.",
		Long: `budget-projector projects a personal budget over January to December.
It combines a salary, a THR bonus paid in March, recurring expenses, per-month
overrides and a wishlist of one-off purchases into a twelve-month ledger, and
reports totals, the lowest balance and how many months the savings would last.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				if err := AppContainer.Close(); err != nil {
					Log.WithError(err).Warn("Failed to close container")
				}
			}
		},
	}

	// SharedFlags are the flags accessible to all commands
	SharedFlags = CommonFlags{}

	initialized bool
)

// Init initializes the root command and all flags. Calling it again is a no-op.
func Init() {
	if initialized {
		return
	}
	initialized = true

	Cmd.PersistentFlags().StringVarP(&SharedFlags.Scenario, "scenario", "s", "", "Scenario file (.yaml, .yml, .json or .toml)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Output format: table, csv, json, yaml or xml")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Config, "config", "", "Config file (default: ./config.yaml)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Locale, "locale", "", "Display locale: en or id")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.Strict, "strict", false, "Fail on the first invalid record instead of dropping it")
}

// Setup loads the environment and configuration, applies the shared flags
// and builds the application container.
func Setup() error {
	config.LoadEnv(Log)

	cfg, err := config.InitializeConfigFromFile(SharedFlags.Config)
	if err != nil {
		return err
	}
	if err := ApplyFlags(cfg, SharedFlags); err != nil {
		return err
	}

	Log = config.ConfigureLoggingFromConfig(cfg)
	c, err := container.NewContainerWithLogger(cfg, Log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	Log.Debug("Application initialized",
		logging.F(logging.FieldScenario, cfg.Scenario.File),
		logging.F(logging.FieldFormat, cfg.Output.Format))
	return nil
}

// ApplyFlags overrides cfg with the flags that were set.
func ApplyFlags(cfg *config.Config, flags CommonFlags) error {
	if flags.Scenario != "" {
		if err := validation.IsValidScenarioFile(flags.Scenario); err != nil {
			return err
		}
		cfg.Scenario.File = flags.Scenario
	}
	if flags.Format != "" {
		if err := validation.IsValidOutputFormat(flags.Format); err != nil {
			return err
		}
		cfg.Output.Format = strings.ToLower(flags.Format)
	}
	if flags.Locale != "" {
		if err := validation.IsValidLocale(flags.Locale); err != nil {
			return err
		}
		cfg.Display.Locale = flags.Locale
	}
	if flags.Strict {
		cfg.Normalizer.Strict = true
	}
	return nil
}

// GetContainer returns the container built by Setup, or nil before it ran.
func GetContainer() *container.Container {
	return AppContainer
}

// GetConfig returns the configuration loaded by Setup, or nil before it ran.
func GetConfig() *config.Config {
	return AppConfig
}
