package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/budget-projector/cmd/initialize"
	"fjacquet/budget-projector/cmd/override"
	"fjacquet/budget-projector/cmd/project"
	"fjacquet/budget-projector/cmd/recurring"
	"fjacquet/budget-projector/cmd/root"
	"fjacquet/budget-projector/cmd/set"
	"fjacquet/budget-projector/cmd/validate"
	"fjacquet/budget-projector/cmd/wishlist"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logger is created
	configureLogLevelDirectly()

	// 3. Initialize root command flags
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(initialize.Cmd)
	root.Cmd.AddCommand(project.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(wishlist.Cmd)
	root.Cmd.AddCommand(recurring.Cmd)
	root.Cmd.AddCommand(override.Cmd)
	root.Cmd.AddCommand(set.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global logrus level from LOG_LEVEL
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
