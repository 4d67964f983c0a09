// Package main provides the command-line interface for the controller cleaner.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/cleaner"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/config"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/dependencies"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/fs"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/javasource"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/logger"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/marker"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/prompt"
	"github.com/spf13/cobra"
)

var (
	quiet      bool
	verbose    bool
	configPath string
	assumeYes  bool
	jsonOutput bool
)

// loadConfig loads the configuration: an explicit --config path must exist,
// the default location falls back to built-in defaults when absent.
func loadConfig() (*config.Config, error) {
	manager := config.NewManager()

	if configPath != "" {
		return manager.LoadConfig(configPath)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	path := filepath.Join(homeDir, ".ccleaner", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return manager.DefaultConfig(), nil
	}
	return manager.LoadConfig(path)
}

// buildLogger maps the output flags to a progress logger. Pipeline progress
// is verbose-only; the final report is printed by the commands themselves.
func buildLogger() logger.Logger {
	if verbose && !quiet {
		return logger.NewDefaultLogger()
	}
	return logger.NewNoopLogger()
}

// buildDependencies wires the container for a source tree root.
func buildDependencies(root string) (*dependencies.Dependencies, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	filesystem := fs.NewFS()
	provider := javasource.NewProvider(filesystem, root, cfg.SourceExtensions)
	progressLog := buildLogger()

	var confirmer prompt.Confirmer = prompt.NewPrompt()
	if assumeYes {
		confirmer = prompt.NewAutoConfirmer(true)
	}

	return dependencies.New().
		WithFS(filesystem).
		WithLogger(progressLog).
		WithPrompt(confirmer).
		WithConfig(cfg).
		WithCodeModel(provider).
		WithRefs(provider).
		WithMarker(marker.NewCoordinator(filesystem, provider, progressLog)), nil
}

// buildCleaner creates the driver for a source tree root.
func buildCleaner(root string) (cleaner.Cleaner, error) {
	deps, err := buildDependencies(root)
	if err != nil {
		return nil, err
	}
	return cleaner.NewCleaner(deps)
}

// rootArg returns the source tree root from the command arguments.
func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "ccleaner",
		Short: "Controller Cleaner - dead code removal for Java source trees",
		Long: `Removes dead code from a Java source tree: deprecated and unreferenced ` +
			`controller methods (including methods that become unreachable as a result), ` +
			`unused imports, unused private fields, and unused classes.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Assume yes on the removal confirmation")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")

	rootCmd.AddCommand(
		createAnalyzeCmd(),
		createCleanCmd(),
		createMarkedCmd(),
		createMarkCmd(),
		createUnmarkCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
