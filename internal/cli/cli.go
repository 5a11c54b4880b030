// Package cli implements the periodix command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/periodix/internal/config"
	"github.com/matzehuels/periodix/pkg/buildinfo"
	"github.com/matzehuels/periodix/pkg/dataset"
	"github.com/matzehuels/periodix/pkg/observability"
	"github.com/matzehuels/periodix/pkg/scene"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for config lookup and display.
const appName = "periodix"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Config is loaded before any subcommand runs.
	Config *config.Config

	viper      *viper.Viper
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		viper:  config.NewViper(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Periodix animates the periodic table between 3D layouts",
		Long: `Periodix arranges the elements of the periodic table (or any dataset of
labelled records) into table, sphere, helix and grid layouts, and animates
them between layouts with eased tweens.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default: ./periodix.{yaml,toml,json})")
	flags.String("dataset", "", "dataset file (.json, .yaml, .toml); default: built-in periodic table")
	flags.Int("count", -1, "number of records to arrange (-1: all)")
	flags.Uint64("seed", 0, "random seed for scatter and tween durations (0: random)")
	flags.Duration("duration", 0, "base transition duration (default from config: 2s)")

	// Explicitly set flags override the config file and environment.
	_ = c.viper.BindPFlag("dataset.path", flags.Lookup("dataset"))
	_ = c.viper.BindPFlag("dataset.count", flags.Lookup("count"))
	_ = c.viper.BindPFlag("transition.seed", flags.Lookup("seed"))
	_ = c.viper.BindPFlag("transition.duration", flags.Lookup("duration"))

	// Register all subcommands
	root.AddCommand(c.layoutsCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.simulateCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig merges the config file, environment and flags, then applies
// the configured log level and registers logging hooks.
func (c *CLI) loadConfig() error {
	if err := config.ReadFile(c.viper, c.configPath); err != nil {
		return err
	}
	cfg, err := config.NewConfigFromViper(c.viper)
	if err != nil {
		return err
	}
	c.Config = cfg

	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		c.SetLogLevel(level)
	}
	observability.SetTransitionHooks(newTransitionLog(c.Logger))
	if used := c.viper.ConfigFileUsed(); used != "" {
		c.Logger.Debug("Loaded config", "file", used)
	}
	return nil
}

// =============================================================================
// Scene Factory
// =============================================================================

// records returns the configured dataset, limited to the configured count.
func (c *CLI) records() (dataset.Dataset, error) {
	records, err := c.Config.Records()
	if err != nil {
		return nil, err
	}
	if c.Config.Dataset.Count >= 0 {
		return records.Take(c.Config.Dataset.Count)
	}
	return records, nil
}

// newScene builds a scene from the configured dataset and transition settings.
func (c *CLI) newScene(extra ...scene.Option) (*scene.Scene, error) {
	return c.Config.NewScene(extra...)
}
