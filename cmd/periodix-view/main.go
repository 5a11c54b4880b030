// Command periodix-view shows the periodic table layouts in a window.
//
// Keys T, S, H and G start a transition to the table, sphere, helix and grid
// layouts. The arrow keys orbit the camera and Escape quits.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/matzehuels/periodix/internal/config"
	"github.com/matzehuels/periodix/pkg/buildinfo"
)

func main() {
	var (
		configPath string
		verbose    bool
	)
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})

	cmd := &cobra.Command{
		Use:          "periodix-view",
		Short:        "Show the periodix layouts in a window",
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(logger, configPath, verbose)
		},
	}
	cmd.SetVersionTemplate(buildinfo.Template())
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: ./periodix.{yaml,toml,json})")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logger *log.Logger, configPath string, verbose bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	g, err := newGame(cfg, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("periodix " + buildinfo.Get().Short())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Frame.TPS)
	logger.Info("Window open", "tps", cfg.Frame.TPS, "elements", g.scene.Len(), "initial", cfg.Transition.Initial)

	start := time.Now()
	// Returning ebiten.Termination from Update makes RunGame return nil.
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	logger.Info("Window closed", "frames", g.loop.Frames(), "uptime", time.Since(start).Round(time.Second))
	return nil
}
