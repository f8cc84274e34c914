package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/whenny"
	"github.com/msto63/whenny/core/config"
	"github.com/msto63/whenny/core/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "whenny",
	Short: "whenny - friendly date and time rendering",
	Long: `whenny turns timestamps into text people actually want to read.

Commands:
  parse     - coerce a value into a canonical instant
  format    - render an instant with token templates or presets
  relative  - render "3 minutes ago" style phrases
  smart     - context-aware rendering (time, weekday, or full date)
  duration  - render and parse durations
  transfer  - create and unpack timezone transfer payloads
  serve     - run the HTTP/WebSocket rendering service`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig builds the effective configuration: defaults, plus the override
// file when --config is given
func loadConfig() (whenny.Config, error) {
	cfg := whenny.DefaultConfig()

	if cfgFile == "" {
		return cfg, nil
	}

	override, err := config.Load(cfgFile)
	if err != nil {
		return cfg, err
	}

	cfg = whenny.MergeConfig(cfg, override)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// newLogger builds the CLI logger honoring --verbose
func newLogger(name string) *log.Logger {
	logger := log.New().WithName(name)
	if verbose {
		logger = logger.WithLevel(log.LevelDebug)
	}
	return logger
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
