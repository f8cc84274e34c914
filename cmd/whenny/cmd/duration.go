package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/whenny"
)

var durationStyle string

var durationCmd = &cobra.Command{
	Use:   "duration <seconds|text>",
	Short: "Render or parse a duration",
	Long: `Renders a duration in one of several styles. The argument is
either a number of seconds or loose duration text like "1h 30m",
which is parsed first.

Styles: long, compact, brief, clock, timer, minimal, human

Examples:
  whenny duration 3661
  whenny duration "1h 30m" --style clock
  whenny duration 5400 --style human`,
	Args: cobra.ExactArgs(1),
	RunE: runDuration,
}

func init() {
	durationCmd.Flags().StringVarP(&durationStyle, "style", "s", "long", "rendering style")
	rootCmd.AddCommand(durationCmd)
}

func runDuration(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("unable to load config", err)
		return err
	}

	seconds, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		seconds = whenny.ParseDuration(args[0])
	}

	d := whenny.Duration(seconds)

	var rendered string
	switch durationStyle {
	case "long":
		rendered = d.Long(cfg)
	case "compact":
		rendered = d.Compact(cfg)
	case "brief":
		rendered = d.Brief(cfg)
	case "clock":
		rendered = d.Clock()
	case "timer":
		rendered = d.Timer()
	case "minimal":
		rendered = d.Minimal(cfg)
	case "human":
		rendered = d.Human(cfg)
	default:
		err := fmt.Errorf("unknown style %q (use long, compact, brief, clock, timer, minimal, or human)", durationStyle)
		printError("unable to render", err)
		return err
	}

	fmt.Println(rendered)
	return nil
}
