package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/whenny"
)

var (
	relativeShortForm bool
	relativeZone      string
)

var relativeCmd = &cobra.Command{
	Use:   "relative <value>",
	Short: "Render a relative time phrase",
	Long: `Renders the distance between a timestamp and now as a phrase
like "3 minutes ago" or "in 2 hours".

Examples:
  whenny relative "2024-01-15T15:30:45Z"
  whenny relative 1705332645123 --short`,
	Args: cobra.ExactArgs(1),
	RunE: runRelative,
}

func init() {
	relativeCmd.Flags().BoolVarP(&relativeShortForm, "short", "s", false, "compact form like \"3m ago\"")
	relativeCmd.Flags().StringVarP(&relativeZone, "zone", "z", "", "IANA timezone for calendar-day phrases")
	rootCmd.AddCommand(relativeCmd)
}

func runRelative(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("unable to load config", err)
		return err
	}

	instant, err := resolveInstant(args[0])
	if err != nil {
		printError("unable to parse value", err)
		return err
	}

	now := whenny.Now()

	if relativeShortForm {
		fmt.Println(whenny.RelativeShort(instant, now))
		return nil
	}

	if relativeZone != "" {
		rendered, err := whenny.RelativeInZone(instant, now, cfg, relativeZone)
		if err != nil {
			printError("unable to render", err)
			return err
		}
		fmt.Println(rendered)
		return nil
	}

	fmt.Println(whenny.Relative(instant, now, cfg))
	return nil
}
