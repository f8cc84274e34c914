package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/whenny"
)

var smartZone string

var smartCmd = &cobra.Command{
	Use:   "smart <value>",
	Short: "Context-aware rendering",
	Long: `Picks the most useful rendering for a timestamp based on how far
it is from now: a relative phrase for recent times, a clock time for
today, a weekday within the week, and a full date beyond that.

Examples:
  whenny smart "2024-01-15T15:30:45Z"
  whenny smart now --zone Europe/Berlin`,
	Args: cobra.ExactArgs(1),
	RunE: runSmart,
}

func init() {
	smartCmd.Flags().StringVarP(&smartZone, "zone", "z", "", "IANA timezone to evaluate buckets in")
	rootCmd.AddCommand(smartCmd)
}

func runSmart(cmd *cobra.Command, args []string) error {
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

	if smartZone != "" {
		rendered, err := whenny.SmartInZone(instant, now, cfg, smartZone)
		if err != nil {
			printError("unable to render", err)
			return err
		}
		fmt.Println(rendered)
		return nil
	}

	fmt.Println(whenny.Smart(instant, now, cfg))
	return nil
}
