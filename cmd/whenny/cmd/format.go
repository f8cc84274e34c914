package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/whenny"
)

var (
	formatTemplate string
	formatPreset   string
	formatZone     string
)

var formatCmd = &cobra.Command{
	Use:   "format <value>",
	Short: "Render an instant with a token template or preset",
	Long: `Renders an instant using a token template or a named preset.

Examples:
  whenny format "2024-01-15T15:30:45Z" --template "{weekday}, {monthFull} {dayOrdinal}"
  whenny format now --preset long --zone Asia/Tokyo`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().StringVarP(&formatTemplate, "template", "t", "", "token template, e.g. \"{year}-{month}-{day}\"")
	formatCmd.Flags().StringVarP(&formatPreset, "preset", "p", "", "named preset from the formats config")
	formatCmd.Flags().StringVarP(&formatZone, "zone", "z", "", "IANA timezone to render in")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
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

	template := formatTemplate
	preset := formatPreset
	if template == "" && preset == "" {
		preset = "datetime"
	}

	var rendered string
	switch {
	case preset != "" && formatZone != "":
		rendered, err = whenny.FormatPresetInTimezone(instant, preset, cfg, formatZone)
	case preset != "":
		rendered, err = whenny.FormatPreset(instant, preset, cfg)
	case formatZone != "":
		rendered, err = whenny.FormatInTimezone(instant, template, cfg, formatZone)
	default:
		rendered = whenny.Format(instant, template, cfg)
	}
	if err != nil {
		printError("unable to format", err)
		return err
	}

	fmt.Println(rendered)
	return nil
}

// resolveInstant accepts the literal "now" in addition to anything Coerce
// understands
func resolveInstant(arg string) (whenny.Instant, error) {
	if arg == "now" {
		return whenny.Now(), nil
	}
	return coerceArg(arg)
}
