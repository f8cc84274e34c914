package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/whenny"
)

var labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

var parseCmd = &cobra.Command{
	Use:   "parse <value>",
	Short: "Coerce a value into a canonical instant",
	Long: `Coerces a date string or epoch number into a canonical instant
and prints it as ISO-8601 UTC plus epoch milliseconds.

Examples:
  whenny parse "2024-01-15T15:30:45Z"
  whenny parse "01/15/2024"
  whenny parse 1705332645123`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	instant, err := coerceArg(args[0])
	if err != nil {
		printError("unable to parse value", err)
		return err
	}

	fmt.Printf("%s %s\n", labelStyle.Render("ISO:"), instant.ISO())
	fmt.Printf("%s %d\n", labelStyle.Render("Epoch ms:"), instant.UnixMilli())
	return nil
}

// coerceArg treats an all-digit argument as epoch milliseconds and anything
// else as a date string
func coerceArg(arg string) (whenny.Instant, error) {
	trimmed := strings.TrimSpace(arg)
	if ms, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return whenny.Coerce(ms)
	}
	return whenny.Coerce(trimmed)
}
