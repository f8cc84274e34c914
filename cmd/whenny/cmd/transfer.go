package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/whenny"
)

var (
	transferZone   string
	transferDecode bool
	transferTarget string
)

var transferCmd = &cobra.Command{
	Use:   "transfer <value|payload>",
	Short: "Create or unpack timezone transfer payloads",
	Long: `Creates a transfer payload carrying a timestamp together with its
origin timezone and offset, or unpacks such a payload received from
elsewhere.

Examples:
  whenny transfer "2024-01-15T15:30:45Z" --zone America/New_York
  whenny transfer '{"iso":"2024-01-15T15:30:45.000Z","originZone":"America/New_York","originOffset":-300}' --decode
  whenny transfer '...' --decode --target Asia/Tokyo`,
	Args: cobra.ExactArgs(1),
	RunE: runTransfer,
}

func init() {
	transferCmd.Flags().StringVarP(&transferZone, "zone", "z", "", "origin IANA timezone when creating")
	transferCmd.Flags().BoolVarP(&transferDecode, "decode", "d", false, "treat the argument as a received payload")
	transferCmd.Flags().StringVarP(&transferTarget, "target", "t", "", "when decoding, also show the instant in this zone")
	rootCmd.AddCommand(transferCmd)
}

func runTransfer(cmd *cobra.Command, args []string) error {
	if transferDecode {
		return decodeTransfer(args[0])
	}
	return createTransfer(args[0])
}

func createTransfer(arg string) error {
	if transferZone == "" {
		err := fmt.Errorf("--zone is required when creating a transfer payload")
		printError("unable to create transfer", err)
		return err
	}

	instant, err := resolveInstant(arg)
	if err != nil {
		printError("unable to parse value", err)
		return err
	}

	payload, err := whenny.CreateTransfer(instant, transferZone)
	if err != nil {
		printError("unable to create transfer", err)
		return err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		printError("unable to encode payload", err)
		return err
	}

	fmt.Println(string(data))
	return nil
}

func decodeTransfer(arg string) error {
	received, err := whenny.FromTransferJSON([]byte(arg))
	if err != nil {
		printError("unable to decode payload", err)
		return err
	}

	fmt.Printf("%s %s\n", labelStyle.Render("UTC:"), received.UTC().ISO())
	fmt.Printf("%s %s (%s)\n", labelStyle.Render("Origin:"),
		received.OriginZone(), whenny.FormatOffset(received.OriginOffset()))
	fmt.Printf("%s %s\n", labelStyle.Render("Origin wall clock:"), received.InOrigin().ISO())

	start, end := received.DayBoundsInOrigin()
	fmt.Printf("%s %s .. %s\n", labelStyle.Render("Origin day:"), start.ISO(), end.ISO())

	if transferTarget != "" {
		shifted, err := received.InZone(transferTarget)
		if err != nil {
			printError("unable to project into target zone", err)
			return err
		}
		fmt.Printf("%s %s\n", labelStyle.Render("In "+transferTarget+":"), shifted.ISO())
	}

	return nil
}
