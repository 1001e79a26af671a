package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/icp-autopilot/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract email addresses from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		emails, err := readEmails(args)
		if err != nil {
			return err
		}
		if len(emails) == 0 {
			return eris.New("no email addresses found in input")
		}

		for _, e := range emails {
			fmt.Fprintln(cmd.OutOrStdout(), e)
		}
		return nil
	},
}

// readEmails extracts addresses from the file argument, or from stdin when no
// argument is given.
func readEmails(args []string) ([]string, error) {
	if len(args) > 0 {
		return extract.FromFile(args[0])
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, eris.Wrap(err, "read stdin")
	}
	return extract.Emails(string(data)), nil
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
