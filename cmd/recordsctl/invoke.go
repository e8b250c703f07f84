package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openswim/swimrec/pkg/wsclient"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke <service> [query]",
	Short: "Issue a GET to a named service and print the result envelope",
	Long: `invoke resolves the service name against the registry, performs one
GET with the optional raw query string and prints the JSON envelope.

The envelope status is negative on failure (-1 unknown service, -2
transport failure, -3 HTTP failure); otherwise it is the newline count of
the response body.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		query := ""
		if len(args) == 2 {
			query = args[1]
		}

		c := wsclient.New(reg, clientOptions()...)
		fmt.Fprintln(cmd.OutOrStdout(), c.Invoke(cmd.Context(), args[0], query))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(invokeCmd)
}
