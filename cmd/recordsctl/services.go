package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List registered services",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		for _, name := range reg.Names() {
			svc, _ := reg.Lookup(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%-16s https://%s/%s\n", name, svc.Domain, svc.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}
