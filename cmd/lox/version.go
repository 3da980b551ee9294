package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const toolVersion = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the lox build version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "lox %s\n", toolVersion)
		return nil
	},
}
