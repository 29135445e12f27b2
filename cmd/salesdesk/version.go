package main

import (
	"encoding/json"
	"fmt"

	"github.com/HerbHall/salesdesk/internal/version"
	"github.com/spf13/cobra"
)

func init() {
	versionCmd.Flags().Bool("json", false, "Print build information as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		if !asJSON {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return nil
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(version.Map())
	},
}
