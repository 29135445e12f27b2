package main

//	@title						Salesdesk API
//	@version					0.1.0
//	@description				Sales desk backend API: authentication, theme resolution and admin settings.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT Bearer token. Format: "Bearer {token}"

import (
	"fmt"
	"os"

	_ "github.com/HerbHall/salesdesk/api/swagger"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "salesdesk",
	Short: "Sales desk backend server and tools",
	Long: `salesdesk serves the sales desk API and resolves the application theme
from the admin-stored override.

Run "salesdesk serve" to start the HTTP server. The theme and format
commands work offline and never touch the database.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to salesdesk.yaml (default: search ., ./configs, /etc/salesdesk)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
